package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/SyedHashirA/Email-Spam-Detection/internal/dataset"
	"github.com/SyedHashirA/Email-Spam-Detection/internal/pipeline"
)

func main() {
	dataPath := flag.String("data", "", "Path to dataset CSV (required)")
	modelPath := flag.String("model", filepath.Join("models", "model.gob"), "Output path for the model artifact")
	reportPath := flag.String("report", filepath.Join("models", "metrics.json"), "Output path for the metrics report")
	testSize := flag.Float64("test_size", 0.2, "Fraction of examples held out for evaluation")
	maxFeatures := flag.Int("max_features", 20000, "Vocabulary size cap for the vectorizer")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if *dataPath == "" {
		flag.Usage()
		logger.Fatal("--data is required")
	}

	examples, err := dataset.NewLoader(logger).Load(*dataPath)
	if err != nil {
		logger.Fatal("Failed to load dataset", zap.Error(err))
	}
	logger.Info("loaded dataset", zap.Int("examples", len(examples)))

	trainer := pipeline.NewTrainer(*testSize, *maxFeatures, logger)
	pipe, report, err := trainer.Train(examples)
	if err != nil {
		logger.Fatal("Training failed", zap.Error(err))
	}

	if err := pipe.Save(*modelPath); err != nil {
		logger.Fatal("Failed to save model", zap.Error(err))
	}
	if err := saveReport(report, *reportPath); err != nil {
		logger.Fatal("Failed to save metrics report", zap.Error(err))
	}

	metricsJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Fatal("Failed to render metrics", zap.Error(err))
	}
	fmt.Println("Saved model to:", *modelPath)
	fmt.Println("Metrics:", string(metricsJSON))
}

// saveReport writes the metrics JSON write-then-rename, like the model
// artifact, so the serving process never reads a partial report.
func saveReport(report any, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode metrics: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to move metrics into place: %w", err)
	}
	return nil
}
