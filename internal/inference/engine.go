// Package inference serves predictions from a persisted pipeline artifact.
package inference

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/SyedHashirA/Email-Spam-Detection/internal/models"
	"github.com/SyedHashirA/Email-Spam-Detection/internal/pipeline"
)

// ErrModelUnavailable means no trained artifact exists at the configured
// path. The operator must run training before the service can classify.
var ErrModelUnavailable = errors.New("model not trained")

// Engine classifies text using a lazily loaded, process-lifetime cached
// pipeline. The first successful load is reused by every later request;
// a failed load leaves the handle empty so a later request retries once
// the operator has trained.
type Engine struct {
	modelPath string
	logger    *zap.Logger

	mu   sync.Mutex
	pipe *pipeline.Pipeline
}

// NewEngine creates an engine reading its artifact from modelPath.
func NewEngine(modelPath string, logger *zap.Logger) *Engine {
	return &Engine{modelPath: modelPath, logger: logger}
}

func (e *Engine) load() (*pipeline.Pipeline, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pipe != nil {
		return e.pipe, nil
	}
	if _, err := os.Stat(e.modelPath); err != nil {
		return nil, fmt.Errorf("%w: no artifact at %s, run the trainer first", ErrModelUnavailable, e.modelPath)
	}
	pipe, err := pipeline.Load(e.modelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	e.logger.Info("model loaded",
		zap.String("path", e.modelPath),
		zap.Int("features", pipe.Vectorizer.Dimension()))
	e.pipe = pipe
	return pipe, nil
}

// Classify runs the cached pipeline on text. The caller validates input
// length; the engine only maps the model output to a result.
func (e *Engine) Classify(text string) (*models.InferenceResult, error) {
	pipe, err := e.load()
	if err != nil {
		return nil, err
	}

	labelIdx := pipe.Predict(text)
	result := &models.InferenceResult{Label: "Non-SPAM"}
	if labelIdx == 1 {
		result.Label = "SPAM"
	}
	if proba, ok := pipe.PredictProba(text); ok {
		p := proba[0]
		if proba[1] > p {
			p = proba[1]
		}
		result.Prob = &p
	}
	return result, nil
}
