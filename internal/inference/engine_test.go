package inference

import (
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/SyedHashirA/Email-Spam-Detection/internal/models"
	"github.com/SyedHashirA/Email-Spam-Detection/internal/pipeline"
)

func trainedModelPath(t *testing.T) string {
	t.Helper()
	examples := []models.Example{
		{Text: "win free prize money claim now", Label: 1},
		{Text: "free cash prize winner claim today", Label: 1},
		{Text: "claim your free reward money now", Label: 1},
		{Text: "winner free prize claim cash now", Label: 1},
		{Text: "urgent claim free money prize today", Label: 1},
		{Text: "see you at lunch tomorrow", Label: 0},
		{Text: "meeting moved to three today", Label: 0},
		{Text: "can you send the report", Label: 0},
		{Text: "thanks for the notes yesterday", Label: 0},
		{Text: "are we still on for dinner", Label: 0},
	}
	pipe, _, err := pipeline.NewTrainer(0.2, 500, zap.NewNop()).Train(examples)
	if err != nil {
		t.Fatalf("train failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "model.gob")
	if err := pipe.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	return path
}

func TestClassify(t *testing.T) {
	engine := NewEngine(trainedModelPath(t), zap.NewNop())

	result, err := engine.Classify("Claim your FREE prize money now, winner!")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if result.Label != "SPAM" {
		t.Errorf("label = %q, want SPAM", result.Label)
	}
	if result.Prob == nil {
		t.Fatal("expected a probability from the logistic regression pipeline")
	}
	if *result.Prob < 0.5 || *result.Prob > 1 {
		t.Errorf("prob = %v, want within (0.5, 1]", *result.Prob)
	}

	result, err = engine.Classify("see you at lunch tomorrow for the meeting")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if result.Label != "Non-SPAM" {
		t.Errorf("label = %q, want Non-SPAM", result.Label)
	}
}

func TestClassifyWithoutModel(t *testing.T) {
	engine := NewEngine(filepath.Join(t.TempDir(), "missing.gob"), zap.NewNop())
	_, err := engine.Classify("any text at all here")
	if !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("err = %v, want ErrModelUnavailable", err)
	}
}

func TestLoadIsMemoized(t *testing.T) {
	path := trainedModelPath(t)
	engine := NewEngine(path, zap.NewNop())
	if _, err := engine.Classify("claim free prize money today"); err != nil {
		t.Fatalf("first classify failed: %v", err)
	}
	first := engine.pipe
	if first == nil {
		t.Fatal("pipeline not cached after first call")
	}
	if _, err := engine.Classify("another message entirely"); err != nil {
		t.Fatalf("second classify failed: %v", err)
	}
	if engine.pipe != first {
		t.Error("pipeline reloaded on second call")
	}
}
