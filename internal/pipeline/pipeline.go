package pipeline

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SyedHashirA/Email-Spam-Detection/internal/textproc"
)

// Pipeline is the composed, serializable feature extractor + classifier.
// Once persisted it is immutable; any number of serving processes may
// load the same artifact.
type Pipeline struct {
	Vectorizer *Vectorizer
	Model      *LogisticRegression
}

// Predict classifies raw text and returns the label index (1 = spam).
// Input text goes through the same cleaning step used at training time.
func (p *Pipeline) Predict(text string) int {
	return p.Model.Predict(p.Vectorizer.Transform(textproc.Clean(text)))
}

// PredictProba returns class probabilities for raw text, and whether the
// underlying classifier supports probability estimates at all.
func (p *Pipeline) PredictProba(text string) ([2]float64, bool) {
	return p.Model.PredictProba(p.Vectorizer.Transform(textproc.Clean(text))), true
}

// Save writes the pipeline to path atomically: the artifact is encoded to
// a temp file in the same directory and renamed into place, so a reader
// never observes a half-written model.
func (p *Pipeline) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create model directory: %w", err)
		}
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".model-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp model file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(p); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode model: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to flush model: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move model into place: %w", err)
	}
	return nil
}

// Load reads a previously saved pipeline artifact.
func Load(path string) (*Pipeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p := &Pipeline{}
	if err := gob.NewDecoder(f).Decode(p); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact: %w", err)
	}
	return p, nil
}
