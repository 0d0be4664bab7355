package pipeline

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/SyedHashirA/Email-Spam-Detection/internal/models"
)

// splitSeed fixes the train/test partition so retraining on identical
// input reproduces the same evaluation.
const splitSeed = 42

// Trainer fits a TF-IDF + logistic regression pipeline on labeled examples.
type Trainer struct {
	TestFraction float64
	MaxFeatures  int
	logger       *zap.Logger
}

// NewTrainer creates a trainer with the given split fraction and feature cap.
func NewTrainer(testFraction float64, maxFeatures int, logger *zap.Logger) *Trainer {
	return &Trainer{TestFraction: testFraction, MaxFeatures: maxFeatures, logger: logger}
}

// stratifiedSplit partitions examples into train and test sets preserving
// class proportions. Each class needs at least 2 examples so both sides
// of the split see it.
func stratifiedSplit(examples []models.Example, testFraction float64, seed int64) (train, test []models.Example, err error) {
	byClass := map[int][]models.Example{}
	for _, ex := range examples {
		byClass[ex.Label] = append(byClass[ex.Label], ex)
	}
	for _, label := range []int{0, 1} {
		if len(byClass[label]) < 2 {
			return nil, nil, fmt.Errorf("need at least 2 examples of class %d for a stratified split, got %d", label, len(byClass[label]))
		}
	}

	rng := rand.New(rand.NewSource(seed))
	for _, label := range []int{0, 1} {
		group := append([]models.Example(nil), byClass[label]...)
		rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})
		nTest := int(float64(len(group)) * testFraction)
		if nTest < 1 {
			nTest = 1
		}
		if nTest >= len(group) {
			nTest = len(group) - 1
		}
		test = append(test, group[:nTest]...)
		train = append(train, group[nTest:]...)
	}
	rng.Shuffle(len(train), func(i, j int) { train[i], train[j] = train[j], train[i] })
	return train, test, nil
}

// Train fits the pipeline and evaluates it on the held-out split.
func (t *Trainer) Train(examples []models.Example) (*Pipeline, *models.MetricsReport, error) {
	train, test, err := stratifiedSplit(examples, t.TestFraction, splitSeed)
	if err != nil {
		return nil, nil, err
	}
	t.logger.Info("split dataset",
		zap.Int("train", len(train)),
		zap.Int("test", len(test)))

	texts := make([]string, len(train))
	labels := make([]int, len(train))
	for i, ex := range train {
		texts[i] = ex.Text
		labels[i] = ex.Label
	}

	vec := NewVectorizer(t.MaxFeatures)
	if err := vec.Fit(texts); err != nil {
		return nil, nil, fmt.Errorf("failed to fit vectorizer: %w", err)
	}
	model := &LogisticRegression{}
	if err := model.Fit(vec.TransformAll(texts), labels, vec.Dimension()); err != nil {
		return nil, nil, fmt.Errorf("failed to fit classifier: %w", err)
	}
	pipe := &Pipeline{Vectorizer: vec, Model: model}
	t.logger.Info("fitted pipeline", zap.Int("features", vec.Dimension()))

	report := evaluate(pipe, test)
	report.Samples = models.SampleCounts{Train: len(train), Test: len(test)}
	report.Vectorizer = models.VectorizerInfo{MaxFeatures: t.MaxFeatures, NgramRange: [2]int{1, 2}}
	report.Model = fmt.Sprintf("LogisticRegression(max_iter=%d)", maxIterations)
	return pipe, report, nil
}

// evaluate computes accuracy and binary precision/recall/F1 with spam
// (label 1) as the positive class.
func evaluate(pipe *Pipeline, test []models.Example) *models.MetricsReport {
	var tp, fp, fn, correct int
	for _, ex := range test {
		pred := pipe.Model.Predict(pipe.Vectorizer.Transform(ex.Text))
		if pred == ex.Label {
			correct++
		}
		switch {
		case pred == 1 && ex.Label == 1:
			tp++
		case pred == 1 && ex.Label == 0:
			fp++
		case pred == 0 && ex.Label == 1:
			fn++
		}
	}

	report := &models.MetricsReport{}
	if len(test) > 0 {
		report.Accuracy = float64(correct) / float64(len(test))
	}
	if tp+fp > 0 {
		report.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		report.Recall = float64(tp) / float64(tp+fn)
	}
	if report.Precision+report.Recall > 0 {
		report.F1 = 2 * report.Precision * report.Recall / (report.Precision + report.Recall)
	}
	return report
}
