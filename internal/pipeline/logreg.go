package pipeline

import (
	"errors"
	"math"
)

const (
	maxIterations = 200
	learningRate  = 1.0
	l2Penalty     = 1e-4
	tolerance     = 1e-5
)

// LogisticRegression is a binary classifier over sparse TF-IDF vectors.
// Label 1 (spam) is the positive class.
type LogisticRegression struct {
	Weights []float64
	Bias    float64
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

func (m *LogisticRegression) decision(x Vector) float64 {
	z := m.Bias
	for idx, val := range x {
		z += m.Weights[idx] * val
	}
	return z
}

// Fit trains the model with full-batch gradient descent, capped at 200
// iterations with early stopping on gradient convergence.
func (m *LogisticRegression) Fit(xs []Vector, ys []int, dim int) error {
	if len(xs) == 0 || len(xs) != len(ys) {
		return errors.New("invalid training data")
	}
	m.Weights = make([]float64, dim)
	m.Bias = 0

	n := float64(len(xs))
	grad := make([]float64, dim)
	for iter := 0; iter < maxIterations; iter++ {
		for i := range grad {
			grad[i] = m.Weights[i] * l2Penalty
		}
		gradBias := 0.0
		for i, x := range xs {
			err := sigmoid(m.decision(x)) - float64(ys[i])
			for idx, val := range x {
				grad[idx] += err * val / n
			}
			gradBias += err / n
		}

		maxStep := math.Abs(gradBias)
		m.Bias -= learningRate * gradBias
		for i := range grad {
			step := learningRate * grad[i]
			m.Weights[i] -= step
			if s := math.Abs(step); s > maxStep {
				maxStep = s
			}
		}
		if maxStep < tolerance {
			break
		}
	}
	return nil
}

// Predict returns the class index for one input vector.
func (m *LogisticRegression) Predict(x Vector) int {
	if m.decision(x) >= 0 {
		return 1
	}
	return 0
}

// PredictProba returns the class probabilities [P(ham), P(spam)].
func (m *LogisticRegression) PredictProba(x Vector) [2]float64 {
	p := sigmoid(m.decision(x))
	return [2]float64{1 - p, p}
}
