package models

// Example is a single cleaned, labeled training example.
// Label is 1 for spam, 0 for ham.
type Example struct {
	Text  string
	Label int
}

// InferenceResult is the classification outcome returned to API callers.
// Prob is the maximum class probability, or nil when the underlying
// classifier does not expose probability estimates.
type InferenceResult struct {
	Label string   `json:"label"`
	Prob  *float64 `json:"prob"`
}

// SampleCounts records how many examples landed in each split.
type SampleCounts struct {
	Train int `json:"train"`
	Test  int `json:"test"`
}

// VectorizerInfo describes the feature extractor configuration used
// for a training run.
type VectorizerInfo struct {
	MaxFeatures int    `json:"max_features"`
	NgramRange  [2]int `json:"ngram_range"`
}

// MetricsReport is the evaluation report persisted next to the model
// artifact after each training run. Spam (label 1) is the positive class.
type MetricsReport struct {
	Accuracy   float64        `json:"accuracy"`
	Precision  float64        `json:"precision"`
	Recall     float64        `json:"recall"`
	F1         float64        `json:"f1"`
	Samples    SampleCounts   `json:"samples"`
	Vectorizer VectorizerInfo `json:"vectorizer"`
	Model      string         `json:"model"`
}
