// Package pipeline implements the trained classification pipeline: a
// TF-IDF vectorizer feeding a binary logistic regression, plus training,
// evaluation and artifact persistence.
package pipeline

import (
	"errors"
	"math"
	"sort"
	"strings"
)

// Vector is a sparse feature vector keyed by vocabulary index.
type Vector map[int]float64

// Vectorizer converts cleaned text into L2-normalized TF-IDF vectors over
// unigrams and bigrams, with the vocabulary capped at MaxFeatures terms
// ranked by corpus frequency.
type Vectorizer struct {
	MaxFeatures int
	Vocabulary  map[string]int
	IDF         []float64
}

// NewVectorizer creates an unfitted vectorizer.
func NewVectorizer(maxFeatures int) *Vectorizer {
	return &Vectorizer{MaxFeatures: maxFeatures}
}

// tokenize splits already-cleaned text into unigram and bigram terms.
// Tokens shorter than two characters carry no signal and are skipped,
// matching the behavior of common text vectorizers.
func tokenize(text string) []string {
	fields := strings.Fields(text)
	words := fields[:0]
	for _, f := range fields {
		if len(f) >= 2 {
			words = append(words, f)
		}
	}
	terms := make([]string, 0, 2*len(words))
	for i, w := range words {
		terms = append(terms, w)
		if i+1 < len(words) {
			terms = append(terms, w+" "+words[i+1])
		}
	}
	return terms
}

// Fit builds the vocabulary and IDF table from the corpus.
func (v *Vectorizer) Fit(corpus []string) error {
	if len(corpus) == 0 {
		return errors.New("empty corpus")
	}

	df := make(map[string]int)    // documents containing the term
	total := make(map[string]int) // corpus-wide occurrences, for the feature cap
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, term := range tokenize(text) {
			total[term]++
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}
	if len(df) == 0 {
		return errors.New("no terms found in corpus")
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	// Rank by corpus frequency, ties broken alphabetically so the
	// vocabulary is stable across runs.
	sort.Slice(terms, func(i, j int) bool {
		if total[terms[i]] != total[terms[j]] {
			return total[terms[i]] > total[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if v.MaxFeatures > 0 && len(terms) > v.MaxFeatures {
		terms = terms[:v.MaxFeatures]
	}
	sort.Strings(terms)

	n := float64(len(corpus))
	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	for i, term := range terms {
		v.Vocabulary[term] = i
		// Smoothed IDF
		v.IDF[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	return nil
}

// Transform computes the TF-IDF vector for one document.
func (v *Vectorizer) Transform(text string) Vector {
	vec := make(Vector)
	for _, term := range tokenize(text) {
		if idx, ok := v.Vocabulary[term]; ok {
			vec[idx]++
		}
	}
	norm := 0.0
	for idx := range vec {
		vec[idx] *= v.IDF[idx]
		norm += vec[idx] * vec[idx]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}

// TransformAll vectorizes a batch of documents.
func (v *Vectorizer) TransformAll(texts []string) []Vector {
	out := make([]Vector, len(texts))
	for i, t := range texts {
		out[i] = v.Transform(t)
	}
	return out
}

// Dimension returns the size of the fitted vocabulary.
func (v *Vectorizer) Dimension() int { return len(v.Vocabulary) }
