package search

import (
	"math"

	"github.com/gcbaptista/tfidf-search-engine/index"
)

// TFIDFCalculator handles TF-IDF score calculations
type TFIDFCalculator struct {
	invertedIndex *index.InvertedIndex
}

// NewTFIDFCalculator creates a new TF-IDF calculator
func NewTFIDFCalculator(invIndex *index.InvertedIndex) *TFIDFCalculator {
	return &TFIDFCalculator{invertedIndex: invIndex}
}

// CalculateIDF calculates the inverse document frequency of term against the current corpus.
// IDF = log(N / df) where N = total documents, df = documents containing term
func (calc *TFIDFCalculator) CalculateIDF(term string) float64 {
	return computeIDF(calc.invertedIndex.DocumentCount(), calc.DocumentFrequency(term))
}

// DocumentFrequency returns the number of documents that contain the given term
func (calc *TFIDFCalculator) DocumentFrequency(term string) int {
	return calc.invertedIndex.DocumentFrequency(term)
}

// computeIDF returns 0 for an empty corpus or an unseen term instead of an undefined logarithm.
func computeIDF(totalDocs, docFreq int) float64 {
	if totalDocs == 0 || docFreq == 0 {
		return 0.0
	}
	return math.Log(float64(totalDocs) / float64(docFreq))
}

// CalculateTFIDF is the contribution of one term to a document's relevance.
func CalculateTFIDF(tf, idf float64) float64 {
	return tf * idf
}
