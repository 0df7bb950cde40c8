package index

// PostingList maps a document ID to the term frequency (TF) of one term in that document.
// TF = occurrences of the term / number of words in the document after stop-word removal.
type PostingList map[int]float64

// DocumentFrequency is the number of documents that contain the term.
func (pl PostingList) DocumentFrequency() int {
	return len(pl)
}

// computeTermFrequencies returns the TF of every distinct word in words.
// words must not be empty.
func computeTermFrequencies(words []string) map[string]float64 {
	counts := make(map[string]int, len(words))
	for _, word := range words {
		counts[word]++
	}

	total := float64(len(words))
	wordsTF := make(map[string]float64, len(counts))
	for word, count := range counts {
		wordsTF[word] = float64(count) / total
	}
	return wordsTF
}
