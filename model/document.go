package model

// Document is a search hit: a document ID and its TF-IDF relevance to the query.
// Relevance is computed per query and never stored.
type Document struct {
	ID        int     `json:"document_id"`
	Relevance float64 `json:"relevance"`
}

// DocumentInput is a document to be indexed. Only the word frequencies of Text are kept.
type DocumentInput struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}
