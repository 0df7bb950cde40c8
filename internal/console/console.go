// Package console implements the line-oriented front end of the search engine:
// stop words, a document count, the documents and a query are read from a
// stream, and the top documents are written back one per line.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gcbaptista/tfidf-search-engine/config"
	"github.com/gcbaptista/tfidf-search-engine/internal/engine"
	"github.com/gcbaptista/tfidf-search-engine/model"
)

// Reader reads newline-terminated lines. A missing line at end of input reads as empty.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line terminator ("\n" or "\r\n").
func (cr *Reader) ReadLine() (string, error) {
	line, err := cr.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read line: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// ReadLineWithNumber reads a line whose first field is a non-negative integer.
// Anything after the number on the same line is ignored.
func (cr *Reader) ReadLineWithNumber() (int, error) {
	line, err := cr.ReadLine()
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("expected a number, got an empty line")
	}
	number, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("expected a number, got '%s': %w", fields[0], err)
	}
	if number < 0 {
		return 0, fmt.Errorf("expected a non-negative number, got %d", number)
	}
	return number, nil
}

// CreateSearchServer reads one line of stop words, a document count N and N
// documents, which get IDs 0..N-1 in order.
func CreateSearchServer(cr *Reader, settings config.EngineSettings) (*engine.SearchServer, error) {
	server, err := engine.NewSearchServer(settings)
	if err != nil {
		return nil, err
	}

	stopWords, err := cr.ReadLine()
	if err != nil {
		return nil, fmt.Errorf("stop words: %w", err)
	}
	server.SetStopWords(stopWords)

	documentCount, err := cr.ReadLineWithNumber()
	if err != nil {
		return nil, fmt.Errorf("document count: %w", err)
	}
	for documentID := 0; documentID < documentCount; documentID++ {
		document, err := cr.ReadLine()
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", documentID, err)
		}
		if err := server.AddDocument(documentID, document); err != nil {
			return nil, err
		}
	}
	return server, nil
}

// FormatDocument renders a result the way the console prints it.
// Relevance uses six significant digits.
func FormatDocument(doc model.Document) string {
	return fmt.Sprintf("{ document_id = %d, relevance = %s }", doc.ID, strconv.FormatFloat(doc.Relevance, 'g', 6, 64))
}

// WriteDocuments writes one formatted result per line.
func WriteDocuments(w io.Writer, docs []model.Document) error {
	for _, doc := range docs {
		if _, err := fmt.Fprintln(w, FormatDocument(doc)); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}

// Run builds a search server from in, reads the query line that follows the
// documents, and writes the top documents to out.
func Run(in io.Reader, out io.Writer, settings config.EngineSettings) error {
	cr := NewReader(in)
	server, err := CreateSearchServer(cr, settings)
	if err != nil {
		return err
	}

	query, err := cr.ReadLine()
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return WriteDocuments(out, server.FindTopDocuments(query))
}
