// Package wordlist loads word lists from CSV files.
package wordlist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column is the header name holding candidate words.
const Column = "word"

var (
	// ErrNoHeader is returned when the CSV has no header record.
	ErrNoHeader = errors.New("CSV has no headers")
	// ErrMissingWordColumn is returned when no header cell is named "word".
	ErrMissingWordColumn = errors.New("CSV must contain a header named 'word'")
	// ErrEmpty is returned when no usable words were found.
	ErrEmpty = errors.New("no words loaded from CSV")
)

// LoadWords reads the word column from the CSV at path and dedupes it.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	words, err := ReadWords(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// ReadWords parses CSV from r and returns the deduped, non-empty word column.
func ReadWords(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}
	col := columnIndex(header, Column)
	if col < 0 {
		return nil, ErrMissingWordColumn
	}

	var words []string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if col >= len(record) {
			continue
		}
		word := strings.TrimSpace(record[col])
		if word == "" {
			continue
		}
		words = append(words, word)
	}

	words = Dedupe(words)
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}

func columnIndex(header []string, name string) int {
	for i, cell := range header {
		if i == 0 {
			cell = strings.TrimPrefix(cell, "\ufeff")
		}
		if cell == name {
			return i
		}
	}
	return -1
}
