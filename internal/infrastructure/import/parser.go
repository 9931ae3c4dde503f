package csvimport

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Parser reads a headed CSV file row by row. Headers are matched
// case-insensitively and values are trimmed.
type Parser struct {
	reader     *csv.Reader
	headers    []string
	currentRow int
}

// NewParser wraps a reader and validates its content is UTF-8
func NewParser(r io.Reader) (*Parser, error) {
	buf := bufio.NewReader(r)
	if err := checkUTF8(buf); err != nil {
		return nil, err
	}

	cr := csv.NewReader(buf)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	return &Parser{reader: cr}, nil
}

// checkUTF8 peeks at the start of the stream and rejects content that
// is not valid UTF-8, catching Latin-1 exports before row parsing
// produces garbage names.
func checkUTF8(r *bufio.Reader) error {
	peek, err := r.Peek(1024)
	if err != nil && err != io.EOF {
		return fmt.Errorf("reading csv: %w", err)
	}
	// A multibyte rune may be cut at the peek boundary.
	for len(peek) > 0 && !utf8.Valid(peek) {
		peek = peek[:len(peek)-1]
		if len(peek) < 1020 {
			return fmt.Errorf("el archivo no está codificado en UTF-8")
		}
	}
	return nil
}

// ParseHeader reads the header row
func (p *Parser) ParseHeader() error {
	record, err := p.reader.Read()
	if err == io.EOF {
		return fmt.Errorf("el archivo está vacío")
	}
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}

	p.headers = make([]string, len(record))
	for i, h := range record {
		p.headers[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}
	p.currentRow = 1
	return nil
}

// MissingHeaders returns the required column names absent from the file
func (p *Parser) MissingHeaders(required []string) []string {
	var missing []string
	for _, name := range required {
		found := false
		for _, h := range p.headers {
			if h == name {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, name)
		}
	}
	return missing
}

// Row is one parsed data row keyed by header name
type Row struct {
	LineNumber int
	values     map[string]string
}

// Get returns the trimmed value under the given header
func (r *Row) Get(header string) string {
	return r.values[header]
}

// GetOrDefault returns the value under the header, or def when empty
func (r *Row) GetOrDefault(header, def string) string {
	if v := r.values[header]; v != "" {
		return v
	}
	return def
}

// IsEmpty reports whether every field in the row is blank
func (r *Row) IsEmpty() bool {
	for _, v := range r.values {
		if v != "" {
			return false
		}
	}
	return true
}

// ReadRow returns the next data row, or io.EOF when the file ends
func (p *Parser) ReadRow() (*Row, error) {
	record, err := p.reader.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	p.currentRow++
	if err != nil {
		return nil, fmt.Errorf("reading row %d: %w", p.currentRow, err)
	}

	row := &Row{
		LineNumber: p.currentRow,
		values:     make(map[string]string, len(p.headers)),
	}
	for i, header := range p.headers {
		if i < len(record) {
			row.values[header] = strings.TrimSpace(record[i])
		} else {
			row.values[header] = ""
		}
	}
	return row, nil
}
