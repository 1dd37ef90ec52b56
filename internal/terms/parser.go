package terms

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// csvEncoding is one attempt in the ordered list of encodings tried when
// reading a glossary file. Each attempt decodes the raw bytes independently,
// so a failed attempt leaves nothing behind for the next one.
type csvEncoding struct {
	name   string
	decode func([]byte) ([]byte, error)
}

var csvEncodings = []csvEncoding{
	{"utf-8", decodeUTF8},
	{"gbk", decodeGBK},
}

func decodeUTF8(data []byte) ([]byte, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("data is not valid UTF-8")
	}
	return data, nil
}

func decodeGBK(data []byte) ([]byte, error) {
	out, _, err := transform.Bytes(simplifiedchinese.GBK.NewDecoder(), data)
	return out, err
}

// ParseFile reads a terminology CSV file and returns the valid terms in file
// order. The first row is always treated as a header and discarded; its
// content is never validated (files with a misspelled "souce" column label
// are accepted on purpose). Rows missing a source or target are skipped with
// a warning rather than failing the whole file.
func ParseFile(path string) ([]Term, Stats, error) {
	var stats Stats

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, stats, fmt.Errorf("read CSV file: %w", err)
	}

	data, err := decodeWithFallback(path, raw)
	if err != nil {
		return nil, stats, err
	}

	r := csv.NewReader(bytes.NewReader(data))
	// Data rows may carry two or three columns; short rows are handled below.
	r.FieldsPerRecord = -1

	var parsed []Term

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read CSV file %s: %w", path, err)
		}
		line, _ := r.FieldPos(0)

		if isBlankRow(record) {
			continue
		}

		// Only the literal first row is a header. A blank first row is
		// skipped above, and the rows after it are all data.
		if line == 1 {
			fmt.Printf("Header row: %s\n", strings.Join(record, ","))
			continue
		}
		stats.DataRows++

		if len(record) < 2 {
			fmt.Fprintf(os.Stderr, "Warning: line %d has too few columns: %v\n", line, record)
			stats.Skipped++
			continue
		}

		source := strings.TrimSpace(record[0])
		target := strings.TrimSpace(record[1])
		if source == "" || target == "" {
			fmt.Fprintf(os.Stderr, "Warning: line %d is missing source or target: %v\n", line, record)
			stats.Skipped++
			continue
		}

		parsed = append(parsed, Term{
			Source:        source,
			Target:        target,
			CaseSensitive: parseCaseFlag(record),
		})
	}

	fmt.Printf("Read %d data rows, parsed %d valid terms\n", stats.DataRows, len(parsed))
	return parsed, stats, nil
}

// decodeWithFallback tries each configured encoding in order and returns the
// first successful decode, stripped of any leading byte order mark.
func decodeWithFallback(path string, raw []byte) ([]byte, error) {
	var lastErr error
	for i, enc := range csvEncodings {
		data, err := enc.decode(raw)
		if err != nil {
			lastErr = err
			continue
		}
		if i > 0 {
			fmt.Printf("Decoded %s using fallback encoding %s\n", path, enc.name)
		}
		return bytes.TrimPrefix(data, []byte("\ufeff")), nil
	}
	return nil, fmt.Errorf("decode CSV file %s: %w", path, lastErr)
}

// parseCaseFlag reads the optional third column. Only "1" or "true"
// (case-insensitive) enable case-sensitive matching; any other value,
// including an unrecognized one, falls back to false without error.
func parseCaseFlag(record []string) bool {
	if len(record) < 3 {
		return false
	}
	flag := strings.TrimSpace(record[2])
	return flag == "1" || strings.EqualFold(flag, "true")
}

func isBlankRow(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
