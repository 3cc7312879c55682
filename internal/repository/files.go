// Package repository provides flat-file data access for the cafe service.
// Each persisted collection lives in one semicolon-delimited text file with
// one record per line, fully reread at startup and rewritten (or appended)
// on mutation.
package repository

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/azurecafe/cafe-service/internal/domain/model"
)

// fieldSeparator delimits record fields within a line.
const fieldSeparator = ";"

// readRecords reads all non-empty lines of path and splits each on the field
// separator. A missing file is empty state, not an error.
func readRecords(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, model.WrapPersistence(err, "cannot open %s", path)
	}
	defer func() {
		_ = file.Close()
	}()

	var records [][]string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		records = append(records, strings.Split(line, fieldSeparator))
	}
	if err := scanner.Err(); err != nil {
		return nil, model.WrapPersistence(err, "cannot read %s", path)
	}
	return records, nil
}

// writeRecords rewrites path with the given records.
func writeRecords(path string, records [][]string) error {
	return writeLines(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, records)
}

// appendRecords appends the given records to path.
func appendRecords(path string, records [][]string) error {
	return writeLines(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, records)
}

func writeLines(path string, flags int, records [][]string) error {
	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return model.WrapPersistence(err, "cannot open %s", path)
	}

	writer := bufio.NewWriter(file)
	for _, record := range records {
		if _, err := writer.WriteString(strings.Join(record, fieldSeparator) + "\n"); err != nil {
			_ = file.Close()
			return model.WrapPersistence(err, "cannot write %s", path)
		}
	}
	if err := writer.Flush(); err != nil {
		_ = file.Close()
		return model.WrapPersistence(err, "cannot write %s", path)
	}
	if err := file.Close(); err != nil {
		return model.WrapPersistence(err, "cannot write %s", path)
	}
	return nil
}

// formatFloat renders a float with the fewest digits that round-trip.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
