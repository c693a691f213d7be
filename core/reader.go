package core

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sweqa/scoreagg/schema"
)

// maxLineSize is the maximum size for a single JSONL line (4MB).
// This accommodates records carrying long candidate answers while
// preventing memory issues.
const maxLineSize = 4 * 1024 * 1024

// readRecords streams records from a line-delimited JSON file, invoking fn
// once per non-empty line. A line that is not valid JSON stops the read with
// an error carrying the line number; malformed lines are never skipped.
// The file handle is scoped to the read.
func readRecords(path string, fn func(schema.Record) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec schema.Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return fmt.Errorf("%s line %d: %w", path, lineNum, err)
		}
		if err := fn(rec); err != nil {
			return fmt.Errorf("%s line %d: %w", path, lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
