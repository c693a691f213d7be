// Package report renders aggregation results as plain-text reports and
// handles their console and file output.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sweqa/scoreagg/internal/contract"
	"github.com/sweqa/scoreagg/schema"
)

// FormatStats renders the statistics for a single scores file as a
// plain-text report. The same text goes to the console and to the
// persisted report file, so it never carries color codes or emoji.
func FormatStats(stats schema.AggregateStats, header string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", header)
	fmt.Fprintf(&b, "Total records: %d\n", stats.TotalRecords)
	fmt.Fprintf(&b, "Empty answers (scored as 0): %d\n", stats.EmptyAnswers)
	b.WriteString("\n")

	for _, m := range schema.Metrics {
		ms, ok := stats.Metrics[m]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%-15s mean=%.2f  std=%.2f\n", m, ms.Mean, ms.Std)
	}

	return b.String()
}

// StatsFilePath returns the report path next to the input file:
// the input's stem plus a _score_stats.txt suffix.
func StatsFilePath(inputPath string) string {
	stem := contract.FileStem(inputPath)
	return filepath.Join(filepath.Dir(inputPath), stem+"_score_stats.txt")
}
