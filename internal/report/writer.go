package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sweqa/scoreagg/internal/contract"
	"github.com/sweqa/scoreagg/schema"
)

// Persist writes report text to path, overwriting any previous report so
// reruns stay byte-identical.
func Persist(text, path string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

// PrintAndPersist prints report text to stdout and persists it to path.
func PrintAndPersist(text, path string) error {
	fmt.Print(text)
	return Persist(text, path)
}

// Notice prints a one-line progress message to stderr. The emoji prefix is
// dropped when emoji output is disabled. Report files never go through
// this path.
func Notice(cfg *contract.Config, emoji, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if cfg.UseEmojis {
		fmt.Fprintf(os.Stderr, "%s %s\n", emoji, msg)
	} else {
		fmt.Fprintln(os.Stderr, msg)
	}
}

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// TrajectoryRow is a flat per-trajectory summary used by the CSV and JSON
// exports.
type TrajectoryRow struct {
	Trajectory   string  `json:"trajectory"`
	Records      int     `json:"records"`
	EmptyAnswers int     `json:"empty_answers"`
	Correctness  float64 `json:"correctness"`
	Completeness float64 `json:"completeness"`
	Relevance    float64 `json:"relevance"`
	Clarity      float64 `json:"clarity"`
	Reasoning    float64 `json:"reasoning"`
	TotalScore   float64 `json:"total_score"`
}

func trajectoryRows(overall schema.OverallStats) []TrajectoryRow {
	rows := make([]TrajectoryRow, 0, len(overall.Trajectories))
	for _, t := range overall.Trajectories {
		rows = append(rows, TrajectoryRow{
			Trajectory:   t.Name,
			Records:      t.Stats.TotalRecords,
			EmptyAnswers: t.Stats.EmptyAnswers,
			Correctness:  t.Stats.MetricMean(schema.MetricCorrectness),
			Completeness: t.Stats.MetricMean(schema.MetricCompleteness),
			Relevance:    t.Stats.MetricMean(schema.MetricRelevance),
			Clarity:      t.Stats.MetricMean(schema.MetricClarity),
			Reasoning:    t.Stats.MetricMean(schema.MetricReasoning),
			TotalScore:   t.Stats.MetricMean(schema.MetricTotalScore),
		})
	}
	return rows
}

// ExportTrajectories writes the per-trajectory summary rows in the
// configured structured format. The text format adds no extra artifact
// beyond the persisted reports.
func ExportTrajectories(overall schema.OverallStats, cfg *contract.Config) error {
	rows := trajectoryRows(overall)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{
				"Trajectory", "Records", "Empty",
				"Correctness", "Completeness", "Relevance",
				"Clarity", "Reasoning", "Total Score",
			}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, r := range rows {
					record := []string{
						r.Trajectory,
						strconv.Itoa(r.Records),
						strconv.Itoa(r.EmptyAnswers),
						fmt.Sprintf("%.2f", r.Correctness),
						fmt.Sprintf("%.2f", r.Completeness),
						fmt.Sprintf("%.2f", r.Relevance),
						fmt.Sprintf("%.2f", r.Clarity),
						fmt.Sprintf("%.2f", r.Reasoning),
						fmt.Sprintf("%.2f", r.TotalScore),
					}
					if err := cw.Write(record); err != nil {
						return fmt.Errorf("failed to write CSV record: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return nil
	}
}
