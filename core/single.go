package core

import (
	"path/filepath"
	"time"

	"github.com/sweqa/scoreagg/internal/contract"
	"github.com/sweqa/scoreagg/internal/report"
)

// ExecuteSingleFile aggregates one scores file, prints the report to the
// console and persists it next to the input file, overwriting any previous
// report. The output depends only on the input bytes, so reruns are
// byte-identical.
func ExecuteSingleFile(cfg *contract.Config, store contract.RunStore) error {
	start := time.Now()
	runID := beginRun(store, start, map[string]any{
		"mode":  "single",
		"input": cfg.InputPath,
	})

	stats, err := AggregateFile(cfg.InputPath)
	if err != nil {
		return err
	}

	text := report.FormatStats(stats, "Scores from "+filepath.Dir(cfg.InputPath))
	outPath := report.StatsFilePath(cfg.InputPath)
	if err := report.PrintAndPersist(text, outPath); err != nil {
		return err
	}
	report.Notice(cfg, "💾", "Saved to: %s", outPath)

	recordScopeStats(store, runID, contract.FileStem(cfg.InputPath), stats)
	endRun(store, runID, 1)
	return nil
}
