package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sweqa/scoreagg/internal/contract"
	"github.com/sweqa/scoreagg/internal/report"
	"github.com/sweqa/scoreagg/schema"
)

// DiscoverTrajectories returns the immediate subdirectories of basePath
// whose name begins with the trajectory prefix, in ascending name order.
// The sorted order is what per-trajectory tables display, so it must stay
// deterministic.
func DiscoverTrajectories(basePath string) ([]string, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read base path %s: %w", basePath, err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), schema.TrajectoryPrefix) {
			dirs = append(dirs, e.Name())
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// BuildOverallStats derives the cross-trajectory aggregate from the
// per-trajectory statistics. Counts are summed; each metric's overall mean
// and std are computed over the per-trajectory means (mean of means), which
// is the intended output rather than a pooled per-record statistic.
func BuildOverallStats(repoName, basePath string, trajs []schema.TrajectoryStats) schema.OverallStats {
	overall := schema.OverallStats{
		RepoName:     repoName,
		BasePath:     basePath,
		Trajectories: trajs,
		Metrics:      make(map[schema.Metric]schema.MetricStats, len(schema.Metrics)),
	}

	for _, t := range trajs {
		overall.TotalRecords += t.Stats.TotalRecords
		overall.EmptyAnswers += t.Stats.EmptyAnswers
	}

	for _, m := range schema.Metrics {
		var means []float64
		for _, t := range trajs {
			if ms, ok := t.Stats.Metrics[m]; ok {
				means = append(means, ms.Mean)
			}
		}
		if len(means) == 0 {
			continue
		}
		overall.Metrics[m] = schema.MetricStats{
			Count: len(means),
			Mean:  mean(means),
			Std:   sampleStd(means),
		}
	}

	return overall
}

// CollectTrajectories aggregates {dir}/{targetFile} for every trajectory
// directory under basePath, in ascending name order. Trajectories without
// the target file are skipped and reported in the second return value.
// It performs no console or file output, which makes it usable from the
// MCP server as well as from tests.
func CollectTrajectories(basePath, targetFile string) ([]schema.TrajectoryStats, []string, error) {
	dirs, err := DiscoverTrajectories(basePath)
	if err != nil {
		return nil, nil, err
	}
	if len(dirs) == 0 {
		return nil, nil, fmt.Errorf("no trajectory directories (%s*) found under %s", schema.TrajectoryPrefix, basePath)
	}

	var trajs []schema.TrajectoryStats
	var skipped []string
	for _, dir := range dirs {
		scoresPath := filepath.Join(basePath, dir, targetFile)
		if _, err := os.Stat(scoresPath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				skipped = append(skipped, dir)
				continue
			}
			return nil, nil, fmt.Errorf("cannot access %s: %w", scoresPath, err)
		}

		stats, err := AggregateFile(scoresPath)
		if err != nil {
			return nil, nil, err
		}
		trajs = append(trajs, schema.TrajectoryStats{Name: dir, Stats: stats})
	}

	return trajs, skipped, nil
}

// ExecuteTrajectories runs the multi-trajectory aggregation path: one
// per-trajectory report file plus progress notice per contributing
// trajectory, then the overall mean-of-means report persisted under the
// base path and echoed to the console.
func ExecuteTrajectories(cfg *contract.Config, store contract.RunStore) error {
	start := time.Now()
	runID := beginRun(store, start, map[string]any{
		"mode":        "trajectories",
		"base_path":   cfg.BasePath,
		"target_file": cfg.TargetFile,
	})

	dirs, err := DiscoverTrajectories(cfg.BasePath)
	if err != nil {
		return err
	}
	if len(dirs) == 0 {
		return fmt.Errorf("no trajectory directories (%s*) found under %s", schema.TrajectoryPrefix, cfg.BasePath)
	}

	stem := contract.FileStem(cfg.TargetFile)
	nameWidth := report.MaxNameWidth(cfg)

	var trajs []schema.TrajectoryStats
	for _, dir := range dirs {
		scoresPath := filepath.Join(cfg.BasePath, dir, cfg.TargetFile)
		if _, err := os.Stat(scoresPath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				report.Notice(cfg, "⏭️", "%s: no %s, skipping", contract.TruncateName(dir, nameWidth), cfg.TargetFile)
				continue
			}
			return fmt.Errorf("cannot access %s: %w", scoresPath, err)
		}

		stats, err := AggregateFile(scoresPath)
		if err != nil {
			return err
		}

		text := report.FormatStats(stats, "Scores for "+dir)
		outPath := filepath.Join(cfg.BasePath, dir, stem+"_score_stats.txt")
		if err := report.Persist(text, outPath); err != nil {
			return err
		}

		meanTotal := stats.MetricMean(schema.MetricTotalScore)
		report.Notice(cfg, "📊", "%s: mean total_score %.2f (%s)",
			contract.TruncateName(dir, nameWidth), meanTotal, contract.GetColorLabel(meanTotal))

		recordScopeStats(store, runID, dir, stats)
		trajs = append(trajs, schema.TrajectoryStats{Name: dir, Stats: stats})
	}

	overall := BuildOverallStats(stem, cfg.BasePath, trajs)
	text, err := report.FormatOverallReport(overall)
	if err != nil {
		return err
	}

	overallPath := filepath.Join(cfg.BasePath, fmt.Sprintf("overall_%s_results.txt", stem))
	if err := report.PrintAndPersist(text, overallPath); err != nil {
		return err
	}
	report.Notice(cfg, "💾", "Saved to: %s", overallPath)

	if err := report.ExportTrajectories(overall, cfg); err != nil {
		return err
	}

	recordScopeStats(store, runID, "overall", schema.AggregateStats{
		TotalRecords: overall.TotalRecords,
		EmptyAnswers: overall.EmptyAnswers,
		Metrics:      overall.Metrics,
	})
	endRun(store, runID, len(trajs)+1)
	return nil
}
