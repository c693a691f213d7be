// Package core has aggregation logic for scored evaluation records.
package core

import (
	"time"

	"github.com/sweqa/scoreagg/internal/contract"
	"github.com/sweqa/scoreagg/schema"
)

// beginRun starts history tracking for an aggregation run. Tracking failures
// degrade to warnings; a zero run ID disables all further recording.
func beginRun(store contract.RunStore, start time.Time, params map[string]any) int64 {
	if store == nil {
		return 0
	}
	runID, err := store.BeginRun(start, params)
	if err != nil {
		contract.LogWarn("Run tracking initialization failed", err)
		return 0
	}
	return runID
}

// recordScopeStats stores one scope's statistics in the history store.
func recordScopeStats(store contract.RunStore, runID int64, scope string, stats schema.AggregateStats) {
	if store == nil || runID == 0 {
		return
	}
	if err := store.RecordScopeStats(runID, scope, stats); err != nil {
		contract.LogWarn("Failed to record scope stats", err)
	}
}

// endRun finalizes history tracking for an aggregation run.
func endRun(store contract.RunStore, runID int64, scopes int) {
	if store == nil || runID == 0 {
		return
	}
	if err := store.EndRun(runID, time.Now(), scopes); err != nil {
		contract.LogWarn("Failed to finalize run tracking", err)
	}
}
