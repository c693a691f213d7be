package core

import (
	"fmt"
	"strings"

	"github.com/sweqa/scoreagg/schema"
)

// accumulator collects metric series for one aggregation scope.
type accumulator struct {
	total  int
	empty  int
	series map[schema.Metric][]float64
}

func newAccumulator() *accumulator {
	return &accumulator{
		series: make(map[schema.Metric][]float64, len(schema.Metrics)),
	}
}

// add applies the per-record scoring rule. A record whose trimmed answer is
// empty (or absent) charges a zero to every metric series, regardless of any
// metric values it may also carry. An answered record contributes only the
// metrics actually present on it; absent metrics are not zero-filled.
func (a *accumulator) add(rec schema.Record) error {
	a.total++

	answer, _ := rec[schema.AnswerField].(string)
	if strings.TrimSpace(answer) == "" {
		a.empty++
		for _, m := range schema.Metrics {
			a.series[m] = append(a.series[m], 0)
		}
		return nil
	}

	for _, m := range schema.Metrics {
		raw, ok := rec[string(m)]
		if !ok {
			continue
		}
		// JSON numbers decode to float64; anything else is a bad record.
		v, ok := raw.(float64)
		if !ok {
			return fmt.Errorf("metric %s has non-numeric value %v", m, raw)
		}
		a.series[m] = append(a.series[m], v)
	}
	return nil
}

// finalize computes summary statistics for every metric with at least one
// observed value. Metrics with an empty series are omitted entirely rather
// than reported as zero.
func (a *accumulator) finalize() schema.AggregateStats {
	stats := schema.AggregateStats{
		TotalRecords: a.total,
		EmptyAnswers: a.empty,
		Metrics:      make(map[schema.Metric]schema.MetricStats, len(schema.Metrics)),
	}
	for _, m := range schema.Metrics {
		vals := a.series[m]
		if len(vals) == 0 {
			continue
		}
		stats.Metrics[m] = schema.MetricStats{
			Count: len(vals),
			Mean:  mean(vals),
			Std:   sampleStd(vals),
		}
	}
	return stats
}

// AggregateFile reads one JSONL scores file and produces the aggregate
// statistics for that scope.
func AggregateFile(path string) (schema.AggregateStats, error) {
	acc := newAccumulator()
	if err := readRecords(path, acc.add); err != nil {
		return schema.AggregateStats{}, err
	}
	return acc.finalize(), nil
}
