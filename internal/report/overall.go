package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/sweqa/scoreagg/schema"
)

// FormatOverallReport renders the cross-trajectory report: a title block,
// a per-trajectory table and the aggregate (mean of trajectory means)
// section. The output is plain text suitable for both console and file.
func FormatOverallReport(overall schema.OverallStats) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Overall scores for %s\n", overall.RepoName)
	fmt.Fprintf(&b, "Base path: %s\n", overall.BasePath)
	fmt.Fprintf(&b, "Trajectories: %d\n", len(overall.Trajectories))
	b.WriteString("\n")

	if err := writeTrajectoryTable(&b, overall.Trajectories); err != nil {
		return "", err
	}

	b.WriteString("\n")
	b.WriteString("Aggregate across trajectories (mean of trajectory means)\n")
	fmt.Fprintf(&b, "Total records: %d\n", overall.TotalRecords)
	fmt.Fprintf(&b, "Empty answers (scored as 0): %d\n", overall.EmptyAnswers)
	b.WriteString("\n")

	for _, m := range schema.Metrics {
		ms, ok := overall.Metrics[m]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%-15s mean=%.2f  std=%.2f\n", m, ms.Mean, ms.Std)
	}

	return b.String(), nil
}

// writeTrajectoryTable renders one row per trajectory in ascending name
// order, with the two headline metrics shown as 0.00 when absent.
func writeTrajectoryTable(b *strings.Builder, trajs []schema.TrajectoryStats) error {
	table := tablewriter.NewWriter(b)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Trajectory", "Records", "Empty", "Correctness", "Total Score"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, t := range trajs {
		data = append(data, []string{
			t.Name,
			strconv.Itoa(t.Stats.TotalRecords),
			strconv.Itoa(t.Stats.EmptyAnswers),
			fmt.Sprintf("%.2f", t.Stats.MetricMean(schema.MetricCorrectness)),
			fmt.Sprintf("%.2f", t.Stats.MetricMean(schema.MetricTotalScore)),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
