package schema

// Custom string types for type safety.
type (
	// Metric represents one of the fixed scoring dimensions.
	Metric string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string
)

// The fixed scoring dimensions recorded per evaluated record.
const (
	MetricCorrectness  Metric = "correctness"
	MetricCompleteness Metric = "completeness"
	MetricRelevance    Metric = "relevance"
	MetricClarity      Metric = "clarity"
	MetricReasoning    Metric = "reasoning"
	MetricTotalScore   Metric = "total_score"
)

// Metrics lists the scoring dimensions in report order. The composition and
// order never change anywhere in the pipeline; reports omit a metric only
// when zero values were observed for it in that scope.
var Metrics = []Metric{
	MetricCorrectness,
	MetricCompleteness,
	MetricRelevance,
	MetricClarity,
	MetricReasoning,
	MetricTotalScore,
}

// AnswerField is the record field holding the candidate answer text.
// A record whose trimmed answer is empty is scored as 0 on every metric.
const AnswerField = "candidate_answer"

// TrajectoryPrefix is the directory name prefix that marks one independent
// run whose results are compared against sibling trajectories.
const TrajectoryPrefix = "traj_"

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
