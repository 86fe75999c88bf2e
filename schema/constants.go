package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// SourceBackend represents where records are loaded from.
	SourceBackend string

	// RankMetric represents the metric used for tag ranking.
	RankMetric string

	// SeriesKind represents which derived table an operation targets.
	SeriesKind string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All record source backends supported.
const (
	CSVSource        SourceBackend = "csv" // default
	SQLiteSource     SourceBackend = "sqlite"
	MySQLSource      SourceBackend = "mysql"
	PostgreSQLSource SourceBackend = "postgresql"
)

// All rank metrics supported.
const (
	PostsMetric  RankMetric = "posts" // default
	MonthsMetric RankMetric = "months"
)

// All series kinds supported.
const (
	WideKind    SeriesKind = "wide" // default
	RollingKind SeriesKind = "rolling"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidSourceBackends lists all valid record source backends.
var ValidSourceBackends = map[SourceBackend]struct{}{
	CSVSource:        {},
	SQLiteSource:     {},
	MySQLSource:      {},
	PostgreSQLSource: {},
}

// ValidRankMetrics lists all valid rank metrics.
var ValidRankMetrics = map[RankMetric]struct{}{
	PostsMetric:  {},
	MonthsMetric: {},
}

// ValidSeriesKinds lists all valid series kinds.
var ValidSeriesKinds = map[SeriesKind]struct{}{
	WideKind:    {},
	RollingKind: {},
}
