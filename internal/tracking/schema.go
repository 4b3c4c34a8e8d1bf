package tracking

const createTableSQL = `
CREATE TABLE IF NOT EXISTS checks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp DATETIME DEFAULT (datetime('now')),
	project TEXT NOT NULL,
	filters TEXT NOT NULL,
	shown_lines INTEGER NOT NULL,
	total_lines INTEGER NOT NULL,
	status INTEGER NOT NULL,
	exec_time_ms INTEGER NOT NULL
);
`

const cleanupSQL = `DELETE FROM checks WHERE timestamp < datetime('now', '-90 days');`

const insertSQL = `
INSERT INTO checks (project, filters, shown_lines, total_lines, status, exec_time_ms)
VALUES (?, ?, ?, ?, ?, ?);
`

const summarySQL = `
SELECT
	COUNT(*) as total_checks,
	COALESCE(SUM(status), 0) as failed_checks,
	COALESCE(SUM(exec_time_ms), 0) as total_time_ms
FROM checks;
`

const dailySQL = `
SELECT
	date(timestamp) as day,
	COUNT(*) as checks,
	SUM(status) as failed,
	SUM(shown_lines) as shown_lines,
	SUM(exec_time_ms) as time_ms
FROM checks
WHERE timestamp >= datetime('now', ? || ' days')
GROUP BY date(timestamp)
ORDER BY day DESC;
`

const recentSQL = `
SELECT project, filters, shown_lines, total_lines, status, exec_time_ms, timestamp
FROM checks
ORDER BY id DESC
LIMIT ?;
`

// Summary holds aggregate stats across all recorded checks.
type Summary struct {
	TotalChecks  int64
	FailedChecks int64
	TotalTimeMs  int64
}

// DayStats holds per-day aggregates.
type DayStats struct {
	Day        string
	Checks     int64
	Failed     int64
	ShownLines int64
	TimeMs     int64
}

// CheckRecord is one recorded check run.
type CheckRecord struct {
	Project    string
	Filters    string
	ShownLines int64
	TotalLines int64
	Status     int64
	ExecTimeMs int64
	Timestamp  string
}
