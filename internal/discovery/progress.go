package discovery

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a crawl progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel

	// Cycle is the 1-based cycle the event belongs to, 0 before the first cycle.
	Cycle int

	// Collected is the number of unique tracks collected so far.
	Collected int

	// Visited is the number of distinct artists visited so far.
	Visited int
}
