package logfmt

import (
	"strings"
	"time"

	"github.com/five82/prism/span"
)

// Level is a severity name with its numeric rank.
type Level struct {
	Name string
	Rank int
}

var (
	LevelDebug = Level{Name: "DEBUG", Rank: 10}
	LevelInfo  = Level{Name: "INFO", Rank: 20}
	LevelWarn  = Level{Name: "WARN", Rank: 30}
	LevelError = Level{Name: "ERROR", Rank: 40}
)

// ParseLevel maps a level name onto a known level, defaulting to INFO
// for anything unrecognized.
func ParseLevel(name string) Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG", "TRACE":
		return LevelDebug
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR", "FATAL":
		return LevelError
	default:
		return LevelInfo
	}
}

// Field aliases span.Field so callers building records do not need to
// import the span package.
type Field = span.Field

// Record is one log event as supplied by a collaborator: a handler, a
// log-file reader, or a test.
type Record struct {
	Time    time.Time
	Level   Level
	Message string

	// Logger identifies the emitting logger or component; it drives
	// deterministic identity coloring and may be empty.
	Logger string

	Err    error
	Stack  string
	Fields []span.Field
}
