package main

import (
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/five82/prism/logfmt"
)

// jsonRecord is the wire shape of one JSON-lines log event.
type jsonRecord struct {
	Time    string            `json:"time"`
	Level   string            `json:"level"`
	Message string            `json:"msg"`
	Logger  string            `json:"logger"`
	Error   string            `json:"error"`
	Stack   string            `json:"stack"`
	Fields  map[string]string `json:"fields"`
}

// parseRecord decodes one log line. Lines that are not JSON render as
// bare messages rather than being dropped.
func parseRecord(line string) logfmt.Record {
	var jr jsonRecord
	if err := json.Unmarshal([]byte(line), &jr); err != nil {
		return logfmt.Record{Level: logfmt.LevelInfo, Message: line}
	}
	return jr.record()
}

func (jr jsonRecord) record() logfmt.Record {
	rec := logfmt.Record{
		Level:   logfmt.ParseLevel(jr.Level),
		Message: jr.Message,
		Logger:  jr.Logger,
		Stack:   jr.Stack,
	}
	if parsed, err := time.Parse(time.RFC3339, jr.Time); err == nil {
		rec.Time = parsed.In(time.Local)
	}
	if jr.Error != "" {
		rec.Err = errors.New(jr.Error)
	}
	keys := make([]string, 0, len(jr.Fields))
	for k := range jr.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rec.Fields = append(rec.Fields, logfmt.Field{Key: k, Value: jr.Fields[k]})
	}
	return rec
}

// sampleRecords exercises each part of a formatted line.
func sampleRecords() []logfmt.Record {
	now := time.Now()
	return []logfmt.Record{
		{
			Time:    now.Add(-90 * time.Second),
			Level:   logfmt.LevelInfo,
			Logger:  "queue",
			Message: "item accepted",
			Fields:  []logfmt.Field{{Key: "item", Value: "42"}, {Key: "stage", Value: "identify"}},
		},
		{
			Time:    now.Add(-60 * time.Second),
			Level:   logfmt.LevelDebug,
			Logger:  "encoder",
			Message: "selected preset sdr-film",
		},
		{
			Time:    now.Add(-30 * time.Second),
			Level:   logfmt.LevelWarn,
			Logger:  "encoder",
			Message: "bitrate below target",
			Fields:  []logfmt.Field{{Key: "rate", Value: "1.2 Mbps"}},
		},
		{
			Time:    now,
			Level:   logfmt.LevelError,
			Logger:  "organizer",
			Message: "move failed",
			Err:     errors.New("disk full"),
			Stack:   "organizer.go:88\npipeline.go:31\nmain.go:12",
		},
	}
}
