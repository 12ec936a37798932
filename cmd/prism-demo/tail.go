package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/five82/prism/logfmt"
)

// readRecords parses the trailing maxLines records of a JSON-lines log
// file. Records are decoded while scanning so only the retained window
// is kept in memory; blank lines do not count against the window. A
// missing file yields no records rather than an error, so the demo can
// point at a log that has not been written yet.
func readRecords(path string, maxLines int) ([]logfmt.Record, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]logfmt.Record, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	next := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		ring[next] = parseRecord(line)
		next = (next + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	records := make([]logfmt.Record, count)
	start := (next - count + maxLines) % maxLines
	for i := range records {
		records[i] = ring[(start+i)%maxLines]
	}
	return records, nil
}
