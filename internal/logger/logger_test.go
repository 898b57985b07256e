package logger

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"
)

func TestLogger_Log(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "log-test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name()) // nolint:errcheck
	defer tmpFile.Close()           // nolint:errcheck

	logger := New(LevelInfo, tmpFile)

	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "scrape cycle complete",
			fields:  Fields{"events": 3},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "debug message",
			want:    false, // won't log (below INFO)
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "fetching listing page failed",
			err:     errors.New("connection refused"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, _ := tmpFile.Seek(0, 2)

			logger.log(tt.level, tt.message, tt.fields, tt.err)

			after, _ := tmpFile.Seek(0, 2)
			logged := after > before

			if logged != tt.want {
				t.Errorf("log() logged = %v, want %v", logged, tt.want)
			}
		})
	}
}

func TestLogEntry_JSON(t *testing.T) {
	entry := LogEntry{
		Timestamp: "2026-07-04T00:00:00Z",
		Level:     "INFO",
		Message:   "post submitted",
		Fields: Fields{
			"titles": []string{"Show A", "Show B"},
		},
	}

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded LogEntry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded.Message != entry.Message {
		t.Errorf("Message = %q, want %q", decoded.Message, entry.Message)
	}
	if decoded.Level != entry.Level {
		t.Errorf("Level = %q, want %q", decoded.Level, entry.Level)
	}
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("scrape.cycles")
	m.IncrCounter("scrape.cycles")
	m.AddCounter("scrape.events", 3)
	m.RecordTiming("fetch.listing", 100*time.Millisecond)
	m.RecordTiming("fetch.listing", 300*time.Millisecond)

	snapshot := m.GetSnapshot()

	counters := snapshot["counters"].(map[string]int64)
	if counters["scrape.cycles"] != 2 {
		t.Errorf("scrape.cycles = %d, want 2", counters["scrape.cycles"])
	}
	if counters["scrape.events"] != 3 {
		t.Errorf("scrape.events = %d, want 3", counters["scrape.events"])
	}

	timings := snapshot["timings"].(map[string]map[string]interface{})
	stats, ok := timings["fetch.listing"]
	if !ok {
		t.Fatal("fetch.listing timing missing from snapshot")
	}
	if stats["count"] != 2 {
		t.Errorf("timing count = %v, want 2", stats["count"])
	}
	if stats["average"] != "200ms" {
		t.Errorf("timing average = %v, want 200ms", stats["average"])
	}
}
