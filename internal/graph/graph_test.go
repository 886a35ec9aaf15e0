package graph

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	interfacesv1 "github.com/deepgram/deepgram-go-sdk/pkg/api/listen/v1/rest/interfaces"
)

func parseResponse(t *testing.T, raw string) *interfacesv1.PreRecordedResponse {
	t.Helper()
	var resp interfacesv1.PreRecordedResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return &resp
}

const sampleResponse = `{
	"metadata": {"duration": 125.5},
	"results": {"channels": [{"alternatives": [{
		"transcript": "hello again world",
		"words": [
			{"word": "hello", "start": 1.0, "end": 1.2},
			{"word": "again", "start": 59.9, "end": 60.1},
			{"word": "world", "start": 62.0, "end": 62.4}
		]
	}]}]}
}`

func TestWriteWordRate(t *testing.T) {
	resp := parseResponse(t, sampleResponse)
	path := filepath.Join(t.TempDir(), "talk_graph.html")

	if err := WriteWordRate(resp, "talk", path); err != nil {
		t.Fatalf("WriteWordRate: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading graph output: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty graph output")
	}
}

func TestWriteWordRate_MissingMetadata(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no metadata", `{"results": {"channels": []}}`},
		{"no results", `{"metadata": {"duration": 10}}`},
		{"empty response", `{}`},
	}

	for _, tt := range tests {
		resp := parseResponse(t, tt.raw)
		path := filepath.Join(t.TempDir(), "out_graph.html")

		if err := WriteWordRate(resp, "out", path); err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
		if _, err := os.Stat(path); err == nil {
			t.Errorf("%s: no graph file expected", tt.name)
		}
	}
}

func TestTotalMinutes(t *testing.T) {
	tests := []struct {
		duration float64
		want     int
	}{
		{0, 1},
		{59.9, 1},
		{60, 2},
		{125.5, 3},
	}

	for _, tt := range tests {
		resp := parseResponse(t, sampleResponse)
		resp.Metadata.Duration = tt.duration
		if got := totalMinutes(resp); got != tt.want {
			t.Errorf("totalMinutes(duration=%v) = %d, want %d", tt.duration, got, tt.want)
		}
	}
}

func TestWordCountSeries_BucketsByMinute(t *testing.T) {
	resp := parseResponse(t, sampleResponse)

	items := wordCountSeries(resp)
	if len(items) != 3 {
		t.Fatalf("got %d buckets, want 3", len(items))
	}

	// Words at 1.0s and 59.9s land in minute 0, 62.0s in minute 1.
	want := []int{2, 1, 0}
	for i, w := range want {
		if items[i].Value != w {
			t.Errorf("minute %d count = %v, want %d", i, items[i].Value, w)
		}
	}
}
