// Package graph renders a words-per-minute bar chart from a transcription
// response, as a quick visual of speaking pace across the recording.
package graph

import (
	"errors"
	"fmt"
	"math"
	"os"

	interfacesv1 "github.com/deepgram/deepgram-go-sdk/pkg/api/listen/v1/rest/interfaces"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteWordRate writes an HTML bar chart of the response's word count per
// minute of audio to path. The metadata and results blocks are optional
// in the response schema, so both are checked before use.
func WriteWordRate(resp *interfacesv1.PreRecordedResponse, title, path string) error {
	if resp.Metadata == nil {
		return errors.New("response has no metadata: cannot compute word rate")
	}
	if resp.Results == nil {
		return errors.New("response has no results: cannot compute word rate")
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title: title,
	}))

	bar.SetXAxis(minuteSeries(resp)).
		AddSeries("Words", wordCountSeries(resp))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating graph file: %w", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("rendering graph: %w", err)
	}
	return nil
}

func totalMinutes(resp *interfacesv1.PreRecordedResponse) int {
	return int(math.Trunc(resp.Metadata.Duration/60) + 1)
}

func minuteSeries(resp *interfacesv1.PreRecordedResponse) []int {
	items := make([]int, totalMinutes(resp))
	for i := range items {
		items[i] = i
	}
	return items
}

func wordCountSeries(resp *interfacesv1.PreRecordedResponse) []opts.BarData {
	counts := make([]int, totalMinutes(resp))
	for _, c := range resp.Results.Channels {
		if len(c.Alternatives) == 0 {
			continue
		}
		for _, w := range c.Alternatives[0].Words {
			minute := int(w.Start / 60)
			if minute >= 0 && minute < len(counts) {
				counts[minute]++
			}
		}
	}

	items := make([]opts.BarData, len(counts))
	for i, n := range counts {
		items[i] = opts.BarData{Value: n}
	}
	return items
}
