package report

import (
	"bytes"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ChartSVG renders a grouped bar chart of results, one group per algorithm
// and one bar per dataset, in milliseconds.
func ChartSVG(results []Result) (string, error) {
	if len(results) == 0 {
		return "", fmt.Errorf("no results to chart")
	}

	p := plot.New()
	p.Title.Text = "Sorting Algorithm Comparison"
	p.Y.Label.Text = "Time (ms)"
	p.Add(plotter.NewGrid())

	series := []struct {
		label string
		pick  func(Result) float64
	}{
		{"Random (mean)", func(r Result) float64 { return r.Random }},
		{"Nearly sorted", func(r Result) float64 { return r.NearlySorted }},
		{"Reverse sorted", func(r Result) float64 { return r.ReverseSorted }},
	}

	barWidth := vg.Points(14)
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Algorithm
	}

	for i, s := range series {
		values := make(plotter.Values, len(results))
		for j, r := range results {
			values[j] = s.pick(r)
		}
		floats.Scale(1000, values)

		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return "", fmt.Errorf("failed to build %s bars: %w", s.label, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = vg.Length(i-1) * barWidth

		p.Add(bars)
		p.Legend.Add(s.label, bars)
	}
	p.Legend.Top = true
	p.NominalX(names...)

	var buf bytes.Buffer
	writer, err := p.WriterTo(14*vg.Inch, 5*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	_, err = writer.WriteTo(&buf)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteChart renders results and writes the SVG to path.
func WriteChart(path string, results []Result) error {
	svg, err := ChartSVG(results)
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}
