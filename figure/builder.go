package figure

import (
	"fmt"

	"github.com/google/uuid"

	"noise-viz/config"
	"noise-viz/dataset"
)

/*
Style is the trace styling shared by both groups of points.
*/
type Style struct {
	RestName          string
	HighlightName     string
	LabelCaption      string
	NoisyLabelCaption string
	MarkerSize        int
	MarkerOpacity     float64
	HighlightLine     MarkerLine
}

/*
StyleFromConfig builds the trace style from the chart configuration
*/
func StyleFromConfig(cfg config.ChartConfig) Style {
	return Style{
		RestName:          cfg.RestName,
		HighlightName:     cfg.HighlightName,
		LabelCaption:      cfg.LabelCaption,
		NoisyLabelCaption: cfg.NoisyLabelCaption,
		MarkerSize:        cfg.MarkerSize,
		MarkerOpacity:     cfg.MarkerOpacity,
		HighlightLine: MarkerLine{
			Color: cfg.HighlightLineColor,
			Width: cfg.HighlightLineWidth,
		},
	}
}

/*
Build creates the scatter figure for derived rows.

Rows that are not highlighted form the first trace, highlighted rows the
second one; the highlighted markers get a border stroke. The layout is the
static DefaultLayout.
*/
func Build(rows []dataset.Row, style Style) Figure {
	rest, highlighted := dataset.Partition(rows)

	restTrace := newTrace(rest, style.RestName, style)

	highlightTrace := newTrace(highlighted, style.HighlightName, style)
	line := style.HighlightLine
	highlightTrace.Marker.Line = &line

	return Figure{
		Data:   []Trace{restTrace, highlightTrace},
		Layout: DefaultLayout(),
	}
}

func newTrace(rows []dataset.Row, name string, style Style) Trace {
	trace := Trace{
		Type:       "scatter",
		UID:        uuid.NewString(),
		Name:       name,
		Mode:       "markers",
		X:          make([]float64, 0, len(rows)),
		Y:          make([]float64, 0, len(rows)),
		HoverInfo:  "text",
		Text:       make([]string, 0, len(rows)),
		CustomData: make([][]interface{}, 0, len(rows)),
		Marker: Marker{
			Size:    style.MarkerSize,
			Opacity: style.MarkerOpacity,
			Color:   make([]string, 0, len(rows)),
		},
	}

	for _, row := range rows {
		trace.X = append(trace.X, row.X)
		trace.Y = append(trace.Y, row.Y)
		trace.Marker.Color = append(trace.Marker.Color, row.Color)
		trace.Text = append(trace.Text, HoverText(row, style))
		trace.CustomData = append(trace.CustomData, CustomData(row))
	}

	return trace
}

/*
HoverText formats the hover label of a point.
*/
func HoverText(row dataset.Row, style Style) string {
	return fmt.Sprintf("Index: %d<br>%s: %s<br>%s: %s<br>Incl. Prob: %.2f<br>Excl. Prob: %.2f",
		row.Index,
		style.LabelCaption, row.LabelString,
		style.NoisyLabelCaption, row.NoisyLabelString,
		row.InclusionProb, row.ExclusionProb)
}

/*
CustomData returns the payload attached to a point for client-side handlers.
*/
func CustomData(row dataset.Row) []interface{} {
	return []interface{}{
		row.ImageURL,
		row.LabelString,
		row.NoisyLabelString,
		row.InclusionProb,
		row.ExclusionProb,
	}
}
