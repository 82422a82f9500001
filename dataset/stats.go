package dataset

import (
	"math"
	"sort"
)

/*
Bounds is the axis-aligned extent of the 2D embeddings
*/
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

/*
Summary describes a derived dataset.

Contains the row counts, the number of rows whose noisy label disagrees
with the original label and the embedding extent.
*/
type Summary struct {
	Rows        int
	Highlighted int
	// rows with label_idx != noisy_label_idx
	Disagreements int
	// rows per original label string
	PerLabel map[string]int
	Bounds   Bounds
}

/*
Summarize computes the summary of rows. Bounds are zero for an empty input.
*/
func Summarize(rows []Row) Summary {
	s := Summary{
		Rows:     len(rows),
		PerLabel: make(map[string]int),
	}
	if len(rows) == 0 {
		return s
	}

	s.Bounds = Bounds{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}

	for _, row := range rows {
		if row.Highlighted {
			s.Highlighted++
		}
		if row.LabelIdx != row.NoisyLabelIdx {
			s.Disagreements++
		}
		s.PerLabel[row.LabelString]++

		s.Bounds.MinX = math.Min(s.Bounds.MinX, row.X)
		s.Bounds.MaxX = math.Max(s.Bounds.MaxX, row.X)
		s.Bounds.MinY = math.Min(s.Bounds.MinY, row.Y)
		s.Bounds.MaxY = math.Max(s.Bounds.MaxY, row.Y)
	}

	return s
}

/*
NoiseRate returns the fraction of rows whose labels disagree
*/
func (s Summary) NoiseRate() float64 {
	if s.Rows == 0 {
		return 0
	}
	return float64(s.Disagreements) / float64(s.Rows)
}

/*
Labels returns the label strings in sorted order
*/
func (s Summary) Labels() []string {
	labels := make([]string, 0, len(s.PerLabel))
	for label := range s.PerLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
