package dataset

import (
	"noise-viz/config"
	"noise-viz/palette"
)

/*
Thresholds are the strict lower bounds of the highlight condition.
*/
type Thresholds struct {
	Inclusion float64
	Exclusion float64
}

/*
Deriver fills in the derived columns of loaded rows: the image URL, the
label color and the highlight flag.
*/
type Deriver struct {
	BaseURL    string
	Extension  string
	NumClasses int
	Colormap   *palette.Colormap
	Thresholds Thresholds
}

/*
NewDeriver creates a deriver from the configuration using the tab10 palette
*/
func NewDeriver(cfg *config.Config) *Deriver {
	return &Deriver{
		BaseURL:    cfg.Input.ImageBaseURL,
		Extension:  cfg.Input.ImageExtension,
		NumClasses: cfg.Palette.NumClasses,
		Colormap:   palette.Tab10(),
		Thresholds: Thresholds{
			Inclusion: cfg.Highlight.InclusionThreshold,
			Exclusion: cfg.Highlight.ExclusionThreshold,
		},
	}
}

/*
Apply sets the derived fields of every row in place.
*/
func (d *Deriver) Apply(rows []Row) {
	// the color of a label never changes within a run
	colors := make(map[int]string)

	for i := range rows {
		row := &rows[i]
		row.ImageURL = ImageURL(d.BaseURL, row.URL, d.Extension)

		color, ok := colors[row.LabelIdx]
		if !ok {
			color = d.Colormap.Label(row.LabelIdx, d.NumClasses).String()
			colors[row.LabelIdx] = color
		}
		row.Color = color

		row.Highlighted = IsHighlighted(*row, d.Thresholds)
	}
}

/*
ImageURL joins the base path, the row identifier and the extension.
*/
func ImageURL(base, id, extension string) string {
	return base + id + extension
}

/*
IsHighlighted reports whether both probabilities are strictly above their
thresholds and the noisy label disagrees with the original label.
*/
func IsHighlighted(row Row, t Thresholds) bool {
	return row.InclusionProb > t.Inclusion &&
		row.ExclusionProb > t.Exclusion &&
		row.LabelIdx != row.NoisyLabelIdx
}

/*
Partition splits rows by their highlight flag, keeping input order within
each group. Both groups are non-nil.
*/
func Partition(rows []Row) (rest, highlighted []Row) {
	rest = make([]Row, 0, len(rows))
	highlighted = make([]Row, 0)

	for _, row := range rows {
		if row.Highlighted {
			highlighted = append(highlighted, row)
		} else {
			rest = append(rest, row)
		}
	}
	return rest, highlighted
}
