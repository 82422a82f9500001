package figure

/*
DefaultLayout returns the static layout: white backgrounds, axes without
grid or ticks framed on all four sides, tight margins and a horizontal
legend centered below the plot.
*/
func DefaultLayout() Layout {
	axis := Axis{
		ShowGrid:       false,
		ShowTickLabels: false,
		ZeroLine:       false,
		LineColor:      "black",
		LineWidth:      2,
		Mirror:         true,
	}

	return Layout{
		PlotBGColor:  "white",
		PaperBGColor: "white",
		XAxis:        axis,
		YAxis:        axis,
		Margin:       Margin{L: 10, R: 10, T: 10, B: 10},
		Legend: Legend{
			ItemSizing:  "constant",
			Orientation: "h",
			X:           0.5,
			XAnchor:     "center",
			Y:           -0.05,
			YAnchor:     "top",
			BGColor:     "white",
		},
	}
}
