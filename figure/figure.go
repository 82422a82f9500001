package figure

/*
Figure is a Plotly figure definition: a list of traces and a layout.
*/
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

/*
Trace is a scatter trace drawn with markers.
*/
type Trace struct {
	Type      string    `json:"type"`
	UID       string    `json:"uid,omitempty"`
	Name      string    `json:"name"`
	Mode      string    `json:"mode"`
	X         []float64 `json:"x"`
	Y         []float64 `json:"y"`
	Marker    Marker    `json:"marker"`
	HoverInfo string    `json:"hoverinfo"`
	Text      []string  `json:"text"`
	// per point: image URL, label, noisy label, inclusion and exclusion probability
	CustomData [][]interface{} `json:"customdata"`
}

/*
Marker styles the points of a trace.
*/
type Marker struct {
	Size    int         `json:"size"`
	Opacity float64     `json:"opacity"`
	Color   []string    `json:"color"`
	Line    *MarkerLine `json:"line,omitempty"`
}

/*
MarkerLine is the border stroke around markers.
*/
type MarkerLine struct {
	Color string `json:"color"`
	Width int    `json:"width"`
}

/*
Layout holds the static styling of the figure.
*/
type Layout struct {
	PlotBGColor  string `json:"plot_bgcolor"`
	PaperBGColor string `json:"paper_bgcolor"`
	XAxis        Axis   `json:"xaxis"`
	YAxis        Axis   `json:"yaxis"`
	Margin       Margin `json:"margin"`
	Legend       Legend `json:"legend"`
}

/*
Axis configures one axis of the plot.
*/
type Axis struct {
	ShowGrid       bool   `json:"showgrid"`
	ShowTickLabels bool   `json:"showticklabels"`
	ZeroLine       bool   `json:"zeroline"`
	LineColor      string `json:"linecolor"`
	LineWidth      int    `json:"linewidth"`
	// draw the axis line on the opposite side too
	Mirror bool `json:"mirror"`
}

/*
Margin of the plot area in pixels.
*/
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

/*
Legend placement and styling.
*/
type Legend struct {
	ItemSizing  string  `json:"itemsizing"`
	Orientation string  `json:"orientation"`
	X           float64 `json:"x"`
	XAnchor     string  `json:"xanchor"`
	Y           float64 `json:"y"`
	YAnchor     string  `json:"yanchor"`
	BGColor     string  `json:"bgcolor"`
}
