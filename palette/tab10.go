package palette

var tab10Colors = []string{
	"#1f77b4", // blue
	"#ff7f0e", // orange
	"#2ca02c", // green
	"#d62728", // red
	"#9467bd", // purple
	"#8c564b", // brown
	"#e377c2", // pink
	"#7f7f7f", // gray
	"#bcbd22", // olive
	"#17becf", // cyan
}

/*
Tab10 returns the ten color qualitative palette used for categorical labels.
*/
func Tab10() *Colormap {
	m, err := NewColormap("tab10", tab10Colors)
	if err != nil {
		panic(err)
	}
	return m
}
