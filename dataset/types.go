package dataset

/*
Row represents one image of the dataset with its embedding and label-noise
statistics. The derived fields are filled in once by a Deriver.
*/
type Row struct {
	// position in the input, starting at 0
	Index int `json:"index"`

	URL              string  `json:"url"`
	X                float64 `json:"embeddings2d_x"`
	Y                float64 `json:"embeddings2d_y"`
	LabelIdx         int     `json:"label_idx"`
	LabelString      string  `json:"label_string"`
	NoisyLabelIdx    int     `json:"noisy_label_idx"`
	NoisyLabelString string  `json:"noisy_label_string"`
	InclusionProb    float64 `json:"inclusion_prob"`
	ExclusionProb    float64 `json:"exclusion_prob"`

	// derived
	ImageURL    string `json:"image_url"`
	Color       string `json:"color"`
	Highlighted bool   `json:"high_both"`
}

/*
Required column names of the input dataset
*/
const (
	ColumnURL              = "url"
	ColumnLabelIdx         = "label_idx"
	ColumnLabelString      = "label_string"
	ColumnNoisyLabelIdx    = "noisy_label_idx"
	ColumnNoisyLabelString = "noisy_label_string"
	ColumnInclusionProb    = "inclusion_prob"
	ColumnExclusionProb    = "exclusion_prob"
	ColumnX                = "embeddings2d_x"
	ColumnY                = "embeddings2d_y"
)

// RequiredColumns lists every column the loader needs, in documentation order.
var RequiredColumns = []string{
	ColumnURL,
	ColumnLabelIdx,
	ColumnLabelString,
	ColumnNoisyLabelIdx,
	ColumnNoisyLabelString,
	ColumnInclusionProb,
	ColumnExclusionProb,
	ColumnX,
	ColumnY,
}
