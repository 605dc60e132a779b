package model

// DatasetPreview summarises an uploaded dataset for the client.
type DatasetPreview struct {
	Id          string              `json:"id"`
	Filename    string              `json:"filename"`
	Rows        int                 `json:"rows"`
	Columns     []string            `json:"columns"`
	PreviewData []map[string]string `json:"preview_data"`
	FileSize    string              `json:"file_size"`
}

// SequenceStats describes the sequences built from a dataset.
type SequenceStats struct {
	TotalSequences    int        `json:"total_sequences"`
	UniqueItems       int        `json:"unique_items"`
	AvgSequenceLength float64    `json:"avg_sequence_length"`
	MinSequenceLength int        `json:"min_sequence_length"`
	MaxSequenceLength int        `json:"max_sequence_length"`
	SampleSequences   [][]string `json:"sample_sequences"`
}
