package pattern

// SequenceDatabase holds the input sequences for a mining run. It is built
// once and read-only afterwards, so concurrent reads are safe.
type SequenceDatabase struct {
	Sequences  [][]string
	TotalCount int
}

func NewSequenceDatabase(sequences [][]string) *SequenceDatabase {
	return &SequenceDatabase{
		Sequences:  sequences,
		TotalCount: len(sequences),
	}
}
