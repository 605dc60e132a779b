package model

import (
	P "seqmine/pattern"
)

// ColumnSelection selects which dataset columns form the sequences.
// MinLength and MaxLength optionally drop sequences outside the range
// after grouping.
type ColumnSelection struct {
	SequenceIdColumn string `json:"sequence_id_column" binding:"required"`
	ItemColumn       string `json:"item_column" binding:"required"`
	TimestampColumn  string `json:"timestamp_column"`
	MinLength        int    `json:"min_length" binding:"omitempty,gte=1"`
	MaxLength        int    `json:"max_length" binding:"omitempty,gte=1"`
}

// MiningParams are the caller-facing mining parameters. Binding rejects
// the obvious out-of-range values; the engine revalidates defensively.
type MiningParams struct {
	MinSupport       float64 `json:"min_support" binding:"required,gt=0,lte=1"`
	MaxPatternLength int     `json:"max_pattern_length" binding:"omitempty,gte=1"`
}

type MiningResult struct {
	Patterns       []P.Pattern `json:"patterns"`
	TotalPatterns  int         `json:"total_patterns"`
	TotalSequences int         `json:"total_sequences"`
	MinSupportUsed float64     `json:"min_support_used"`
	ExecutionTime  float64     `json:"execution_time"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
