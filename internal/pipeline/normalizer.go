package pipeline

import (
	"github.com/Nancy240/Forest-monitoring-data/internal/domain"
)

// RowNormalizer implements Normalizer using the domain normalization rules.
type RowNormalizer struct{}

// NewNormalizer creates a RowNormalizer.
func NewNormalizer() *RowNormalizer {
	return &RowNormalizer{}
}

func (n *RowNormalizer) Normalize(raw domain.RawRow) (domain.SensorReading, error) {
	return domain.NormalizeRow(raw)
}
