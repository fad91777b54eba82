package enums

type Relevance string

const (
	// RelevanceHigh marks results scoring at least 40 points.
	RelevanceHigh Relevance = "highly relevant"

	// RelevanceMedium marks results scoring at least 20 points.
	RelevanceMedium Relevance = "relevant"

	RelevanceStandard Relevance = "standard"
)
