package stats

import "sort"

// VariantSummary pairs a strategy variant's name with its outcome summary
// against a common reference stake.
type VariantSummary struct {
	Variant string
	Summary Summary
	Mean    float64
	Edge    float64
}

// RankByEdge computes mean and edge per variant and sorts ascending by edge,
// so the variant that costs the player least comes first. Variants whose
// summaries are empty are skipped.
func RankByEdge(variants map[string]Summary, referenceStake float64) []VariantSummary {
	out := make([]VariantSummary, 0, len(variants))
	for name, s := range variants {
		mean, err := s.Mean()
		if err != nil {
			continue
		}
		edge, err := s.Edge(referenceStake)
		if err != nil {
			continue
		}
		out = append(out, VariantSummary{Variant: name, Summary: s, Mean: mean, Edge: edge})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Edge != out[j].Edge {
			return out[i].Edge < out[j].Edge
		}
		return out[i].Variant < out[j].Variant
	})
	return out
}
