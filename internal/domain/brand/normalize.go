package brand

import "strings"

// Older clients stored each field with a label prefix ("ICP: ...").
// StripLegacyPrefix removes them so the stored value is the bare text.
var legacyPrefixes = map[string][]string{
	"ideal_customer":    {"ICP: "},
	"icp_pain_points":   {"ICP Pain points: ", "Pain points: "},
	"unique_value":      {"Unique value: "},
	"proof_points":      {"Proof points: "},
	"energizing_topics": {"Energizing topics: "},
	"decision_maker":    {"Decision maker: "},
}

func StripLegacyPrefix(field, value string) string {
	for _, p := range legacyPrefixes[field] {
		if strings.HasPrefix(value, p) {
			return strings.TrimSpace(strings.TrimPrefix(value, p))
		}
	}
	return strings.TrimSpace(value)
}

// Normalize strips legacy prefixes from every scalar attribute in place.
func (a *Analysis) Normalize() {
	norm := func(field string, v *string) *string {
		if v == nil {
			return nil
		}
		s := StripLegacyPrefix(field, *v)
		return &s
	}
	a.IdealCustomer = norm("ideal_customer", a.IdealCustomer)
	a.ICPPainPoints = norm("icp_pain_points", a.ICPPainPoints)
	a.UniqueValue = norm("unique_value", a.UniqueValue)
	a.ProofPoints = norm("proof_points", a.ProofPoints)
	a.EnergizingTopics = norm("energizing_topics", a.EnergizingTopics)
	a.DecisionMaker = norm("decision_maker", a.DecisionMaker)
}
