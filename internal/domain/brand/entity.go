package brand

import "time"

// AnalysisID identifier type
type AnalysisID string

// Analysis is the per-profile brand analysis ("customer data").
// All eight attributes are optional; a profile may have saved any subset.
type Analysis struct {
	ID               AnalysisID `json:"id"`
	ProfileID        string     `json:"profile_id"`
	IdealCustomer    *string    `json:"ideal_customer,omitempty"`
	ICPPainPoints    *string    `json:"icp_pain_points,omitempty"`
	UniqueValue      *string    `json:"unique_value,omitempty"`
	ProofPoints      *string    `json:"proof_points,omitempty"`
	EnergizingTopics *string    `json:"energizing_topics,omitempty"`
	DecisionMaker    *string    `json:"decision_maker,omitempty"`
	ContentPillars   []string   `json:"content_pillars,omitempty"`
	KeyTopics        []string   `json:"key_topics,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
