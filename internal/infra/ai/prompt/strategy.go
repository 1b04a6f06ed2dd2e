package prompt

import (
	"fmt"
	"strings"

	"github.com/mylance/mylance-api/internal/domain/brand"
)

// Strategy builds the content-strategy request from the saved customer data.
func Strategy(a *brand.Analysis, global string) string {
	var b strings.Builder
	b.WriteString("Create a LinkedIn content strategy for a consultant with the following information:\n")
	writeField(&b, "Ideal Customer", a.IdealCustomer)
	writeField(&b, "Pain Points", a.ICPPainPoints)
	writeField(&b, "Unique Value", a.UniqueValue)
	writeField(&b, "Proof Points", a.ProofPoints)
	writeField(&b, "Energizing Topics", a.EnergizingTopics)
	writeField(&b, "Decision Makers", a.DecisionMaker)
	if len(a.ContentPillars) > 0 {
		fmt.Fprintf(&b, "Content Pillars: %s\n", strings.Join(a.ContentPillars, "; "))
	}
	if len(a.KeyTopics) > 0 {
		fmt.Fprintf(&b, "Key Topics: %s\n", strings.Join(a.KeyTopics, "; "))
	}
	if global != "" {
		b.WriteString("\nAlign the strategy with this overall thought-leadership direction:\n")
		b.WriteString(global)
		b.WriteString("\n")
	}
	return b.String()
}

// Refine builds the feedback-driven rewrite request.
func Refine(current, feedback string) string {
	return fmt.Sprintf(`Here is an existing LinkedIn content strategy:

%s

Rewrite it applying this feedback, keeping everything that was not criticized:

%s`, current, feedback)
}

func writeField(b *strings.Builder, label string, v *string) {
	if v == nil || *v == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, *v)
}
