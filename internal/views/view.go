// Package views turns service payloads into presentation-ready views. A View is
// plain data: surfaces decide how to draw it.
package views

import "github.com/zra-sdk/zra-demo/internal/compliance"

// Kind identifies which payload a view was composed from.
type Kind string

const (
	KindTaxpayer         Kind = "taxpayer"
	KindTaxCalculation   Kind = "tax-calculation"
	KindCompliance       Kind = "compliance"
	KindComplianceReport Kind = "compliance-report"
)

// SectionKind identifies a block within a view.
type SectionKind string

const (
	SectionHeader            SectionKind = "header"
	SectionDetails           SectionKind = "details"
	SectionStatus            SectionKind = "status"
	SectionIssues            SectionKind = "issues"
	SectionTaxpayerInfo      SectionKind = "taxpayer-info"
	SectionComplianceSummary SectionKind = "compliance-summary"
	SectionRecommendations   SectionKind = "recommendations"
)

// Field is one labelled value. Class carries the presentation category for
// values that have one (a badge or a risk tier).
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Class string `json:"class,omitempty"`
}

// Section is an ordered block of fields and list items. When a list is empty and
// the section affirms that emptiness, Affirmation holds the text to show instead.
type Section struct {
	Kind        SectionKind `json:"kind"`
	Heading     string      `json:"heading,omitempty"`
	Subtitle    string      `json:"subtitle,omitempty"`
	Fields      []Field     `json:"fields,omitempty"`
	Items       []string    `json:"items,omitempty"`
	Affirmation string      `json:"affirmation,omitempty"`
}

// View is the rendered form of one successful response.
type View struct {
	Kind     Kind                `json:"kind"`
	Title    string              `json:"title"`
	Severity compliance.Severity `json:"severity"`
	Sections []Section           `json:"sections"`
}

// Section returns the first section of the given kind.
func (v View) Section(kind SectionKind) (Section, bool) {
	for _, s := range v.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// Field returns the value of the first field with the given label.
func (s Section) Field(label string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Label == label {
			return f, true
		}
	}
	return Field{}, false
}
