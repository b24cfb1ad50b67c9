// Package subject decides which academic domain a question belongs to.
// A deterministic hard guard handles unambiguous math input; weighted
// expert probes score everything else; the arbiter combines the two.
package subject

// Subject is a top-level academic domain.
type Subject string

const (
	SubjectEnglish Subject = "english"
	SubjectMath    Subject = "math"
	SubjectChinese Subject = "chinese"
	SubjectSocial  Subject = "social"
	SubjectScience Subject = "science"
	SubjectUnknown Subject = "unknown"

	// SubjectNone is the hard guard's "no opinion" value. It never
	// appears in a SubjectHint.
	SubjectNone Subject = "none"
)

// KnownSubjects lists the five scorable subjects in declaration order.
// Probe output preserves this order for equal confidences.
func KnownSubjects() []Subject {
	return []Subject{SubjectEnglish, SubjectMath, SubjectChinese, SubjectSocial, SubjectScience}
}

// ExpertProbe is one subject scorer's confidence-tagged opinion.
type ExpertProbe struct {
	Subject    Subject  `json:"subject"`
	Confidence float64  `json:"confidence"` // always within [0,1]
	Tags       []string `json:"tags"`
	Notes      string   `json:"notes"`
}

// HardGuardDecision is the deterministic math detector's verdict.
// Subject is either SubjectMath or SubjectNone, never "maybe".
type HardGuardDecision struct {
	Subject       Subject  `json:"subject"`
	Reason        string   `json:"reason"`
	MatchedTokens []string `json:"matchedTokens"`
}
