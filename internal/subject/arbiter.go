package subject

// ArbiterConfig holds the arbitration tunables. They are passed
// explicitly rather than read from package state so tests and goldset
// runs can vary them per call.
type ArbiterConfig struct {
	// Threshold is the minimum probe confidence to survive filtering.
	Threshold float64 `json:"threshold"`

	// TopK caps how many surviving probes are kept.
	TopK int `json:"topK"`
}

// DefaultArbiterConfig returns the tuned production values.
func DefaultArbiterConfig() ArbiterConfig {
	return ArbiterConfig{Threshold: 0.55, TopK: 1}
}

// PickExperts filters probes to those at or above the threshold and
// keeps the first TopK. The input is already sorted descending by the
// probe-producer contract, so no re-sort happens here.
func PickExperts(probes []ExpertProbe, cfg ArbiterConfig) []ExpertProbe {
	var chosen []ExpertProbe
	for _, p := range probes {
		if p.Confidence < cfg.Threshold {
			continue
		}
		chosen = append(chosen, p)
		if cfg.TopK > 0 && len(chosen) >= cfg.TopK {
			break
		}
	}
	return chosen
}

// DeriveSubjectHint combines the hard guard with the chosen experts.
// The guard dominates unconditionally: equations mixed with English
// instructions must never arbitrate to a language subject. With no
// guard match and no surviving expert the hint degrades to
// SubjectUnknown, which callers treat as "use the generic solver",
// never as an error.
func DeriveSubjectHint(guard HardGuardDecision, chosen []ExpertProbe) Subject {
	if guard.Subject == SubjectMath {
		return SubjectMath
	}
	if len(chosen) == 0 {
		return SubjectUnknown
	}
	switch s := chosen[0].Subject; s {
	case SubjectEnglish, SubjectMath, SubjectChinese, SubjectSocial, SubjectScience:
		return s
	default:
		return SubjectUnknown
	}
}
