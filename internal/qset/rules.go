package qset

// kindRule is one gate of the classification decision table. Rules are
// evaluated top to bottom and the first match wins, which keeps each
// gate testable on its own instead of burying the cascade in one
// opaque function.
type kindRule struct {
	name string
	when func(a *QuestionSetAnalysis, cfg Config) bool
	kind QuestionKind
}

func kindRules() []kindRule {
	return []kindRule{
		{
			// Word bank + passage blanks + no numbered questions:
			// classify by bank composition. Sentence-like entries mean
			// whole sentences get inserted.
			name: "bank-sentence-insertion",
			kind: KindSentenceInsertion,
			when: func(a *QuestionSetAnalysis, cfg Config) bool {
				return len(a.Blocks) == 0 &&
					len(a.WordBank) >= cfg.MinBankSize &&
					len(a.PassageBlanks) >= 1 &&
					sentenceRatio(a.WordBank, cfg) >= cfg.SentenceRatio
			},
		},
		{
			name: "bank-banked-cloze",
			kind: KindBankedCloze,
			when: func(a *QuestionSetAnalysis, cfg Config) bool {
				return len(a.Blocks) == 0 &&
					len(a.WordBank) >= cfg.MinBankSize &&
					len(a.PassageBlanks) >= 1 &&
					shortRatio(a.WordBank) >= cfg.ShortRatio
			},
		},
		{
			// One passage blank per question, short word options: the
			// questions fill the passage's blanks.
			name: "block-cloze",
			kind: KindCloze,
			when: func(a *QuestionSetAnalysis, cfg Config) bool {
				opts := blockOptions(a)
				return len(a.Blocks) >= 1 &&
					len(a.PassageBlanks) >= max(1, len(a.Blocks)) &&
					shortRatio(opts) >= cfg.ShortRatio &&
					sentenceRatio(opts, cfg) < 0.5
			},
		},
		{
			// Full option sets, blanks sparse relative to questions,
			// stems that are questions rather than blank carriers.
			name: "block-reading",
			kind: KindReading,
			when: func(a *QuestionSetAnalysis, cfg Config) bool {
				return len(a.Blocks) >= 1 &&
					avgOptionsPerBlock(a) >= cfg.MinAvgOptions &&
					2*len(a.PassageBlanks) <= len(a.Blocks) &&
					sentenceRatio(blockOptions(a), cfg) >= 0.2 &&
					blankInStemRatio(a) <= 0.5
			},
		},
		{
			name: "block-sentence-insertion",
			kind: KindSentenceInsertion,
			when: func(a *QuestionSetAnalysis, cfg Config) bool {
				return len(a.Blocks) >= 1 &&
					sentenceRatio(blockOptions(a), cfg) >= cfg.SentenceRatio &&
					len(a.PassageBlanks) >= 1
			},
		},
		{
			// Fallback gates for degraded input where block splitting
			// failed entirely: re-check bank and blank ratios globally.
			name: "global-banked-cloze",
			kind: KindBankedCloze,
			when: func(a *QuestionSetAnalysis, cfg Config) bool {
				return len(a.Blocks) == 0 &&
					len(a.GlobalOptions) >= cfg.MinBankSize &&
					len(a.GlobalBlanks) >= 2 &&
					shortRatio(a.GlobalOptions) >= cfg.ShortRatio
			},
		},
		{
			name: "global-sentence-insertion",
			kind: KindSentenceInsertion,
			when: func(a *QuestionSetAnalysis, cfg Config) bool {
				return len(a.Blocks) == 0 &&
					len(a.GlobalOptions) >= cfg.MinBankSize &&
					len(a.GlobalBlanks) >= 1 &&
					sentenceRatio(a.GlobalOptions, cfg) >= cfg.SentenceRatio
			},
		},
		{
			// Last structural fallback: option markers far denser than
			// detected questions is the signature of an OCR'd reading
			// set whose per-question structure got mangled.
			name: "marker-density-reading",
			kind: KindReading,
			when: func(a *QuestionSetAnalysis, cfg Config) bool {
				return len(a.Blocks) >= 1 &&
					len(a.GlobalOptions) >= 3*len(a.Blocks)
			},
		},
	}
}

// determineKind evaluates the rule table. Anything unmatched is
// KindUnknown, which callers must treat as "do not auto-route".
func determineKind(a *QuestionSetAnalysis, cfg Config) (QuestionKind, string) {
	for _, r := range kindRules() {
		if r.when(a, cfg) {
			return r.kind, r.name
		}
	}
	return KindUnknown, ""
}

func shortRatio(opts []OptionStat) float64 {
	if len(opts) == 0 {
		return 0
	}
	short := 0
	for _, o := range opts {
		if o.IsShort {
			short++
		}
	}
	return float64(short) / float64(len(opts))
}

// sentenceRatio is the fraction of options that read like sentences:
// final punctuation or at least SentenceMinTokens tokens.
func sentenceRatio(opts []OptionStat, cfg Config) float64 {
	if len(opts) == 0 {
		return 0
	}
	n := 0
	for _, o := range opts {
		if o.EndsWithPunctuation || o.Tokens >= cfg.SentenceMinTokens {
			n++
		}
	}
	return float64(n) / float64(len(opts))
}

func blockOptions(a *QuestionSetAnalysis) []OptionStat {
	var opts []OptionStat
	for _, b := range a.Blocks {
		opts = append(opts, b.Options...)
	}
	return opts
}

func avgOptionsPerBlock(a *QuestionSetAnalysis) float64 {
	if len(a.Blocks) == 0 {
		return 0
	}
	return float64(len(blockOptions(a))) / float64(len(a.Blocks))
}

func blankInStemRatio(a *QuestionSetAnalysis) float64 {
	if len(a.Blocks) == 0 {
		return 0
	}
	n := 0
	for _, b := range a.Blocks {
		if b.HasBlankInStem {
			n++
		}
	}
	return float64(n) / float64(len(a.Blocks))
}
