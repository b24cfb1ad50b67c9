package solver

import (
	"fmt"

	"github.com/luyichen/kaobang/internal/subject"
)

const (
	maxDetails     = 4
	maxGrammarRows = 3
	expertTagMin   = 0.7
)

// refineExplanation folds the chosen expert's opinion into the LLM
// output: a subject tag on the summary when the expert is confident,
// its note spliced to the front of the details, and the grammar table
// capped for display.
func refineExplanation(e *ExplainResult, chosen []subject.ExpertProbe) {
	if len(chosen) > 0 {
		expert := chosen[0]

		if expert.Confidence > expertTagMin {
			if label := subjectLabel(expert.Subject); label != "" {
				e.Summary = fmt.Sprintf("【%s】%s", label, e.Summary)
			}
		}

		if expert.Notes != "" {
			e.Details = append([]string{"補充：" + expert.Notes}, e.Details...)
		}
	}

	if len(e.Details) > maxDetails {
		e.Details = e.Details[:maxDetails]
	}
	if len(e.GrammarTable) > maxGrammarRows {
		e.GrammarTable = e.GrammarTable[:maxGrammarRows]
	}
}
