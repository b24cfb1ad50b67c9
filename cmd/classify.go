package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/luyichen/kaobang/internal/qset"
	"github.com/luyichen/kaobang/internal/subject"
	"github.com/luyichen/kaobang/internal/textnorm"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [question text...]",
	Short: "Run the offline classification pipeline on a question",
	Long:  "Runs the hard guard, the subject probes and the question-set analyzer without any LLM call, and prints the combined verdict as JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readQuestion(cmd, args)
		if err != nil {
			return err
		}

		normalized := textnorm.Normalize(text)

		guard := subject.RunHardGuard(normalized)
		probes := subject.NewProber().Probe(normalized)
		chosen := subject.PickExperts(probes, subject.DefaultArbiterConfig())
		hint := subject.DeriveSubjectHint(guard, chosen)
		analysis := qset.Analyze(text, qset.DefaultConfig())

		out := struct {
			Subject  subject.Subject           `json:"subject"`
			Guard    subject.HardGuardDecision `json:"guard"`
			Probes   []subject.ExpertProbe     `json:"probes"`
			Chosen   []subject.ExpertProbe     `json:"chosen"`
			Analysis qset.QuestionSetAnalysis  `json:"analysis"`
		}{hint, guard, probes, chosen, analysis}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return nil
	},
}
