package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/luyichen/kaobang/internal/explaincard"
	"github.com/luyichen/kaobang/internal/llm"
	"github.com/luyichen/kaobang/internal/solver"
	"github.com/luyichen/kaobang/internal/store"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [question text...]",
	Short: "Solve a question through the general route",
	Long:  "Classifies the question, calls the configured LLM against the general-solver schema, refines the explanation and prints the normalized card as JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readQuestion(cmd, args)
		if err != nil {
			return err
		}

		cfg, err := resolveLLMConfig()
		if err != nil {
			return err
		}

		s, err := store.Open(resolveDBPath(cmd))
		if err != nil {
			return fmt.Errorf("open event database: %w", err)
		}
		defer s.Close()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()

		provider, err := llm.NewProvider(ctx, cfg, s)
		if err != nil {
			return err
		}

		resp, err := solver.New(provider, nil, solver.DefaultConfig()).Solve(ctx, text)
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}

		card := explaincard.NormalizeCard(map[string]any{
			"id":       resp.QuestionID,
			"question": text,
			"kind":     string(resp.Subject),
		})
		out := struct {
			*solver.Response
			Card explaincard.NormalizedCard `json:"card"`
		}{resp, card}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return nil
	},
}
