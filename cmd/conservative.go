package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/luyichen/kaobang/internal/conservative"
	"github.com/luyichen/kaobang/internal/llm"
	"github.com/luyichen/kaobang/internal/store"
	"github.com/spf13/cobra"
)

var conservativeCmd = &cobra.Command{
	Use:   "conservative [question text...]",
	Short: "Explain a question through the conservative route",
	Long:  "Detects the question template from the closed taxonomy, requests the strictly-shaped slot-by-slot explanation and prints the typed result as JSON. Always exits zero with a typed answer, even when the LLM fails.",
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

		result := conservative.NewService(provider).Run(ctx, text)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return nil
	},
}
