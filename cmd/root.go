package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/luyichen/kaobang/internal/llm"
	"github.com/luyichen/kaobang/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kaobang",
	Short: "Exam question ingestion and explanation pipeline",
	Long:  "Kaobang — classifies Taiwanese exam questions, routes them to the right solver, and normalizes the resulting explanations.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite event database (overrides the default path)")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Read the question text from a file instead of arguments")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(conservativeCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the event database path: --db flag first, then
// the default location.
func resolveDBPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p
	}
	return store.DefaultDBPath()
}

// readQuestion gets the question text from --file, the arguments, or
// stdin, in that order.
func readQuestion(cmd *cobra.Command, args []string) (string, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read question file: %w", err)
		}
		return string(data), nil
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no question text given: pass it as arguments, --file, or stdin")
	}
	return string(data), nil
}

// resolveLLMConfig reads KAOBANG_* variables first, falling back to
// the standard vendor key variables.
func resolveLLMConfig() (llm.Config, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		return cfg, nil
	}
	if discovered, ok := llm.DiscoverConfig(); ok {
		return discovered, nil
	}
	return llm.Config{}, fmt.Errorf("no LLM credentials found: set KAOBANG_ANTHROPIC_API_KEY, KAOBANG_OPENAI_API_KEY or KAOBANG_GEMINI_API_KEY")
}
