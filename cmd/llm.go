package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidquiz/internal/llm"
	"github.com/abhisek/vidquiz/internal/logger"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the configured LLM provider",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Resolve the provider from the environment and send a test request",
	RunE: func(cmd *cobra.Command, args []string) error {
		ping, _ := cmd.Flags().GetBool("ping")

		log := logger.Nop()
		provider, err := llm.NewProviderFromEnv(cmd.Context(), log)
		if err != nil {
			return fmt.Errorf("resolve provider: %w", err)
		}
		fmt.Printf("Model: %s\n", provider.ModelID())

		if !ping {
			return nil
		}

		start := time.Now()
		resp, err := provider.Generate(cmd.Context(), llm.Request{
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: "Reply with the single word: ok"}},
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("test request failed: %w", err)
		}
		fmt.Printf("Response:  %s\n", string(resp.Content))
		fmt.Printf("Latency:   %s\n", time.Since(start).Round(time.Millisecond))
		fmt.Printf("Tokens:    %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		return nil
	},
}

func init() {
	llmCheckCmd.Flags().Bool("ping", false, "Send a small test request to the provider")
	llmCmd.AddCommand(llmCheckCmd)
}
