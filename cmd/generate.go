package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidquiz/internal/config"
	"github.com/abhisek/vidquiz/internal/llm"
	"github.com/abhisek/vidquiz/internal/logger"
	"github.com/abhisek/vidquiz/internal/quizgen"
	"github.com/abhisek/vidquiz/internal/subtitle"
	"github.com/abhisek/vidquiz/internal/transcript"
)

var generateCmd = &cobra.Command{
	Use:   "generate <subtitle-file>",
	Short: "Generate quiz questions from a subtitle file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		qtypeFlag, _ := cmd.Flags().GetString("type")
		count, _ := cmd.Flags().GetInt("count")
		window, _ := cmd.Flags().GetInt("window")
		videoID, _ := cmd.Flags().GetString("video-id")

		qtype := quizgen.ItemType(qtypeFlag)
		if !quizgen.ValidType(qtype) {
			return fmt.Errorf("unknown question type %q", qtypeFlag)
		}
		cfg := config.Default()
		if count < cfg.Quiz.MinCount {
			count = cfg.Quiz.MinCount
		}
		if count > cfg.Quiz.MaxCount {
			count = cfg.Quiz.MaxCount
		}
		if videoID == "" {
			base := filepath.Base(path)
			videoID = strings.TrimSuffix(base, filepath.Ext(base))
		}

		segments, err := subtitle.Parse(path)
		if err != nil {
			return fmt.Errorf("parse subtitles: %w", err)
		}
		chunks := transcript.Group(segments, window)
		if len(chunks) == 0 {
			return fmt.Errorf("no content found in %s", path)
		}

		provider, err := llm.NewProviderFromEnv(cmd.Context(), logger.Nop())
		if err != nil {
			return fmt.Errorf("resolve provider: %w", err)
		}

		source := make([]quizgen.SourceChunk, len(chunks))
		for i, c := range chunks {
			source[i] = quizgen.SourceChunk{Text: c.Text, StartTime: c.StartTime, EndTime: c.EndTime}
		}

		assembler := quizgen.NewAssembler(quizgen.New(provider, quizgen.DefaultConfig()))
		result := assembler.Assemble(cmd.Context(), quizgen.AssembleInput{
			Chunks:      source,
			VideoID:     videoID,
			TargetCount: count,
			Type:        qtype,
		})

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Items)
	},
}

func init() {
	generateCmd.Flags().StringP("type", "t", string(quizgen.TypeMultipleChoice),
		"Question type (multiple_choice, fill_in_the_blank, short_answer, mixed)")
	generateCmd.Flags().IntP("count", "c", config.Default().Quiz.DefaultCount, "Number of questions to generate")
	generateCmd.Flags().IntP("window", "w", config.Default().Quiz.WindowSize, "Segments per content chunk")
	generateCmd.Flags().String("video-id", "", "Video ID to stamp on generated questions (defaults to the file name)")
}
