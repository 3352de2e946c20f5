package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lunar-sanctum/sanctum-sdk-go/pkg/lore"
	"github.com/lunar-sanctum/sanctum-sdk-go/pkg/sanctum"
)

var playStages int

var loreCmd = &cobra.Command{
	Use:   "lore [stage]",
	Short: "Generate an archive log entry for a stage",
	Long: `Asks the configured GenAI model for a fragment of Architect history.
Without SANCTUM_GENAI_API_KEY (or GEMINI_API_KEY) the offline message is shown.`,
	Args: cobra.ExactArgs(1),
	RunE: runLore,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Reactivate the sanctum stage by stage",
	Long: `Solves each stage's ring mechanism, decrypts the sector log and prints
the final broadcast message.`,
	RunE: runPlay,
}

func newLoreGenerator(ctx context.Context) (lore.Generator, error) {
	return lore.NewGenerator(ctx, lore.Config{
		APIKey:  config.GenAIAPIKey,
		Model:   config.GenAIModel,
		Timeout: config.GenAITimeout,
		Logger:  logger,
	})
}

func runLore(cmd *cobra.Command, args []string) error {
	stage, err := strconv.Atoi(args[0])
	if err != nil || !sanctum.Stage(stage).Valid() {
		return fmt.Errorf("%w: %q", sanctum.ErrInvalidStage, args[0])
	}

	generator, err := newLoreGenerator(cmd.Context())
	if err != nil {
		return err
	}
	text, err := generator.Generate(cmd.Context(), stage)
	if err != nil {
		logger.Warn("lore generation unavailable", zap.Int("stage", stage), zap.Error(err))
		text = lore.FallbackText(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	if playStages < 1 || playStages > int(sanctum.FinalStage) {
		return fmt.Errorf("stages must be between 1 and %d", sanctum.FinalStage)
	}

	generator, err := newLoreGenerator(cmd.Context())
	if err != nil {
		return err
	}
	session := sanctum.NewSession(sanctum.SessionConfig{Generator: generator, Logger: logger})
	out := cmd.OutOrStdout()

	for i := 0; i < playStages; i++ {
		stage := session.Stage()
		turns, err := sanctum.Solution(stage)
		if err != nil {
			return err
		}

		puzzle := session.Puzzle()
		for ring := sanctum.RingA; ring <= sanctum.RingC; ring++ {
			for turn := 0; turn < turns[ring]; turn++ {
				if _, err := puzzle.Rotate(ring); err != nil {
					return err
				}
			}
		}

		entry, err := session.CompleteStage(cmd.Context(), puzzle)
		if err != nil {
			return err
		}
		status := session.Drift()
		fmt.Fprintf(out, "[%s] %s\n%s\n  rings A:%d B:%d C:%d  integrity %.1f%%  energy %.1f PW\n\n",
			stage, entry.Title, entry.Content, turns[0], turns[1], turns[2], status.Integrity, status.Energy)
	}

	if session.Reactivated() {
		fmt.Fprintln(out, "SANCTUM REACTIVATED")
	}
	fmt.Fprintln(out, session.ShareText())
	return nil
}
