// Package main provides the chrawr CLI: preset inspection and a small
// forward-pass demo of the character-aware embedding pipeline.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkoukk/tiktoken-go"
	"github.com/spf13/cobra"

	"github.com/chrawr-ml/chrawr/backend/cpu"
	"github.com/chrawr-ml/chrawr/hparams"
	"github.com/chrawr-ml/chrawr/internal/diag"
	"github.com/chrawr-ml/chrawr/nn"
)

const version = "v0.1.0-dev"

// demoVocabSize bounds the demo embedding table. Tokenizer ids are
// folded into this range so the demo does not allocate a full
// vocabulary-sized table.
const demoVocabSize = 8192

const tokenizerEncoding = "cl100k_base"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	root := &cobra.Command{
		Use:           "chrawr",
		Short:         "Character-aware embedding for transformer encoders",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newHparamsCmd())
	root.AddCommand(newEmbedCmd(logger))

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newHparamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hparams",
		Short: "Inspect hyperparameter presets",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all registered presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range hparams.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	})

	var asYAML bool
	show := &cobra.Command{
		Use:   "show <preset>",
		Short: "Show a preset's options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hp, err := hparams.Get(args[0])
			if err != nil {
				return err
			}
			if asYAML {
				data, err := hp.ToYAML()
				if err != nil {
					return err
				}
				cmd.OutOrStdout().Write(data)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", *hp)
			return nil
		},
	}
	show.Flags().BoolVar(&asYAML, "yaml", false, "print as YAML")
	cmd.AddCommand(show)

	return cmd
}

func newEmbedCmd(logger *slog.Logger) *cobra.Command {
	var (
		preset    string
		text      string
		overrides string
		maskDir   string
	)

	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Run the character-aware embedding pipeline over a text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hp, err := hparams.Get(preset)
			if err != nil {
				return err
			}
			if overrides != "" {
				if err := hp.ApplyOverridesFile(overrides); err != nil {
					return err
				}
			}
			if !hp.UsesCharAware() {
				return fmt.Errorf("preset %q does not configure the character-aware pipeline", preset)
			}

			enc, err := tiktoken.GetEncoding(tokenizerEncoding)
			if err != nil {
				return fmt.Errorf("load tokenizer: %w", err)
			}
			ids := enc.Encode(text, nil, nil)
			if len(ids) == 0 {
				return fmt.Errorf("text produced no tokens")
			}
			folded := make([]int, len(ids))
			for i, id := range ids {
				folded[i] = id % demoVocabSize
			}
			logger.Info("text tokenized", "encoding", tokenizerEncoding, "tokens", len(ids))

			backend := cpu.New()
			table := nn.NewEmbedding("demo_embedding", demoVocabSize, hp.HiddenSize, backend)
			pipeline := nn.NewCharAwareEmbedding(hp.HiddenSize, hp, backend)
			if maskDir != "" {
				if err := os.MkdirAll(maskDir, 0o755); err != nil {
					return fmt.Errorf("create mask dir: %w", err)
				}
				pipeline.Observe(diag.Observer(maskDir, logger))
			}

			emb := table.Forward([][]int{folded})
			out := pipeline.Forward(emb)

			logger.Info("pipeline complete",
				"input_shape", emb.Shape(),
				"output_shape", out.Shape(),
				"pool_size", hp.ChrMaxpoolSize,
			)
			fmt.Fprintf(cmd.OutOrStdout(), "input  %v\noutput %v\n", emb.Shape(), out.Shape())
			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "transformer_chrawr_base", "hyperparameter preset")
	cmd.Flags().StringVar(&text, "text", "", "text to embed")
	cmd.Flags().StringVar(&overrides, "overrides", "", "YAML file with hparams overrides")
	cmd.Flags().StringVar(&maskDir, "mask-dir", "", "directory for padding mask images")
	cmd.MarkFlagRequired("text")

	return cmd
}
