package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/example/go-kana-signal/internal/codec"
	"github.com/example/go-kana-signal/internal/config"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	return newFixedModeCmd(codec.ModeEncode, "encode [text...]", "Convert kana text to signal notation")
}

func newDecodeCmd() *cobra.Command {
	return newFixedModeCmd(codec.ModeDecode, "decode [signal...]", "Convert signal notation to kana text")
}

func newFixedModeCmd(mode codec.Mode, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  short + ". Reads stdin when no arguments are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			input, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runConversion(cmd.OutOrStdout(), cfg, mode, input)
		},
	}
}

func newConvertCmd() *cobra.Command {
	var swap bool

	cmd := &cobra.Command{
		Use:   "convert [text...]",
		Short: "Convert text in the configured mode, guessing the direction in auto mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			input, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			mode, err := resolveMode(cfg.Codec, input)
			if err != nil {
				return err
			}
			if !swap {
				return runConversion(cmd.OutOrStdout(), cfg, mode, input)
			}

			first := codec.Convert(mode, input)
			logResult(first, input)
			if err := runConversion(cmd.OutOrStdout(), cfg, mode.Opposite(), first.Text); err != nil {
				return err
			}
			if cfg.Codec.Strict {
				if err := first.Err(); err != nil {
					return fmt.Errorf("%s: %w", mode, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&swap, "swap", false, "Convert the result back in the opposite direction")

	return cmd
}

func newGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess [text...]",
		Short: "Print whether the text looks like kana (encode) or signal notation (decode)",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readRawInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			guess := "none"
			if mode, ok := codec.GuessMode(input); ok {
				guess = mode.String()
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), guess)
			return err
		},
	}
}

// resolveMode maps the configured mode to a codec mode. In auto mode the
// input is inspected and the fallback mode is used when it gives no guess.
func resolveMode(cfg config.CodecConfig, input string) (codec.Mode, error) {
	mode, err := config.NormalizeMode(cfg.Mode)
	if err != nil {
		return codec.ModeDecode, err
	}
	if mode != config.ModeAuto {
		return codec.ParseMode(mode)
	}

	if guessed, ok := codec.GuessMode(input); ok {
		slog.Debug("guessed mode", "mode", guessed.String())
		return guessed, nil
	}
	return codec.ParseMode(cfg.FallbackMode)
}

func runConversion(w io.Writer, cfg config.Config, mode codec.Mode, input string) error {
	res := codec.Convert(mode, input)
	logResult(res, input)

	if err := writeOutput(w, res.Text, cfg.Output.Newline); err != nil {
		return err
	}
	if cfg.Codec.Strict {
		if err := res.Err(); err != nil {
			return fmt.Errorf("%s: %w", mode, err)
		}
	}
	return nil
}

func logResult(res codec.Result, input string) {
	slog.Debug("converted",
		"mode", res.Mode.String(),
		"input_bytes", len(input),
		"output_bytes", len(res.Text),
	)
	if res.HasError {
		slog.Warn("skipped unconvertible input", "mode", res.Mode.String())
	}
}

func writeOutput(w io.Writer, text string, newline bool) error {
	if w == nil {
		return fmt.Errorf("output writer is nil")
	}
	if newline {
		text += "\n"
	}
	_, err := io.WriteString(w, text)
	return err
}

func readInput(args []string, stdin io.Reader) (string, error) {
	input, err := readRawInput(args, stdin)
	if err != nil {
		return "", err
	}
	if len(args) == 0 && input == "" {
		return "", fmt.Errorf("either pass text as arguments or pipe it on stdin")
	}
	return input, nil
}

// readRawInput joins args, or reads stdin trimmed of surrounding whitespace
// when there are none. Blank input is not an error.
func readRawInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if stdin == nil {
		stdin = os.Stdin
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}
