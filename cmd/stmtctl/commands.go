package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grachmannico95/statement-reconciler/internal/datev"
	"github.com/grachmannico95/statement-reconciler/internal/domain"
	"github.com/grachmannico95/statement-reconciler/internal/parser"
	"github.com/grachmannico95/statement-reconciler/pkg/logger"
	"github.com/spf13/cobra"
)

type options struct {
	logLevel string
	format   string
	summary  bool
	log      *logger.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "stmtctl",
		Short:         "Inspect bank, card and payment processor statement files",
		Long:          `Detect the vendor of a statement export, preview its parsed positions and inspect DATEV booking batches without a running server.`,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.log = logger.New(opts.logLevel)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(newDetectCmd(opts), newParseCmd(opts), newDatevCmd(opts))
	return cmd
}

func newDetectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "detect <file>",
		Short: "Print the detected statement format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, encoding, err := readText(args[0])
			if err != nil {
				return err
			}

			format := parser.Detect(text)
			opts.logger().Debug(context.Background(), "Format detected",
				"file", args[0],
				"format", format,
				"candidates", parser.Matching(text),
			)
			if format == parser.FormatUnknown {
				return fmt.Errorf("%w, supported: %s", domain.ErrUnsupportedFormat, supportedFormats())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "format:   %s\n", format)
			fmt.Fprintf(out, "encoding: %s\n", encoding)
			fmt.Fprintf(out, "kind:     %s\n", format.StatementKind())
			return nil
		},
	}
}

func newParseCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a statement file and print its positions as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := readText(args[0])
			if err != nil {
				return err
			}

			var res *parser.Result
			if opts.format != "" {
				res, err = parser.ParseAs(parser.Format(opts.format), text)
			} else {
				res, err = parser.Parse(text)
			}
			if err != nil {
				return err
			}

			opts.logger().Debug(context.Background(), "File parsed",
				"file", args[0],
				"format", res.Header.Format,
				"valid_rows", res.Stats.ValidRows,
			)

			if opts.summary {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "format:  %s\n", res.Header.Format)
				fmt.Fprintf(out, "rows:    %d\n", res.Stats.TotalRows)
				fmt.Fprintf(out, "valid:   %d\n", res.Stats.ValidRows)
				fmt.Fprintf(out, "invalid: %d\n", res.Stats.InvalidRows)
				return res.Err()
			}

			if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			return res.Err()
		},
	}
	cmd.Flags().StringVar(&opts.format, "format", "", "skip detection and parse as this format")
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "print row counts only")
	return cmd
}

func newDatevCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datev",
		Short: "Inspect DATEV booking batches",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "parse <file>",
		Short: "Decode a DATEV batch and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := readText(args[0])
			if err != nil {
				return err
			}
			if !datev.IsDatevShaped(text) {
				return domain.ErrInvalidDatevFile
			}

			res := datev.Decode(text)
			opts.logger().Debug(context.Background(), "DATEV file decoded",
				"file", args[0],
				"extf", res.Header.IsExtf,
				"valid_rows", res.Stats.ValidRows,
			)
			return writeJSON(cmd.OutOrStdout(), res)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check <file>",
		Short: "Report whether a file looks like a DATEV batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := readText(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), datev.IsDatevShaped(text))
			return nil
		},
	})

	return cmd
}

// supportedFormats lists the formats in detection order.
func supportedFormats() string {
	names := make([]string, 0, len(parser.Formats()))
	for _, f := range parser.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

func (o *options) logger() *logger.Logger {
	if o.log == nil {
		return logger.NewNop()
	}
	return o.log
}

func readText(path string) (string, parser.Encoding, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}
	text, encoding := parser.DecodeText(raw)
	return text, encoding, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
