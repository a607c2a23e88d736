package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode"

	"github.com/joshuapare/propkit/internal/mmfile"
	"github.com/joshuapare/propkit/pkg/types"
	"github.com/joshuapare/propkit/smartview"
	"github.com/joshuapare/propkit/smartview/block"
	"github.com/joshuapare/propkit/smartview/printer"
	"github.com/spf13/cobra"
)

var (
	parseInput   string
	parseBinary  bool
	parseParser  string
	parseFormat  string
	parseDecimal bool
	parseOutput  string

	// parseDecimalSet records an explicit --decimal, so --decimal=false can
	// override decimal = true in the config file.
	parseDecimalSet bool
)

func init() {
	cmd := newParseCmd()
	cmd.Flags().StringVarP(&parseInput, "input", "i", "", "Read the value from a file instead of the argument")
	cmd.Flags().BoolVarP(&parseBinary, "binary", "b", false, "Input file holds raw bytes rather than hex text")
	cmd.Flags().StringVarP(&parseParser, "parser", "p", "", "Parser name or number (see \"propctl parsers\")")
	cmd.Flags().StringVarP(&parseFormat, "format", "f", "", "Output format: text, xml, json, msgpack")
	cmd.Flags().BoolVarP(&parseDecimal, "decimal", "d", false, "Print integers in decimal")
	cmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Write output to a file")
	_ = cmd.MarkFlagRequired("parser")
	rootCmd.AddCommand(cmd)
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [hex]",
		Short: "Decode a binary property value",
		Long: `The parse command decodes a binary value with the selected parser and
prints the resulting tree. The value is given as hex on the command line or
read from a file with --input.

Example:
  propctl parse --parser SID 010200000000000515000000
  propctl parse -p 3 --input entryid.hex --format xml
  propctl parse -p FlatEntryList --input blob.bin --binary --output tree.json --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parseDecimalSet = cmd.Flags().Changed("decimal")
			return runParse(cmd.OutOrStdout(), args)
		},
	}
}

func runParse(stdout io.Writer, args []string) error {
	pt, err := types.ParseParserType(parseParser)
	if err != nil {
		return err
	}
	if !smartview.Supported(pt) {
		logger.Warn().Str("parser", pt.String()).Msg("no parser registered, showing raw bytes")
	}

	data, release, err := loadInput(args)
	if err != nil {
		return err
	}
	defer func() {
		if err := release(); err != nil {
			logger.Warn().Err(err).Msg("release input")
		}
	}()
	logger.Debug().Str("parser", pt.String()).Int("bytes", len(data)).Msg("parsing")

	root, err := smartview.Parse(pt, data)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	logSummary(pt, root)

	opts, err := printerOptions()
	if err != nil {
		return err
	}

	out := stdout
	if parseOutput != "" {
		f, err := os.Create(parseOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := printer.New(out, opts).Print(root); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	if parseOutput != "" {
		logger.Info().Str("path", parseOutput).Msg("output written")
	}
	return nil
}

// loadInput returns the bytes to parse and a func releasing them.
func loadInput(args []string) ([]byte, func() error, error) {
	noop := func() error { return nil }
	switch {
	case parseInput != "" && len(args) > 0:
		return nil, nil, errors.New("give either a hex argument or --input, not both")
	case parseInput == "" && len(args) == 0:
		return nil, nil, errors.New("no input: give a hex argument or --input")
	case parseInput == "":
		data, err := decodeHex(args[0])
		return data, noop, err
	case parseBinary:
		data, unmap, err := mmfile.Map(parseInput, cfg.MaxInputBytes)
		if err != nil {
			return nil, nil, fmt.Errorf("read input: %w", err)
		}
		return data, unmap, nil
	}

	data, unmap, err := mmfile.Map(parseInput, hexInputLimit(cfg.MaxInputBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}
	defer unmap()
	decoded, err := decodeHex(string(data))
	return decoded, noop, err
}

// hexInputLimit caps a hex text file for a decoded cap of maxBytes. Text is
// two characters per byte plus separators; the result saturates instead of
// wrapping.
func hexInputLimit(maxBytes int64) int64 {
	if maxBytes > math.MaxInt64/4 {
		return math.MaxInt64
	}
	return 4 * maxBytes
}

// decodeHex accepts hex with optional whitespace, a leading 0x and the
// "cb: N lpb: " prefix tools print for binary properties.
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if i := strings.Index(strings.ToLower(s), "lpb:"); i >= 0 {
		s = s[i+len("lpb:"):]
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode hex input: %w", err)
	}
	if int64(len(data)) > cfg.MaxInputBytes {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", mmfile.ErrTooLarge, len(data), cfg.MaxInputBytes)
	}
	return data, nil
}

// printerOptions applies command flags on top of the loaded config.
func printerOptions() (printer.Options, error) {
	opts := cfg.PrinterOptions()
	if parseFormat != "" {
		f, err := printer.ParseFormat(parseFormat)
		if err != nil {
			return printer.Options{}, err
		}
		opts.Format = f
	}
	if parseDecimalSet {
		opts.Display = types.DisplayHex
		if parseDecimal {
			opts.Display = types.DisplayDecimal
		}
	}
	return opts, nil
}

func logSummary(pt types.ParserType, root *block.Node) {
	s := block.Summarize(root)
	logger.Debug().
		Int("nodes", s.Nodes).
		Int("fields", s.Fields).
		Int("missing", s.Missing).
		Int("coverage_start", s.Coverage.Start).
		Int("coverage_end", s.Coverage.End).
		Msg("parsed")

	if err := root.Err(); err != nil {
		logger.Warn().
			Err(err).
			Str("parser", pt.String()).
			Str("kind", block.Classify(err).String()).
			Msg("decoding stopped early")
	}
}
