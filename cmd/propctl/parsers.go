package main

import (
	"fmt"
	"io"

	"github.com/joshuapare/propkit/smartview"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "parsers",
		Short: "List available parsers",
		Long: `The parsers command lists every parser with the number and name
accepted by "propctl parse --parser".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParsers(cmd.OutOrStdout())
		},
	})
}

func runParsers(out io.Writer) error {
	for _, p := range smartview.Parsers() {
		if _, err := fmt.Fprintf(out, "%3d  %s\n", uint32(p), p); err != nil {
			return err
		}
	}
	return nil
}
