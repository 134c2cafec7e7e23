package main

import (
	"fmt"
	"os"

	"github.com/h2non/filetype"
	"github.com/juspurplan/ee371r-project/internal/dichromacy"
	"github.com/juspurplan/ee371r-project/internal/pipeline"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect an image's format, chromaticity and blind-side coverage",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	mime := "unknown"
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		mime = kind.MIME.Value
	}

	xyy, format, err := pipeline.Decode(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:       %s\n", path)
	fmt.Fprintf(out, "MIME type:  %s\n", mime)
	fmt.Fprintf(out, "Format:     %s\n", format)
	fmt.Fprintf(out, "Dimensions: %d x %d\n", xyy.Width, xyy.Height)
	fmt.Fprintf(out, "File size:  %d bytes (%.1f MB)\n", len(data), float64(len(data))/(1024*1024))

	n := len(xyy.X)
	if n == 0 {
		return nil
	}
	var sx, sy, sl float64
	for i := 0; i < n; i++ {
		sx += xyy.X[i]
		sy += xyy.Y[i]
		sl += xyy.Lum[i]
	}
	fmt.Fprintf(out, "Mean xyY:   x=%.4f y=%.4f Y=%.4f\n", sx/float64(n), sy/float64(n), sl/float64(n))

	fmt.Fprintln(out, "Blind side:")
	for _, typ := range dichromacy.Types() {
		p := dichromacy.MustLookup(typ)
		blind := 0
		for i := 0; i < n; i++ {
			if p.OnBlindSide(xyy.Chroma(i)) {
				blind++
			}
		}
		fmt.Fprintf(out, "  %-13s %5.1f%%\n", typ.String()+":", 100*float64(blind)/float64(n))
	}
	return nil
}
