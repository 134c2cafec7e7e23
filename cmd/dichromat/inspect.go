package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/juspurplan/ee371r-project/internal/chroma"
	"github.com/juspurplan/ee371r-project/internal/color"
	"github.com/juspurplan/ee371r-project/internal/dichromacy"
	"github.com/juspurplan/ee371r-project/internal/transform"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [#rrggbb]",
	Short: "Show how one color is simulated, corrected and rotated",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringP("type", "t", "", "Color blindness type (protanopia, deuteranopia, tritanopia)")
	inspectCmd.Flags().Float64("sensitivity", 0, "Color blindness sensitivity (0: no response, 1: full response)")
	inspectCmd.Flags().Bool("json", false, "Print the report as JSON")
	rootCmd.AddCommand(inspectCmd)
}

type xyReport struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type policyReport struct {
	Mode       string    `json:"mode"`
	Result     *xyReport `json:"result,omitempty"`
	Hex        string    `json:"hex,omitempty"`
	Degenerate bool      `json:"degenerate,omitempty"`
	Error      string    `json:"error,omitempty"`
}

type inspectReport struct {
	Color       string         `json:"color"`
	Chroma      xyReport       `json:"chroma"`
	Luminance   float64        `json:"luminance"`
	Type        string         `json:"type"`
	Sensitivity float64        `json:"sensitivity"`
	BlindSide   bool           `json:"blind_side"`
	Projection  *xyReport      `json:"projection,omitempty"`
	Policies    []policyReport `json:"policies"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	typ, sensitivity, err := resolveVision(cmd)
	if err != nil {
		return err
	}
	opts := modeOptions{Type: typ, Sensitivity: sensitivity}
	asJSON, _ := cmd.Flags().GetBool("json")

	c, err := color.ParseHex(args[0])
	if err != nil {
		return err
	}
	pt, lum := color.ToXYY(c)
	params := dichromacy.MustLookup(opts.Type)

	rep := inspectReport{
		Color:       color.Hex(c),
		Chroma:      xyReport{pt.X, pt.Y},
		Luminance:   lum,
		Type:        opts.Type.String(),
		Sensitivity: opts.Sensitivity,
		BlindSide:   params.OnBlindSide(pt),
	}
	if proj, ok := params.Project(pt); ok {
		rep.Projection = &xyReport{proj.X, proj.Y}
	}
	for _, mode := range []transform.Mode{transform.Simulate, transform.Correct, transform.ContrastRotate} {
		rep.Policies = append(rep.Policies, inspectPolicy(mode, opts, pt, lum))
	}

	if asJSON {
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	printReport(cmd, rep)
	return nil
}

func inspectPolicy(mode transform.Mode, opts modeOptions, pt chroma.Point, lum float64) policyReport {
	rep := policyReport{Mode: mode.String()}
	fn, err := transform.New(mode, opts.Type, opts.Sensitivity)
	if errors.Is(err, transform.ErrZeroSensitivity) {
		rep.Error = "not applicable at sensitivity 0"
		return rep
	} else if err != nil {
		rep.Error = err.Error()
		return rep
	}
	res, ok := fn(pt)
	rep.Result = &xyReport{res.X, res.Y}
	rep.Hex = color.Hex(color.FromXYY(res, lum))
	rep.Degenerate = !ok
	return rep
}

func printReport(cmd *cobra.Command, rep inspectReport) {
	w := cmd.OutOrStdout()
	term := termenv.NewOutput(w)
	swatch := func(hex string) string {
		return term.String("      ").Background(term.Color(hex)).String()
	}

	fmt.Fprintf(w, "Color:       %s %s\n", rep.Color, swatch(rep.Color))
	fmt.Fprintf(w, "xyY:         x=%.4f y=%.4f Y=%.4f\n", rep.Chroma.X, rep.Chroma.Y, rep.Luminance)
	fmt.Fprintf(w, "Type:        %s (sensitivity %g)\n", rep.Type, rep.Sensitivity)
	fmt.Fprintf(w, "Blind side:  %t\n", rep.BlindSide)
	if rep.Projection != nil {
		fmt.Fprintf(w, "Projection:  x=%.4f y=%.4f\n", rep.Projection.X, rep.Projection.Y)
	} else {
		fmt.Fprintln(w, "Projection:  undefined")
	}
	fmt.Fprintln(w)
	for _, p := range rep.Policies {
		if p.Error != "" {
			fmt.Fprintf(w, "%-9s %s\n", p.Mode, p.Error)
			continue
		}
		note := ""
		if p.Degenerate {
			note = " (degenerate, unchanged)"
		}
		fmt.Fprintf(w, "%-9s x=%.4f y=%.4f  %s %s%s\n", p.Mode, p.Result.X, p.Result.Y, p.Hex, swatch(p.Hex), note)
	}
}
