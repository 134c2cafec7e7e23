package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/juspurplan/ee371r-project/internal/dichromacy"
	"github.com/juspurplan/ee371r-project/internal/pipeline"
	"github.com/juspurplan/ee371r-project/internal/transform"
	"github.com/spf13/cobra"
)

// modeOptions are the merged config file and flag values for one run.
type modeOptions struct {
	Type        dichromacy.Type
	Sensitivity float64
	Output      string
	Yes         bool
}

// resolveOptions overlays explicitly set flags on the loaded config.
func resolveOptions(cmd *cobra.Command) (modeOptions, error) {
	typ, sensitivity, err := resolveVision(cmd)
	if err != nil {
		return modeOptions{}, err
	}
	yes := cfg.Yes
	if cmd.Flags().Changed("yes") {
		yes, _ = cmd.Flags().GetBool("yes")
	}
	output, _ := cmd.Flags().GetString("out")
	return modeOptions{
		Type:        typ,
		Sensitivity: sensitivity,
		Output:      output,
		Yes:         yes,
	}, nil
}

// resolveVision returns the dichromacy type and clamped sensitivity from
// the --type and --sensitivity flags, falling back to the config.
func resolveVision(cmd *cobra.Command) (dichromacy.Type, float64, error) {
	typeStr := cfg.Type
	if cmd.Flags().Changed("type") {
		typeStr, _ = cmd.Flags().GetString("type")
	}
	sensitivity := cfg.Sensitivity
	if cmd.Flags().Changed("sensitivity") {
		sensitivity, _ = cmd.Flags().GetFloat64("sensitivity")
	}
	typ, err := dichromacy.ParseType(typeStr)
	if err != nil {
		return 0, 0, err
	}
	if err := transform.CheckSensitivity(sensitivity); err != nil {
		return 0, 0, err
	}
	return typ, transform.ClampSensitivity(sensitivity), nil
}

func runMode(mode transform.Mode) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		inputPath := args[0]
		opts, err := resolveOptions(cmd)
		if err != nil {
			return err
		}
		outputPath := outputName(mode, opts.Type, inputPath, opts.Output, cfg.OutputDir)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Color blind type = %v\n", opts.Type)
		fmt.Fprintf(out, "Sensitivity = %g\n", opts.Sensitivity)
		fmt.Fprintf(out, "Autoconfirm prompts? = %t\n\n", opts.Yes)
		fmt.Fprintf(out, "Input image = %q\n", inputPath)
		fmt.Fprintf(out, "Output image = %q\n\n", outputPath)

		inputData, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		result, err := pipeline.Run(inputData, pipeline.Options{
			Mode:        mode,
			Type:        opts.Type,
			Sensitivity: opts.Sensitivity,
		})
		if err != nil {
			return fmt.Errorf("%v: %w", mode, err)
		}

		save, err := confirmOverwrite(cmd.InOrStdin(), out, outputPath, opts.Yes)
		if err != nil {
			return err
		}
		if !save {
			fmt.Fprintln(out, "Aborting write to file.")
			return nil
		}
		if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		glog.V(1).Infof("wrote %s (%d bytes)", outputPath, len(result.Data))

		fmt.Fprintf(out, "%s %dx%d %s image (%s)\n", mode, result.SrcWidth, result.SrcHeight, result.SrcFormat, opts.Type)
		fmt.Fprintf(out, "Modified image written to %q (%d bytes)\n", outputPath, len(result.Data))
		if result.Degenerate > 0 {
			fmt.Fprintf(out, "%d pixels left unchanged (degenerate geometry)\n", result.Degenerate)
		}
		return nil
	}
}

// outputName returns the PNG path to write. An explicit path keeps its
// name with the extension forced to .png. Otherwise the output sits next
// to the input (or in dir) as <prefix>_<input name>.png.
func outputName(mode transform.Mode, typ dichromacy.Type, input, explicit, dir string) string {
	if explicit != "" {
		return strings.TrimSuffix(explicit, filepath.Ext(explicit)) + ".png"
	}
	if dir == "" {
		dir = filepath.Dir(input)
	}
	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	var prefix string
	switch mode {
	case transform.Simulate:
		prefix = typ.String()
	case transform.Correct:
		prefix = "correct_" + typ.String()[:6]
	default:
		prefix = "rotate_" + typ.String()[:6]
	}
	return filepath.Join(dir, prefix+"_"+name+".png")
}

// confirmOverwrite reports whether path may be written. A missing file is
// always writable; an existing one needs yes or a "y" answer on in.
func confirmOverwrite(in io.Reader, out io.Writer, path string, yes bool) (bool, error) {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking output: %w", err)
	}

	fmt.Fprintf(out, "Output file %q already exists.\n", path)
	if yes {
		fmt.Fprintln(out, "Autoconfirming overwrite.")
		return true, nil
	}
	fmt.Fprint(out, "Overwrite? [y/N]: ")
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
