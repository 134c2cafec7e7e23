package main

import (
	"github.com/juspurplan/ee371r-project/internal/transform"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [image]",
	Short: "Simulate how a dichromat perceives an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runMode(transform.Simulate),
}

var correctCmd = &cobra.Command{
	Use:   "correct [image]",
	Short: "Correct an image so a dichromat perceives more of its contrast",
	Args:  cobra.ExactArgs(1),
	RunE:  runMode(transform.Correct),
}

var rotateCmd = &cobra.Command{
	Use:   "rotate [image]",
	Short: "Stretch and rotate blind-side colors away from their confusion lines",
	Args:  cobra.ExactArgs(1),
	RunE:  runMode(transform.ContrastRotate),
}

func init() {
	for _, cmd := range []*cobra.Command{simulateCmd, correctCmd, rotateCmd} {
		cmd.Flags().StringP("type", "t", "", "Color blindness type (protanopia, deuteranopia, tritanopia)")
		cmd.Flags().Float64("sensitivity", 0, "Color blindness sensitivity (0: no response, 1: full response)")
		cmd.Flags().StringP("out", "o", "", "Output file path; always written as .png (default [prefix]_[input].png)")
		cmd.Flags().BoolP("yes", "y", false, "Automatically confirm prompts")
		rootCmd.AddCommand(cmd)
	}
}
