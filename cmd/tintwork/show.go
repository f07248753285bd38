package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tintwork/tintwork/internal/colorspace"
	"github.com/tintwork/tintwork/internal/theme"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <preset>",
		Short: "Display a preset's palette with contrast against the background",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0])
		},
	}

	return cmd
}

func runShow(cmd *cobra.Command, presetPath string) error {
	th, err := theme.LoadPreset(presetPath)
	if err != nil {
		return err
	}

	pretty := term.IsTerminal(int(os.Stdout.Fd()))
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Theme:  %s\n", th.Name())
	fmt.Fprintf(out, "Accent: #%s\n\n", th.Accent().Hex())

	// Slot 0 is the background by convention; every slot is rated against it.
	background, _ := th.Color(0)
	bgLum := relativeLuminance(background)

	for i := 0; i < th.Len(); i++ {
		c, _ := th.Color(i)
		ratio := contrastRatio(relativeLuminance(c), bgLum)
		if pretty {
			swatch := lipgloss.NewStyle().
				Background(lipgloss.Color("#" + c.Hex())).
				Render("      ")
			fmt.Fprintf(out, "%2d %s #%s  contrast %5.2f:1\n", i, swatch, c.Hex(), ratio)
		} else {
			fmt.Fprintf(out, "%2d #%s contrast %.2f\n", i, c.Hex(), ratio)
		}
	}

	extras := th.Extras()
	if len(extras) > 0 {
		names := make([]string, 0, len(extras))
		for name := range extras {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintf(out, "\nExtras:\n")
		for _, name := range names {
			fmt.Fprintf(out, "  %s -> %d\n", name, extras[name])
		}
	}

	return nil
}

// relativeLuminance computes WCAG relative luminance from linear sRGB.
func relativeLuminance(c colorspace.Color) float64 {
	col, err := colorful.Hex("#" + c.Hex())
	if err != nil {
		return 0
	}
	r, g, b := col.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func contrastRatio(a, b float64) float64 {
	hi, lo := a, b
	if hi < lo {
		hi, lo = lo, hi
	}
	return (hi + 0.05) / (lo + 0.05)
}
