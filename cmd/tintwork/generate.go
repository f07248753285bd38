package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tintwork/tintwork/internal/colorspace"
	"github.com/tintwork/tintwork/internal/palette"
	"github.com/tintwork/tintwork/internal/theme"
	tinterrors "github.com/tintwork/tintwork/pkg/errors"
)

type generateOptions struct {
	name       string
	space      string
	base       string
	n          int
	lightness  string
	chroma     float64
	taper      bool
	hueOffsets string
	accent     int
	extras     []string

	ansi16     bool
	background string
	foreground string
	spectrum   string
	bright     string

	format string
	out    string
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a theme preset from a base color and parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "untitled", "Theme name")
	cmd.Flags().StringVar(&opts.space, "space", "oklab", "Working color space (cielab, oklab, jzazbz, hsv)")
	cmd.Flags().StringVar(&opts.base, "base", "268bd2", "Base color as 6-digit hex; its hue seeds the palette")
	cmd.Flags().IntVar(&opts.n, "n", 8, "Palette size (ignored with --ansi16)")
	cmd.Flags().StringVar(&opts.lightness, "lightness", "0.1:0.9", "Lightness ramp as min:max, both normalized")
	cmd.Flags().Float64Var(&opts.chroma, "chroma", 0.5, "Normalized chroma relative to the space's nominal full chroma")
	cmd.Flags().BoolVar(&opts.taper, "taper", false, "Taper chroma toward gray near black and white")
	cmd.Flags().StringVar(&opts.hueOffsets, "hue-offsets", "", "Comma-separated per-slot hue offsets in degrees")
	cmd.Flags().IntVar(&opts.accent, "accent", -1, "Palette index of the accent color (default: bright yellow with --ansi16, else the last slot)")
	cmd.Flags().StringArrayVar(&opts.extras, "extra", nil, "Extras entry as NAME=index, repeatable")

	cmd.Flags().BoolVar(&opts.ansi16, "ansi16", false, "Build the classic 16-slot terminal layout instead of a ramp")
	cmd.Flags().StringVar(&opts.background, "bg", "", "ANSI-16 background anchor as lightness:chroma:hue")
	cmd.Flags().StringVar(&opts.foreground, "fg", "", "ANSI-16 foreground anchor as lightness:chroma:hue")
	cmd.Flags().StringVar(&opts.spectrum, "spectrum", "", "ANSI-16 normal spectrum anchor as lightness:chroma:hue")
	cmd.Flags().StringVar(&opts.bright, "bright", "", "ANSI-16 bright spectrum anchor as lightness:chroma:hue")

	cmd.Flags().StringVar(&opts.format, "format", "toml", "Preset encoding: toml or json")
	cmd.Flags().StringVar(&opts.out, "out", "", "Write the preset to this path instead of stdout")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	space, err := colorspace.ParseSpace(opts.space)
	if err != nil {
		return err
	}

	var pal palette.Palette
	if opts.ansi16 {
		pal, err = ansi16Palette(space, opts)
	} else {
		pal, err = rampPalette(space, opts)
	}
	if err != nil {
		return err
	}

	accentIdx := opts.accent
	if accentIdx < 0 {
		if opts.ansi16 {
			accentIdx = 11 // bright yellow in the ANSI layout
		} else {
			accentIdx = len(pal) - 1
		}
	}
	if accentIdx >= len(pal) {
		return tinterrors.NewInvalidParameterError("accent", fmt.Sprintf("index %d out of range for %d colors", accentIdx, len(pal)), nil)
	}

	pairs, err := parseExtraPairs(opts.extras)
	if err != nil {
		return err
	}

	th, err := theme.FromPairs(opts.name, pal, pal[accentIdx], pairs)
	if err != nil {
		return err
	}

	data, err := th.MarshalPreset(theme.Format(opts.format))
	if err != nil {
		return err
	}

	if opts.out == "" {
		return writeDocument(cmd, data)
	}

	if err := os.WriteFile(opts.out, data, 0o644); err != nil {
		return fmt.Errorf("writing preset to %s: %w", opts.out, err)
	}
	appLogger().WithTheme(opts.name).WithPath(opts.out).Info("preset written")
	return nil
}

func rampPalette(space colorspace.Space, opts *generateOptions) (palette.Palette, error) {
	base, err := colorspace.ParseHex(opts.base)
	if err != nil {
		return nil, err
	}

	min, max, err := parseLightnessRange(opts.lightness)
	if err != nil {
		return nil, err
	}

	offsets, err := parseHueOffsets(opts.hueOffsets)
	if err != nil {
		return nil, err
	}

	return palette.Generate(palette.Params{
		Space:     space,
		N:         opts.n,
		Base:      base,
		Lightness: palette.LinearLightness(opts.n, min, max),
		Hue:       palette.HuePolicy{Offsets: offsets},
		Chroma:    palette.ChromaPolicy{Base: opts.chroma, Taper: opts.taper},
	})
}

func ansi16Palette(space colorspace.Space, opts *generateOptions) (palette.Palette, error) {
	scheme := palette.DefaultScheme(space)

	if err := applyAnchor(&scheme.Background, "bg", opts.background); err != nil {
		return nil, err
	}
	if err := applyAnchor(&scheme.Foreground, "fg", opts.foreground); err != nil {
		return nil, err
	}
	if err := applyAnchor(&scheme.Spectrum, "spectrum", opts.spectrum); err != nil {
		return nil, err
	}
	if err := applyAnchor(&scheme.SpectrumBright, "bright", opts.bright); err != nil {
		return nil, err
	}

	return palette.ANSI16(scheme), nil
}

func writeDocument(cmd *cobra.Command, data []byte) error {
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
