package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tintwork/tintwork/internal/palette"
	"github.com/tintwork/tintwork/internal/theme"
	tinterrors "github.com/tintwork/tintwork/pkg/errors"
)

// parseLightnessRange reads a "min:max" pair of normalized lightness values.
func parseLightnessRange(s string) (min, max float64, err error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, tinterrors.NewInvalidParameterError("lightness", fmt.Sprintf("expected min:max, got %q", s), nil)
	}

	min, err = strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return 0, 0, tinterrors.NewInvalidParameterError("lightness", fmt.Sprintf("bad minimum %q", lo), err)
	}
	max, err = strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return 0, 0, tinterrors.NewInvalidParameterError("lightness", fmt.Sprintf("bad maximum %q", hi), err)
	}
	return min, max, nil
}

// parseHueOffsets reads a comma-separated list of per-slot hue offsets in
// degrees. An empty string means the default even spread.
func parseHueOffsets(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, tinterrors.NewInvalidParameterError("hue-offsets", fmt.Sprintf("bad offset %q", part), err)
		}
		out[i] = v
	}
	return out, nil
}

// applyAnchor overwrites dst with a "lightness:chroma:hue" triple. An empty
// spec keeps the scheme's default anchor.
func applyAnchor(dst *palette.Anchor, flag, spec string) error {
	if spec == "" {
		return nil
	}

	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return tinterrors.NewInvalidParameterError(flag, fmt.Sprintf("expected lightness:chroma:hue, got %q", spec), nil)
	}

	values := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return tinterrors.NewInvalidParameterError(flag, fmt.Sprintf("bad component %q", part), err)
		}
		values[i] = v
	}

	*dst = palette.Anchor{Lightness: values[0], Chroma: values[1], Hue: values[2]}
	return nil
}

// parseExtraPairs reads repeated NAME=index flags in declaration order, so
// duplicate names surface instead of silently collapsing.
func parseExtraPairs(specs []string) ([]theme.Extra, error) {
	pairs := make([]theme.Extra, 0, len(specs))
	for _, spec := range specs {
		name, idx, ok := strings.Cut(spec, "=")
		if !ok || name == "" {
			return nil, tinterrors.NewInvalidParameterError("extra", fmt.Sprintf("expected NAME=index, got %q", spec), nil)
		}
		i, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil {
			return nil, tinterrors.NewInvalidParameterError("extra", fmt.Sprintf("bad index %q for %s", idx, name), err)
		}
		pairs = append(pairs, theme.Extra{Name: name, Index: i})
	}
	return pairs, nil
}
