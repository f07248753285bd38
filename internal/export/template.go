// Package export renders themes into third-party configuration text via a
// fixed placeholder grammar. Templates are parsed once into a segment list
// and are immutable and shareable afterwards; rendering is a pure function
// of (template, theme).
package export

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tintwork/tintwork/internal/theme"
	tinterrors "github.com/tintwork/tintwork/pkg/errors"
)

// The grammar is closed and case-sensitive:
//
//	{NAME}       theme name, verbatim
//	{HEXk}       lowercase hex of palette[k]
//	{ACCHEX}     lowercase hex of the accent color
//	{<EXTRA>HEX} lowercase hex of palette[extras[EXTRA]], for declared extras
//
// Any other brace-delimited span passes through unchanged, so destination
// formats that use braces coexist with the grammar.

type segmentKind int

const (
	segLiteral segmentKind = iota
	segName
	segHex
	segAccent
	segExtra
)

type segment struct {
	kind  segmentKind
	text  string // literal text, or the extras key for segExtra
	index int    // palette index for segHex
}

// Template is a parsed exporter template: a name, a destination path hint,
// the extras it requires, and the precompiled body segments.
type Template struct {
	name     string
	pathHint string
	extras   []string
	segments []segment
}

var (
	hexTokenPattern      = regexp.MustCompile(`^HEX([0-9]+)$`)
	reservedShapePattern = regexp.MustCompile(`^[A-Z0-9_]+$`)
)

// Parse compiles template source into a Template. The body is scanned once,
// left to right; each complete brace span is classified against the grammar
// and everything else becomes literal output. A brace that opens a
// reserved-shaped token but never closes is a TemplateParseError; declared
// extras must be non-empty and unique.
func Parse(name, pathHint, body string, extras []string) (*Template, error) {
	if name == "" {
		return nil, tinterrors.NewTemplateParseError(name, "template name must not be empty", nil)
	}

	declared := make(map[string]struct{}, len(extras))
	for _, key := range extras {
		if key == "" {
			return nil, tinterrors.NewTemplateParseError(name, "declared extra name must not be empty", nil)
		}
		if _, exists := declared[key]; exists {
			return nil, tinterrors.NewDuplicateKeyError(key)
		}
		declared[key] = struct{}{}
	}

	segments, err := scan(name, body, declared)
	if err != nil {
		return nil, err
	}

	sortedExtras := append([]string(nil), extras...)
	sort.Strings(sortedExtras)

	return &Template{
		name:     name,
		pathHint: pathHint,
		extras:   sortedExtras,
		segments: segments,
	}, nil
}

func scan(name, body string, declared map[string]struct{}) ([]segment, error) {
	var segments []segment
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, segment{kind: segLiteral, text: literal.String()})
			literal.Reset()
		}
	}

	for pos := 0; pos < len(body); {
		open := strings.IndexByte(body[pos:], '{')
		if open == -1 {
			literal.WriteString(body[pos:])
			break
		}
		open += pos
		literal.WriteString(body[pos:open])

		closing := strings.IndexByte(body[open+1:], '}')
		nextOpen := strings.IndexByte(body[open+1:], '{')

		if closing == -1 {
			rest := body[open+1:]
			if reservedShapePattern.MatchString(rest) {
				return nil, tinterrors.NewTemplateParseError(name,
					fmt.Sprintf("unterminated placeholder %q at offset %d", body[open:], open), nil)
			}
			literal.WriteString(body[open:])
			break
		}
		if nextOpen != -1 && nextOpen < closing {
			// A nested opener: the current brace is literal text.
			literal.WriteByte('{')
			pos = open + 1
			continue
		}

		token := body[open+1 : open+1+closing]
		end := open + closing + 2

		if seg, ok := classify(token, declared); ok {
			flush()
			segments = append(segments, seg)
		} else {
			literal.WriteString(body[open:end])
		}
		pos = end
	}
	flush()

	return segments, nil
}

func classify(token string, declared map[string]struct{}) (segment, bool) {
	switch token {
	case "NAME":
		return segment{kind: segName}, true
	case "ACCHEX":
		return segment{kind: segAccent}, true
	}

	if m := hexTokenPattern.FindStringSubmatch(token); m != nil {
		if index, err := strconv.Atoi(m[1]); err == nil {
			return segment{kind: segHex, index: index}, true
		}
	}

	if key, ok := strings.CutSuffix(token, "HEX"); ok && key != "" {
		if _, isDeclared := declared[key]; isDeclared {
			return segment{kind: segExtra, text: key}, true
		}
	}

	return segment{}, false
}

// Name returns the template's registry name.
func (t *Template) Name() string {
	return t.name
}

// PathHint returns the destination path the template suggests for its
// rendered output. Writing there is the caller's business.
func (t *Template) PathHint() string {
	return t.pathHint
}

// Extras returns the sorted extras names the template requires.
func (t *Template) Extras() []string {
	return append([]string(nil), t.extras...)
}

// Render substitutes the theme into the template in a single pass over the
// precompiled segments; substituted values are never re-scanned. Every
// declared extra must exist in the theme (MissingExtra otherwise), and a
// {HEXk} index beyond the palette is reported as a template-authoring
// error.
func (t *Template) Render(th *theme.Theme) (string, error) {
	for _, key := range t.extras {
		if _, ok := th.ExtraIndex(key); !ok {
			return "", tinterrors.NewMissingExtraError(t.name, key)
		}
	}

	var out strings.Builder
	for _, seg := range t.segments {
		switch seg.kind {
		case segLiteral:
			out.WriteString(seg.text)
		case segName:
			out.WriteString(th.Name())
		case segAccent:
			out.WriteString(th.Accent().Hex())
		case segHex:
			c, ok := th.Color(seg.index)
			if !ok {
				return "", tinterrors.NewTemplateParseError(t.name,
					fmt.Sprintf("placeholder {HEX%d} is out of range for a palette of %d colors", seg.index, th.Len()), nil)
			}
			out.WriteString(c.Hex())
		case segExtra:
			// Existence was checked above; the index is valid by Theme
			// construction.
			idx, _ := th.ExtraIndex(seg.text)
			c, _ := th.Color(idx)
			out.WriteString(c.Hex())
		}
	}
	return out.String(), nil
}
