package theme

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/tintwork/tintwork/internal/colorspace"
	"github.com/tintwork/tintwork/internal/palette"
	tinterrors "github.com/tintwork/tintwork/pkg/errors"
)

// Format selects the preset document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// presetDoc is the persisted preset shape: the wire contract shared with
// preset loaders. Palette entries and accent are 6-hex-digit strings.
type presetDoc struct {
	Name    string         `toml:"name" json:"name" validate:"required,min=1"`
	Palette []string       `toml:"palette" json:"palette" validate:"required,min=1,dive,hex6"`
	Accent  string         `toml:"accent" json:"accent" validate:"required,hex6"`
	Extras  map[string]int `toml:"extras,omitempty" json:"extras,omitempty"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hex6Pattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("hex6", func(fl validator.FieldLevel) bool {
			return hex6Pattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ParsePreset decodes, validates and constructs a Theme from preset text.
func ParsePreset(data []byte, format Format) (*Theme, error) {
	var doc presetDoc
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, tinterrors.NewInvalidParameterError("preset", "malformed TOML document", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, tinterrors.NewInvalidParameterError("preset", "malformed JSON document", err)
		}
	default:
		return nil, tinterrors.NewInvalidParameterError("format", fmt.Sprintf("unsupported preset format %q", format), nil)
	}

	if err := validatorInstance().Struct(&doc); err != nil {
		return nil, tinterrors.NewInvalidParameterError("preset", describeValidation(err), err)
	}

	pal := make(palette.Palette, len(doc.Palette))
	for i, hex := range doc.Palette {
		c, err := colorspace.ParseHex(hex)
		if err != nil {
			return nil, err
		}
		pal[i] = c
	}

	accent, err := colorspace.ParseHex(doc.Accent)
	if err != nil {
		return nil, err
	}

	return New(doc.Name, pal, accent, doc.Extras)
}

// LoadPreset reads a preset file, inferring the format from its extension.
func LoadPreset(path string) (*Theme, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tinterrors.NewInvalidParameterError("preset", fmt.Sprintf("cannot read %s", path), err)
	}

	return ParsePreset(data, format)
}

func formatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", tinterrors.NewInvalidParameterError("preset", fmt.Sprintf("unsupported preset extension on %s", path), nil)
	}
}

// MarshalPreset encodes the theme as a preset document. Hex values are
// normalized to lowercase 6-digit form, so parse/marshal round-trips are
// stable.
func (t *Theme) MarshalPreset(format Format) ([]byte, error) {
	doc := presetDoc{
		Name:    t.name,
		Palette: t.palette.Hexes(),
		Accent:  t.accent.Hex(),
	}
	if len(t.extras) > 0 {
		doc.Extras = t.Extras()
	}

	switch format {
	case FormatTOML:
		return toml.Marshal(doc)
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, tinterrors.NewInvalidParameterError("format", fmt.Sprintf("unsupported preset format %q", format), nil)
	}
}

func describeValidation(err error) string {
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid preset document"
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s fails %q", strings.ToLower(fe.Field()), fe.Tag()))
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
