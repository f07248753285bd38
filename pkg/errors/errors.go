package errors

import (
	"fmt"
)

// InvalidParameterError reports a bad input to palette generation or color
// parsing, such as a non-positive palette size or a malformed hex string.
type InvalidParameterError struct {
	Field   string
	Message string
	Err     error
}

// NewInvalidParameterError constructs an InvalidParameterError.
func NewInvalidParameterError(field, message string, err error) error {
	return &InvalidParameterError{Field: field, Message: message, Err: err}
}

func (e *InvalidParameterError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid parameter: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid parameter: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *InvalidParameterError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvalidExtrasError reports an extras entry whose palette index is out of
// range for the palette it accompanies.
type InvalidExtrasError struct {
	Key    string
	Index  int
	Length int
}

// NewInvalidExtrasError constructs an InvalidExtrasError.
func NewInvalidExtrasError(key string, index, length int) error {
	return &InvalidExtrasError{Key: key, Index: index, Length: length}
}

func (e *InvalidExtrasError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid extras: %q maps to index %d, palette has %d colors", e.Key, e.Index, e.Length)
}

// DuplicateKeyError reports a key that appears more than once in an ordered
// text source, such as extras pairs or a manifest mapping.
type DuplicateKeyError struct {
	Key string
}

// NewDuplicateKeyError constructs a DuplicateKeyError.
func NewDuplicateKeyError(key string) error {
	return &DuplicateKeyError{Key: key}
}

func (e *DuplicateKeyError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("duplicate key: %q", e.Key)
}

// TemplateParseError reports a malformed exporter template source or a
// template-authoring mistake caught at render time.
type TemplateParseError struct {
	Template string
	Message  string
	Err      error
}

// NewTemplateParseError constructs a TemplateParseError.
func NewTemplateParseError(template, message string, err error) error {
	return &TemplateParseError{Template: template, Message: message, Err: err}
}

func (e *TemplateParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Template != "" {
		return fmt.Sprintf("template %q: %s", e.Template, e.Message)
	}
	return fmt.Sprintf("template: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *TemplateParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MissingExtraError reports a render attempt against a theme that lacks an
// extras key the template declares as required.
type MissingExtraError struct {
	Template string
	Key      string
}

// NewMissingExtraError constructs a MissingExtraError.
func NewMissingExtraError(template, key string) error {
	return &MissingExtraError{Template: template, Key: key}
}

func (e *MissingExtraError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("template %q requires extra %q which the theme does not define", e.Template, e.Key)
}
