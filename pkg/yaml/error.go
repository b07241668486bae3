package yaml

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/token"
)

// Error is a YAML error annotated with its position in the source document.
// Either Path or Token locates the error; Source, when set, is included in
// the rendered message.
type Error struct {
	Err    error
	Path   *yaml.Path
	Token  *token.Token
	Source []byte
}

func (e *Error) Error() string {
	if e.Err == nil {
		return ""
	}

	switch {
	case e.Token != nil:
		pos := e.Token.Position

		return fmt.Sprintf("[%d:%d] %v", pos.Line, pos.Column, e.Err)

	case e.Path != nil:
		msg := fmt.Sprintf("%s: %v", e.Path.String(), e.Err)
		if len(e.Source) > 0 {
			if annotated, err := e.Path.AnnotateSource(e.Source, false); err == nil {
				return fmt.Sprintf("%s\n%s", msg, annotated)
			}
		}

		return msg

	default:
		return e.Err.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorWrapper attaches a source document to [Error]s so their messages can
// include an annotated snippet. Non-[Error] errors pass through unmodified.
type ErrorWrapper struct {
	source []byte
}

func NewErrorWrapper(source []byte) *ErrorWrapper {
	return &ErrorWrapper{source: source}
}

func (ew *ErrorWrapper) Wrap(err error) error {
	if err == nil {
		return nil
	}

	var yamlErr *Error
	if errors.As(err, &yamlErr) {
		yamlErr.Source = ew.source

		return yamlErr
	}

	return err
}
