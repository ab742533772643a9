package parser

import (
	stderrors "errors" // Standard errors package
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/mcncl/flatjson/internal/analyzer"
	"github.com/mcncl/flatjson/internal/errors" // Custom errors package
	"github.com/mcncl/flatjson/internal/models"
)

// StrictObjectParse parses text as exactly one well-formed structured value.
//
// A top-level value that is not an object yields an empty map and no error.
// For objects, only the top-level members are visited; each value is coerced
// to a string by the analyzer. Duplicate member names are accepted and the
// last one wins. Keys are converted to the configured key case.
func (p *Parser) StrictObjectParse(text string) (models.FlatMap, error) {
	m, err := p.strictObjectParse(text)
	if err != nil {
		return nil, err
	}
	return p.normalizeKeys(m), nil
}

func (p *Parser) strictObjectParse(text string) (models.FlatMap, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewParsingError("input string is empty", errors.ErrEmptyInput)
	}

	dec := jsontext.NewDecoder(strings.NewReader(text), jsontext.AllowDuplicateNames(true))
	result := make(models.FlatMap)

	if dec.PeekKind() != '{' {
		if _, err := dec.ReadValue(); err != nil {
			return nil, syntaxError(err)
		}
		if err := expectEOF(dec); err != nil {
			return nil, err
		}
		return result, nil
	}

	if _, err := dec.ReadToken(); err != nil {
		return nil, syntaxError(err)
	}
	for dec.PeekKind() != '}' {
		name, err := dec.ReadToken()
		if err != nil {
			return nil, syntaxError(err)
		}
		// The token is voided by the next decoder call
		key := name.String()
		value, err := dec.ReadValue()
		if err != nil {
			return nil, syntaxError(err)
		}
		coerced, err := p.analyzer.Coerce(value)
		if err != nil {
			return nil, err
		}
		if analyzer.Classify(value) == models.KindUnknown {
			p.log().Debug("value replaced by sentinel",
				slog.String("key", key),
				slog.String("kind", analyzer.KindOf(value)),
			)
		}
		result[key] = coerced
	}
	if _, err := dec.ReadToken(); err != nil {
		return nil, syntaxError(err)
	}

	if err := expectEOF(dec); err != nil {
		return nil, err
	}
	return result, nil
}

// expectEOF reports an error if anything but whitespace follows the first
// top-level value.
func expectEOF(dec *jsontext.Decoder) error {
	_, err := dec.ReadToken()
	if err == nil {
		return errors.NewParsingError("multiple values found at the root", errors.ErrTrailingData)
	}
	if stderrors.Is(err, io.EOF) {
		return nil
	}
	return errors.NewParsingError("invalid trailing data after first value", errors.ErrTrailingData)
}

func syntaxError(err error) error {
	var syntacticErr *jsontext.SyntacticError
	if stderrors.As(err, &syntacticErr) {
		return errors.NewParsingError(
			fmt.Sprintf("JSON syntax error at offset %d", syntacticErr.ByteOffset),
			errors.ErrInvalidJSON,
		)
	}
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.NewParsingError("unexpected end of input", errors.ErrInvalidJSON)
	}
	return errors.NewParsingError("failed to decode JSON", err)
}
