package analyzer

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/go-json-experiment/json"
	"github.com/mcncl/flatjson/internal/config"
	"github.com/mcncl/flatjson/internal/errors"
	"github.com/mcncl/flatjson/internal/models"
)

// DefaultSentinel is stored for values that are neither strings nor numbers.
const DefaultSentinel = "0"

// Analyzer classifies structured values and coerces them to strings
type Analyzer struct {
	// sentinel replaces values of unknown kind
	sentinel string
}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer() *Analyzer {
	return &Analyzer{sentinel: DefaultSentinel}
}

// NewAnalyzerWithConfig creates a new Analyzer instance with custom configuration.
func NewAnalyzerWithConfig(cfg *config.Config) *Analyzer {
	if cfg == nil {
		return NewAnalyzer()
	}
	return &Analyzer{sentinel: cfg.Parser.Sentinel}
}

// Sentinel returns the string stored for values of unknown kind.
func (a *Analyzer) Sentinel() string {
	return a.sentinel
}

// Classify reports the kind of v. It is total: anything that is not a string
// or a number, including malformed input, is KindUnknown.
func Classify(v models.Value) models.ValueKind {
	switch v.Kind() {
	case '"':
		return models.KindString
	case '0':
		raw := numberText(v)
		if _, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return models.KindInteger
		}
		if _, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return models.KindInteger
		}
		return models.KindDecimal
	default:
		return models.KindUnknown
	}
}

// Coerce renders v as a flat string value.
//
// Strings are unescaped, integers are rendered in base 10 and decimals use the
// shortest representation without an exponent. Note that a decimal with a zero
// fractional part such as 1.0 renders as "1". Every other kind collapses to the
// sentinel.
func (a *Analyzer) Coerce(v models.Value) (string, error) {
	switch Classify(v) {
	case models.KindString:
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return "", errors.NewParsingError("failed to decode string value", err)
		}
		return s, nil

	case models.KindInteger:
		raw := numberText(v)
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return strconv.FormatInt(i, 10), nil
		}
		u, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return "", errors.NewParsingError(fmt.Sprintf("invalid integer %q", raw), err)
		}
		return strconv.FormatUint(u, 10), nil

	case models.KindDecimal:
		raw := numberText(v)
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", errors.NewParsingError(fmt.Sprintf("invalid number %q", raw), errors.ErrNumberRange)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil

	default:
		return a.sentinel, nil
	}
}

// KindOf returns the kind name used in debug output for v, e.g. "object" for
// values that classify as unknown.
func KindOf(v models.Value) string {
	if k := Classify(v); k != models.KindUnknown {
		return k.String()
	}
	switch v.Kind() {
	case 'n':
		return "null"
	case 't', 'f':
		return "bool"
	case '{':
		return "object"
	case '[':
		return "array"
	default:
		return models.KindUnknown.String()
	}
}

func numberText(v models.Value) string {
	return strings.TrimSpace(string(v))
}
