package parser

import (
	"strings"

	"github.com/mcncl/flatjson/internal/models"
)

var braceStripper = strings.NewReplacer("{", "", "}", "")

// PermissiveParse reconstructs key-value pairs from non-standard text such as
// "{a:1,b:2}".
//
// All braces are removed, the text is split on "," and every segment is split
// on ":". Only segments that split into exactly two non-empty parts are kept,
// as is, without trimming. Quoting, nesting and escaped delimiters are not
// understood, so a value containing "," or ":" corrupts its segment.
func PermissiveParse(text string) models.FlatMap {
	result := make(models.FlatMap)

	for _, segment := range split(braceStripper.Replace(text), ",") {
		parts := split(segment, ":")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		result[parts[0]] = parts[1]
	}

	return result
}

// PermissiveParse is PermissiveParse with keys converted to the configured
// key case.
func (p *Parser) PermissiveParse(text string) models.FlatMap {
	return p.normalizeKeys(PermissiveParse(text))
}

// split returns the substrings of text separated by delim, in order.
func split(text, delim string) models.StringList {
	return strings.Split(text, delim)
}
