package parser

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/mcncl/flatjson/internal/models"
)

var (
	// quotedSpan matches a double-quoted span, shortest first
	quotedSpan = regexp.MustCompile(`"[\s\S]*?"`)
	// entryGroup matches an innermost bracketed group such as ["k","v"]
	entryGroup = regexp.MustCompile(`\[[^\[\]]*\]`)
)

// ParseQuotedPairs extracts key-value pairs from text made of double-quoted
// tokens, such as the entries of a serialized map: [["k1","v1"],["k2","v2"]].
//
// An array of arrays is split into its innermost bracketed groups. Any other
// text, including a flat array such as ["k1","v1","k2","v2"], has its quoted
// tokens taken two at a time. Each entry must hold exactly two quoted spans;
// other entries are dropped with a warning. All double quotes are removed from
// the key and the value, and keys are converted to the configured key case.
func (p *Parser) ParseQuotedPairs(text string) models.FlatMap {
	result := make(models.FlatMap)

	for _, entry := range quotedEntries(text) {
		spans := extractMatches(quotedSpan, entry)
		if len(spans) != 2 {
			p.log().Warn("dropping malformed quoted pair",
				slog.String("entry", entry),
				slog.Int("spans", len(spans)),
			)
			continue
		}
		key := strings.ReplaceAll(spans[0], `"`, "")
		value := strings.ReplaceAll(spans[1], `"`, "")
		result[key] = value
	}

	return p.normalizeKeys(result)
}

func quotedEntries(text string) models.StringList {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "[") {
		groups := extractMatches(entryGroup, trimmed)
		// A single group spanning the whole text is a flat array
		if len(groups) > 1 || (len(groups) == 1 && groups[0] != trimmed) {
			return groups
		}
	}

	tokens := extractMatches(quotedSpan, text)
	entries := make(models.StringList, 0, (len(tokens)+1)/2)
	for i := 0; i < len(tokens); i += 2 {
		if i+1 < len(tokens) {
			entries = append(entries, tokens[i]+":"+tokens[i+1])
			continue
		}
		// An odd token out is reported as malformed
		entries = append(entries, tokens[i])
	}
	return entries
}

// extractMatches returns every non-overlapping match of pattern in text, in order.
func extractMatches(pattern *regexp.Regexp, text string) models.StringList {
	return pattern.FindAllString(text, -1)
}
