// Package parser turns loosely structured key-value text into a flat map.
//
// Text is run through an ordered chain of strategies. The default chain tries
// a strict structured parse first and falls back to a permissive delimiter
// based parse when the strict parse fails or yields nothing. ParseTolerant
// never returns an error; the worst case is an empty map.
package parser

import (
	"log/slog"
	"sort"

	"github.com/mcncl/flatjson/internal/analyzer"
	"github.com/mcncl/flatjson/internal/config"
	"github.com/mcncl/flatjson/internal/models"
)

// Parser holds a configured strategy chain. It is immutable once built and
// safe for concurrent use.
type Parser struct {
	config     *config.Config
	analyzer   *analyzer.Analyzer
	strategies []Strategy
	logger     *slog.Logger
}

// Option configures a Parser
type Option func(*Parser)

// WithLogger sets the logger used for diagnostics. Without it the parser logs
// to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

var defaultParser = NewParser()

// NewParser creates a Parser with the default configuration.
func NewParser(opts ...Option) *Parser {
	p, err := NewParserWithConfig(config.NewConfig(), opts...)
	if err != nil {
		// The default configuration always validates
		panic(err)
	}
	return p
}

// NewParserWithConfig creates a Parser from cfg. It fails if cfg names an
// unknown strategy or key case.
func NewParserWithConfig(cfg *config.Config, opts ...Option) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Parser{
		config:   cfg,
		analyzer: analyzer.NewAnalyzerWithConfig(cfg),
	}
	for _, opt := range opts {
		opt(p)
	}

	for _, name := range cfg.Parser.Strategies {
		s, err := p.strategy(name)
		if err != nil {
			return nil, err
		}
		p.strategies = append(p.strategies, s)
	}

	return p, nil
}

// Strategies returns the names of the configured strategies in order.
func (p *Parser) Strategies() []string {
	names := make([]string, len(p.strategies))
	for i, s := range p.strategies {
		names[i] = s.Name
	}
	return names
}

// ParseTolerant converts text to a flat map using the strategy chain.
//
// The first strategy that succeeds with a non-empty map wins. When none does,
// the result of the last strategy that succeeded is returned, which may be
// empty.
func (p *Parser) ParseTolerant(text string) models.FlatMap {
	result := models.FlatMap{}

	for _, s := range p.strategies {
		m, err := s.Parse(text)
		if err != nil {
			p.log().Debug("strategy failed", slog.String("strategy", s.Name), slog.Any("error", err))
			continue
		}
		if m != nil {
			result = m
		}
		if len(m) > 0 {
			p.log().Debug("strategy selected", slog.String("strategy", s.Name), slog.Int("keys", len(m)))
			break
		}
		p.log().Debug("strategy produced no entries", slog.String("strategy", s.Name))
	}

	return p.normalizeKeys(result)
}

// normalizeKeys applies the configured key case. Keys that collide after
// conversion are resolved in sorted key order, so the last one wins.
func (p *Parser) normalizeKeys(m models.FlatMap) models.FlatMap {
	switch p.config.Parser.KeyCase {
	case "", config.KeyCaseNone:
		return m
	}

	keys := m.Keys()
	sort.Strings(keys)

	normalized := make(models.FlatMap, len(m))
	for _, k := range keys {
		normalized[p.config.NormalizeKey(k)] = m[k]
	}
	return normalized
}

func (p *Parser) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return slog.Default()
}

// ParseTolerant converts text to a flat map with the default strategy chain:
// strict object parse, then permissive delimiter parse.
func ParseTolerant(text string) models.FlatMap {
	return defaultParser.ParseTolerant(text)
}

// StrictObjectParse parses text as a single structured value. See
// Parser.StrictObjectParse.
func StrictObjectParse(text string) (models.FlatMap, error) {
	return defaultParser.StrictObjectParse(text)
}

// RepairParse repairs malformed JSON before parsing it strictly. See
// Parser.RepairParse.
func RepairParse(text string) (models.FlatMap, error) {
	return defaultParser.RepairParse(text)
}

// ParseQuotedPairs extracts quoted key-value pairs. See Parser.ParseQuotedPairs.
func ParseQuotedPairs(text string) models.FlatMap {
	return defaultParser.ParseQuotedPairs(text)
}
