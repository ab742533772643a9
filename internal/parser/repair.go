package parser

import (
	"github.com/kaptinlin/jsonrepair"
	"github.com/mcncl/flatjson/internal/errors"
	"github.com/mcncl/flatjson/internal/models"
)

// RepairParse fixes common JSON mistakes (unquoted keys, single quotes,
// trailing commas, missing closing brackets) and parses the repaired text
// strictly. Keys are converted to the configured key case.
func (p *Parser) RepairParse(text string) (models.FlatMap, error) {
	m, err := p.repairParse(text)
	if err != nil {
		return nil, err
	}
	return p.normalizeKeys(m), nil
}

func (p *Parser) repairParse(text string) (models.FlatMap, error) {
	repaired, err := jsonrepair.JSONRepair(text)
	if err != nil {
		return nil, errors.NewParsingError("failed to repair JSON", err)
	}
	return p.strictObjectParse(repaired)
}
