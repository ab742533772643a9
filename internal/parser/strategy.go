package parser

import (
	"fmt"

	"github.com/mcncl/flatjson/internal/config"
	"github.com/mcncl/flatjson/internal/errors"
	"github.com/mcncl/flatjson/internal/models"
)

// Strategy is one step of the tolerant parse chain. A strategy that cannot
// make sense of its input returns an error or an empty map, and the chain
// moves on to the next one.
type Strategy struct {
	Name  string
	Parse func(text string) (models.FlatMap, error)
}

func (p *Parser) strategy(name string) (Strategy, error) {
	switch name {
	case config.StrategyStrict:
		return Strategy{Name: name, Parse: p.strictObjectParse}, nil
	case config.StrategyRepair:
		return Strategy{Name: name, Parse: p.repairParse}, nil
	case config.StrategyPermissive:
		return Strategy{Name: name, Parse: func(text string) (models.FlatMap, error) {
			return PermissiveParse(text), nil
		}}, nil
	default:
		return Strategy{}, errors.NewConfigError(fmt.Sprintf("unknown strategy '%s'", name), errors.ErrUnknownStrategy)
	}
}
