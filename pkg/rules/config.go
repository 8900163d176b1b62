package rules

import (
	"github.com/arthur-debert/modcontent/pkg/categories"
	"github.com/arthur-debert/modcontent/pkg/config"
	"github.com/arthur-debert/modcontent/pkg/errors"
	"github.com/arthur-debert/modcontent/pkg/logging"
)

// GameSetsFromConfig converts the configured game lists
func GameSetsFromConfig(g config.Games) GameSets {
	return GameSets{
		ScriptExtender:  NewGameSet(g.ScriptExtender...),
		PythonScripting: NewGameSet(g.PythonScripting...),
		DLLPlugins:      NewGameSet(g.DLLPlugins...),
		ImageTextures:   NewGameSet(g.ImageTextures...),
	}
}

// FromConfig builds the built-in table for the configured game lists and
// appends the configured rules
func FromConfig(cfg *config.Config) (*Table, error) {
	logger := logging.GetLogger("rules.config")

	sets := GameSetsFromConfig(cfg.Games)
	b := DefaultBuilder(sets)
	for i, rc := range cfg.Rules {
		rule, err := ruleFromConfig(sets, rc)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid rule %d", i).
				WithDetail("extension", rc.Extension)
		}
		b.Add(rc.Extension, rule)
		logger.Debug().
			Str("extension", normalizeKey(rc.Extension)).
			Str("category", string(rule.Category)).
			Msg("Added configured rule")
	}

	return b.Build()
}

func ruleFromConfig(sets GameSets, rc config.Rule) (Rule, error) {
	c, err := categories.Parse(rc.Category)
	if err != nil {
		return Rule{}, err
	}

	var preds []Predicate
	if len(rc.Games) > 0 {
		games, err := sets.Resolve(rc.Games...)
		if err != nil {
			return Rule{}, err
		}
		preds = append(preds, GameIn(games))
	}
	if len(rc.ExcludeGames) > 0 {
		games, err := sets.Resolve(rc.ExcludeGames...)
		if err != nil {
			return Rule{}, err
		}
		preds = append(preds, GameNotIn(games))
	}
	if len(rc.ExcludeNames) > 0 {
		preds = append(preds, BaseNameIsNot(rc.ExcludeNames...))
	}

	switch len(preds) {
	case 0:
		return Always(c), nil
	case 1:
		return When(c, preds[0]), nil
	default:
		return When(c, All(preds...)), nil
	}
}
