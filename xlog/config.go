package xlog

import (
	"github.com/roadrunner-server/errors"
	"gopkg.in/yaml.v3"
)

// Settings is the validated form of a level configuration file.
type Settings struct {
	MinLevel Level
	Levels   map[string]Level
}

type fileConfig struct {
	MinLevel string            `yaml:"min_level"`
	Levels   map[string]string `yaml:"levels"`
}

// ParseConfig decodes YAML level configuration:
//
//	min_level: debug
//	levels:
//	  payments: warn
//
// An absent min_level means info.
func ParseConfig(data []byte) (Settings, error) {
	const op = errors.Op("xlog_parse_config")

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Settings{}, errors.E(op, err)
	}

	s := Settings{MinLevel: LevelInfo, Levels: make(map[string]Level, len(fc.Levels))}
	if fc.MinLevel != "" {
		l, err := ParseLevel(fc.MinLevel)
		if err != nil {
			return Settings{}, errors.E(op, err)
		}
		s.MinLevel = l
	}
	for name, raw := range fc.Levels {
		l, err := ParseLevel(raw)
		if err != nil {
			return Settings{}, errors.E(op, errors.Errorf("logger %q: %v", name, err))
		}
		s.Levels[name] = l
	}
	return s, nil
}
