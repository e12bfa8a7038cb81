package settings

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yaroher/go-names/escape"
	"github.com/yaroher/go-names/logger"
	"github.com/yaroher/go-names/names"
)

type Settings struct {
	Delimiter rune
	Strategy  names.Strategy
}

func mapGetOrDefault(paramsMap map[string]string, key string, defaultValue string) string {
	if val, ok := paramsMap[key]; ok {
		return val
	}
	return defaultValue
}

// Parse reads a "key=value,key=value" list. Recognized keys are delimiter and
// strategy; anything else is ignored.
func Parse(params string) (*Settings, error) {
	paramsMap := make(map[string]string)
	logger.Debug("parsing settings", zap.String("params", params))
	for _, param := range strings.Split(params, ",") {
		key, value, ok := strings.Cut(param, "=")
		if !ok {
			continue
		}
		paramsMap[strings.TrimSpace(key)] = value
	}

	delimiter, ok := escape.ParseDelimiter(mapGetOrDefault(paramsMap, "delimiter", string(escape.DefaultDelimiter)))
	if !ok {
		return nil, fmt.Errorf("delimiter must be a single character other than %q", escape.Character)
	}
	strategy, err := names.ParseStrategy(mapGetOrDefault(paramsMap, "strategy", names.ArrayStrategy.String()))
	if err != nil {
		return nil, err
	}
	return &Settings{Delimiter: delimiter, Strategy: strategy}, nil
}

func (s *Settings) Options() []names.Option {
	return []names.Option{names.WithDelimiter(s.Delimiter), names.WithStrategy(s.Strategy)}
}
