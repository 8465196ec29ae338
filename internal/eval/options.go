package eval

import (
	"fmt"
	"os"
	"strconv"
)

type Options struct {
	StrictTokens bool
}

// LoadOptions reads evaluator settings from the environment.
// CALC_STRICT_TOKENS: reject unclassified characters while tokenizing.
func LoadOptions() (Options, error) {
	var opts Options

	if raw := os.Getenv("CALC_STRICT_TOKENS"); raw != "" {
		strict, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, fmt.Errorf("invalid CALC_STRICT_TOKENS %q: %w", raw, err)
		}
		opts.StrictTokens = strict
	}

	return opts, nil
}
