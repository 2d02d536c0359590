package achievement

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// LoadPolicy reads achievement thresholds from a YAML file. Keys missing from
// the file keep their defaults; an empty path means defaults only.
func LoadPolicy(path string, logger zerolog.Logger) (Policy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return policy, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return policy, fmt.Errorf("reading policy file: %w", err)
	}
	data = []byte(os.ExpandEnv(string(data)))

	if err := yaml.Unmarshal(data, &policy); err != nil {
		return policy, fmt.Errorf("parsing policy file: %w", err)
	}
	if err := policy.Validate(); err != nil {
		return policy, fmt.Errorf("invalid policy file %s: %w", path, err)
	}

	logger.Info().Str("policy_file", path).Msg("achievement policy loaded")
	return policy, nil
}
