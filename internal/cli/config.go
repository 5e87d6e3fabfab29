package cli

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable consulted when --config is not
// given.
const ConfigEnv = "FXP_CONFIG"

// Config holds flag defaults loaded from a YAML file:
//
//	type: I32F32
//	policy: saturating
//	format: json
type Config struct {
	Type    string `yaml:"type"`
	Policy  string `yaml:"policy"`
	Format  string `yaml:"format"`
	Verbose bool   `yaml:"verbose"`
}

func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}
