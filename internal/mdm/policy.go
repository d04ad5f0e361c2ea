package mdm

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Restriction is a single managed setting: when Enabled the user may not
// change it and Value is enforced.
type Restriction struct {
	Enabled bool `yaml:"enabled"`
	Value   bool `yaml:"value"`
}

// Policy is the managed configuration pushed by the device administrator
type Policy struct {
	DoNotTrack Restriction `yaml:"do_not_track"`
}

// LoadPolicy reads a YAML policy file. A missing file means no policy.
func LoadPolicy(path string) (Policy, error) {
	var policy Policy

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return policy, nil
		}
		return policy, fmt.Errorf("failed to read policy %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &policy); err != nil {
		return Policy{}, fmt.Errorf("failed to parse policy %s: %w", path, err)
	}

	return policy, nil
}
