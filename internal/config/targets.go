package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Mehrdad93/baybe/internal/domain/target"
)

// TargetSpec is the YAML form of a target definition.
type TargetSpec struct {
	Name      string   `yaml:"name"`
	Mode      string   `yaml:"mode"`
	Lower     *float64 `yaml:"lower"`
	Upper     *float64 `yaml:"upper"`
	Transform string   `yaml:"transform"`
}

type targetsFile struct {
	Targets []TargetSpec `yaml:"targets"`
}

// LoadTargets reads an ordered target list from a YAML file.
func LoadTargets(path string) ([]target.Target, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read targets %s: %w", path, err)
	}

	var tf targetsFile
	if err := yaml.Unmarshal(expandEnvVars(data), &tf); err != nil {
		return nil, fmt.Errorf("failed to parse targets: %w", err)
	}
	if len(tf.Targets) == 0 {
		return nil, fmt.Errorf("targets file %s defines no targets", path)
	}

	targets := make([]target.Target, len(tf.Targets))
	for i, spec := range tf.Targets {
		t, err := spec.Build()
		if err != nil {
			return nil, err
		}
		targets[i] = t
	}
	return targets, nil
}

// Build converts the spec into a validated target.
func (s TargetSpec) Build() (target.Target, error) {
	bounds := target.Interval{}
	if s.Lower != nil || s.Upper != nil {
		if s.Lower == nil || s.Upper == nil {
			return target.Target{}, fmt.Errorf(
				"target %q: lower and upper bounds must be given together", s.Name)
		}
		iv, err := target.NewInterval(*s.Lower, *s.Upper)
		if err != nil {
			return target.Target{}, fmt.Errorf("target %q: %w", s.Name, err)
		}
		bounds = iv
	}

	t, err := target.New(s.Name, target.Mode(s.Mode), bounds)
	if err != nil {
		return target.Target{}, err
	}
	if s.Transform != "" {
		t, err = t.WithTransformMode(target.TransformMode(s.Transform))
		if err != nil {
			return target.Target{}, err
		}
	}
	return t, nil
}
