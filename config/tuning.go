package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the on-disk override file for gameplay values.
//
//	player:
//	  velocityX: 200
//	  velocityY: 400
//	  maxJumpHeight: 230
//	  fallDivider: 1.25
//	  cycleDelay: 70ms
//
// Fields missing from the file keep their built-in defaults.
type Tuning struct {
	Player PlayerConfig `yaml:"player"`
}

// LoadTuning reads and validates a tuning file.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}

	t, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseTuning decodes tuning YAML on top of the defaults.
func ParseTuning(data []byte) (*Tuning, error) {
	t := &Tuning{Player: DefaultPlayer()}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// Validate rejects values that would stall or invert the jump cycle.
func (t *Tuning) Validate() error {
	p := t.Player
	var errs []error
	if p.VelocityX <= 0 {
		errs = append(errs, fmt.Errorf("velocityX must be positive, got %v", p.VelocityX))
	}
	if p.VelocityY <= 0 {
		errs = append(errs, fmt.Errorf("velocityY must be positive, got %v", p.VelocityY))
	}
	if p.MaxJumpHeight <= 0 {
		errs = append(errs, fmt.Errorf("maxJumpHeight must be positive, got %v", p.MaxJumpHeight))
	}
	if p.FallDivider <= 0 {
		errs = append(errs, fmt.Errorf("fallDivider must be positive, got %v", p.FallDivider))
	}
	if p.CycleDelay <= 0 {
		errs = append(errs, fmt.Errorf("cycleDelay must be positive, got %v", p.CycleDelay))
	}
	return errors.Join(errs...)
}

// Apply makes the tuning the active player configuration.
func (t *Tuning) Apply() {
	Player = t.Player
}
