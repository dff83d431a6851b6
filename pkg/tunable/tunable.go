// Package tunable holds runtime-adjustable numeric parameters.
package tunable

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a value falls outside a parameter's range
var ErrOutOfRange = errors.New("tunable: value out of range")

// Speed parameter limits
const (
	DefaultSpeed = 50.0
	MinSpeed     = 0.0
	MaxSpeed     = 200.0
)

// Param is a named value confined to [Min, Max]
type Param struct {
	name  string
	value float32
	min   float32
	max   float32
}

// NewParam creates a parameter. The initial value must lie in range.
func NewParam(name string, value, min, max float32) (*Param, error) {
	p := &Param{name: name, min: min, max: max}
	if err := p.Set(value); err != nil {
		return nil, err
	}
	return p, nil
}

// NewSpeed creates the character speed parameter with its default value
func NewSpeed() *Param {
	return &Param{name: "speed", value: DefaultSpeed, min: MinSpeed, max: MaxSpeed}
}

// Name returns the parameter's name
func (p *Param) Name() string {
	return p.name
}

// Value returns the current value
func (p *Param) Value() float32 {
	return p.value
}

// Set replaces the value, rejecting anything outside the range
func (p *Param) Set(v float32) error {
	if v < p.min || v > p.max {
		return fmt.Errorf("%w: %s=%v not in [%v, %v]", ErrOutOfRange, p.name, v, p.min, p.max)
	}
	p.value = v
	return nil
}

// Step adds delta, clamping the result to the range, and returns the new value
func (p *Param) Step(delta float32) float32 {
	p.value = min(max(p.value+delta, p.min), p.max)
	return p.value
}
