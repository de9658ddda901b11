package main

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/rsnake/engine"
	"github.com/lixenwraith/rsnake/render"
)

// colorValue is a pflag.Value accepting any render color name, case-insensitively
type colorValue string

func (c *colorValue) Set(s string) error {
	name, err := render.ParseColor(s)
	if err != nil {
		return err
	}
	*c = colorValue(name)
	return nil
}

func (c *colorValue) String() string { return string(*c) }

func (c *colorValue) Type() string { return "color" }

// speedValue is a pflag.Value accepting a speed index 0-9
type speedValue int

func (v *speedValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || engine.ValidateSpeed(n) != nil {
		return fmt.Errorf("%s is an %w", s, engine.ErrSpeedOutOfRange)
	}
	*v = speedValue(n)
	return nil
}

func (v *speedValue) String() string { return strconv.Itoa(int(*v)) }

func (v *speedValue) Type() string { return "int" }
