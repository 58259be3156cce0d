// Package physics provides the immutable physical-constant table consumed by
// the potential-field transforms, with optional YAML overrides for
// experiments that need injected constants.
//
// Constants travel by value. Nothing in this package is global or mutable:
// a transform receives the table it should use and defaults to Default().
package physics

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-potfield/potfield/grid"
)

// Constants is the scalar constant table. Field values are SI unless noted.
type Constants struct {
	// G is the universal gravitational constant in m^3 kg^-1 s^-2.
	G float64 `yaml:"g"`

	// SI2MGal converts acceleration from m/s^2 to milligal.
	SI2MGal float64 `yaml:"si2mGal"`

	// T2NT converts tesla to nanotesla.
	T2NT float64 `yaml:"t2nT"`

	// NT2T converts nanotesla to tesla.
	NT2T float64 `yaml:"nT2T"`

	// CM is the magnetization constant mu0/(4*pi) in T m/A.
	CM float64 `yaml:"cm"`

	// Mu0 is the vacuum magnetic permeability in T m/A.
	Mu0 float64 `yaml:"mu0"`

	// EarthRadius in meters.
	EarthRadius float64 `yaml:"earthRadius"`

	// EarthMass in kilograms.
	EarthMass float64 `yaml:"earthMass"`

	// MeanDensity of the Earth in g/cm^3.
	MeanDensity float64 `yaml:"meanDensity"`

	// EscapeVelocity at the Earth's surface in m/s.
	EscapeVelocity float64 `yaml:"escapeVelocity"`
}

// Default returns the reference constant table. The first five entries are
// the ones the pseudogravity scaling depends on and must keep these exact
// values for numerical compatibility across implementations.
func Default() Constants {
	return Constants{
		G:              6.673e-11,
		SI2MGal:        100000.0,
		T2NT:           1e9,
		NT2T:           1e-9,
		CM:             1e-7,
		Mu0:            4e-7 * math.Pi,
		EarthRadius:    6378137.0,
		EarthMass:      5.972e24,
		MeanDensity:    5.514,
		EscapeVelocity: 11186.0,
	}
}

// Parse applies YAML overrides from data onto the default table. Keys absent
// from the document keep their default values.
func Parse(data []byte) (Constants, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Constants{}, fmt.Errorf("physics: failed to parse constants: %w", err)
	}
	if err := c.validate(); err != nil {
		return Constants{}, err
	}
	return c, nil
}

// Load reads a YAML constants file and applies it onto the default table.
// A missing file is not an error; the defaults are returned unchanged.
func Load(path string) (Constants, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Constants{}, fmt.Errorf("physics: failed to read constants file: %w", err)
	}
	return Parse(data)
}

// validate rejects tables whose scaling-critical entries are zero; those
// appear in denominators of the pseudogravity constant.
func (c Constants) validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"g", c.G},
		{"si2mGal", c.SI2MGal},
		{"t2nT", c.T2NT},
		{"cm", c.CM},
	}
	for _, chk := range checks {
		if chk.value == 0 {
			return fmt.Errorf("constant %s must not be zero: %w", chk.name, grid.ErrInvalidParameter)
		}
	}
	return nil
}
