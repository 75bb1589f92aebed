// Package scale provides the unit a decimal magnitude is expressed in.
//
// There are exactly two scales. A magnitude in the smallest scale counts
// indivisible units (e.g. wei). A magnitude in the normal scale counts the
// user facing denomination (e.g. ether). For a configuration with D decimals:
//
//  smallest = normal * 10^D
//
// Names
//
//  | Scale    | Names                   |
//  |----------|-------------------------|
//  | Smallest | smallest, min           |
//  | Normal   | normal, coin, coins     |
//  |----------|-------------------------|
package scale

import (
	"fmt"
	"strings"

	"github.com/zeebo/errs"
)

var (
	// InvalidError is returned when a value is constructed with a scale
	// outside of Smallest and Normal.
	InvalidError = errs.Class("invalid scale")

	// UnrecognizedError is returned when converting to, or parsing, an
	// unknown scale.
	UnrecognizedError = errs.Class("unrecognized scale")
)

// Scale is the unit a magnitude is expressed in.
type Scale uint8

// Scales
const (
	Smallest Scale = iota
	Normal
)

var names = map[string]Scale{
	"smallest": Smallest,
	"min":      Smallest,
	"normal":   Normal,
	"coin":     Normal,
	"coins":    Normal,
}

// Valid returns true if s is Smallest or Normal.
func (s Scale) Valid() bool {
	return s == Smallest || s == Normal
}

// String implements fmt.Stringer.
func (s Scale) String() string {
	switch s {
	case Smallest:
		return "smallest"
	case Normal:
		return "normal"
	}

	return fmt.Sprintf("Scale(%d)", uint8(s))
}

// Check returns an InvalidError if s is not a valid scale.
func Check(s Scale) (err error) {
	if !s.Valid() {
		return InvalidError.New("%d", uint8(s))
	}

	return nil
}

// Parse returns the scale for the given name. Names are case insensitive.
func Parse(name string) (s Scale, err error) {
	s, ok := names[strings.ToLower(name)]
	if !ok {
		return s, UnrecognizedError.New("%q", name)
	}

	return s, nil
}

// ValidName returns true if name is a recognized scale name.
func ValidName(name string) bool {
	_, err := Parse(name)

	return err == nil
}
