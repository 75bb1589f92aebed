package decimal

import (
	"github.com/calebcase/scaled/scale"
)

// ScaleDown returns v multiplied by 10^power in the same scale and config.
//
// This moves a magnitude towards a smaller unit, e.g. ScaleDown(6) converts
// a USDC amount to its 6 decimal base units.
func (v Value) ScaleDown(power int32) Value {
	return v.with(v.magnitude.Shift(power))
}

// ScaleUp returns v divided by 10^power in the same scale and config.
func (v Value) ScaleUp(power int32) Value {
	return v.with(v.magnitude.Shift(-power))
}

// ToSmallestScale returns v expressed in scale.Smallest.
func (v Value) ToSmallestScale() Value {
	if v.scale == scale.Smallest {
		return fromScaled(v)
	}

	r := v.ScaleDown(v.config.Decimals)
	r.scale = scale.Smallest

	return r
}

// ToMinScale is an alias for ToSmallestScale.
func (v Value) ToMinScale() Value {
	return v.ToSmallestScale()
}

// ToNormalScale returns v expressed in scale.Normal.
func (v Value) ToNormalScale() Value {
	if v.scale == scale.Normal {
		return fromScaled(v)
	}

	r := v.ScaleUp(v.config.Decimals)
	r.scale = scale.Normal

	return r
}

// ToCoinScale is an alias for ToNormalScale.
func (v Value) ToCoinScale() Value {
	return v.ToNormalScale()
}

// ToScale returns v expressed in s.
func (v Value) ToScale(s scale.Scale) (r Value, err error) {
	switch s {
	case scale.Smallest:
		return v.ToSmallestScale(), nil
	case scale.Normal:
		return v.ToNormalScale(), nil
	}

	return r, scale.UnrecognizedError.New("%d", uint8(s))
}
