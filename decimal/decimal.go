package decimal

import (
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	sd "github.com/shopspring/decimal"

	"github.com/calebcase/scaled/integer"
	"github.com/calebcase/scaled/scale"
)

// Value is an immutable decimal number expressed in a scale.
//
// The zero Value is 0 in the smallest scale with a zero Config.
type Value struct {
	magnitude sd.Decimal
	scale     scale.Scale
	config    Config
}

var _ Scaled = Value{}

// New returns a value for source.
//
// If source is already scaled (a Value, a non-nil *Value or any Scaled), its
// magnitude, scale and config are copied and opts are ignored. Otherwise
// source must be one of:
//
//  - string: decimal ("-1.5", "2e18") or base prefixed ("0x64", "0b101", "0o17")
//  - int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64
//  - float32, float64 (finite)
//  - shopspring decimal.Decimal or *decimal.Decimal
//  - *big.Int, *uint256.Int, *hexutil.Big
//  - integer.Hexer (parsed from its hexadecimal form)
//  - fmt.Stringer (parsed from its string form)
//
// The default scale is scale.Smallest and the default config is
// DefaultConfig.
func New(source interface{}, opts ...Option) (v Value, err error) {
	if s, ok := asScaled(source); ok {
		return fromScaled(s), nil
	}

	o, err := newOptions(opts)
	if err != nil {
		return v, err
	}

	m, err := coerce(source)
	if err != nil {
		return v, err
	}

	return Value{
		magnitude: m,
		scale:     o.scale,
		config:    o.config,
	}, nil
}

// Must is like New, but panics on error.
func Must(source interface{}, opts ...Option) Value {
	v, err := New(source, opts...)
	if err != nil {
		panic(err)
	}

	return v
}

// Magnitude returns a copy of the number as expressed in v's scale.
func (v Value) Magnitude() sd.Decimal {
	return clone(v.magnitude)
}

// Scale returns the scale of v.
func (v Value) Scale() scale.Scale {
	return v.scale
}

// Config returns the configuration of v.
func (v Value) Config() Config {
	return v.config
}

// with returns a new value for m in v's scale and config.
func (v Value) with(m sd.Decimal) Value {
	return Value{
		magnitude: m,
		scale:     v.scale,
		config:    v.config,
	}
}

// clone copies d so the result shares no big.Int with it.
func clone(d sd.Decimal) sd.Decimal {
	return sd.NewFromBigInt(d.Coefficient(), d.Exponent())
}

func asScaled(x interface{}) (s Scaled, ok bool) {
	switch v := x.(type) {
	case Value:
		return v, true
	case *Value:
		if v == nil {
			return nil, false
		}

		return *v, true
	case Scaled:
		if nilPointer(v) {
			return nil, false
		}

		return v, true
	}

	return nil, false
}

// nilPointer returns true if x holds a typed nil pointer.
func nilPointer(x interface{}) bool {
	rv := reflect.ValueOf(x)

	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

func fromScaled(s Scaled) Value {
	return Value{
		magnitude: clone(s.Magnitude()),
		scale:     s.Scale(),
		config:    s.Config(),
	}
}

// coerce converts an unscaled input to a magnitude.
func coerce(x interface{}) (d sd.Decimal, err error) {
	if nilPointer(x) {
		return d, ParseError.New("nil input: %T", x)
	}

	switch v := x.(type) {
	case nil:
		return d, ParseError.New("nil input")
	case string:
		return parse(v)
	case int:
		return sd.NewFromInt(int64(v)), nil
	case int8:
		return sd.NewFromInt(int64(v)), nil
	case int16:
		return sd.NewFromInt(int64(v)), nil
	case int32:
		return sd.NewFromInt32(v), nil
	case int64:
		return sd.NewFromInt(v), nil
	case uint:
		return sd.NewFromBigInt(new(big.Int).SetUint64(uint64(v)), 0), nil
	case uint8:
		return sd.NewFromInt(int64(v)), nil
	case uint16:
		return sd.NewFromInt(int64(v)), nil
	case uint32:
		return sd.NewFromInt(int64(v)), nil
	case uint64:
		return sd.NewFromBigInt(new(big.Int).SetUint64(v), 0), nil
	case float32:
		if !finite(float64(v)) {
			return d, ParseError.New("non-finite float: %v", v)
		}

		return sd.NewFromFloat32(v), nil
	case float64:
		if !finite(v) {
			return d, ParseError.New("non-finite float: %v", v)
		}

		return sd.NewFromFloat(v), nil
	case sd.Decimal:
		return clone(v), nil
	case *sd.Decimal:
		return clone(*v), nil
	case *big.Int:
		return sd.NewFromBigInt(new(big.Int).Set(v), 0), nil
	case *uint256.Int:
		return sd.NewFromBigInt(integer.FromUint256(v), 0), nil
	case *hexutil.Big:
		return sd.NewFromBigInt(integer.FromHexutil(v), 0), nil
	case integer.Hexer:
		i, err := integer.FromHexer(v)
		if err != nil {
			return d, ParseError.Wrap(err)
		}

		return sd.NewFromBigInt(i, 0), nil
	case fmt.Stringer:
		return parse(v.String())
	}

	return d, ParseError.New("unsupported input: %T", x)
}

// parse reads a base prefixed integer or a decimal number.
func parse(s string) (d sd.Decimal, err error) {
	if integer.HasPrefix(s) {
		i, err := integer.Parse(s)
		if err != nil {
			return d, ParseError.Wrap(err)
		}

		return sd.NewFromBigInt(i, 0), nil
	}

	d, err = sd.NewFromString(s)
	if err != nil {
		return d, ParseError.Wrap(err)
	}

	return d, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
