package decimal

import (
	"github.com/calebcase/scaled/scale"
)

// Config is the fixed configuration carried by every value.
type Config struct {
	// Decimals relates the two scales: smallest = normal * 10^Decimals.
	Decimals int32

	// Precision is the number of significant digits kept when a division
	// does not terminate. Zero selects DefaultPrecision.
	Precision int32
}

// Defaults
const (
	DefaultDecimals  = 18
	DefaultPrecision = 20
)

// DefaultConfig is used by New when no configuration option is given.
var DefaultConfig = Config{
	Decimals:  DefaultDecimals,
	Precision: DefaultPrecision,
}

func (c Config) precision() int32 {
	if c.Precision == 0 {
		return DefaultPrecision
	}

	return c.Precision
}

func (c Config) check() (err error) {
	if c.Decimals < 0 {
		return RangeError.New("negative decimals: %d", c.Decimals)
	}

	if c.Precision < 0 {
		return RangeError.New("negative precision: %d", c.Precision)
	}

	return nil
}

type options struct {
	scale  scale.Scale
	config Config
}

// Option configures a newly constructed value. Options are ignored when the
// source is already a scaled value.
type Option func(o *options)

// WithScale sets the scale the source is expressed in. The default is
// scale.Smallest.
func WithScale(s scale.Scale) Option {
	return func(o *options) {
		o.scale = s
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(c Config) Option {
	return func(o *options) {
		o.config = c
	}
}

// WithDecimals sets the number of decimals.
func WithDecimals(decimals int32) Option {
	return func(o *options) {
		o.config.Decimals = decimals
	}
}

// WithPrecision sets the division precision in significant digits.
func WithPrecision(precision int32) Option {
	return func(o *options) {
		o.config.Precision = precision
	}
}

func newOptions(opts []Option) (o options, err error) {
	o = options{
		scale:  scale.Smallest,
		config: DefaultConfig,
	}

	for _, opt := range opts {
		opt(&o)
	}

	err = scale.Check(o.scale)
	if err != nil {
		return o, err
	}

	err = o.config.check()
	if err != nil {
		return o, err
	}

	return o, nil
}
