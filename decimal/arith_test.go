package decimal

import (
	"fmt"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/scaled/scale"
)

func TestArithmetic(t *testing.T) {
	type TC struct {
		name   string
		fn     func(v Value, x interface{}) (Value, error)
		v      Value
		x      interface{}
		output string
		scale  scale.Scale
		Mark   error
	}

	add := Value.Add
	sub := Value.Sub
	mul := Value.Mul
	div := Value.Div

	normal := WithScale(scale.Normal)

	tcs := []TC{
		{
			name:   "add bare",
			fn:     add,
			v:      Must(5),
			x:      1,
			output: "6",
			scale:  scale.Smallest,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "add normal to smallest",
			fn:     add,
			v:      Must(5),
			x:      Must(1, normal),
			output: "1000000000000000005",
			scale:  scale.Smallest,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "add smallest to normal",
			fn:     add,
			v:      Must(5, normal),
			x:      Must(1),
			output: "5.000000000000000001",
			scale:  scale.Normal,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "add uses operand decimals",
			fn:     add,
			v:      Must(5),
			x:      Must("1.5", normal, WithDecimals(2)),
			output: "155",
			scale:  scale.Smallest,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "add hex",
			fn:     add,
			v:      Must("0.5"),
			x:      "0x10",
			output: "16.5",
			scale:  scale.Smallest,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "sub",
			fn:     sub,
			v:      Must(10),
			x:      "0x2",
			output: "8",
			scale:  scale.Smallest,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "sub negative",
			fn:     sub,
			v:      Must(1, normal),
			x:      "2.25",
			output: "-1.25",
			scale:  scale.Normal,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "mul",
			fn:     mul,
			v:      Must("1.5"),
			x:      2,
			output: "3",
			scale:  scale.Smallest,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "mul normal by smallest",
			fn:     mul,
			v:      Must(2, normal, WithDecimals(2)),
			x:      Must(50, WithDecimals(2)),
			output: "1",
			scale:  scale.Normal,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "div repeating",
			fn:     div,
			v:      Must(100),
			x:      3,
			output: "33." + strings.Repeat("3", 18),
			scale:  scale.Smallest,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "div one third",
			fn:     div,
			v:      Must(1),
			x:      3,
			output: "0." + strings.Repeat("3", 20),
			scale:  scale.Smallest,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "div rounds half away from zero",
			fn:     div,
			v:      Must(2),
			x:      3,
			output: "0." + strings.Repeat("6", 19) + "7",
			scale:  scale.Smallest,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "div negative rounds half away from zero",
			fn:     div,
			v:      Must(-2),
			x:      3,
			output: "-0." + strings.Repeat("6", 19) + "7",
			scale:  scale.Smallest,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "div terminating",
			fn:     div,
			v:      Must(1),
			x:      8,
			output: "0.125",
			scale:  scale.Smallest,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "div tiny",
			fn:     div,
			v:      Must("0.000000000000000001", normal),
			x:      3,
			output: "0." + strings.Repeat("0", 18) + strings.Repeat("3", 20),
			scale:  scale.Normal,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "div precision",
			fn:     div,
			v:      Must(1, WithPrecision(5)),
			x:      3,
			output: "0.33333",
			scale:  scale.Smallest,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "div wide integer",
			fn:     div,
			v:      Must("3703703670370370367037035"),
			x:      3,
			output: "1234567890123456789012345",
			scale:  scale.Smallest,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "div smallest by normal",
			fn:     div,
			v:      Must("3000000000000000000"),
			x:      Must(1, normal),
			output: "3",
			scale:  scale.Smallest,
			Mark:   oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			before := tc.v.String()

			r, err := tc.fn(tc.v, tc.x)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.output, r.String(), tc.Mark)
			require.Equal(t, tc.scale, r.Scale(), tc.Mark)
			require.Equal(t, tc.v.Config(), r.Config(), tc.Mark)

			// The receiver is never modified.
			require.Equal(t, before, tc.v.String(), tc.Mark)
		})
	}
}

func TestArithmeticErrors(t *testing.T) {
	v := Must(1)

	_, err := v.Add("one")
	require.True(t, ParseError.Has(err))

	_, err = v.Sub(nil)
	require.True(t, ParseError.Has(err))

	_, err = v.Mul(struct{}{})
	require.True(t, ParseError.Has(err))

	_, err = v.Div("0x")
	require.True(t, ParseError.Has(err))

	_, err = v.Div(0)
	require.ErrorIs(t, err, ErrDivisionByZero)

	_, err = v.Div("0.000")
	require.ErrorIs(t, err, ErrDivisionByZero)

	_, err = v.Div(Must(0, WithScale(scale.Normal)))
	require.ErrorIs(t, err, ErrDivisionByZero)

	// A foreign operand in an unknown scale cannot be aligned.
	_, err = v.Add(foreign{s: scale.Scale(4)})
	require.True(t, scale.UnrecognizedError.Has(err))
}

func TestImmutable(t *testing.T) {
	a := Must(5)
	b := Must(1, WithScale(scale.Normal))

	ops := []func(Value, interface{}) (Value, error){
		Value.Add,
		Value.Sub,
		Value.Mul,
		Value.Div,
	}

	for _, op := range ops {
		_, err := op(a, b)
		require.NoError(t, err)

		require.Equal(t, "5", a.String())
		require.Equal(t, scale.Smallest, a.Scale())
		require.Equal(t, "1", b.String())
		require.Equal(t, scale.Normal, b.Scale())
	}
}

func TestRoundtrips(t *testing.T) {
	values := []string{
		"0",
		"1",
		"-7",
		"123.456",
		"1000000000000000000",
		"0x1f",
		"1e-30",
		"1234567890123456789012345",
	}

	ks := []interface{}{
		1,
		3,
		"0.003",
		-11,
		"1e20",
		Must(2, WithScale(scale.Normal)),
	}

	for i, value := range values {
		for j, k := range ks {
			t.Run(fmt.Sprintf("[%d/%d]%s/%v", i, j, value, k), func(t *testing.T) {
				v := Must(value)

				sum, err := v.Add(k)
				require.NoError(t, err)

				back, err := sum.Sub(k)
				require.NoError(t, err)

				ok, err := back.Eq(v)
				require.NoError(t, err)
				require.True(t, ok, "%s != %s", back, v)

				product, err := v.Mul(k)
				require.NoError(t, err)

				back, err = product.Div(k)
				require.NoError(t, err)

				ok, err = back.Eq(v)
				require.NoError(t, err)
				require.True(t, ok, "%s != %s", back, v)
			})
		}
	}
}

func TestRound(t *testing.T) {
	type TC struct {
		input  string
		places int32
		round  string
		output string
	}

	tcs := []TC{
		{input: "2.5", places: 0, round: "3", output: "3"},
		{input: "-2.5", places: 0, round: "-3", output: "-3"},
		{input: "2.4", places: 0, round: "2", output: "2"},
		{input: "1.005", places: 2, round: "1", output: "1.01"},
		{input: "1.004", places: 2, round: "1", output: "1"},
		{input: "1250", places: -2, round: "1250", output: "1300"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%d", i, tc.input, tc.places), func(t *testing.T) {
			v := Must(tc.input, WithScale(scale.Normal))

			r := v.Round()
			require.Equal(t, tc.round, r.String())
			require.Equal(t, scale.Normal, r.Scale())

			r = v.RoundPlaces(tc.places)
			require.Equal(t, tc.output, r.String())
			require.Equal(t, scale.Normal, r.Scale())

			require.Equal(t, Must(tc.input).String(), v.String())
		})
	}

	q, err := Must(100).Div(3)
	require.NoError(t, err)
	require.Equal(t, "33", q.Round().String())
}

func TestComparison(t *testing.T) {
	type TC struct {
		name string
		v    Value
		x    interface{}
		cmp  int
	}

	normal := WithScale(scale.Normal)

	tcs := []TC{
		{name: "greater", v: Must(255), x: 254, cmp: 1},
		{name: "equal", v: Must(255), x: 255, cmp: 0},
		{name: "equal hex", v: Must(255), x: "0xff", cmp: 0},
		{name: "less", v: Must(255), x: "255.0001", cmp: -1},
		{name: "equal across scales", v: Must(1, normal), x: Must("1000000000000000000"), cmp: 0},
		{name: "less across scales", v: Must("999999999999999999"), x: Must(1, normal), cmp: -1},
		{name: "greater across scales", v: Must("0.5", normal), x: Must(1), cmp: 1},
		{name: "negative", v: Must(-1), x: 0, cmp: -1},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			c, err := tc.v.Cmp(tc.x)
			require.NoError(t, err)
			require.Equal(t, tc.cmp, c)

			gt, err := tc.v.Gt(tc.x)
			require.NoError(t, err)
			require.Equal(t, tc.cmp > 0, gt)

			gte, err := tc.v.Gte(tc.x)
			require.NoError(t, err)
			require.Equal(t, tc.cmp >= 0, gte)

			lt, err := tc.v.Lt(tc.x)
			require.NoError(t, err)
			require.Equal(t, tc.cmp < 0, lt)

			lte, err := tc.v.Lte(tc.x)
			require.NoError(t, err)
			require.Equal(t, tc.cmp <= 0, lte)

			eq, err := tc.v.Eq(tc.x)
			require.NoError(t, err)
			require.Equal(t, tc.cmp == 0, eq)
		})
	}

	t.Run("error", func(t *testing.T) {
		ok, err := Must(1).Gt("x")
		require.True(t, ParseError.Has(err))
		require.False(t, ok)

		ok, err = Must(1).Lte("x")
		require.Error(t, err)
		require.False(t, ok)
	})
}

func TestSign(t *testing.T) {
	require.Equal(t, -1, Must("-0.1").Sign())
	require.Equal(t, 0, Must(0).Sign())
	require.Equal(t, 1, Must("0x1").Sign())

	require.Equal(t, "0.1", Must("-0.1").Abs().String())
	require.Equal(t, "-3", Must(3).Neg().String())

	require.True(t, Must("0.0").IsZero())
	require.True(t, Must("2.000").IsInteger())
	require.False(t, Must("2.001").IsInteger())
}

func BenchmarkDiv(b *testing.B) {
	v := Must(1, WithScale(scale.Normal))
	x := Must(3)

	for n := 0; n < b.N; n++ {
		_, err := v.Div(x)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
