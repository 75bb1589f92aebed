// Package integer adapts arbitrary size integers into and out of text.
//
// Inputs come from several big integer representations: base prefixed
// literals ("0x64", "-0b101", "0o17"), math/big integers, fixed width 256 bit
// integers (holiman/uint256) and JSON-RPC quantities (go-ethereum hexutil).
// All of them are normalized to a *big.Int that the caller owns.
package integer

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/zeebo/errs"
)

// Error is the class of all integer errors.
var Error = errs.Class("integer")

// Hexer is any integer that can report itself as a 0x prefixed hexadecimal
// string.
type Hexer interface {
	Hex() string
}

var prefixes = map[string]int{
	"0x": 16,
	"0b": 2,
	"0o": 8,
}

// split separates the sign from the prefix and digits.
func split(s string) (negative bool, base int, digits string, ok bool) {
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	if len(s) < 2 {
		return false, 0, "", false
	}

	base, ok = prefixes[strings.ToLower(s[:2])]
	if !ok {
		return false, 0, "", false
	}

	return negative, base, s[2:], true
}

// HasPrefix returns true if s is a (possibly signed) base prefixed literal.
func HasPrefix(s string) bool {
	_, _, _, ok := split(s)

	return ok
}

// Parse reads a base prefixed integer literal. Hexadecimal (0x), binary (0b)
// and octal (0o) are accepted with an optional leading sign.
func Parse(s string) (i *big.Int, err error) {
	negative, base, digits, ok := split(s)
	if !ok {
		return nil, Error.New("missing base prefix: %q", s)
	}

	// Note: big.Int accepts a sign and (for inferred bases) underscores in
	// the digits. Neither is valid after the prefix.
	if digits == "" || strings.ContainsAny(digits, "+-_") {
		return nil, Error.New("invalid digits: %q", s)
	}

	i, ok = new(big.Int).SetString(digits, base)
	if !ok {
		return nil, Error.New("invalid digits: %q", s)
	}

	if negative {
		i.Neg(i)
	}

	return i, nil
}

// FromHexer parses the hexadecimal form of h.
func FromHexer(h Hexer) (i *big.Int, err error) {
	return Parse(h.Hex())
}

// FromUint256 returns a copy of u as a big.Int.
func FromUint256(u *uint256.Int) *big.Int {
	return u.ToBig()
}

// FromHexutil returns a copy of b as a big.Int.
func FromHexutil(b *hexutil.Big) *big.Int {
	return new(big.Int).Set(b.ToInt())
}

// Text formats i in base 2, 10 or 16.
//
// Base 16 is 0x prefixed and lowercase ("-0x64" for -100). Base 2 has no
// prefix ("-1100100" for -100).
func Text(i *big.Int, base int) (s string, err error) {
	switch base {
	case 2, 10:
		return i.Text(base), nil
	case 16:
		abs := new(big.Int).Abs(i)
		if i.Sign() < 0 {
			return "-0x" + abs.Text(16), nil
		}

		return "0x" + abs.Text(16), nil
	}

	return "", Error.New("unsupported base: %d", base)
}
