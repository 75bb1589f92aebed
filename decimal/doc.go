// Package decimal provides an immutable decimal number tagged with the unit
// it is expressed in.
//
// The relationship between the two scales is:
//
//  smallest = normal * 10 ^ decimals
//
// Where smallest is the magnitude counted in indivisible units, normal is the
// magnitude counted in the user facing denomination, and decimals is fixed
// per value by its Config. For example, with 18 decimals:
//
//  1.5 ether = 1500000000000000000 wei
//
// Magnitudes are arbitrary precision (github.com/shopspring/decimal). Adding,
// subtracting, multiplying and converting between scales is exact. Division
// keeps at least Config.Precision significant digits, rounding half away from
// zero when the quotient does not terminate.
//
// Operands
//
// Arithmetic and comparison accept the same inputs as New. A Scaled operand
// is converted to the receiver's scale before the magnitudes are combined. A
// bare operand (number, string, big integer, raw decimal) is taken to be at
// the receiver's scale already.
//
//  | Receiver      | Operand        | Add result            |
//  |---------------|----------------|-----------------------|
//  | 5 smallest    | 1 normal (18)  | 1000000000000000005   |
//  | 5 smallest    | 1              | 6                     |
//  | 5 normal      | 1 smallest     | 5.000000000000000001  |
//  |---------------|----------------|-----------------------|
//
// Text
//
// Base 10 output is never in exponential notation. Base 16 output is 0x
// prefixed and lowercase. Base 2 output has no prefix. Only integral values
// may be written in base 2 or 16.
//
//  | Value | Base 10 | Base 16 | Base 2  |
//  |-------|---------|---------|---------|
//  | 100   | 100     | 0x64    | 1100100 |
//  | -100  | -100    | -0x64   | -1100100|
//  | 0.5   | 0.5     | error   | error   |
//  |-------|---------|---------|---------|
package decimal
