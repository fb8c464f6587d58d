// Package decimal provides an arbitrary precision fixed point base 10
// number.
//
// The equation for a decimal number is:
//
//  number = significand / 10 ^ precision
//
// Where number is the fixed point number, significand is an unbounded signed
// integer, and precision is the non-negative count of fractional digits. For
// example:
//
//  1.23 = 123 / 10^2
//
// Precision
//
// Every value carries its own precision. Binary operations first rebase both
// operands to the larger of the two precisions and the result has that
// precision:
//
//  1.5 + 2.25 = 1.50 + 2.25 = 3.75
//
// Rebasing up is exact. Rebasing down, multiplication and division truncate
// toward zero; nothing is ever rounded:
//
//  1 / 3.00000 = 0.33333
//
// Errors
//
// Failures are reported with the error classes DivideByZero, Overflow and
// InvalidArgument (see github.com/zeebo/errs), so callers test the kind with
// e.g. DivideByZero.Has(err).
//
// Binary Encoding
//
// The binary form is laid out first by the significand (zigzag encoded with
// package integer), then the precision, and finally the last 2 bits are the
// scale size.
//
// The scale size is encoded as two bits:
//
//  | 6 | 7 | Available Precision |
//  |-------|---------------------|
//  | 0 . 0 | 0                   | 1 byte, remaining bits in this byte are zero.
//  | 0 . 1 | < 2^6               | 1 byte, remaining bits are the precision.
//  | 1 . 0 | < 2^14              | 2 bytes
//  | 1 . 1 | < 2^22              | 3 bytes
//  |-------|---------------------|
//
// Multi-byte precisions are big-endian with the lowest 6 bits in the last
// byte.
//
// Examples
//
// USD 0.0001 (2 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-------------------------------|
//  | 0 . 0 . 0 . 0 . 0 . 0 . 1 | 0 | Significand +1.
//  |-------------------------------|
//  | 0 . 0 . 0 . 1 . 0 . 0 | 0 . 1 | Precision 4.
//  |---------------|---------------|
//
// USD -20.47 (3 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-------------------------------|
//  | 0 . 0 . 0 . 0 . 1 . 1 . 1 . 1 | Significand -2047.
//  | 1 . 1 . 1 . 1 . 1 . 1 . 1 | 1 |
//  |-------------------------------|
//  | 0 . 0 . 0 . 0 . 1 . 0 | 0 . 1 | Precision 2.
//  |---------------|---------------|
//
// Streams
//
// Encoder and Decoder write and read sequences of decimals, each value in its
// own control block (see package control), configured by a Schema.
package decimal
