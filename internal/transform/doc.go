// Package transform decodes the composite category field and removes duplicate messages.
//
// The category field holds tokens joined by ";", each of the form
// "<name>-<value>". Names are taken from the first row; every other row must
// carry the same names in the same order. Values are coerced to numbers column
// by column (integer when possible, real otherwise).
//
// Decoding, column replacement and positional alignment happen in one pass
// over the rows, so decoded values can never drift away from their base row.
//
// Clean is a pure function: it never mutates its input table.
package transform
