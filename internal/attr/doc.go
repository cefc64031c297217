// Package attr owns the attribute wire protocol spoken between local
// daemons: an ordered list of typed (name, value) attributes carried as
// delimiter-safe text over a byte stream.
//
// Ownership boundary:
// - attribute model and typed constructors
// - list encoding (WriteList) and decoding (ReadList)
// - codec alphabet rules (subpackage b64code)
package attr
