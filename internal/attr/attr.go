package attr

import (
	"fmt"
	"strconv"
)

// Kind tags the value carried by one attribute.
type Kind uint8

const (
	// KindNumber carries an unsigned integer as its canonical decimal text.
	KindNumber Kind = 1
	// KindText carries an arbitrary byte sequence.
	KindText Kind = 2
	// KindMap exists only on the encode side; the decoder always sees the
	// flattened Text attributes a map produces.
	KindMap Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Attribute is one typed (name, value) pair. Build attributes with the
// Number, Text, Bytes and Map constructors; the zero value is invalid and
// makes WriteList panic.
type Attribute struct {
	name    string
	kind    Kind
	value   []byte
	entries map[string]string
}

// Number builds an attribute carrying v as canonical unsigned decimal text.
func Number(name string, v uint64) Attribute {
	return Attribute{name: name, kind: KindNumber, value: []byte(strconv.FormatUint(v, 10))}
}

// Text builds a string-valued attribute.
func Text(name, v string) Attribute {
	return Attribute{name: name, kind: KindText, value: []byte(v)}
}

// Bytes builds a Text attribute from raw bytes. The slice is copied.
func Bytes(name string, v []byte) Attribute {
	buf := make([]byte, len(v))
	copy(buf, v)
	return Attribute{name: name, kind: KindText, value: buf}
}

// Map builds an attribute that flattens to one Text attribute per entry
// at encode time, names equal to the map keys. Entries reach the wire in
// map iteration order; callers must not rely on any particular order.
func Map(m map[string]string) Attribute {
	return Attribute{kind: KindMap, entries: m}
}

func (a Attribute) Name() string { return a.name }

func (a Attribute) Kind() Kind { return a.kind }

// Bytes returns a copy of the raw value bytes. For a Number attribute
// this is its decimal text form.
func (a Attribute) Bytes() []byte {
	buf := make([]byte, len(a.value))
	copy(buf, a.value)
	return buf
}

// Text returns the value bytes as a string.
func (a Attribute) Text() string { return string(a.value) }

// Number parses the value as an unsigned decimal.
func (a Attribute) Number() (uint64, error) {
	v, err := strconv.ParseUint(string(a.value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an unsigned decimal", ErrTypeMismatch, string(a.value))
	}
	return v, nil
}
