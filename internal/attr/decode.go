package attr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"mailwire/internal/attr/b64code"
)

// Expect names one attribute the caller requires at its list position.
type Expect struct {
	Name string
	Kind Kind
}

// ReadList reads one attribute list from r, consuming records up to and
// including the bare terminator record. Attributes come back in wire
// order; duplicate names are legal.
//
// With no expectations every attribute is returned as KindText. With
// expectations the list must match them positionally and exactly: a name
// or arity mismatch fails with ErrUnexpectedAttribute, and a KindNumber
// expectation whose value is not an unsigned decimal fails with
// ErrTypeMismatch. An expectation kind other than Number or Text is a
// caller bug and panics.
//
// End of stream before the terminator fails with ErrTruncated. The
// decoder never retries; a failed list leaves the connection unusable.
func ReadList(r *bufio.Reader, expects ...Expect) ([]Attribute, error) {
	var attrs []Attribute
	for {
		line, err := r.ReadString(recordSep)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrTruncated
			}
			return nil, err
		}
		line = line[:len(line)-1]
		if line == "" {
			break
		}
		sep := strings.IndexByte(line, fieldSep)
		if sep < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingSeparator, line)
		}
		name, err := b64code.Decode(line[:sep])
		if err != nil {
			return nil, fmt.Errorf("attribute name: %w", err)
		}
		value, err := b64code.Decode(line[sep+1:])
		if err != nil {
			return nil, fmt.Errorf("value of attribute %q: %w", string(name), err)
		}
		attrs = append(attrs, Attribute{name: string(name), kind: KindText, value: value})
	}
	if len(expects) == 0 {
		return attrs, nil
	}
	return matchExpected(attrs, expects)
}

func matchExpected(attrs []Attribute, expects []Expect) ([]Attribute, error) {
	if len(attrs) != len(expects) {
		return nil, fmt.Errorf("%w: got %d attributes, want %d",
			ErrUnexpectedAttribute, len(attrs), len(expects))
	}
	for i := range attrs {
		want := expects[i]
		if attrs[i].name != want.Name {
			return nil, fmt.Errorf("%w: position %d has name %q, want %q",
				ErrUnexpectedAttribute, i, attrs[i].name, want.Name)
		}
		switch want.Kind {
		case KindText:
		case KindNumber:
			if _, err := attrs[i].Number(); err != nil {
				return nil, err
			}
			attrs[i].kind = KindNumber
		default:
			panic(fmt.Sprintf("attr: bad expectation kind: %d", want.Kind))
		}
	}
	return attrs, nil
}
