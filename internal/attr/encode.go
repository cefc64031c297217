package attr

import (
	"fmt"
	"io"

	"mailwire/internal/attr/b64code"
)

// Flags adjusts WriteList framing.
type Flags uint32

const (
	FlagNone Flags = 0

	// FlagMore suppresses the list terminator so a later WriteList call
	// on the same stream extends the same logical list.
	FlagMore Flags = 1 << 0

	flagAll = FlagMore
)

const (
	fieldSep  = ':'
	recordSep = '\n'
)

// WriteList encodes attrs onto w in list order, one record per attribute
// and map entry. Unless FlagMore is set, a bare record separator closes
// the list. The stream is not flushed; connection lifecycle stays with
// the caller. A write failure mid-list leaves the stream unusable for
// further attribute traffic.
//
// Undefined flag bits and attributes not built by this package's
// constructors are caller bugs and panic.
func WriteList(w io.Writer, flags Flags, attrs ...Attribute) error {
	if flags&^flagAll != 0 {
		panic(fmt.Sprintf("attr: bad flags: 0x%x", uint32(flags)))
	}
	buf := make([]byte, 0, 256)
	for _, a := range attrs {
		switch a.kind {
		case KindNumber, KindText:
			buf = appendRecord(buf, a.name, a.value)
		case KindMap:
			for k, v := range a.entries {
				buf = appendRecord(buf, k, []byte(v))
			}
		default:
			panic(fmt.Sprintf("attr: unknown attribute kind: %d", a.kind))
		}
	}
	if flags&FlagMore == 0 {
		buf = append(buf, recordSep)
	}
	_, err := w.Write(buf)
	return err
}

func appendRecord(buf []byte, name string, value []byte) []byte {
	buf = append(buf, b64code.Encode([]byte(name))...)
	buf = append(buf, fieldSep)
	buf = append(buf, b64code.Encode(value)...)
	buf = append(buf, recordSep)
	return buf
}
