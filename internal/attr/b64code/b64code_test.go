package b64code

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte(""),
		[]byte("a"),
		[]byte("ab"),
		[]byte("abc"),
		[]byte("whoopee"),
		[]byte(":"),
		[]byte("\n\n\n"),
		[]byte{0x00},
		[]byte{0x00, 0xff, 0x80, 0x0a, 0x3a},
	}
	for _, in := range inputs {
		enc := Encode(in)
		out, err := Decode(enc)
		if err != nil {
			t.Fatalf("decode %q: %v", enc, err)
		}
		if !bytes.Equal(out, in) {
			t.Fatalf("round-trip mismatch: in=%q out=%q", in, out)
		}
	}
}

func TestEncodeAvoidsDelimiters(t *testing.T) {
	var all [256]byte
	for i := range all {
		all[i] = byte(i)
	}
	enc := Encode(all[:])
	for i := 0; i < len(enc); i++ {
		if enc[i] == ':' || enc[i] == '\n' {
			t.Fatalf("delimiter byte %q in encoded output", enc[i])
		}
	}
}

func TestDecodeRejectsForeignBytes(t *testing.T) {
	for _, s := range []string{"ab\ncd", "ab cd", "a:b", "abc=", "ab\rcd", "ab\x00cd"} {
		if _, err := Decode(s); !errors.Is(err, ErrMalformed) {
			t.Fatalf("Decode(%q): expected ErrMalformed, got %v", s, err)
		}
	}
}

func TestDecodeRejectsImpossibleLength(t *testing.T) {
	if _, err := Decode("A"); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed for single-character input, got %v", err)
	}
	if _, err := Decode("AAAAA"); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed for 4n+1 input, got %v", err)
	}
}
