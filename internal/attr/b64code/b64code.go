// Package b64code is the reversible text encoding used by the attribute
// wire protocol. Arbitrary bytes map onto a fixed alphabet that shares no
// characters with the protocol's field separator (':') or record
// separator ('\n'), so encoded names and values can never corrupt framing.
package b64code

import (
	"encoding/base64"
	"errors"
	"fmt"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// ErrMalformed reports input that is not valid output of Encode.
var ErrMalformed = errors.New("b64code: malformed encoding")

var inAlphabet [256]bool

func init() {
	for i := 0; i < len(charset); i++ {
		inAlphabet[charset[i]] = true
	}
}

// Encode maps src onto the codec alphabet. It never fails and emits no
// padding; four output characters carry each three input bytes.
func Encode(src []byte) string {
	return base64.RawStdEncoding.EncodeToString(src)
}

// Decode reverses Encode. It fails when s contains a character outside
// the codec alphabet or has a length no Encode call could have produced.
// The stdlib decoder silently skips CR and LF, so the alphabet is checked
// here byte by byte before decoding.
func Decode(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if !inAlphabet[s[i]] {
			return nil, fmt.Errorf("%w: byte 0x%02x at offset %d", ErrMalformed, s[i], i)
		}
	}
	if len(s)%4 == 1 {
		return nil, fmt.Errorf("%w: invalid length %d", ErrMalformed, len(s))
	}
	out, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return out, nil
}
