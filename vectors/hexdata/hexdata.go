// Package hexdata extends the JSON marshal/unmarshal interface to support
// hex-encoded byte fields, the way base64data does for Base64.
package hexdata

import "encoding/hex"

// HexData is a byte slice that marshals to/from a hex string in JSON,
// instead of Go's default Base64 encoding for []byte.
type HexData []byte

// MarshalText implements encoding.TextMarshaler.
func (h HexData) MarshalText() ([]byte, error) {
	text := make([]byte, hex.EncodedLen(len(h)))
	hex.Encode(text, h)
	return text, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HexData) UnmarshalText(text []byte) error {
	if n := hex.DecodedLen(len(text)); cap(*h) < n {
		*h = make([]byte, n)
	} else {
		*h = (*h)[:n]
	}
	n, err := hex.Decode(*h, text)
	if err != nil {
		return err
	}
	*h = (*h)[:n]
	return nil
}

// IsEmpty reports whether h has zero length or is entirely zero bytes.
func (h HexData) IsEmpty() bool {
	if len(h) == 0 {
		return true
	}
	for _, b := range h {
		if b != 0 {
			return false
		}
	}
	return true
}

/* vim: set noai ts=4 sw=4: */
