// Package vectors loads RFC 7253 OCB test vectors from a JSON fixture: a
// flat struct of hex fields decoded with github.com/pschlump/json,
// validated field by field, with errors returned rather than fatal-logged.
package vectors

import (
	_ "embed"
	"fmt"

	"github.com/pschlump/json"

	"github.com/cellblock-crypto/ocbmode/vectors/hexdata"
)

//go:embed testdata/rfc7253.json
var rfc7253JSON []byte

// LoadRFC7253 parses the bundled RFC 7253 appendix-A test vectors.
func LoadRFC7253() ([]Vector, error) {
	return ParseSet(rfc7253JSON)
}

// Vector is one RFC 7253 OCB test case.
type Vector struct {
	Mode       string          `json:"mode"`   // must be "ocb"
	Cipher     string          `json:"cipher"` // must be "aes"
	Key        hexdata.HexData `json:"key"`
	Nonce      hexdata.HexData `json:"nonce"`
	AAD        hexdata.HexData `json:"aad"`
	Plaintext  hexdata.HexData `json:"plaintext"`
	Ciphertext hexdata.HexData `json:"ciphertext"`
	TagBits    int             `json:"tagBits"`
}

// ErrBadVector reports structurally invalid vector data.
type ErrBadVector struct {
	Msg string
}

func (e *ErrBadVector) Error() string { return "ocb vectors: " + e.Msg }

// validate checks the fields of a decoded Vector for internal consistency.
func (v *Vector) validate() error {
	if v.Cipher != "aes" {
		return &ErrBadVector{Msg: fmt.Sprintf("unsupported cipher %q, only \"aes\" is supported", v.Cipher)}
	}
	if v.Mode != "ocb" {
		return &ErrBadVector{Msg: fmt.Sprintf("unsupported mode %q, only \"ocb\" is supported", v.Mode)}
	}
	if v.TagBits%8 != 0 {
		return &ErrBadVector{Msg: fmt.Sprintf("tagBits=%d is not a multiple of 8", v.TagBits)}
	}
	if len(v.Ciphertext) != len(v.Plaintext)+v.TagBits/8 {
		return &ErrBadVector{Msg: "ciphertext length does not match plaintext length plus tag length"}
	}
	return nil
}

// Parse decodes a single JSON-encoded vector.
func Parse(data []byte) (Vector, error) {
	var v Vector
	if err := json.Unmarshal(data, &v); err != nil {
		return Vector{}, err
	}
	if err := v.validate(); err != nil {
		return Vector{}, err
	}
	return v, nil
}

// ParseSet decodes a JSON array of vectors.
func ParseSet(data []byte) ([]Vector, error) {
	var vs []Vector
	if err := json.Unmarshal(data, &vs); err != nil {
		return nil, err
	}
	for i := range vs {
		if err := vs[i].validate(); err != nil {
			return nil, fmt.Errorf("vector %d: %s", i, err)
		}
	}
	return vs, nil
}

/* vim: set noai ts=4 sw=4: */
