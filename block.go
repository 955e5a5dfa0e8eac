package ocb

import (
	"crypto/aes"

	"golang.org/x/crypto/twofish"
)

// BlockPermutation is a keyed 128-bit block-cipher permutation. A session
// holds two independent instances: one always used in the forward
// direction (hash-direction, for absorbing associated data and for the
// final tag) and one whose direction depends on whether the session is
// encrypting or decrypting (main-direction, for the message blocks).
//
// Implementations must be pure keyed permutations over exactly 16-byte
// blocks; OCB does not support any other block size.
type BlockPermutation interface {
	// Algorithm identifies the underlying cipher, e.g. "AES" or "Twofish".
	// Two permutations passed to NewSession must report the same
	// algorithm and the same BlockSize, or construction fails.
	Algorithm() string
	BlockSize() int
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
}

// aesPermutation adapts crypto/aes.Block to BlockPermutation.
type aesPermutation struct {
	blk cipherBlock
}

// cipherBlock is the subset of crypto/cipher.Block this package needs; kept
// as a local interface so block.go does not have to import crypto/cipher
// just to name the type.
type cipherBlock interface {
	BlockSize() int
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
}

// NewAESPermutation keys AES (128, 192, or 256-bit, per the key length) for
// use as an OCB BlockPermutation.
func NewAESPermutation(key []byte) (BlockPermutation, error) {
	blk, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &aesPermutation{blk: blk}, nil
}

func (a *aesPermutation) Algorithm() string       { return "AES" }
func (a *aesPermutation) BlockSize() int          { return a.blk.BlockSize() }
func (a *aesPermutation) Encrypt(dst, src []byte) { a.blk.Encrypt(dst, src) }
func (a *aesPermutation) Decrypt(dst, src []byte) { a.blk.Decrypt(dst, src) }

// twofishPermutation adapts golang.org/x/crypto/twofish to BlockPermutation,
// demonstrating that the OCB core is not tied to AES: Twofish is also a
// 16-byte-block cipher, so "<underlying>/OCB" works out to "Twofish/OCB"
// with no changes to the core state machine.
type twofishPermutation struct {
	blk cipherBlock
}

// NewTwofishPermutation keys Twofish (128, 192, or 256-bit) for use as an
// OCB BlockPermutation.
func NewTwofishPermutation(key []byte) (BlockPermutation, error) {
	blk, err := twofish.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &twofishPermutation{blk: blk}, nil
}

func (t *twofishPermutation) Algorithm() string       { return "Twofish" }
func (t *twofishPermutation) BlockSize() int          { return t.blk.BlockSize() }
func (t *twofishPermutation) Encrypt(dst, src []byte) { t.blk.Encrypt(dst, src) }
func (t *twofishPermutation) Decrypt(dst, src []byte) { t.blk.Decrypt(dst, src) }

/* vim: set noai ts=4 sw=4: */
