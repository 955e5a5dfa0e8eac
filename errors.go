// Package ocb implements the core of RFC 7253 Offset Codebook Mode (OCB), an
// authenticated-encryption-with-associated-data construction built on top of
// an arbitrary 128-bit block-cipher permutation.
//
// The block cipher itself, key provisioning, nonce generation, and any
// packet framing around the ciphertext are the caller's concern; see
// BlockPermutation for the contract this package expects from its cipher.
package ocb

import "errors"

var ErrConfiguration = errors.New("ocb: mismatched block size or algorithm between hash and main permutations")
var ErrInvalidTagLength = errors.New("ocb: tag length must be a multiple of 8 bits between 32 and 128")
var ErrInvalidNonce = errors.New("ocb: nonce must be between 1 and 15 bytes")
var ErrBufferTooSmall = errors.New("ocb: output buffer shorter than the promised size")
var ErrDataTooShort = errors.New("ocb: fewer buffered bytes than the tag length at finalize")
var ErrAuthenticationFailed = errors.New("ocb: authentication tag mismatch")
var ErrNotFinalized = errors.New("ocb: tag not yet computed, finalize has not been called")
var ErrNotInitialized = errors.New("ocb: session has not been initialized")

/* vim: set noai ts=4 sw=4: */
