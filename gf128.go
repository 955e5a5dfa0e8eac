package ocb

import "math/bits"

// gfDouble multiplies a 16-byte big-endian element of GF(2^128) by x, modulo
// the OCB reduction polynomial x^128 + x^7 + x^2 + x + 1 (RFC 7253 sec. 4).
// Pure function: the result depends only on in.
func gfDouble(in [16]byte) (out [16]byte) {
	carry := in[0] >> 7
	for i := 0; i < 15; i++ {
		out[i] = (in[i] << 1) | (in[i+1] >> 7)
	}
	out[15] = in[15] << 1
	if carry == 1 {
		out[15] ^= 0x87
	}
	return
}

// ntz returns the number of trailing zero bits in n. The OCB block counter
// is never zero at the point this is called, so the bits.TrailingZeros64(0)
// == 64 case is unreachable in practice but harmless.
func ntz(n uint64) int {
	return bits.TrailingZeros64(n)
}

// lLadder lazily materializes L*, L$, and the L_0, L_1, ... sequence used to
// index the per-block offset update. It depends only on the hash-direction
// permutation and is never reset along with the rest of a session's state.
type lLadder struct {
	lstar   [16]byte
	ldollar [16]byte
	l       [][16]byte
}

func newLLadder(hashPerm BlockPermutation) lLadder {
	var zero, lstar [16]byte
	hashPerm.Encrypt(lstar[:], zero[:])
	return lLadder{lstar: lstar, ldollar: gfDouble(lstar)}
}

func (ld *lLadder) Lstar() [16]byte   { return ld.lstar }
func (ld *lLadder) Ldollar() [16]byte { return ld.ldollar }

// Lsub returns L_n, extending the backing slice by repeated doubling as
// needed. L_0 = double(L$); L_i = double(L_{i-1}).
func (ld *lLadder) Lsub(n int) [16]byte {
	for len(ld.l) <= n {
		prev := ld.ldollar
		if len(ld.l) > 0 {
			prev = ld.l[len(ld.l)-1]
		}
		ld.l = append(ld.l, gfDouble(prev))
	}
	return ld.l[n]
}

// zero overwrites all ladder-derived secrets. L* and L$ are derived solely
// from the key via the hash permutation, so dropping them here requires the
// session to be re-keyed, not merely reset.
func (ld *lLadder) zero() {
	for i := range ld.lstar {
		ld.lstar[i] = 0
	}
	for i := range ld.ldollar {
		ld.ldollar[i] = 0
	}
	for i := range ld.l {
		for j := range ld.l[i] {
			ld.l[i][j] = 0
		}
	}
	ld.l = nil
}

func xorInto(dst *[16]byte, b [16]byte) {
	for i := 0; i < 16; i++ {
		dst[i] ^= b[i]
	}
}

/* vim: set noai ts=4 sw=4: */
