package ocb

// expandNonce derives offsetMain0 from a nonce and the session's tag
// length, following the Ktop/stretch/bottom procedure of RFC 7253 sec.
// 4.2. Ktop is cached: nonces whose formatted top-122 bits match the last
// one processed reuse the cached stretch instead of re-invoking the hash
// permutation.
func (s *Session) expandNonce(nonce []byte) error {
	if len(nonce) < 1 || len(nonce) >= 16 {
		return ErrInvalidNonce
	}

	var formatted [16]byte
	copy(formatted[16-len(nonce):], nonce)

	tagLenBits := s.tagLen * 8
	formatted[0] = byte(((tagLenBits % 128) << 1) & 0xFF)
	formatted[15-len(nonce)] |= 0x01

	bottom := formatted[15] & 0x3F
	formatted[15] &= 0xC0

	if s.ktopInput != nil && bytesEqual(s.ktopInput, formatted[:]) {
		trace("ocb: ktop cache hit")
	} else {
		var ktop [16]byte
		s.hashPerm.Encrypt(ktop[:], formatted[:])
		copy(s.stretch[0:16], ktop[:])
		for i := 0; i < 8; i++ {
			s.stretch[16+i] = ktop[i] ^ ktop[i+1]
		}
		s.ktopInput = append(s.ktopInput[:0], formatted[:]...)
		s.ktopRecomputes++
		trace("ocb: ktop recomputed, total=%d", s.ktopRecomputes)
	}

	byteShift := int(bottom / 8)
	bitShift := int(bottom % 8)
	if bitShift == 0 {
		copy(s.offsetMain0[:], s.stretch[byteShift:byteShift+16])
	} else {
		for i := 0; i < 16; i++ {
			s.offsetMain0[i] = ((s.stretch[byteShift+i] << bitShift) | (s.stretch[byteShift+i+1] >> (8 - bitShift)))
		}
	}
	return nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

/* vim: set noai ts=4 sw=4: */
