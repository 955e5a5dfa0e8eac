package ocb

import "crypto/subtle"

// Finalize processes any remaining buffered AAD and message bytes, writes
// the last partial output block (if any) and, on encrypt, the
// authentication tag to dst. On decrypt, it instead verifies the tag in
// constant time: on mismatch it returns ErrAuthenticationFailed, and the
// caller MUST discard any bytes already written to dst by this or prior
// FeedMessage calls, since OCB releases completed blocks as they are
// produced rather than buffering all plaintext until verification.
//
// dst must have room for at least FinalOutputSize(0) bytes if called with
// no further input; callers that still have unfed bytes should call
// FeedMessage first.
func (s *Session) Finalize(dst []byte) (int, error) {
	if s.state != stateInitialized {
		return 0, ErrNotInitialized
	}

	if s.mode == Decrypt && s.mainPos < s.tagLen {
		return 0, ErrDataTooShort
	}

	need := s.FinalOutputSize(0)
	if len(dst) < need {
		return 0, ErrBufferTooSmall
	}

	var tag []byte
	if s.mode == Decrypt {
		tag = append([]byte(nil), s.mainBuf[s.mainPos-s.tagLen:s.mainPos]...)
		s.mainPos -= s.tagLen
	}

	s.finalizeHash()

	written := 0
	if s.mainPos > 0 {
		if s.mode == Encrypt {
			s.mainBuf[s.mainPos] = 0x80
			for i := s.mainPos + 1; i < 16; i++ {
				s.mainBuf[i] = 0
			}
			xorInto(&s.checksum, toBlock(s.mainBuf[0:16]))
		}

		xorInto(&s.offsetMain, s.ladder.Lstar())
		var pad [16]byte
		s.hashPerm.Encrypt(pad[:], s.offsetMain[:])
		xorInto(&pad, toBlock(s.mainBuf[0:16]))
		copy(s.mainBuf[0:16], pad[:])

		written = copy(dst, s.mainBuf[:s.mainPos])

		if s.mode == Decrypt {
			s.mainBuf[s.mainPos] = 0x80
			for i := s.mainPos + 1; i < 16; i++ {
				s.mainBuf[i] = 0
			}
			xorInto(&s.checksum, toBlock(s.mainBuf[0:16]))
		}
	}

	xorInto(&s.checksum, s.offsetMain)
	xorInto(&s.checksum, s.ladder.Ldollar())
	var rawTag [16]byte
	s.hashPerm.Encrypt(rawTag[:], s.checksum[:])
	xorInto(&rawTag, s.sum)

	s.macBlock = append([]byte(nil), rawTag[:s.tagLen]...)

	var resultErr error
	if s.mode == Encrypt {
		written += copy(dst[written:], s.macBlock)
	} else {
		if subtle.ConstantTimeCompare(s.macBlock, tag) != 1 {
			resultErr = ErrAuthenticationFailed
		}
	}

	if err := s.Reset(true); err != nil && resultErr == nil {
		resultErr = err
	}
	return written, resultErr
}

/* vim: set noai ts=4 sw=4: */
