package ocb

// FeedMessage encrypts (or decrypts) src, writing completed blocks to dst
// as they become available, and returns the number of bytes written. dst
// must have room for at least UpdateOutputSize(len(src)) bytes.
//
// On decrypt, the buffer always retains the last tagLen bytes unprocessed
// as the candidate authentication tag; Finalize checks them against the
// computed tag.
func (s *Session) FeedMessage(dst, src []byte) (int, error) {
	if s.state != stateInitialized {
		return 0, ErrNotInitialized
	}
	need := s.UpdateOutputSize(len(src))
	if len(dst) < need {
		return 0, ErrBufferTooSmall
	}

	written := 0
	for _, b := range src {
		s.mainBuf[s.mainPos] = b
		s.mainPos++
		if s.mainPos == len(s.mainBuf) {
			outBlock := s.processFullMainBlock()
			written += copy(dst[written:], outBlock[:])
		}
	}
	return written, nil
}

// processFullMainBlock runs one full-block OCB step: offset update,
// permute (forward for encrypt, inverse for decrypt), and checksum
// accumulation. It returns the completed output block (ciphertext on
// encrypt, plaintext on decrypt). On decrypt this must happen before the
// retained tagLen tail bytes are shifted down into mainBuf[0:tagLen], since
// that shift overwrites the same bytes the output block occupies.
func (s *Session) processFullMainBlock() (outBlock [16]byte) {
	s.mainCount++

	if s.mode == Encrypt {
		xorInto(&s.checksum, toBlock(s.mainBuf[0:16]))
		s.mainPos = 0
	}

	l := s.ladder.Lsub(ntz(s.mainCount))
	xorInto(&s.offsetMain, l)

	block := toBlock(s.mainBuf[0:16])
	xorInto(&block, s.offsetMain)

	if s.mode == Encrypt {
		s.mainPerm.Encrypt(outBlock[:], block[:])
	} else {
		s.mainPerm.Decrypt(outBlock[:], block[:])
	}
	xorInto(&outBlock, s.offsetMain)

	if s.mode == Decrypt {
		xorInto(&s.checksum, outBlock)
		copy(s.mainBuf[0:s.tagLen], s.mainBuf[16:16+s.tagLen])
		s.mainPos = s.tagLen
	}

	return outBlock
}

func toBlock(b []byte) (block [16]byte) {
	copy(block[:], b)
	return
}

/* vim: set noai ts=4 sw=4: */
