package ocb

// FeedAAD absorbs associated-data bytes into the running hash accumulator.
// It may be called any number of times, interleaved freely with
// FeedMessage; OCB's hash and crypt lanes are independent, so this core
// does not enforce "all AAD before any message bytes" (see Reset/Init for
// how initial AAD is replayed).
func (s *Session) FeedAAD(data []byte) error {
	if s.state != stateInitialized {
		return ErrNotInitialized
	}
	for _, b := range data {
		s.hashBuf[s.hashPos] = b
		s.hashPos++
		if s.hashPos == 16 {
			s.processFullHashBlock()
		}
	}
	return nil
}

func (s *Session) processFullHashBlock() {
	s.hashCount++
	l := s.ladder.Lsub(ntz(s.hashCount))
	xorInto(&s.offsetHash, l)
	xorInto(&s.hashBuf, s.offsetHash)
	var out [16]byte
	s.hashPerm.Encrypt(out[:], s.hashBuf[:])
	s.hashBuf = out
	xorInto(&s.sum, s.hashBuf)
	s.hashPos = 0
}

// finalizeHash processes the final partial AAD block, if any, using the L*
// (not ntz-indexed) offset update that marks a partial block.
func (s *Session) finalizeHash() {
	if s.hashPos == 0 {
		return
	}
	s.hashBuf[s.hashPos] = 0x80
	for i := s.hashPos + 1; i < 16; i++ {
		s.hashBuf[i] = 0
	}
	xorInto(&s.offsetHash, s.ladder.Lstar())
	xorInto(&s.hashBuf, s.offsetHash)
	var out [16]byte
	s.hashPerm.Encrypt(out[:], s.hashBuf[:])
	s.hashBuf = out
	xorInto(&s.sum, s.hashBuf)
}

/* vim: set noai ts=4 sw=4: */
