package ocb

import (
	"github.com/pschlump/godebug"
)

// Debug gates the package's optional diagnostic tracing (Init, Ktop cache
// hits/misses, resets) through godebug.Printf. It is off by
// default and never affects returned errors or computed values.
var Debug = false

func trace(format string, args ...interface{}) {
	if !Debug {
		return
	}
	godebug.Printf(format+" %s\n", append(args, godebug.LF())...)
}

// Mode selects the direction a Session runs in.
type Mode int

const (
	Encrypt Mode = iota
	Decrypt
)

type sessionState int

const (
	stateUninit sessionState = iota
	stateInitialized
	stateFinalized
)

// Session is one OCB state machine bound to a keyed pair of block
// permutations. A Session is not safe for concurrent use; independent
// Sessions may run concurrently as long as they do not share permutation
// instances.
type Session struct {
	hashPerm BlockPermutation
	mainPerm BlockPermutation

	ladder lLadder

	ktopInput []byte
	stretch   [24]byte

	mode   Mode
	tagLen int // bytes
	state  sessionState

	offsetMain0 [16]byte
	offsetMain  [16]byte
	offsetHash  [16]byte
	checksum    [16]byte
	sum         [16]byte

	hashBuf   [16]byte
	hashPos   int
	hashCount uint64

	mainBuf   []byte
	mainPos   int
	mainCount uint64

	macBlock []byte

	initialAAD []byte

	ktopRecomputes int // test/diagnostic instrumentation only
}

// NewSession binds a Session to a pair of already-keyed block-permutation
// instances. hashPerm is always used in the forward direction; mainPerm's
// direction is chosen per Init's mode. Both must report the same algorithm
// and a 16-byte block size.
func NewSession(hashPerm, mainPerm BlockPermutation) (*Session, error) {
	if hashPerm.BlockSize() != 16 || mainPerm.BlockSize() != 16 {
		return nil, ErrConfiguration
	}
	if hashPerm.Algorithm() != mainPerm.Algorithm() {
		return nil, ErrConfiguration
	}
	s := &Session{
		hashPerm: hashPerm,
		mainPerm: mainPerm,
		ladder:   newLLadder(hashPerm),
	}
	return s, nil
}

// Algorithm returns "<underlying>/OCB", e.g. "AES/OCB".
func (s *Session) Algorithm() string {
	return s.hashPerm.Algorithm() + "/OCB"
}

// Init establishes mode, tag length, and nonce for a new message, and
// optionally feeds initial associated data immediately, as if by FeedAAD.
// tagLenBits must be in [32, 128] and a multiple of 8 (the raw tag is one
// 16-byte block, so 128 bits of tag material is all that exists to
// truncate from); nonce must be 1..15 bytes.
func (s *Session) Init(mode Mode, nonce []byte, tagLenBits int, initialAAD []byte) error {
	if tagLenBits < 32 || tagLenBits > 128 || tagLenBits%8 != 0 {
		return ErrInvalidTagLength
	}
	if len(nonce) < 1 || len(nonce) > 15 {
		return ErrInvalidNonce
	}

	s.mode = mode
	s.tagLen = tagLenBits / 8
	if mode == Encrypt {
		s.mainBuf = make([]byte, 16)
	} else {
		s.mainBuf = make([]byte, 16+s.tagLen)
	}
	s.mainPos = 0
	s.mainCount = 0
	s.hashPos = 0
	s.hashCount = 0
	s.offsetHash = [16]byte{}
	s.checksum = [16]byte{}
	s.sum = [16]byte{}
	s.macBlock = nil

	if err := s.expandNonce(nonce); err != nil {
		return err
	}
	s.offsetMain = s.offsetMain0

	s.initialAAD = nil
	if len(initialAAD) > 0 {
		s.initialAAD = append([]byte(nil), initialAAD...)
	}

	s.state = stateInitialized
	trace("ocb: init mode=%d tagLenBits=%d nonceLen=%d", mode, tagLenBits, len(nonce))

	if len(s.initialAAD) > 0 {
		if err := s.FeedAAD(s.initialAAD); err != nil {
			return err
		}
	}
	return nil
}

// UpdateOutputSize returns the worst-case number of bytes FeedMessage will
// write for n additional input bytes.
func (s *Session) UpdateOutputSize(n int) int {
	total := s.mainPos + n
	if s.mode == Decrypt {
		total -= s.tagLen
		if total < 0 {
			total = 0
		}
	}
	return total - (total % 16)
}

// FinalOutputSize returns the number of bytes Finalize will write for n
// additional input bytes fed just before it.
func (s *Session) FinalOutputSize(n int) int {
	if s.mode == Encrypt {
		return s.mainPos + n + s.tagLen
	}
	v := s.mainPos + n - s.tagLen
	if v < 0 {
		v = 0
	}
	return v
}

// Tag returns the computed authentication tag. It fails with
// ErrNotFinalized until Finalize has computed the tag; a decrypt Finalize
// that returns ErrAuthenticationFailed has still computed it.
func (s *Session) Tag() ([]byte, error) {
	if s.macBlock == nil {
		return nil, ErrNotFinalized
	}
	out := make([]byte, len(s.macBlock))
	copy(out, s.macBlock)
	return out, nil
}

// Reset clears lane state (buffers, positions, counters, offsets, checksum,
// sum) and reinitializes for the same nonce and initial AAD, replaying the
// initial AAD into the hash lane. The L-ladder and L* / L$ (which depend
// only on the key) and the stretch and Ktop cache (which depend on the key
// and the unchanged nonce) are retained. If preserveMac is
// false the computed tag is also cleared.
func (s *Session) Reset(preserveMac bool) error {
	if s.state == stateUninit {
		return ErrNotInitialized
	}

	for i := range s.hashBuf {
		s.hashBuf[i] = 0
	}
	s.hashPos = 0
	s.hashCount = 0
	s.offsetHash = [16]byte{}

	for i := range s.mainBuf {
		s.mainBuf[i] = 0
	}
	s.mainPos = 0
	s.mainCount = 0
	s.offsetMain = s.offsetMain0

	s.sum = [16]byte{}
	s.checksum = [16]byte{}

	if !preserveMac {
		s.macBlock = nil
	}

	s.state = stateInitialized
	trace("ocb: reset preserveMac=%v", preserveMac)

	if len(s.initialAAD) > 0 {
		if err := s.FeedAAD(s.initialAAD); err != nil {
			return err
		}
	}
	return nil
}

// Close zeroizes all sensitive session state. The session must not be used
// afterward except via a fresh NewSession/Init.
func (s *Session) Close() {
	for i := range s.offsetMain0 {
		s.offsetMain0[i] = 0
	}
	for i := range s.offsetMain {
		s.offsetMain[i] = 0
	}
	for i := range s.offsetHash {
		s.offsetHash[i] = 0
	}
	for i := range s.checksum {
		s.checksum[i] = 0
	}
	for i := range s.sum {
		s.sum[i] = 0
	}
	for i := range s.hashBuf {
		s.hashBuf[i] = 0
	}
	for i := range s.mainBuf {
		s.mainBuf[i] = 0
	}
	for i := range s.stretch {
		s.stretch[i] = 0
	}
	for i := range s.ktopInput {
		s.ktopInput[i] = 0
	}
	for i := range s.macBlock {
		s.macBlock[i] = 0
	}
	for i := range s.initialAAD {
		s.initialAAD[i] = 0
	}
	s.ladder.zero()
	s.state = stateUninit
}

/* vim: set noai ts=4 sw=4: */
