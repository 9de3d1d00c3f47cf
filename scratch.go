package json

import "unicode/utf8"

// initScratchCap is the capacity a freshly-constructed scratch stack starts
// with, matching the original C implementation's 256-byte initial capacity.
const initScratchCap = 256

// scratch is a byte-granular LIFO arena used by the string sub-parser to
// assemble decoded UTF-8 bytes before they are flushed into a Value in one
// shot. Building a string this way keeps decoding O(n) with no allocation
// per escape sequence.
//
// A scratch is owned by exactly one parser for the duration of one parse.
type scratch struct {
	buf []byte
	top int
}

func newScratch() *scratch {
	return &scratch{buf: make([]byte, initScratchCap)}
}

// Top returns the current top offset.
func (s *scratch) Top() int { return s.top }

// SetTop resets the top to m, discarding any bytes pushed since. Used to
// unwind a partially-decoded string on parse failure. m must not exceed the
// current top.
func (s *scratch) SetTop(m int) { s.top = m }

// Push reserves n bytes at the current top and returns a slice the caller
// fills directly. The capacity grows geometrically (x1.5) whenever top+n
// would reach or pass it.
func (s *scratch) Push(n int) []byte {
	for s.top+n >= len(s.buf) {
		s.grow()
	}
	region := s.buf[s.top : s.top+n]
	s.top += n
	return region
}

// Pop returns the n bytes ending at the current top and lowers the top by n.
// The returned slice is a borrow into the scratch buffer, valid until the
// next Push.
func (s *scratch) Pop(n int) []byte {
	s.top -= n
	return s.buf[s.top : s.top+n]
}

// PushByte appends a single decoded byte, e.g. the control byte a simple
// escape (\n, \t, ...) maps to.
func (s *scratch) PushByte(c byte) {
	s.Push(1)[0] = c
}

// PushRune UTF-8-encodes r and appends the resulting bytes, used once a
// \uXXXX escape (or surrogate pair) has been resolved to a code point.
func (s *scratch) PushRune(r rune) {
	region := s.Push(utf8.UTFMax)
	n := utf8.EncodeRune(region, r)
	s.SetTop(s.top - (utf8.UTFMax - n))
}

func (s *scratch) grow() {
	newCap := len(s.buf) + len(s.buf)>>1
	if newCap == len(s.buf) {
		newCap = initScratchCap
	}
	next := make([]byte, newCap)
	copy(next, s.buf)
	s.buf = next
}
