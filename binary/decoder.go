package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/AlexxNica/rspirv/spirv"
)

// Cursor-level errors. The parser maps them onto its own error states; they
// are exported so consumers can test for them through errors.Is on a parse
// error's cause chain.
var (
	// ErrStreamExpected is returned when the stream runs out of words.
	ErrStreamExpected = errors.New("expected more words in the stream")

	// ErrLimitReached is returned when a read would cross the current
	// instruction's word window.
	ErrLimitReached = errors.New("word limit reached")

	// ErrInvalidEnumValue is returned when an enum operand word is not a
	// documented enumerant of its kind.
	ErrInvalidEnumValue = errors.New("invalid enum value")

	// ErrInvalidUTF8 is returned when a string literal is not valid
	// UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 in string literal")
)

const noLimit = -1

// Decoder is the word cursor over a module's byte buffer. It reads the
// buffer one little-endian 32-bit word at a time and can bound reads to a
// window of words, the mechanism the parser uses to fence operand decoding
// to one instruction.
//
// A Decoder is single-use and not safe for concurrent use.
type Decoder struct {
	words []spirv.Word
	off   int
	limit int
}

// NewDecoder creates a Decoder over a byte buffer. Trailing bytes that do
// not fill a whole word are unreachable by word-granular reads and are
// ignored.
func NewDecoder(data []byte) *Decoder {
	words := make([]spirv.Word, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return NewWordDecoder(words)
}

// NewWordDecoder creates a Decoder over an already word-assembled buffer.
func NewWordDecoder(words []spirv.Word) *Decoder {
	return &Decoder{words: words, limit: noLimit}
}

// Offset returns the current position in words. It is diagnostic only.
func (d *Decoder) Offset() int {
	return d.off
}

// Remaining returns the number of words left in the buffer, ignoring any
// window.
func (d *Decoder) Remaining() int {
	return len(d.words) - d.off
}

// Word returns the next word and advances the cursor.
func (d *Decoder) Word() (spirv.Word, error) {
	if d.limit == 0 {
		return 0, d.wrapError(ErrLimitReached)
	}
	if d.off >= len(d.words) {
		return 0, d.wrapError(ErrStreamExpected)
	}
	w := d.words[d.off]
	d.off++
	if d.limit != noLimit {
		d.limit--
	}
	return w, nil
}

// Words returns exactly n words or fails without consuming a partial
// result.
func (d *Decoder) Words(n int) ([]spirv.Word, error) {
	if d.limit != noLimit && n > d.limit {
		return nil, d.wrapError(ErrLimitReached)
	}
	if n > len(d.words)-d.off {
		return nil, d.wrapError(ErrStreamExpected)
	}
	out := make([]spirv.Word, n)
	copy(out, d.words[d.off:d.off+n])
	d.off += n
	if d.limit != noLimit {
		d.limit -= n
	}
	return out, nil
}

// ID reads the next word as an identifier reference.
func (d *Decoder) ID() (spirv.Word, error) {
	return d.Word()
}

// String reads words until a NUL terminator byte and returns the UTF-8
// string they pack. A string occupies at least one word; the words after
// the terminator byte's word are untouched.
func (d *Decoder) String() (string, error) {
	var buf []byte
	for {
		w, err := d.Word()
		if err != nil {
			return "", err
		}
		for shift := 0; shift < 32; shift += 8 {
			b := byte(w >> shift)
			if b == 0 {
				if !utf8.Valid(buf) {
					return "", d.wrapError(ErrInvalidUTF8)
				}
				return string(buf), nil
			}
			buf = append(buf, b)
		}
	}
}

// SetLimit bounds the decoder to at most n further words until ClearLimit.
func (d *Decoder) SetLimit(n int) {
	d.limit = n
}

// ClearLimit removes the current window.
func (d *Decoder) ClearLimit() {
	d.limit = noLimit
}

// LimitReached reports whether the current window has no words left. It is
// true when no window is set and the buffer is exhausted.
func (d *Decoder) LimitReached() bool {
	if d.limit == noLimit {
		return d.off >= len(d.words)
	}
	return d.limit == 0
}

func (d *Decoder) wrapError(err error) error {
	return fmt.Errorf("at word %d: %w", d.off, err)
}
