package binary

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/AlexxNica/rspirv/spirv"
)

func wordBytes(words ...spirv.Word) []byte {
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	return buf
}

// strWords packs a NUL-terminated UTF-8 string into words, low byte first.
func strWords(s string) []spirv.Word {
	b := append([]byte(s), 0)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	words := make([]spirv.Word, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return words
}

func TestDecoderWord(t *testing.T) {
	d := NewWordDecoder([]spirv.Word{0x11, 0x22, 0x33})

	for i, want := range []spirv.Word{0x11, 0x22, 0x33} {
		if d.Offset() != i {
			t.Errorf("offset before read %d: got %d, want %d", i, d.Offset(), i)
		}
		w, err := d.Word()
		if err != nil {
			t.Fatalf("Word %d: %v", i, err)
		}
		if w != want {
			t.Errorf("Word %d: got 0x%x, want 0x%x", i, w, want)
		}
	}

	_, err := d.Word()
	if !errors.Is(err, ErrStreamExpected) {
		t.Errorf("expected ErrStreamExpected, got %v", err)
	}
}

func TestDecoderFromBytes(t *testing.T) {
	d := NewDecoder(wordBytes(0xdeadbeef, 0x07230203))
	w, err := d.Word()
	if err != nil {
		t.Fatalf("Word: %v", err)
	}
	if w != 0xdeadbeef {
		t.Errorf("Word: got 0x%x, want 0xdeadbeef", w)
	}
}

func TestDecoderIgnoresPartialTailWord(t *testing.T) {
	data := append(wordBytes(0x11), 0xaa, 0xbb)
	d := NewDecoder(data)
	if got := d.Remaining(); got != 1 {
		t.Errorf("Remaining: got %d, want 1", got)
	}
}

func TestDecoderWords(t *testing.T) {
	d := NewWordDecoder([]spirv.Word{1, 2, 3, 4})

	got, err := d.Words(3)
	if err != nil {
		t.Fatalf("Words: %v", err)
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("Words: got %v, want [1 2 3]", got)
	}
	if d.Offset() != 3 {
		t.Errorf("offset: got %d, want 3", d.Offset())
	}

	// All or nothing: a failed read must not consume words.
	_, err = d.Words(2)
	if !errors.Is(err, ErrStreamExpected) {
		t.Errorf("expected ErrStreamExpected, got %v", err)
	}
	if d.Offset() != 3 {
		t.Errorf("offset after failed read: got %d, want 3", d.Offset())
	}
}

func TestDecoderLimit(t *testing.T) {
	d := NewWordDecoder([]spirv.Word{1, 2, 3, 4})

	d.SetLimit(2)
	if d.LimitReached() {
		t.Error("LimitReached before any read")
	}
	if _, err := d.Word(); err != nil {
		t.Fatalf("Word: %v", err)
	}
	if _, err := d.Word(); err != nil {
		t.Fatalf("Word: %v", err)
	}
	if !d.LimitReached() {
		t.Error("LimitReached after window drained")
	}

	_, err := d.Word()
	if !errors.Is(err, ErrLimitReached) {
		t.Errorf("expected ErrLimitReached, got %v", err)
	}

	d.ClearLimit()
	if _, err := d.Word(); err != nil {
		t.Fatalf("Word after ClearLimit: %v", err)
	}
}

func TestDecoderLimitBlocksWords(t *testing.T) {
	d := NewWordDecoder([]spirv.Word{1, 2, 3, 4})
	d.SetLimit(1)

	_, err := d.Words(2)
	if !errors.Is(err, ErrLimitReached) {
		t.Errorf("expected ErrLimitReached, got %v", err)
	}
	if d.Offset() != 0 {
		t.Errorf("offset after failed read: got %d, want 0", d.Offset())
	}
}

func TestDecoderLimitReachedNoWindow(t *testing.T) {
	d := NewWordDecoder([]spirv.Word{1})
	if d.LimitReached() {
		t.Error("LimitReached with words remaining and no window")
	}
	if _, err := d.Word(); err != nil {
		t.Fatalf("Word: %v", err)
	}
	if !d.LimitReached() {
		t.Error("LimitReached at end of buffer with no window")
	}
}

func TestDecoderString(t *testing.T) {
	tests := []struct {
		name  string
		words []spirv.Word
		want  string
		wide  int // words the string occupies
	}{
		{"empty", strWords(""), "", 1},
		{"short", strWords("ab"), "ab", 1},
		{"exactly one word", strWords("abc"), "abc", 1},
		{"terminator in next word", strWords("main"), "main", 2},
		{"two words", strWords("GLSL.std.450"), "GLSL.std.450", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewWordDecoder(append(tt.words, 0x1234))
			got, err := d.String()
			if err != nil {
				t.Fatalf("String: %v", err)
			}
			if got != tt.want {
				t.Errorf("String: got %q, want %q", got, tt.want)
			}
			if d.Offset() != tt.wide {
				t.Errorf("offset: got %d, want %d", d.Offset(), tt.wide)
			}
		})
	}
}

func TestDecoderStringUnterminated(t *testing.T) {
	d := NewWordDecoder([]spirv.Word{0x61616161})
	_, err := d.String()
	if !errors.Is(err, ErrStreamExpected) {
		t.Errorf("expected ErrStreamExpected, got %v", err)
	}
}

func TestDecoderStringCrossesLimit(t *testing.T) {
	d := NewWordDecoder(strWords("main"))
	d.SetLimit(1)
	_, err := d.String()
	if !errors.Is(err, ErrLimitReached) {
		t.Errorf("expected ErrLimitReached, got %v", err)
	}
}

func TestDecoderStringInvalidUTF8(t *testing.T) {
	d := NewWordDecoder([]spirv.Word{0x0000ff80})
	_, err := d.String()
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
}
