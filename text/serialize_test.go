package text

import (
	"testing"

	"github.com/dshills/textcore/serial"
)

func roundTrip(t *testing.T, txt *Text) *Text {
	t.Helper()

	w := serial.NewWriter(int(txt.Size())*2 + 4)
	txt.Serialize(w)

	r := serial.NewReader(w.Bytes())
	restored := NewTextFromSerializer(r)
	if !r.Empty() {
		t.Errorf("%d bytes left unread after deserialization", len(w.Bytes())-r.Position())
	}
	return restored
}

func TestSerializeRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"a",
		"ab\ncd\nef",
		"\n\n\n",
		"ends with newline\n",
	}

	for _, content := range cases {
		txt := NewTextFromString(content)
		restored := roundTrip(t, txt)

		if !restored.Equal(txt) {
			t.Errorf("round trip of %q: got %q", content, restored.String())
		}
		checkLineIndex(t, restored)
	}
}

func TestSerializeRoundTripNonBMP(t *testing.T) {
	txt := NewTextFromString("a\U0001F600\nb")
	restored := roundTrip(t, txt)

	if !restored.Equal(txt) {
		t.Errorf("expected %q, got %q", txt.String(), restored.String())
	}
}

func TestSerializeRoundTripLoneSurrogate(t *testing.T) {
	txt := NewTextFromCodeUnits([]uint16{'a', 0xDC00, '\n', 'b'})
	restored := roundTrip(t, txt)

	if !restored.Equal(txt) {
		t.Error("lone surrogate must survive serialization unrepaired")
	}
}

func TestSerializeLayout(t *testing.T) {
	txt := NewTextFromString("a\n")

	w := serial.NewWriter(8)
	txt.Serialize(w)

	// [u32 count][u16 unit] x count, little-endian.
	want := []byte{2, 0, 0, 0, 'a', 0, '\n', 0}
	got := w.Bytes()
	if len(got) != len(want) {
		t.Fatalf("expected %d bytes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}
