package text

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/dshills/textcore/transcode"
)

func TestBuildSingleByteEncoding(t *testing.T) {
	var progress []int
	txt, err := Build(strings.NewReader("ab\ncd"), 5, "ISO-8859-1", 2, func(n int) {
		progress = append(progress, n)
	})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if txt.String() != "ab\ncd" {
		t.Errorf("expected ab\\ncd, got %q", txt.String())
	}
	if !slices.Equal(txt.lineOffsets, []uint32{0, 3}) {
		t.Errorf("expected line offsets [0 3], got %v", txt.lineOffsets)
	}
	if txt.Extent() != (Point{Row: 1, Column: 2}) {
		t.Errorf("expected extent (1:2), got %v", txt.Extent())
	}
	if !slices.Equal(progress, []int{2, 4, 5}) {
		t.Errorf("expected cumulative progress [2 4 5], got %v", progress)
	}
	checkLineIndex(t, txt)
}

func TestBuildUTF8(t *testing.T) {
	txt, err := Build(strings.NewReader("héllo\nwörld"), 16, "UTF-8", 4, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if !txt.Equal(NewTextFromString("héllo\nwörld")) {
		t.Errorf("expected héllo\\nwörld, got %q", txt.String())
	}
	checkLineIndex(t, txt)
}

func TestBuildSequenceSplitAcrossChunks(t *testing.T) {
	// "abé": the two-byte sequence for é straddles the 3-byte chunk boundary
	// and must be carried into the next read.
	input := []byte{'a', 'b', 0xC3, 0xA9}
	txt, err := Build(bytes.NewReader(input), 4, "UTF-8", 3, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if !txt.Equal(NewTextFromString("abé")) {
		t.Errorf("expected abé, got %q", txt.String())
	}
}

func TestBuildMalformedByte(t *testing.T) {
	input := []byte{'a', 'b', 0xFF, 'c', 'd'}
	txt, err := Build(bytes.NewReader(input), len(input), "UTF-8", 16, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	want := []uint16{'a', 'b', 0xFFFD, 'c', 'd'}
	if !slices.Equal(txt.CodeUnits(), want) {
		t.Errorf("expected exactly one replacement with flanks intact, got %v", txt.CodeUnits())
	}
}

func TestBuildTruncatedSequenceAtEOF(t *testing.T) {
	input := []byte{'a', 0xC3}
	txt, err := Build(bytes.NewReader(input), len(input), "UTF-8", 16, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	want := []uint16{'a', 0xFFFD}
	if !slices.Equal(txt.CodeUnits(), want) {
		t.Errorf("expected trailing bytes downgraded to a replacement, got %v", txt.CodeUnits())
	}
}

func TestBuildGrowthBoundary(t *testing.T) {
	// Input more than double the size hint forces multiple growth cycles;
	// the result must be exact with no truncation or duplication.
	input := strings.Repeat("abcdefg\n", 20)
	txt, err := Build(strings.NewReader(input), 4, "ISO-8859-1", 7, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if !txt.Equal(NewTextFromString(input)) {
		t.Errorf("expected %d units, got %d", len(input), txt.Size())
	}
	checkLineIndex(t, txt)
}

func TestBuildZeroSizeHint(t *testing.T) {
	txt, err := Build(strings.NewReader("ab\ncd"), 0, "ISO-8859-1", 2, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if !txt.Equal(NewTextFromString("ab\ncd")) {
		t.Errorf("expected ab\\ncd, got %q", txt.String())
	}
}

func TestBuildEmptyInput(t *testing.T) {
	called := false
	txt, err := Build(strings.NewReader(""), 0, "UTF-8", 4, func(int) {
		called = true
	})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if !txt.Equal(NewText()) {
		t.Errorf("expected empty text, got %q", txt.String())
	}
	if called {
		t.Error("progress must not be reported for empty input")
	}
}

func TestBuildUnsupportedEncoding(t *testing.T) {
	_, err := Build(strings.NewReader("ab"), 2, "no-such-encoding", 4, nil)
	if !errors.Is(err, transcode.ErrUnsupportedEncoding) {
		t.Errorf("expected ErrUnsupportedEncoding, got %v", err)
	}
}

func TestBuildPropagatesReadError(t *testing.T) {
	readErr := errors.New("disk gone")
	_, err := Build(&failingReader{err: readErr}, 4, "UTF-8", 4, nil)
	if !errors.Is(err, readErr) {
		t.Errorf("expected read error propagated, got %v", err)
	}
}

func TestBuildCRLF(t *testing.T) {
	txt, err := Build(strings.NewReader("ab\r\ncd"), 6, "ISO-8859-1", 4, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if !slices.Equal(txt.lineOffsets, []uint32{0, 4}) {
		t.Errorf("expected line offsets [0 4], got %v", txt.lineOffsets)
	}
	if txt.LineLengthForRow(0) != 2 {
		t.Errorf("expected visible length 2 for row 0, got %d", txt.LineLengthForRow(0))
	}
}

func TestBuildInvalidStatusHandling(t *testing.T) {
	// A transcoder that reports invalid bytes itself: Build must skip one
	// byte and substitute one replacement unit.
	txt, err := build(strings.NewReader("aXbXc"), 0, 2, nil, asciiRejecting{'X'})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	want := []uint16{'a', 0xFFFD, 'b', 0xFFFD, 'c'}
	if !slices.Equal(txt.CodeUnits(), want) {
		t.Errorf("expected %v, got %v", want, txt.CodeUnits())
	}
}

type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

// asciiRejecting passes bytes through as code units but reports the
// configured byte as an invalid sequence, leaving recovery to the caller.
type asciiRejecting struct {
	reject byte
}

func (a asciiRejecting) Feed(dst []uint16, src []byte, atEOF bool) (int, int, transcode.Status) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if src[nSrc] == a.reject {
			return nDst, nSrc, transcode.StatusInvalid
		}
		if nDst == len(dst) {
			return nDst, nSrc, transcode.StatusOutputFull
		}
		dst[nDst] = uint16(src[nSrc])
		nDst++
		nSrc++
	}
	return nDst, nSrc, transcode.StatusOK
}

func (asciiRejecting) Reset() {}
