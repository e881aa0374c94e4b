package text

import (
	"io"

	"github.com/dshills/textcore/internal/seq"
	"github.com/dshills/textcore/transcode"
)

const (
	// replacementCodeUnit is substituted for each skipped invalid byte.
	replacementCodeUnit = 0xFFFD

	// outputGrowthFloor is the smallest capacity the output buffer grows to,
	// so decoding converges even with a size hint of zero.
	outputGrowthFloor = 16

	// defaultChunkSize is used when the caller passes a non-positive read
	// chunk size.
	defaultChunkSize = 4096
)

// Build streams r through a decoder for the named encoding and assembles a
// text from the resulting code units, constructing the line index
// incrementally as output is produced. sizeHint preallocates the output
// buffer (a good hint is the input byte length); the buffer doubles whenever
// it fills. chunkSize bounds each physical read. progress, if non-nil, is
// called synchronously with the cumulative bytes read after every non-empty
// read.
//
// An unknown encoding name returns an error wrapping
// transcode.ErrUnsupportedEncoding. Invalid byte sequences never fail the
// decode: each is replaced with U+FFFD. An incomplete multi-byte sequence at
// a chunk boundary is carried into the next read; at end of input it is
// treated as invalid.
func Build(r io.Reader, sizeHint int, encodingName string, chunkSize int, progress func(bytesRead int)) (*Text, error) {
	decoder, err := transcode.New(encodingName)
	if err != nil {
		return nil, err
	}
	return build(r, sizeHint, chunkSize, progress, decoder)
}

func build(r io.Reader, sizeHint, chunkSize int, progress func(int), decoder transcode.Transcoder) (*Text, error) {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	if sizeHint < 0 {
		sizeHint = 0
	}

	staging := make([]byte, chunkSize)
	leftover := 0

	output := make([]uint16, 0, sizeHint)
	lineOffsets := []uint32{0}
	indexed := 0

	totalRead := 0
	eof := false

	for {
		n := 0
		if !eof {
			var err error
			n, err = r.Read(staging[leftover:])
			leftover += n
			if err == io.EOF {
				eof = true
			} else if err != nil {
				return nil, err
			}
		}
		if leftover == 0 {
			if eof {
				break
			}
			continue
		}
		if n > 0 {
			totalRead += n
			if progress != nil {
				progress(totalRead)
			}
		}

		// When a read produces no bytes, nothing can rescue an incomplete
		// trailing sequence in the staged input: either the stream is done
		// or the staging buffer is full of one unfinished sequence.
		final := n == 0

		feeding := true
		for feeding {
			dst := output[len(output):cap(output)]
			nDst, nSrc, status := decoder.Feed(dst, staging[:leftover], final)
			output = output[:len(output)+nDst]
			leftover = copy(staging, staging[nSrc:leftover])

			switch status {
			case transcode.StatusOK:
				feeding = false

			case transcode.StatusIncomplete:
				if !final {
					// Carry the trailing bytes into the next read.
					feeding = false
					break
				}
				fallthrough

			case transcode.StatusInvalid:
				if len(output) == cap(output) {
					output = growOutput(output)
				}
				output = append(output, replacementCodeUnit)
				if leftover > 0 {
					leftover = copy(staging, staging[1:leftover])
				}

			case transcode.StatusOutputFull:
				output = growOutput(output)
			}

			for indexed < len(output) {
				if output[indexed] == newline {
					lineOffsets = append(lineOffsets, uint32(indexed+1))
				}
				indexed++
			}
		}

		if eof && leftover == 0 {
			break
		}
	}

	return &Text{content: output, lineOffsets: lineOffsets}, nil
}

func growOutput(output []uint16) []uint16 {
	newCap := cap(output) * seq.GrowthFactor
	if newCap < outputGrowthFloor {
		newCap = outputGrowthFloor
	}
	return seq.Grow(output, newCap)
}
