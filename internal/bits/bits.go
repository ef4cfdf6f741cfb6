// Package bits provides bit-level I/O for VC-2 streams.
//
// All reads are big-endian, most-significant bit first. The reader keeps
// one byte buffered ahead of the read position so that the end of the
// stream is known before a read is attempted, and exposes the byte offset
// and bit index of the next unread bit for diagnostics.
package bits

import (
	"errors"
	"io"
)

// ErrEndOfStream is returned when a read is attempted with no byte
// buffered. Callers translate it into their own end-of-input error.
var ErrEndOfStream = errors.New("bits: unexpected end of stream")

// Reader provides bit-level reading from a byte stream.
type Reader struct {
	r       io.Reader
	current int   // value of the buffered byte, -1 at end of stream
	nextBit int   // index of the next bit to read (7 = MSB)
	offset  int64 // byte offset of the buffered byte
	err     error // non-EOF read error, if any

	// Bounded-block bit budget consumed by the *B read variants.
	budget int

	recording bool
	recorded  []byte
}

// NewReader creates a bit reader and buffers the first byte of the
// stream.
func NewReader(r io.Reader) *Reader {
	br := &Reader{r: r, current: -1, nextBit: 7, offset: -1}
	br.loadByte()
	br.offset = 0
	return br
}

// loadByte buffers the next byte in the stream, or marks the end of the
// stream if no byte is available.
func (r *Reader) loadByte() {
	r.nextBit = 7
	r.offset++
	var b [1]byte
	if _, err := io.ReadFull(r.r, b[:]); err != nil {
		if err != io.EOF && err != io.ErrUnexpectedEOF {
			r.err = err
		}
		r.current = -1
		return
	}
	r.current = int(b[0])
	if r.recording {
		r.recorded = append(r.recorded, b[0])
	}
}

// Tell returns the byte offset and next-bit index (7 = byte aligned) of
// the read position. At the end of the stream the offset is the total
// stream length.
func (r *Reader) Tell() (int64, int) {
	return r.offset, r.nextBit
}

// IsEndOfStream reports whether the stream is exhausted and no byte is
// buffered.
func (r *Reader) IsEndOfStream() bool {
	return r.current < 0
}

// ReadBit reads a single bit (0 or 1).
func (r *Reader) ReadBit() (int, error) {
	if r.current < 0 {
		if r.err != nil {
			return 0, r.err
		}
		return 0, ErrEndOfStream
	}
	bit := (r.current >> uint(r.nextBit)) & 1
	r.nextBit--
	if r.nextBit < 0 {
		r.loadByte()
	}
	return bit, nil
}

// ReadBool reads a single bit as a boolean.
func (r *Reader) ReadBool() (bool, error) {
	bit, err := r.ReadBit()
	return bit == 1, err
}

// ReadNBits reads n bits (0-64) as an unsigned integer.
func (r *Reader) ReadNBits(n int) (uint64, error) {
	var val uint64
	for i := 0; i < n; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		val = (val << 1) | uint64(bit)
	}
	return val, nil
}

// ReadUintLit reads an n-byte unsigned integer literal.
func (r *Reader) ReadUintLit(n int) (uint64, error) {
	return r.ReadNBits(8 * n)
}

// ByteAlign discards any remaining bits of the current byte.
func (r *Reader) ByteAlign() {
	if r.nextBit != 7 {
		r.loadByte()
	}
}

// ReadUint reads a variable-length unsigned exp-golomb value.
func (r *Reader) ReadUint() (uint64, error) {
	value := uint64(1)
	for {
		stop, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if stop == 1 {
			break
		}
		value <<= 1
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit == 1 {
			value++
		}
	}
	return value - 1, nil
}

// ReadSint reads a variable-length signed exp-golomb value. The sign bit
// is only present for non-zero magnitudes.
func (r *Reader) ReadSint() (int64, error) {
	magnitude, err := r.ReadUint()
	if err != nil {
		return 0, err
	}
	value := int64(magnitude)
	if value != 0 {
		neg, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if neg == 1 {
			value = -value
		}
	}
	return value, nil
}

// SetBounded declares a bounded block of n bits. Subsequent *B reads
// consume the budget and synthesize 1 bits once it is exhausted.
func (r *Reader) SetBounded(n int) {
	r.budget = n
}

// BitsRemaining returns the unread portion of the bounded-block budget.
func (r *Reader) BitsRemaining() int {
	return r.budget
}

// ReadBitB reads a single bit within the current bounded block,
// substituting a 1 once the block's budget is exhausted.
func (r *Reader) ReadBitB() (int, error) {
	if r.budget == 0 {
		return 1, nil
	}
	r.budget--
	return r.ReadBit()
}

// ReadBoolB reads a bounded-block bit as a boolean.
func (r *Reader) ReadBoolB() (bool, error) {
	bit, err := r.ReadBitB()
	return bit == 1, err
}

// ReadUintB reads an unsigned exp-golomb value within the current
// bounded block.
func (r *Reader) ReadUintB() (uint64, error) {
	value := uint64(1)
	for {
		stop, err := r.ReadBitB()
		if err != nil {
			return 0, err
		}
		if stop == 1 {
			break
		}
		value <<= 1
		bit, err := r.ReadBitB()
		if err != nil {
			return 0, err
		}
		if bit == 1 {
			value++
		}
	}
	return value - 1, nil
}

// ReadSintB reads a signed exp-golomb value within the current bounded
// block.
func (r *Reader) ReadSintB() (int64, error) {
	magnitude, err := r.ReadUintB()
	if err != nil {
		return 0, err
	}
	value := int64(magnitude)
	if value != 0 {
		neg, err := r.ReadBitB()
		if err != nil {
			return 0, err
		}
		if neg == 1 {
			value = -value
		}
	}
	return value, nil
}

// FlushBounded discards any unread bits of the current bounded block.
func (r *Reader) FlushBounded() error {
	for r.budget > 0 {
		if _, err := r.ReadBit(); err != nil {
			return err
		}
		r.budget--
	}
	return nil
}

// StartRecording begins capturing the raw bytes spanning subsequent
// reads. The read position must be byte aligned.
func (r *Reader) StartRecording() {
	r.recording = true
	r.recorded = r.recorded[:0]
	if r.current >= 0 {
		r.recorded = append(r.recorded, byte(r.current))
	}
}

// FinishRecording stops capturing and returns every byte at least
// partially consumed since StartRecording.
func (r *Reader) FinishRecording() []byte {
	r.recording = false
	recorded := r.recorded
	if r.nextBit == 7 && len(recorded) > 0 && r.current >= 0 {
		// The buffered byte is untouched and not part of the region.
		recorded = recorded[:len(recorded)-1]
	}
	r.recorded = nil
	return recorded
}
