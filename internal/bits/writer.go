package bits

import (
	"io"
)

// Writer provides bit-level writing to a byte stream. It mirrors the
// Reader's encodings and exists chiefly to construct streams in tests
// and tools.
type Writer struct {
	w   io.Writer
	buf byte
	cnt uint8
}

// NewWriter creates a new bit writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteBit writes a single bit.
func (w *Writer) WriteBit(bit int) error {
	w.buf = (w.buf << 1) | byte(bit&1)
	w.cnt++
	if w.cnt == 8 {
		return w.flushByte()
	}
	return nil
}

// WriteBool writes a boolean as a single bit.
func (w *Writer) WriteBool(b bool) error {
	if b {
		return w.WriteBit(1)
	}
	return w.WriteBit(0)
}

// WriteNBits writes the lowest n bits of val, most significant first.
func (w *Writer) WriteNBits(val uint64, n int) error {
	for i := n; i > 0; i-- {
		if err := w.WriteBit(int((val >> uint(i-1)) & 1)); err != nil {
			return err
		}
	}
	return nil
}

// WriteUintLit writes an n-byte unsigned integer literal.
func (w *Writer) WriteUintLit(val uint64, n int) error {
	return w.WriteNBits(val, 8*n)
}

// WriteUint writes a variable-length unsigned exp-golomb value.
func (w *Writer) WriteUint(val uint64) error {
	val++
	var nbits int
	for v := val; v > 1; v >>= 1 {
		nbits++
	}
	for i := nbits - 1; i >= 0; i-- {
		if err := w.WriteBit(0); err != nil {
			return err
		}
		if err := w.WriteBit(int((val >> uint(i)) & 1)); err != nil {
			return err
		}
	}
	return w.WriteBit(1)
}

// WriteSint writes a variable-length signed exp-golomb value.
func (w *Writer) WriteSint(val int64) error {
	magnitude := val
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if err := w.WriteUint(uint64(magnitude)); err != nil {
		return err
	}
	if val > 0 {
		return w.WriteBit(0)
	}
	if val < 0 {
		return w.WriteBit(1)
	}
	return nil
}

// ByteAlign pads the current byte with zero bits.
func (w *Writer) ByteAlign() error {
	for w.cnt != 0 {
		if err := w.WriteBit(0); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any remaining bits, padding with zeros.
func (w *Writer) Flush() error {
	if w.cnt > 0 {
		w.buf <<= 8 - w.cnt
		return w.flushByte()
	}
	return nil
}

func (w *Writer) flushByte() error {
	b := [1]byte{w.buf}
	_, err := w.w.Write(b[:])
	w.buf = 0
	w.cnt = 0
	return err
}
