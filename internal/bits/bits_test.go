package bits

import (
	"bytes"
	"errors"
	"testing"
)

func TestReadBit(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xA5}))
	want := []int{1, 0, 1, 0, 0, 1, 0, 1}
	for i, w := range want {
		bit, err := r.ReadBit()
		if err != nil {
			t.Fatalf("ReadBit() #%d: %v", i, err)
		}
		if bit != w {
			t.Errorf("ReadBit() #%d = %d, want %d", i, bit, w)
		}
	}
	if _, err := r.ReadBit(); !errors.Is(err, ErrEndOfStream) {
		t.Errorf("ReadBit() after last bit: err = %v, want ErrEndOfStream", err)
	}
}

func TestReadNBits(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xDE, 0xAD, 0xBE}))
	got, err := r.ReadNBits(4)
	if err != nil {
		t.Fatalf("ReadNBits(4): %v", err)
	}
	if got != 0xD {
		t.Errorf("ReadNBits(4) = %#x, want 0xd", got)
	}
	got, err = r.ReadNBits(16)
	if err != nil {
		t.Fatalf("ReadNBits(16): %v", err)
	}
	if got != 0xEADB {
		t.Errorf("ReadNBits(16) = %#x, want 0xeadb", got)
	}
}

func TestReadUintLit(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04}))
	got, err := r.ReadUintLit(4)
	if err != nil {
		t.Fatalf("ReadUintLit(4): %v", err)
	}
	if got != 0x01020304 {
		t.Errorf("ReadUintLit(4) = %#x, want 0x01020304", got)
	}
}

func TestReadUintVectors(t *testing.T) {
	tests := []struct {
		data []byte
		want []uint64
	}{
		// "1" = 0, "001" = 1, "011" = 2: 1 001 011 0 -> 0x96
		{[]byte{0x96}, []uint64{0, 1, 2}},
		// "00001" = 3: 00001 000 -> 0x08
		{[]byte{0x08}, []uint64{3}},
	}
	for _, tt := range tests {
		r := NewReader(bytes.NewReader(tt.data))
		for i, w := range tt.want {
			got, err := r.ReadUint()
			if err != nil {
				t.Fatalf("ReadUint() #%d from % x: %v", i, tt.data, err)
			}
			if got != w {
				t.Errorf("ReadUint() #%d from % x = %d, want %d", i, tt.data, got, w)
			}
		}
	}
}

func TestUintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 2, 3, 4, 7, 8, 17, 100, 65535}
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, v := range values {
		if err := w.WriteUint(v); err != nil {
			t.Fatalf("WriteUint(%d): %v", v, err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush(): %v", err)
	}
	r := NewReader(bytes.NewReader(buf.Bytes()))
	for _, v := range values {
		got, err := r.ReadUint()
		if err != nil {
			t.Fatalf("ReadUint() for %d: %v", v, err)
		}
		if got != v {
			t.Errorf("ReadUint() = %d, want %d", got, v)
		}
	}
}

func TestSintRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 5, -5, 255, -255, 1000}
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, v := range values {
		if err := w.WriteSint(v); err != nil {
			t.Fatalf("WriteSint(%d): %v", v, err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush(): %v", err)
	}
	r := NewReader(bytes.NewReader(buf.Bytes()))
	for _, v := range values {
		got, err := r.ReadSint()
		if err != nil {
			t.Fatalf("ReadSint() for %d: %v", v, err)
		}
		if got != v {
			t.Errorf("ReadSint() = %d, want %d", got, v)
		}
	}
}

func TestTell(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xFF, 0xFF}))
	if b, n := r.Tell(); b != 0 || n != 7 {
		t.Errorf("Tell() = (%d, %d), want (0, 7)", b, n)
	}
	r.ReadBit()
	if b, n := r.Tell(); b != 0 || n != 6 {
		t.Errorf("Tell() after 1 bit = (%d, %d), want (0, 6)", b, n)
	}
	r.ReadNBits(7)
	if b, n := r.Tell(); b != 1 || n != 7 {
		t.Errorf("Tell() after 8 bits = (%d, %d), want (1, 7)", b, n)
	}
}

func TestByteAlign(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xFF, 0x42}))
	r.ReadNBits(3)
	r.ByteAlign()
	got, err := r.ReadUintLit(1)
	if err != nil {
		t.Fatalf("ReadUintLit(1): %v", err)
	}
	if got != 0x42 {
		t.Errorf("byte after align = %#x, want 0x42", got)
	}

	// Aligning an already aligned reader reads nothing.
	r = NewReader(bytes.NewReader([]byte{0x42}))
	r.ByteAlign()
	if b, n := r.Tell(); b != 0 || n != 7 {
		t.Errorf("Tell() after no-op align = (%d, %d), want (0, 7)", b, n)
	}
}

func TestEndOfStream(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	if !r.IsEndOfStream() {
		t.Error("IsEndOfStream() on empty input = false, want true")
	}
	if _, err := r.ReadBit(); !errors.Is(err, ErrEndOfStream) {
		t.Errorf("ReadBit() on empty input: err = %v, want ErrEndOfStream", err)
	}

	r = NewReader(bytes.NewReader([]byte{0x00}))
	if r.IsEndOfStream() {
		t.Error("IsEndOfStream() with a byte buffered = true, want false")
	}
	r.ReadUintLit(1)
	if !r.IsEndOfStream() {
		t.Error("IsEndOfStream() after consuming everything = false, want true")
	}
}

func TestBoundedSubstitution(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00}))
	r.SetBounded(4)
	for i := 0; i < 4; i++ {
		bit, err := r.ReadBitB()
		if err != nil {
			t.Fatalf("ReadBitB() #%d: %v", i, err)
		}
		if bit != 0 {
			t.Errorf("ReadBitB() #%d = %d, want 0", i, bit)
		}
	}
	if rem := r.BitsRemaining(); rem != 0 {
		t.Errorf("BitsRemaining() = %d, want 0", rem)
	}
	// Budget exhausted: 1 bits appear without consuming input.
	for i := 0; i < 3; i++ {
		bit, err := r.ReadBitB()
		if err != nil {
			t.Fatalf("ReadBitB() past budget: %v", err)
		}
		if bit != 1 {
			t.Errorf("ReadBitB() past budget = %d, want 1", bit)
		}
	}
	if b, n := r.Tell(); b != 0 || n != 3 {
		t.Errorf("Tell() = (%d, %d), want (0, 3)", b, n)
	}
}

func TestBoundedExpGolomb(t *testing.T) {
	// An empty budget decodes as zero: the synthesized 1 is an
	// immediate stop bit.
	r := NewReader(bytes.NewReader([]byte{0xFF}))
	r.SetBounded(0)
	got, err := r.ReadUintB()
	if err != nil {
		t.Fatalf("ReadUintB(): %v", err)
	}
	if got != 0 {
		t.Errorf("ReadUintB() with empty budget = %d, want 0", got)
	}
	sgot, err := r.ReadSintB()
	if err != nil {
		t.Fatalf("ReadSintB(): %v", err)
	}
	if sgot != 0 {
		t.Errorf("ReadSintB() with empty budget = %d, want 0", sgot)
	}
}

func TestFlushBounded(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x42}))
	r.SetBounded(8)
	if _, err := r.ReadBitB(); err != nil {
		t.Fatalf("ReadBitB(): %v", err)
	}
	if err := r.FlushBounded(); err != nil {
		t.Fatalf("FlushBounded(): %v", err)
	}
	got, err := r.ReadUintLit(1)
	if err != nil {
		t.Fatalf("ReadUintLit(1): %v", err)
	}
	if got != 0x42 {
		t.Errorf("byte after flush = %#x, want 0x42", got)
	}
}

func TestRecording(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04}))
	r.StartRecording()
	if _, err := r.ReadUintLit(2); err != nil {
		t.Fatalf("ReadUintLit(2): %v", err)
	}
	got := r.FinishRecording()
	if !bytes.Equal(got, []byte{0x01, 0x02}) {
		t.Errorf("FinishRecording() = % x, want 01 02", got)
	}

	// A partially consumed byte is part of the recorded region.
	r = NewReader(bytes.NewReader([]byte{0x01, 0x02}))
	r.StartRecording()
	r.ReadNBits(12)
	got = r.FinishRecording()
	if !bytes.Equal(got, []byte{0x01, 0x02}) {
		t.Errorf("FinishRecording() after 12 bits = % x, want 01 02", got)
	}
}
