package vc2

import (
	"errors"

	"github.com/kwahlin/go-vc2/internal/bits"
)

// Read helpers wrapping the bit reader: running out of input mid-read
// is itself a conformance violation, reported with the position the
// read stopped at.

func (s *State) readErr(err error) error {
	if errors.Is(err, bits.ErrEndOfStream) {
		return &UnexpectedEndOfStream{Offset: s.tell()}
	}
	return err
}

func (s *State) readBool() (bool, error) {
	v, err := s.r.ReadBool()
	if err != nil {
		return false, s.readErr(err)
	}
	return v, nil
}

func (s *State) readNBits(n int) (uint64, error) {
	v, err := s.r.ReadNBits(n)
	if err != nil {
		return 0, s.readErr(err)
	}
	return v, nil
}

func (s *State) readUintLit(n int) (uint64, error) {
	v, err := s.r.ReadUintLit(n)
	if err != nil {
		return 0, s.readErr(err)
	}
	return v, nil
}

func (s *State) readUint() (uint64, error) {
	v, err := s.r.ReadUint()
	if err != nil {
		return 0, s.readErr(err)
	}
	return v, nil
}

func (s *State) readSintB() (int64, error) {
	v, err := s.r.ReadSintB()
	if err != nil {
		return 0, s.readErr(err)
	}
	return v, nil
}

func (s *State) flushBounded() error {
	if err := s.r.FlushBounded(); err != nil {
		return s.readErr(err)
	}
	return nil
}
