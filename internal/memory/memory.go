// Package memory provides the flat 64 KiB address space owned by the CPU.
// It is unaware of the other components; every cell is plain RAM, and any
// hardware mapping is the concern of whoever drives the CPU.
package memory

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/patchwork-emu/patchwork-dmg/internal/types"
	"github.com/patchwork-emu/patchwork-dmg/pkg/log"
)

// Size is the number of addressable cells.
const Size = 65536

// ErrOutOfBounds is returned when a bulk write would run past the end of
// the address space.
var ErrOutOfBounds = errors.New("memory: write out of bounds")

// Memory is the total memory access space of the DMG unit. Single-cell
// reads and writes are total; only bulk writes can fail.
type Memory struct {
	data [Size]uint8

	Log log.Logger
}

// New creates a zero-initialized Memory.
func New(logger log.Logger) *Memory {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &Memory{Log: logger}
}

// Read returns the cell at the given address.
func (m *Memory) Read(addr uint16) uint8 {
	return m.data[addr]
}

// Write sets the cell at the given address.
func (m *Memory) Write(addr uint16, value uint8) {
	m.data[addr] = value
}

// ReadWord composes the little-endian word stored at addr and addr+1.
func (m *Memory) ReadWord(addr uint16) uint16 {
	return uint16(m.data[addr+1])<<8 | uint16(m.data[addr])
}

// WriteBytes writes a contiguous run of bytes beginning at start. The
// write is all-or-nothing: if it would run past the end of the address
// space no cell is modified and ErrOutOfBounds is returned.
func (m *Memory) WriteBytes(values []byte, start int) error {
	if start < 0 || start+len(values) > Size {
		return fmt.Errorf("%w: %d bytes at %#04x", ErrOutOfBounds, len(values), start)
	}
	copy(m.data[start:], values)
	m.Log.Debugf("loaded %d bytes at %#04x", len(values), start)
	return nil
}

// Checksum returns the xxhash digest of the full memory image.
func (m *Memory) Checksum() uint64 {
	return xxhash.Sum64(m.data[:])
}

var _ types.Stater = (*Memory)(nil)

func (m *Memory) Load(s *types.State) {
	s.ReadData(m.data[:])
}

func (m *Memory) Save(s *types.State) {
	s.WriteData(m.data[:])
}
