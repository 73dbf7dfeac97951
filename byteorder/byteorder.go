package byteorder

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/bits"
)

// SwapUint16 reverses the bytes of v.
func SwapUint16(v uint16) uint16 {
	return bits.ReverseBytes16(v)
}

// SwapUint32 reverses the bytes of v.
func SwapUint32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// SwapUint64 reverses the bytes of v.
func SwapUint64(v uint64) uint64 {
	return bits.ReverseBytes64(v)
}

// SwapInt16 reverses the bytes of v.
func SwapInt16(v int16) int16 {
	return int16(bits.ReverseBytes16(uint16(v)))
}

// SwapInt32 reverses the bytes of v.
func SwapInt32(v int32) int32 {
	return int32(bits.ReverseBytes32(uint32(v)))
}

// SwapInt64 reverses the bytes of v.
func SwapInt64(v int64) int64 {
	return int64(bits.ReverseBytes64(uint64(v)))
}

// SwapFloat32 reverses the bytes of v's IEEE 754 representation.
func SwapFloat32(v float32) float32 {
	return math.Float32frombits(bits.ReverseBytes32(math.Float32bits(v)))
}

// SwapFloat64 reverses the bytes of v's IEEE 754 representation.
func SwapFloat64(v float64) float64 {
	return math.Float64frombits(bits.ReverseBytes64(math.Float64bits(v)))
}

// ReadSwappedUint16 reads a little-endian uint16 from r.
func ReadSwappedUint16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("read swapped uint16: %w", err)
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// ReadSwappedUint32 reads a little-endian uint32 from r.
func ReadSwappedUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("read swapped uint32: %w", err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadSwappedUint64 reads a little-endian uint64 from r.
func ReadSwappedUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("read swapped uint64: %w", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// ReadSwappedFloat32 reads a little-endian float32 from r.
func ReadSwappedFloat32(r io.Reader) (float32, error) {
	v, err := ReadSwappedUint32(r)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadSwappedFloat64 reads a little-endian float64 from r.
func ReadSwappedFloat64(r io.Reader) (float64, error) {
	v, err := ReadSwappedUint64(r)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// WriteSwappedUint16 writes v to w in little-endian order.
func WriteSwappedUint16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("write swapped uint16: %w", err)
	}
	return nil
}

// WriteSwappedUint32 writes v to w in little-endian order.
func WriteSwappedUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("write swapped uint32: %w", err)
	}
	return nil
}

// WriteSwappedUint64 writes v to w in little-endian order.
func WriteSwappedUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("write swapped uint64: %w", err)
	}
	return nil
}

// WriteSwappedFloat32 writes v's IEEE 754 bits to w in little-endian
// order.
func WriteSwappedFloat32(w io.Writer, v float32) error {
	return WriteSwappedUint32(w, math.Float32bits(v))
}

// WriteSwappedFloat64 writes v's IEEE 754 bits to w in little-endian
// order.
func WriteSwappedFloat64(w io.Writer, v float64) error {
	return WriteSwappedUint64(w, math.Float64bits(v))
}
