package pipeline

import (
	"encoding/binary"
	"unsafe"

	"github.com/laserkit/beam/scale"
)

// Sample is one projected output value pair.
type Sample[D scale.Integer] struct {
	X, Y D
	On   bool
}

// AppendBinary appends the little-endian encoding of s to b.
//
// Layout: X, Y (each the width of D, little-endian), then one byte that is
// 1 when the beam is on.
func (s Sample[D]) AppendBinary(b []byte) ([]byte, error) {
	b = appendValue(b, s.X)
	b = appendValue(b, s.Y)
	if s.On {
		return append(b, 1), nil
	}
	return append(b, 0), nil
}

// MarshalBinary encodes s as described by AppendBinary.
func (s Sample[D]) MarshalBinary() ([]byte, error) {
	return s.AppendBinary(make([]byte, 0, SampleSize[D]()))
}

// SampleSize returns the encoded size of one Sample[D].
func SampleSize[D scale.Integer]() int {
	var v D
	return 2*int(unsafe.Sizeof(v)) + 1
}

// EncodeFrame concatenates the encodings of samples.
func EncodeFrame[D scale.Integer](samples []Sample[D]) []byte {
	b := make([]byte, 0, len(samples)*SampleSize[D]())
	for _, s := range samples {
		b, _ = s.AppendBinary(b)
	}
	return b
}

func appendValue[D scale.Integer](b []byte, v D) []byte {
	if unsafe.Sizeof(v) == 2 {
		return binary.LittleEndian.AppendUint16(b, uint16(v))
	}
	return binary.LittleEndian.AppendUint32(b, uint32(v))
}
