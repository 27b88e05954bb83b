package scale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/laserkit/beam/internal/satmath"
)

var (
	// ErrUnknownKind is returned for a value type name or Kind that is not supported.
	ErrUnknownKind = errors.New("unknown value kind")
	// ErrOutOfRange is returned when a value does not fit its Kind.
	ErrOutOfRange = errors.New("value out of range")
)

// Kind names one of the value types a Scaler supports, for callers that only
// learn the types at runtime.
type Kind uint8

// Supported kinds; the zero Kind is invalid.
const (
	Uint16 Kind = iota + 1
	Uint32
	Int16
	Int32
)

// ParseKind accepts the short (u16) and long (uint16) spellings.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u16", "uint16":
		return Uint16, nil
	case "u32", "uint32":
		return Uint32, nil
	case "i16", "int16":
		return Int16, nil
	case "i32", "int32":
		return Int32, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

func (k Kind) String() string {
	switch k {
	case Uint16:
		return "u16"
	case Uint32:
		return "u32"
	case Int16:
		return "i16"
	case Int32:
		return "i32"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Bounds returns the representable range of k widened to int64.
func (k Kind) Bounds() (lo, hi int64, err error) {
	switch k {
	case Uint16:
		return bounds[uint16]()
	case Uint32:
		return bounds[uint32]()
	case Int16:
		return bounds[int16]()
	case Int32:
		return bounds[int32]()
	default:
		return 0, 0, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
}

func bounds[T Integer]() (int64, int64, error) {
	lo, hi := satmath.Bounds[T]()
	return int64(lo), int64(hi), nil
}

// CheckFits reports whether v is representable by k.
func CheckFits(k Kind, v int64) error {
	lo, hi, err := k.Bounds()
	if err != nil {
		return err
	}
	if v < lo || v > hi {
		return fmt.Errorf("%w: %d does not fit %s [%d, %d]", ErrOutOfRange, v, k, lo, hi)
	}
	return nil
}

// Func scales a value that has already been checked to fit the source Kind.
type Func func(v int64) int64

// Range is a pair of bounds widened to int64.
type Range struct {
	Min int64
	Max int64
}

// Lookup returns a Func backed by the Scaler instantiation for src and dst.
// Each bound must fit its Kind.
func Lookup(src, dst Kind, srcRange, dstRange Range) (Func, error) {
	for _, c := range []struct {
		k Kind
		v int64
	}{
		{src, srcRange.Min}, {src, srcRange.Max},
		{dst, dstRange.Min}, {dst, dstRange.Max},
	} {
		if err := CheckFits(c.k, c.v); err != nil {
			return nil, err
		}
	}

	switch src {
	case Uint16:
		return lookupDest[uint16](dst, srcRange, dstRange)
	case Uint32:
		return lookupDest[uint32](dst, srcRange, dstRange)
	case Int16:
		return lookupDest[int16](dst, srcRange, dstRange)
	case Int32:
		return lookupDest[int32](dst, srcRange, dstRange)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, src)
}

func lookupDest[S Integer](dst Kind, srcRange, dstRange Range) (Func, error) {
	switch dst {
	case Uint16:
		return bind[S, uint16](srcRange, dstRange), nil
	case Uint32:
		return bind[S, uint32](srcRange, dstRange), nil
	case Int16:
		return bind[S, int16](srcRange, dstRange), nil
	case Int32:
		return bind[S, int32](srcRange, dstRange), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, dst)
}

func bind[S, D Integer](srcRange, dstRange Range) Func {
	s := New(S(srcRange.Min), S(srcRange.Max), D(dstRange.Min), D(dstRange.Max))
	return func(v int64) int64 {
		return int64(s.Scale(S(v)))
	}
}
