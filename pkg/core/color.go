package core

import (
	"cmp"
	"errors"
	"fmt"
	"image/color"
	"math"
)

// Arithmetic faults for color division and modulo. Every other color
// operation is total and clamps instead of failing.
var (
	ErrDivideByZero    = errors.New("color: division by zero")
	ErrNegativeDivisor = errors.New("color: division by negative number")
)

// Color is a 4-channel color with 8 bits per channel. All arithmetic
// saturates at the channel bounds instead of wrapping, so a stored
// channel is always in 0..255.
type Color struct {
	R, G, B, A uint8
}

// Common colors used by the built-in scenes
var (
	Black   = NewColorRGB(0, 0, 0)
	White   = NewColorRGB(255, 255, 255)
	Red     = NewColorRGB(255, 0, 0)
	Green   = NewColorRGB(0, 255, 0)
	Blue    = NewColorRGB(0, 0, 255)
	Cyan    = NewColorRGB(0, 255, 255)
	Magenta = NewColorRGB(255, 0, 255)
	Yellow  = NewColorRGB(255, 255, 0)
)

// NewColor creates a color from the four channel values
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// NewColorRGB creates an opaque color from red, green and blue
func NewColorRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// NewColorFromPacked unpacks a color from its packed form, byte 0
// holding red through byte 3 holding alpha. It is the inverse of
// Packed and replaces all four channels at once.
func NewColorFromPacked(packed uint32) Color {
	return Color{
		R: uint8(packed),
		G: uint8(packed >> 8),
		B: uint8(packed >> 16),
		A: uint8(packed >> 24),
	}
}

// Packed returns the color as one 32-bit value with red in the least
// significant byte and alpha in the most significant byte.
func (c Color) Packed() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// ARGB returns the packed value in ARGB byte order, the layout pixel
// buffers expect on handoff.
func (c Color) ARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Add returns the channel-wise sum of two colors, saturating at 255
func (c Color) Add(other Color) Color {
	return Color{
		R: satAdd(c.R, other.R),
		G: satAdd(c.G, other.G),
		B: satAdd(c.B, other.B),
		A: satAdd(c.A, other.A),
	}
}

// AddScalar adds a scalar to every channel, saturating at 255
func (c Color) AddScalar(scalar uint8) Color {
	return Color{
		R: satAdd(c.R, scalar),
		G: satAdd(c.G, scalar),
		B: satAdd(c.B, scalar),
		A: satAdd(c.A, scalar),
	}
}

// Subtract returns the channel-wise difference of two colors,
// flooring at zero
func (c Color) Subtract(other Color) Color {
	return Color{
		R: satSub(c.R, other.R),
		G: satSub(c.G, other.G),
		B: satSub(c.B, other.B),
		A: satSub(c.A, other.A),
	}
}

// SubtractScalar subtracts a scalar from every channel, flooring at zero
func (c Color) SubtractScalar(scalar uint8) Color {
	return Color{
		R: satSub(c.R, scalar),
		G: satSub(c.G, scalar),
		B: satSub(c.B, scalar),
		A: satSub(c.A, scalar),
	}
}

// SubtractFromScalar subtracts every channel from a scalar, the
// reflected form of SubtractScalar, flooring at zero
func (c Color) SubtractFromScalar(scalar uint8) Color {
	return Color{
		R: satSub(scalar, c.R),
		G: satSub(scalar, c.G),
		B: satSub(scalar, c.B),
		A: satSub(scalar, c.A),
	}
}

// Scale multiplies every channel by a scalar, rounding and saturating
// at 255. Scalars that are zero or negative within tolerance zero all
// channels.
func (c Color) Scale(scalar float64) Color {
	if LessOrNearlyEqual(scalar, 0) {
		return Color{}
	}
	return Color{
		R: scaleChannel(c.R, scalar),
		G: scaleChannel(c.G, scalar),
		B: scaleChannel(c.B, scalar),
		A: scaleChannel(c.A, scalar),
	}
}

// Divide divides every channel by a scalar, saturating at 255.
// A zero scalar (within tolerance) fails with ErrDivideByZero and a
// negative scalar with ErrNegativeDivisor.
func (c Color) Divide(scalar float64) (Color, error) {
	if NearlyEqual(scalar, 0) {
		return Color{}, ErrDivideByZero
	}
	if scalar < 0 {
		return Color{}, ErrNegativeDivisor
	}
	return Color{
		R: divideChannel(c.R, scalar),
		G: divideChannel(c.G, scalar),
		B: divideChannel(c.B, scalar),
		A: divideChannel(c.A, scalar),
	}, nil
}

// DivideFromScalar divides a scalar by every channel, the reflected
// form of Divide. Any zero channel fails with ErrDivideByZero and a
// negative scalar with ErrNegativeDivisor.
func (c Color) DivideFromScalar(scalar float64) (Color, error) {
	if c.R == 0 || c.G == 0 || c.B == 0 || c.A == 0 {
		return Color{}, ErrDivideByZero
	}
	if scalar < 0 {
		return Color{}, ErrNegativeDivisor
	}
	return Color{
		R: divideScalarBy(scalar, c.R),
		G: divideScalarBy(scalar, c.G),
		B: divideScalarBy(scalar, c.B),
		A: divideScalarBy(scalar, c.A),
	}, nil
}

// Mod replaces every channel with its remainder modulo a scalar.
// A zero scalar fails with ErrDivideByZero.
func (c Color) Mod(scalar uint8) (Color, error) {
	if scalar == 0 {
		return Color{}, ErrDivideByZero
	}
	return Color{
		R: c.R % scalar,
		G: c.G % scalar,
		B: c.B % scalar,
		A: c.A % scalar,
	}, nil
}

// ModFromScalar replaces every channel with the scalar modulo that
// channel, the reflected form of Mod. Any zero channel fails with
// ErrDivideByZero.
func (c Color) ModFromScalar(scalar uint8) (Color, error) {
	if c.R == 0 || c.G == 0 || c.B == 0 || c.A == 0 {
		return Color{}, ErrDivideByZero
	}
	return Color{
		R: scalar % c.R,
		G: scalar % c.G,
		B: scalar % c.B,
		A: scalar % c.A,
	}, nil
}

// Invert flips the red, green and blue bits and leaves the alpha
// channel untouched. Inverting twice restores the original color.
func (c Color) Invert() Color {
	return NewColorFromPacked(c.Packed() ^ 0x00FFFFFF)
}

// Grayscale replaces red, green and blue with the ITU luma of the
// original channels, computed simultaneously. Alpha is kept.
func (c Color) Grayscale() Color {
	luma := uint8(math.Round(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)))
	return Color{R: luma, G: luma, B: luma, A: c.A}
}

// Blend returns the channel-wise average of two colors
func (c Color) Blend(other Color) Color {
	return Color{
		R: uint8((uint16(c.R) + uint16(other.R)) / 2),
		G: uint8((uint16(c.G) + uint16(other.G)) / 2),
		B: uint8((uint16(c.B) + uint16(other.B)) / 2),
		A: uint8((uint16(c.A) + uint16(other.A)) / 2),
	}
}

// Compare orders two colors by their packed values, which makes alpha
// the most significant channel, then blue, green and red. It returns
// -1, 0 or 1 like the comparisons in the cmp package.
func (c Color) Compare(other Color) int {
	return cmp.Compare(c.Packed(), other.Packed())
}

// Less reports whether c orders before other
func (c Color) Less(other Color) bool {
	return c.Packed() < other.Packed()
}

// NRGBA converts the color for use with the image packages
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// String formats the color as "(r, g, b, a)"
func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

func satAdd(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

func satSub(a, b uint8) uint8 {
	if a < b {
		return 0
	}
	return a - b
}

func scaleChannel(channel uint8, scalar float64) uint8 {
	v := math.Round(float64(channel) * scalar)
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func divideChannel(channel uint8, scalar float64) uint8 {
	v := float64(channel) / scalar
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func divideScalarBy(scalar float64, channel uint8) uint8 {
	v := scalar / float64(channel)
	if v > 255 {
		return 255
	}
	return uint8(v)
}
