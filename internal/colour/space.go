package colour

import "math"

// D65 reference white used for the XYZ → Lab step.
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

// CIE constants for the Lab companding function.
const (
	labEpsilon = 0.008856
	labKappa   = 903.3
)

// XYZ is a CIE 1931 XYZ triple relative to D65 with Y=1 for white.
type XYZ struct {
	X, Y, Z float64
}

// Lab is a CIE L*a*b* colour.
type Lab struct {
	L, A, B float64
}

// LCH is the cylindrical form of Lab. H is in degrees, [0, 360).
type LCH struct {
	L, C, H float64
}

// OKLab is a colour in Björn Ottosson's OKLab space. L is 0..1.
type OKLab struct {
	L, A, B float64
}

// OKLCH is the cylindrical form of OKLab. L is 0..1, H in degrees.
type OKLCH struct {
	L, C, H float64
}

// SRGBToLinear decodes a gamma-encoded sRGB component in 0..1 to linear light.
func SRGBToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// linearRGB normalizes 8-bit channels and decodes them to linear light.
func linearRGB(r, g, b int) (float64, float64, float64) {
	return SRGBToLinear(float64(r) / 255),
		SRGBToLinear(float64(g) / 255),
		SRGBToLinear(float64(b) / 255)
}

// LinearToXYZ applies the sRGB D65 matrix.
func LinearToXYZ(r, g, b float64) XYZ {
	return XYZ{
		X: 0.4124564*r + 0.3575761*g + 0.1804375*b,
		Y: 0.2126729*r + 0.7151522*g + 0.0721750*b,
		Z: 0.0193339*r + 0.1191920*g + 0.9503041*b,
	}
}

// XYZToLab converts XYZ to Lab against the D65 white point.
func XYZToLab(xyz XYZ) Lab {
	fx := labF(xyz.X / whiteX)
	fy := labF(xyz.Y / whiteY)
	fz := labF(xyz.Z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LinearToOKLab converts linear sRGB to OKLab.
// Reference: https://bottosson.github.io/posts/oklab/.
func LinearToOKLab(r, g, b float64) OKLab {
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	l = math.Cbrt(l)
	m = math.Cbrt(m)
	s = math.Cbrt(s)

	return OKLab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// ToPolar returns chroma and hue (degrees, [0, 360)) for an a/b pair.
func ToPolar(a, b float64) (c, h float64) {
	c = math.Sqrt(a*a + b*b)
	h = math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	// atan2 can land exactly on 360 after the shift for tiny negative b.
	if h >= 360 {
		h -= 360
	}
	return c, h
}

// LCH converts Lab to its cylindrical form.
func (lab Lab) LCH() LCH {
	c, h := ToPolar(lab.A, lab.B)
	return LCH{L: lab.L, C: c, H: h}
}

// OKLCH converts OKLab to its cylindrical form.
func (lab OKLab) OKLCH() OKLCH {
	c, h := ToPolar(lab.A, lab.B)
	return OKLCH{L: lab.L, C: c, H: h}
}

// RGBToLab converts 8-bit sRGB channels to CIE Lab.
func RGBToLab(r, g, b int) Lab {
	return XYZToLab(LinearToXYZ(linearRGB(r, g, b)))
}

// RGBToLCH converts 8-bit sRGB channels to CIE LCH.
func RGBToLCH(r, g, b int) LCH {
	return RGBToLab(r, g, b).LCH()
}

// RGBToOKLab converts 8-bit sRGB channels to OKLab.
func RGBToOKLab(r, g, b int) OKLab {
	return LinearToOKLab(linearRGB(r, g, b))
}

// RGBToOKLCH converts 8-bit sRGB channels to OKLCH.
func RGBToOKLCH(r, g, b int) OKLCH {
	return RGBToOKLab(r, g, b).OKLCH()
}
