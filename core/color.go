package core

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Site palette
var (
	RGBInk     = RGB{235, 238, 242} // body text on the page background
	RGBPage    = RGB{16, 20, 28}    // page background, what faded text converges to
	RGBNav     = RGB{24, 32, 48}
	RGBAccent  = RGB{80, 170, 220}
	RGBSuccess = RGB{90, 200, 120}
	RGBMuted   = RGB{130, 130, 130}
)

// Blend performs alpha blending: result = src*alpha + c*(1-alpha)
// alpha is clamped to [0, 1]
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if !(alpha > 0) {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv + 0.5),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv + 0.5),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv + 0.5),
	}
}
