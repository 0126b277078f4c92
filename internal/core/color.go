package core

// RGB is a true-color foreground for a screen cell.
type RGB struct {
	R, G, B uint8
}

// NewRGB builds an RGB from int channels, clamping each to [0, 255].
func NewRGB(r, g, b int) RGB {
	return RGB{
		R: uint8(Clamp(r, 0, 255)),
		G: uint8(Clamp(g, 0, 255)),
		B: uint8(Clamp(b, 0, 255)),
	}
}

// Floats returns the channels scaled to [0, 1].
func (c RGB) Floats() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}
