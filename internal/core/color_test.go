package core

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor("orange"); !ok || c != ColorOrange {
		t.Errorf("ParseColor(orange) = (%v, %v), expected (%v, true)", c, ok, ColorOrange)
	}
	if c, ok := ParseColor("bright_cyan"); !ok || c != ColorBrightCyan {
		t.Errorf("ParseColor(bright_cyan) = (%v, %v), expected (%v, true)", c, ok, ColorBrightCyan)
	}
	if _, ok := ParseColor("mauve"); ok {
		t.Error("ParseColor(mauve) should fail")
	}
}

func TestToRGBA(t *testing.T) {
	if got := ColorOrange.ToRGBA(); got != (color.RGBA{255, 135, 0, 255}) {
		t.Errorf("ColorOrange.ToRGBA() = %v, expected orange", got)
	}
	if got := Color(200).ToRGBA(); got != ColorDefault.ToRGBA() {
		t.Errorf("unknown color = %v, expected the default", got)
	}
}

func TestFade(t *testing.T) {
	tests := []struct {
		name     string
		alpha    float64
		expected color.RGBA
	}{
		{"opaque", 1, color.RGBA{200, 100, 50, 255}},
		{"half", 0.5, color.RGBA{100, 50, 25, 127}},
		{"gone", 0, color.RGBA{}},
		{"clamped", 3, color.RGBA{200, 100, 50, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fade(color.RGBA{200, 100, 50, 255}, tt.alpha); got != tt.expected {
				t.Errorf("Fade() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
