package core

import (
	"image/color"
	"testing"
)

func TestColorHex(t *testing.T) {
	tests := []struct {
		c        Color
		expected string
	}{
		{Black, "#000000"},
		{White, "#ffffff"},
		{RGB(0xff, 0x69, 0xb3), "#ff69b3"},
	}

	for _, tc := range tests {
		if got := tc.c.Hex(); got != tc.expected {
			t.Errorf("Hex() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestColorImplementsImageColor(t *testing.T) {
	var c color.Color = RGB(0x10, 0x20, 0x30)

	got := color.RGBAModel.Convert(c).(color.RGBA)
	want := color.RGBA{0x10, 0x20, 0x30, 0xff}
	if got != want {
		t.Errorf("converted color = %v, expected %v", got, want)
	}
}
