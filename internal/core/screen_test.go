package core

import (
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(60, 21)

	if s.Width() != 60 {
		t.Errorf("Width() = %d, expected 60", s.Width())
	}
	if s.Height() != 21 {
		t.Errorf("Height() = %d, expected 21", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	want := ScreenCell{Rune: 'X', FG: Black, BG: White}
	s.SetCell(5, 5, want)
	if got := s.GetCell(5, 5); got != want {
		t.Errorf("GetCell(5, 5) = %+v, expected %+v", got, want)
	}

	// Out of bounds writes are ignored
	s.SetCell(-1, 0, ScreenCell{Rune: 'A'})
	s.SetCell(0, 100, ScreenCell{Rune: 'A'})

	if s.GetCell(-1, 0) != blankCell {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
	if s.GetCell(100, 0).BG != (Color{}) {
		t.Error("Out of bounds GetCell should return a default-colored cell")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	red := RGB(0xff, 0, 0)
	s.FillRect(NewRect(2, 2, 3, 3), red)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.GetCell(x, y).BG != red {
				t.Errorf("FillRect: expected red background at (%d, %d)", x, y)
			}
		}
	}

	if s.GetCell(1, 1).BG == red || s.GetCell(5, 5).BG == red {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.FillRect(NewRect(0, 1, 20, 1), White)
	s.DrawText(2, 1, "[]", Black)

	if s.GetCell(2, 1).Rune != '[' || s.GetCell(3, 1).Rune != ']' {
		t.Errorf("DrawText: got %q%q", s.GetCell(2, 1).Rune, s.GetCell(3, 1).Rune)
	}
	if c := s.GetCell(2, 1); c.FG != Black || c.BG != White {
		t.Errorf("DrawText should set foreground and keep background, got %+v", c)
	}

	// Clipped at right edge
	s.DrawText(18, 0, "Hello", Black)
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.FillRect(NewRect(0, 0, 4, 4), White)
	s.DrawText(0, 0, "abcd", Black)

	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("After Clear, expected blank cell at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(3, 2)
	c := ScreenCell{Rune: '#', BG: White}
	s.Fill(c)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := s.GetCell(x, y); got != c {
				t.Errorf("Fill: (%d, %d) = %+v, expected %+v", x, y, got, c)
			}
		}
	}
}
