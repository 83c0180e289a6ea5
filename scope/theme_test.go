package scope

import "testing"

func TestParseAccent_SixDigits(t *testing.T) {
	c := ParseAccent("#ff8000")
	if c != (RGB{R: 255, G: 128, B: 0}) {
		t.Errorf("Expected (255, 128, 0), got %+v", c)
	}
}

func TestParseAccent_ShortFormAndWhitespace(t *testing.T) {
	c := ParseAccent("  #0f8 ")
	if c != (RGB{R: 0, G: 255, B: 136}) {
		t.Errorf("Expected (0, 255, 136), got %+v", c)
	}
	c = ParseAccent("abc")
	if c != (RGB{R: 170, G: 187, B: 204}) {
		t.Errorf("Expected (170, 187, 204), got %+v", c)
	}
}

func TestParseAccent_FallsBackToGreen(t *testing.T) {
	green := RGB{R: 0x33, G: 0xFF, B: 0x33}
	for _, in := range []string{"", "#", "zzzzzz", "#12345", "#1234567"} {
		if got := ParseAccent(in); got != green {
			t.Errorf("Expected default green for %q, got %+v", in, got)
		}
	}
}

func TestNewTheme(t *testing.T) {
	th := NewTheme("#123456")
	if th.Accent != (RGB{R: 0x12, G: 0x34, B: 0x56}) {
		t.Errorf("Unexpected accent %+v", th.Accent)
	}
	if th.FrameColor.A != 0.04 {
		t.Errorf("Expected frame alpha 0.04, got %f", th.FrameColor.A)
	}
}
