package fbdraw

import (
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Color
	}{
		{name: "opaque rgb", in: "#112233", want: Color{R: 0x11, G: 0x22, B: 0x33, A: 0xff}},
		{name: "rgba", in: "#11223344", want: Color{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
		{name: "uppercase", in: "#AABBCCDD", want: Color{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xdd}},
		{name: "black", in: "#000000", want: Color{A: 0xff}},
		{name: "white", in: "#ffffff", want: Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "too short", in: "#12345"},
		{name: "too long", in: "#1234567890"},
		{name: "missing marker", in: "11223344x"},
		{name: "non-hex digits", in: "#11223g"},
		{name: "marker only pads length", in: "##12233"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHex(tt.in)
			if err == nil {
				t.Fatalf("ParseHex(%q) expected error", tt.in)
			}
			var colorErr *InvalidColorError
			if !errors.As(err, &colorErr) {
				t.Fatalf("ParseHex(%q) error type = %T, want *InvalidColorError", tt.in, err)
			}
			if colorErr.Value != tt.in {
				t.Errorf("error carries value %q, want %q", colorErr.Value, tt.in)
			}
			if colorErr.Reason == "" {
				t.Error("error reason is empty")
			}
		})
	}
}

func TestColor_HexRoundtrip(t *testing.T) {
	for _, in := range []string{"#112233", "#11223344", "#AaBbCcDd", "#ffffff", "#00000000"} {
		c, err := ParseHex(in)
		if err != nil {
			t.Fatalf("ParseHex(%q) error: %v", in, err)
		}
		c2, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%q) error: %v", c.Hex(), err)
		}
		if c2 != c {
			t.Errorf("round trip of %q: %+v != %+v", in, c2, c)
		}
	}
}

func TestColor_Scale(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		k    float64
		want Color
	}{
		{name: "identity", c: Color{200, 100, 50, 255}, k: 1, want: Color{200, 100, 50, 255}},
		{name: "zero keeps alpha", c: Color{200, 100, 50, 128}, k: 0, want: Color{0, 0, 0, 128}},
		{name: "half truncates", c: Color{128, 128, 128, 128}, k: 0.5, want: Color{64, 64, 64, 128}},
		{name: "alpha untouched", c: Color{255, 255, 255, 7}, k: 0.25, want: Color{63, 63, 63, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Scale(tt.k); got != tt.want {
				t.Errorf("%+v.Scale(%v) = %+v, want %+v", tt.c, tt.k, got, tt.want)
			}
		})
	}
}

func TestRGB_FullAlpha(t *testing.T) {
	if got := RGB(1, 2, 3); got != (Color{1, 2, 3, 255}) {
		t.Errorf("RGB(1, 2, 3) = %+v", got)
	}
	if got := RGBA(1, 2, 3, 4); got != (Color{1, 2, 3, 4}) {
		t.Errorf("RGBA(1, 2, 3, 4) = %+v", got)
	}
}
