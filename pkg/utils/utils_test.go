package utils

import "testing"

func TestFormatClock(t *testing.T) {
	cases := map[float64]string{
		0:       "0:00",
		999:     "0:00",
		61000:   "1:01",
		3599999: "59:59",
		-5:      "0:00",
	}
	for in, want := range cases {
		if got := FormatClock(in); got != want {
			t.Errorf("FormatClock(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for in, want := range cases {
		if got := ToRoman(in); got != want {
			t.Errorf("ToRoman(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestClampInt(t *testing.T) {
	if ClampInt(-3, 0, 10) != 0 || ClampInt(30, 0, 10) != 10 || ClampInt(4, 0, 10) != 4 {
		t.Errorf("ClampInt misbehaves")
	}
}
