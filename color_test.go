package mandel

import (
	"image/color"
	"testing"
)

func TestColorizeInterior(t *testing.T) {
	if got := Colorize(Interior, 24); got != (Gray{}) {
		t.Errorf("Colorize(Interior) = %v, want black", got)
	}
}

func TestColorizeFarOutsidePoint(t *testing.T) {
	res, err := Evaluate(Complex{5, 5}, 18, 3)
	if err != nil {
		t.Fatal(err)
	}
	got := Colorize(res, 24)
	if got != (Gray{13, 13, 13}) {
		t.Errorf("Colorize = %v, want {13 13 13}", got)
	}
}

func TestColorizeMonotonicAndClamped(t *testing.T) {
	const bound = 24
	prev := Gray{}
	for mu := -10.0; mu <= 3*bound; mu += 0.125 {
		got := Colorize(Result{Escaped: true, Mu: mu}, bound)
		if got[0] != got[1] || got[1] != got[2] {
			t.Fatalf("mu=%v: channels differ: %v", mu, got)
		}
		if got[0] < prev[0] {
			t.Fatalf("mu=%v: %v darker than previous %v", mu, got, prev)
		}
		prev = got
	}

	tests := []struct {
		mu   float64
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{bound / 2, 128},
		{bound, 255},
		{bound + 0.5, 255},
		{1e9, 255},
	}
	for _, tt := range tests {
		if got := Colorize(Result{Escaped: true, Mu: tt.mu}, bound); got[0] != tt.want {
			t.Errorf("Colorize(mu=%v) = %v, want %d", tt.mu, got, tt.want)
		}
	}
}

func TestGrayIsOpaque(t *testing.T) {
	got := color.RGBAModel.Convert(Gray{10, 10, 10}).(color.RGBA)
	if want := (color.RGBA{10, 10, 10, 255}); got != want {
		t.Errorf("converted = %v, want %v", got, want)
	}
}
