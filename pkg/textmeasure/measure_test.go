package textmeasure

import (
	"testing"

	"github.com/matzehuels/letterboard/pkg/errors"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name string
		text string
		size float64
		want float64
	}{
		{name: "single char", text: "A", size: 100, want: 60},
		{name: "word", text: "Craft", size: 10, want: 30},
		{name: "multibyte runes", text: "é☕", size: 10, want: 12},
		{name: "empty", text: "", size: 50, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Estimate(tt.text, tt.size); got != tt.want {
				t.Errorf("Estimate(%q, %v) = %v, want %v", tt.text, tt.size, got, tt.want)
			}
			if got := (Estimator{}).Measure(tt.text, tt.size, "any"); got != tt.want {
				t.Errorf("Estimator.Measure(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMeasureFunc(t *testing.T) {
	var calls int
	m := MeasureFunc(func(text string, size float64, family string) float64 {
		calls++
		return 7
	})
	if got := m.Measure("x", 10, "f"); got != 7 || calls != 1 {
		t.Errorf("MeasureFunc.Measure = %v (calls %d)", got, calls)
	}
}

func TestFontMeasurer(t *testing.T) {
	m, err := NewFontMeasurer(nil)
	if err != nil {
		t.Fatalf("NewFontMeasurer: %v", err)
	}

	wide := m.Measure("W", 64, DefaultFontFamily)
	narrow := m.Measure("i", 64, DefaultFontFamily)
	if wide <= 0 || narrow <= 0 {
		t.Fatalf("widths should be positive: W=%v i=%v", wide, narrow)
	}
	if wide <= narrow {
		t.Errorf("W (%v) should be wider than i (%v)", wide, narrow)
	}

	big := m.Measure("W", 128, DefaultFontFamily)
	if big <= wide {
		t.Errorf("larger size should measure wider: %v <= %v", big, wide)
	}

	if again := m.Measure("W", 64, DefaultFontFamily); again != wide {
		t.Errorf("cached face changed result: %v vs %v", again, wide)
	}
}

func TestFontMeasurerDegrades(t *testing.T) {
	m, err := NewFontMeasurer(nil)
	if err != nil {
		t.Fatalf("NewFontMeasurer: %v", err)
	}

	if got := m.Measure("", 40, "x"); got != 0 {
		t.Errorf("empty text = %v, want 0", got)
	}
	if got := m.Measure("AB", 0, "x"); got != Estimate("AB", 0) {
		t.Errorf("zero size = %v, want estimate", got)
	}
	if got := m.Measure("AB", -5, "x"); got != Estimate("AB", -5) {
		t.Errorf("negative size = %v, want estimate", got)
	}
}

func TestNewFontMeasurerInvalid(t *testing.T) {
	_, err := NewFontMeasurer([]byte("not a font"))
	if err == nil {
		t.Fatal("expected error for invalid font data")
	}
	if !errors.Is(err, errors.ErrCodeFontLoad) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeFontLoad)
	}
}

func TestRegisterInvalid(t *testing.T) {
	m, err := NewFontMeasurer(nil)
	if err != nil {
		t.Fatalf("NewFontMeasurer: %v", err)
	}
	if err := m.Register("broken", []byte{0, 1, 2}); !errors.Is(err, errors.ErrCodeFontLoad) {
		t.Errorf("Register invalid font error = %v", err)
	}
}
