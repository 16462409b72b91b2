package snapshot

import (
	"path/filepath"
	"testing"

	"sphere-tracer/internal/variants"

	"github.com/anthonynsimon/bild/imgio"
)

func TestCapture_AdvancesTicks(t *testing.T) {
	v, err := variants.New("grok", variants.Options{Width: 16, Height: 16})
	if err != nil {
		t.Fatal(err)
	}
	img := Capture(v, 12)
	if got := v.State().Ticks; got != 12 {
		t.Errorf("ticks=%d, want 12", got)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("bounds %v, want 16x16", b)
	}
}

func TestSave_WritesScaledPNG(t *testing.T) {
	v, err := variants.New("gemini", variants.Options{Width: 10, Height: 8})
	if err != nil {
		t.Fatal(err)
	}
	img := Capture(v, 1)
	path := filepath.Join(t.TempDir(), "shots", "frame.png")
	if err := Save(img, path, 3); err != nil {
		t.Fatal(err)
	}

	out, err := imgio.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if b := out.Bounds(); b.Dx() != 30 || b.Dy() != 24 {
		t.Fatalf("saved %v, want 30x24", b)
	}
	r1, g1, b1, _ := out.At(15, 12).RGBA()
	r2, g2, b2, _ := img.At(5, 4).RGBA()
	if r1 != r2 || g1 != g2 || b1 != b2 {
		t.Error("scaled pixel does not match source")
	}
}

func TestSave_RejectsBadScale(t *testing.T) {
	v, err := variants.New("gemini", variants.Options{Width: 4, Height: 4})
	if err != nil {
		t.Fatal(err)
	}
	if err := Save(Capture(v, 0), filepath.Join(t.TempDir(), "x.png"), 0); err == nil {
		t.Error("expected error for scale 0")
	}
}
