package snapshot

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/particle-field/internal/particles"
)

var bg = color.NRGBA{R: 10, G: 10, B: 12, A: 255}

func sameRGB(c color.Color, want color.NRGBA) bool {
	r, g, b, _ := c.RGBA()
	return uint8(r>>8) == want.R && uint8(g>>8) == want.G && uint8(b>>8) == want.B
}

func TestRenderHighlightsPointer(t *testing.T) {
	f := particles.NewSeededField(particles.DefaultParams(), 5)
	f.Resize(1024, 768)
	p := f.Particles()[0].Pos
	f.SetPointer(p.X, p.Y)

	c, stats := Render(f, bg, 0.7)
	if stats.NearParticles == 0 {
		t.Fatal("no particle highlighted")
	}
	img := c.Image()
	if b := img.Bounds(); b.Dx() != 1024 || b.Dy() != 768 {
		t.Fatalf("bounds = %v", b)
	}
	if sameRGB(img.At(int(p.X), int(p.Y)), bg) {
		t.Errorf("pixel under highlighted particle at %v is background", p)
	}
}

func TestRenderEmptyField(t *testing.T) {
	f := particles.NewSeededField(particles.DefaultParams(), 1)
	f.Resize(40, 30)

	c, stats := Render(f, bg, 1)
	if stats.Particles != 0 {
		t.Fatalf("stats = %+v", stats)
	}
	img := c.Image()
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			if !sameRGB(img.At(x, y), bg) {
				t.Fatalf("pixel %d,%d = %v", x, y, img.At(x, y))
			}
		}
	}
}

func TestSave(t *testing.T) {
	f := particles.NewSeededField(particles.DefaultParams(), 2)
	f.Resize(320, 240)
	path := filepath.Join(t.TempDir(), "field.png")
	if err := Save(f, path, bg, 0.7); err != nil {
		t.Fatal(err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	img, err := png.Decode(in)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Fatalf("decoded bounds = %v", b)
	}
}

func TestSaveBadPath(t *testing.T) {
	f := particles.NewSeededField(particles.DefaultParams(), 2)
	f.Resize(32, 32)
	if err := Save(f, filepath.Join(t.TempDir(), "missing", "x.png"), bg, 1); err == nil {
		t.Fatal("expected error")
	}
}
