package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), "projectile.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadImage(t *testing.T) {
	h := LoadImage(writePNG(t, 12, 12), nil)
	if err := h.Wait(); err != nil {
		t.Fatalf("Wait() = %v", err)
	}
	if !h.Ready() {
		t.Fatal("handle not ready after a successful load")
	}
	if got := h.Image().Bounds().Dx(); got != 12 {
		t.Errorf("width = %d, expected 12", got)
	}
}

func TestLoadImageFailures(t *testing.T) {
	garbage := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"empty path", "", false},
		{"missing file", filepath.Join(t.TempDir(), "nope.png"), true},
		{"undecodable", garbage, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := LoadImage(tc.path, nil)
			err := h.Wait()
			if (err != nil) != tc.wantErr {
				t.Errorf("Wait() error = %v, wantErr %v", err, tc.wantErr)
			}
			if h.Ready() || h.Image() != nil {
				t.Error("failed handle reports an image")
			}
		})
	}
}

func TestNilAndPreloadedHandles(t *testing.T) {
	var h *ImageHandle
	if h.Ready() || h.Image() != nil {
		t.Error("nil handle should never be ready")
	}

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	p := FromImage(img)
	if !p.Ready() || p.Wait() != nil {
		t.Error("preloaded handle should be ready")
	}
}
