// Package assets loads optional external images. A handle starts empty and
// becomes ready once decoding finishes; callers draw a procedural fallback
// until then, or forever when loading fails.
package assets

import (
	"fmt"
	"image"
	_ "image/png" // register decoder
	"io"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/log"
	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/webp" // register decoder
)

// ImageHandle is an image that may not be loaded yet. Safe for concurrent use.
type ImageHandle struct {
	img  atomic.Pointer[image.Image]
	done chan struct{}
	err  error
}

// LoadImage decodes the file at path in the background. An empty path
// returns a handle that is never ready. Failures are logged and leave the
// handle empty.
func LoadImage(path string, logger *log.Logger) *ImageHandle {
	h := &ImageHandle{done: make(chan struct{})}
	if path == "" {
		close(h.done)
		return h
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	go func() {
		defer close(h.done)
		img, err := decodeFile(path)
		if err != nil {
			h.err = err
			logger.Warn("image unavailable, using fallback", "path", path, "err", err)
			return
		}
		h.img.Store(&img)
		logger.Debug("image loaded", "path", path, "size", img.Bounds().Size())
	}()
	return h
}

// FromImage returns a handle that is ready immediately.
func FromImage(img image.Image) *ImageHandle {
	h := &ImageHandle{done: make(chan struct{})}
	h.img.Store(&img)
	close(h.done)
	return h
}

// Ready reports whether the image can be drawn.
func (h *ImageHandle) Ready() bool {
	return h != nil && h.img.Load() != nil
}

// Image returns the decoded image, or nil when not ready.
func (h *ImageHandle) Image() image.Image {
	if h == nil {
		return nil
	}
	if p := h.img.Load(); p != nil {
		return *p
	}
	return nil
}

// Wait blocks until loading finishes and returns its error.
func (h *ImageHandle) Wait() error {
	<-h.done
	return h.err
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to decode %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("assets: %s image %s is empty", format, path)
	}
	return img, nil
}
