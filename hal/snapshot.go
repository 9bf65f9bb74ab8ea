package hal

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// frameImage returns the presented frame as an RGBA image.
func (f *hostFramebuffer) frameImage() *image.RGBA {
	scratch := make([]byte, len(f.front))
	f.snapshotRGB565(scratch)
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	rgbaFromRGB565(img.Pix, scratch)
	return img
}

// EncodePNG writes the presented frame of fb as PNG.
func EncodePNG(w io.Writer, fb Framebuffer) error {
	hfb, ok := fb.(*hostFramebuffer)
	if !ok {
		return fmt.Errorf("png: %w for %T", ErrNotImplemented, fb)
	}
	return png.Encode(w, hfb.frameImage())
}

func writeSnapshot(path string, fb *hostFramebuffer) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot %q: %w", path, err)
	}
	if err := EncodePNG(f, fb); err != nil {
		_ = f.Close()
		return fmt.Errorf("snapshot %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot %q: %w", path, err)
	}
	return nil
}
