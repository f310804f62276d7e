package tagpix

import (
	"fmt"
	"image"
	"io"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"k8s.io/klog/v2"
)

// PreviewQuality is the JPEG quality used when a preview is encoded.
var PreviewQuality = 85

// FitSize scales w x h so that the longer side equals max, keeping the aspect ratio.
// The shorter side is truncated toward zero.
func FitSize(w, h, max int) (int, int) {
	if w > h {
		return max, max * h / w
	}
	return max * w / h, max
}

// Preview decodes the image at path and resizes it so its longer side is max pixels.
func Preview(path string, max int) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imgio.Open: %w", err)
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%s: empty image %+v", path, b)
	}

	x, y := FitSize(b.Dx(), b.Dy(), max)
	// Very thin images would otherwise collapse to zero pixels.
	x = max1(x)
	y = max1(y)

	klog.V(1).Infof("resizing %s: %dx%d -> %dx%d", path, b.Dx(), b.Dy(), x, y)
	return transform.Resize(img, x, y, transform.Lanczos), nil
}

// EncodePreview writes img to w as a JPEG.
func EncodePreview(w io.Writer, img image.Image) error {
	if err := imgio.JPEGEncoder(PreviewQuality)(w, img); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
