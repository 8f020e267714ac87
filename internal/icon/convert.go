package icon

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/nfnt/resize"

	"github.com/Norgate-AV/wincenter/internal/desktop"
)

// FromBGRX converts a blue-green-red-padding bitmap into an opaque RGBA
// image with the first row at the top
func FromBGRX(b desktop.Bitmap) (*image.RGBA, error) {
	if b.Width <= 0 || b.Height <= 0 {
		return nil, fmt.Errorf("%w: bitmap is %dx%d", desktop.ErrInvalidArgument, b.Width, b.Height)
	}

	stride := b.Width * 4
	if len(b.Pix) < stride*b.Height {
		return nil, fmt.Errorf("%w: bitmap has %d bytes, want %d", desktop.ErrInvalidArgument, len(b.Pix), stride*b.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))

	for y := 0; y < b.Height; y++ {
		srcRow := y
		if b.BottomUp {
			srcRow = b.Height - 1 - y
		}

		src := b.Pix[srcRow*stride : srcRow*stride+stride]
		dst := img.Pix[y*img.Stride : y*img.Stride+stride]

		for x := 0; x < stride; x += 4 {
			dst[x+0] = src[x+2]
			dst[x+1] = src[x+1]
			dst[x+2] = src[x+0]
			dst[x+3] = 0xff
		}
	}

	return img, nil
}

// Resample scales img to size x size with a Lanczos filter
func Resample(img *image.RGBA, size int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return img
	}

	out := resize.Resize(uint(size), uint(size), img, resize.Lanczos3)
	if rgba, ok := out.(*image.RGBA); ok {
		return rgba
	}

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(rgba, rgba.Bounds(), out, out.Bounds().Min, draw.Src)

	return rgba
}

// EncodePNG writes img as a PNG
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode icon: %w", err)
	}

	return nil
}
