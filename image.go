package fbdraw

import (
	"bytes"
	"image"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a shape backed by a decoded image file. Pixels with source alpha
// exactly zero render as uncovered cells; everything else carries the
// decoded RGBA value.
type Image struct {
	img *image.NRGBA
}

// ImageFromPath decodes an image file into an [Image] shape. Any format
// registered with the image package is accepted; PNG, JPEG, GIF, BMP, TIFF
// and WebP are registered by this package. A decode failure returns a
// [*BadImageError] wrapping the codec's own error.
func ImageFromPath(path string) (*Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	return decodeImage(f, path)
}

// ImageFromBytes decodes an in-memory image buffer into an [Image] shape.
func ImageFromBytes(data []byte) (*Image, error) {
	return decodeImage(bytes.NewReader(data), "<memory>")
}

func decodeImage(r io.Reader, name string) (*Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, &BadImageError{Err: err}
	}

	bounds := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(img, img.Bounds(), src, bounds.Min, xdraw.Src)

	Logger().Debug("fbdraw: image decoded",
		"source", name, "format", format,
		"width", bounds.Dx(), "height", bounds.Dy())

	return &Image{img: img}, nil
}

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.img.Rect.Dx() }

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.img.Rect.Dy() }

// Render implements [Shape].
func (m *Image) Render() PixelGrid {
	w, h := m.Width(), m.Height()
	grid := make(PixelGrid, h)
	for y := 0; y < h; y++ {
		row := make([]Pixel, w)
		for x := 0; x < w; x++ {
			i := m.img.PixOffset(x, y)
			a := m.img.Pix[i+3]
			if a == 0 {
				continue
			}
			row[x] = Px(Color{
				R: m.img.Pix[i+0],
				G: m.img.Pix[i+1],
				B: m.img.Pix[i+2],
				A: a,
			})
		}
		grid[y] = row
	}
	return grid
}
