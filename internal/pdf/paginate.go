package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
)

// a4Aspect is the height/width ratio of an A4 page (297mm / 210mm).
const a4Aspect = 297.0 / 210.0

// paginate slices a full-page screenshot into A4-proportioned page images.
// Page height is derived from the capture width, so each slice fills an A4
// sheet edge to edge. The final page is padded with white to full height.
func paginate(screenshot []byte) ([][]byte, error) {
	src, err := png.Decode(bytes.NewReader(screenshot))
	if err != nil {
		return nil, fmt.Errorf("failed to decode screenshot: %w", err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("screenshot has no pixels")
	}

	pageHeight := int(float64(width) * a4Aspect)
	if pageHeight < 1 {
		pageHeight = 1
	}

	var pages [][]byte
	for top := 0; top < height; top += pageHeight {
		page := image.NewRGBA(image.Rect(0, 0, width, pageHeight))
		draw.Draw(page, page.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

		// Drawing clips against the source bounds, so a short final slice
		// keeps its white padding below the content.
		sliceHeight := min(pageHeight, height-top)
		draw.Draw(page, image.Rect(0, 0, width, sliceHeight), src,
			image.Pt(bounds.Min.X, bounds.Min.Y+top), draw.Src)

		var buf bytes.Buffer
		if err := png.Encode(&buf, page); err != nil {
			return nil, fmt.Errorf("failed to encode page image: %w", err)
		}
		pages = append(pages, buf.Bytes())
	}

	return pages, nil
}
