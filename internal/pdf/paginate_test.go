package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

// encodePNG renders a solid-colored test image.
func encodePNG(t *testing.T, width, height int, c color.Color) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	t.Run("page dimensions follow the a4 aspect", func(t *testing.T) {
		t.Parallel()

		// Width 100 gives a page height of 141 (100 * 297/210).
		pages, err := paginate(encodePNG(t, 100, 300, color.Black))
		if err != nil {
			t.Fatalf("paginate: %v", err)
		}
		if len(pages) != 3 {
			t.Fatalf("pages = %d, want 3", len(pages))
		}
		for i, page := range pages {
			img, err := png.Decode(bytes.NewReader(page))
			if err != nil {
				t.Fatalf("page %d is not valid PNG: %v", i, err)
			}
			if got := img.Bounds().Dx(); got != 100 {
				t.Errorf("page %d width = %d, want 100", i, got)
			}
			if got := img.Bounds().Dy(); got != 141 {
				t.Errorf("page %d height = %d, want 141", i, got)
			}
		}
	})

	t.Run("short capture yields a single page", func(t *testing.T) {
		t.Parallel()

		pages, err := paginate(encodePNG(t, 100, 50, color.Black))
		if err != nil {
			t.Fatalf("paginate: %v", err)
		}
		if len(pages) != 1 {
			t.Fatalf("pages = %d, want 1", len(pages))
		}
	})

	t.Run("last page is padded with white", func(t *testing.T) {
		t.Parallel()

		pages, err := paginate(encodePNG(t, 100, 50, color.Black))
		if err != nil {
			t.Fatalf("paginate: %v", err)
		}
		img, err := png.Decode(bytes.NewReader(pages[0]))
		if err != nil {
			t.Fatalf("decode page: %v", err)
		}

		// Content region stays black, padding below it is white.
		if r, g, b, _ := img.At(50, 25).RGBA(); r != 0 || g != 0 || b != 0 {
			t.Error("content region is not preserved")
		}
		if r, g, b, _ := img.At(50, 100).RGBA(); r != 0xffff || g != 0xffff || b != 0xffff {
			t.Error("padding region is not white")
		}
	})

	t.Run("invalid input is rejected", func(t *testing.T) {
		t.Parallel()

		if _, err := paginate([]byte("not a png")); err == nil {
			t.Error("expected error for invalid PNG data")
		}
	})
}

func TestBuildPDF(t *testing.T) {
	t.Parallel()

	pages := [][]byte{
		encodePNG(t, 100, 141, color.White),
		encodePNG(t, 100, 141, color.Black),
	}

	var buf bytes.Buffer
	if err := buildPDF(&buf, pages); err != nil {
		t.Fatalf("buildPDF: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF-") {
		t.Error("output does not start with a PDF header")
	}
}
