package vision

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"gocv.io/x/gocv"

	"regatta-tracker/internal/constants"
)

// encodeJPEG renders a light background with dark blobs and encodes it, so
// Normalize sees something a finish-line camera could plausibly produce.
func encodeJPEG(t *testing.T, width, height int, marks []image.Rectangle) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	for _, mark := range marks {
		for y := mark.Min.Y; y < mark.Max.Y; y++ {
			for x := mark.Min.X; x < mark.Max.X; x++ {
				img.Set(x, y, color.Black)
			}
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("failed to encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizeCanonicalOutput(t *testing.T) {
	raw := encodeJPEG(t, 640, 480, []image.Rectangle{image.Rect(100, 100, 200, 300)})

	binary, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	defer binary.Close()

	if binary.Cols() != constants.CanonicalWidth || binary.Rows() != constants.CanonicalHeight {
		t.Errorf("expected %dx%d output, got %dx%d",
			constants.CanonicalWidth, constants.CanonicalHeight, binary.Cols(), binary.Rows())
	}
	if binary.Channels() != 1 {
		t.Errorf("expected a single-channel image, got %d channels", binary.Channels())
	}
}

func TestNormalizeStretchesAspectRatio(t *testing.T) {
	// A tall input still comes out at the canonical square.
	raw := encodeJPEG(t, 200, 800, nil)

	binary, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	defer binary.Close()

	if binary.Cols() != constants.CanonicalWidth || binary.Rows() != constants.CanonicalHeight {
		t.Errorf("expected canonical square, got %dx%d", binary.Cols(), binary.Rows())
	}
}

func TestNormalizeMalformedBytes(t *testing.T) {
	for _, raw := range [][]byte{nil, []byte("not an image at all")} {
		if _, err := Normalize(raw); !errors.Is(err, ErrMalformedImage) {
			t.Errorf("expected ErrMalformedImage, got %v", err)
		}
	}
}

// drawBinary builds a canonical-size binary image with filled white blobs,
// the shape Normalize hands to the segmenter.
func drawBinary(blobs []image.Rectangle) gocv.Mat {
	binary := gocv.NewMatWithSize(constants.CanonicalHeight, constants.CanonicalWidth, gocv.MatTypeCV8U)
	for _, blob := range blobs {
		gocv.Rectangle(&binary, blob, color.RGBA{R: 255, G: 255, B: 255, A: 255}, -1)
	}
	return binary
}

func TestSegmentDigitsOrdersLeftToRight(t *testing.T) {
	// Blobs are drawn right to left; segmentation must restore reading order.
	binary := drawBinary([]image.Rectangle{
		image.Rect(300, 100, 340, 180),
		image.Rect(180, 100, 220, 180),
		image.Rect(60, 100, 100, 180),
	})
	defer binary.Close()

	boxes := SegmentDigits(binary)
	if len(boxes) != 3 {
		t.Fatalf("expected 3 boxes, got %d", len(boxes))
	}
	for i := 1; i < len(boxes); i++ {
		if boxes[i].Min.X <= boxes[i-1].Min.X {
			t.Errorf("boxes out of reading order: %v", boxes)
		}
	}
}

func TestSegmentDigitsPadsBoxes(t *testing.T) {
	blob := image.Rect(100, 100, 140, 180)
	binary := drawBinary([]image.Rectangle{blob})
	defer binary.Close()

	boxes := SegmentDigits(binary)
	if len(boxes) != 1 {
		t.Fatalf("expected 1 box, got %d", len(boxes))
	}

	box := boxes[0]
	if box.Min.X > blob.Min.X-constants.ContourPadding ||
		box.Max.X < blob.Max.X+constants.ContourPadding-1 {
		t.Errorf("box %v is not padded around blob %v", box, blob)
	}
}

func TestSegmentDigitsClampsPaddingToImage(t *testing.T) {
	// A blob at the edge must not produce a box outside the image.
	binary := drawBinary([]image.Rectangle{image.Rect(2, 2, 40, 60)})
	defer binary.Close()

	boxes := SegmentDigits(binary)
	if len(boxes) != 1 {
		t.Fatalf("expected 1 box, got %d", len(boxes))
	}

	bounds := image.Rect(0, 0, constants.CanonicalWidth, constants.CanonicalHeight)
	if !boxes[0].In(bounds) {
		t.Errorf("box %v escapes the image bounds %v", boxes[0], bounds)
	}
}

func TestSegmentDigitsEmptyImage(t *testing.T) {
	binary := drawBinary(nil)
	defer binary.Close()

	if boxes := SegmentDigits(binary); len(boxes) != 0 {
		t.Errorf("expected no boxes on a blank image, got %v", boxes)
	}
}

func TestCropGlyphsCellSize(t *testing.T) {
	binary := drawBinary([]image.Rectangle{
		image.Rect(60, 100, 100, 180),
		image.Rect(180, 100, 220, 180),
	})
	defer binary.Close()

	boxes := SegmentDigits(binary)
	glyphs := CropGlyphs(binary, boxes)
	defer CloseGlyphs(glyphs)

	if len(glyphs) != len(boxes) {
		t.Fatalf("expected %d glyphs, got %d", len(boxes), len(glyphs))
	}
	for i, glyph := range glyphs {
		if glyph.Cols() != constants.GlyphCellSize || glyph.Rows() != constants.GlyphCellSize {
			t.Errorf("glyph %d is %dx%d, want %dx%d",
				i, glyph.Cols(), glyph.Rows(), constants.GlyphCellSize, constants.GlyphCellSize)
		}
	}
}
