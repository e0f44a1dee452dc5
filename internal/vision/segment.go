package vision

import (
	"image"
	"sort"

	"regatta-tracker/internal/constants"

	"gocv.io/x/gocv"
)

// SegmentDigits finds the candidate digit glyphs in a binary image. Only
// external contours count; holes inside a glyph (the loop of an 8, say) are
// not glyphs themselves. Each bounding box is padded to avoid clipping
// anti-aliased edges, clamped to the image, and the boxes are ordered left to
// right to recover reading order. Returns an empty slice when the image holds
// no contours.
func SegmentDigits(binary gocv.Mat) []image.Rectangle {
	contours := gocv.FindContours(binary, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	boxes := make([]image.Rectangle, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		rect := gocv.BoundingRect(contours.At(i))
		boxes = append(boxes, padBox(rect, binary.Cols(), binary.Rows()))
	}

	sort.SliceStable(boxes, func(i, j int) bool {
		return boxes[i].Min.X < boxes[j].Min.X
	})

	return boxes
}

func padBox(rect image.Rectangle, width, height int) image.Rectangle {
	padded := image.Rect(
		rect.Min.X-constants.ContourPadding,
		rect.Min.Y-constants.ContourPadding,
		rect.Max.X+constants.ContourPadding,
		rect.Max.Y+constants.ContourPadding,
	)
	return padded.Intersect(image.Rect(0, 0, width, height))
}

// CropGlyphs extracts each padded box from the binary image and rescales it
// to the classifier's glyph cell size. Area interpolation is used because the
// crops are almost always downscaled. The caller owns the returned Mats.
func CropGlyphs(binary gocv.Mat, boxes []image.Rectangle) []gocv.Mat {
	glyphs := make([]gocv.Mat, 0, len(boxes))
	for _, box := range boxes {
		region := binary.Region(box)

		glyph := gocv.NewMat()
		gocv.Resize(region, &glyph, image.Pt(constants.GlyphCellSize, constants.GlyphCellSize), 0, 0, gocv.InterpolationArea)
		region.Close()

		glyphs = append(glyphs, glyph)
	}
	return glyphs
}

// CloseGlyphs releases every Mat produced by CropGlyphs.
func CloseGlyphs(glyphs []gocv.Mat) {
	for i := range glyphs {
		glyphs[i].Close()
	}
}
