// Package vision turns a raw finish-line photograph into ordered digit glyphs
// ready for classification.
package vision

import (
	"errors"
	"image"

	"regatta-tracker/internal/constants"

	"gocv.io/x/gocv"
)

// ErrMalformedImage means the submitted bytes could not be decoded as an
// image. It is fatal to the whole recognition pipeline.
var ErrMalformedImage = errors.New("image bytes could not be decoded")

// Normalize rescales a photograph to the canonical processing resolution and
// binarizes it. The canonical size is a processing contract, not a crop, so
// the aspect ratio is not preserved. Adaptive thresholding separates digit ink
// from background under uneven lighting; ink ends up as foreground (white) so
// contour detection can pick the glyphs up directly. The caller owns the
// returned Mat.
func Normalize(raw []byte) (gocv.Mat, error) {
	img, err := gocv.IMDecode(raw, gocv.IMReadColor)
	if err != nil {
		return gocv.Mat{}, ErrMalformedImage
	}
	defer img.Close()
	if img.Empty() {
		return gocv.Mat{}, ErrMalformedImage
	}

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(img, &resized, image.Pt(constants.CanonicalWidth, constants.CanonicalHeight), 0, 0, gocv.InterpolationLinear)

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(resized, &gray, gocv.ColorBGRToGray)

	binary := gocv.NewMat()
	gocv.AdaptiveThreshold(gray, &binary, 255,
		gocv.AdaptiveThresholdMean, gocv.ThresholdBinaryInv,
		constants.AdaptiveBlockSize, constants.AdaptiveConstant)

	return binary, nil
}
