package classifier

import (
	"context"
	"fmt"
	"image"
	"sync"

	"regatta-tracker/internal/constants"

	"github.com/rs/zerolog"
	"gocv.io/x/gocv"
)

// ONNXClassifier runs digit inference through an ONNX model via the OpenCV
// DNN module. A single network instance is shared across requests; Forward is
// not reentrant, so calls serialize on a mutex.
type ONNXClassifier struct {
	mu     sync.Mutex
	net    gocv.Net
	logger zerolog.Logger
}

func NewONNX(modelPath string, logger zerolog.Logger) (*ONNXClassifier, error) {
	net := gocv.ReadNetFromONNX(modelPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load ONNX model from %s", modelPath)
	}

	logger.Info().Str("model_path", modelPath).Msg("digit classification model loaded")

	return &ONNXClassifier{net: net, logger: logger}, nil
}

func (c *ONNXClassifier) Classify(ctx context.Context, glyphs []gocv.Mat) ([][]float32, error) {
	if len(glyphs) == 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blob := gocv.NewMat()
	defer blob.Close()
	gocv.BlobFromImages(glyphs, &blob, 1.0/255.0,
		image.Pt(constants.GlyphCellSize, constants.GlyphCellSize),
		gocv.NewScalar(0, 0, 0, 0), false, false, gocv.MatTypeCV32F)

	c.mu.Lock()
	c.net.SetInput(blob, "")
	out := c.net.Forward("")
	c.mu.Unlock()
	defer out.Close()

	if out.Rows() != len(glyphs) {
		return nil, fmt.Errorf("classifier returned %d rows for %d glyphs", out.Rows(), len(glyphs))
	}

	probs := make([][]float32, len(glyphs))
	for i := range glyphs {
		vector := make([]float32, Classes)
		for j := 0; j < Classes; j++ {
			vector[j] = out.GetFloatAt(i, j)
		}
		probs[i] = vector
	}
	return probs, nil
}

func (c *ONNXClassifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.net.Close()
}
