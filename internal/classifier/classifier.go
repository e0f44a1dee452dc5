// Package classifier wraps the external digit-classification capability. The
// model is loaded once at process start and held for the process lifetime;
// everything else in the pipeline receives it as an injected interface so
// tests can substitute a double.
package classifier

import (
	"context"

	"gocv.io/x/gocv"
)

// Classes is the number of digit classes the model distinguishes (0-9).
const Classes = 10

// Classifier scores a batch of fixed-size grayscale glyphs and returns one
// probability vector over the digit classes per glyph, in input order.
type Classifier interface {
	Classify(ctx context.Context, glyphs []gocv.Mat) ([][]float32, error)
	Close() error
}

// Candidate reduces a batch of probability vectors to the candidate number
// string: each vector contributes its most likely digit, concatenated in
// sequence order. No confidence threshold is applied here; filtering is the
// matcher's job.
func Candidate(probs [][]float32) string {
	digits := make([]byte, len(probs))
	for i, vector := range probs {
		digits[i] = '0' + byte(argmax(vector))
	}
	return string(digits)
}

func argmax(vector []float32) int {
	best := 0
	for i, v := range vector {
		if v > vector[best] {
			best = i
		}
	}
	return best
}
