package classify

import "context"

// Label is a classification outcome: the predicted label and the model's
// confidence in [0,1].
type Label struct {
	Name       string
	Confidence float64
}

// Classifier abstracts the image-classification capability. It backs its own
// endpoint only; the search engine never calls it.
type Classifier interface {
	// Available reports whether the capability is configured.
	Available() bool
	// Classify runs inference on raw image bytes and returns the top label.
	Classify(ctx context.Context, image []byte) (Label, error)
}
