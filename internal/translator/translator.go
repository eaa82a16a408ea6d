package translator

import "context"

// Provider performs a single remote translation. A "not found" answer
// does not exist at this boundary; providers either translate or fail.
type Provider interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}
