package fetch

import (
	"context"

	"github.com/pokeapp/poke-viewer/internal/model"
)

// Servicer defines the interface for the resource service.
type Servicer interface {
	// GetResource fetches and decodes the resource with the given ID
	GetResource(ctx context.Context, id int) (*model.Resource, error)

	// GetImage fetches the raw bytes behind an image URL
	GetImage(ctx context.Context, rawURL string) ([]byte, error)
}

// Transport performs a single GET. A nil or empty body with a nil error means
// the response carried no body.
type Transport interface {
	Get(ctx context.Context, url string) ([]byte, error)
}
