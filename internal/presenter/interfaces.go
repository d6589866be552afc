package presenter

import (
	"image"

	"github.com/pokeapp/poke-viewer/internal/model"
)

// Presenting is what the UI layer drives. Both calls start an independent fetch
// chain and return a channel that is closed once the chain has dispatched its
// last notification.
type Presenting interface {
	FetchResource() <-chan struct{}
	UpdateID(resourceID int) <-chan struct{}
}

// Delegate receives the outcome of a fetch chain
type Delegate interface {
	DisplayResource(viewModel model.ViewModel)
	DisplayImage(img image.Image)
	DisplayError()
}
