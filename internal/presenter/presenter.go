package presenter

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/pokeapp/poke-viewer/internal/fetch"
	"github.com/pokeapp/poke-viewer/internal/model"
)

// ChainIDPrefix prefixes the correlation ID of each fetch chain in log output
const ChainIDPrefix = "chain-"

// Option configures a Presenter
type Option func(*Presenter)

// WithDispatcher sets the function notifications are delivered through. The UI
// passes fyne.Do so the delegate always runs on the main goroutine.
func WithDispatcher(dispatch func(func())) Option {
	return func(p *Presenter) {
		if dispatch != nil {
			p.dispatch = dispatch
		}
	}
}

// WithImageDecoder replaces the decoder applied to fetched artwork bytes
func WithImageDecoder(decode func([]byte) (image.Image, error)) Option {
	return func(p *Presenter) {
		if decode != nil {
			p.decode = decode
		}
	}
}

// Presenter orchestrates resource and artwork fetches for the current ID.
// It is driven by a single caller (the UI); resourceID is not guarded.
type Presenter struct {
	service    fetch.Servicer
	resourceID int
	delegate   Delegate
	dispatch   func(func())
	decode     func([]byte) (image.Image, error)
}

// NewPresenter creates a presenter starting at resourceID
func NewPresenter(service fetch.Servicer, resourceID int, opts ...Option) *Presenter {
	p := &Presenter{
		service:    service,
		resourceID: resourceID,
		dispatch:   func(f func()) { f() },
		decode:     DecodeImage,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetDelegate sets the receiver of notifications. A nil delegate turns
// notifications into no-ops.
func (p *Presenter) SetDelegate(delegate Delegate) {
	p.delegate = delegate
}

// ResourceID returns the current resource ID
func (p *Presenter) ResourceID() int {
	return p.resourceID
}

// FetchResource starts a fetch chain for the current ID
func (p *Presenter) FetchResource() <-chan struct{} {
	return p.startChain(p.resourceID)
}

// UpdateID replaces the current ID and starts a fetch chain for it. Chains
// already in flight keep running; whichever finishes last wins.
func (p *Presenter) UpdateID(resourceID int) <-chan struct{} {
	p.resourceID = resourceID
	return p.startChain(resourceID)
}

// startChain runs one chain in the background. The ID is captured here so the
// caption always reflects the ID the request was issued with.
func (p *Presenter) startChain(resourceID int) <-chan struct{} {
	done := make(chan struct{})
	chainID := generateChainID()

	go func() {
		defer close(done)
		p.runChain(chainID, resourceID)
	}()

	return done
}

// runChain fetches the resource, then its artwork
func (p *Presenter) runChain(chainID string, resourceID int) {
	ctx := context.Background()

	resource, err := p.service.GetResource(ctx, resourceID)
	if err != nil {
		log.Printf("%s: failed to get resource %d: %v", chainID, resourceID, err)
		p.notify(func(d Delegate) { d.DisplayError() })
		return
	}

	viewModel := model.NewViewModel(*resource, resourceID)
	p.notify(func(d Delegate) { d.DisplayResource(viewModel) })

	data, err := p.service.GetImage(ctx, resource.ImageURL)
	if err != nil {
		log.Printf("%s: failed to get image for resource %d: %v", chainID, resourceID, err)
		p.notify(func(d Delegate) { d.DisplayError() })
		return
	}

	img, err := p.decode(data)
	if err != nil {
		log.Printf("%s: failed to decode image for resource %d: %v", chainID, resourceID, err)
		p.notify(func(d Delegate) { d.DisplayError() })
		return
	}

	p.notify(func(d Delegate) { d.DisplayImage(img) })
}

// notify calls f with the delegate, if any, on the dispatcher
func (p *Presenter) notify(f func(Delegate)) {
	p.dispatch(func() {
		if p.delegate != nil {
			f(p.delegate)
		}
	})
}

// DecodeImage decodes PNG, JPEG, GIF, BMP or TIFF bytes. Failures wrap
// fetch.ErrDecode so artwork and resource decode errors share one taxonomy.
func DecodeImage(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fetch.ErrDecode, err)
	}
	return img, nil
}

// generateChainID generates a time-ordered correlation ID for a fetch chain
func generateChainID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(ChainIDPrefix+"%d", time.Now().UnixNano())
	}
	return ChainIDPrefix + id.String()
}
