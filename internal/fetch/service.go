package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pokeapp/poke-viewer/internal/model"
)

// DefaultBaseURL is the public PokeAPI endpoint resources are fetched from
const DefaultBaseURL = "https://pokeapi.co/api/v2/pokemon/"

// Service fetches resources and their artwork over a Transport
type Service struct {
	baseURL   string
	transport Transport
}

// NewService creates a new resource service. The resource URL is the base URL
// followed by the decimal ID, so baseURL normally ends with a slash.
func NewService(baseURL string, transport Transport) *Service {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Service{
		baseURL:   baseURL,
		transport: transport,
	}
}

// BaseURL returns the configured base path
func (s *Service) BaseURL() string {
	return s.baseURL
}

// GetResource fetches the resource with the given ID
func (s *Service) GetResource(ctx context.Context, id int) (*model.Resource, error) {
	resourceURL, err := parseAbsoluteURL(s.baseURL + strconv.Itoa(id))
	if err != nil {
		return nil, err
	}

	body, err := s.transport.Get(ctx, resourceURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}

	if len(body) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidData, resourceURL)
	}

	resource, err := model.ParseResource(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return resource, nil
}

// GetImage fetches the raw bytes behind rawURL. The bytes are not checked to
// be a valid image.
func (s *Service) GetImage(ctx context.Context, rawURL string) ([]byte, error) {
	imageURL, err := parseAbsoluteURL(rawURL)
	if err != nil {
		return nil, err
	}

	// Only the body matters here: a transport failure and an empty response
	// are both reported as missing data.
	body, err := s.transport.Get(ctx, imageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	if len(body) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidData, imageURL)
	}

	return body, nil
}

// parseAbsoluteURL validates that raw is an absolute URL with a host
func parseAbsoluteURL(raw string) (string, error) {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q is not absolute", ErrInvalidURL, raw)
	}

	return u.String(), nil
}
