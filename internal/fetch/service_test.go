package fetch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pokeapp/poke-viewer/internal/fetch/mocks"
)

const bulbasaurJSON = `{"name":"bulbasaur","sprites":{"other":{"official-artwork":{"front_default":"https://img.example.com/1.png"}}}}`

func TestNewService(t *testing.T) {
	transport := &mocks.MockTransport{}

	service := NewService("", transport)
	assert.Equal(t, DefaultBaseURL, service.BaseURL())

	service = NewService("http://localhost:8080/api/v2/pokemon/", transport)
	assert.Equal(t, "http://localhost:8080/api/v2/pokemon/", service.BaseURL())
}

func TestService_GetResource(t *testing.T) {
	t.Run("successful fetch", func(t *testing.T) {
		transport := &mocks.MockTransport{}
		transport.On("Get", mock.Anything, "https://pokeapi.co/api/v2/pokemon/1").
			Return([]byte(bulbasaurJSON), nil)

		service := NewService(DefaultBaseURL, transport)
		resource, err := service.GetResource(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "bulbasaur", resource.Name)
		assert.Equal(t, "https://img.example.com/1.png", resource.ImageURL)
		transport.AssertExpectations(t)
	})

	t.Run("invalid base URL", func(t *testing.T) {
		transport := &mocks.MockTransport{}

		service := NewService("not a url/", transport)
		_, err := service.GetResource(context.Background(), 1)

		assert.ErrorIs(t, err, ErrInvalidURL)
		transport.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("transport error", func(t *testing.T) {
		transport := &mocks.MockTransport{}
		transport.On("Get", mock.Anything, "https://pokeapi.co/api/v2/pokemon/7").
			Return(nil, errors.New("connection refused"))

		service := NewService(DefaultBaseURL, transport)
		_, err := service.GetResource(context.Background(), 7)

		assert.ErrorIs(t, err, ErrRequest)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("absent body", func(t *testing.T) {
		transport := &mocks.MockTransport{}
		transport.On("Get", mock.Anything, mock.Anything).Return(nil, nil)

		service := NewService(DefaultBaseURL, transport)
		_, err := service.GetResource(context.Background(), 3)

		assert.ErrorIs(t, err, ErrInvalidData)
	})

	t.Run("missing artwork path", func(t *testing.T) {
		transport := &mocks.MockTransport{}
		transport.On("Get", mock.Anything, mock.Anything).
			Return([]byte(`{"name":"bulbasaur","sprites":{"other":{}}}`), nil)

		service := NewService(DefaultBaseURL, transport)
		resource, err := service.GetResource(context.Background(), 1)

		assert.Nil(t, resource)
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		transport := &mocks.MockTransport{}
		transport.On("Get", mock.Anything, mock.Anything).Return([]byte("Not Found"), nil)

		service := NewService(DefaultBaseURL, transport)
		_, err := service.GetResource(context.Background(), 1)

		assert.ErrorIs(t, err, ErrDecode)
	})
}

func TestService_GetImage(t *testing.T) {
	t.Run("successful fetch", func(t *testing.T) {
		data := []byte{0x89, 'P', 'N', 'G'}
		transport := &mocks.MockTransport{}
		transport.On("Get", mock.Anything, "http://x/img.png").Return(data, nil)

		service := NewService(DefaultBaseURL, transport)
		result, err := service.GetImage(context.Background(), "http://x/img.png")

		require.NoError(t, err)
		assert.Equal(t, data, result)
		transport.AssertExpectations(t)
	})

	t.Run("bytes are not validated", func(t *testing.T) {
		transport := &mocks.MockTransport{}
		transport.On("Get", mock.Anything, mock.Anything).Return([]byte("definitely not an image"), nil)

		service := NewService(DefaultBaseURL, transport)
		result, err := service.GetImage(context.Background(), "http://x/img.png")

		require.NoError(t, err)
		assert.Equal(t, "definitely not an image", string(result))
	})

	t.Run("invalid URL", func(t *testing.T) {
		for _, raw := range []string{"", "img.png", "http://exa mple.com/img.png", "//no-scheme/img.png"} {
			transport := &mocks.MockTransport{}

			service := NewService(DefaultBaseURL, transport)
			_, err := service.GetImage(context.Background(), raw)

			assert.ErrorIs(t, err, ErrInvalidURL, "url %q", raw)
			transport.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		}
	})

	t.Run("absent body", func(t *testing.T) {
		transport := &mocks.MockTransport{}
		transport.On("Get", mock.Anything, mock.Anything).Return([]byte{}, nil)

		service := NewService(DefaultBaseURL, transport)
		_, err := service.GetImage(context.Background(), "http://x/img.png")

		assert.ErrorIs(t, err, ErrInvalidData)
	})

	t.Run("transport error reported as missing data", func(t *testing.T) {
		transport := &mocks.MockTransport{}
		transport.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		service := NewService(DefaultBaseURL, transport)
		_, err := service.GetImage(context.Background(), "http://x/img.png")

		assert.ErrorIs(t, err, ErrInvalidData)
	})
}
