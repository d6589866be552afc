package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pokeapp/poke-viewer/internal/model"
)

// MockService is a mock implementation of fetch.Servicer
type MockService struct {
	mock.Mock
}

func (m *MockService) GetResource(ctx context.Context, id int) (*model.Resource, error) {
	args := m.Called(ctx, id)

	var resource *model.Resource
	if args.Get(0) != nil {
		resource = args.Get(0).(*model.Resource)
	}

	return resource, args.Error(1)
}

func (m *MockService) GetImage(ctx context.Context, rawURL string) ([]byte, error) {
	args := m.Called(ctx, rawURL)

	var data []byte
	if args.Get(0) != nil {
		data = args.Get(0).([]byte)
	}

	return data, args.Error(1)
}
