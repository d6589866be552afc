package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTransport is a mock implementation of fetch.Transport
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Get(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)

	var body []byte
	if args.Get(0) != nil {
		body = args.Get(0).([]byte)
	}

	return body, args.Error(1)
}
