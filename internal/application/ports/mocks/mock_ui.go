package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/Inventario-client/internal/application/ports"
)

type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	args := m.Called(ctx, prompt)
	return args.Bool(0), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(level ports.Level, message string) {
	m.Called(level, message)
}
