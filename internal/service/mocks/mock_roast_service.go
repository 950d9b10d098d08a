package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"roastapi/internal/model"
)

type MockRoastService struct {
	mock.Mock
}

func (m *MockRoastService) Roast(ctx context.Context, file model.UploadedFile) (*model.RoastResult, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RoastResult), args.Error(1)
}
