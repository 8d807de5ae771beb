package mocks

import (
	"context"

	"readapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) Upsert(ctx context.Context, res *model.ReadabilityResult) (*model.ReadabilityResult, error) {
	args := m.Called(ctx, res)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReadabilityResult), args.Error(1)
}

func (m *MockResultRepository) FindByDocumentID(ctx context.Context, documentID string) (*model.ReadabilityResult, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReadabilityResult), args.Error(1)
}
