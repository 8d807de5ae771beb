package mocks

import (
	"context"
	"io"
	"time"

	"readapi/internal/model"
	"readapi/internal/readability"
	"readapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) Upload(ctx context.Context, title string, r io.Reader, contentType string) (*service.AnalyzedDocument, error) {
	args := m.Called(ctx, title, r, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AnalyzedDocument), args.Error(1)
}

func (m *MockAnalysisService) Analyze(ctx context.Context, inputs []readability.Input) []readability.Outcome {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]readability.Outcome)
}

func (m *MockAnalysisService) List(ctx context.Context, limit, offset int) (*service.DocumentListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentListResult), args.Error(1)
}

func (m *MockAnalysisService) Get(ctx context.Context, id string) (*model.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockAnalysisService) Result(ctx context.Context, id string) (*model.ReadabilityResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReadabilityResult), args.Error(1)
}

func (m *MockAnalysisService) Reanalyze(ctx context.Context, id string) (*model.ReadabilityResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReadabilityResult), args.Error(1)
}

func (m *MockAnalysisService) DownloadURL(ctx context.Context, id string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, id, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockAnalysisService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
