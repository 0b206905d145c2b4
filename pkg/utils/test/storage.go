package testutils

import (
	"context"
	"errors"

	"github.com/papercomputeco/recruit/pkg/model"
)

// ErrMockStorage is returned by MockStorageDriver when told to fail.
var ErrMockStorage = errors.New("mock storage failure")

// MockStorageDriver is a test storage driver that records saves and returns
// configurable results.
type MockStorageDriver struct {
	// Initial is returned by Load. Nil means no saved data.
	Initial *model.Snapshot

	// Saved accumulates every snapshot passed to Save.
	Saved []model.Snapshot

	// FailLoad causes Load to return ErrMockStorage.
	FailLoad bool

	// LoadErr, when set, is returned by Load instead.
	LoadErr error

	// FailSave causes Save to return an error.
	FailSave bool

	Closed bool
}

// NewMockStorageDriver creates a mock driver with no saved data.
func NewMockStorageDriver() *MockStorageDriver {
	return &MockStorageDriver{}
}

func (m *MockStorageDriver) Load(_ context.Context) (*model.Snapshot, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.FailLoad {
		return nil, ErrMockStorage
	}
	return m.Initial, nil
}

func (m *MockStorageDriver) Save(_ context.Context, snap model.Snapshot) error {
	if m.FailSave {
		return ErrMockStorage
	}
	m.Saved = append(m.Saved, snap)
	return nil
}

func (m *MockStorageDriver) Close() error {
	m.Closed = true
	return nil
}
