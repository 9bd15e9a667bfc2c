package services

import (
	"context"

	"github.com/vvka-141/msgprep/pkg/msgprep"
)

// mockStore is a test double for msgprep.Store.
type mockStore struct {
	saved    map[string]*msgprep.Table
	saveErr  error
	closeErr error
	closed   int
}

func newMockStore() *mockStore {
	return &mockStore{saved: make(map[string]*msgprep.Table)}
}

func (m *mockStore) Save(ctx context.Context, table *msgprep.Table, relation string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved[relation] = table.Clone()
	return nil
}

func (m *mockStore) Read(ctx context.Context, relation string) (*msgprep.Table, error) {
	t, ok := m.saved[relation]
	if !ok {
		return nil, msgprep.ErrRelationNotFound
	}
	return t.Clone(), nil
}

func (m *mockStore) Close() error {
	m.closed++
	return m.closeErr
}

// mockOpener records the destinations it was asked to open.
type mockOpener struct {
	store   *mockStore
	openErr error
	opened  []string
}

func (o *mockOpener) Open(ctx context.Context, destination string) (msgprep.Store, error) {
	o.opened = append(o.opened, destination)
	if o.openErr != nil {
		return nil, o.openErr
	}
	return o.store, nil
}
