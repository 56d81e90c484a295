// Package memory provides a map-backed implementation of storage.Storage.
//
// Nothing is persisted: the collection starts empty when New is called and is
// discarded with the process. A single RWMutex guards the map so each method's
// existence check and write happen as one step under concurrent requests.
package memory

import (
	"fmt"
	"sync"

	"github.com/aanand-mishra/users-api/internal/storage"
	"github.com/aanand-mishra/users-api/internal/types"
)

// Memory is the in-memory user collection.
type Memory struct {
	mu    sync.RWMutex
	users map[string]types.User
	// order holds ids in insertion order; GetUsers walks it.
	order []string

	newID func() string
}

func New() *Memory {
	return &Memory{
		users: make(map[string]types.User),
		newID: storage.NewID,
	}
}

func (m *Memory) CreateUser(input types.UserInput) (types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.newID()
	if _, exists := m.users[id]; exists {
		return types.User{}, fmt.Errorf("CreateUser: duplicate id %s", id)
	}

	user := input.WithID(id)
	m.users[id] = user
	m.order = append(m.order, id)

	return user, nil
}

func (m *Memory) GetUserByID(id string) (types.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return types.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (m *Memory) GetUsers() ([]types.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]types.User, 0, len(m.order))
	for _, id := range m.order {
		users = append(users, m.users[id])
	}
	return users, nil
}

func (m *Memory) UpdateUserByID(id string, input types.UserInput) (types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return types.User{}, storage.ErrNotFound
	}

	user := input.WithID(id)
	m.users[id] = user
	return user, nil
}

func (m *Memory) DeleteUserByID(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return storage.ErrNotFound
	}

	delete(m.users, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Close is a no-op; the collection lives until the process exits.
func (m *Memory) Close() error {
	return nil
}
