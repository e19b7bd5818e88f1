package session

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps questionnaire sessions in memory. Each session is independent;
// Store is safe for concurrent use.
type Store interface {
	Create() (string, State)
	Get(id string) (State, error)
	Update(id string, fn func(State) (State, error)) (State, error)
	Delete(id string) error
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]State
}

func NewStore() Store {
	return &memoryStore{
		sessions: make(map[string]State),
	}
}

func (m *memoryStore) Create() (string, State) {
	id := uuid.Must(uuid.NewV7()).String()
	state := Reset()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = state

	return id, state.clone()
}

func (m *memoryStore) Get(id string) (State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.sessions[id]
	if !ok {
		return State{}, ErrSessionNotFound
	}
	return state.clone(), nil
}

// Update applies fn to the session atomically. The stored state is left
// untouched when fn fails.
func (m *memoryStore) Update(id string, fn func(State) (State, error)) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[id]
	if !ok {
		return State{}, ErrSessionNotFound
	}

	next, err := fn(state.clone())
	if err != nil {
		return state.clone(), err
	}

	m.sessions[id] = next
	return next.clone(), nil
}

func (m *memoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}
