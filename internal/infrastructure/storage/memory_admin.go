package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

// SessionTTL admin sessiyasi shuncha faolsiz turgandan keyin eskiradi
const SessionTTL = 24 * time.Hour

type memoryAdminRepository struct {
	mu       sync.RWMutex
	sessions map[string]entity.AdminSession
	actions  []entity.AdminAction
}

// NewMemoryAdminRepository in-memory admin repository yaratish
func NewMemoryAdminRepository() repository.AdminRepository {
	return &memoryAdminRepository{
		sessions: make(map[string]entity.AdminSession),
		actions:  []entity.AdminAction{},
	}
}

// CreateSession admin sessiyasini yaratish
func (m *memoryAdminRepository) CreateSession(ctx context.Context, session entity.AdminSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session.LastActivity = time.Now()
	m.sessions[session.ID] = session
	return nil
}

// GetSession sessiyani olish
func (m *memoryAdminRepository) GetSession(ctx context.Context, id string) (*entity.AdminSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[id]
	if !exists {
		return nil, fmt.Errorf("session not found: %s", id)
	}

	return &session, nil
}

// DeleteSession sessiyani o'chirish (logout)
func (m *memoryAdminRepository) DeleteSession(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}

// IsAdmin sessiyani tekshirish va faollik vaqtini yangilash
func (m *memoryAdminRepository) IsAdmin(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[id]
	if !exists {
		return false, nil
	}

	// Session timeout tekshirish (24 soat)
	if time.Since(session.LastActivity) > SessionTTL {
		delete(m.sessions, id)
		return false, nil
	}

	session.LastActivity = time.Now()
	m.sessions[id] = session
	return session.IsAdmin, nil
}

// LogAction admin harakatini loglash
func (m *memoryAdminRepository) LogAction(ctx context.Context, action entity.AdminAction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.actions = append(m.actions, action)
	return nil
}

// Actions oxirgi harakatlar (yangilari birinchi)
func (m *memoryAdminRepository) Actions(ctx context.Context, limit int) ([]entity.AdminAction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []entity.AdminAction
	for i := len(m.actions) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, m.actions[i])
	}
	return out, nil
}
