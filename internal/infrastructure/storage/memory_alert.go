package storage

import (
	"context"
	"sync"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

type memoryAlertRepository struct {
	mu     sync.RWMutex
	alerts []entity.AlertRecord
}

// NewMemoryAlertRepository in-memory alert tarixi
func NewMemoryAlertRepository() repository.AlertRepository {
	return &memoryAlertRepository{}
}

func (m *memoryAlertRepository) SaveAlert(ctx context.Context, alert entity.AlertRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.alerts = append(m.alerts, alert)
	return nil
}

// ListAlerts eng yangilari birinchi
func (m *memoryAlertRepository) ListAlerts(ctx context.Context, limit int) ([]entity.AlertRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []entity.AlertRecord
	for i := len(m.alerts) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, m.alerts[i])
	}
	return out, nil
}
