package database

import (
	"context"
	"sort"
	"sync"

	"github.com/vyaparify/checkout-api/internal/entity"
)

// MemoryStore keeps submissions in a mutex-guarded map. It backs local
// development and tests when no DATABASE_URL is set; records live for the
// process lifetime only.
type MemoryStore struct {
	mu          sync.RWMutex
	submissions map[string]*entity.Submission
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		submissions: make(map[string]*entity.Submission),
	}
}

func (m *MemoryStore) Create(_ context.Context, s *entity.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *s
	m.submissions[s.ID] = &stored
	return nil
}

func (m *MemoryStore) UpdateStatus(_ context.Context, id, status, orderID, paymentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.submissions[id]
	if !ok {
		return entity.ErrSubmissionNotFound
	}

	s.Status = status
	if orderID != "" {
		s.RazorpayOrderID = orderID
	}
	if paymentID != "" {
		s.RazorpayPaymentID = paymentID
	}
	return nil
}

func (m *MemoryStore) ListRecent(_ context.Context, limit int) ([]*entity.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]*entity.Submission, 0, len(m.submissions))
	for _, s := range m.submissions {
		copied := *s
		all = append(all, &copied)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}
