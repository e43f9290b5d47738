package memory

import (
	"context"
	"sync"
	"time"

	"github.com/matchday-app/matchday/internal/domain/preferences"
)

type preferenceRecord struct {
	doc       preferences.Document
	updatedAt time.Time
}

// PreferenceRepository keeps preference documents in process memory. The
// merge happens under the write lock, matching the atomicity the SQL
// implementation gets from its upsert statement.
type PreferenceRepository struct {
	mu      sync.RWMutex
	records map[string]preferenceRecord
	now     func() time.Time
}

func NewPreferenceRepository(now func() time.Time) *PreferenceRepository {
	if now == nil {
		now = time.Now
	}
	return &PreferenceRepository{
		records: make(map[string]preferenceRecord),
		now:     now,
	}
}

func (r *PreferenceRepository) Get(_ context.Context, userID string) (preferences.Document, time.Time, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[userID]
	if !ok {
		return preferences.Document{}, time.Time{}, false, nil
	}
	return record.doc, record.updatedAt, true, nil
}

func (r *PreferenceRepository) UpsertMerge(_ context.Context, userID string, partial preferences.Partial) (preferences.Document, time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	base := preferences.DefaultDocument()
	if record, ok := r.records[userID]; ok {
		base = record.doc
	}

	merged := preferences.Merge(base, partial)
	updatedAt := r.now()
	r.records[userID] = preferenceRecord{doc: merged, updatedAt: updatedAt}
	return merged, updatedAt, nil
}

func (r *PreferenceRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, userID)
	return nil
}
