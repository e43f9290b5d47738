package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matchday-app/matchday/internal/domain/preferences"
)

// PreferenceService manages the per-user display preference document.
type PreferenceService struct {
	repo preferences.Repository
}

func NewPreferenceService(repo preferences.Repository) *PreferenceService {
	return &PreferenceService{repo: repo}
}

// Get returns the user's stored preferences, or the default document for
// users who have never saved any. The returned time is the server-side
// last-update timestamp and is zero for the default document.
func (s *PreferenceService) Get(ctx context.Context, userID string) (preferences.Document, time.Time, error) {
	ctx, span := startUsecaseSpan(ctx, "PreferenceService.Get")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return preferences.Document{}, time.Time{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	doc, updatedAt, found, err := s.repo.Get(ctx, userID)
	if err != nil {
		return preferences.Document{}, time.Time{}, fmt.Errorf("get preferences: %w", err)
	}
	if !found {
		return preferences.DefaultDocument(), time.Time{}, nil
	}
	return doc, updatedAt, nil
}

// Update merges a partial document into the stored one. Keys absent from the
// partial keep their stored values; present keys replace them wholesale. The
// merge happens atomically in the store so concurrent updates from two
// devices cannot drop each other's keys.
func (s *PreferenceService) Update(ctx context.Context, userID string, partial preferences.Partial) (preferences.Document, time.Time, error) {
	ctx, span := startUsecaseSpan(ctx, "PreferenceService.Update")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return preferences.Document{}, time.Time{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if partial.IsEmpty() {
		return preferences.Document{}, time.Time{}, fmt.Errorf("%w: at least one preference key is required", ErrInvalidInput)
	}

	doc, updatedAt, err := s.repo.UpsertMerge(ctx, userID, partial)
	if err != nil {
		return preferences.Document{}, time.Time{}, fmt.Errorf("upsert preferences: %w", err)
	}
	return doc, updatedAt, nil
}

// Reset deletes the stored document so the user falls back to defaults.
func (s *PreferenceService) Reset(ctx context.Context, userID string) error {
	ctx, span := startUsecaseSpan(ctx, "PreferenceService.Reset")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete preferences: %w", err)
	}
	return nil
}
