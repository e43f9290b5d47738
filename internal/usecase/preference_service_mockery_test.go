package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/matchday-app/matchday/internal/domain/preferences"
	preferencesmock "github.com/matchday-app/matchday/internal/mocks/domain/preferences"
)

func TestPreferenceService_Get_MissingDocumentUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := preferencesmock.NewRepository(t)
	service := NewPreferenceService(repo)

	repo.
		On("Get", mock.MatchedBy(func(v context.Context) bool { return v != nil }), "u-1").
		Return(preferences.Document{}, time.Time{}, false, nil).
		Once()

	doc, updatedAt, err := service.Get(ctx, "u-1")
	if err != nil {
		t.Fatalf("get preferences: %v", err)
	}
	if !updatedAt.IsZero() {
		t.Fatalf("expected zero timestamp for default document, got %s", updatedAt)
	}
	if doc.HiddenLeagues == nil || len(doc.HiddenLeagues) != 0 {
		t.Fatalf("expected empty non-nil defaults, got %+v", doc)
	}
}

func TestPreferenceService_Update_PassesPartialThroughUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := preferencesmock.NewRepository(t)
	service := NewPreferenceService(repo)

	hidden := []string{"4328"}
	partial := preferences.Partial{HiddenLeagues: &hidden}
	merged := preferences.Document{
		CollapsedLeagues: []string{},
		HiddenLeagues:    []string{"4328"},
		LeagueOrder:      []string{},
	}
	updatedAt := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)

	repo.
		On("UpsertMerge", mock.MatchedBy(func(v context.Context) bool { return v != nil }), "u-1", partial).
		Return(merged, updatedAt, nil).
		Once()

	doc, gotAt, err := service.Update(ctx, "u-1", partial)
	if err != nil {
		t.Fatalf("update preferences: %v", err)
	}
	if !gotAt.Equal(updatedAt) {
		t.Fatalf("unexpected timestamp: got=%s want=%s", gotAt, updatedAt)
	}
	if len(doc.HiddenLeagues) != 1 || doc.HiddenLeagues[0] != "4328" {
		t.Fatalf("unexpected document: %+v", doc)
	}
}

func TestPreferenceService_Update_RepositoryErrorWrappedUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := preferencesmock.NewRepository(t)
	service := NewPreferenceService(repo)

	hidden := []string{"4328"}
	wantErr := errors.New("connection reset")

	repo.
		On("UpsertMerge", mock.MatchedBy(func(v context.Context) bool { return v != nil }), "u-1", mock.Anything).
		Return(preferences.Document{}, time.Time{}, wantErr).
		Once()

	_, _, err := service.Update(ctx, "u-1", preferences.Partial{HiddenLeagues: &hidden})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
