package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/matchday-app/matchday/internal/domain/preferences"
	"github.com/matchday-app/matchday/internal/infrastructure/repository/memory"
)

func TestPreferenceService_Get_FirstTimeUserSeesDefaults(t *testing.T) {
	t.Parallel()

	service := NewPreferenceService(memory.NewPreferenceRepository(nil))

	doc, updatedAt, err := service.Get(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("get preferences: %v", err)
	}
	if !updatedAt.IsZero() {
		t.Fatalf("expected zero timestamp for defaults, got %v", updatedAt)
	}
	if doc.CollapsedLeagues == nil || doc.HiddenLeagues == nil || doc.LeagueOrder == nil {
		t.Fatalf("expected non-nil default slices, got %+v", doc)
	}
	if len(doc.CollapsedLeagues)+len(doc.HiddenLeagues)+len(doc.LeagueOrder) != 0 {
		t.Fatalf("expected empty defaults, got %+v", doc)
	}
}

func TestPreferenceService_Update_MergesPerKey(t *testing.T) {
	t.Parallel()

	service := NewPreferenceService(memory.NewPreferenceRepository(nil))
	ctx := context.Background()

	hidden := []string{"L3"}
	if _, _, err := service.Update(ctx, "u-1", preferences.Partial{HiddenLeagues: &hidden}); err != nil {
		t.Fatalf("first update: %v", err)
	}

	order := []string{"L2", "L1"}
	doc, updatedAt, err := service.Update(ctx, "u-1", preferences.Partial{LeagueOrder: &order})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if updatedAt.IsZero() {
		t.Fatal("expected update timestamp")
	}
	if !reflect.DeepEqual(doc.HiddenLeagues, []string{"L3"}) {
		t.Fatalf("expected untouched key to survive, got %+v", doc)
	}
	if !reflect.DeepEqual(doc.LeagueOrder, []string{"L2", "L1"}) {
		t.Fatalf("expected order replaced wholesale, got %+v", doc)
	}

	empty := []string{}
	doc, _, err = service.Update(ctx, "u-1", preferences.Partial{HiddenLeagues: &empty})
	if err != nil {
		t.Fatalf("clear update: %v", err)
	}
	if len(doc.HiddenLeagues) != 0 {
		t.Fatalf("expected explicit empty list to clear the key, got %+v", doc)
	}
	if !reflect.DeepEqual(doc.LeagueOrder, []string{"L2", "L1"}) {
		t.Fatalf("expected other keys untouched by clear, got %+v", doc)
	}
}

func TestPreferenceService_Update_RejectsEmptyPartial(t *testing.T) {
	t.Parallel()

	service := NewPreferenceService(memory.NewPreferenceRepository(nil))

	if _, _, err := service.Update(context.Background(), "u-1", preferences.Partial{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty partial, got %v", err)
	}
}

func TestPreferenceService_Reset_FallsBackToDefaults(t *testing.T) {
	t.Parallel()

	service := NewPreferenceService(memory.NewPreferenceRepository(nil))
	ctx := context.Background()

	hidden := []string{"L1"}
	if _, _, err := service.Update(ctx, "u-1", preferences.Partial{HiddenLeagues: &hidden}); err != nil {
		t.Fatalf("seed update: %v", err)
	}
	if err := service.Reset(ctx, "u-1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	doc, updatedAt, err := service.Get(ctx, "u-1")
	if err != nil {
		t.Fatalf("get after reset: %v", err)
	}
	if !updatedAt.IsZero() || len(doc.HiddenLeagues) != 0 {
		t.Fatalf("expected defaults after reset, got %+v at %v", doc, updatedAt)
	}
}
