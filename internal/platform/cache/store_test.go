package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(nil)
	var calls atomic.Int32

	loader := func(context.Context) (any, time.Duration, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", time.Minute, nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_ExpiryUsesInjectedClock(t *testing.T) {
	t.Parallel()

	current := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	now := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}
	advance := func(d time.Duration) {
		mu.Lock()
		current = current.Add(d)
		mu.Unlock()
	}

	store := NewStore(now)
	store.Set(context.Background(), "k", "v", 30*time.Second)

	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatal("expected cache hit inside freshness window")
	}

	advance(29 * time.Second)
	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatal("expected cache hit just before expiry")
	}

	advance(time.Second)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatal("expected cache miss at expiry boundary")
	}
}

func TestStore_GetOrLoad_FailedLoadCachesNothing(t *testing.T) {
	t.Parallel()

	store := NewStore(nil)
	var calls atomic.Int32
	loadErr := errors.New("upstream down")

	loader := func(context.Context) (any, time.Duration, error) {
		calls.Add(1)
		return nil, time.Minute, loadErr
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); !errors.Is(err, loadErr) {
		t.Fatalf("expected load error, got %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); !errors.Is(err, loadErr) {
		t.Fatalf("expected load error on retry, got %v", err)
	}

	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2 (no caching of failures)", got)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
