package products

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"vitrin/models"
)

func TestCacheTTLExpiry(t *testing.T) {
	var fetches int32
	c := NewCache(time.Minute, func(ctx context.Context, id string) (*models.Product, error) {
		atomic.AddInt32(&fetches, 1)
		return &models.Product{ProductID: id}, nil
	})
	now := time.Unix(1000, 0)
	c.now = func() time.Time { return now }

	ctx := context.Background()
	if _, err := c.Get(ctx, "p1"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Get(ctx, "p1"); err != nil {
		t.Fatal(err)
	}
	if got := atomic.LoadInt32(&fetches); got != 1 {
		t.Fatalf("fetches %d want 1", got)
	}

	now = now.Add(2 * time.Minute)
	if _, err := c.Get(ctx, "p1"); err != nil {
		t.Fatal(err)
	}
	if got := atomic.LoadInt32(&fetches); got != 2 {
		t.Fatalf("fetches %d want 2 after expiry", got)
	}
}

func TestCacheSingleFlight(t *testing.T) {
	var fetches int32
	release := make(chan struct{})
	c := NewCache(time.Minute, func(ctx context.Context, id string) (*models.Product, error) {
		atomic.AddInt32(&fetches, 1)
		<-release
		return &models.Product{ProductID: id}, nil
	})

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Get(ctx, "p1"); err != nil {
				t.Error(err)
			}
		}()
	}

	// let the goroutines pile onto the in-flight call
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := atomic.LoadInt32(&fetches); got != 1 {
		t.Fatalf("fetches %d want 1", got)
	}
}

func TestCacheErrorNotCached(t *testing.T) {
	var fetches int32
	fail := errors.New("down")
	c := NewCache(time.Minute, func(ctx context.Context, id string) (*models.Product, error) {
		if atomic.AddInt32(&fetches, 1) == 1 {
			return nil, fail
		}
		return &models.Product{ProductID: id}, nil
	})

	ctx := context.Background()
	if _, err := c.Get(ctx, "p1"); err != fail {
		t.Fatalf("want fetch error, got %v", err)
	}
	if p, err := c.Get(ctx, "p1"); err != nil || p == nil {
		t.Fatalf("retry should succeed, got %v %v", p, err)
	}
}

func TestCacheInvalidate(t *testing.T) {
	var fetches int32
	c := NewCache(time.Hour, func(ctx context.Context, id string) (*models.Product, error) {
		atomic.AddInt32(&fetches, 1)
		return &models.Product{ProductID: id}, nil
	})

	ctx := context.Background()
	_, _ = c.Get(ctx, "p1")
	c.Invalidate("p1")
	_, _ = c.Get(ctx, "p1")
	if got := atomic.LoadInt32(&fetches); got != 2 {
		t.Fatalf("fetches %d want 2", got)
	}
}
