package cache

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/teeko/config"
)

func TestLoadBuildsOnce(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	cfg := config.DefaultConfig()

	var mu sync.Mutex
	builds := 0
	build := func(ctx context.Context, cfg *config.Config, key string) (interface{}, error) {
		mu.Lock()
		defer mu.Unlock()
		builds++
		return key + "-value", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			obj, err := Load(ctx, cfg, "once", build)
			is.NoErr(err)
			is.Equal(obj.(string), "once-value")
		}()
	}
	wg.Wait()
	is.Equal(builds, 1)

	Evict("once")
	_, err := Load(ctx, cfg, "once", build)
	is.NoErr(err)
	is.Equal(builds, 2)
}

func TestFailedLoadIsNotCached(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	cfg := config.DefaultConfig()
	boom := errors.New("boom")

	_, err := Load(ctx, cfg, "fails", func(context.Context, *config.Config, string) (interface{}, error) {
		return nil, boom
	})
	is.True(errors.Is(err, boom))

	obj, err := Load(ctx, cfg, "fails", func(context.Context, *config.Config, string) (interface{}, error) {
		return 7, nil
	})
	is.NoErr(err)
	is.Equal(obj.(int), 7)
}
