package cache

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/domino14/teeko/config"
)

// The cache holds large derived objects that several consumers want to
// share, such as the decoded board list of a stage. Objects are built on
// first use and kept for the life of the process.

type cache struct {
	sync.Mutex
	objects map[string]interface{}
}

type loadFunc func(ctx context.Context, cfg *config.Config, key string) (interface{}, error)

// GlobalObjectCache is our global object cache, of course.
var GlobalObjectCache *cache

var createOnce sync.Once

func (c *cache) load(ctx context.Context, cfg *config.Config, key string, loadFunc loadFunc) error {
	zerolog.Ctx(ctx).Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(ctx, cfg, key)
	if err != nil {
		return err
	}
	c.objects[key] = obj

	return nil
}

func (c *cache) get(ctx context.Context, cfg *config.Config, key string, loadFunc loadFunc) (interface{}, error) {

	var ok bool
	var obj interface{}
	c.Lock()
	defer c.Unlock()
	if obj, ok = c.objects[key]; !ok {
		err := c.load(ctx, cfg, key, loadFunc)
		if err != nil {
			return nil, err
		}
		return c.objects[key], nil
	}
	zerolog.Ctx(ctx).Debug().Str("key", key).Msg("getting obj from cache")

	return obj, nil
}

func (c *cache) evict(key string) {
	c.Lock()
	defer c.Unlock()
	delete(c.objects, key)
}

func CreateGlobalObjectCache() {
	createOnce.Do(func() {
		GlobalObjectCache = &cache{objects: make(map[string]interface{})}
	})
}

// Load returns the object stored under name, building it with loadFunc if
// it is not cached yet. A failed build is not cached.
func Load(ctx context.Context, cfg *config.Config, name string, loadFunc loadFunc) (interface{}, error) {
	CreateGlobalObjectCache()
	return GlobalObjectCache.get(ctx, cfg, name, loadFunc)
}

// Evict drops name from the cache so its memory can be reclaimed.
func Evict(name string) {
	CreateGlobalObjectCache()
	GlobalObjectCache.evict(name)
}
