package provider

import (
	"context"
	"time"

	"github.com/minashiro/recruit-admin/internal/clients/backend"
	gocache "github.com/patrickmn/go-cache"
)

const defaultMasterListTTL = 5 * time.Minute

// masterCache keeps master lists warm for the reverse name-to-id mapping, so
// opening an edit form does not refetch the same catalogs on every record.
type masterCache struct {
	client *backend.Client
	cache  *gocache.Cache
}

func newMasterCache(client *backend.Client, ttl time.Duration) *masterCache {
	if ttl <= 0 {
		ttl = defaultMasterListTTL
	}
	return &masterCache{
		client: client,
		cache:  gocache.New(ttl, 2*ttl),
	}
}

func (m *masterCache) get(ctx context.Context, resource string) ([]backend.Record, error) {

	if cached, found := m.cache.Get(resource); found {
		return cached.([]backend.Record), nil
	}

	records, err := m.client.GetMasterList(ctx, resource)
	if err != nil {
		return nil, err
	}

	m.cache.Set(resource, records, gocache.DefaultExpiration)
	return records, nil
}
