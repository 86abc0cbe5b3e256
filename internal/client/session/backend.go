package session

import (
	"context"
	"sync"

	"github.com/WayleX/Beerter/internal/client/repositories/metadata"
	"github.com/WayleX/Beerter/internal/common"
)

// MetadataBackend keeps the token in the metadata table under
// common.SessionTokenKey.
type MetadataBackend struct {
	repo metadata.Repository
}

func NewMetadataBackend(repo metadata.Repository) *MetadataBackend {
	return &MetadataBackend{repo: repo}
}

func (b *MetadataBackend) Load(ctx context.Context) (string, error) {
	v, err := b.repo.Get(ctx, common.SessionTokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (b *MetadataBackend) Save(ctx context.Context, token string) error {
	return b.repo.Set(ctx, common.SessionTokenKey, []byte(token))
}

func (b *MetadataBackend) Delete(ctx context.Context) error {
	return b.repo.Delete(ctx, common.SessionTokenKey)
}

// MemoryBackend is a Backend without persistence.
type MemoryBackend struct {
	mu    sync.Mutex
	token string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load(context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.token, nil
}

func (b *MemoryBackend) Save(_ context.Context, token string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.token = token
	return nil
}

func (b *MemoryBackend) Delete(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.token = ""
	return nil
}
