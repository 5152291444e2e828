// Package content implements the content-addressed blob pool (spec §4.E):
// copying working-tree files into <workdir>/.mvcs/contents/<id>, deduping
// by whole-file hash against every blob already referenced by an item.
package content

import (
	"path/filepath"

	"github.com/untoldecay/mvcs/internal/fsprovider"
	"github.com/untoldecay/mvcs/internal/ids"
	"github.com/untoldecay/mvcs/internal/types"
)

// Cache memoizes blobID -> hash lookups so AddContent doesn't rehash every
// existing blob on every call (spec §9's suggested optimization).
type Cache interface {
	Get(blobID string) (hash string, ok bool)
	Set(blobID, hash string)
}

// MemCache is an in-memory, session-scoped Cache.
type MemCache struct{ m map[string]string }

// NewMemCache returns an empty in-memory cache.
func NewMemCache() *MemCache { return &MemCache{m: make(map[string]string)} }

func (c *MemCache) Get(blobID string) (string, bool) { h, ok := c.m[blobID]; return h, ok }
func (c *MemCache) Set(blobID, hash string)          { c.m[blobID] = hash }

// Pool is the content-addressed blob store rooted at <workdir>/.mvcs/contents.
type Pool struct {
	fs      fsprovider.Provider
	gen     ids.Generator
	dir     string
	hashAlgo string
	cache   Cache
}

// New returns a Pool rooted at contentsDir, using gen for fresh blob ids.
// If cache is nil, an in-memory MemCache is used.
func New(fs fsprovider.Provider, gen ids.Generator, contentsDir, hashAlgo string, cache Cache) *Pool {
	if cache == nil {
		cache = NewMemCache()
	}
	if hashAlgo == "" {
		hashAlgo = fsprovider.DefaultHashAlgo
	}
	return &Pool{fs: fs, gen: gen, dir: contentsDir, hashAlgo: hashAlgo, cache: cache}
}

// Cache returns the Cache backing this pool, for callers that need to
// confirm which implementation got wired in (e.g. the hash-cache config
// toggle).
func (p *Pool) Cache() Cache { return p.cache }

// BlobPath returns the on-disk path for blobID.
func (p *Pool) BlobPath(blobID string) string {
	return filepath.Join(p.dir, blobID)
}

// HashOf returns the hash of the blob referenced by blobID, consulting the
// cache first.
func (p *Pool) HashOf(blobID string) (string, error) {
	if h, ok := p.cache.Get(blobID); ok {
		return h, nil
	}
	f, err := p.fs.ReadFile(p.BlobPath(blobID))
	if err != nil {
		return "", err
	}
	defer f.Close()
	h, err := f.GetDataHash(p.hashAlgo)
	if err != nil {
		return "", err
	}
	p.cache.Set(blobID, h)
	return h, nil
}

// HashOfSource hashes an arbitrary working-tree file, not a blob.
func (p *Pool) HashOfSource(sourcePath string) (string, error) {
	f, err := p.fs.ReadFile(sourcePath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return f.GetDataHash(p.hashAlgo)
}

// AddContent copies sourcePath into the pool, deduplicating against every
// blob referenced by existingItems. Returns the (possibly pre-existing)
// blob id.
func (p *Pool) AddContent(sourcePath string, existingItems map[string]types.Item) (string, error) {
	newHash, err := p.HashOfSource(sourcePath)
	if err != nil {
		return "", err
	}

	seen := make(map[string]bool)
	for _, item := range existingItems {
		if item.Content == "" || item.Content == types.DummyContent || seen[item.Content] {
			continue
		}
		seen[item.Content] = true
		h, err := p.HashOf(item.Content)
		if err != nil {
			continue // blob vanished; status/commit callers surface this separately
		}
		if h == newHash {
			return item.Content, nil
		}
	}

	blobID := p.gen.New()
	if err := p.fs.CopyFile(sourcePath, p.BlobPath(blobID)); err != nil {
		return "", err
	}
	p.cache.Set(blobID, newHash)
	return blobID, nil
}

// FindByHash looks for an existing blob, among those referenced by
// candidates, whose content hash matches newHash. Used by the status
// engine for rename/copy detection without allocating a blob.
func (p *Pool) FindByHash(newHash string, candidates map[string]types.Item) (blobID string, ok bool) {
	seen := make(map[string]bool)
	for _, item := range candidates {
		if item.Content == "" || item.Content == types.DummyContent || seen[item.Content] {
			continue
		}
		seen[item.Content] = true
		h, err := p.HashOf(item.Content)
		if err != nil {
			continue
		}
		if h == newHash {
			return item.Content, true
		}
	}
	return "", false
}
