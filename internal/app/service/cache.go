package service

// Keys under which active listings are cached.
const (
	CacheKeyCategories = "catalog:categories"
	CacheKeyStudios    = "catalog:studios"
	CacheKeyGames      = "catalog:games"
)

// ListCache stores serialized listings. Implementations must treat every
// failure as a miss: the database stays the source of truth.
//
// Every key carries a generation that Delete bumps. A listing read from the
// database is only stored if the generation taken before the read is still
// current, so a snapshot that raced with a mutation is never cached.
type ListCache interface {
	Get(key string, dest interface{}) bool
	// Generation returns the current generation of key. ok is false when it
	// cannot be read, in which case nothing should be stored.
	Generation(key string) (gen int64, ok bool)
	// SetIfGeneration stores value only while key is still at gen.
	SetIfGeneration(key string, gen int64, value interface{}) (stored bool, err error)
	Delete(keys ...string) error
}

type noopListCache struct{}

func (noopListCache) Get(string, interface{}) bool { return false }
func (noopListCache) Generation(string) (int64, bool) { return 0, false }
func (noopListCache) SetIfGeneration(string, int64, interface{}) (bool, error) {
	return false, nil
}
func (noopListCache) Delete(...string) error { return nil }

func pickCache(caches []ListCache) ListCache {
	if len(caches) > 0 && caches[0] != nil {
		return caches[0]
	}
	return noopListCache{}
}

// CacheWarmer is implemented by every service that caches its listing
type CacheWarmer interface {
	RefreshCache() error
}
