package cookbook

// Logical keys for the two persisted collections.
const (
	RecipesKey = "recipes"
	PantryKey  = "pantry"
)

// Store is an opaque key-value blob store. Every collection is serialized
// and written whole under a fixed string key; there is no partial update
// protocol. Concurrent writers are not coordinated: the last writer wins.
type Store interface {
	// Get returns the blob stored under key. found is false when the key
	// has never been written.
	Get(key string) (data []byte, found bool, err error)

	// Put replaces the blob stored under key in one atomic write.
	Put(key string, data []byte) error

	// Close releases any resources held by the store.
	Close() error
}
