package cache

// Cache is a minimal generic key/value cache.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	Delete(key K)
	Keys() []K
	Values() []V
	Clear()
	Len() int
}
