package kvstore

// Store is the key-value persistence provider backing every collection and the
// session entries. Values are opaque strings; the storage layer above decides
// the encoding. A missing key is reported through the ok flag, never as an error.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key string, value string) error
	Remove(key string) error
	RemoveMany(keys []string) error
	ListKeys() ([]string, error)
}
