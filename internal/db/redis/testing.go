package redis

import "github.com/redis/rueidis"

// NewStoreForTest creates a Store around a mocked rueidis client.
func NewStoreForTest(c rueidis.Client) *Store {
	return &Store{client: c}
}
