package sdk

import "github.com/craterlabs/fuzzle/internal/domain/match"

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	password string

	keyPrefix   string
	searchLimit int
	maxTypos    int
	termLogic   match.Logic
	columnLogic match.Logic

	scorer match.Scorer
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedisCluster configures the client with multiple cluster addresses.
func WithRedisCluster(addrs []string, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = addrs
		c.password = password
	})
}

// WithKeyPrefix sets the storage key prefix. Defaults to "fuzzle:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithSearchLimit caps the number of results a search returns. Defaults to 100.
func WithSearchLimit(limit int) Option {
	return optionFunc(func(c *clientConfig) {
		c.searchLimit = limit
	})
}

// WithDefaults sets the matching parameters used when a query omits them.
func WithDefaults(maxTypos int, termLogic, columnLogic Logic) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxTypos = maxTypos
		c.termLogic = termLogic
		c.columnLogic = columnLogic
	})
}

// WithScorer replaces the similarity provider used for fuzzy matching.
func WithScorer(s Scorer) Option {
	return optionFunc(func(c *clientConfig) {
		c.scorer = s
	})
}
