package cache

import (
	"context"
	"time"
)

type noopClient struct{}

// NewNoop returns a cache client that never hits. Used when Redis is not
// configured and in tests.
func NewNoop() Client {
	return noopClient{}
}

func (noopClient) Get(context.Context, string, interface{}) bool { return false }

func (noopClient) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (noopClient) Delete(context.Context, ...string) error { return nil }
