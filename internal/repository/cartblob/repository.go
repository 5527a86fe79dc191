// Package cartblob persists the serialized cart of each visitor as a single
// opaque blob per key. Mutations always replace the whole value; there is no
// partial update, mirroring how the cart store reads, rewrites and saves the
// complete collection on every change.
package cartblob

import "context"

// Storage loads and saves one blob per cart key.
//
// Load returns (nil, nil) when the key has never been written; callers treat
// any error the same as an absent blob. Save replaces the stored value.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
	Ping(ctx context.Context) error
}
