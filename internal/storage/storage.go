// Package storage abstracts the object store shared by the pipeline stages.
package storage

import "context"

// ObjectStore is the store contract the handlers program against: list keys
// under a prefix, read an object, write an object with metadata. The S3
// implementation is the production backend; MemoryStore serves tests.
type ObjectStore interface {
	List(ctx context.Context, bucket, prefix string) ([]string, error)
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	Put(ctx context.Context, bucket, key string, body []byte, contentType string, metadata map[string]string) error
}
