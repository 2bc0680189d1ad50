package storage

import "io"

// BlobStore holds exported artifacts (curve CSVs) outside the database.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	URL(key string) (string, error) // fs returns "file://..."
}
