// Package blobstorage persists raw media bytes and hands back a retrievable URL.
package blobstorage

import (
	"context"
	"errors"
)

// ErrUpload is the single error kind the adapter reports. Underlying causes
// (network, bucket, credentials) are collapsed into it; the detail only goes
// to the logs.
var ErrUpload = errors.New("media storage failure")

type Storage interface {
	Upload(ctx context.Context, data []byte, fileName string) (string, error)
}
