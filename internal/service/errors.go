package service

import (
	"errors"
	"fmt"

	"github.com/SocialNetworkApp/post-service/internal/blobstorage"
)

// The three caller-facing error kinds. Everything an operation can fail with
// wraps one of these (plus ErrInternal for store faults), so callers match
// with errors.Is.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("entity not found")
	ErrMediaStore = blobstorage.ErrUpload
	ErrInternal   = errors.New("internal server error")
)

var (
	ErrPostRequired       = fmt.Errorf("%w: post is required", ErrValidation)
	ErrSearchTermRequired = fmt.Errorf("%w: search term must not be blank", ErrValidation)
	ErrUnknownPictureKind = fmt.Errorf("%w: picture kind must be \"profile\" or \"cover\"", ErrValidation)
	ErrAuthorNotFound     = fmt.Errorf("%w: author", ErrNotFound)
	ErrUserNotFound       = fmt.Errorf("%w: user", ErrNotFound)
	ErrPostNotFound       = fmt.Errorf("%w: post", ErrNotFound)
	ErrUserPostsNotFound  = fmt.Errorf("%w: user has no posts", ErrNotFound)
)
