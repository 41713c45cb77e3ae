package handler

import (
	"errors"
	"net/http"

	"github.com/SocialNetworkApp/post-service/internal/service"
)

var (
	errNotAuthorized  = errors.New("user is not authorized")
	errInvalidPostID  = errors.New("invalid post ID")
	errInvalidUserID  = errors.New("invalid user ID")
	errFileIsRequired = errors.New("file is required")
)

func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrMediaStore):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
