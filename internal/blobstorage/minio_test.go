package blobstorage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("Holiday Photo.PNG")
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.NotContains(t, key, " ")

	// extensionless uploads still get a usable key
	assert.NotEmpty(t, ObjectKey("raw"))

	assert.NotEqual(t, ObjectKey("a.png"), ObjectKey("a.png"))
}

func TestPublicURL(t *testing.T) {
	url := PublicURL("https://cdn.example.com/", "media", "abc.png")
	assert.Equal(t, "https://cdn.example.com/media/abc.png", url)
}
