package redisrepo

import "fmt"

const (
	POST_KEY        = "post:%d"          // <postID>
	OWNER_POSTS_KEY = "owner:%s-posts"   // <ownerID>
	OWNER_PATTERN   = "owner:%s-posts*"  // <ownerID>
)

func PostKey(postID int64) string {
	return fmt.Sprintf(POST_KEY, postID)
}

func OwnerPostsKey(ownerID string) string {
	return fmt.Sprintf(OWNER_POSTS_KEY, ownerID)
}

func OwnerPostsPattern(ownerID string) string {
	return fmt.Sprintf(OWNER_PATTERN, ownerID)
}
