package handler

import (
	"github.com/SocialNetworkApp/post-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{viper.GetString("client.origin")},
		AllowMethods: []string{"POST", "GET", "PATCH", "DELETE"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.POST("", h.authMiddleware, h.postsCreate)
			posts.GET("", h.postsGetAll)
			posts.GET("/search", h.postsSearch)
			posts.GET("/feed", h.authMiddleware, h.postsFriendsFeed)
			posts.GET("/owner/:userID", h.postsGetByOwner)
			posts.PATCH("/edit", h.authMiddleware, h.postsEdit)

			post := posts.Group("/:postID")
			{
				post.GET("", h.postsGetByID)
				post.DELETE("", h.authMiddleware, h.postsDelete)
			}
		}

		users := v1.Group("/users")
		{
			users.PATCH("/displayPicture", h.authMiddleware, h.usersChangeDisplayPicture)
		}
	}

	return r
}

func (h *Handler) getUserIDFromRequest(c *gin.Context) uuid.UUID {
	userIDReq, _ := c.Get("user-id")

	userID, ok := userIDReq.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}

	return userID
}
