package handler

import (
	"net/http"

	"github.com/SocialNetworkApp/post-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) usersChangeDisplayPicture(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	file, err := readUploadFile(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}
	if file == nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errFileIsRequired.Error()))
		return
	}

	post, err := h.services.Post.ChangeDisplayPicture(c.Request.Context(), file, userID, c.Query("kind"))
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, *post)
}
