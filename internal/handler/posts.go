package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/SocialNetworkApp/post-service/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) postsCreate(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	var input dto.CreatePostRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	file, err := readUploadFile(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	postDto := &dto.Post{
		AuthorID:   userID,
		Content:    input.Content,
		Visibility: input.Visibility,
	}
	var photoDto *dto.Photo
	if input.PhotoURL != nil {
		photoDto = &dto.Photo{URL: *input.PhotoURL}
	}
	var videoDto *dto.Video
	if input.VideoURL != nil {
		videoDto = &dto.Video{URL: *input.VideoURL}
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), postDto, file, photoDto, videoDto)
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, *createdPost)
}

func (h *Handler) postsGetByID(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), postID)
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, *post)
}

func (h *Handler) postsGetByOwner(c *gin.Context) {
	userID, err := uuid.Parse(strings.TrimSpace(c.Param("userID")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidUserID.Error()))
		return
	}

	posts, err := h.services.Post.FindUserPosts(c.Request.Context(), userID)
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsFriendsFeed(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	feed, err := h.services.Post.FindUserFriendsPosts(c.Request.Context(), userID)
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, feed)
}

func (h *Handler) postsGetAll(c *gin.Context) {
	posts, err := h.services.Post.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsSearch(c *gin.Context) {
	term := c.Query("q")
	sortOrder := c.Query("sort")

	result, err := h.services.Post.SearchByContent(c.Request.Context(), term, sortOrder)
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) postsEdit(c *gin.Context) {
	var input dto.EditPostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	editedPost, err := h.services.Post.Edit(c.Request.Context(), &dto.Post{
		ID:         input.ID,
		Content:    input.Content,
		Visibility: input.Visibility,
	})
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, *editedPost)
}

func (h *Handler) postsDelete(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	ok := h.services.Post.Delete(c.Request.Context(), postID)

	c.JSON(http.StatusOK, dto.DeleteResponse{Ok: ok})
}

func parsePostID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(c.Param("postID")), 10, 64)
}

// readUploadFile pulls the optional "file" part of a multipart request into
// memory. A request without that part is fine; a broken part is not.
func readUploadFile(c *gin.Context) (*dto.UploadFile, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile || err == http.ErrNotMultipart {
			return nil, nil
		}
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &dto.UploadFile{Name: fileHeader.Filename, Data: data}, nil
}
