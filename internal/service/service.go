package service

import (
	"context"

	"github.com/SocialNetworkApp/post-service/internal/blobstorage"
	"github.com/SocialNetworkApp/post-service/internal/dto"
	"github.com/SocialNetworkApp/post-service/internal/rabbitmq"
	"github.com/SocialNetworkApp/post-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Post interface {
	Create(ctx context.Context, post *dto.Post, file *dto.UploadFile, photo *dto.Photo, video *dto.Video) (*dto.Post, error)
	Delete(ctx context.Context, id int64) bool
	FindByID(ctx context.Context, id int64) (*dto.Post, error)
	FindUserPosts(ctx context.Context, userID uuid.UUID) ([]*dto.Post, error)
	FindUserFriendsPosts(ctx context.Context, userID uuid.UUID) ([]*dto.Post, error)
	FindAll(ctx context.Context) ([]*dto.Post, error)
	SearchByContent(ctx context.Context, term string, sortOrder string) ([]*dto.Post, error)
	Edit(ctx context.Context, post *dto.Post) (*dto.Post, error)
	ChangeDisplayPicture(ctx context.Context, file *dto.UploadFile, userID uuid.UUID, pictureKind string) (*dto.Post, error)
}

// Config carries behavior switches that the original left implicit.
type Config struct {
	// StrictPictureKind rejects unrecognized picture kinds instead of
	// silently ignoring them.
	StrictPictureKind bool
}

type Service struct {
	Post
}

func New(logger *zap.Logger, repo *repository.Repository, blobStorage blobstorage.Storage, mq *rabbitmq.MQConn, cfg Config) *Service {
	return &Service{
		Post: newPostService(logger, repo, blobStorage, mq, cfg),
	}
}
