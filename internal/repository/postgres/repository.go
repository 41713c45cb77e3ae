package postgres

import (
	"context"
	"fmt"

	"github.com/SocialNetworkApp/post-service/internal/config"
	"github.com/SocialNetworkApp/post-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id int64) (*model.FullPost, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*model.FullPost, error)
	FindAll(ctx context.Context) ([]*model.FullPost, error)
	SearchByContent(ctx context.Context, term string) ([]*model.FullPost, error)
	Update(ctx context.Context, post model.Post) error
	SoftDelete(ctx context.Context, id int64) error
	AttachPhoto(ctx context.Context, postID int64, url string) (*model.Photo, error)
	AttachVideo(ctx context.Context, postID int64, url string) (*model.Video, error)
}

type User interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
}

type Friendship interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Friendship, error)
}

type PostgresRepository struct {
	Post
	User
	Friendship
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Post:       newPostRepo(db),
		User:       newUserRepo(db),
		Friendship: newFriendshipRepo(db),
	}
}

func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)
	return pgxpool.New(ctx, dsn)
}
