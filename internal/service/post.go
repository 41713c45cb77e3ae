package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/SocialNetworkApp/post-service/internal/blobstorage"
	"github.com/SocialNetworkApp/post-service/internal/dto"
	"github.com/SocialNetworkApp/post-service/internal/mapper"
	"github.com/SocialNetworkApp/post-service/internal/model"
	"github.com/SocialNetworkApp/post-service/internal/rabbitmq"
	"github.com/SocialNetworkApp/post-service/internal/repository"
	"github.com/SocialNetworkApp/post-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	SortNameAsc  = "nameAsc"
	SortNameDesc = "nameDesc"

	PictureKindProfile = "profile"
	PictureKindCover   = "cover"

	postCacheTTL = time.Hour
)

type postService struct {
	logger      *zap.Logger
	repo        *repository.Repository
	blobStorage blobstorage.Storage
	rabbitmq    *rabbitmq.MQConn
	cfg         Config
}

func newPostService(logger *zap.Logger, repo *repository.Repository, blobStorage blobstorage.Storage, mq *rabbitmq.MQConn, cfg Config) Post {
	return &postService{
		logger:      logger,
		repo:        repo,
		blobStorage: blobStorage,
		rabbitmq:    mq,
		cfg:         cfg,
	}
}

// Create persists the post, then resolves and attaches its media. These are
// two durable writes: the insert yields the id the attachment row needs, so
// a crash in between leaves a post without media, never a dangling media row.
func (s *postService) Create(ctx context.Context, postDto *dto.Post, file *dto.UploadFile, photoDto *dto.Photo, videoDto *dto.Video) (*dto.Post, error) {
	if postDto == nil {
		return nil, ErrPostRequired
	}

	author, err := s.repo.Postgres.User.FindByID(ctx, postDto.AuthorID)
	if err == pgx.ErrNoRows {
		return nil, ErrAuthorNotFound
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to find author(%s): %s", postDto.AuthorID.String(), err.Error())
		return nil, ErrInternal
	}

	post := mapper.PostToModel(postDto)
	post.AuthorID = author.ID

	created, err := s.repo.Postgres.Post.Create(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", post.AuthorID.String(), err.Error())
		return nil, ErrInternal
	}

	full := &model.FullPost{Post: *created}
	if err := s.attachMedia(ctx, full, file, photoDto, videoDto); err != nil {
		return nil, err
	}

	s.invalidateOwnerPosts(ctx, created.AuthorID)

	result := mapper.FullPostToDTO(full)
	s.publishPostCreated(ctx, result)

	return result, nil
}

// attachMedia resolves the attachment with first-match precedence:
// uploaded file, then photo reference, then video reference, then nothing.
// Attaching either kind clears the opposite slot.
func (s *postService) attachMedia(ctx context.Context, post *model.FullPost, file *dto.UploadFile, photoDto *dto.Photo, videoDto *dto.Video) error {
	if file != nil {
		url, err := s.blobStorage.Upload(ctx, file.Data, file.Name)
		if err != nil {
			s.logger.Sugar().Errorf("failed to upload file(%s) for post(%d): %s", file.Name, post.Post.ID, err.Error())
			return err
		}

		photo, err := s.repo.Postgres.Post.AttachPhoto(ctx, post.Post.ID, url)
		if err != nil {
			s.logger.Sugar().Errorf("failed to attach photo to post(%d): %s", post.Post.ID, err.Error())
			return ErrInternal
		}

		post.Photo = photo
		post.Video = nil
		return nil
	}

	if photoDto != nil {
		photo, err := s.repo.Postgres.Post.AttachPhoto(ctx, post.Post.ID, photoDto.URL)
		if err != nil {
			s.logger.Sugar().Errorf("failed to attach photo to post(%d): %s", post.Post.ID, err.Error())
			return ErrInternal
		}

		post.Photo = photo
		post.Video = nil
		return nil
	}

	if videoDto != nil {
		video, err := s.repo.Postgres.Post.AttachVideo(ctx, post.Post.ID, videoDto.URL)
		if err != nil {
			s.logger.Sugar().Errorf("failed to attach video to post(%d): %s", post.Post.ID, err.Error())
			return ErrInternal
		}

		post.Video = video
		post.Photo = nil
		return nil
	}

	post.Photo = nil
	post.Video = nil
	return nil
}

// Delete is best-effort: every failure, including an unknown id, comes back
// as false. Callers that need the distinction should read the post first.
func (s *postService) Delete(ctx context.Context, id int64) bool {
	post, err := s.repo.Postgres.Post.FindByID(ctx, id)
	if err != nil {
		if err != pgx.ErrNoRows {
			s.logger.Sugar().Errorf("failed to find post(%d) for deletion: %s", id, err.Error())
		}
		return false
	}

	if err := s.repo.Postgres.Post.SoftDelete(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to soft-delete post(%d): %s", id, err.Error())
		return false
	}

	s.invalidatePost(ctx, id)
	s.invalidateOwnerPosts(ctx, post.Post.AuthorID)

	return true
}

func (s *postService) FindByID(ctx context.Context, id int64) (*dto.Post, error) {
	cached, err := redisrepo.Get[model.FullPost](s.repo.Redis.Default, ctx, redisrepo.PostKey(id))
	if err == nil && cached != nil {
		return mapper.FullPostToDTO(cached), nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get post(%d) from redis: %s", id, err.Error())
	}

	post, err := s.repo.Postgres.Post.FindByID(ctx, id)
	if err == pgx.ErrNoRows {
		return nil, ErrPostNotFound
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) from postgres: %s", id, err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.PostKey(id), post, postCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set post(%d) in redis: %s", id, err.Error())
	}

	return mapper.FullPostToDTO(post), nil
}

// FindUserPosts fails with ErrNotFound when the user has no live posts.
// That strictness is deliberate and differs from SearchByContent, which
// reports no matches as an empty result.
func (s *postService) FindUserPosts(ctx context.Context, userID uuid.UUID) ([]*dto.Post, error) {
	cached, err := redisrepo.GetMany[model.FullPost](s.repo.Redis.Default, ctx, redisrepo.OwnerPostsKey(userID.String()))
	if err == nil && len(cached) > 0 {
		return mapper.FullPostsToDTOs(cached), nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get owner(%s) posts from redis: %s", userID.String(), err.Error())
	}

	posts, err := s.repo.Postgres.Post.FindByAuthor(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find owner(%s) posts from postgres: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	if len(posts) == 0 {
		return nil, ErrUserPostsNotFound
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.OwnerPostsKey(userID.String()), posts, postCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set owner(%s) posts in redis: %s", userID.String(), err.Error())
	}

	return mapper.FullPostsToDTOs(posts), nil
}

// FindUserFriendsPosts concatenates each friend's posts in friendship order.
// No global time merge and no pagination; an empty feed is a valid result.
func (s *postService) FindUserFriendsPosts(ctx context.Context, userID uuid.UUID) ([]*dto.Post, error) {
	friendships, err := s.repo.Postgres.Friendship.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) friendships: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	feed := []*dto.Post{}
	for _, friendship := range friendships {
		posts, err := s.repo.Postgres.Post.FindByAuthor(ctx, friendship.FriendID)
		if err != nil {
			s.logger.Sugar().Errorf("failed to find friend(%s) posts: %s", friendship.FriendID.String(), err.Error())
			return nil, ErrInternal
		}

		feed = append(feed, mapper.FullPostsToDTOs(posts)...)
	}

	return feed, nil
}

func (s *postService) FindAll(ctx context.Context) ([]*dto.Post, error) {
	posts, err := s.repo.Postgres.Post.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts from postgres: %s", err.Error())
		return nil, ErrInternal
	}

	return mapper.FullPostsToDTOs(posts), nil
}

func (s *postService) SearchByContent(ctx context.Context, term string, sortOrder string) ([]*dto.Post, error) {
	if strings.TrimSpace(term) == "" {
		return nil, ErrSearchTermRequired
	}

	posts, err := s.repo.Postgres.Post.SearchByContent(ctx, term)
	if err != nil {
		s.logger.Sugar().Errorf("failed to search posts by content: %s", err.Error())
		return nil, ErrInternal
	}

	switch sortOrder {
	case SortNameAsc:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Post.Content < posts[j].Post.Content
		})
	case SortNameDesc:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Post.Content > posts[j].Post.Content
		})
	default:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Post.CreatedAt.After(posts[j].Post.CreatedAt)
		})
	}

	return mapper.FullPostsToDTOs(posts), nil
}

// Edit mutates content, visibility and the modification timestamp. Media and
// author never change through this path.
func (s *postService) Edit(ctx context.Context, postDto *dto.Post) (*dto.Post, error) {
	if postDto == nil {
		return nil, ErrPostRequired
	}

	post, err := s.repo.Postgres.Post.FindByID(ctx, postDto.ID)
	if err == pgx.ErrNoRows {
		return nil, ErrPostNotFound
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) from postgres: %s", postDto.ID, err.Error())
		return nil, ErrInternal
	}

	post.Post.Content = postDto.Content
	post.Post.Visibility = postDto.Visibility
	post.Post.ModifiedAt = time.Now()

	if err := s.repo.Postgres.Post.Update(ctx, post.Post); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to update post(%d): %s", post.Post.ID, err.Error())
		return nil, ErrInternal
	}

	s.invalidatePost(ctx, post.Post.ID)
	s.invalidateOwnerPosts(ctx, post.Post.AuthorID)

	return mapper.FullPostToDTO(post), nil
}

// ChangeDisplayPicture uploads the picture once, publishes it as a new photo
// post, and points the user's profile or cover field at it. Unrecognized
// kinds update nothing unless Config.StrictPictureKind is set.
func (s *postService) ChangeDisplayPicture(ctx context.Context, file *dto.UploadFile, userID uuid.UUID, pictureKind string) (*dto.Post, error) {
	if s.cfg.StrictPictureKind && pictureKind != PictureKindProfile && pictureKind != PictureKindCover {
		return nil, ErrUnknownPictureKind
	}

	user, err := s.repo.Postgres.User.FindByID(ctx, userID)
	if err == pgx.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s): %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	url, err := s.blobStorage.Upload(ctx, file.Data, file.Name)
	if err != nil {
		s.logger.Sugar().Errorf("failed to upload display picture for user(%s): %s", userID.String(), err.Error())
		return nil, err
	}

	postDto := &dto.Post{AuthorID: user.ID, Visibility: model.VisibilityPublic}
	created, err := s.Create(ctx, postDto, nil, &dto.Photo{URL: url}, nil)
	if err != nil {
		return nil, err
	}

	var updates map[string]interface{}
	switch pictureKind {
	case PictureKindProfile:
		updates = map[string]interface{}{"profile_picture_url": url}
	case PictureKindCover:
		updates = map[string]interface{}{"cover_picture_url": url}
	}
	if updates != nil {
		if err := s.repo.Postgres.User.Update(ctx, userID, updates); err != nil {
			s.logger.Sugar().Errorf("failed to update user(%s) %s picture: %s", userID.String(), pictureKind, err.Error())
			return nil, ErrInternal
		}
	}

	return created, nil
}

func (s *postService) publishPostCreated(ctx context.Context, post *dto.Post) {
	if s.rabbitmq == nil {
		return
	}

	msg := dto.MQPostCreatedMsg{
		PostID:    post.ID,
		AuthorID:  post.AuthorID,
		PhotoURL:  post.PhotoURL,
		VideoURL:  post.VideoURL,
		CreatedAt: post.CreatedAt,
	}
	if err := s.rabbitmq.PublishJSON(ctx, rabbitmq.PostCreatedQueue, msg); err != nil {
		s.logger.Sugar().Errorf("failed to publish post(%d) created message: %s", post.ID, err.Error())
	}
}

func (s *postService) invalidatePost(ctx context.Context, postID int64) {
	if err := s.repo.Redis.Default.Del(ctx, redisrepo.PostKey(postID)).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%d) from redis: %s", postID, err.Error())
	}
}

func (s *postService) invalidateOwnerPosts(ctx context.Context, ownerID uuid.UUID) {
	keys, err := s.repo.Redis.Default.Keys(ctx, redisrepo.OwnerPostsPattern(ownerID.String())).Result()
	if err != nil {
		s.logger.Sugar().Errorf("failed to list owner(%s) post keys in redis: %s", ownerID.String(), err.Error())
		return
	}
	if len(keys) == 0 {
		return
	}

	if err := s.repo.Redis.Default.Del(ctx, keys...).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to delete owner(%s) post keys from redis: %s", ownerID.String(), err.Error())
	}
}

