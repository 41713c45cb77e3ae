package postgres

import (
	"context"
	"time"

	"github.com/SocialNetworkApp/post-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const fullPostColumns = `p.id, p.author_id, p.content, p.visibility, p.created_at, p.modified_at,
	ph.id, ph.url, v.id, v.url`

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	now := time.Now()
	post.CreatedAt = now
	post.ModifiedAt = now
	if post.Visibility == "" {
		post.Visibility = model.VisibilityPublic
	}
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO posts(author_id, content, visibility, created_at, modified_at) VALUES($1, $2, $3, $4, $5) RETURNING id",
		post.AuthorID,
		post.Content,
		post.Visibility,
		post.CreatedAt,
		post.ModifiedAt,
	).Scan(&post.ID); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.FullPost, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+fullPostColumns+`
		FROM posts p
		LEFT JOIN post_photos ph ON ph.post_id = p.id
		LEFT JOIN post_videos v ON v.post_id = p.id
		WHERE p.id = $1 AND p.is_deleted = FALSE`,
		id,
	)
	return scanFullPost(row)
}

func (r *postRepo) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*model.FullPost, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+fullPostColumns+`
		FROM posts p
		LEFT JOIN post_photos ph ON ph.post_id = p.id
		LEFT JOIN post_videos v ON v.post_id = p.id
		WHERE p.author_id = $1 AND p.is_deleted = FALSE
		ORDER BY p.created_at DESC`,
		authorID,
	)
	if err != nil {
		return nil, err
	}
	return scanFullPosts(rows)
}

func (r *postRepo) FindAll(ctx context.Context) ([]*model.FullPost, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+fullPostColumns+`
		FROM posts p
		LEFT JOIN post_photos ph ON ph.post_id = p.id
		LEFT JOIN post_videos v ON v.post_id = p.id
		WHERE p.is_deleted = FALSE
		ORDER BY p.created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	return scanFullPosts(rows)
}

// SearchByContent matches case-insensitively anywhere in the content.
func (r *postRepo) SearchByContent(ctx context.Context, term string) ([]*model.FullPost, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+fullPostColumns+`
		FROM posts p
		LEFT JOIN post_photos ph ON ph.post_id = p.id
		LEFT JOIN post_videos v ON v.post_id = p.id
		WHERE p.is_deleted = FALSE AND p.content ILIKE '%' || $1 || '%'`,
		term,
	)
	if err != nil {
		return nil, err
	}
	return scanFullPosts(rows)
}

func (r *postRepo) Update(ctx context.Context, post model.Post) error {
	tag, err := r.db.Exec(
		ctx,
		"UPDATE posts SET content = $1, visibility = $2, modified_at = $3 WHERE id = $4 AND is_deleted = FALSE",
		post.Content,
		post.Visibility,
		post.ModifiedAt,
		post.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *postRepo) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(
		ctx,
		"UPDATE posts SET is_deleted = TRUE, deleted_at = $1 WHERE id = $2 AND is_deleted = FALSE",
		time.Now(),
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// AttachPhoto links a photo to the post and drops any video attachment,
// keeping the one-media-per-post invariant inside a single transaction.
func (r *postRepo) AttachPhoto(ctx context.Context, postID int64, url string) (*model.Photo, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM post_videos WHERE post_id = $1", postID); err != nil {
		return nil, err
	}

	photo := model.Photo{PostID: postID, URL: url}
	if err := tx.QueryRow(
		ctx,
		`INSERT INTO post_photos(post_id, url) VALUES($1, $2)
		ON CONFLICT (post_id) DO UPDATE SET url = EXCLUDED.url
		RETURNING id`,
		postID,
		url,
	).Scan(&photo.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &photo, nil
}

func (r *postRepo) AttachVideo(ctx context.Context, postID int64, url string) (*model.Video, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM post_photos WHERE post_id = $1", postID); err != nil {
		return nil, err
	}

	video := model.Video{PostID: postID, URL: url}
	if err := tx.QueryRow(
		ctx,
		`INSERT INTO post_videos(post_id, url) VALUES($1, $2)
		ON CONFLICT (post_id) DO UPDATE SET url = EXCLUDED.url
		RETURNING id`,
		postID,
		url,
	).Scan(&video.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &video, nil
}

func scanFullPost(row pgx.Row) (*model.FullPost, error) {
	var (
		post     model.Post
		photoID  *int64
		photoURL *string
		videoID  *int64
		videoURL *string
	)
	if err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Content,
		&post.Visibility,
		&post.CreatedAt,
		&post.ModifiedAt,
		&photoID,
		&photoURL,
		&videoID,
		&videoURL,
	); err != nil {
		return nil, err
	}

	full := &model.FullPost{Post: post}
	if photoID != nil && photoURL != nil {
		full.Photo = &model.Photo{ID: *photoID, PostID: post.ID, URL: *photoURL}
	}
	if videoID != nil && videoURL != nil {
		full.Video = &model.Video{ID: *videoID, PostID: post.ID, URL: *videoURL}
	}

	return full, nil
}

func scanFullPosts(rows pgx.Rows) ([]*model.FullPost, error) {
	defer rows.Close()

	var posts []*model.FullPost
	for rows.Next() {
		post, err := scanFullPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}
