package postgres

import (
	"context"

	"github.com/SocialNetworkApp/post-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type friendshipRepo struct {
	db *pgxpool.Pool
}

func newFriendshipRepo(db *pgxpool.Pool) Friendship {
	return &friendshipRepo{
		db: db,
	}
}

func (r *friendshipRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Friendship, error) {
	rows, err := r.db.Query(
		ctx,
		"SELECT f.id, f.user_id, f.friend_id FROM friendships f WHERE f.user_id = $1 AND f.is_deleted = FALSE ORDER BY f.id",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var friendships []*model.Friendship
	for rows.Next() {
		var f model.Friendship
		if err := rows.Scan(&f.ID, &f.UserID, &f.FriendID); err != nil {
			return nil, err
		}
		friendships = append(friendships, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return friendships, nil
}
