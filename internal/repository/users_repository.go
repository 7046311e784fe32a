package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/nekocare/backend/internal/error_values"
	"github.com/nekocare/backend/pkg/entity"
)

const anonymousUserName = "anonymous"

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(conn PgConnection) *UsersRepository {
	mustPing(conn, "usersRepo")
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) CreateAnonymous(ctx context.Context, secretHash string) (uuid.UUID, error) {
	var id uuid.UUID
	row := ur.conn.QueryRow(ctx,
		`INSERT INTO users (name, password_hash, is_anonymous) VALUES ($1, $2, TRUE) RETURNING id;`,
		anonymousUserName,
		secretHash,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.UUID{}, errors.New("creating anonymous user db error: " + err.Error())
	}
	return id, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, name, password_hash, is_anonymous FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&user.ID, &user.Name, &user.PasswordHash, &user.IsAnonymous); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return &user, nil
}
