package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/vibecommerce/user-service/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.UserEntity, error)
	List(ctx context.Context) ([]model.UserEntity, error)
	Update(ctx context.Context, data *model.UserEntity) error
	Delete(ctx context.Context, id uint64) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery  = `INSERT INTO users (first_name, last_name, email, password, address) VALUES (?, ?, ?, ?, ?)`
	getUserByIDQuery = `SELECT id, first_name, last_name, email, password, address FROM users WHERE id = ?`
	// insertion order: id is auto-assigned and never reused
	listUsersQuery     = `SELECT id, first_name, last_name, email, password, address FROM users ORDER BY id`
	updateUserQuery    = `UPDATE users SET first_name = ?, last_name = ?, email = ?, password = ?, address = ? WHERE id = ?`
	deleteUserQuery    = `DELETE FROM users WHERE id = ?`
	existsByEmailQuery = `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.FirstName, data.LastName, data.Email, data.Password, data.Address)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.UserEntity, error) {
	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, getUserByIDQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.UserEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listUsersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.UserEntity, 0)
	for rows.Next() {
		var entity model.UserEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		users = append(users, entity)
	}
	return users, rows.Err()
}

func (s *SQL) Update(ctx context.Context, data *model.UserEntity) error {
	_, err := s.conn.ExecContext(ctx, updateUserQuery, data.FirstName, data.LastName, data.Email, data.Password, data.Address, data.ID)
	return err
}

// Delete removes the row and reports whether anything was deleted.
func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, deleteUserQuery, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := s.conn.GetContext(ctx, &exists, existsByEmailQuery, email); err != nil {
		return false, err
	}
	return exists, nil
}
