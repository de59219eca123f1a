package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	driver "github.com/go-sql-driver/mysql"

	"realestate_chatbot/internal/domain"
)

const errDuplicateEntry = 1062

// Repo implements domain.UserRepository and domain.ChatHistoryRepository.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, insertUserSQL, u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.CreatedAt.UTC())
	var me *driver.MySQLError
	if errors.As(err, &me) && me.Number == errDuplicateEntry {
		return domain.ErrUserExists
	}
	return err
}

func (r *Repo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, getUserByEmailSQL, email))
}

func (r *Repo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, getUserByIDSQL, id))
}

func (r *Repo) scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

func (r *Repo) AppendUserChat(ctx context.Context, userID string, turns []domain.ChatTurn) error {
	if len(turns) == 0 {
		return nil
	}
	values := make([]string, 0, len(turns))
	args := make([]any, 0, len(turns)*4)
	for _, t := range turns {
		values = append(values, "(?,?,?,?)")
		args = append(args, userID, string(t.Sender), t.Text, t.Timestamp.UTC())
	}
	// single statement keeps the user/bot pair together
	_, err := r.db.ExecContext(ctx, insertTurnsPrefix+strings.Join(values, ","), args...)
	return err
}

func (r *Repo) LoadUserChat(ctx context.Context, userID string) ([]domain.ChatTurn, error) {
	rows, err := r.db.QueryContext(ctx, listTurnsSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ChatTurn{}
	for rows.Next() {
		var t domain.ChatTurn
		var sender string
		if err := rows.Scan(&sender, &t.Text, &t.Timestamp); err != nil {
			return nil, err
		}
		t.Sender = domain.Sender(sender)
		out = append(out, t)
	}
	return out, rows.Err()
}
