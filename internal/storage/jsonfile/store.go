// Package jsonfile keeps users and chat transcripts in two JSON documents
// under a data directory. It is meant for single-process deployments.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"realestate_chatbot/internal/domain"
)

const (
	usersFile   = "users.json"
	historyFile = "chat_history.json"
)

type userRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type chatRecord struct {
	UserID    string            `json:"userId"`
	Messages  []domain.ChatTurn `json:"messages"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// Store implements domain.UserRepository and domain.ChatHistoryRepository.
// Every write rewrites the whole document through a temp file and rename.
type Store struct {
	dir string
	mu  sync.Mutex
	now func() time.Time
}

// Open creates dir and empty documents as needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &Store{dir: dir, now: time.Now}
	for _, name := range []string{usersFile, historyFile} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			if err := os.WriteFile(p, []byte("[]"), 0o644); err != nil {
				return nil, fmt.Errorf("init %s: %w", name, err)
			}
		}
	}
	return s, nil
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) CreateUser(ctx context.Context, u domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []userRecord
	if err := s.read(usersFile, &users); err != nil {
		return err
	}
	for _, existing := range users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrUserExists
		}
	}
	users = append(users, userRecord{
		ID: u.ID, Name: u.Name, Email: u.Email, Password: u.PasswordHash, Role: u.Role, CreatedAt: u.CreatedAt,
	})
	return s.write(usersFile, users)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.findUser(ctx, func(r userRecord) bool { return strings.EqualFold(r.Email, email) })
}

func (s *Store) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return s.findUser(ctx, func(r userRecord) bool { return r.ID == id })
}

func (s *Store) findUser(ctx context.Context, match func(userRecord) bool) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []userRecord
	if err := s.read(usersFile, &users); err != nil {
		return domain.User{}, err
	}
	for _, r := range users {
		if match(r) {
			return domain.User{
				ID: r.ID, Name: r.Name, Email: r.Email, PasswordHash: r.Password, Role: r.Role, CreatedAt: r.CreatedAt,
			}, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (s *Store) LoadUserChat(ctx context.Context, userID string) ([]domain.ChatTurn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []chatRecord
	if err := s.read(historyFile, &all); err != nil {
		return nil, err
	}
	for _, r := range all {
		if r.UserID == userID {
			out := make([]domain.ChatTurn, len(r.Messages))
			copy(out, r.Messages)
			return out, nil
		}
	}
	return []domain.ChatTurn{}, nil
}

func (s *Store) AppendUserChat(ctx context.Context, userID string, turns []domain.ChatTurn) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []chatRecord
	if err := s.read(historyFile, &all); err != nil {
		return err
	}
	now := s.now().UTC()
	idx := -1
	for i := range all {
		if all[i].UserID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		all = append(all, chatRecord{UserID: userID, Messages: []domain.ChatTurn{}, CreatedAt: now})
		idx = len(all) - 1
	}
	all[idx].Messages = append(all[idx].Messages, turns...)
	all[idx].UpdatedAt = now
	return s.write(historyFile, all)
}

func (s *Store) read(name string, dst any) error {
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (s *Store) write(name string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
