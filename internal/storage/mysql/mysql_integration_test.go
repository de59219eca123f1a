//go:build integration

package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"realestate_chatbot/internal/domain"
	mysqlrepo "realestate_chatbot/internal/storage/mysql"
)

func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return filepath.Join("..", "..", "..", "migrations")
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := migrationsDir()

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir %s: %v", dir, err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	// Start isolated MySQL; let Docker pick a free host port.
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=realestate",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/realestate?parseTime=true&multiStatements=true&charset=utf8mb4&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

func TestRepo_MySQL_UsersAndHistory(t *testing.T) {
	repo := mysqlrepo.New(startMySQL(t))
	ctx := context.Background()

	u := domain.User{
		ID: "6f1c7a1e-0000-4000-8000-000000000001", Name: "Asha", Email: "asha@example.com",
		PasswordHash: "$2a$10$hash", Role: domain.RoleUser, CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := repo.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	dup := u
	dup.ID = "6f1c7a1e-0000-4000-8000-000000000002"
	if err := repo.CreateUser(ctx, dup); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("duplicate email: %v", err)
	}

	got, err := repo.GetUserByEmail(ctx, u.Email)
	if err != nil || got.ID != u.ID || !got.CreatedAt.Equal(u.CreatedAt) {
		t.Fatalf("GetUserByEmail: %v %+v", err, got)
	}
	if _, err := repo.GetUserByID(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing user: %v", err)
	}

	empty, err := repo.LoadUserChat(ctx, u.ID)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty transcript: %v %+v", err, empty)
	}

	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	if err := repo.AppendUserChat(ctx, u.ID, []domain.ChatTurn{
		{Text: "Mumbai", Sender: domain.SenderUser, Timestamp: ts},
		{Text: "🏢 *Investment Opportunities in Mumbai*", Sender: domain.SenderBot, Timestamp: ts},
	}); err != nil {
		t.Fatalf("AppendUserChat: %v", err)
	}
	turns, err := repo.LoadUserChat(ctx, u.ID)
	if err != nil || len(turns) != 2 {
		t.Fatalf("LoadUserChat: %v %+v", err, turns)
	}
	if turns[0].Sender != domain.SenderUser || turns[1].Text != "🏢 *Investment Opportunities in Mumbai*" {
		t.Fatalf("unexpected turns: %+v", turns)
	}
}
