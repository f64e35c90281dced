// Package testdb provisions a throwaway Postgres database for DB-backed
// tests. The server connection comes from TEST_DATABASE_URI; every instance
// creates a uniquely named database on it and drops it again on Down.
package testdb

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
)

// ErrNoDatabase is returned when TEST_DATABASE_URI is not set.
var ErrNoDatabase = errors.New("TEST_DATABASE_URI is not set")

type TestDBInstance struct {
	DSN string

	base string
	name string
}

func NewTestDBInstance() (*TestDBInstance, error) {
	base := os.Getenv("TEST_DATABASE_URI")
	if base == "" {
		return nil, ErrNoDatabase
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the test server: %w", err)
	}
	defer func() { _ = conn.Close(ctx) }()

	name := fmt.Sprintf("deliverycore_test_%d", time.Now().UnixNano())
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+name); err != nil {
		return nil, fmt.Errorf("failed to create the test database: %w", err)
	}

	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TEST_DATABASE_URI: %w", err)
	}
	u.Path = "/" + name

	return &TestDBInstance{DSN: u.String(), base: base, name: name}, nil
}

func (i *TestDBInstance) Down() {
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, i.base)
	if err != nil {
		return
	}
	defer func() { _ = conn.Close(ctx) }()

	_, _ = conn.Exec(ctx, "DROP DATABASE IF EXISTS "+i.name+" WITH (FORCE)")
}
