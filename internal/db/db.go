// Package db opens source and destination database connections from
// connection URLs, picking the SQL driver from the URL scheme.
package db

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jmoiron/sqlx"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the database named by rawURL and verifies the
// connection with a ping.
func Open(ctx context.Context, rawURL string) (*sqlx.DB, error) {
	driver, dsn, err := driverDSN(rawURL)
	if err != nil {
		return nil, err
	}
	d, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := d.PingContext(ctx); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}

func driverDSN(rawURL string) (driver string, dsn string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid database URL: %w", err)
	}
	switch u.Scheme {
	case "postgres", "postgresql":
		// lib/pq accepts the URL form directly.
		return "postgres", rawURL, nil
	case "mysql":
		return "mysql", mysqlDSN(u), nil
	case "sqlite", "sqlite3", "file":
		name := u.Opaque
		if name == "" {
			name = u.Path
		}
		return "sqlite3", name, nil
	case "":
		return "", "", fmt.Errorf("database URL %q has no scheme", rawURL)
	default:
		return "", "", fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}
}

// mysqlDSN rewrites a mysql:// URL into the user:pass@tcp(host)/db form
// the driver expects.
func mysqlDSN(u *url.URL) string {
	var b strings.Builder
	if u.User != nil {
		b.WriteString(u.User.Username())
		if password, ok := u.User.Password(); ok {
			b.WriteString(":")
			b.WriteString(password)
		}
		b.WriteString("@")
	}
	fmt.Fprintf(&b, "tcp(%s)%s", u.Host, u.Path)
	if u.RawQuery != "" {
		b.WriteString("?")
		b.WriteString(u.RawQuery)
	}
	return b.String()
}
