package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/jobboard-api/internal/config"
	"github.com/phrazzld/jobboard-api/internal/platform/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
	}{
		{name: "no flags", args: nil, want: options{}},
		{name: "migrate up", args: []string{"-migrate", "up"}, want: options{migrateCmd: "up"}},
		{name: "verbose status", args: []string{"-migrate=status", "-verbose"}, want: options{migrateCmd: "status", verbose: true}},
		{name: "unknown command", args: []string{"-migrate", "create"}, wantErr: true},
		{name: "unknown flag", args: []string{"-port", "80"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseFlags(tc.args)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRunMigrations_UnknownCommand(t *testing.T) {
	err := runMigrations(context.Background(), nil, "redo", false)
	assert.ErrorContains(t, err, `unknown migration command "redo"`)
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := postgres.Migrations.ReadDir(postgres.MigrationsDir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
	for _, e := range entries {
		assert.Regexp(t, `^\d+_[a-z_]+\.sql$`, e.Name())
	}
}

func TestPingWithRetry(t *testing.T) {
	tests := []struct {
		name      string
		attempts  int
		failures  int
		wantErr   bool
		wantPings int
	}{
		{name: "first ping succeeds", attempts: 3, failures: 0, wantPings: 1},
		{name: "succeeds after a failure", attempts: 3, failures: 1, wantPings: 2},
		{name: "gives up after the last attempt", attempts: 2, failures: 2, wantErr: true, wantPings: 2},
		{name: "zero attempts pings once", attempts: 0, failures: 1, wantErr: true, wantPings: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer func() { _ = db.Close() }()

			for i := 0; i < tc.wantPings; i++ {
				if i < tc.failures {
					mock.ExpectPing().WillReturnError(errors.New("connection refused"))
				} else {
					mock.ExpectPing()
				}
			}

			err = pingWithRetry(context.Background(), db, tc.attempts, slog.New(slog.NewTextHandler(io.Discard, nil)))

			if tc.wantErr {
				assert.ErrorContains(t, err, "failed to ping database")
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNewHTTPServer_UsesConfiguredTimeouts(t *testing.T) {
	app := &application{config: &config.Config{Server: config.ServerConfig{
		Port:                9090,
		ReadTimeoutSeconds:  5,
		WriteTimeoutSeconds: 10,
		IdleTimeoutSeconds:  30,
	}}}

	srv := app.newHTTPServer(nil)

	assert.Equal(t, ":9090", srv.Addr)
	assert.Equal(t, 5*time.Second, srv.ReadTimeout)
	assert.Equal(t, 10*time.Second, srv.WriteTimeout)
	assert.Equal(t, 30*time.Second, srv.IdleTimeout)
}
