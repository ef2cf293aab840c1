package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct{ upErr, downErr error }

func (f fakeMigrator) Up() error   { return f.upErr }
func (f fakeMigrator) Down() error { return f.downErr }

func restore() {
	pgxpoolNew = pgxpool.New
	sqlOpenDB = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

func TestNewPgxPool(t *testing.T) {
	t.Cleanup(restore)
	pgxpoolNew = func(ctx context.Context, url string) (*pgxpool.Pool, error) { return nil, errors.New("bad") }
	_, err := NewPgxPool(context.Background(), "url")
	require.Error(t, err)

	pgxpoolNew = func(ctx context.Context, url string) (*pgxpool.Pool, error) { return &pgxpool.Pool{}, nil }
	db, err := NewPgxPool(context.Background(), "url")
	require.NoError(t, err)
	require.NotNil(t, db)
}

func TestMigratorSetupErrors(t *testing.T) {
	steps := map[string]func(string) error{"up": RunMigrations, "down": RollbackAll}
	for name, step := range steps {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(restore)
			sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("open") }
			require.EqualError(t, step("url"), "open")

			sqlOpenDB = func(string, string) (*sql.DB, error) { return sql.Open("pgx", "") }
			postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, errors.New("drv") }
			require.EqualError(t, step("url"), "drv")

			postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
			iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, errors.New("src") }
			require.EqualError(t, step("url"), "src")

			iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, nil }
			migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
				return nil, errors.New("mig")
			}
			require.EqualError(t, step("url"), "mig")
		})
	}
}

func TestMigratorUsesEmbeddedSource(t *testing.T) {
	t.Cleanup(restore)
	var dsn, dir, sourceName, dbName string
	sqlOpenDB = func(driver, url string) (*sql.DB, error) {
		require.Equal(t, "pgx", driver)
		dsn = url
		return sql.Open("pgx", "")
	}
	postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
	iofsNewFn = func(f fs.FS, path string) (src.Driver, error) {
		dir = path
		// 真的從嵌入檔案建立 source，確認 migration 可被解析
		return iofs.New(f, path)
	}
	migrateNewWithInstance = func(sn string, d src.Driver, dn string, _ dbdriver.Driver) (migrateInstance, error) {
		sourceName, dbName = sn, dn
		first, err := d.First()
		require.NoError(t, err)
		require.EqualValues(t, 1, first)
		return fakeMigrator{}, nil
	}

	require.NoError(t, RunMigrations("postgres://planeta@localhost/planeta"))
	require.Equal(t, "postgres://planeta@localhost/planeta", dsn)
	require.Equal(t, "migrations", dir)
	require.Equal(t, "iofs", sourceName)
	require.Equal(t, "postgres", dbName)
}

func TestMigrateUpDown(t *testing.T) {
	cases := []struct {
		name    string
		step    func(string) error
		m       fakeMigrator
		wantErr bool
	}{
		{"up applied", RunMigrations, fakeMigrator{}, false},
		{"up already current", RunMigrations, fakeMigrator{upErr: migrate.ErrNoChange}, false},
		{"up failed", RunMigrations, fakeMigrator{upErr: errors.New("u")}, true},
		{"down applied", RollbackAll, fakeMigrator{}, false},
		{"down nothing to undo", RollbackAll, fakeMigrator{downErr: migrate.ErrNoChange}, false},
		{"down failed", RollbackAll, fakeMigrator{downErr: errors.New("d")}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Cleanup(restore)
			sqlOpenDB = func(string, string) (*sql.DB, error) { return sql.Open("pgx", "") }
			postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
			iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, nil }
			migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
				return tc.m, nil
			}
			err := tc.step("url")
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
