package driverreg

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// acceptorDriver is a database/sql driver that decides URL acceptance itself.
type acceptorDriver struct{}

func (acceptorDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("not implemented")
}

func (acceptorDriver) AcceptsURL(url string) (bool, error) {
	if strings.Contains(url, "explode") {
		return false, errors.New("boom")
	}
	return strings.HasPrefix(url, "jdbc:custom-warehouse://"), nil
}

const acceptorName = "leapconn-test-acceptor"

func init() {
	sql.Register(acceptorName, acceptorDriver{})
}

func TestScheme(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"jdbc:snowflake://server", "snowflake"},
		{"JDBC:PostgreSQL://h:5432/db", "postgresql"},
		{"postgres://user@h/db", "postgres"},
		{"odbc:DSN", "odbc"},
		{"jdbc:", ""},
		{"server", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, Scheme(tt.url))
		})
	}
}

func TestSQLRegistry_ContainsRegisteredDrivers(t *testing.T) {
	// sqlmock registers itself as "sqlmock" at init
	_ = sqlmock.Sqlmock(nil)

	reg := NewSQLRegistry()
	names := reg.Names()
	assert.Contains(t, names, "sqlmock")
	assert.Contains(t, names, acceptorName)
	assert.Equal(t, names, RegisteredNames(reg))
}

func TestSQLRegistry_AcceptsURL(t *testing.T) {
	drivers := map[string]*sqlDriver{}
	for _, d := range NewSQLRegistry().Drivers() {
		drivers[d.Name()] = d.(*sqlDriver)
	}

	t.Run("scheme matches driver name", func(t *testing.T) {
		ok, err := drivers["sqlmock"].AcceptsURL("jdbc:sqlmock://anything")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("scheme mismatch", func(t *testing.T) {
		ok, err := drivers["sqlmock"].AcceptsURL("jdbc:snowflake://server")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("url without scheme", func(t *testing.T) {
		ok, err := drivers["sqlmock"].AcceptsURL("server")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("driver implementing URLAcceptor decides", func(t *testing.T) {
		d := drivers[acceptorName]
		ok, err := d.AcceptsURL("jdbc:custom-warehouse://server")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = d.AcceptsURL("jdbc:" + acceptorName + "://server")
		require.NoError(t, err)
		assert.False(t, ok, "URLAcceptor overrides scheme matching")

		_, err = d.AcceptsURL("jdbc:custom-warehouse://explode")
		assert.Error(t, err)
	})

	t.Run("unregistered driver errors", func(t *testing.T) {
		ok, err := (&sqlDriver{name: "no-such-driver"}).AcceptsURL("jdbc:no-such-driver://x")
		require.Error(t, err)
		assert.False(t, ok)
	})
}

func TestSQLLoader(t *testing.T) {
	assert.True(t, SQLLoader(acceptorName))
	assert.False(t, SQLLoader("snowflake-not-linked"))
}

func TestDefaultEnvironment(t *testing.T) {
	env := DefaultEnvironment(nil)
	require.NotNil(t, env.Drivers)
	assert.Nil(t, env.Logger)
	assert.True(t, env.Loadable(acceptorName))
	assert.Contains(t, RegisteredNames(env.Drivers), acceptorName)
}

func TestDefaultEnvironment_CarriesLogger(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	assert.Same(t, logger, DefaultEnvironment(logger).Logger)
}

func TestSnapshotAndDriverFunc(t *testing.T) {
	snap := Snapshot{
		DriverFunc{DriverName: "b"},
		DriverFunc{DriverName: "a", Accept: func(string) (bool, error) { return true, nil }},
	}

	assert.Len(t, snap.Drivers(), 2)
	assert.Equal(t, []string{"a", "b"}, RegisteredNames(snap))
	assert.Nil(t, RegisteredNames(nil))

	ok, err := snap[0].AcceptsURL("x")
	require.NoError(t, err)
	assert.False(t, ok, "nil Accept never accepts")
}
