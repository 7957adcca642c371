package snowflake

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/leapconn/internal/testutil"
	"github.com/leapstack-labs/leapconn/pkg/core"
	"github.com/leapstack-labs/leapconn/pkg/dialect"
	"github.com/leapstack-labs/leapconn/pkg/driverreg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	tests := []struct {
		name     string
		conn     core.Connection
		expected string
	}{
		{
			name: "native",
			conn: core.Connection{
				AccessType:   core.AccessNative,
				Hostname:     "h",
				Port:         443,
				DatabaseName: "DB",
				Attributes:   map[string]string{"warehouse": "W1"},
			},
			expected: "jdbc:snowflake://h:443/?db=DB&warehouse=W1",
		},
		{
			name: "jndi builds the native url",
			conn: core.Connection{
				AccessType:   core.AccessJNDI,
				Hostname:     "acme.snowflakecomputing.com",
				Port:         8443,
				DatabaseName: "ANALYTICS",
				Attributes:   map[string]string{"warehouse": "COMPUTE_WH", "role": "SYSADMIN"},
			},
			expected: "jdbc:snowflake://acme.snowflakecomputing.com:8443/?db=ANALYTICS&warehouse=COMPUTE_WH",
		},
		{
			name: "missing warehouse renders null",
			conn: core.Connection{
				Hostname:     "h",
				Port:         443,
				DatabaseName: "DB",
			},
			expected: "jdbc:snowflake://h:443/?db=DB&warehouse=null",
		},
		{
			name: "empty warehouse passes through",
			conn: core.Connection{
				Hostname:     "h",
				Port:         443,
				DatabaseName: "DB",
				Attributes:   map[string]string{"warehouse": ""},
			},
			expected: "jdbc:snowflake://h:443/?db=DB&warehouse=",
		},
		{
			name:     "malformed input still yields a string",
			conn:     core.Connection{},
			expected: "jdbc:snowflake://:0/?db=&warehouse=null",
		},
		{
			name: "odbc uses only the database name",
			conn: core.Connection{
				AccessType:   core.AccessODBC,
				Hostname:     "ignored",
				Port:         1,
				DatabaseName: "SnowDSN",
				Attributes:   map[string]string{"warehouse": "W1"},
			},
			expected: "odbc:SnowDSN",
		},
		{
			name:     "odbc with empty database",
			conn:     core.Connection{AccessType: core.AccessODBC},
			expected: "odbc:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Snowflake.URL(tt.conn))
		})
	}
}

func TestStaticMetadata(t *testing.T) {
	d := New(nil)

	assert.Equal(t, "&", d.ExtraOptionSeparator())
	assert.Equal(t, "", d.StartQuote())
	assert.Equal(t, "", d.EndQuote())
	assert.Equal(t, "jdbc:snowflake://", d.NativeURLPrefix())
	assert.Equal(t, "snowflake", d.NativeDriver())
	assert.Equal(t, []string{"github.com/snowflakedb/gosnowflake"}, d.UsedLibraries())
	assert.Equal(t, []string{"warehouse"}, d.RequiredAttributes())

	dt := d.DatabaseType()
	assert.Equal(t, "Snowflake", dt.Name)
	assert.Equal(t, "SNOWFLAKEHV", dt.ShortName)
	assert.Equal(t, 443, dt.DefaultPort)
	assert.Equal(t, []core.AccessType{core.AccessNative, core.AccessODBC, core.AccessJNDI}, dt.AccessTypes)
	assert.Contains(t, dt.ExtraOptionsHelpURL, "jdbc-driver-connection-string")
}

func TestDDLUnsupported(t *testing.T) {
	values := []core.ValueMeta{
		{Name: "id", Kind: core.KindInteger},
		{Name: "name", Kind: core.KindString, Length: 20},
		{},
	}
	opts := core.ColumnOptions{PrimaryKey: "id", UseAutoinc: true, AddFieldName: true, WithSemicolon: true}

	for _, v := range values {
		def, ok := Snowflake.FieldDefinition(v, opts)
		assert.False(t, ok)
		assert.Empty(t, def)

		add, ok := Snowflake.AddColumnStatement("t", v, opts)
		assert.False(t, ok)
		assert.Empty(t, add)

		mod, ok := Snowflake.ModifyColumnStatement("t", v, opts)
		assert.False(t, ok)
		assert.Empty(t, mod)
	}
}

func TestIsUsable(t *testing.T) {
	acceptsSnowflake := driverreg.DriverFunc{DriverName: "delegating", Accept: func(url string) (bool, error) {
		return url == "jdbc:snowflake://server", nil
	}}
	rejects := driverreg.DriverFunc{DriverName: "pgx", Accept: func(string) (bool, error) { return false, nil }}
	failing := driverreg.DriverFunc{DriverName: "broken", Accept: func(string) (bool, error) { return false, errors.New("boom") }}
	panics := driverreg.DriverFunc{DriverName: "crashy", Accept: func(string) (bool, error) { panic("bad driver") }}
	loadable := func(name string) bool { return name == "snowflake" }

	tests := []struct {
		name string
		env  core.Environment
		want bool
	}{
		{
			name: "native driver loadable with empty registry",
			env:  core.Environment{CanLoad: loadable},
			want: true,
		},
		{
			name: "native driver loadable with rejecting registry",
			env:  core.Environment{CanLoad: loadable, Drivers: driverreg.Snapshot{rejects, failing}},
			want: true,
		},
		{
			name: "registered driver accepts probe url",
			env:  core.Environment{Drivers: driverreg.Snapshot{rejects, acceptsSnowflake}},
			want: true,
		},
		{
			name: "erroring driver does not stop the scan",
			env:  core.Environment{Drivers: driverreg.Snapshot{failing, acceptsSnowflake}},
			want: true,
		},
		{
			name: "panicking driver does not stop the scan",
			env:  core.Environment{Drivers: driverreg.Snapshot{panics, acceptsSnowflake}},
			want: true,
		},
		{
			name: "only misbehaving drivers",
			env:  core.Environment{Drivers: driverreg.Snapshot{failing, panics, rejects}},
			want: false,
		},
		{
			name: "nothing available",
			env:  core.Environment{CanLoad: func(string) bool { return false }},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(testutil.NewTestLogger(t))
			require.NotPanics(t, func() {
				assert.Equal(t, tt.want, d.IsUsable(tt.env))
				assert.Equal(t, tt.want, d.Initialize(tt.env, "net.snowflake.client.jdbc.SnowflakeDriver"))
			})
		})
	}
}

func TestIsUsable_LiveRegistry(t *testing.T) {
	// The Go Snowflake driver is not linked into this module's tests.
	assert.False(t, Snowflake.IsUsable(driverreg.DefaultEnvironment(nil)))
}

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("snowflakehv")
	require.True(t, ok, "snowflake dialect should be registered")
	assert.Same(t, Snowflake, d)
}

func TestBuildURLAndValidate(t *testing.T) {
	conn := core.Connection{
		Hostname:     "h",
		Port:         443,
		DatabaseName: "DB",
		Attributes:   map[string]string{"warehouse": "W1"},
		ExtraOptions: map[string]string{"role": "ANALYST", "schema": "PUBLIC"},
	}

	require.NoError(t, dialect.ValidateConnection(Snowflake, conn))
	assert.Equal(t, "jdbc:snowflake://h:443/?db=DB&warehouse=W1&role=ANALYST&schema=PUBLIC", dialect.BuildURL(Snowflake, conn))

	conn.Attributes = nil
	err := dialect.ValidateConnection(Snowflake, conn)
	require.ErrorIs(t, err, dialect.ErrInvalidConnection)
	assert.Contains(t, err.Error(), `"warehouse"`)

	odbc := core.Connection{AccessType: core.AccessODBC, DatabaseName: "SnowDSN"}
	assert.NoError(t, dialect.ValidateConnection(Snowflake, odbc), "odbc needs neither host nor warehouse")
}
