package main

import (
	"testing"

	"github.com/leapstack-labs/leapconn/pkg/adapter"
	"github.com/leapstack-labs/leapconn/pkg/dialect"
	"github.com/stretchr/testify/assert"
)

func TestLinkedDialects(t *testing.T) {
	for _, code := range []string{"SNOWFLAKEHV", "POSTGRESQL", "REDSHIFT", "MYSQL", "SQLITE", "DUCKDB"} {
		assert.True(t, dialect.IsRegistered(code), "dialect %s should be registered", code)
	}
}

func TestLinkedAdapters(t *testing.T) {
	for _, code := range []string{"POSTGRESQL", "REDSHIFT", "MYSQL", "SQLITE", "DUCKDB"} {
		assert.True(t, adapter.IsRegistered(code), "adapter %s should be registered", code)
	}
	assert.False(t, adapter.IsRegistered("SNOWFLAKEHV"))
}
