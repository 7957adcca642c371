// Package main provides the leapconn CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/leapconn/internal/cli"

	// Register dialects and the adapters that can open them.
	_ "github.com/leapstack-labs/leapconn/pkg/adapters/duckdb"
	_ "github.com/leapstack-labs/leapconn/pkg/adapters/mysql"
	_ "github.com/leapstack-labs/leapconn/pkg/adapters/postgres"
	_ "github.com/leapstack-labs/leapconn/pkg/adapters/redshift"
	_ "github.com/leapstack-labs/leapconn/pkg/adapters/sqlite"
	_ "github.com/leapstack-labs/leapconn/pkg/dialects/snowflake"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
