//go:build tools

package tools

// Pins the code generator for internal/api and the migration CLI for
// internal/adapters/postgres/migrations.

import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/pressly/goose/v3/cmd/goose"
)
