// Package migrations embeds the content store schema.
package migrations

import "embed"

//go:embed content/*.sql
var ContentFS embed.FS
