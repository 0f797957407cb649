// Package migrations встраивает SQL миграции в бинарник.
package migrations

import "embed"

// FS содержит все *.sql файлы каталога.
//
//go:embed *.sql
var FS embed.FS
