//go:build tools

// Package tools pins the versions of the linter and the formatter
// used on this repository, see the go.mod file.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "mvdan.cc/gofumpt"
)

// Lint:
// go run github.com/golangci/golangci-lint/cmd/golangci-lint run --fix

// Format source code:
// go run mvdan.cc/gofumpt -extra -l -w .

// Regenerate the JSON marshalers (also needs easyjson in $PATH):
// go run github.com/mailru/easyjson/easyjson handlers.go reserr/reserr.go
