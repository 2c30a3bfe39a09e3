//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq (go:generate mocks in internal/service and internal/transport)
// - github.com/pressly/goose/v3/cmd/goose (ad-hoc migrations; ksa migrate covers the common cases)
