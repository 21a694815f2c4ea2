// Package oas holds the HTTP server and client generated from
// api/openapi.yaml. Run `go generate ./internal/oas` after editing the
// document.
package oas

//go:generate go tool ogen --target . --package oas --clean ../../api/openapi.yaml
