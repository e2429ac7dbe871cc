// Package proto holds the execution sidecar protocol definition. The Go
// bindings are produced by protoc and are not committed.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative executor.proto
