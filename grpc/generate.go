// Package grpc holds the karaokesh wire contract and the code protoc
// generates from it.
package grpc

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative karaokesh.proto
