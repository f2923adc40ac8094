// Package proto contains the generated gRPC bindings for the interview
// runtime service. The generated .pb.go files are not checked in;
// regenerate them with go generate (requires protoc with the Go and
// Go gRPC plugins).
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative interview.proto
