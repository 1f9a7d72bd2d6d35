// Package plannerv1 holds the generated gRPC bindings for the planner
// sidecar protocol defined in planner.proto.
//
//go:generate protoc --go_out=paths=source_relative:. --go-grpc_out=paths=source_relative:. planner.proto
package plannerv1
