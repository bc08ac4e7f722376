// Package service runs a compiled recipe behind an HTTP endpoint.
//
// Clients POST a JSON or YAML document to /apply and receive the edited
// document in the same format. GET /healthz reports liveness. Failures are
// reported as JSON objects with an error message and the request ID.
//
// The service is assembled with go.uber.org/fx. NewModule registers a named
// edit service whose Config is supplied either through module options or by
// the container (for example with config.Provider). NewApp wires logging and
// any number of modules into a runnable application.
package service
