// Package http implements the REST transport of the pizza specials catalog.
//
// It wires the chi router, the resource handlers for the catalog and the
// middleware around them: request tracing, access logging, Prometheus
// metrics, CORS, optional https redirection and bearer token
// authentication. Handlers check the caller's scope first and only then
// delegate to the service layer.
package http
