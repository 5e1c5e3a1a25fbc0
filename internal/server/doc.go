// Package server runs the HTTP transport of the catalog.
//
// It owns the http.Server built from configuration, listens for stop
// signals and drains in-flight requests on shutdown.
package server
