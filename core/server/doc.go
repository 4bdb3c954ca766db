// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this
// package defines the configuration structures for server settings, such as
// the listen port, the optional API key and request body limits.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the start command when constructing the Fiber application.
package server
