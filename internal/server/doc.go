// Package server runs the HTTP API together with the background workers and
// stops both on SIGINT, SIGTERM or SIGQUIT.
package server
