// Package server implements the read-only HTTP API using Echo framework.
//
// Routes: dashboard and posts state (JSON), health probes, Prometheus metrics, version.
package server
