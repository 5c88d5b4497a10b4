package repositories

import (
	"errors"
	"fmt"
	"net"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

var (
	// ErrStoreUnavailable means Neo4j could not be reached. Callers may retry.
	ErrStoreUnavailable = errors.New("graph store unavailable")

	// ErrStoreQueryFailed means Neo4j answered with an error or with records
	// that could not be decoded.
	ErrStoreQueryFailed = errors.New("graph store query failed")
)

// classify wraps a driver error with the matching sentinel.
func classify(op string, err error) error {
	var netErr net.Error
	if neo4j.IsConnectivityError(err) || errors.As(err, &netErr) {
		return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreQueryFailed, err)
}

func decodeError(op, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrStoreQueryFailed, fmt.Sprintf(format, args...))
}

func errMissingKey(key string) error {
	return fmt.Errorf("could not find return value '%s' in query result", key)
}

func errWrongKind(key, kind string, value any) error {
	return fmt.Errorf("return value '%s' is not a %s (got %T)", key, kind, value)
}
