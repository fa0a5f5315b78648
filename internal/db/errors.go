package db

import "errors"

// ErrKeyNotFound signals a missing key.
var ErrKeyNotFound = errors.New("db: key not found")

// Op constants map to Redis command names for error context.
const (
	OpHSet      = "HSET"
	OpHGetAll   = "HGETALL"
	OpDel       = "DEL"
	OpExists    = "EXISTS"
	OpZAdd      = "ZADD"
	OpZRem      = "ZREM"
	OpZCard     = "ZCARD"
	OpZRevRange = "ZREVRANGE"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
