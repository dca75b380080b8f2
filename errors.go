package snowflakedriver

import "errors"

var (
	ErrUnknownADBCVersion     = errors.New("unknown adbc version")
	ErrUnsupportedADBCVersion = errors.New("unsupported adbc version")
	ErrNilLogger              = errors.New("logger is nil")
	ErrNilDriver              = errors.New("driver constructor returned nil driver")
)
