package sl

import (
	"log/slog"
)

func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Op tags a log line with the operation that produced it
func Op(op string) slog.Attr {
	return slog.String("op", op)
}
