package slogx

import (
	"fmt"
	"log/slog"
	"strings"
)

func Err(err error) slog.Attr {
	return slog.Any("err", err)
}

func Op(op string) slog.Attr {
	return slog.String("op", op)
}

func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", s, err)
	}

	return level, nil
}
