package logger

import (
	"log/slog"
	"math"
	"strconv"

	"github.com/dmitrymomot/orderkit/pkg/sanitizer"
)

// Error records err under "error". A nil error yields an empty Attr,
// which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// OrderID records the order identifier under "order_id".
func OrderID(id string) slog.Attr {
	return slog.String("order_id", id)
}

// RunID records the identifier of one CLI invocation under "run_id".
func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

// Source records where a record was read from (file path or "-").
func Source(path string) slog.Attr {
	return slog.String("source", path)
}

// Component tags records emitted by a long-lived component.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Violation groups the field and kind of a single validation failure:
//
//	violation.field=items[0].quantity violation.kind=range
func Violation(field, kind string) slog.Attr {
	attrs := make([]slog.Attr, 0, 2)
	if field != "" {
		attrs = append(attrs, slog.String("field", field))
	}
	attrs = append(attrs, slog.String("kind", kind))
	return slog.Attr{Key: "violation", Value: slog.GroupValue(attrs...)}
}

// Amount records a money value rounded to whole cents, so 1033.5300000000002
// logs as 1033.53. Non-finite values are logged as plain floats.
func Amount(key string, v float64) slog.Attr {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return slog.Float64(key, v)
	}
	cents := sanitizer.ToCents(v)
	return slog.String(key, strconv.FormatFloat(sanitizer.FromCents(cents), 'f', 2, 64))
}
