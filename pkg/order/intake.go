package order

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/orderkit/pkg/logger"
	"github.com/dmitrymomot/orderkit/pkg/validator"
)

// Sink receives orders that passed construction.
type Sink interface {
	Accept(ctx context.Context, o Order, s Summary) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, o Order, s Summary) error

func (f SinkFunc) Accept(ctx context.Context, o Order, s Summary) error {
	return f(ctx, o, s)
}

// Intake constructs orders, summarizes accepted ones and hands them to a Sink.
type Intake struct {
	validator *Validator
	sink      Sink
	logger    *slog.Logger
}

// IntakeOption configures an Intake.
type IntakeOption func(*Intake)

// WithSink sets where accepted orders are delivered.
func WithSink(s Sink) IntakeOption {
	return func(i *Intake) { i.sink = s }
}

// WithLogger sets the logger used for accept/reject records.
func WithLogger(l *slog.Logger) IntakeOption {
	return func(i *Intake) {
		if l != nil {
			i.logger = l
		}
	}
}

// NewIntake creates an Intake around v. A nil v uses the default validator.
func NewIntake(v *Validator, opts ...IntakeOption) *Intake {
	if v == nil {
		v = defaultValidator
	}
	i := &Intake{
		validator: v,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(i)
	}
	i.logger = i.logger.With(logger.Component("order.intake"))
	return i
}

// Submit constructs an order from in and, on success, passes it with its
// summary to the sink. Validation failures are returned unchanged; sink
// failures are wrapped in ErrRejected.
func (i *Intake) Submit(ctx context.Context, in Input) (Order, Summary, error) {
	o, err := i.validator.Construct(in)
	if err != nil {
		attrs := []any{logger.OrderID(in.OrderID), logger.Error(err)}
		if errs := validator.ExtractValidationErrors(err); !errs.IsEmpty() {
			attrs = append(attrs, logger.Violation(errs[0].Field, errs[0].Kind.String()))
		}
		i.logger.WarnContext(ctx, "order rejected", attrs...)
		return Order{}, Summary{}, err
	}

	summary := Summarize(o)
	if i.sink != nil {
		if err := i.sink.Accept(ctx, o, summary); err != nil {
			i.logger.ErrorContext(ctx, "order sink failed", logger.OrderID(o.ID), logger.Error(err))
			return Order{}, Summary{}, fmt.Errorf("%w: %w", ErrRejected, err)
		}
	}

	i.logger.InfoContext(ctx, "order accepted",
		logger.OrderID(o.ID),
		slog.Int("items", summary.ItemCount),
		logger.Amount("total", summary.Total),
	)
	return o, summary, nil
}
