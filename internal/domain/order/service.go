package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/bestbuy-store/internal/domain/store"
)

const instrumentationName = "github.com/xenking/bestbuy-store/internal/domain/order"

// ErrEmptyItems is returned when an order has no line items.
var ErrEmptyItems = errors.New("items required")

// Catalog executes orders against the product set.
type Catalog interface {
	Order(items []store.LineItem) (decimal.Decimal, error)
}

// PlaceOrderRequest holds the input for placing an order.
type PlaceOrderRequest struct {
	Items []store.LineItem
}

// Service places orders against a catalog and records them in logs,
// metrics and traces.
type Service struct {
	catalog Catalog
	now     func() time.Time

	tracer trace.Tracer
	placed metric.Int64Counter
	failed metric.Int64Counter
	units  metric.Int64Counter
}

// NewService creates an order Service backed by catalog.
func NewService(catalog Catalog, tp trace.TracerProvider, mp metric.MeterProvider) (*Service, error) {
	meter := mp.Meter(instrumentationName)

	placed, err := meter.Int64Counter("store.orders.placed",
		metric.WithDescription("Orders charged successfully"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "placed counter")
	}
	failed, err := meter.Int64Counter("store.orders.failed",
		metric.WithDescription("Orders aborted by a failing line"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed counter")
	}
	units, err := meter.Int64Counter("store.order.items",
		metric.WithDescription("Units sold"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "items counter")
	}

	return &Service{
		catalog: catalog,
		now:     time.Now,
		tracer:  tp.Tracer(instrumentationName),
		placed:  placed,
		failed:  failed,
		units:   units,
	}, nil
}

// PlaceOrder charges every line of req against the catalog and returns the
// resulting order.
//
// Errors raised by the catalog are returned unwrapped so callers can branch
// on the product error kinds. Lines charged before a failing line are not
// rolled back.
func (s *Service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyItems
	}

	ctx, span := s.tracer.Start(ctx, "PlaceOrder",
		trace.WithAttributes(attribute.Int("order.lines", len(req.Items))),
	)
	defer span.End()

	lg := zctx.From(ctx)

	total, err := s.catalog.Order(req.Items)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "order failed")
		s.failed.Add(ctx, 1)
		lg.Warn("Order failed", zap.Int("lines", len(req.Items)), zap.Error(err))
		return nil, err
	}

	o := &Order{
		ID:        uuid.New().String(),
		Items:     req.Items,
		Total:     total,
		CreatedAt: s.now(),
	}

	span.SetAttributes(
		attribute.String("order.id", o.ID),
		attribute.String("order.total", o.Total.String()),
	)
	s.placed.Add(ctx, 1)
	s.units.Add(ctx, int64(o.Quantity()))
	lg.Info("Order placed",
		zap.String("id", o.ID),
		zap.Int("lines", len(o.Items)),
		zap.Int("units", o.Quantity()),
		zap.Stringer("total", o.Total),
	)

	return o, nil
}
