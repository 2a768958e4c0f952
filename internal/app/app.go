package app

import (
	"context"
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/bestbuy-store/internal/cli"
	"github.com/xenking/bestbuy-store/internal/domain/order"
	"github.com/xenking/bestbuy-store/internal/domain/store"
	"github.com/xenking/bestbuy-store/internal/inventory"
)

// Run seeds the catalog, wires the order service and serves the interactive
// menu on stdin/stdout until the user quits or ctx is canceled. It is the
// single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	return run(ctx, lg, m.TracerProvider(), m.MeterProvider(), cfg, os.Stdin, os.Stdout)
}

func run(
	ctx context.Context,
	lg *zap.Logger,
	tp trace.TracerProvider,
	mp metric.MeterProvider,
	cfg *Config,
	in io.Reader,
	out io.Writer,
) error {
	ctx = zctx.Base(ctx, lg)
	lg.Info("Initializing", zap.Strings("inventory", cfg.Inventory.Files))

	st, err := seed(ctx, cfg.Inventory)
	if err != nil {
		return errors.Wrap(err, "seed inventory")
	}
	lg.Info("Inventory loaded",
		zap.Int("products", len(st.Products())),
		zap.Int("total_quantity", st.TotalQuantity()),
	)

	orderService, err := order.NewService(st, tp, mp)
	if err != nil {
		return errors.Wrap(err, "create order service")
	}

	shell := cli.New(st, orderService, out)
	if err := shell.Run(ctx, in); err != nil {
		return errors.Wrap(err, "shell")
	}

	lg.Info("Bye")
	return nil
}

// seed builds the store from the configured inventory documents, falling
// back to the built-in catalog.
func seed(ctx context.Context, cfg InventoryConfig) (*store.Store, error) {
	var (
		doc *inventory.Document
		err error
	)
	if len(cfg.Files) == 0 {
		doc, err = inventory.Default()
	} else {
		doc, err = inventory.Load(ctx, cfg.Files)
	}
	if err != nil {
		return nil, err
	}

	products, err := doc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build catalog")
	}
	return store.New(products...), nil
}
