package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/min-collect/collect/collecterrors"
	"github.com/lguimbarda/min-collect/collect/core"
)

// Instrument names recorded by Meter.
const (
	ItemsCounter = "collect.items"
	StopsCounter = "collect.stops"
)

// Meter wraps c and counts its items and stops on meter, tagged with
// collector=name. Measurements are recorded against ctx.
func Meter[T, O any](ctx context.Context, c core.Collector[T, O], meter metric.Meter, name string) (*Observed[T, O], error) {
	items, err := meter.Int64Counter(ItemsCounter,
		metric.WithDescription("items handed to a collector"),
		metric.WithUnit("{item}"))
	if err != nil {
		return nil, collecterrors.Wrapf(err, "create %s counter", ItemsCounter)
	}
	stops, err := meter.Int64Counter(StopsCounter,
		metric.WithDescription("collectors that stopped before their source ran out"))
	if err != nil {
		return nil, collecterrors.Wrapf(err, "create %s counter", StopsCounter)
	}

	attrs := metric.WithAttributeSet(attribute.NewSet(attribute.String("collector", name)))
	return WithHooks(c, Hooks[T]{
		OnItem: func(int, T) { items.Add(ctx, 1, attrs) },
		OnStop: func(int) { stops.Add(ctx, 1, attrs) },
	}), nil
}
