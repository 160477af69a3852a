package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/lguimbarda/min-collect/collect/aggregate"
	"github.com/lguimbarda/min-collect/collect/core"
	"github.com/lguimbarda/min-collect/collect/pull"
	"github.com/lguimbarda/min-collect/internal/collecttest"
)

type run struct {
	items    []int
	stops    []int
	finished int
	stopped  bool
}

func (r *run) hooks() Hooks[int] {
	return Hooks[int]{
		OnItem:   func(_ int, item int) { r.items = append(r.items, item) },
		OnStop:   func(items int) { r.stops = append(r.stops, items) },
		OnFinish: func(items int, stopped bool) { r.finished, r.stopped = items, stopped },
	}
}

func TestHooks(t *testing.T) {
	for _, bulk := range []bool{false, true} {
		var r run
		c := WithHooks[int, []int](collecttest.Record[int](3), r.hooks())

		if bulk {
			c.CollectMany(pull.Of(1, 2, 3, 4, 5))
		} else {
			for _, n := range []int{1, 2, 3, 4} {
				c.Collect(n)
			}
		}
		got := c.Finish()

		require.Equal(t, []int{1, 2, 3}, got)
		require.True(t, r.stopped)
		require.Equal(t, []int{3}, r.stops[:1])
		if bulk {
			require.Equal(t, []int{1, 2, 3}, r.items)
			require.Equal(t, 3, r.finished)
		}
	}
}

func TestHooksStopReportedOnce(t *testing.T) {
	var r run
	c := WithHooks[int, []int](core.NewFuse[int, []int](collecttest.Record[int](1)), r.hooks())
	c.Collect(1)
	c.Collect(2)
	c.CollectMany(pull.Of(3))
	require.Len(t, r.stops, 1)
	require.Equal(t, 2, c.Items())
}

func TestObservedIsTransparent(t *testing.T) {
	input := []int{4, 8, 15, 16, 23, 42}
	collecttest.Check(t, input, func() core.Collector[int, []int] {
		return WithHooks[int, []int](collecttest.Record[int](4), Hooks[int]{})
	})
	collecttest.Check(t, input, func() core.Collector[int, core.Option[int]] {
		return WithHooks[int, core.Option[int]](aggregate.NewFind(func(n *int) bool { return *n > 10 }), Hooks[int]{})
	})
}

func TestMeasure(t *testing.T) {
	var got Metrics
	c := Measure[int, int](aggregate.NewSum[int](), func(m Metrics) { got = m })
	require.Equal(t, 6, c.CollectThenFinish(pull.Of(1, 2, 3)))
	require.Equal(t, 3, got.Items)
	require.False(t, got.Stopped)
	require.False(t, got.End.Before(got.Start))

	Measure[int, int](aggregate.NewSum[int](), func(m Metrics) { got = m }).Finish()
	require.Zero(t, got.Items)
	require.Zero(t, got.Duration())
}

func TestLog(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)

	c := Log[int, []int](collecttest.Record[int](2), logger, "firstTwo")
	c.CollectThenFinish(pull.Of(7, 8, 9))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	var msgs []string
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		require.Equal(t, "firstTwo", entry["collector"])
		msgs = append(msgs, entry["message"].(string))
	}
	require.Equal(t, []string{"collect", "collect", "stopped", "finished"}, msgs)
}

func TestLogLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)
	Log[int, int](aggregate.NewSum[int](), logger, "sum").CollectThenFinish(pull.Of(1, 2))
	require.Empty(t, buf.String())
}

func TestMeter(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer provider.Shutdown(ctx)
	meter := provider.Meter("collect/observe")

	c, err := Meter[int, []int](ctx, collecttest.Record[int](2), meter, "firstTwo")
	require.NoError(t, err)
	c.CollectThenFinish(pull.Of(1, 2, 3, 4))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	sums := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			data, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, m.Name)
			for _, dp := range data.DataPoints {
				v, _ := dp.Attributes.Value("collector")
				require.Equal(t, "firstTwo", v.AsString())
				sums[m.Name] += dp.Value
			}
		}
	}
	require.Equal(t, int64(2), sums[ItemsCounter])
	require.Equal(t, int64(1), sums[StopsCounter])
}
