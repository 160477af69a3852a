package observe

import (
	"github.com/rs/zerolog"

	"github.com/lguimbarda/min-collect/collect/core"
)

// Log wraps c and logs its run to logger under the collector name: each
// item at trace level, the first Stop and the finish at debug level.
func Log[T, O any](c core.Collector[T, O], logger zerolog.Logger, name string) *Observed[T, O] {
	logger = logger.With().Str("collector", name).Logger()
	return WithHooks(c, Hooks[T]{
		OnItem: func(index int, item T) {
			logger.Trace().Int("index", index).Interface("item", item).Msg("collect")
		},
		OnStop: func(items int) {
			logger.Debug().Int("items", items).Msg("stopped")
		},
		OnFinish: func(items int, stopped bool) {
			logger.Debug().Int("items", items).Bool("stopped", stopped).Msg("finished")
		},
	})
}
