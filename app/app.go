package app

import (
	"context"

	"sparkcalc/hal"
	"sparkcalc/internal/buildinfo"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/services/logger"
	"sparkcalc/sparkos/tasks/calculator"
)

type system struct {
	k *kernel.Kernel
}

// New boots the calculator OS on h and returns the per-frame step function.
func New(h hal.HAL) func() error {
	_ = newSystem(h)
	return func() error { return nil }
}

// Run hosts the calculator in a window, or headless when cfg.Headless is set.
// It blocks until the window closes, ctx is done or the tick limit is hit.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Headless {
		return hal.RunHeadless(ctx, New, hal.HeadlessConfig{
			Hz:     cfg.Hz,
			Ticks:  cfg.Ticks,
			Script: cfg.Script,
		})
	}
	return hal.RunWindow(hal.WindowConfig{Scale: cfg.Scale, TPS: cfg.Hz}, New)
}

func newSystem(h hal.HAL) *system {
	installPanicHandler(h)
	if l := h.Logger(); l != nil {
		l.WriteLineString("spark calc " + buildinfo.String())
	}

	k := kernel.New()

	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	calcEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	k.AddTask(logger.New(h.Logger(), logEP.Restrict(kernel.RightRecv)))
	k.AddTask(calculator.New(
		h.Display(),
		h.Input(),
		calcEP.Restrict(kernel.RightRecv),
		logEP.Restrict(kernel.RightSend),
	))

	if ht := h.Time(); ht != nil {
		if ch := ht.Ticks(); ch != nil {
			go func() {
				for seq := range ch {
					k.TickTo(seq)
				}
			}()
		}
	}

	return &system{k: k}
}
