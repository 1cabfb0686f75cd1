package cmd

import (
	"context"
	"runtime"
	"time"

	"github.com/glimpseframework/holoview/internal/config"
	"github.com/glimpseframework/holoview/internal/gles"
	"github.com/glimpseframework/holoview/internal/gles/desktop"
	"github.com/glimpseframework/holoview/internal/logging"
	"github.com/glimpseframework/holoview/internal/orientation"
	"github.com/glimpseframework/holoview/internal/renderer"
	"github.com/glimpseframework/holoview/internal/sensor"
	"github.com/glimpseframework/holoview/pkg/window"
	"github.com/spf13/cobra"
)

var transparent bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window and render the hologram; the pointer position stands in for device tilt",
	RunE:  Run,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runtime.LockOSThread()

	runCmd.Flags().BoolVar(&transparent, "transparent", true, "request a transparent framebuffer")
}

func Run(cmd *cobra.Command, args []string) error {
	cfg, err := settings.RenderConfig(config.Desktop)
	if err != nil {
		return err
	}

	win, err := window.New(window.Options{
		Title:        settings.Title,
		Width:        settings.Width,
		Height:       settings.Height,
		SwapInterval: settings.SwapInterval,
		Transparent:  transparent,
	})
	if err != nil {
		return err
	}
	defer win.Destroy()

	glctx, err := desktop.New()
	if err != nil {
		return err
	}

	var filter orientation.Filter
	feed := sensor.NewFeed(&filter)
	feed.Attach()

	// Pointer samples reach the filter from another goroutine, the way a
	// platform sensor callback would.
	samples := make(chan sensor.Sample, 64)
	pumpCtx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	go func() {
		if err := sensor.Pump(pumpCtx, samples, feed); err != nil && err != context.Canceled {
			logging.Logger().Warn("sensor pump stopped", "err", err)
		}
	}()

	r, err := renderer.New(cfg, &filter,
		renderer.MinVersion(gles.Core41),
		renderer.PowerOfTwoTextures(settings.PowerOfTwo),
	)
	if err != nil {
		return err
	}
	if err := r.OnSurfaceCreated(glctx); err != nil {
		return err
	}
	defer r.Release()

	paused := false
	for !win.ShouldClose() {
		win.PollEvents()

		if iconified, changed := win.Iconified(); changed {
			paused = iconified
			if paused {
				feed.Detach()
				logging.Logger().Info("paused")
			} else {
				feed.Attach()
				logging.Logger().Info("resumed")
			}
		}
		if paused {
			time.Sleep(50 * time.Millisecond)
			continue
		}

		if x, y, moved := win.Cursor(); moved {
			w, h := win.WindowSize()
			select {
			case samples <- sensor.FromCursor(x, y, w, h):
			default:
			}
		}
		if w, h, changed := win.Resized(); changed {
			if err := r.OnSurfaceChanged(w, h); err != nil {
				return err
			}
		}

		if err := r.OnDrawFrame(); err != nil {
			return err
		}
		win.SwapBuffers()
	}
	return nil
}
