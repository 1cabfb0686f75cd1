//go:build darwin || linux || windows

// Command holomobile runs the hologram on OpenGL ES 2 with the device
// accelerometer driving the distortion.
//
//	$ gomobile build github.com/glimpseframework/holoview/cmd/holomobile
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/glimpseframework/holoview/internal/config"
	"github.com/glimpseframework/holoview/internal/gles"
	"github.com/glimpseframework/holoview/internal/gles/mobile"
	"github.com/glimpseframework/holoview/internal/logging"
	"github.com/glimpseframework/holoview/internal/orientation"
	"github.com/glimpseframework/holoview/internal/renderer"
	hvsensor "github.com/glimpseframework/holoview/internal/sensor"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/exp/sensor"
	"golang.org/x/mobile/gl"
)

const sampleDelay = 20 * time.Millisecond

func main() {
	logging.SetLogger(logging.NewText(os.Stderr, slog.LevelInfo))
	log := logging.Logger()

	cfg, err := config.Default().RenderConfig(config.Mobile)
	if err != nil {
		log.Error("failed to prepare render config", "err", err)
		os.Exit(1)
	}

	var filter orientation.Filter
	feed := hvsensor.NewFeed(&filter)

	r, err := renderer.New(cfg, &filter,
		renderer.MinVersion(gles.ES20),
		renderer.PowerOfTwoTextures(true),
	)
	if err != nil {
		log.Error("failed to create renderer", "err", err)
		os.Exit(1)
	}

	app.Main(func(a app.App) {
		sensor.Notify(a)

		var glctx gl.Context
		var sz size.Event
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ = e.DrawContext.(gl.Context)
					if glctx == nil {
						continue
					}
					if err := r.OnSurfaceCreated(mobile.New(glctx)); err != nil {
						log.Error("surface setup failed", "err", err)
						glctx = nil
						continue
					}
					if sz.WidthPx > 0 {
						if err := r.OnSurfaceChanged(sz.WidthPx, sz.HeightPx); err != nil {
							log.Warn("resize failed", "err", err)
						}
					}
					if err := sensor.Enable(sensor.Accelerometer, sampleDelay); err != nil {
						log.Warn("accelerometer unavailable", "err", err)
					}
					feed.Attach()
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					feed.Detach()
					if err := sensor.Disable(sensor.Accelerometer); err != nil {
						log.Debug("failed to disable accelerometer", "err", err)
					}
					if glctx != nil {
						r.Release()
					} else {
						r.OnSurfaceLost()
					}
					glctx = nil
				}
			case size.Event:
				sz = e
				if glctx != nil {
					if err := r.OnSurfaceChanged(sz.WidthPx, sz.HeightPx); err != nil {
						log.Warn("resize failed", "err", err)
					}
				}
			case paint.Event:
				if glctx == nil || e.External {
					continue
				}
				if err := r.OnDrawFrame(); err != nil {
					log.Error("draw failed", "err", err)
					continue
				}
				a.Publish()
				a.Send(paint.Event{})
			case sensor.Event:
				if e.Sensor != sensor.Accelerometer || len(e.Data) < 3 {
					continue
				}
				feed.Deliver(hvsensor.Sample{
					X: float32(e.Data[0]),
					Y: float32(e.Data[1]),
					Z: float32(e.Data[2]),
				})
			}
		}
	})
}
