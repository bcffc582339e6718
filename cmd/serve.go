package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matt-g-everett/posetrace/animate"
	"github.com/matt-g-everett/posetrace/api"
	"github.com/matt-g-everett/posetrace/config"
	"github.com/matt-g-everett/posetrace/publish"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveFrames int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Record in real time, serving the trace over HTTP and MQTT",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var streamer *publish.Streamer
		if cfg.Mqtt.Enabled() {
			publish.RouteLogs(logger)
			client := publish.NewClient(cfg.Mqtt, logger)
			if err := publish.Connect(client); err != nil {
				return err
			}
			defer client.Disconnect(250)
			streamer = publish.NewStreamer(cfg.Mqtt, cfg.Trace.PrettyOutput(), client, logger)
		}

		server := api.NewApi(cfg.Api.StaticDir, logger)
		errCh := make(chan error, 1)
		go func() {
			err := server.Serve(ctx, cfg.Api.Listen)
			if err != nil {
				stop()
			}
			errCh <- err
		}()

		err = serve(ctx, cfg, serveFrames, server, streamer, logger)
		stop()
		// A server failure cancels ctx, so it must win over the resulting Canceled.
		if serr := <-errCh; serr != nil {
			err = serr
		}
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	serveCmd.Flags().IntVarP(&serveFrames, "frames", "n", 0, "Stop after this many frames (0 runs until interrupted)")
}

// serve steps the scene at the configured frame rate, pushing the document to
// server and streamer every PublishEvery frames and once more at the end.
// streamer may be nil.
func serve(ctx context.Context, cfg config.Config, frames int, server *api.Api, streamer *publish.Streamer, logger *zap.Logger) error {
	r := newRecorder(cfg.Trace)
	if err := declareScene(r, cfg.Scene); err != nil {
		return err
	}

	c := animate.NewController(cfg.Trace.FrameRate, logger, demoAnimations(cfg.Trace)...)
	c.SetPace(time.Duration(float64(time.Second) / cfg.Trace.FrameRate))
	c.Declare(r)

	push := func() error {
		b, err := r.Marshal(cfg.Trace.PrettyOutput())
		if err != nil {
			return err
		}
		server.Update(b)
		if streamer != nil {
			if err := streamer.SendRaw(b); err != nil {
				logger.Warn("publish failed", zap.Error(err))
			}
		}
		return nil
	}

	if err := push(); err != nil {
		return err
	}
	err := c.Run(ctx, r, frames, func(frame int) error {
		if frame%cfg.Trace.PublishEvery != 0 {
			return nil
		}
		logger.Debug("pushing trace", zap.Int("frame", frame))
		return push()
	})
	if perr := push(); perr != nil && err == nil {
		err = perr
	}
	return err
}
