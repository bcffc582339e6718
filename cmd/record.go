package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-g-everett/posetrace/animate"
	"github.com/matt-g-everett/posetrace/config"
	"github.com/matt-g-everett/posetrace/publish"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	recordFrames int
	recordOut    string
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a fixed number of frames and write the trace",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("frames") {
			cfg.Trace.Frames = recordFrames
		}
		if cmd.Flags().Changed("out") {
			cfg.Trace.Output = recordOut
		}

		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		b, err := record(ctx, cfg, logger)
		if err != nil {
			return err
		}

		if cfg.Trace.Output == "" || cfg.Trace.Output == "-" {
			_, err = cmd.OutOrStdout().Write(append(b, '\n'))
			return err
		}
		if err := os.WriteFile(cfg.Trace.Output, b, 0644); err != nil {
			return fmt.Errorf("write trace: %w", err)
		}
		logger.Info("trace written", zap.String("path", cfg.Trace.Output), zap.Int("bytes", len(b)))
		return nil
	},
}

func init() {
	recordCmd.Flags().IntVarP(&recordFrames, "frames", "n", 0, "Number of frames to record (overrides config)")
	recordCmd.Flags().StringVarP(&recordOut, "out", "o", "", "Output file, - for stdout (overrides config)")
}

// record steps the configured scene for cfg.Trace.Frames frames and returns the
// serialized document. It is published too when a broker is configured.
func record(ctx context.Context, cfg config.Config, logger *zap.Logger) ([]byte, error) {
	r := newRecorder(cfg.Trace)
	if err := declareScene(r, cfg.Scene); err != nil {
		return nil, err
	}

	c := animate.NewController(cfg.Trace.FrameRate, logger, demoAnimations(cfg.Trace)...)
	c.Declare(r)
	if err := c.Run(ctx, r, cfg.Trace.Frames, nil); err != nil {
		return nil, err
	}

	b, err := r.Marshal(cfg.Trace.PrettyOutput())
	if err != nil {
		return nil, err
	}

	if cfg.Mqtt.Enabled() {
		publish.RouteLogs(logger)
		client := publish.NewClient(cfg.Mqtt, logger)
		if err := publish.Connect(client); err != nil {
			return nil, err
		}
		defer client.Disconnect(250)

		s := publish.NewStreamer(cfg.Mqtt, cfg.Trace.PrettyOutput(), client, logger)
		if err := s.SendRaw(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}
