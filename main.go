package main

import (
	"codeberg.org/miketth/keytrail/pkg/config"
	"codeberg.org/miketth/keytrail/pkg/keytrail"
	"codeberg.org/miketth/keytrail/pkg/transcript"
	"codeberg.org/miketth/keytrail/pkg/x11"
	"codeberg.org/miketth/keytrail/pkg/xkblayouts"
	"context"
	"errors"
	"flag"
	"fmt"
	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

func main() {
	err := run()
	if err != nil {
		log.Fatalf("error: %+v", err)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file (default $KEYTRAIL_CONFIG or $XDG_CONFIG_HOME/keytrail/config.yaml)")
	mode := flag.String("mode", "", "transcript mode: readable or diagnostic (overrides config)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	log = log.With("session", uuid.NewString())

	display, err := x11.Connect()
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	log.Infow("connected to display", "display", display.Name())

	logKeyboardLayouts(display, cfg.XkbRulesPath, log)

	devices, err := keytrail.BindKeyboards(display, cfg.BindOptions(), log)
	if err != nil {
		return fmt.Errorf("bind keyboards: %w", err)
	}

	ic, err := display.OpenInputContext(cfg.Locale)
	if err != nil {
		return fmt.Errorf("open input context: %w", err)
	}
	log.Infow("opened input context", "style", ic.Style(), "locale", cfg.Locale)

	emitter, err := transcript.New(transcript.Mode(cfg.Mode), os.Stdout, display, cfg.TranscriptOptions())
	if err != nil {
		return fmt.Errorf("create emitter: %w", err)
	}

	loop := keytrail.NewLoop(
		display,
		display,
		keytrail.NewFocusTracker(display),
		keytrail.NewTranslator(ic),
		emitter,
		log,
	)

	log.Infow("started keytrail", "devices", len(devices), "mode", cfg.Mode)

	errChan := make(chan error, 3)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		err := loop.Run(ctx)
		if err != nil {
			errChan <- fmt.Errorf("event loop: %w", err)
		}
	}()

	go func() {
		defer wg.Done()
		err := systemdNotifyLoop(ctx)
		if err != nil {
			errChan <- fmt.Errorf("systemd notify: %w", err)
		}
	}()

	err = <-errChan
	switch {
	case errors.Is(err, context.Canceled):
		// The loop may still be parked in XNextEvent; the process exit
		// releases the device selections.
		log.Infow("shutting down", "events", loop.Processed())
		return nil
	case err != nil:
		return err
	}

	return nil
}

func logKeyboardLayouts(display *x11.Display, rulesPath string, log *zap.SugaredLogger) {
	raw, err := display.RulesNames()
	if err != nil {
		log.Warnw("cannot read keyboard layout", "error", err)
		return
	}
	if raw == nil {
		log.Debug("no _XKB_RULES_NAMES on root window")
		return
	}

	names, err := xkblayouts.ParseRulesNames(raw)
	if err != nil {
		log.Warnw("cannot parse keyboard layout", "error", err)
		return
	}

	registry, err := xkblayouts.ParseLayouts(rulesPath)
	if err != nil {
		log.Debugw("cannot parse xkb rules registry", "path", rulesPath, "error", err)
		registry = nil
	}

	model := names.Model
	short := make([]string, 0, len(names.Layouts))
	if registry != nil {
		if pretty := registry.GetModelPrettyName(names.Model); pretty != "" {
			model = pretty
		}
		for _, layout := range names.Layouts {
			short = append(short, registry.GetLayoutShortName(layout))
		}
	}

	log.Infow("keyboard layouts",
		"layouts", registry.Describe(names),
		"short", short,
		"model", model,
		"options", names.Options,
	)
}

func systemdNotifyLoop(ctx context.Context) error {
	// tell systemd that we're ready
	supported, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	if err != nil {
		return fmt.Errorf("notify systemd: %w", err)
	}
	if !supported {
		return nil
	}

	_, _ = daemon.SdNotify(false, "STATUS=Capturing key presses")

	t, err := daemon.SdWatchdogEnabled(false)
	if err != nil {
		return fmt.Errorf("check watchdog: %w", err)
	}
	// if watchdog is not enabled, we don't need to notify it
	if t == 0 {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-time.After(t / 2):
			_, err := daemon.SdNotify(false, daemon.SdNotifyWatchdog)
			if err != nil {
				return fmt.Errorf("notify watchdog: %w", err)
			}
		}
	}
}

func newLogger(level string) (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewDevelopmentConfig()

	// stdout carries the transcript
	loggerConfig.OutputPaths = []string{"stderr"}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	loggerConfig.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.Sugar(), nil
}
