package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Domenick1991/departures/config"
	"github.com/Domenick1991/departures/internal/display"
	"github.com/Domenick1991/departures/internal/notify"
	"github.com/Domenick1991/departures/internal/observability"
	"github.com/Domenick1991/departures/internal/service/departures"
)

type options struct {
	configPath string
	logLevel   string
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "departures",
		Short:        "Airport departure board",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML board file (default $CONFIG_PATH, else the built-in Detroit board)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (default $LOG_LEVEL)")

	cmd.AddCommand(boardCmd(opts), alertsCmd(opts), fareCmd(), demoCmd(opts))
	return cmd
}

type app struct {
	logger  *zap.Logger
	service *departures.DepartureService
	printer *display.Printer
}

func (a *app) close() {
	_ = a.logger.Sync()
}

func loadApp(cmd *cobra.Command, opts *options) (*app, error) {
	path := opts.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	cfg := config.Default(time.Now())
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	level := opts.logLevel
	if level == "" {
		level = cfg.Log.Level
	}
	logger, err := observability.NewLogger(level)
	if err != nil {
		return nil, err
	}

	board, err := cfg.BuildBoard()
	if err != nil {
		return nil, err
	}
	logger.Debug("board loaded",
		zap.String("airport", board.Airport().IATA),
		zap.Int("flights", board.Len()),
		zap.String("config", path),
	)

	sink := notify.NewConsoleSender(cmd.OutOrStdout(), logger)
	return &app{
		logger:  logger,
		service: departures.NewDepartureService(board, sink, logger),
		printer: display.NewPrinter(cfg.Display.TimeLayout, cfg.Display.Placeholder),
	}, nil
}
