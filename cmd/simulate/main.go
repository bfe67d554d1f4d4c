package main

import (
	"context"
	"flag"
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/408adamelb/IMCPROSPERITY/internal/config"
	"github.com/408adamelb/IMCPROSPERITY/internal/engine"
	"github.com/408adamelb/IMCPROSPERITY/internal/host"
	"github.com/408adamelb/IMCPROSPERITY/internal/metrics"
	"github.com/408adamelb/IMCPROSPERITY/internal/quote"
	"github.com/408adamelb/IMCPROSPERITY/internal/record"
	"github.com/408adamelb/IMCPROSPERITY/internal/risk"
	"github.com/408adamelb/IMCPROSPERITY/internal/util"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "internal/config/config.yaml", "path to YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLog := util.NewLogger("info")
		bootLog.Fatal().Err(err).Msg("load config")
	}
	log := util.NewLogger(cfg.App.LogLevel)

	_ = metrics.Serve(cfg.App.MetricsAddr)
	log.Info().Str("addr", cfg.App.MetricsAddr).Msg("metrics up")

	ctx, cancel := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	source, sink, err := host.Build(cfg.Host, util.Component(log, "host"))
	if err != nil {
		log.Fatal().Err(err).Msg("build snapshot source")
	}
	ticks := make(chan engine.TickState, 64)
	go func() {
		if err := source.Run(ctx, ticks); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("snapshot source stopped")
			cancel()
		}
		close(ticks)
	}()

	strategy := quote.Build(cfg.Engine.StrategyMode, quote.Params{
		PositionLimit: cfg.Engine.PositionLimit,
		LayerSize:     cfg.Engine.LayerSize,
		SkewTrigger:   cfg.Engine.SkewTrigger,
	})
	limits := risk.Limits{MaxPosition: cfg.Engine.PositionLimit}
	if limits.MaxPosition <= 0 {
		limits.MaxPosition = 20
	}

	opts := []engine.Option{}
	if cfg.Engine.StableProduct != "" {
		opts = append(opts, engine.WithStableProduct(cfg.Engine.StableProduct, cfg.Engine.StablePrice))
	}
	if cfg.Engine.Wavelet.Enabled {
		opts = append(opts, engine.WithRefiner(engine.NewRefiner(cfg.Engine.Wavelet.WindowSize)))
	}
	eng := engine.New(strategy, limits, util.Component(log, "engine"), opts...)

	var recorder record.Recorder = record.NewLedger(0)
	if cfg.Host.ResultPath != "" {
		jsonl, err := record.NewJSONLRecorder(cfg.Host.ResultPath)
		if err != nil {
			log.Fatal().Err(err).Msg("open result recorder")
		}
		defer jsonl.Close()
		recorder = jsonl
	}

	runID := uuid.NewString()
	log.Info().Str("run_id", runID).Str("strategy", strategy.Name()).Msg("session started")

	carry := ""
	for state := range ticks {
		// Sources without their own carry thread the previous output, as a
		// real host would.
		if state.CarryState == "" {
			state.CarryState = carry
		}

		result, err := eng.Run(state)
		if err != nil {
			log.Fatal().Err(err).Int64("timestamp", state.Timestamp).Msg("tick failed")
		}
		carry = result.CarryState

		recorder.Record(record.TickRecord{
			RunID:       runID,
			Timestamp:   state.Timestamp,
			Orders:      result.Orders,
			Conversions: result.Conversions,
			CarryState:  result.CarryState,
		})
		if err := sink.Submit(result); err != nil {
			log.Warn().Err(err).Msg("submit result to host")
		}
	}

	log.Info().Str("run_id", runID).Msg("session complete")
}
