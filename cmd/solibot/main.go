package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"solibot/domain"
	"solibot/infrastructure/discord"
	"solibot/internal"
	"solibot/projection"
	"solibot/repositories"
	"solibot/runtime"
	"solibot/runtime/workers"
	"solibot/services"
	"solibot/sink"
	"solibot/storage"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/benbjohnson/clock"
	"github.com/bwmarrin/discordgo"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the bot lifecycle, and centralizes error reporting.
// Deferred cleanups (database, gateway) always run before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()
	clk := clock.New()

	// 2. Database (BadgerDB), guild settings only
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	settingsRepository := repositories.NewSettingsRepository(db, logger)

	// 3. Gateway session, not connected yet
	session, err := discordgo.New("Bot " + config.DiscordToken)
	if err != nil {
		return exitConfig, fmt.Errorf("discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildVoiceStates
	platform := discord.NewPlatform(logger, session, session.State)

	// 4. Engine, supervision and sinks
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(logger, clk, sup, platform, runtime.Options{
		Shards:          config.PresenceShards,
		BufferSize:      config.BufferSize,
		SinkTimeout:     config.SinkTimeout,
		ActionTimeout:   config.ActionTimeout,
		DispatchTimeout: config.DispatchTimeout,
		JanitorInterval: config.JanitorInterval,
		ReportInterval:  config.ReportInterval,
	})
	ledger := projection.NewLedger(config.LedgerCapacity)
	orchestrator.AddSinks(
		sink.NewLogSink(logger),
		sink.NewAuditChannelSink(logger, settingsRepository, platform),
		ledger,
	)

	pending := storage.NewTTLCache[domain.PendingKey, domain.PendingSelection](clk, config.PendingSelectionTTL)
	orchestrator.AddEvictors(pending)
	moderationService := services.NewModerationService(logger, orchestrator.Manager(), settingsRepository,
		pending, clk, domain.UserID(config.CreatorID))

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		logger.Info("Logged in", "user", r.User.Username, "guilds", len(r.Guilds))
	})
	session.AddHandler(discord.NewPresenceHandler(ctx, logger, orchestrator.Dispatcher()).OnVoiceStateUpdate)
	session.AddHandler(discord.NewCommandHandler(ctx, logger, session, moderationService).OnInteractionCreate)

	// 6. Start the engine before the gateway delivers any presence change
	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting orchestrator...")
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	if err := session.Open(); err != nil {
		orchestrator.Stop()
		return exitRuntime, fmt.Errorf("gateway connection failed: %w", err)
	}

	if config.DebugPort > 0 {
		internal.StartDebugServer(logger, config.DebugPort,
			internal.NewDebugHandler(clk, orchestrator.Manager(), ledger))
	}

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		_ = session.Close()
		orchestrator.Stop()
		return exitRuntime, err
	}

	// 8. Final Cleanup (Graceful Shutdown)
	// The gateway goes first so no presence change arrives on a stopped engine.
	logger.Info("Shutting down gracefully...")
	if err := session.Close(); err != nil {
		logger.Warn("Gateway close failed", "error", err)
	}
	orchestrator.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}

	return options
}
