package internal

import (
	"fmt"
	"time"
)

type Config struct {
	DiscordToken        string        `env:"DISCORD_TOKEN,required=true"`
	CreatorID           string        `env:"CREATOR_ID"`
	LogLevel            string        `env:"LOG_LEVEL,required=true"`
	BadgerFilepath      string        `env:"BADGER_FILEPATH,required=true"`
	PresenceShards      int           `env:"PRESENCE_SHARDS,default=4"`
	BufferSize          int           `env:"BUFFER_SIZE,default=256"`
	SinkTimeout         time.Duration `env:"SINK_TIMEOUT,default=5s"`
	ActionTimeout       time.Duration `env:"ACTION_TIMEOUT,default=10s"`
	DispatchTimeout     time.Duration `env:"DISPATCH_TIMEOUT,default=2s"`
	PendingSelectionTTL time.Duration `env:"PENDING_SELECTION_TTL,default=5m"`
	JanitorInterval     time.Duration `env:"JANITOR_INTERVAL,default=1m"`
	ReportInterval      time.Duration `env:"REPORT_INTERVAL,default=15m"`
	RestartInterval     time.Duration `env:"RESTART_INTERVAL,default=1s"`
	LedgerCapacity      int           `env:"LEDGER_CAPACITY,default=100"`
	DebugPort           int           `env:"DEBUG_PORT"`
}

// Validate rejects values that would make the engine misbehave at runtime.
func (c Config) Validate() error {
	switch {
	case c.PresenceShards < 1:
		return fmt.Errorf("PRESENCE_SHARDS must be at least 1, got %d", c.PresenceShards)
	case c.BufferSize < 1:
		return fmt.Errorf("BUFFER_SIZE must be at least 1, got %d", c.BufferSize)
	case c.PendingSelectionTTL <= 0:
		return fmt.Errorf("PENDING_SELECTION_TTL must be positive, got %s", c.PendingSelectionTTL)
	case c.JanitorInterval <= 0:
		return fmt.Errorf("JANITOR_INTERVAL must be positive, got %s", c.JanitorInterval)
	case c.ActionTimeout <= 0:
		return fmt.Errorf("ACTION_TIMEOUT must be positive, got %s", c.ActionTimeout)
	}
	return nil
}
