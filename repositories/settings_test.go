package repositories

import (
	"log/slog"
	"solibot/domain"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newInMemoryDB(t *testing.T) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Get_Unknown_Guild_Returns_Empty_Settings(t *testing.T) {
	req := require.New(t)
	repo := NewSettingsRepository(newInMemoryDB(t), logs.GetLoggerFromLevel(slog.LevelDebug))

	settings, err := repo.Get("guild-1")
	req.NoError(err)
	req.Equal(domain.GuildSettings{Guild: "guild-1"}, settings)
	req.False(settings.HasDefaultConfinement())
}

func Test_Save_Then_Get(t *testing.T) {
	req := require.New(t)
	repo := NewSettingsRepository(newInMemoryDB(t), logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given a fully configured guild
	expected := domain.GuildSettings{
		Guild:              "guild-1",
		ConfinementChannel: "jail",
		LogChannel:         "mod-log",
		SetupComplete:      true,
	}

	// When it is saved
	req.NoError(repo.Save(expected))

	// Then it is read back unchanged
	actual, err := repo.Get("guild-1")
	req.NoError(err)
	req.Equal(expected, actual)
}

func Test_SetConfinementChannel_Completes_Setup_And_Keeps_Log_Channel(t *testing.T) {
	req := require.New(t)
	repo := NewSettingsRepository(newInMemoryDB(t), logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given a guild with only a log channel
	req.NoError(repo.SetLogChannel("guild-1", "mod-log"))

	// When a confinement channel is chosen
	req.NoError(repo.SetConfinementChannel("guild-1", "jail"))

	// Then both are kept and setup is complete
	settings, err := repo.Get("guild-1")
	req.NoError(err)
	req.Equal(domain.ChannelID("mod-log"), settings.LogChannel)
	req.Equal(domain.ChannelID("jail"), settings.ConfinementChannel)
	req.True(settings.SetupComplete)
}

func Test_List_And_Delete(t *testing.T) {
	req := require.New(t)
	repo := NewSettingsRepository(newInMemoryDB(t), logs.GetLoggerFromLevel(slog.LevelDebug))

	req.NoError(repo.SetLogChannel("guild-a", "log-a"))
	req.NoError(repo.SetLogChannel("guild-b", "log-b"))

	all, err := repo.List()
	req.NoError(err)
	req.Len(all, 2)
	req.Equal(domain.GuildID("guild-a"), all[0].Guild)
	req.Equal(domain.GuildID("guild-b"), all[1].Guild)

	req.NoError(repo.Delete("guild-a"))

	all, err = repo.List()
	req.NoError(err)
	req.Len(all, 1)
	req.Equal(domain.ChannelID("log-b"), all[0].LogChannel)
}

func Test_DecodeSettings_Raw_Entry(t *testing.T) {
	req := require.New(t)
	db := newInMemoryDB(t)
	repo := NewSettingsRepository(db, logs.GetLoggerFromLevel(slog.LevelDebug))
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return at }

	req.NoError(repo.SetLogChannel("guild-1", "mod-log"))

	// When the raw entry is read back as the inspection tool does
	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(SettingsPrefix + "guild-1"))
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		settings, updatedAt, err := DecodeSettings(item.Key(), val)
		req.NoError(err)
		req.Equal(domain.GuildSettings{Guild: "guild-1", LogChannel: "mod-log"}, settings)
		req.Equal(at, updatedAt)
		return nil
	})
	req.NoError(err)

	_, _, err = DecodeSettings([]byte(SettingsPrefix+"broken"), []byte{0xff, 0xff})
	req.Error(err)
}
