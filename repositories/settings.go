//go:generate go run go.uber.org/mock/mockgen -source=settings.go -destination=../mocks/mock_settings_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"solibot/domain"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// SettingsPrefix starts every guild settings key.
const SettingsPrefix = "settings:"

type ISettingsRepository interface {
	Get(guild domain.GuildID) (domain.GuildSettings, error)
	Save(settings domain.GuildSettings) error
	SetConfinementChannel(guild domain.GuildID, channel domain.ChannelID) error
	SetLogChannel(guild domain.GuildID, channel domain.ChannelID) error
	List() ([]domain.GuildSettings, error)
	Delete(guild domain.GuildID) error
}

type SettingsRepository struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

func NewSettingsRepository(db *badger.DB, log *slog.Logger) *SettingsRepository {
	return &SettingsRepository{db: db, log: log, now: time.Now}
}

// Get returns the stored settings, or empty settings for a guild never set up.
func (r *SettingsRepository) Get(guild domain.GuildID) (domain.GuildSettings, error) {
	var s *structpb.Struct
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(settingsKey(guild))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			s = &structpb.Struct{}
			return proto.Unmarshal(val, s)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.GuildSettings{Guild: guild}, nil
	}
	if err != nil {
		return domain.GuildSettings{}, fmt.Errorf("read settings of guild %s: %w", guild, err)
	}
	return toGuildSettings(guild, s), nil
}

func (r *SettingsRepository) Save(settings domain.GuildSettings) error {
	value, err := fromGuildSettings(settings, r.now())
	if err != nil {
		return err
	}
	bytes, err := proto.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(settingsKey(settings.Guild), bytes)
	})
}

// SetConfinementChannel also marks the guild's setup as complete.
func (r *SettingsRepository) SetConfinementChannel(guild domain.GuildID, channel domain.ChannelID) error {
	return r.update(guild, func(s *domain.GuildSettings) {
		s.ConfinementChannel = channel
		s.SetupComplete = true
	})
}

func (r *SettingsRepository) SetLogChannel(guild domain.GuildID, channel domain.ChannelID) error {
	return r.update(guild, func(s *domain.GuildSettings) {
		s.LogChannel = channel
	})
}

// List scans every guild's settings in key order.
func (r *SettingsRepository) List() ([]domain.GuildSettings, error) {
	var settings []domain.GuildSettings
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(SettingsPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			guild := domain.GuildID(strings.TrimPrefix(string(item.Key()), SettingsPrefix))
			err := item.Value(func(val []byte) error {
				var s structpb.Struct
				if err := proto.Unmarshal(val, &s); err != nil {
					r.log.Warn("Skipping unreadable settings", "guild", guild, "error", err)
					return nil
				}
				settings = append(settings, toGuildSettings(guild, &s))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return settings, err
}

func (r *SettingsRepository) Delete(guild domain.GuildID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(settingsKey(guild))
	})
}

// update reads, modifies and writes back in a single transaction.
func (r *SettingsRepository) update(guild domain.GuildID, mutate func(*domain.GuildSettings)) error {
	return r.db.Update(func(txn *badger.Txn) error {
		current := domain.GuildSettings{Guild: guild}
		item, err := txn.Get(settingsKey(guild))
		switch {
		case err == nil:
			err = item.Value(func(val []byte) error {
				var s structpb.Struct
				if err := proto.Unmarshal(val, &s); err != nil {
					return err
				}
				current = toGuildSettings(guild, &s)
				return nil
			})
			if err != nil {
				return err
			}
		case !stderrors.Is(err, badger.ErrKeyNotFound):
			return err
		}

		mutate(&current)
		value, err := fromGuildSettings(current, r.now())
		if err != nil {
			return err
		}
		bytes, err := proto.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshal failed: %w", err)
		}
		return txn.Set(settingsKey(guild), bytes)
	})
}

func settingsKey(guild domain.GuildID) []byte {
	return []byte(SettingsPrefix + string(guild))
}

func fromGuildSettings(settings domain.GuildSettings, at time.Time) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"confinement_channel": string(settings.ConfinementChannel),
		"log_channel":         string(settings.LogChannel),
		"setup_complete":      settings.SetupComplete,
		"updated_at":          at.UTC().Format(time.RFC3339),
	})
}

func toGuildSettings(guild domain.GuildID, s *structpb.Struct) domain.GuildSettings {
	fields := s.GetFields()
	return domain.GuildSettings{
		Guild:              guild,
		ConfinementChannel: domain.ChannelID(fields["confinement_channel"].GetStringValue()),
		LogChannel:         domain.ChannelID(fields["log_channel"].GetStringValue()),
		SetupComplete:      fields["setup_complete"].GetBoolValue(),
	}
}

// DecodeSettings reads a raw settings entry, with the time it was last written.
// Used by the inspection tool.
func DecodeSettings(key, val []byte) (domain.GuildSettings, time.Time, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(val, &s); err != nil {
		return domain.GuildSettings{}, time.Time{}, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	guild := domain.GuildID(strings.TrimPrefix(string(key), SettingsPrefix))
	at, _ := updatedAt(&s)
	return toGuildSettings(guild, &s), at, nil
}

func updatedAt(s *structpb.Struct) (time.Time, bool) {
	raw := s.GetFields()["updated_at"].GetStringValue()
	if raw == "" {
		return time.Time{}, false
	}
	at, err := time.Parse(time.RFC3339, raw)
	return at, err == nil
}
