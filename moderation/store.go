package moderation

import (
	"slices"
	"solibot/contract"
	"solibot/domain"
	"solibot/errors"
	"sync"

	"github.com/samber/lo"
)

// Ensure *Store implements the read-only contract handed to the reconciler.
var _ contract.RestrictionReader = (*Store)(nil)

// Store holds the three restriction registries in memory.
//
// Mutations are exported to the package only: the Manager is the single writer,
// everything else goes through contract.RestrictionReader.
// Nothing here survives a restart.
type Store struct {
	mu           sync.RWMutex
	generation   domain.Generation
	mutes        map[domain.MemberKey]domain.Mute
	confinements map[domain.MemberKey]domain.Confinement
	blocks       map[domain.BlockKey]domain.Block
}

func NewStore() *Store {
	return &Store{
		mutes:        make(map[domain.MemberKey]domain.Mute),
		confinements: make(map[domain.MemberKey]domain.Confinement),
		blocks:       make(map[domain.BlockKey]domain.Block),
	}
}

// nextGeneration hands out strictly increasing stamps, starting at 1.
func (s *Store) nextGeneration() domain.Generation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

func (s *Store) insertMute(m domain.Mute) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.mutes[m.Key()]; ok {
		return errors.ErrAlreadyActive
	}
	s.mutes[m.Key()] = m
	return nil
}

// removeMute deletes the record under key if its generation matches.
// domain.AnyGeneration removes whatever is there.
func (s *Store) removeMute(key domain.MemberKey, gen domain.Generation) (domain.Mute, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.mutes[key]
	if !ok || (gen != domain.AnyGeneration && m.Generation != gen) {
		return domain.Mute{}, false
	}
	delete(s.mutes, key)
	return m, true
}

func (s *Store) Mute(key domain.MemberKey) (domain.Mute, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mutes[key]
	return m, ok
}

func (s *Store) insertConfinement(c domain.Confinement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.confinements[c.Key()]; ok {
		return errors.ErrAlreadyActive
	}
	s.confinements[c.Key()] = c
	return nil
}

func (s *Store) removeConfinement(key domain.MemberKey, gen domain.Generation) (domain.Confinement, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.confinements[key]
	if !ok || (gen != domain.AnyGeneration && c.Generation != gen) {
		return domain.Confinement{}, false
	}
	delete(s.confinements, key)
	return c, true
}

func (s *Store) Confinement(key domain.MemberKey) (domain.Confinement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.confinements[key]
	return c, ok
}

func (s *Store) insertBlock(b domain.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blocks[b.Key()]; ok {
		return errors.ErrAlreadyBlocked
	}
	s.blocks[b.Key()] = b
	return nil
}

func (s *Store) removeBlock(key domain.BlockKey) (domain.Block, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.blocks[key]
	if !ok {
		return domain.Block{}, false
	}
	delete(s.blocks, key)
	return b, true
}

func (s *Store) IsBlocked(key domain.BlockKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blocks[key]
	return ok
}

// BlockedChannels lists, sorted, the channels a user is blocked from in a guild.
func (s *Store) BlockedChannels(key domain.MemberKey) []domain.ChannelID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	channels := lo.FilterMap(lo.Keys(s.blocks), func(k domain.BlockKey, _ int) (domain.ChannelID, bool) {
		return k.Channel, k.Member() == key
	})
	slices.Sort(channels)
	return channels
}

// BlockedUsers lists, sorted, the users blocked from a channel in a guild.
func (s *Store) BlockedUsers(guild domain.GuildID, channel domain.ChannelID) []domain.UserID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := lo.FilterMap(lo.Keys(s.blocks), func(k domain.BlockKey, _ int) (domain.UserID, bool) {
		return k.User, k.Guild == guild && k.Channel == channel
	})
	slices.Sort(users)
	return users
}

// Snapshot is a point-in-time copy of every registry, for debugging and stats.
type Snapshot struct {
	Mutes        []domain.Mute
	Confinements []domain.Confinement
	Blocks       []domain.Block
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Mutes:        lo.Values(s.mutes),
		Confinements: lo.Values(s.confinements),
		Blocks:       lo.Values(s.blocks),
	}
}
