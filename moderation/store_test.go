package moderation

import (
	"solibot/domain"
	"solibot/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Store_Generations_Increase(t *testing.T) {
	req := require.New(t)
	store := NewStore()

	first := store.nextGeneration()
	second := store.nextGeneration()
	req.NotEqual(domain.AnyGeneration, first)
	req.Greater(second, first)
}

func Test_Store_At_Most_One_Mute_Per_Key(t *testing.T) {
	req := require.New(t)
	store := NewStore()
	mute := domain.Mute{Guild: guild, User: target, Generation: 1}

	req.NoError(store.insertMute(mute))
	req.ErrorIs(store.insertMute(mute), errors.ErrAlreadyActive)

	// Another guild is another key
	other := mute
	other.Guild = "guild-2"
	req.NoError(store.insertMute(other))
	req.Len(store.Snapshot().Mutes, 2)
}

func Test_Store_Remove_Checks_Generation(t *testing.T) {
	req := require.New(t)
	store := NewStore()
	key := domain.NewMemberKey(guild, target)
	req.NoError(store.insertConfinement(domain.Confinement{Guild: guild, User: target, Channel: channelA, Generation: 7}))

	// A stale generation leaves the record alone
	_, ok := store.removeConfinement(key, 6)
	req.False(ok)
	_, ok = store.Confinement(key)
	req.True(ok)

	// The matching generation removes it
	removed, ok := store.removeConfinement(key, 7)
	req.True(ok)
	req.Equal(channelA, removed.Channel)

	// Nothing left, even for AnyGeneration
	_, ok = store.removeConfinement(key, domain.AnyGeneration)
	req.False(ok)
}

func Test_Store_Blocks_Lists_Are_Sorted(t *testing.T) {
	req := require.New(t)
	store := NewStore()

	req.NoError(store.insertBlock(domain.Block{Guild: guild, User: target, Channel: channelC}))
	req.NoError(store.insertBlock(domain.Block{Guild: guild, User: target, Channel: channelA}))
	req.NoError(store.insertBlock(domain.Block{Guild: guild, User: "user-0", Channel: channelA}))
	req.NoError(store.insertBlock(domain.Block{Guild: "guild-2", User: target, Channel: channelB}))
	req.ErrorIs(store.insertBlock(domain.Block{Guild: guild, User: target, Channel: channelA}), errors.ErrAlreadyBlocked)

	req.Equal([]domain.ChannelID{channelA, channelC}, store.BlockedChannels(domain.NewMemberKey(guild, target)))
	req.Equal([]domain.UserID{"user-0", target}, store.BlockedUsers(guild, channelA))
	req.Empty(store.BlockedUsers(guild, channelB))

	_, ok := store.removeBlock(domain.NewBlockKey(guild, target, channelA))
	req.True(ok)
	req.False(store.IsBlocked(domain.NewBlockKey(guild, target, channelA)))
	req.True(store.IsBlocked(domain.NewBlockKey(guild, target, channelC)))
}
