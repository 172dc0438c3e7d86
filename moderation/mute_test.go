package moderation

import (
	"fmt"
	"solibot/domain"
	"solibot/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Mute_Create_Applies_Flag_When_In_Voice(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)

	// Given the target sits in a voice channel
	h.inVoice(channelA)
	h.platform.EXPECT().SetMute(gomock.Any(), guild, target, true, gomock.Any()).Return(nil).Times(1)

	// When a 10 minute mute is created
	mute, outcome, err := h.manager.Mutes.Create(t.Context(), guild, target, moderator, 10*time.Minute)

	// Then the record is stored with its expiry and the flag is set
	req.NoError(err)
	req.Equal(domain.StatusApplied, outcome.Status)
	req.Equal(domain.ActionMute, outcome.Action.Kind)
	req.NotNil(mute.ExpiresAt)
	req.Equal(h.clock.Now().Add(10*time.Minute), *mute.ExpiresAt)
	req.True(h.manager.Mutes.IsActive(guild, target))

	remaining, ok := h.manager.Mutes.RemainingTime(guild, target)
	req.True(ok)
	req.Equal(10*time.Minute, *remaining)
}

func Test_Mute_Create_Out_Of_Voice_Is_Recorded_Only(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	h.inVoice(domain.NoChannel)

	_, outcome, err := h.manager.Mutes.Create(t.Context(), guild, target, moderator, 0)

	req.NoError(err)
	req.Equal(domain.StatusNoop, outcome.Status)
	req.True(h.manager.Mutes.IsActive(guild, target))

	remaining, ok := h.manager.Mutes.RemainingTime(guild, target)
	req.True(ok)
	req.Nil(remaining, "permanent")
	req.Zero(h.manager.LiveTimers())
}

func Test_Mute_Create_Rejects_Duplicates_And_Negative_Duration(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	h.inVoice(domain.NoChannel)

	_, _, err := h.manager.Mutes.Create(t.Context(), guild, target, moderator, -time.Minute)
	req.ErrorIs(err, errors.ErrInvalidDuration)
	req.False(h.manager.Mutes.IsActive(guild, target))

	_, _, err = h.manager.Mutes.Create(t.Context(), guild, target, moderator, time.Minute)
	req.NoError(err)
	_, _, err = h.manager.Mutes.Create(t.Context(), guild, target, moderator, time.Hour)
	req.ErrorIs(err, errors.ErrAlreadyActive)

	// The first record and its single timer are untouched
	mute, ok := h.manager.Mutes.Get(guild, target)
	req.True(ok)
	req.Equal(h.clock.Now().Add(time.Minute), *mute.ExpiresAt)
	req.Equal(1, h.manager.LiveTimers())
}

func Test_Mute_Platform_Failure_Keeps_Record(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)

	// Given the platform refuses the call
	h.inVoice(channelA)
	h.platform.EXPECT().SetMute(gomock.Any(), guild, target, true, gomock.Any()).
		Return(fmt.Errorf("%w: 403", errors.ErrMissingPermissions))

	// When the mute is created
	_, outcome, err := h.manager.Mutes.Create(t.Context(), guild, target, moderator, time.Minute)

	// Then creation succeeds but the outcome reports the failure
	req.NoError(err)
	req.True(outcome.Failed())
	req.ErrorIs(outcome.Err, errors.ErrMissingPermissions)
	req.True(h.manager.Mutes.IsActive(guild, target))
}

func Test_Mute_User_Left_Voice_Is_Not_A_Failure(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)

	h.inVoice(channelA)
	h.platform.EXPECT().SetMute(gomock.Any(), guild, target, true, gomock.Any()).Return(errors.ErrUserNotInVoice)

	_, outcome, err := h.manager.Mutes.Create(t.Context(), guild, target, moderator, time.Minute)

	req.NoError(err)
	req.Equal(domain.StatusUserLeftVoice, outcome.Status)
	req.False(outcome.Failed())
	req.NoError(outcome.Err)
}

// Releasing twice yields "released" then "not active", with one undo call.
func Test_Mute_Release_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)

	h.inVoice(channelA)
	h.platform.EXPECT().SetMute(gomock.Any(), guild, target, true, gomock.Any()).Return(nil).Times(1)
	h.platform.EXPECT().SetMute(gomock.Any(), guild, target, false, gomock.Any()).Return(nil).Times(1)

	_, _, err := h.manager.Mutes.Create(t.Context(), guild, target, moderator, 30*time.Minute)
	req.NoError(err)

	h.clock.Add(10 * time.Minute)
	release, ok := h.manager.Mutes.Release(t.Context(), guild, target)
	req.True(ok)
	req.Equal(domain.LiftManual, release.Cause)
	req.Equal(domain.StatusApplied, release.Undo.Status)
	req.Equal(20*time.Minute, *release.Remaining)
	req.Zero(h.manager.LiveTimers())

	_, ok = h.manager.Mutes.Release(t.Context(), guild, target)
	req.False(ok)
	req.False(h.manager.Mutes.IsActive(guild, target))
	req.Len(h.publisher.lifted(), 1)
}

func Test_Mute_Expires_On_Its_Own(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)

	h.inVoice(channelA)
	h.platform.EXPECT().SetMute(gomock.Any(), guild, target, true, gomock.Any()).Return(nil).Times(1)
	h.platform.EXPECT().SetMute(gomock.Any(), guild, target, false, gomock.Any()).Return(nil).Times(1)

	_, _, err := h.manager.Mutes.Create(t.Context(), guild, target, moderator, 5*time.Minute)
	req.NoError(err)

	// When the duration elapses
	h.clock.Add(5 * time.Minute)

	// Then the mute is lifted by the timer and the flag removed once
	h.waitLifted(t, 1)
	req.False(h.manager.Mutes.IsActive(guild, target))
	lifted := h.publisher.lifted()[0]
	req.Equal(domain.LiftExpired, lifted.Cause)
	req.Equal(domain.KindMute, lifted.Kind)
}

func Test_Mute_Release_Out_Of_Voice_Skips_Undo(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	h.inVoice(domain.NoChannel)

	_, _, err := h.manager.Mutes.Create(t.Context(), guild, target, moderator, 0)
	req.NoError(err)

	release, ok := h.manager.Mutes.Release(t.Context(), guild, target)
	req.True(ok)
	req.Nil(release.Remaining)
	req.Equal(domain.StatusNoop, release.Undo.Status)
}
