package discord

import (
	"context"
	"fmt"
	"log/slog"
	"solibot/domain"
	"solibot/errors"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type move struct {
	guild, user string
	channel     *string
	options     int
}

// fakeSession records REST calls instead of sending them.
type fakeSession struct {
	mu        sync.Mutex
	err       error
	moves     []move
	mutes     map[string]bool
	messages  map[string][]string
	responses []*discordgo.InteractionResponse
}

func newFakeSession() *fakeSession {
	return &fakeSession{mutes: map[string]bool{}, messages: map[string][]string{}}
}

func (f *fakeSession) GuildMemberMove(guildID string, userID string, channelID *string, options ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.moves = append(f.moves, move{guild: guildID, user: userID, channel: channelID, options: len(options)})
	return f.err
}

func (f *fakeSession) GuildMemberMute(_ string, userID string, mute bool, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutes[userID] = mute
	return f.err
}

func (f *fakeSession) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages[channelID] = append(f.messages[channelID], content)
	return &discordgo.Message{ChannelID: channelID, Content: content}, f.err
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse,
	_ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, resp)
	return f.err
}

type fakeStates map[string]string

func (f fakeStates) VoiceState(_, userID string) (*discordgo.VoiceState, error) {
	channel, ok := f[userID]
	if !ok {
		return nil, discordgo.ErrStateNotFound
	}
	return &discordgo.VoiceState{UserID: userID, ChannelID: channel}, nil
}

func TestPlatform_Moves_And_Disconnects(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	session := newFakeSession()
	p := NewPlatform(log, session, fakeStates{})
	ctx := context.Background()

	req.NoError(p.MoveToChannel(ctx, "g", "u", "jail", "Solitary confinement active"))
	req.NoError(p.Disconnect(ctx, "g", "u", ""))

	req.Len(session.moves, 2)
	req.NotNil(session.moves[0].channel)
	req.Equal("jail", *session.moves[0].channel)
	// context and audit reason
	req.Equal(2, session.moves[0].options)

	// A nil channel is a disconnect, without a reason only the context is passed
	req.Nil(session.moves[1].channel)
	req.Equal(1, session.moves[1].options)
}

func TestPlatform_SetMute_And_SendMessage(t *testing.T) {
	req := require.New(t)
	session := newFakeSession()
	p := NewPlatform(slog.Default(), session, fakeStates{})
	ctx := context.Background()

	req.NoError(p.SetMute(ctx, "g", "u", true, "Server mute applied"))
	req.True(session.mutes["u"])

	req.NoError(p.SendMessage(ctx, "mod-log", "🔇 <@u> muted"))
	req.Equal([]string{"🔇 <@u> muted"}, session.messages["mod-log"])
}

func TestPlatform_VoiceChannel(t *testing.T) {
	req := require.New(t)
	p := NewPlatform(slog.Default(), newFakeSession(), fakeStates{"alice": "lounge"})

	channel, err := p.VoiceChannel(context.Background(), "g", "alice")
	req.NoError(err)
	req.Equal(domain.ChannelID("lounge"), channel)

	// Unknown to the state cache means not connected
	channel, err = p.VoiceChannel(context.Background(), "g", "bob")
	req.NoError(err)
	req.Equal(domain.NoChannel, channel)
}

func TestTranslate(t *testing.T) {
	restError := func(code int) error {
		return &discordgo.RESTError{Message: &discordgo.APIErrorMessage{Code: code, Message: "refused"}}
	}
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "not in voice", err: restError(codeTargetNotInVoice), expected: errors.ErrUserNotInVoice},
		{name: "missing permissions", err: restError(discordgo.ErrCodeMissingPermissions), expected: errors.ErrMissingPermissions},
		{name: "anything else", err: fmt.Errorf("connection reset"), expected: errors.ErrPlatform},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, translate(tt.err), tt.expected)
		})
	}
	require.NoError(t, translate(nil))
}

func TestPlatform_Wraps_Failures(t *testing.T) {
	req := require.New(t)
	session := newFakeSession()
	session.err = &discordgo.RESTError{Message: &discordgo.APIErrorMessage{Code: codeTargetNotInVoice}}
	p := NewPlatform(slog.Default(), session, fakeStates{})

	err := p.Disconnect(context.Background(), "g", "u", "Blocked from this voice channel")
	req.ErrorIs(err, errors.ErrUserNotInVoice)
}
