// Package domain contains core concepts of the voice moderation system.
// It defines identifiers, restriction records, presence changes and corrective actions.
// No runtime, network, or platform logic should be added here.
package domain

// GuildID, UserID and ChannelID are opaque identifiers assigned by the chat platform.
type (
	GuildID   string
	UserID    string
	ChannelID string
)

// NoChannel is the ChannelID of a user who is not connected to voice.
const NoChannel ChannelID = ""

// MemberKey identifies a user inside a guild.
// Mute and Confinement registries hold at most one record per MemberKey.
type MemberKey struct {
	Guild GuildID
	User  UserID
}

func NewMemberKey(guild GuildID, user UserID) MemberKey {
	return MemberKey{Guild: guild, User: user}
}

// BlockKey identifies a single (user, channel) block inside a guild.
type BlockKey struct {
	Guild   GuildID
	User    UserID
	Channel ChannelID
}

func NewBlockKey(guild GuildID, user UserID, channel ChannelID) BlockKey {
	return BlockKey{Guild: guild, User: user, Channel: channel}
}

func (k BlockKey) Member() MemberKey {
	return MemberKey{Guild: k.Guild, User: k.User}
}

// PresenceChange is the platform notification that a user's voice occupancy changed.
// Before and After are NoChannel when the user was, or is now, out of voice.
type PresenceChange struct {
	Guild  GuildID
	User   UserID
	Before ChannelID
	After  ChannelID
}

func (p PresenceChange) Key() MemberKey {
	return MemberKey{Guild: p.Guild, User: p.User}
}

// InVoice reports whether the user now occupies a channel.
func (p PresenceChange) InVoice() bool {
	return p.After != NoChannel
}

// ChangedChannel is true when the user joined voice or moved to another channel.
func (p PresenceChange) ChangedChannel() bool {
	return p.After != NoChannel && p.After != p.Before
}

// LeftVoice is true when the user was in a channel and is no longer connected.
func (p PresenceChange) LeftVoice() bool {
	return p.Before != NoChannel && p.After == NoChannel
}
