package domain

import "time"

// Kind names the three restriction registries.
type Kind string

const (
	KindMute        Kind = "mute"
	KindConfinement Kind = "confinement"
	KindBlock       Kind = "block"
)

// Generation is stamped on every timed record at creation.
// A firing timer carries the generation it was armed for and only tears down
// a record that still holds the same generation.
type Generation uint64

// AnyGeneration matches whatever record currently occupies a key.
const AnyGeneration Generation = 0

// TimerHandle identifies an armed expiry timer. Zero means no timer.
type TimerHandle uint64

// Expiry is shared by Mute and Confinement: a nil ExpiresAt means permanent.
type Expiry struct {
	ExpiresAt *time.Time
}

// Permanent reports whether the record never expires on its own.
func (e Expiry) Permanent() bool {
	return e.ExpiresAt == nil
}

// Expired is false for permanent records whatever the instant.
func (e Expiry) Expired(now time.Time) bool {
	if e.ExpiresAt == nil {
		return false
	}
	return !now.Before(*e.ExpiresAt)
}

// Remaining returns the time left before expiry, nil when permanent.
// The value never goes below zero.
func (e Expiry) Remaining(now time.Time) *time.Duration {
	if e.ExpiresAt == nil {
		return nil
	}
	left := e.ExpiresAt.Sub(now)
	if left < 0 {
		left = 0
	}
	return &left
}

// Mute silences a user in every voice channel of a guild.
type Mute struct {
	Guild      GuildID
	User       UserID
	IssuedBy   UserID
	CreatedAt  time.Time
	Generation Generation
	Timer      TimerHandle
	Expiry
}

func (m Mute) Key() MemberKey {
	return MemberKey{Guild: m.Guild, User: m.User}
}

// Confinement pins a user to exactly one voice channel.
type Confinement struct {
	Guild      GuildID
	User       UserID
	Channel    ChannelID
	IssuedBy   UserID
	CreatedAt  time.Time
	Generation Generation
	Timer      TimerHandle
	Expiry
}

func (c Confinement) Key() MemberKey {
	return MemberKey{Guild: c.Guild, User: c.User}
}

// Block forbids a user from one voice channel. Blocks never expire on their own.
type Block struct {
	Guild     GuildID
	User      UserID
	Channel   ChannelID
	IssuedBy  UserID
	CreatedAt time.Time
}

func (b Block) Key() BlockKey {
	return BlockKey{Guild: b.Guild, User: b.User, Channel: b.Channel}
}

// LiftCause tells whether a restriction ended by hand or by its timer.
type LiftCause string

const (
	LiftManual  LiftCause = "manual"
	LiftExpired LiftCause = "expired"
)

// Release describes a restriction that has just been torn down.
type Release struct {
	Kind      Kind
	Guild     GuildID
	User      UserID
	Channel   ChannelID
	Cause     LiftCause
	Remaining *time.Duration
	Undo      Outcome
}
