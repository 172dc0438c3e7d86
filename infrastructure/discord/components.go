package discord

import (
	"fmt"
	"solibot/domain"
	"solibot/services"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

// Custom ID prefixes of the confinement menus, followed by the target user ID.
const (
	confineChannelPrefix  = "confine_channel:"
	confineDurationPrefix = "confine_duration:"
)

// text is a plain reply. The empty component list clears the menus of the
// message it replaces.
func text(content string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{Content: content, Components: []discordgo.MessageComponent{}}
}

func withMenu(content string, selectMenu discordgo.SelectMenu) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content: content,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{selectMenu}},
		},
	}
}

func channelMenu(target domain.UserID) discordgo.SelectMenu {
	return discordgo.SelectMenu{
		MenuType:     discordgo.ChannelSelectMenu,
		CustomID:     confineChannelPrefix + string(target),
		Placeholder:  "Choose a voice channel",
		ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildVoice},
	}
}

// durationMenu offers every confinement duration, values in minutes. Zero is permanent.
func durationMenu(target domain.UserID) discordgo.SelectMenu {
	return discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    confineDurationPrefix + string(target),
		Placeholder: "Choose a duration",
		Options: lo.Map(services.ConfinementDurations, func(d time.Duration, _ int) discordgo.SelectMenuOption {
			return discordgo.SelectMenuOption{Label: durationLabel(d), Value: strconv.Itoa(int(d / time.Minute))}
		}),
	}
}

func durationLabel(d time.Duration) string {
	switch {
	case d == 0:
		return "Permanent"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes", int(d/time.Minute))
	case d == time.Hour:
		return "1 hour"
	default:
		return fmt.Sprintf("%d hours", int(d/time.Hour))
	}
}
