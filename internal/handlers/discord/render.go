package discord

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/buddyup/internal/models"
	"github.com/KirkDiggler/buddyup/internal/services/directory"
	"github.com/KirkDiggler/buddyup/internal/services/membership"
	"github.com/KirkDiggler/buddyup/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	ColorGreen  = 0x00ff00
	ColorRed    = 0xff0000
	ColorBlue   = 0x3498db
	ColorOrange = 0xe67e22
	ColorGray   = 0x95a5a6
)

// Discord limits
const (
	maxEmbedFields   = 25
	maxSelectOptions = 25
	maxCustomIDLen   = 100
	maxFieldValueLen = 1024
	maxDescLen       = 4096
)

// discordTime renders a timestamp in the reader's own timezone
func discordTime(t time.Time) string {
	return fmt.Sprintf("<t:%d:f>", t.Unix())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// renderNotice renders a notice as an embed colored by severity
func renderNotice(n *messaging.Notice) *discordgo.MessageEmbed {
	color := ColorGreen
	switch n.Severity {
	case messaging.SeverityError:
		color = ColorRed
	case messaging.SeverityInfo:
		color = ColorBlue
	}

	return &discordgo.MessageEmbed{
		Title:       n.Title,
		Description: n.Message,
		Color:       color,
	}
}

// renderBadges joins badges for display
func renderBadges(badges []membership.Badge) string {
	parts := make([]string, 0, len(badges))
	for _, b := range badges {
		parts = append(parts, "`"+string(b)+"`")
	}
	return strings.Join(parts, " ")
}

func eventColor(view *membership.View) int {
	switch {
	case view.Cancelled, view.Expired:
		return ColorGray
	case view.Full && !view.IsAttending:
		return ColorOrange
	}
	return ColorGreen
}

// renderEventCard renders the detail card of an event
func renderEventCard(e *models.Event, view *membership.View, host string, attendees []string) *discordgo.MessageEmbed {
	if host == "" {
		host = models.UnknownName
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Starts", Value: discordTime(e.StartTime), Inline: true},
		{Name: "Ends", Value: discordTime(e.EndTime), Inline: true},
		{Name: "Category", Value: orDash(e.Category), Inline: true},
		{Name: "Where", Value: orDash(strings.Join(nonEmpty(e.Location, e.City), ", ")), Inline: true},
		{Name: "Spots", Value: fmt.Sprintf("%d / %d (%d left)", len(e.Participants), e.Capacity, max(view.SpotsLeft, 0)), Inline: true},
		{Name: "Host", Value: host, Inline: true},
	}

	if len(attendees) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Going",
			Value: truncate(strings.Join(attendees, ", "), maxFieldValueLen),
		})
	}

	if len(view.Badges) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Status",
			Value: renderBadges(view.Badges),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: truncate(e.Description, maxDescLen),
		Color:       eventColor(view),
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Event " + e.ID},
	}
}

// renderActionButtons renders the primary action for an event, if any
func renderActionButtons(e *models.Event, view *membership.View) []discordgo.MessageComponent {
	var button *discordgo.Button

	switch view.Action {
	case membership.ActionJoin:
		button = &discordgo.Button{Label: "Join", Style: discordgo.SuccessButton, CustomID: encodeCustomID(ButtonJoin, e.ID)}
	case membership.ActionLeave:
		button = &discordgo.Button{Label: "Leave", Style: discordgo.SecondaryButton, CustomID: encodeCustomID(ButtonLeave, e.ID)}
	case membership.ActionCancel:
		button = &discordgo.Button{Label: "Cancel Event", Style: discordgo.DangerButton, CustomID: encodeCustomID(ButtonCancel, e.ID)}
	case membership.ActionReactivate:
		button = &discordgo.Button{Label: "Reactivate", Style: discordgo.PrimaryButton, CustomID: encodeCustomID(ButtonReactivate, e.ID)}
	default:
		return nil
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{*button}},
	}
}

// renderEventList renders a page of events with an open menu and, when moreID is set, a load more button
func renderEventList(title string, events []*models.Event, now time.Time, userID, moreID string) *discordgo.InteractionResponseData {
	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: ColorBlue,
	}

	if len(events) == 0 {
		embed.Description = "No events found."
		return &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}}
	}

	var options []discordgo.SelectMenuOption
	for idx, e := range events {
		if idx >= maxEmbedFields {
			break
		}
		view := membership.Derive(e, userID, now)

		name := e.Title
		if badges := renderBadges(view.Badges); badges != "" {
			name = name + " " + badges
		}

		value := fmt.Sprintf("%s · %s · %d/%d", discordTime(e.StartTime), orDash(e.City), len(e.Participants), e.Capacity)
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  truncate(name, 256),
			Value: value,
		})

		if idx < maxSelectOptions {
			options = append(options, discordgo.SelectMenuOption{
				Label:       truncate(e.Title, 100),
				Value:       e.ID,
				Description: truncate(orDash(e.Category)+" in "+orDash(e.City), 100),
			})
		}
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    SelectOpenEvent,
				Placeholder: "Open an event",
				Options:     options,
			},
		}},
	}

	if moreID != "" {
		components = append(components, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Load more",
				Style:    discordgo.SecondaryButton,
				CustomID: moreID,
			},
		}})
	}

	return &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}
}

// renderTabs renders the "my events" tab switcher
func renderTabs(current directory.Tab) discordgo.ActionsRow {
	var buttons []discordgo.MessageComponent
	for _, t := range directory.Tabs {
		style := discordgo.SecondaryButton
		if t == current {
			style = discordgo.PrimaryButton
		}
		buttons = append(buttons, discordgo.Button{
			Label:    t.Label(),
			Style:    style,
			CustomID: encodeCustomID(ButtonTab, string(t)),
			Disabled: t == current,
		})
	}
	return discordgo.ActionsRow{Components: buttons}
}

// renderProfile renders a user record
func renderProfile(u *models.User) *discordgo.MessageEmbed {
	interests := "None yet"
	if len(u.Interests) > 0 {
		interests = strings.Join(u.Interests, ", ")
	}

	embed := &discordgo.MessageEmbed{
		Title:       orDash(u.Username),
		Description: truncate(u.Bio, maxDescLen),
		Color:       ColorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Email", Value: orValue(u.Email, models.NoEmail), Inline: true},
			{Name: "Location", Value: orDash(u.Location), Inline: true},
			{Name: "Interests", Value: interests},
		},
	}

	if strings.HasPrefix(u.ProfileImage, "http") {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: u.ProfileImage}
	}

	return embed
}

// renderSession renders who is signed in
func renderSession(sess *models.Session) *discordgo.MessageEmbed {
	if sess == nil || !sess.IsSignedIn {
		return renderNotice(messaging.Info("Not signed in", "Use `/buddyup login` to sign in with Facebook or Google."))
	}

	embed := &discordgo.MessageEmbed{
		Title: "Signed in",
		Color: ColorGreen,
	}

	if sess.Provider != "" {
		embed.Description = "via " + string(sess.Provider)
	}

	if p := sess.UserProfile; p != nil {
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Name", Value: orValue(p.Name, models.UnknownName), Inline: true},
			{Name: "Email", Value: orValue(p.Email, models.NoEmail), Inline: true},
		}
		if strings.HasPrefix(p.Picture, "http") {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: p.Picture}
		}
	}

	return embed
}

// renderInterestsMenu renders the staged interest picker with current interests preselected
func renderInterestsMenu(current []string) []discordgo.MessageComponent {
	selected := make(map[string]bool, len(current))
	for _, c := range current {
		selected[c] = true
	}

	options := make([]discordgo.SelectMenuOption, 0, len(models.Categories))
	for _, c := range models.Categories {
		options = append(options, discordgo.SelectMenuOption{
			Label:   c,
			Value:   c,
			Default: selected[c],
		})
	}

	minValues := 0
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    SelectInterests,
				Placeholder: "Pick your interests",
				MinValues:   &minValues,
				MaxValues:   len(options),
				Options:     options,
			},
		}},
	}
}

func orDash(s string) string {
	return orValue(s, "-")
}

func orValue(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// encodeSearchState packs a search into a "Load more" custom ID, reporting false
// when the state cannot travel inline without loss
func encodeSearchState(st *models.SearchState) (string, bool) {
	args := []string{strconv.Itoa(st.Page), st.City, st.Category, st.Query}
	for _, a := range args {
		if strings.Contains(a, customIDSep) {
			return "", false
		}
	}

	id := encodeCustomID(ButtonLoadMore, args...)
	return id, len(id) <= maxCustomIDLen
}

func decodeSearchState(args []string) (*models.SearchState, error) {
	if len(args) != 4 {
		return nil, fmt.Errorf("malformed load more state")
	}

	page, err := strconv.Atoi(args[0])
	if err != nil || page < 0 {
		return nil, fmt.Errorf("malformed load more page %q", args[0])
	}

	return &models.SearchState{
		Page:     page,
		City:     args[1],
		Category: args[2],
		Query:    args[3],
	}, nil
}
