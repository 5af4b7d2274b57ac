package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/buddyup/internal/clients/buddyup"
	"github.com/KirkDiggler/buddyup/internal/models"
	"github.com/KirkDiggler/buddyup/internal/services/directory"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Layouts accepted for an event start time
var startLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

const defaultEventHours = 2

// BuddyUpCommand handles the /buddyup command
type BuddyUpCommand struct {
	BaseCommand
	views  *Views
	logger *zap.Logger
}

func choices(values ...string) []*discordgo.ApplicationCommandOptionChoice {
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(values))
	for _, v := range values {
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: v, Value: v})
	}
	return out
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

// NewBuddyUpCommand creates a new buddyup command handler
func NewBuddyUpCommand(views *Views, logger *zap.Logger) *BuddyUpCommand {
	if logger == nil {
		logger = zap.NewNop()
	}

	minCapacity := 1.0
	minPage := 1.0
	minHours := 1.0

	tabs := make([]string, 0, len(directory.Tabs))
	for _, t := range directory.Tabs {
		tabs = append(tabs, string(t))
	}

	category := stringOption("category", "Event category", false)
	category.Choices = choices(models.Categories...)

	requiredCategory := stringOption("category", "Event category", true)
	requiredCategory.Choices = choices(models.Categories...)

	provider := stringOption("provider", "Identity provider", true)
	provider.Choices = choices(string(models.ProviderFacebook), string(models.ProviderGoogle))

	tab := stringOption("tab", "Which events", false)
	tab.Choices = choices(tabs...)

	return &BuddyUpCommand{
		BaseCommand: BaseCommand{
			Name:        "buddyup",
			Description: "Find, host and join local events",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "login",
					Description: "Sign in with a Facebook access token or Google ID token",
					Options: []*discordgo.ApplicationCommandOption{
						provider,
						stringOption("token", "Provider credential", true),
						stringOption("event", "Event to return to after signing in", false),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "logout",
					Description: "Sign out",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "whoami",
					Description: "Show who you are signed in as",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "search",
					Description: "Search upcoming events in a city",
					Options: []*discordgo.ApplicationCommandOption{
						stringOption("query", "Keywords", false),
						stringOption("city", "City to search in", false),
						category,
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "page",
							Description: "Page number",
							MinValue:    &minPage,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "discover",
					Description: "Show a random selection of events",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "event",
					Description: "Show an event",
					Options: []*discordgo.ApplicationCommandOption{
						stringOption("id", "Event ID", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "myevents",
					Description: "Events you are attending, hosting, cancelled or past",
					Options:     []*discordgo.ApplicationCommandOption{tab},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "host",
					Description: "Host a new event",
					Options: []*discordgo.ApplicationCommandOption{
						stringOption("title", "Event title", true),
						requiredCategory,
						stringOption("start", "Start time, like 2025-05-01 18:30", true),
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "capacity",
							Description: "How many people can join",
							Required:    true,
							MinValue:    &minCapacity,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "hours",
							Description: "How long it runs",
							MinValue:    &minHours,
						},
						stringOption("city", "City", false),
						stringOption("location", "Venue or address", false),
						stringOption("description", "What to expect", false),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "profile",
					Description: "Show a profile",
					Options: []*discordgo.ApplicationCommandOption{
						stringOption("user", "User ID, defaults to you", false),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "update-profile",
					Description: "Edit your email, location and bio",
					Options: []*discordgo.ApplicationCommandOption{
						stringOption("email", "Email address", false),
						stringOption("location", "Where you live", false),
						stringOption("bio", "About you", false),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "interests",
					Description: "Pick your interests",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "upload-image",
					Description: "Upload a profile image",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionAttachment,
							Name:        "image",
							Description: "JPEG, PNG or GIF",
							Required:    true,
						},
					},
				},
			},
		},
		views:  views,
		logger: logger.Named("buddyup_command"),
	}
}

// Handle processes a Discord interaction for the buddyup command
func (c *BuddyUpCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	owner := interactionUserID(i)
	sub := data.Options[0]

	// Downloads and uploads can outlast the interaction deadline
	if sub.Name == "upload-image" {
		if err := DeferEphemeral(s, i); err != nil {
			return err
		}
		resp, err := c.dispatch(ctx, owner, sub, data.Resolved)
		if err != nil {
			c.logger.Error("command failed", zap.String("subcommand", sub.Name), zap.Error(err))
			resp = &discordgo.InteractionResponseData{Content: "Something went wrong. Please try again."}
		}
		return EditDeferred(s, i, resp)
	}

	resp, err := c.dispatch(ctx, owner, sub, data.Resolved)
	if err != nil {
		c.logger.Error("command failed", zap.String("subcommand", sub.Name), zap.Error(err))
		return RespondWithError(s, i, err.Error())
	}

	return RespondWithData(s, i, resp)
}

// dispatch builds the view for a subcommand
func (c *BuddyUpCommand) dispatch(ctx context.Context, owner string, sub *discordgo.ApplicationCommandInteractionDataOption, resolved *discordgo.ApplicationCommandInteractionDataResolved) (*discordgo.InteractionResponseData, error) {
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "login":
		return c.views.Login(ctx, owner, models.Provider(opts.str("provider")), opts.str("token"), opts.str("event"))
	case "logout":
		return c.views.Logout(ctx, owner)
	case "whoami":
		return c.views.WhoAmI(ctx, owner)
	case "search":
		page := 0
		if p := opts.integer("page"); p > 0 {
			page = p - 1
		}
		return c.views.Search(ctx, owner, &directory.SearchInput{
			City:     opts.str("city"),
			Category: opts.str("category"),
			Query:    strings.TrimSpace(opts.str("query")),
			Page:     page,
		})
	case "discover":
		return c.views.Discover(ctx, owner)
	case "event":
		return c.views.Event(ctx, owner, strings.TrimSpace(opts.str("id")))
	case "myevents":
		return c.views.MyEvents(ctx, owner, directory.Tab(opts.str("tab")))
	case "host":
		start, err := parseStart(opts.str("start"))
		if err != nil {
			return nil, err
		}
		hours := opts.integer("hours")
		if hours <= 0 {
			hours = defaultEventHours
		}
		return c.views.Host(ctx, owner, &HostInput{
			Title:       opts.str("title"),
			Description: opts.str("description"),
			Category:    opts.str("category"),
			City:        opts.str("city"),
			Location:    opts.str("location"),
			Start:       start,
			Duration:    time.Duration(hours) * time.Hour,
			Capacity:    opts.integer("capacity"),
		})
	case "profile":
		return c.views.Profile(ctx, owner, opts.str("user"))
	case "update-profile":
		var fields buddyup.ProfileFields
		for name, dst := range map[string]**string{
			"email":    &fields.Email,
			"location": &fields.Location,
			"bio":      &fields.Bio,
		} {
			if o, ok := opts[name]; ok {
				v := o.StringValue()
				*dst = &v
			}
		}
		if fields.Email == nil && fields.Location == nil && fields.Bio == nil {
			return nil, errors.New("nothing to update")
		}
		return c.views.UpdateProfile(ctx, owner, fields)
	case "interests":
		return c.views.Interests(ctx, owner)
	case "upload-image":
		var attachment *discordgo.MessageAttachment
		if resolved != nil {
			attachment = resolved.Attachments[opts.str("image")]
		}
		if attachment == nil {
			return nil, errors.New("no image attached")
		}
		return c.views.UploadImage(ctx, owner, attachment)
	}

	return nil, fmt.Errorf("unknown subcommand %q", sub.Name)
}

type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) options {
	m := make(options, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func (o options) str(name string) string {
	if opt, ok := o[name]; ok {
		if v, ok := opt.Value.(string); ok {
			return v
		}
	}
	return ""
}

// integer reads an integer option, which arrives as a JSON number
func (o options) integer(name string) int {
	if opt, ok := o[name]; ok {
		if v, ok := opt.Value.(float64); ok {
			return int(v)
		}
	}
	return 0
}

func parseStart(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range startLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not read start time %q, use YYYY-MM-DD HH:MM", value)
}

// interactionUserID returns who invoked an interaction in a guild or a DM
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
