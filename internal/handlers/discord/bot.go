package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/buddyup/internal/services/directory"
	"github.com/KirkDiggler/buddyup/internal/services/membership"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	views      *Views
	config     *Config
	logger     *zap.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	Views *Views

	Logger *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.Views == nil {
		return nil, errors.New("views cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		views:      cfg.Views,
		config:     cfg,
		logger:     logger.Named("discord_bot"),
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(NewBuddyUpCommand(b.views, b.logger)); err != nil {
		return fmt.Errorf("failed to register buddyup command: %w", err)
	}

	b.logger.Info("bot is now running")
	return nil
}

// Stop removes registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID),
				zap.Error(err))
		} else {
			b.logger.Info("deleted command", zap.String("command", cmdName))
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, for one guild when GuildID is set
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	guildID := b.config.GuildID
	if guildID != "" {
		b.logger.Info("registering command for guild", zap.String("command", cmd.GetName()), zap.String("guild_id", guildID))
	} else {
		b.logger.Info("registering command globally", zap.String("command", cmd.GetName()))
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command", zap.String("command", cmd.GetName()), zap.String("command_id", createdCmd.ID))

	return nil
}

// Component custom IDs. Arguments follow the kind, separated by customIDSep.
const (
	ButtonJoin        = "join"
	ButtonLeave       = "leave"
	ButtonCancel      = "cancel"
	ButtonReactivate  = "reactivate"
	ButtonLoadMore    = "more"
	ButtonLoadStashed = "next"
	ButtonTab         = "tab"

	// Select menu custom IDs
	SelectOpenEvent = "open"
	SelectInterests = "interests"

	customIDSep = "|"
)

// encodeCustomID joins a component kind and its arguments
func encodeCustomID(kind string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, kind)
	for _, a := range args {
		parts = append(parts, strings.ReplaceAll(a, customIDSep, " "))
	}
	return strings.Join(parts, customIDSep)
}

// decodeCustomID splits a custom ID into its kind and arguments
func decodeCustomID(id string) (string, []string) {
	parts := strings.Split(id, customIDSep)
	return parts[0], parts[1:]
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("failed to handle command", zap.String("command", name), zap.Error(err))
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("failed to handle component", zap.Error(err))
		}
	}
}

// handleComponentInteraction handles button clicks and select menus
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()

	resp, err := routeComponent(context.Background(), b.views, interactionUserID(i), data.CustomID, data.Values)
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	return RespondWithData(s, i, resp)
}

var membershipButtons = map[string]membership.Action{
	ButtonJoin:       membership.ActionJoin,
	ButtonLeave:      membership.ActionLeave,
	ButtonCancel:     membership.ActionCancel,
	ButtonReactivate: membership.ActionReactivate,
}

// routeComponent builds the view for a component interaction
func routeComponent(ctx context.Context, v *Views, owner, customID string, values []string) (*discordgo.InteractionResponseData, error) {
	kind, args := decodeCustomID(customID)

	if action, ok := membershipButtons[kind]; ok {
		if len(args) != 1 || args[0] == "" {
			return nil, fmt.Errorf("malformed button: %s", customID)
		}
		return v.Act(ctx, owner, action, args[0])
	}

	switch kind {
	case ButtonLoadMore:
		st, err := decodeSearchState(args)
		if err != nil {
			return nil, err
		}
		return v.Search(ctx, owner, &directory.SearchInput{
			City:     st.City,
			Category: st.Category,
			Query:    st.Query,
			Page:     st.Page,
		})
	case ButtonLoadStashed:
		if len(args) != 1 || args[0] == "" {
			return nil, fmt.Errorf("malformed button: %s", customID)
		}
		return v.LoadMore(ctx, owner, args[0])
	case ButtonTab:
		if len(args) != 1 {
			return nil, fmt.Errorf("malformed button: %s", customID)
		}
		return v.MyEvents(ctx, owner, directory.Tab(args[0]))
	case SelectOpenEvent:
		if len(values) == 0 {
			return nil, errors.New("no event selected")
		}
		return v.Event(ctx, owner, values[0])
	case SelectInterests:
		return v.SaveInterests(ctx, owner, values)
	}

	return nil, fmt.Errorf("unknown component: %s", customID)
}
