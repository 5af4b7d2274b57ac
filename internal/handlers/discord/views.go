package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/buddyup/internal/clients/buddyup"
	"github.com/KirkDiggler/buddyup/internal/common/clock"
	"github.com/KirkDiggler/buddyup/internal/common/uuid"
	"github.com/KirkDiggler/buddyup/internal/models"
	"github.com/KirkDiggler/buddyup/internal/repositories/search"
	"github.com/KirkDiggler/buddyup/internal/services/directory"
	"github.com/KirkDiggler/buddyup/internal/services/membership"
	"github.com/KirkDiggler/buddyup/internal/services/messaging"
	"github.com/KirkDiggler/buddyup/internal/services/session"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	// maxAttachmentBytes bounds downloaded profile images
	maxAttachmentBytes = 6 << 20

	// searchStateTTL is how long a stashed "Load more" search stays usable
	searchStateTTL = 24 * time.Hour
)

// ViewsConfig holds the collaborators of the bot's views
type ViewsConfig struct {
	SessionService    session.Service
	DirectoryService  directory.Service
	MembershipService membership.Service
	MessagingService  messaging.Service
	Client            buddyup.Client
	Clock             clock.Clock

	// SearchRepo stashes searches too long for a button's custom ID
	SearchRepo search.Repository

	// UUID keys stashed searches, defaults to random UUIDs
	UUID uuid.UUID

	// HTTPClient downloads uploaded attachments
	HTTPClient *http.Client

	// APIBaseURL resolves relative profile image paths
	APIBaseURL string

	// DefaultCity is used when a search names no city
	DefaultCity string

	Logger *zap.Logger
}

// Views builds interaction responses from the front-end services
type Views struct {
	sessions    session.Service
	directory   directory.Service
	membership  membership.Service
	messaging   messaging.Service
	client      buddyup.Client
	clock       clock.Clock
	searches    search.Repository
	uuid        uuid.UUID
	httpClient  *http.Client
	apiBaseURL  string
	defaultCity string
	logger      *zap.Logger
}

// NewViews creates the bot's views
func NewViews(cfg *ViewsConfig) (*Views, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}

	if cfg.DirectoryService == nil {
		return nil, errors.New("directory service cannot be nil")
	}

	if cfg.MembershipService == nil {
		return nil, errors.New("membership service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Client == nil {
		return nil, errors.New("api client cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.SearchRepo == nil {
		return nil, errors.New("search repository cannot be nil")
	}

	ids := cfg.UUID
	if ids == nil {
		ids = uuid.New()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Views{
		sessions:    cfg.SessionService,
		directory:   cfg.DirectoryService,
		membership:  cfg.MembershipService,
		messaging:   cfg.MessagingService,
		client:      cfg.Client,
		clock:       cfg.Clock,
		searches:    cfg.SearchRepo,
		uuid:        ids,
		httpClient:  httpClient,
		apiBaseURL:  strings.TrimSuffix(cfg.APIBaseURL, "/"),
		defaultCity: cfg.DefaultCity,
		logger:      logger.Named("discord_views"),
	}, nil
}

func embeds(e ...*discordgo.MessageEmbed) []*discordgo.MessageEmbed {
	return e
}

// notice builds the notice for an action outcome, falling back to a plain embed
func (v *Views) notice(ctx context.Context, action messaging.Action, subject string, err error) *discordgo.MessageEmbed {
	out, nerr := v.messaging.GetNotice(ctx, &messaging.GetNoticeInput{
		Action:  action,
		Err:     err,
		Subject: subject,
	})
	if nerr != nil {
		v.logger.Warn("failed to build notice", zap.String("action", string(action)), zap.Error(nerr))
		if err != nil {
			return renderNotice(&messaging.Notice{Severity: messaging.SeverityError, Title: "Something went wrong", Message: "Please try again."})
		}
		return renderNotice(&messaging.Notice{Severity: messaging.SeveritySuccess, Title: "Done"})
	}
	return renderNotice(out.Notice)
}

func notSignedIn() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{Embeds: embeds(renderSession(nil))}
}

// load returns the owner's session; failures read as signed out
func (v *Views) load(ctx context.Context, owner string) *models.Session {
	out, err := v.sessions.Load(ctx, &session.LoadInput{OwnerID: owner})
	if err != nil {
		v.logger.Warn("failed to load session", zap.String("owner_id", owner), zap.Error(err))
		return &models.Session{OwnerID: owner}
	}
	return out.Session
}

// Login signs the owner in; eventID, when set, is the event page the user came from
func (v *Views) Login(ctx context.Context, owner string, provider models.Provider, credential, eventID string) (*discordgo.InteractionResponseData, error) {
	currentPath := "/"
	if eventID != "" {
		currentPath = "/events/" + eventID
	}

	out, err := v.sessions.Login(ctx, &session.LoginInput{
		OwnerID:     owner,
		Provider:    provider,
		Credential:  credential,
		CurrentPath: currentPath,
	})
	if err != nil {
		return &discordgo.InteractionResponseData{
			Embeds: embeds(v.notice(ctx, messaging.ActionLogin, "", err)),
		}, nil
	}

	data := &discordgo.InteractionResponseData{
		Embeds: embeds(v.notice(ctx, messaging.ActionLogin, "", nil), renderSession(out.Session)),
	}

	if id := strings.TrimPrefix(out.RedirectPath, "/events/"); id != "" && id != out.RedirectPath {
		card, err := v.Event(ctx, owner, id)
		if err != nil {
			return nil, err
		}
		data.Embeds = append(data.Embeds, card.Embeds...)
		data.Components = card.Components
	}

	return data, nil
}

// Logout clears the owner's session
func (v *Views) Logout(ctx context.Context, owner string) (*discordgo.InteractionResponseData, error) {
	err := v.sessions.Logout(ctx, &session.LogoutInput{OwnerID: owner})
	return &discordgo.InteractionResponseData{
		Embeds: embeds(v.notice(ctx, messaging.ActionLogout, "", err)),
	}, nil
}

// WhoAmI shows the owner's session
func (v *Views) WhoAmI(ctx context.Context, owner string) (*discordgo.InteractionResponseData, error) {
	return &discordgo.InteractionResponseData{
		Embeds: embeds(renderSession(v.load(ctx, owner))),
	}, nil
}

// Search lists a page of events by query, or by city and category
func (v *Views) Search(ctx context.Context, owner string, input *directory.SearchInput) (*discordgo.InteractionResponseData, error) {
	in := *input
	if in.City == "" {
		in.City = v.defaultCity
	}

	out, err := v.directory.Search(ctx, &in)
	if err != nil {
		return &discordgo.InteractionResponseData{
			Embeds: embeds(v.notice(ctx, messaging.ActionLoadEvents, "", err)),
		}, nil
	}

	var moreID string
	if out.NextPage != nil {
		moreID = v.loadMoreID(ctx, &models.SearchState{Page: *out.NextPage, City: in.City, Category: in.Category, Query: in.Query})
	}

	title := "Upcoming events in " + in.City
	switch {
	case in.Query != "":
		title = fmt.Sprintf("Results for %q in %s", in.Query, in.City)
	case in.Category != "":
		title = fmt.Sprintf("%s events in %s", in.Category, in.City)
	}
	if in.Page > 0 {
		title = fmt.Sprintf("%s (page %d)", title, in.Page+1)
	}

	sess := v.load(ctx, owner)
	return renderEventList(title, out.Events, v.clock.Now(), sess.UserID(), moreID), nil
}

// loadMoreID returns the custom ID of a "Load more" button. States that do not
// fit inline are stashed; an empty ID drops the button.
func (v *Views) loadMoreID(ctx context.Context, st *models.SearchState) string {
	if id, ok := encodeSearchState(st); ok {
		return id
	}

	key := v.uuid.NewUUID()
	err := v.searches.SaveSearch(ctx, &search.SaveSearchInput{
		ID:    key,
		State: st,
		TTL:   searchStateTTL,
	})
	if err != nil {
		v.logger.Warn("failed to stash search", zap.Error(err))
		return ""
	}

	return encodeCustomID(ButtonLoadStashed, key)
}

// LoadMore resumes a stashed search
func (v *Views) LoadMore(ctx context.Context, owner, id string) (*discordgo.InteractionResponseData, error) {
	out, err := v.searches.GetSearch(ctx, &search.GetSearchInput{ID: id})
	if err != nil {
		return &discordgo.InteractionResponseData{
			Embeds: embeds(v.notice(ctx, messaging.ActionLoadEvents, "", err)),
		}, nil
	}

	if out.State == nil {
		return &discordgo.InteractionResponseData{
			Embeds: embeds(&discordgo.MessageEmbed{
				Title:       "Search expired",
				Description: "Run /buddyup search again to see more events.",
				Color:       ColorRed,
			}),
		}, nil
	}

	return v.Search(ctx, owner, &directory.SearchInput{
		City:     out.State.City,
		Category: out.State.Category,
		Query:    out.State.Query,
		Page:     out.State.Page,
	})
}

// Discover lists a random sample of events
func (v *Views) Discover(ctx context.Context, owner string) (*discordgo.InteractionResponseData, error) {
	out, err := v.client.RandomEvents(ctx)
	if err != nil {
		return &discordgo.InteractionResponseData{
			Embeds: embeds(v.notice(ctx, messaging.ActionLoadEvents, "", err)),
		}, nil
	}

	sess := v.load(ctx, owner)
	return renderEventList("Something new", out.Events, v.clock.Now(), sess.UserID(), ""), nil
}

// MyEvents lists one tab of the owner's events
func (v *Views) MyEvents(ctx context.Context, owner string, tab directory.Tab) (*discordgo.InteractionResponseData, error) {
	sess := v.load(ctx, owner)
	if !sess.IsSignedIn {
		return notSignedIn(), nil
	}

	if tab == "" {
		tab = directory.TabAttending
	}

	out, err := v.directory.MyEvents(ctx, &directory.MyEventsInput{Token: sess.AccessToken, Tab: tab})
	if err != nil {
		return &discordgo.InteractionResponseData{
			Embeds: embeds(v.notice(ctx, messaging.ActionLoadEvents, "", err)),
		}, nil
	}

	data := renderEventList("My events: "+tab.Label(), out.Events, v.clock.Now(), sess.UserID(), "")
	data.Components = append([]discordgo.MessageComponent{renderTabs(tab)}, data.Components...)
	return data, nil
}

// Event shows the detail card of an event with its primary action
func (v *Views) Event(ctx context.Context, owner, eventID string) (*discordgo.InteractionResponseData, error) {
	sess := v.load(ctx, owner)

	out, err := v.client.GetEvent(ctx, &buddyup.GetEventInput{Token: sess.AccessToken, EventID: eventID})
	if err != nil {
		return &discordgo.InteractionResponseData{
			Embeds: embeds(v.notice(ctx, messaging.ActionLoadEvents, "", err)),
		}, nil
	}

	return v.card(ctx, sess, out.Event, nil), nil
}

// card renders an event card, optionally preceded by a notice
func (v *Views) card(ctx context.Context, sess *models.Session, e *models.Event, notice *discordgo.MessageEmbed) *discordgo.InteractionResponseData {
	view := membership.Derive(e, sess.UserID(), v.clock.Now())
	host, attendees := v.names(ctx, e)

	data := &discordgo.InteractionResponseData{
		Embeds:     embeds(renderEventCard(e, view, host, attendees)),
		Components: renderActionButtons(e, view),
	}
	if notice != nil {
		data.Embeds = append([]*discordgo.MessageEmbed{notice}, data.Embeds...)
	}
	return data
}

// names resolves the host and participant usernames; unknown IDs are skipped
func (v *Views) names(ctx context.Context, e *models.Event) (string, []string) {
	ids := append([]string{e.Creator}, e.Participants...)

	out, err := v.client.UsernamesByIDs(ctx, &buddyup.UsernamesByIDsInput{UserIDs: ids})
	if err != nil || len(out.Usernames) != len(ids) {
		if err != nil {
			v.logger.Warn("failed to resolve usernames", zap.String("event_id", e.ID), zap.Error(err))
		}
		return "", nil
	}

	host := ""
	if out.Usernames[0] != nil {
		host = *out.Usernames[0]
	}

	var attendees []string
	for _, name := range out.Usernames[1:] {
		if name != nil {
			attendees = append(attendees, *name)
		}
	}
	return host, attendees
}

var actionNotices = map[membership.Action]messaging.Action{
	membership.ActionJoin:       messaging.ActionJoin,
	membership.ActionLeave:      messaging.ActionLeave,
	membership.ActionCancel:     messaging.ActionCancel,
	membership.ActionReactivate: messaging.ActionReactivate,
}

// Act performs a membership action and re-renders the card with the outcome
func (v *Views) Act(ctx context.Context, owner string, action membership.Action, eventID string) (*discordgo.InteractionResponseData, error) {
	noticeAction, ok := actionNotices[action]
	if !ok {
		return nil, fmt.Errorf("unknown action %q", action)
	}

	sess := v.load(ctx, owner)
	if !sess.IsSignedIn {
		return notSignedIn(), nil
	}

	got, err := v.client.GetEvent(ctx, &buddyup.GetEventInput{Token: sess.AccessToken, EventID: eventID})
	if err != nil {
		return &discordgo.InteractionResponseData{
			Embeds: embeds(v.notice(ctx, noticeAction, "", err)),
		}, nil
	}

	input := &membership.ActionInput{
		Token:  sess.AccessToken,
		UserID: sess.UserID(),
		Event:  got.Event,
	}

	var out *membership.ActionOutput
	switch action {
	case membership.ActionJoin:
		out, err = v.membership.Join(ctx, input)
	case membership.ActionLeave:
		out, err = v.membership.Leave(ctx, input)
	case membership.ActionCancel:
		out, err = v.membership.Cancel(ctx, input)
	case membership.ActionReactivate:
		out, err = v.membership.Reactivate(ctx, input)
	}

	if err != nil {
		return v.card(ctx, sess, got.Event, v.notice(ctx, noticeAction, got.Event.Title, err)), nil
	}

	return v.card(ctx, sess, out.Event, v.notice(ctx, noticeAction, got.Event.Title, nil)), nil
}

// HostInput holds the fields of a new event
type HostInput struct {
	Title       string
	Description string
	Category    string
	City        string
	Location    string
	Start       time.Time
	Duration    time.Duration
	Capacity    int
}

// Host creates an event owned by the signed-in user
func (v *Views) Host(ctx context.Context, owner string, input *HostInput) (*discordgo.InteractionResponseData, error) {
	sess := v.load(ctx, owner)
	if !sess.IsSignedIn {
		return notSignedIn(), nil
	}

	city := input.City
	if city == "" {
		city = v.defaultCity
	}
	end := input.Start.Add(input.Duration)

	out, err := v.client.CreateEvent(ctx, &buddyup.CreateEventInput{
		Token: sess.AccessToken,
		Fields: buddyup.EventFields{
			Title:       &input.Title,
			Description: &input.Description,
			Category:    &input.Category,
			City:        &city,
			Location:    &input.Location,
			StartTime:   &input.Start,
			EndTime:     &end,
			Capacity:    &input.Capacity,
		},
	})
	if err != nil {
		return &discordgo.InteractionResponseData{
			Embeds: embeds(renderNotice(&messaging.Notice{
				Severity: messaging.SeverityError,
				Title:    "Could not create the event",
				Message:  buddyup.Message(err),
			})),
		}, nil
	}

	created := renderNotice(messaging.Info("Event created", "Share it with `/buddyup event id:"+out.Event.ID+"`"))
	return v.card(ctx, sess, out.Event, created), nil
}

// Profile shows a user record; an empty userID shows the owner's own
func (v *Views) Profile(ctx context.Context, owner, userID string) (*discordgo.InteractionResponseData, error) {
	sess := v.load(ctx, owner)
	if userID == "" {
		if !sess.IsSignedIn || sess.UserID() == "" {
			return notSignedIn(), nil
		}
		userID = sess.UserID()
	}

	out, err := v.client.GetUser(ctx, &buddyup.GetUserInput{Token: sess.AccessToken, UserID: userID})
	if err != nil {
		return &discordgo.InteractionResponseData{
			Embeds: embeds(renderNotice(&messaging.Notice{
				Severity: messaging.SeverityError,
				Title:    "Profile",
				Message:  buddyup.Message(err),
			})),
		}, nil
	}

	return &discordgo.InteractionResponseData{
		Embeds: embeds(renderProfile(v.absolute(out.User))),
	}, nil
}

// UpdateProfile sends the edited fields together in one update
func (v *Views) UpdateProfile(ctx context.Context, owner string, fields buddyup.ProfileFields) (*discordgo.InteractionResponseData, error) {
	return v.update(ctx, owner, messaging.ActionUpdateProfile, fields)
}

// Interests shows the interest picker with current interests staged
func (v *Views) Interests(ctx context.Context, owner string) (*discordgo.InteractionResponseData, error) {
	sess := v.load(ctx, owner)
	if !sess.IsSignedIn || sess.UserID() == "" {
		return notSignedIn(), nil
	}

	out, err := v.client.GetUser(ctx, &buddyup.GetUserInput{Token: sess.AccessToken, UserID: sess.UserID()})
	if err != nil {
		return &discordgo.InteractionResponseData{
			Embeds: embeds(v.notice(ctx, messaging.ActionInterests, "", err)),
		}, nil
	}

	return &discordgo.InteractionResponseData{
		Content:    "Select your interests, then close the menu to save.",
		Components: renderInterestsMenu(out.User.Interests),
	}, nil
}

// SaveInterests persists the picked interests
func (v *Views) SaveInterests(ctx context.Context, owner string, interests []string) (*discordgo.InteractionResponseData, error) {
	if interests == nil {
		interests = []string{}
	}
	return v.update(ctx, owner, messaging.ActionInterests, buddyup.ProfileFields{Interests: &interests})
}

func (v *Views) update(ctx context.Context, owner string, action messaging.Action, fields buddyup.ProfileFields) (*discordgo.InteractionResponseData, error) {
	sess := v.load(ctx, owner)
	if !sess.IsSignedIn {
		return notSignedIn(), nil
	}

	out, err := v.client.UpdateProfile(ctx, &buddyup.UpdateProfileInput{Token: sess.AccessToken, Fields: fields})
	if err != nil {
		return &discordgo.InteractionResponseData{
			Embeds: embeds(v.notice(ctx, action, "", err)),
		}, nil
	}

	return &discordgo.InteractionResponseData{
		Embeds: embeds(v.notice(ctx, action, "", nil), renderProfile(v.absolute(out.User))),
	}, nil
}

// UploadImage downloads an attachment and sends it as the new avatar
func (v *Views) UploadImage(ctx context.Context, owner string, attachment *discordgo.MessageAttachment) (*discordgo.InteractionResponseData, error) {
	sess := v.load(ctx, owner)
	if !sess.IsSignedIn {
		return notSignedIn(), nil
	}

	body, err := v.download(ctx, attachment)
	if err != nil {
		v.logger.Warn("failed to download attachment", zap.Error(err))
		return &discordgo.InteractionResponseData{
			Embeds: embeds(v.notice(ctx, messaging.ActionUploadImage, "", err)),
		}, nil
	}

	out, err := v.client.UploadProfileImage(ctx, &buddyup.UploadProfileImageInput{
		Token:       sess.AccessToken,
		Filename:    attachment.Filename,
		ContentType: attachment.ContentType,
		Data:        body,
	})
	if err != nil {
		return &discordgo.InteractionResponseData{
			Embeds: embeds(v.notice(ctx, messaging.ActionUploadImage, "", err)),
		}, nil
	}

	return &discordgo.InteractionResponseData{
		Embeds: embeds(v.notice(ctx, messaging.ActionUploadImage, "", nil), renderProfile(v.absolute(out.User))),
	}, nil
}

func (v *Views) download(ctx context.Context, attachment *discordgo.MessageAttachment) ([]byte, error) {
	if attachment == nil || attachment.URL == "" {
		return nil, errors.New("no attachment")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, attachment.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch attachment: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAttachmentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}
	if len(body) > maxAttachmentBytes {
		return nil, errors.New("attachment too large")
	}

	return body, nil
}

// absolute returns a copy of u with a relative image path resolved against the API
func (v *Views) absolute(u *models.User) *models.User {
	if u == nil || !strings.HasPrefix(u.ProfileImage, "/") || v.apiBaseURL == "" {
		return u
	}
	c := *u
	c.ProfileImage = v.apiBaseURL + u.ProfileImage
	return &c
}
