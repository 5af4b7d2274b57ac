package discord

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/buddyup/internal/clients/buddyup"
	clientMocks "github.com/KirkDiggler/buddyup/internal/clients/buddyup/mocks"
	clockMocks "github.com/KirkDiggler/buddyup/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/buddyup/internal/common/uuid/mocks"
	"github.com/KirkDiggler/buddyup/internal/models"
	"github.com/KirkDiggler/buddyup/internal/repositories/search"
	searchMocks "github.com/KirkDiggler/buddyup/internal/repositories/search/mocks"
	"github.com/KirkDiggler/buddyup/internal/services/directory"
	directoryMocks "github.com/KirkDiggler/buddyup/internal/services/directory/mocks"
	"github.com/KirkDiggler/buddyup/internal/services/membership"
	membershipMocks "github.com/KirkDiggler/buddyup/internal/services/membership/mocks"
	"github.com/KirkDiggler/buddyup/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/buddyup/internal/services/messaging/mocks"
	"github.com/KirkDiggler/buddyup/internal/services/session"
	sessionMocks "github.com/KirkDiggler/buddyup/internal/services/session/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ViewsTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockSessions   *sessionMocks.MockService
	mockDirectory  *directoryMocks.MockService
	mockMembership *membershipMocks.MockService
	mockClient     *clientMocks.MockClient
	mockClock      *clockMocks.MockClock
	mockSearches   *searchMocks.MockRepository
	mockUUID       *uuidMocks.MockUUID
	views          *Views
	ctx            context.Context
	now            time.Time
	signedIn       *models.Session
}

func (s *ViewsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessions = sessionMocks.NewMockService(s.mockCtrl)
	s.mockDirectory = directoryMocks.NewMockService(s.mockCtrl)
	s.mockMembership = membershipMocks.NewMockService(s.mockCtrl)
	s.mockClient = clientMocks.NewMockClient(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockSearches = searchMocks.NewMockRepository(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()
	s.now = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	s.signedIn = &models.Session{
		OwnerID:     "owner",
		AccessToken: "tok",
		IsSignedIn:  true,
		Provider:    models.ProviderGoogle,
		UserProfile: &models.UserProfile{UserID: "u1", Name: "Ann", Email: "ann@example.com"},
	}

	msg, err := messaging.New(&messaging.Config{Seed: 7})
	s.Require().NoError(err)

	views, err := NewViews(&ViewsConfig{
		SessionService:    s.mockSessions,
		DirectoryService:  s.mockDirectory,
		MembershipService: s.mockMembership,
		MessagingService:  msg,
		Client:            s.mockClient,
		Clock:             s.mockClock,
		SearchRepo:        s.mockSearches,
		UUID:              s.mockUUID,
		APIBaseURL:        "http://api.test/",
		DefaultCity:       "Waterloo",
	})
	s.Require().NoError(err)
	s.views = views
}

func (s *ViewsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestViewsSuite(t *testing.T) {
	suite.Run(t, new(ViewsTestSuite))
}

func (s *ViewsTestSuite) expectSession(sess *models.Session) {
	s.mockSessions.EXPECT().
		Load(s.ctx, &session.LoadInput{OwnerID: "owner"}).
		Return(&session.LoadOutput{Session: sess}, nil).
		AnyTimes()
}

func (s *ViewsTestSuite) event(participants ...string) *models.Event {
	return &models.Event{
		ID:           "e1",
		Title:        "Board games",
		Category:     "Gaming",
		City:         "Waterloo",
		StartTime:    s.now.Add(24 * time.Hour),
		EndTime:      s.now.Add(27 * time.Hour),
		Capacity:     4,
		Creator:      "host",
		Participants: participants,
		Attendance:   len(participants),
	}
}

func (s *ViewsTestSuite) expectNames() {
	s.mockClient.EXPECT().UsernamesByIDs(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *buddyup.UsernamesByIDsInput) (*buddyup.UsernamesByIDsOutput, error) {
			names := make([]*string, len(in.UserIDs))
			for idx, id := range in.UserIDs {
				name := "name-" + id
				names[idx] = &name
			}
			return &buddyup.UsernamesByIDsOutput{Usernames: names}, nil
		}).
		AnyTimes()
}

func buttonIDs(components []discordgo.MessageComponent) []string {
	var ids []string
	for _, c := range components {
		row, ok := c.(discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			switch v := inner.(type) {
			case discordgo.Button:
				ids = append(ids, v.CustomID)
			case discordgo.SelectMenu:
				ids = append(ids, v.CustomID)
			}
		}
	}
	return ids
}

func (s *ViewsTestSuite) TestWhoAmISignedOut() {
	s.expectSession(&models.Session{OwnerID: "owner"})

	data, err := s.views.WhoAmI(s.ctx, "owner")
	s.Require().NoError(err)
	s.Require().Len(data.Embeds, 1)
	s.Equal("Not signed in", data.Embeds[0].Title)
}

func (s *ViewsTestSuite) TestWhoAmISignedIn() {
	s.expectSession(s.signedIn)

	data, err := s.views.WhoAmI(s.ctx, "owner")
	s.Require().NoError(err)
	s.Equal("Signed in", data.Embeds[0].Title)
	s.Equal("via google", data.Embeds[0].Description)
	s.Equal("Ann", data.Embeds[0].Fields[0].Value)
}

func (s *ViewsTestSuite) TestLoginReturnsToEvent() {
	s.mockSessions.EXPECT().
		Login(s.ctx, &session.LoginInput{
			OwnerID:     "owner",
			Provider:    models.ProviderGoogle,
			Credential:  "id-token",
			CurrentPath: "/events/e1",
		}).
		Return(&session.LoginOutput{Session: s.signedIn, RedirectPath: "/events/e1"}, nil)
	s.expectSession(s.signedIn)
	s.mockClient.EXPECT().
		GetEvent(s.ctx, &buddyup.GetEventInput{Token: "tok", EventID: "e1"}).
		Return(&buddyup.EventOutput{Event: s.event("host")}, nil)
	s.expectNames()

	data, err := s.views.Login(s.ctx, "owner", models.ProviderGoogle, "id-token", "e1")
	s.Require().NoError(err)
	s.Require().Len(data.Embeds, 3)
	s.Equal(ColorGreen, data.Embeds[0].Color)
	s.Equal("Signed in", data.Embeds[1].Title)
	s.Equal("Board games", data.Embeds[2].Title)
	s.Equal([]string{"join|e1"}, buttonIDs(data.Components))
}

func (s *ViewsTestSuite) TestLoginFailure() {
	s.mockSessions.EXPECT().Login(s.ctx, gomock.Any()).Return(nil, session.ErrMissingCredential)

	data, err := s.views.Login(s.ctx, "owner", models.ProviderFacebook, "", "")
	s.Require().NoError(err)
	s.Require().Len(data.Embeds, 1)
	s.Equal(ColorRed, data.Embeds[0].Color)
	s.Equal("Sign in failed.", data.Embeds[0].Description)
}

func (s *ViewsTestSuite) TestSearchDefaultsCityAndOffersLoadMore() {
	s.expectSession(&models.Session{OwnerID: "owner"})
	next := 1
	s.mockDirectory.EXPECT().
		Search(s.ctx, &directory.SearchInput{City: "Waterloo", Query: "board"}).
		Return(&directory.ListOutput{Events: []*models.Event{s.event()}, NextPage: &next}, nil)

	data, err := s.views.Search(s.ctx, "owner", &directory.SearchInput{Query: "board"})
	s.Require().NoError(err)
	s.Equal(`Results for "board" in Waterloo`, data.Embeds[0].Title)
	s.Equal([]string{SelectOpenEvent, "more|1|Waterloo||board"}, buttonIDs(data.Components))
}

func (s *ViewsTestSuite) TestSearchStashesStateTooLongForButton() {
	city := strings.Repeat("Llanfairpwllgwyngyll", 5)
	s.expectSession(&models.Session{OwnerID: "owner"})
	next := 2
	s.mockDirectory.EXPECT().
		Search(s.ctx, &directory.SearchInput{City: city, Category: "Outdoors", Page: 1}).
		Return(&directory.ListOutput{Events: []*models.Event{s.event()}, NextPage: &next}, nil)
	s.mockUUID.EXPECT().NewUUID().Return("s1")
	s.mockSearches.EXPECT().
		SaveSearch(s.ctx, &search.SaveSearchInput{
			ID:    "s1",
			State: &models.SearchState{Page: 2, City: city, Category: "Outdoors"},
			TTL:   searchStateTTL,
		}).
		Return(nil)

	data, err := s.views.Search(s.ctx, "owner", &directory.SearchInput{City: city, Category: "Outdoors", Page: 1})
	s.Require().NoError(err)
	s.Equal([]string{SelectOpenEvent, "next|s1"}, buttonIDs(data.Components))
}

func (s *ViewsTestSuite) TestSearchDropsLoadMoreWhenStashFails() {
	query := strings.Repeat("é", 150)
	s.expectSession(&models.Session{OwnerID: "owner"})
	next := 1
	s.mockDirectory.EXPECT().
		Search(s.ctx, gomock.Any()).
		Return(&directory.ListOutput{Events: []*models.Event{s.event()}, NextPage: &next}, nil)
	s.mockUUID.EXPECT().NewUUID().Return("s1")
	s.mockSearches.EXPECT().SaveSearch(s.ctx, gomock.Any()).Return(errors.New("redis down"))

	data, err := s.views.Search(s.ctx, "owner", &directory.SearchInput{Query: query})
	s.Require().NoError(err)
	s.Equal([]string{SelectOpenEvent}, buttonIDs(data.Components))
}

func (s *ViewsTestSuite) TestLoadMoreResumesExactSearch() {
	query := strings.Repeat("é", 150) + " | trivia"
	s.mockSearches.EXPECT().
		GetSearch(s.ctx, &search.GetSearchInput{ID: "s1"}).
		Return(&search.GetSearchOutput{State: &models.SearchState{Page: 3, City: "Kitchener", Query: query}}, nil)
	s.expectSession(&models.Session{OwnerID: "owner"})
	s.mockDirectory.EXPECT().
		Search(s.ctx, &directory.SearchInput{City: "Kitchener", Query: query, Page: 3}).
		Return(&directory.ListOutput{Events: []*models.Event{s.event()}}, nil)

	data, err := routeComponent(s.ctx, s.views, "owner", "next|s1", nil)
	s.Require().NoError(err)
	s.Contains(data.Embeds[0].Title, "(page 4)")
	s.Equal([]string{SelectOpenEvent}, buttonIDs(data.Components))
}

func (s *ViewsTestSuite) TestLoadMoreExpired() {
	s.mockSearches.EXPECT().
		GetSearch(s.ctx, &search.GetSearchInput{ID: "gone"}).
		Return(&search.GetSearchOutput{}, nil)

	data, err := s.views.LoadMore(s.ctx, "owner", "gone")
	s.Require().NoError(err)
	s.Equal("Search expired", data.Embeds[0].Title)
	s.Equal(ColorRed, data.Embeds[0].Color)
}

func (s *ViewsTestSuite) TestSearchEmpty() {
	s.expectSession(&models.Session{OwnerID: "owner"})
	s.mockDirectory.EXPECT().Search(s.ctx, gomock.Any()).Return(&directory.ListOutput{}, nil)

	data, err := s.views.Search(s.ctx, "owner", &directory.SearchInput{City: "Guelph", Category: "Food"})
	s.Require().NoError(err)
	s.Equal("Food events in Guelph", data.Embeds[0].Title)
	s.Equal("No events found.", data.Embeds[0].Description)
	s.Empty(data.Components)
}

func (s *ViewsTestSuite) TestSearchFailureShowsNotice() {
	s.mockDirectory.EXPECT().Search(s.ctx, gomock.Any()).Return(nil, directory.ErrMissingCity)

	data, err := s.views.Search(s.ctx, "owner", &directory.SearchInput{})
	s.Require().NoError(err)
	s.Equal(ColorRed, data.Embeds[0].Color)
}

func (s *ViewsTestSuite) TestMyEventsRequiresSignIn() {
	s.expectSession(&models.Session{OwnerID: "owner"})

	data, err := s.views.MyEvents(s.ctx, "owner", directory.TabHosting)
	s.Require().NoError(err)
	s.Equal("Not signed in", data.Embeds[0].Title)
}

func (s *ViewsTestSuite) TestMyEventsShowsTabs() {
	s.expectSession(s.signedIn)
	s.mockDirectory.EXPECT().
		MyEvents(s.ctx, &directory.MyEventsInput{Token: "tok", Tab: directory.TabAttending}).
		Return(&directory.ListOutput{Events: []*models.Event{s.event("u1")}}, nil)

	data, err := s.views.MyEvents(s.ctx, "owner", "")
	s.Require().NoError(err)
	s.Equal("My events: Attending", data.Embeds[0].Title)
	s.Equal([]string{"tab|attending", "tab|hosting", "tab|cancelled", "tab|past", SelectOpenEvent}, buttonIDs(data.Components))
}

func (s *ViewsTestSuite) TestActJoin() {
	s.expectSession(s.signedIn)
	original := s.event("u2")
	joined := s.event("u2", "u1")

	s.mockClient.EXPECT().
		GetEvent(s.ctx, &buddyup.GetEventInput{Token: "tok", EventID: "e1"}).
		Return(&buddyup.EventOutput{Event: original}, nil)
	s.mockMembership.EXPECT().
		Join(s.ctx, &membership.ActionInput{Token: "tok", UserID: "u1", Event: original}).
		Return(&membership.ActionOutput{Event: joined, Message: "Successfully joined the event."}, nil)
	s.expectNames()

	data, err := s.views.Act(s.ctx, "owner", membership.ActionJoin, "e1")
	s.Require().NoError(err)
	s.Require().Len(data.Embeds, 2)
	s.Equal("Joined: Board games", data.Embeds[0].Title)
	s.Equal(ColorGreen, data.Embeds[0].Color)
	s.Equal([]string{"leave|e1"}, buttonIDs(data.Components))
}

func (s *ViewsTestSuite) TestActFailureKeepsEvent() {
	s.expectSession(s.signedIn)
	original := s.event("u2")

	s.mockClient.EXPECT().GetEvent(s.ctx, gomock.Any()).Return(&buddyup.EventOutput{Event: original}, nil)
	s.mockMembership.EXPECT().Join(s.ctx, gomock.Any()).
		Return(nil, &buddyup.APIError{StatusCode: http.StatusBadRequest, Message: "The event has been cancelled."})
	s.expectNames()

	data, err := s.views.Act(s.ctx, "owner", membership.ActionJoin, "e1")
	s.Require().NoError(err)
	s.Equal(ColorRed, data.Embeds[0].Color)
	s.Equal("Could not join the event. The event has been cancelled.", data.Embeds[0].Description)
	s.Equal([]string{"join|e1"}, buttonIDs(data.Components))
}

func (s *ViewsTestSuite) TestActRequiresSignIn() {
	s.expectSession(&models.Session{OwnerID: "owner"})

	data, err := s.views.Act(s.ctx, "owner", membership.ActionLeave, "e1")
	s.Require().NoError(err)
	s.Equal("Not signed in", data.Embeds[0].Title)

	_, err = s.views.Act(s.ctx, "owner", membership.ActionNone, "e1")
	s.Error(err)
}

func (s *ViewsTestSuite) TestHost() {
	s.expectSession(s.signedIn)
	start := s.now.Add(48 * time.Hour)

	s.mockClient.EXPECT().CreateEvent(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *buddyup.CreateEventInput) (*buddyup.EventOutput, error) {
			s.Equal("tok", in.Token)
			s.Equal("Waterloo", *in.Fields.City)
			s.Equal(start.Add(3*time.Hour), *in.Fields.EndTime)
			s.Equal(6, *in.Fields.Capacity)

			e := s.event()
			e.Creator = "u1"
			return &buddyup.EventOutput{Event: e}, nil
		})
	s.expectNames()

	data, err := s.views.Host(s.ctx, "owner", &HostInput{
		Title:    "Board games",
		Category: "Gaming",
		Start:    start,
		Duration: 3 * time.Hour,
		Capacity: 6,
	})
	s.Require().NoError(err)
	s.Equal("Event created", data.Embeds[0].Title)
	s.Equal([]string{"cancel|e1"}, buttonIDs(data.Components))
}

func (s *ViewsTestSuite) TestProfileResolvesImagePath() {
	s.expectSession(s.signedIn)
	s.mockClient.EXPECT().
		GetUser(s.ctx, &buddyup.GetUserInput{Token: "tok", UserID: "u1"}).
		Return(&buddyup.UserOutput{User: &models.User{
			ID:           "u1",
			Username:     "ann",
			ProfileImage: "/api/users/u1/profile_image/",
			Interests:    []string{"Gaming", "Food"},
		}}, nil)

	data, err := s.views.Profile(s.ctx, "owner", "")
	s.Require().NoError(err)
	embed := data.Embeds[0]
	s.Equal("ann", embed.Title)
	s.Equal("http://api.test/api/users/u1/profile_image/", embed.Thumbnail.URL)
	s.Equal(models.NoEmail, embed.Fields[0].Value)
	s.Equal("Gaming, Food", embed.Fields[2].Value)
}

func (s *ViewsTestSuite) TestUpdateProfile() {
	s.expectSession(s.signedIn)
	bio := "Likes games"

	s.mockClient.EXPECT().
		UpdateProfile(s.ctx, &buddyup.UpdateProfileInput{Token: "tok", Fields: buddyup.ProfileFields{Bio: &bio}}).
		Return(&buddyup.UserOutput{User: &models.User{ID: "u1", Username: "ann", Bio: bio}}, nil)

	data, err := s.views.UpdateProfile(s.ctx, "owner", buddyup.ProfileFields{Bio: &bio})
	s.Require().NoError(err)
	s.Require().Len(data.Embeds, 2)
	s.Equal("Profile updated successfully!", data.Embeds[0].Description)
	s.Equal(bio, data.Embeds[1].Description)
}

func (s *ViewsTestSuite) TestInterestsStagesCurrentSelection() {
	s.expectSession(s.signedIn)
	s.mockClient.EXPECT().GetUser(s.ctx, gomock.Any()).
		Return(&buddyup.UserOutput{User: &models.User{ID: "u1", Interests: []string{"Sports"}}}, nil)

	data, err := s.views.Interests(s.ctx, "owner")
	s.Require().NoError(err)

	row := data.Components[0].(discordgo.ActionsRow)
	menu := row.Components[0].(discordgo.SelectMenu)
	s.Equal(SelectInterests, menu.CustomID)
	s.Len(menu.Options, len(models.Categories))
	for _, o := range menu.Options {
		s.Equal(o.Value == "Sports", o.Default, o.Value)
	}
}

func (s *ViewsTestSuite) TestSaveInterests() {
	s.expectSession(s.signedIn)
	s.mockClient.EXPECT().UpdateProfile(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *buddyup.UpdateProfileInput) (*buddyup.UserOutput, error) {
			s.Require().NotNil(in.Fields.Interests)
			s.Empty(*in.Fields.Interests)
			s.Nil(in.Fields.Bio)
			return nil, &buddyup.APIError{StatusCode: http.StatusInternalServerError}
		})

	data, err := s.views.SaveInterests(s.ctx, "owner", nil)
	s.Require().NoError(err)
	s.Equal("Error updating interests", data.Embeds[0].Description)
}

func (s *ViewsTestSuite) TestUploadImage() {
	s.expectSession(s.signedIn)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer server.Close()

	s.mockClient.EXPECT().
		UploadProfileImage(s.ctx, &buddyup.UploadProfileImageInput{
			Token:       "tok",
			Filename:    "me.png",
			ContentType: "image/png",
			Data:        []byte("png-bytes"),
		}).
		Return(&buddyup.UserOutput{User: &models.User{ID: "u1", Username: "ann"}}, nil)

	data, err := s.views.UploadImage(s.ctx, "owner", &discordgo.MessageAttachment{
		URL:         server.URL + "/me.png",
		Filename:    "me.png",
		ContentType: "image/png",
	})
	s.Require().NoError(err)
	s.Equal("Profile image uploaded successfully!", data.Embeds[0].Description)
}

func (s *ViewsTestSuite) TestUploadImageDownloadFailure() {
	s.expectSession(s.signedIn)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	data, err := s.views.UploadImage(s.ctx, "owner", &discordgo.MessageAttachment{URL: server.URL})
	s.Require().NoError(err)
	s.Equal("Error uploading image.", data.Embeds[0].Description)
}

func (s *ViewsTestSuite) TestNoticeFallback() {
	mockMessaging := messagingMocks.NewMockService(s.mockCtrl)
	views, err := NewViews(&ViewsConfig{
		SessionService:    s.mockSessions,
		DirectoryService:  s.mockDirectory,
		MembershipService: s.mockMembership,
		MessagingService:  mockMessaging,
		Client:            s.mockClient,
		Clock:             s.mockClock,
		SearchRepo:        s.mockSearches,
	})
	s.Require().NoError(err)

	s.mockSessions.EXPECT().Logout(s.ctx, &session.LogoutInput{OwnerID: "owner"}).Return(errors.New("redis down"))
	mockMessaging.EXPECT().GetNotice(s.ctx, gomock.Any()).Return(nil, messaging.ErrUnknownAction)

	data, err := views.Logout(s.ctx, "owner")
	s.Require().NoError(err)
	s.Equal(ColorRed, data.Embeds[0].Color)
	s.Equal("Please try again.", data.Embeds[0].Description)
}

func (s *ViewsTestSuite) TestNewViewsValidates() {
	_, err := NewViews(nil)
	s.Error(err)

	_, err = NewViews(&ViewsConfig{SessionService: s.mockSessions})
	s.Error(err)
}
