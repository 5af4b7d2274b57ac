package discord

import (
	"context"
	"strings"

	"github.com/KirkDiggler/buddyup/internal/clients/buddyup"
	"github.com/KirkDiggler/buddyup/internal/models"
	"github.com/KirkDiggler/buddyup/internal/services/directory"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/mock/gomock"
)

func (s *ViewsTestSuite) TestCustomIDRoundTrip() {
	id := encodeCustomID(ButtonJoin, "e|1")
	s.Equal("join|e 1", id)

	kind, args := decodeCustomID(encodeCustomID(ButtonTab, "past"))
	s.Equal(ButtonTab, kind)
	s.Equal([]string{"past"}, args)
}

func (s *ViewsTestSuite) TestRouteLoadMore() {
	s.expectSession(&models.Session{OwnerID: "owner"})
	s.mockDirectory.EXPECT().
		Search(s.ctx, &directory.SearchInput{City: "Waterloo", Category: "Food", Page: 2}).
		Return(&directory.ListOutput{}, nil)

	data, err := routeComponent(s.ctx, s.views, "owner", "more|2|Waterloo|Food|", nil)
	s.Require().NoError(err)
	s.Equal("Food events in Waterloo (page 3)", data.Embeds[0].Title)
}

func (s *ViewsTestSuite) TestRouteOpenEvent() {
	s.expectSession(&models.Session{OwnerID: "owner"})
	s.mockClient.EXPECT().
		GetEvent(s.ctx, &buddyup.GetEventInput{EventID: "e1"}).
		Return(&buddyup.EventOutput{Event: s.event()}, nil)
	s.expectNames()

	data, err := routeComponent(s.ctx, s.views, "owner", SelectOpenEvent, []string{"e1"})
	s.Require().NoError(err)
	s.Equal("Board games", data.Embeds[0].Title)

	_, err = routeComponent(s.ctx, s.views, "owner", SelectOpenEvent, nil)
	s.Error(err)
}

func (s *ViewsTestSuite) TestRouteRejectsMalformed() {
	for _, id := range []string{"join", "leave|", "tab", "more|x|Waterloo||", "more|1", "next", "next|", "dance|e1"} {
		_, err := routeComponent(s.ctx, s.views, "owner", id, nil)
		s.Error(err, id)
	}
}

func (s *ViewsTestSuite) TestSearchStateInlineOnlyWhenLossless() {
	st := &models.SearchState{Page: 3, City: "Kitchener", Category: "Games", Query: "board"}
	id, ok := encodeSearchState(st)
	s.Require().True(ok)

	kind, args := decodeCustomID(id)
	s.Equal(ButtonLoadMore, kind)
	decoded, err := decodeSearchState(args)
	s.Require().NoError(err)
	s.Equal(st, decoded)

	_, ok = encodeSearchState(&models.SearchState{City: "Kitchener", Query: strings.Repeat("é", 150)})
	s.False(ok)

	_, ok = encodeSearchState(&models.SearchState{City: strings.Repeat("Waterloo", 13)})
	s.False(ok)

	_, ok = encodeSearchState(&models.SearchState{City: "Kitchener", Query: "cats|dogs"})
	s.False(ok)
}

func subcommand(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionSubCommand,
		Options: opts,
	}
}

func str(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

func num(name string, value float64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: value}
}

func (s *ViewsTestSuite) TestDispatchSearchPage() {
	cmd := NewBuddyUpCommand(s.views, nil)
	s.expectSession(&models.Session{OwnerID: "owner"})
	s.mockDirectory.EXPECT().
		Search(s.ctx, &directory.SearchInput{City: "Waterloo", Query: "hike", Page: 1}).
		Return(&directory.ListOutput{}, nil)

	_, err := cmd.dispatch(s.ctx, "owner", subcommand("search", str("query", "  hike "), num("page", 2)), nil)
	s.Require().NoError(err)
}

func (s *ViewsTestSuite) TestDispatchUpdateProfile() {
	cmd := NewBuddyUpCommand(s.views, nil)
	s.expectSession(s.signedIn)
	s.mockClient.EXPECT().UpdateProfile(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *buddyup.UpdateProfileInput) (*buddyup.UserOutput, error) {
			s.Require().NotNil(in.Fields.Location)
			s.Equal("Guelph", *in.Fields.Location)
			s.Nil(in.Fields.Email)
			s.Nil(in.Fields.Interests)
			return &buddyup.UserOutput{User: &models.User{ID: "u1", Location: "Guelph"}}, nil
		})

	_, err := cmd.dispatch(s.ctx, "owner", subcommand("update-profile", str("location", "Guelph")), nil)
	s.Require().NoError(err)

	_, err = cmd.dispatch(s.ctx, "owner", subcommand("update-profile"), nil)
	s.Error(err)
}

func (s *ViewsTestSuite) TestDispatchHostRejectsBadStart() {
	cmd := NewBuddyUpCommand(s.views, nil)

	_, err := cmd.dispatch(s.ctx, "owner", subcommand("host",
		str("title", "Picnic"), str("category", "Food"), str("start", "next friday"), num("capacity", 5)), nil)
	s.ErrorContains(err, "could not read start time")
}

func (s *ViewsTestSuite) TestDispatchUploadNeedsAttachment() {
	cmd := NewBuddyUpCommand(s.views, nil)

	_, err := cmd.dispatch(s.ctx, "owner", subcommand("upload-image", str("image", "att-1")),
		&discordgo.ApplicationCommandInteractionDataResolved{})
	s.Error(err)

	_, err = cmd.dispatch(s.ctx, "owner", subcommand("nope"), nil)
	s.Error(err)
}

func (s *ViewsTestSuite) TestCommandDefinition() {
	cmd := NewBuddyUpCommand(s.views, nil).GetCommand()
	s.Equal("buddyup", cmd.Name)

	names := make([]string, 0, len(cmd.Options))
	for _, o := range cmd.Options {
		names = append(names, o.Name)
		// Discord rejects required options after optional ones
		seenOptional := false
		for _, inner := range o.Options {
			if !inner.Required {
				seenOptional = true
			}
			s.False(seenOptional && inner.Required, "%s/%s", o.Name, inner.Name)
		}
	}
	s.Equal([]string{
		"login", "logout", "whoami", "search", "discover", "event", "myevents",
		"host", "profile", "update-profile", "interests", "upload-image",
	}, names)
}
