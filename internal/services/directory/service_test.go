package directory

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/buddyup/internal/clients/buddyup"
	clientMocks "github.com/KirkDiggler/buddyup/internal/clients/buddyup/mocks"
	clockMocks "github.com/KirkDiggler/buddyup/internal/common/clock/mocks"
	"github.com/KirkDiggler/buddyup/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DirectoryServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockClient *clientMocks.MockClient
	mockClock  *clockMocks.MockClock
	service    Service
	ctx        context.Context
	testTime   time.Time
}

func (s *DirectoryServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClient = clientMocks.NewMockClient(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		Client:   s.mockClient,
		Clock:    s.mockClock,
		PageSize: 2,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *DirectoryServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDirectoryServiceSuite(t *testing.T) {
	suite.Run(t, new(DirectoryServiceTestSuite))
}

func (s *DirectoryServiceTestSuite) event(id string, startOffset time.Duration, status models.EventStatus) *models.Event {
	start := s.testTime.Add(startOffset)
	return &models.Event{
		ID:        id,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Capacity:  5,
		Status:    status,
	}
}

func ids(events []*models.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func (s *DirectoryServiceTestSuite) TestHomeUsesFirstFilterPage() {
	s.mockClient.EXPECT().
		FilterEvents(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *buddyup.FilterEventsInput) (*buddyup.ListEventsOutput, error) {
			s.Equal([]buddyup.Filter{{Key: "city", Name: "Waterloo"}}, input.Filters)
			s.Require().NotNil(input.Page)
			s.Equal(0, *input.Page)
			return &buddyup.ListEventsOutput{Events: []*models.Event{s.event("a", time.Hour, "")}}, nil
		})

	out, err := s.service.Home(s.ctx, &HomeInput{City: "Waterloo"})
	s.Require().NoError(err)
	s.Len(out.Events, 1)
	s.Nil(out.NextPage)
}

func (s *DirectoryServiceTestSuite) TestSearchWithQuery() {
	s.mockClient.EXPECT().
		SearchEvents(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *buddyup.SearchEventsInput) (*buddyup.ListEventsOutput, error) {
			s.Equal("Waterloo", input.City)
			s.Equal("pizza", input.Query)
			s.Equal(1, *input.Page)
			return &buddyup.ListEventsOutput{Events: []*models.Event{
				s.event("a", time.Hour, ""),
				s.event("b", 2*time.Hour, ""),
			}}, nil
		})

	out, err := s.service.Search(s.ctx, &SearchInput{City: "Waterloo", Query: " pizza ", Category: "Food", Page: 1})
	s.Require().NoError(err)
	s.Require().NotNil(out.NextPage)
	s.Equal(2, *out.NextPage)
}

func (s *DirectoryServiceTestSuite) TestSearchByCategory() {
	s.mockClient.EXPECT().
		FilterEvents(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *buddyup.FilterEventsInput) (*buddyup.ListEventsOutput, error) {
			s.Equal([]buddyup.Filter{
				{Key: "city", Name: "Waterloo"},
				{Key: "category", Name: "Food"},
			}, input.Filters)
			return &buddyup.ListEventsOutput{Events: []*models.Event{}}, nil
		})

	out, err := s.service.Search(s.ctx, &SearchInput{City: "Waterloo", Category: "Food"})
	s.Require().NoError(err)
	s.Empty(out.Events)
}

func (s *DirectoryServiceTestSuite) TestSearchValidation() {
	_, err := s.service.Search(s.ctx, &SearchInput{})
	s.ErrorIs(err, ErrMissingCity)

	_, err = s.service.Search(s.ctx, &SearchInput{City: "Waterloo", Page: -1})
	s.ErrorIs(err, ErrInvalidPage)
}

func (s *DirectoryServiceTestSuite) TestMyEventsAttending() {
	s.mockClient.EXPECT().
		ListJoined(s.ctx, &buddyup.ListMyEventsInput{Token: "tok"}).
		Return(&buddyup.ListEventsOutput{Events: []*models.Event{
			s.event("later", 5*time.Hour, models.EventStatusActive),
			s.event("old", -5*time.Hour, models.EventStatusExpired),
			s.event("soon", time.Hour, models.EventStatusFull),
		}}, nil)

	out, err := s.service.MyEvents(s.ctx, &MyEventsInput{Token: "tok", Tab: TabAttending})
	s.Require().NoError(err)
	s.Equal([]string{"soon", "later"}, ids(out.Events))
}

func (s *DirectoryServiceTestSuite) TestMyEventsHostingDerivesStatus() {
	s.mockClient.EXPECT().
		ListCreated(s.ctx, gomock.Any()).
		Return(&buddyup.ListEventsOutput{Events: []*models.Event{
			s.event("ended", -3*time.Hour, ""),
			s.event("upcoming", time.Hour, ""),
		}}, nil)

	out, err := s.service.MyEvents(s.ctx, &MyEventsInput{Token: "tok", Tab: TabHosting})
	s.Require().NoError(err)
	s.Equal([]string{"upcoming"}, ids(out.Events))
}

func (s *DirectoryServiceTestSuite) TestMyEventsPast() {
	shared := s.event("shared", -10*time.Hour, models.EventStatusExpired)

	s.mockClient.EXPECT().ListJoined(s.ctx, gomock.Any()).
		Return(&buddyup.ListEventsOutput{Events: []*models.Event{
			s.event("joined-old", -5*time.Hour, models.EventStatusExpired),
			s.event("joined-new", time.Hour, models.EventStatusActive),
			shared,
		}}, nil)
	s.mockClient.EXPECT().ListCreated(s.ctx, gomock.Any()).
		Return(&buddyup.ListEventsOutput{Events: []*models.Event{shared}}, nil)

	out, err := s.service.MyEvents(s.ctx, &MyEventsInput{Token: "tok", Tab: TabPast})
	s.Require().NoError(err)
	s.Equal([]string{"shared", "joined-old"}, ids(out.Events))
}

func (s *DirectoryServiceTestSuite) TestMyEventsHostingSkipsCancelled() {
	cancelled := s.event("called-off", time.Hour, models.EventStatusActive)
	cancelled.Cancelled = true

	s.mockClient.EXPECT().ListCreated(s.ctx, gomock.Any()).
		Return(&buddyup.ListEventsOutput{Events: []*models.Event{
			cancelled,
			s.event("on", 2*time.Hour, models.EventStatusActive),
		}}, nil)

	out, err := s.service.MyEvents(s.ctx, &MyEventsInput{Token: "tok", Tab: TabHosting})
	s.Require().NoError(err)
	s.Equal([]string{"on"}, ids(out.Events))
}

func (s *DirectoryServiceTestSuite) TestMyEventsCancelled() {
	hosted := s.event("hosted", 3*time.Hour, models.EventStatusActive)
	hosted.Cancelled = true
	joined := s.event("joined", time.Hour, models.EventStatusActive)
	joined.Cancelled = true
	stale := s.event("stale", -5*time.Hour, models.EventStatusExpired)
	stale.Cancelled = true

	s.mockClient.EXPECT().ListJoined(s.ctx, gomock.Any()).
		Return(&buddyup.ListEventsOutput{Events: []*models.Event{
			joined,
			stale,
			s.event("live", time.Hour, models.EventStatusActive),
		}}, nil)
	s.mockClient.EXPECT().ListCreated(s.ctx, gomock.Any()).
		Return(&buddyup.ListEventsOutput{Events: []*models.Event{hosted, joined}}, nil)

	out, err := s.service.MyEvents(s.ctx, &MyEventsInput{Token: "tok", Tab: TabCancelled})
	s.Require().NoError(err)
	s.Equal([]string{"joined", "hosted"}, ids(out.Events))
}

func (s *DirectoryServiceTestSuite) TestMyEventsErrors() {
	_, err := s.service.MyEvents(s.ctx, &MyEventsInput{Tab: TabPast})
	s.ErrorIs(err, ErrNotSignedIn)

	_, err = s.service.MyEvents(s.ctx, &MyEventsInput{Token: "tok", Tab: "other"})
	s.ErrorIs(err, ErrUnknownTab)
}
