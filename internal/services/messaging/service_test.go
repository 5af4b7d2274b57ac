package messaging

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/KirkDiggler/buddyup/internal/clients/buddyup"
	"github.com/stretchr/testify/suite"
)

type MessagingTestSuite struct {
	suite.Suite
	service *service
	ctx     context.Context
}

func (s *MessagingTestSuite) SetupTest() {
	svc, err := New(&Config{Seed: 42})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func TestMessagingSuite(t *testing.T) {
	suite.Run(t, new(MessagingTestSuite))
}

func (s *MessagingTestSuite) TestEveryActionHasTexts() {
	for action, t := range catalog {
		s.NotEmpty(t.title, action)
		s.NotEmpty(t.success, action)
		s.NotEmpty(t.failure, action)
	}
}

func (s *MessagingTestSuite) TestSuccessNotice() {
	out, err := s.service.GetNotice(s.ctx, &GetNoticeInput{Action: ActionJoin})
	s.Require().NoError(err)

	n := out.Notice
	s.Equal(SeveritySuccess, n.Severity)
	s.Contains(catalog[ActionJoin].success, n.Message)
	s.Equal(DefaultAutoHide, n.AutoHide)
	s.True(n.IsOpen())
}

func (s *MessagingTestSuite) TestErrorNoticeIncludesBackendMessage() {
	out, err := s.service.GetNotice(s.ctx, &GetNoticeInput{
		Action: ActionJoin,
		Err:    &buddyup.APIError{StatusCode: http.StatusBadRequest, Message: "The event is already at full capacity."},
	})
	s.Require().NoError(err)

	s.Equal(SeverityError, out.Notice.Severity)
	s.Equal("Could not join the event. The event is already at full capacity.", out.Notice.Message)
}

func (s *MessagingTestSuite) TestErrorNoticeHidesTransportErrors() {
	out, err := s.service.GetNotice(s.ctx, &GetNoticeInput{
		Action: ActionUploadImage,
		Err:    errors.New("dial tcp: connection refused"),
	})
	s.Require().NoError(err)
	s.Equal("Error uploading image.", out.Notice.Message)
}

func (s *MessagingTestSuite) TestSubjectInTitle() {
	out, err := s.service.GetNotice(s.ctx, &GetNoticeInput{Action: ActionCancel, Subject: "Board games"})
	s.Require().NoError(err)
	s.Equal("Cancelled: Board games", out.Notice.Title)
}

func (s *MessagingTestSuite) TestUnknownAction() {
	_, err := s.service.GetNotice(s.ctx, &GetNoticeInput{Action: "dance"})
	s.ErrorIs(err, ErrUnknownAction)

	_, err = s.service.GetNotice(s.ctx, nil)
	s.Error(err)
}

func (s *MessagingTestSuite) TestSeedIsDeterministic() {
	other, err := New(&Config{Seed: 42})
	s.Require().NoError(err)

	for i := 0; i < 5; i++ {
		a, _ := s.service.GetNotice(s.ctx, &GetNoticeInput{Action: ActionLogin})
		b, _ := other.GetNotice(s.ctx, &GetNoticeInput{Action: ActionLogin})
		s.Equal(a.Notice.Message, b.Notice.Message)
	}
}

func (s *MessagingTestSuite) TestCloseIgnoresClickaway() {
	n := Info("Heads up", "Nothing to see")
	s.Equal(SeverityInfo, n.Severity)

	s.False(n.Close(CloseClickaway))
	s.True(n.IsOpen())

	s.True(n.Close(CloseTimeout))
	s.False(n.IsOpen())

	s.False(n.Close(CloseDismiss))
}

func (s *MessagingTestSuite) TestAutoHideOverride() {
	svc, err := New(&Config{Seed: 1, AutoHide: time.Second})
	s.Require().NoError(err)

	out, err := svc.GetNotice(s.ctx, &GetNoticeInput{Action: ActionLogout})
	s.Require().NoError(err)
	s.Equal(time.Second, out.Notice.AutoHide)
}
