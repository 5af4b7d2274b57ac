package user

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/buddyup/internal/common/clock/mocks"
	"github.com/KirkDiggler/buddyup/internal/models"
	userRepo "github.com/KirkDiggler/buddyup/internal/repositories/user"
	userMocks "github.com/KirkDiggler/buddyup/internal/repositories/user/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUserRepo *userMocks.MockRepository
	mockClock    *clockMocks.MockClock
	userService  Service
	ctx          context.Context

	testTime   time.Time
	testUserID string
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testUserID = "test-user-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		UserRepo: s.mockUserRepo,
		Clock:    s.mockClock,
	})
	s.Require().NoError(err)
	s.userService = svc
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) existingUser() *models.User {
	return &models.User{
		ID:        s.testUserID,
		Username:  "testuser",
		Email:     "test@example.com",
		Location:  "Waterloo",
		Interests: []string{},
	}
}

func pngBytes() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func strPtr(v string) *string { return &v }

func (s *UserServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilUserRepo)

	_, err = New(&Config{UserRepo: s.mockUserRepo})
	s.ErrorIs(err, ErrNilClock)
}

func (s *UserServiceTestSuite) TestGetUserNotFound() {
	s.mockUserRepo.EXPECT().GetUser(s.ctx, &userRepo.GetUserInput{UserID: "ghost"}).Return(nil, userRepo.ErrUserNotFound)

	_, err := s.userService.GetUser(s.ctx, &GetUserInput{UserID: "ghost"})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserServiceTestSuite) TestUpdateProfilePartial() {
	s.mockUserRepo.EXPECT().GetUser(s.ctx, gomock.Any()).Return(s.existingUser(), nil)
	s.mockUserRepo.EXPECT().SaveUser(s.ctx, gomock.Any()).Return(nil)

	interests := []string{"food", " Sports ", "FOOD", "", "Knitting"}
	out, err := s.userService.UpdateProfile(s.ctx, &UpdateProfileInput{
		CallerID: s.testUserID,
		Fields: ProfileFields{
			Location:  strPtr("San Francisco"),
			Interests: &interests,
		},
	})
	s.Require().NoError(err)
	s.Equal("San Francisco", out.User.Location)
	s.Equal("test@example.com", out.User.Email)
	s.Equal([]string{"Food", "Sports", "Knitting"}, out.User.Interests)
	s.Equal(s.testTime, out.User.UpdatedAt)
}

func (s *UserServiceTestSuite) TestUpdateProfileInvalidEmail() {
	for _, email := range []string{"invalid-email", "a@b", "Name <a@b.com>"} {
		s.Run(email, func() {
			s.mockUserRepo.EXPECT().GetUser(s.ctx, gomock.Any()).Return(s.existingUser(), nil)

			_, err := s.userService.UpdateProfile(s.ctx, &UpdateProfileInput{
				CallerID: s.testUserID,
				Fields:   ProfileFields{Email: strPtr(email)},
			})
			s.ErrorIs(err, ErrInvalidEmail)
			s.Equal("email", Field(err))
		})
	}
}

func (s *UserServiceTestSuite) TestUpdateProfileEmailInUse() {
	s.mockUserRepo.EXPECT().GetUser(s.ctx, gomock.Any()).Return(s.existingUser(), nil)
	s.mockUserRepo.EXPECT().SaveUser(s.ctx, gomock.Any()).Return(userRepo.ErrEmailTaken)

	_, err := s.userService.UpdateProfile(s.ctx, &UpdateProfileInput{
		CallerID: s.testUserID,
		Fields:   ProfileFields{Email: strPtr("taken@example.com")},
	})
	s.ErrorIs(err, ErrEmailInUse)
	s.Equal("email", Field(err))
}

func (s *UserServiceTestSuite) TestUpdateProfileOtherUser() {
	_, err := s.userService.UpdateProfile(s.ctx, &UpdateProfileInput{
		CallerID: s.testUserID,
		TargetID: "someone-else",
	})
	s.ErrorIs(err, ErrForbidden)
}

func (s *UserServiceTestSuite) TestUploadProfileImage() {
	data := pngBytes()
	s.mockUserRepo.EXPECT().GetUser(s.ctx, gomock.Any()).Return(s.existingUser(), nil)
	s.mockUserRepo.EXPECT().SaveProfileImage(s.ctx, &userRepo.SaveProfileImageInput{
		UserID:      s.testUserID,
		ContentType: "image/png",
		Data:        data,
	}).Return(nil)
	s.mockUserRepo.EXPECT().SaveUser(s.ctx, gomock.Any()).Return(nil)

	out, err := s.userService.UploadProfileImage(s.ctx, &UploadProfileImageInput{
		CallerID:    s.testUserID,
		ContentType: "image/jpeg",
		Data:        data,
	})
	s.Require().NoError(err)
	s.Equal("/api/users/test-user-id/profile-image/", out.User.ProfileImage)
}

func (s *UserServiceTestSuite) TestUploadProfileImageRejectsBadData() {
	testCases := []struct {
		name        string
		contentType string
		data        []byte
		expected    error
	}{
		{"empty", "image/png", nil, ErrMissingImage},
		{"text file", "text/plain", []byte("invalid content"), ErrNotAnImage},
		{"corrupt image", "image/jpeg", []byte("not-an-image"), ErrNotAnImage},
		{"too large", "image/png", make([]byte, MaxImageBytes+1), ErrImageTooLarge},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.userService.UploadProfileImage(s.ctx, &UploadProfileImageInput{
				CallerID:    s.testUserID,
				ContentType: tc.contentType,
				Data:        tc.data,
			})
			s.ErrorIs(err, tc.expected)
			s.Equal("profile_image", Field(err))
		})
	}
}

func (s *UserServiceTestSuite) TestGetProfileImageMissing() {
	s.mockUserRepo.EXPECT().GetProfileImage(s.ctx, gomock.Any()).Return(nil, userRepo.ErrProfileImageNotFound)

	_, err := s.userService.GetProfileImage(s.ctx, &GetProfileImageInput{UserID: s.testUserID})
	s.ErrorIs(err, ErrProfileImageNotFound)
}

func (s *UserServiceTestSuite) TestUsernamesByIDs() {
	s.mockUserRepo.EXPECT().GetUsers(s.ctx, &userRepo.GetUsersInput{UserIDs: []string{"1", "999", "2"}}).
		Return(&userRepo.GetUsersOutput{Users: []*models.User{
			{ID: "1", Username: "aaa"},
			nil,
			{ID: "2", Username: "bbb"},
		}}, nil)

	out, err := s.userService.UsernamesByIDs(s.ctx, &UsernamesByIDsInput{UserIDs: []string{"1", " 999", "", "2"}})
	s.Require().NoError(err)
	s.Require().Len(out.Usernames, 4)
	s.Equal("aaa", *out.Usernames[0])
	s.Nil(out.Usernames[1])
	s.Nil(out.Usernames[2])
	s.Equal("bbb", *out.Usernames[3])
}

func (s *UserServiceTestSuite) TestUsernamesByIDsEmpty() {
	_, err := s.userService.UsernamesByIDs(s.ctx, &UsernamesByIDsInput{UserIDs: []string{"", " "}})
	s.ErrorIs(err, ErrEmptyParticipants)
	s.Equal("'participants' should not be empty", err.Error())
}
