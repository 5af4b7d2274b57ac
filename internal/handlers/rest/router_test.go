package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/buddyup/internal/common/clock"
	"github.com/KirkDiggler/buddyup/internal/common/uuid"
	"github.com/KirkDiggler/buddyup/internal/models"
	"github.com/KirkDiggler/buddyup/internal/picker"
	eventRepo "github.com/KirkDiggler/buddyup/internal/repositories/event"
	userRepo "github.com/KirkDiggler/buddyup/internal/repositories/user"
	"github.com/KirkDiggler/buddyup/internal/services/auth"
	authMocks "github.com/KirkDiggler/buddyup/internal/services/auth/mocks"
	"github.com/KirkDiggler/buddyup/internal/services/event"
	"github.com/KirkDiggler/buddyup/internal/services/user"
	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RouterTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mr           *miniredis.Miniredis
	client       *redis.Client
	mockFacebook *authMocks.MockIdentityVerifier
	router       http.Handler
}

func (s *RouterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	s.router = s.newRouter(nil)
}

func (s *RouterTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.ctrl.Finish()
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) newRouter(limiter *RateLimiter) http.Handler {
	events, err := eventRepo.NewRedis(&eventRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	users, err := userRepo.NewRedis(&userRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.mockFacebook = authMocks.NewMockIdentityVerifier(s.ctrl)

	authService, err := auth.New(&auth.Config{
		UserRepo:      users,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Verifiers: map[models.Provider]auth.IdentityVerifier{
			models.ProviderFacebook: s.mockFacebook,
		},
		JWTSecret: "router-test-secret",
	})
	s.Require().NoError(err)

	eventService, err := event.New(&event.Config{
		EventRepo:     events,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Sampler:       picker.New(&picker.Config{Seed: 1}),
	})
	s.Require().NoError(err)

	userService, err := user.New(&user.Config{
		UserRepo: users,
		Clock:    clock.New(),
	})
	s.Require().NoError(err)

	router, err := NewRouter(&Config{
		AuthService:  authService,
		EventService: eventService,
		UserService:  userService,
		HealthCheck: func(ctx context.Context) error {
			return s.client.Ping(ctx).Err()
		},
		RateLimiter: limiter,
	})
	s.Require().NoError(err)

	return router
}

func (s *RouterTestSuite) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) decode(rec *httptest.ResponseRecorder, v interface{}) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

// login signs in a Facebook identity and returns its access token and user ID
func (s *RouterTestSuite) login(externalID, name string) (string, string) {
	s.mockFacebook.EXPECT().
		Verify(gomock.Any(), "fb-"+externalID).
		Return(&auth.Identity{
			Provider:   models.ProviderFacebook,
			ExternalID: externalID,
			Name:       name,
			Email:      externalID + "@example.com",
		}, nil)

	rec := s.do(http.MethodPost, "/api/auth/facebook/", "", map[string]string{"access_token": "fb-" + externalID})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var pair struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	s.decode(rec, &pair)
	s.Require().NotEmpty(pair.Access)
	s.Require().NotEmpty(pair.Refresh)

	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(pair.Access, claims)
	s.Require().NoError(err)

	return pair.Access, claims["user_id"].(string)
}

func (s *RouterTestSuite) createEvent(token, title, city string, capacity int) *models.Event {
	start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	rec := s.do(http.MethodPost, "/api/events/new/", token, map[string]interface{}{
		"title":       title,
		"description": "Bring friends",
		"category":    "Food",
		"city":        city,
		"location":    "Main St",
		"start_time":  start,
		"end_time":    start.Add(2 * time.Hour),
		"capacity":    capacity,
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var e models.Event
	s.decode(rec, &e)
	return &e
}

func (s *RouterTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"status":"ok"`)

	s.mr.Close()
	rec = s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
}

func (s *RouterTestSuite) TestLoginMissingToken() {
	rec := s.do(http.MethodPost, "/api/auth/facebook/", "", map[string]string{})
	s.Equal(http.StatusBadRequest, rec.Code)

	var body ErrorResponse
	s.decode(rec, &body)
	s.Equal(auth.ErrMissingFacebookToken.Error(), body.Error)
}

func (s *RouterTestSuite) TestUnsupportedProvider() {
	rec := s.do(http.MethodPost, "/api/auth/google/", "", map[string]string{"id_token": "x"})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestRefresh() {
	s.mockFacebook.EXPECT().Verify(gomock.Any(), "fb-1").Return(&auth.Identity{
		Provider:   models.ProviderFacebook,
		ExternalID: "1",
		Name:       "Ann",
	}, nil)

	rec := s.do(http.MethodPost, "/api/auth/facebook/", "", map[string]string{"access_token": "fb-1"})
	s.Require().Equal(http.StatusOK, rec.Code)

	var pair map[string]string
	s.decode(rec, &pair)

	rec = s.do(http.MethodPost, "/api/auth/refresh/", "", map[string]string{"refresh": pair["refresh"]})
	s.Equal(http.StatusOK, rec.Code)

	// An access token is not a refresh token
	rec = s.do(http.MethodPost, "/api/auth/refresh/", "", map[string]string{"refresh": pair["access"]})
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestBadBearerToken() {
	rec := s.do(http.MethodGet, "/api/events/created/", "not-a-jwt", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestCreateRequiresAuth() {
	rec := s.do(http.MethodPost, "/api/events/new/", "", map[string]string{"title": "x"})
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestCreateValidation() {
	token, _ := s.login("1", "Ann")

	rec := s.do(http.MethodPost, "/api/events/new/", token, map[string]interface{}{"title": "Lunch"})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestEventLifecycle() {
	hostToken, hostID := s.login("1", "Ann")
	guestToken, guestID := s.login("2", "Bob")

	e := s.createEvent(hostToken, "Taco Night", "Waterloo", 1)
	s.Equal(hostID, e.Creator)
	s.Equal(models.EventStatusActive, e.Status)

	rec := s.do(http.MethodGet, "/api/events/"+e.ID+"/", "", nil)
	s.Equal(http.StatusOK, rec.Code)

	// Guest cannot edit
	rec = s.do(http.MethodPatch, "/api/events/"+e.ID+"/", guestToken, map[string]string{"title": "Mine"})
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPatch, "/api/events/"+e.ID+"/", hostToken, map[string]string{"title": "Taco Tuesday"})
	s.Require().Equal(http.StatusOK, rec.Code)
	var updated models.Event
	s.decode(rec, &updated)
	s.Equal("Taco Tuesday", updated.Title)

	rec = s.do(http.MethodPost, "/api/events/"+e.ID+"/join/", guestToken, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var joined membershipResponse
	s.decode(rec, &joined)
	s.Equal("Successfully joined the event.", joined.Message)
	s.Equal([]string{guestID}, joined.Event.Participants)
	s.Equal(models.EventStatusFull, joined.Event.Status)

	// Capacity reached
	rec = s.do(http.MethodPost, "/api/events/"+e.ID+"/join/", hostToken, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	var body ErrorResponse
	s.decode(rec, &body)
	s.Equal("The event is already at full capacity.", body.Error)

	rec = s.do(http.MethodGet, "/api/events/joined/", guestToken, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var list []*models.Event
	s.decode(rec, &list)
	s.Len(list, 1)

	rec = s.do(http.MethodPost, "/api/events/"+e.ID+"/leave/", guestToken, nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/api/events/"+e.ID+"/leave/", guestToken, nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/events/"+e.ID+"/cancel/", guestToken, nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/api/events/"+e.ID+"/cancel/", hostToken, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var cancelled membershipResponse
	s.decode(rec, &cancelled)
	s.True(cancelled.Event.Cancelled)

	rec = s.do(http.MethodPost, "/api/events/"+e.ID+"/join/", guestToken, nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/events/"+e.ID+"/cancel/?reverse=true", hostToken, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &cancelled)
	s.False(cancelled.Event.Cancelled)
	s.Equal("Event reactivated.", cancelled.Message)

	rec = s.do(http.MethodDelete, "/api/events/"+e.ID+"/", guestToken, nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodDelete, "/api/events/"+e.ID+"/", hostToken, nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/events/"+e.ID+"/", "", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestSearchAndFilter() {
	token, _ := s.login("1", "Ann")
	s.createEvent(token, "Pizza Party", "Waterloo", 5)
	s.createEvent(token, "Board Games", "Waterloo", 5)
	s.createEvent(token, "Pizza Crawl", "Toronto", 5)

	rec := s.do(http.MethodGet, "/api/events/search/?city=waterloo", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var list []*models.Event
	s.decode(rec, &list)
	s.Len(list, 2)

	rec = s.do(http.MethodGet, "/api/events/search/?city=Waterloo&query=pizza", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	list = nil
	s.decode(rec, &list)
	s.Require().Len(list, 1)
	s.Equal("Pizza Party", list[0].Title)

	rec = s.do(http.MethodGet, "/api/events/search/", "", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	var body ErrorResponse
	s.decode(rec, &body)
	s.Equal("Missing 'city' parameter", body.Error)

	rec = s.do(http.MethodGet, "/api/events/search/?city=Waterloo&page=abc", "", nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/events/search/?city=Waterloo&page=1", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/events/filter/?key=city&name=Toronto&key=status&name=active", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	list = nil
	s.decode(rec, &list)
	s.Require().Len(list, 1)
	s.Equal("Pizza Crawl", list[0].Title)

	rec = s.do(http.MethodGet, "/api/events/filter/?key=color&name=red", "", nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/events/filter/?key=city", "", nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/events/fetch/random/", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	list = nil
	s.decode(rec, &list)
	s.Len(list, 3)
}

func (s *RouterTestSuite) TestUsernames() {
	_, annID := s.login("1", "Ann")
	_, bobID := s.login("2", "Bob")

	rec := s.do(http.MethodGet, "/api/users/idtoname/?participants="+annID+",missing,"+bobID, "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"usernames":["Ann",null,"Bob"]}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/users/idtoname/?participants=,"+bobID, "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"usernames":[null,"Bob"]}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/users/idtoname/?participants=,", "", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	var body ErrorResponse
	s.decode(rec, &body)
	s.Equal("'participants' should not be empty", body.Error)
}

func (s *RouterTestSuite) TestUpdateProfile() {
	token, userID := s.login("1", "Ann")

	rec := s.do(http.MethodPost, "/api/users/update/", token, map[string]interface{}{
		"location":  "Waterloo",
		"interests": []string{"food", "Sports"},
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var u models.User
	s.decode(rec, &u)
	s.Equal("Waterloo", u.Location)
	s.Equal([]string{"Food", "Sports"}, u.Interests)

	rec = s.do(http.MethodPost, "/api/users/update/", token, map[string]string{"email": "nope"})
	s.Equal(http.StatusBadRequest, rec.Code)
	var fieldErrs map[string][]string
	s.decode(rec, &fieldErrs)
	s.Equal([]string{user.ErrInvalidEmail.Error()}, fieldErrs["email"])

	rec = s.do(http.MethodPost, "/api/users/someone-else/update/", token, map[string]string{"bio": "hi"})
	s.Equal(http.StatusForbidden, rec.Code)

	form := strings.NewReader("bio=Hello&interests=Gaming,Outdoor")
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+userID+"/update/", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.decode(rec, &u)
	s.Equal("Hello", u.Bio)
	s.Equal("Waterloo", u.Location)
	s.Equal([]string{"Gaming", "Outdoor"}, u.Interests)

	rec = s.do(http.MethodGet, "/api/users/"+userID+"/", token, nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/users/"+userID+"/", "", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestUpdateProfileEmailBelongsToAnotherUser() {
	_, ownerID := s.login("1", "Ann")
	token, _ := s.login("2", "Bob")

	rec := s.do(http.MethodPost, "/api/users/update/", token, map[string]string{"email": "1@example.com"})
	s.Require().Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
	var fieldErrs map[string][]string
	s.decode(rec, &fieldErrs)
	s.Equal([]string{user.ErrEmailInUse.Error()}, fieldErrs["email"])

	// A login from an unlinked account with the owner's address still lands on the owner
	s.mockFacebook.EXPECT().
		Verify(gomock.Any(), "fb-3").
		Return(&auth.Identity{
			Provider:   models.ProviderFacebook,
			ExternalID: "3",
			Name:       "Someone",
			Email:      "1@example.com",
		}, nil)
	rec = s.do(http.MethodPost, "/api/auth/facebook/", "", map[string]string{"access_token": "fb-3"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var pair struct {
		Access string `json:"access"`
	}
	s.decode(rec, &pair)
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(pair.Access, claims)
	s.Require().NoError(err)
	s.Equal(ownerID, claims["user_id"])
}

func (s *RouterTestSuite) upload(token, contentType string, data []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="profile_image"; filename="me.png"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	s.Require().NoError(err)
	_, err = part.Write(data)
	s.Require().NoError(err)
	s.Require().NoError(w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/users/upload-profile-image/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) TestProfileImage() {
	token, userID := s.login("1", "Ann")

	var img bytes.Buffer
	s.Require().NoError(png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 2, 2))))

	rec := s.upload(token, "image/png", img.Bytes())
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var u models.User
	s.decode(rec, &u)
	s.Equal("/api/users/"+userID+"/profile-image/", u.ProfileImage)

	rec = s.do(http.MethodGet, u.ProfileImage, "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("image/png", rec.Header().Get("Content-Type"))
	s.Equal(img.Bytes(), rec.Body.Bytes())

	rec = s.upload(token, "text/plain", []byte("hello"))
	s.Equal(http.StatusBadRequest, rec.Code)
	var fieldErrs map[string][]string
	s.decode(rec, &fieldErrs)
	s.Contains(fieldErrs, "profile_image")

	rec = s.do(http.MethodGet, "/api/users/nobody/profile-image/", "", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestRateLimit() {
	limiter := NewRateLimiter(1, 2)
	defer limiter.Close()
	s.router = s.newRouter(limiter)

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/health", "", nil).Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/health", "", nil).Code)
	s.Equal(http.StatusTooManyRequests, s.do(http.MethodGet, "/health", "", nil).Code)
}

func (s *RouterTestSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/events/new/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.NotEmpty(rec.Header().Get("Access-Control-Allow-Origin"))
}
