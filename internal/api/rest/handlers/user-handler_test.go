package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/WorkNestHQ/job_service/internal/domain"
	"github.com/WorkNestHQ/job_service/internal/dto"
	"github.com/WorkNestHQ/job_service/internal/helper"
	"github.com/WorkNestHQ/job_service/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserService struct {
	registerFn func(dto.RegisterRequest) (*dto.LoginResponse, error)
	loginFn    func(dto.UserLogin) (*dto.LoginResponse, error)
	profileFn  func(uint) (*domain.User, error)
	updateFn   func(uint, dto.UpdateUserProfile) (*domain.User, error)
}

func (s *stubUserService) Register(in dto.RegisterRequest) (*dto.LoginResponse, error) {
	return s.registerFn(in)
}
func (s *stubUserService) Login(in dto.UserLogin) (*dto.LoginResponse, error) {
	return s.loginFn(in)
}
func (s *stubUserService) GetProfile(id uint) (*domain.User, error) {
	return s.profileFn(id)
}
func (s *stubUserService) UpdateProfile(id uint, in dto.UpdateUserProfile) (*domain.User, error) {
	return s.updateFn(id, in)
}

func newUserApp(svc services.UserService, auth helper.Auth) *fiber.App {
	app := fiber.New()
	NewUserHandler(svc, auth).SetupRoutes(app)
	return app
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestRegisterEndpoint(t *testing.T) {
	auth := helper.SetupAuth("test-secret")
	svc := &stubUserService{
		registerFn: func(in dto.RegisterRequest) (*dto.LoginResponse, error) {
			return &dto.LoginResponse{
				Token: "tok",
				User:  &domain.User{ID: 1, Email: in.Email, Role: in.Role},
			}, nil
		},
	}
	app := newUserApp(svc, auth)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Email:     "a@x.com",
		Password:  "secret1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      "seeker",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "tok", data["token"])
}

func TestRegisterEndpointTrimsEmailBeforeValidation(t *testing.T) {
	auth := helper.SetupAuth("test-secret")
	var seen string
	svc := &stubUserService{
		registerFn: func(in dto.RegisterRequest) (*dto.LoginResponse, error) {
			seen = in.Email
			return &dto.LoginResponse{Token: "tok", User: &domain.User{ID: 1}}, nil
		},
	}
	app := newUserApp(svc, auth)

	// padded but otherwise valid; must not 400 on the email tag
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Email:     "  A@X.com ",
		Password:  "secret1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      "seeker",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "A@X.com", seen)
}

func TestRegisterEndpointShortPassword(t *testing.T) {
	auth := helper.SetupAuth("test-secret")
	svc := &stubUserService{
		registerFn: func(dto.RegisterRequest) (*dto.LoginResponse, error) {
			t.Fatal("service must not be reached on validation failure")
			return nil, nil
		},
	}
	app := newUserApp(svc, auth)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Email:     "a@x.com",
		Password:  "short",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      "seeker",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Password must be at least 6 characters", body["message"])
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	auth := helper.SetupAuth("test-secret")
	svc := &stubUserService{
		loginFn: func(dto.UserLogin) (*dto.LoginResponse, error) {
			return nil, services.ErrInvalidCredentials
		},
	}
	app := newUserApp(svc, auth)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/login", dto.UserLogin{
		Email:    "a@x.com",
		Password: "wrong1",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, "Invalid email or password", body["message"])
}

func TestProfileRequiresToken(t *testing.T) {
	auth := helper.SetupAuth("test-secret")
	svc := &stubUserService{
		profileFn: func(uint) (*domain.User, error) {
			t.Fatal("service must not be reached without a token")
			return nil, nil
		},
	}
	app := newUserApp(svc, auth)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProfileWithToken(t *testing.T) {
	auth := helper.SetupAuth("test-secret")
	svc := &stubUserService{
		profileFn: func(id uint) (*domain.User, error) {
			return &domain.User{ID: id, Email: "a@x.com", Role: domain.RoleSeeker}, nil
		},
	}
	app := newUserApp(svc, auth)

	token, err := auth.GenerateToken(42, domain.RoleSeeker)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(42), data["id"])
	// the password digest never appears in any serialized user
	_, leaked := data["password"]
	assert.False(t, leaked)
}
