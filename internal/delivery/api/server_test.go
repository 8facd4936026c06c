package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bankauth/config"
	apimiddleware "bankauth/internal/delivery/api/middleware"
	"bankauth/internal/delivery/api/router"
	"bankauth/internal/delivery/api/router/handler"
	deliverycontext "bankauth/internal/delivery/context"
	domainerrors "bankauth/internal/domain/errors"
	"bankauth/internal/domain/service"
	"bankauth/internal/errors"
	mockService "bankauth/internal/mocks/service"
	mockUsecase "bankauth/internal/mocks/usecase"
	"bankauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const liveRefreshToken = "9b2f3c1e-7a4d-4f7e-9c55-0d6a1b2e3f40"

type envelope struct {
	Data  map[string]any `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type apiFixture struct {
	echo     *echo.Echo
	authUC   *mockUsecase.MockAuthUsecase
	tokenSvc *mockService.MockTokenService
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	authUC := mockUsecase.NewMockAuthUsecase(t)
	tokenSvc := mockService.NewMockTokenService(t)

	e := newEcho(cfg, logger, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUC, logger),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokenSvc, logger),
	})

	return &apiFixture{echo: e, authUC: authUC, tokenSvc: tokenSvc}
}

func (f *apiFixture) do(t *testing.T, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()

	f.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", env.Data["status"])
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDIsPropagated(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/health", "", map[string]string{deliverycontext.HeaderXRequestID: "trace-42"})

	assert.Equal(t, "trace-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "trace-42", env.Meta.RequestID)
}

func TestRequestIDRejectsOversizedHeader(t *testing.T) {
	f := newAPIFixture(t)

	rec, _ := f.do(t, http.MethodGet, "/health", "", map[string]string{deliverycontext.HeaderXRequestID: strings.Repeat("x", 200)})

	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}

func TestRegister(t *testing.T) {
	f := newAPIFixture(t)
	f.authUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			FirstName: "Alice",
			LastName:  "Liddell",
			Email:     "alice@bank.test",
			Phone:     "+14155550100",
			Password:  "correct-horse",
		}).
		Return(&usecase.AuthOutput{AccessToken: "access-1"}, nil)

	rec, env := f.do(t, http.MethodPost, "/auth/register",
		`{"firstName":"Alice","lastName":"Liddell","email":"alice@bank.test","phone":"+14155550100","password":"correct-horse"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, map[string]any{"accessToken": "access-1"}, env.Data)
}

func TestRegister_ValidationFailed(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodPost, "/auth/register",
		`{"firstName":"Alice","lastName":"Liddell","email":"not-an-email","phone":"+14155550100","password":"short"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.NotNil(t, env.Error.Details)
}

func TestRegister_MalformedBody(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodPost, "/auth/register", `{"email":`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestRegister_Duplicate(t *testing.T) {
	f := newAPIFixture(t)
	f.authUC.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrDuplicateIdentity))

	rec, env := f.do(t, http.MethodPost, "/auth/register",
		`{"firstName":"Alice","lastName":"Liddell","email":"alice@bank.test","phone":"+14155550100","password":"correct-horse"}`, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DUPLICATE_IDENTITY", env.Error.Code)
}

func TestLogin(t *testing.T) {
	f := newAPIFixture(t)
	f.authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "alice@bank.test", Password: "correct-horse"}).
		Return(&usecase.AuthOutput{AccessToken: "access-1", RefreshToken: liveRefreshToken}, nil)

	rec, env := f.do(t, http.MethodPost, "/auth/login", `{"email":"alice@bank.test","password":"correct-horse"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "access-1", env.Data["accessToken"])
	assert.Equal(t, liveRefreshToken, env.Data["refreshToken"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newAPIFixture(t)
	f.authUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	rec, env := f.do(t, http.MethodPost, "/auth/login", `{"email":"alice@bank.test","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestRefreshToken(t *testing.T) {
	tests := []struct {
		name     string
		output   *usecase.AuthOutput
		err      error
		wantCode int
		wantErr  string
	}{
		{
			name:     "live token",
			output:   &usecase.AuthOutput{AccessToken: "access-2", RefreshToken: liveRefreshToken},
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown token",
			err:      errors.WithStack(domainerrors.ErrRefreshTokenNotFound),
			wantCode: http.StatusNotFound,
			wantErr:  "REFRESH_TOKEN_NOT_FOUND",
		},
		{
			name:     "expired token",
			err:      errors.WithStack(domainerrors.ErrRefreshTokenInvalid),
			wantCode: http.StatusUnauthorized,
			wantErr:  "REFRESH_TOKEN_INVALID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			f.authUC.EXPECT().
				RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: liveRefreshToken}).
				Return(tt.output, tt.err)

			rec, env := f.do(t, http.MethodPost, "/auth/refresh-token", `{"refreshToken":"`+liveRefreshToken+`"}`, nil)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantErr, env.Error.Code)

				return
			}
			assert.Equal(t, "access-2", env.Data["accessToken"])
			assert.Equal(t, liveRefreshToken, env.Data["refreshToken"])
		})
	}
}

func TestLogout(t *testing.T) {
	f := newAPIFixture(t)
	f.authUC.EXPECT().
		Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: liveRefreshToken}).
		Return(nil)

	rec, env := f.do(t, http.MethodPost, "/auth/logout", `{"refreshToken":"`+liveRefreshToken+`"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Successfully logged out", env.Data["message"])
}

func TestLogout_MissingToken(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodPost, "/auth/logout", `{}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestMe(t *testing.T) {
	f := newAPIFixture(t)
	f.tokenSvc.EXPECT().ValidateAccessToken("access-1").
		Return(&service.Claims{Username: "alice@bank.test", Roles: []string{"customer"}, Type: service.TokenTypeAccess}, nil)

	rec, env := f.do(t, http.MethodGet, "/auth/me", "", map[string]string{echo.HeaderAuthorization: "Bearer access-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice@bank.test", env.Data["username"])
	assert.Equal(t, []any{"customer"}, env.Data["roles"])
}

func TestMe_RefreshTokenExchangeHasNoRoles(t *testing.T) {
	f := newAPIFixture(t)
	f.tokenSvc.EXPECT().ValidateAccessToken("access-2").
		Return(&service.Claims{Username: "alice@bank.test", Type: service.TokenTypeAccess}, nil)

	rec, env := f.do(t, http.MethodGet, "/auth/me", "", map[string]string{echo.HeaderAuthorization: "Bearer access-2"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, env.Data["roles"])
}

func TestMe_Unauthenticated(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/auth/me", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "ACCESS_TOKEN_INVALID", env.Error.Code)
}

func TestUnknownRoute(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/nope", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}
