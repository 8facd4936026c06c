// Package handler contains the HTTP handlers for the auth API.
package handler

import (
	"log/slog"
	"net/http"

	"bankauth/internal/delivery/api/response"
	deliverycontext "bankauth/internal/delivery/context"
	"bankauth/internal/domain/entity"
	domainerrors "bankauth/internal/domain/errors"
	"bankauth/internal/errors"
	"bankauth/internal/usecase"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"required,e164"`
	Username  string `json:"username" validate:"omitempty,max=255"`
	// bcrypt only reads the first 72 bytes.
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required,max=64"`
}

type registerResponse struct {
	AccessToken string `json:"accessToken"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type meResponse struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// AuthHandler exposes the authentication exchanges over HTTP.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles customer registration.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Username:  req.Username,
		Password:  req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, registerResponse{AccessToken: output.AccessToken})
}

// Login handles the email/password login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

// RefreshToken exchanges a refresh token for a new access token.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req refreshTokenRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

// Logout ends every session of the refresh token's owner.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshTokenRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: req.RefreshToken}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// Me returns the identity carried by the caller's access token.
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := deliverycontext.GetClaims(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	// Roles this service does not know are dropped.
	return response.Success(c, http.StatusOK, meResponse{
		Username: claims.Username,
		Roles:    entity.RolesFromStrings(claims.Roles).ToStrings(),
	})
}

func (h *AuthHandler) bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Debug("Request binding failed", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrInvalidInput, err.Error())
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
