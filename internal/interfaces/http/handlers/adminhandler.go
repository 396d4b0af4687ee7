package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"wagate/internal/domain/gateway"
	"wagate/internal/infrastructure/auth"
	"wagate/internal/shared/config"
	apperrors "wagate/internal/shared/errors"
	"wagate/internal/shared/logger"
	"wagate/internal/shared/utils"
)

// AdminHandler serves the merchant settings form: login plus read/update
// of the gateway settings row.
type AdminHandler struct {
	settingsRepo gateway.SettingsRepository
	jwtService   *auth.JWTService
	authCfg      *config.AuthConfig
	validate     *validator.Validate
	logger       logger.Interface
}

func NewAdminHandler(
	settingsRepo gateway.SettingsRepository,
	jwtService *auth.JWTService,
	authCfg *config.AuthConfig,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		settingsRepo: settingsRepo,
		jwtService:   jwtService,
		authCfg:      authCfg,
		validate:     validator.New(),
		logger:       logger,
	}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.AppErrorResponse(c, apperrors.NewBadRequestError("invalid request", err.Error()))
		return
	}

	if h.authCfg.AdminPasswordHash == "" {
		utils.AppErrorResponse(c, apperrors.NewForbiddenError("admin access is not configured"))
		return
	}

	if err := auth.CheckPassword(req.Password, h.authCfg.AdminPasswordHash); err != nil {
		h.logger.Warnw("admin login failed")
		utils.AppErrorResponse(c, apperrors.NewUnauthorizedError("invalid credentials"))
		return
	}

	token, err := h.jwtService.IssueAdminToken()
	if err != nil {
		h.logger.Errorw("failed to issue admin token", "error", err)
		utils.AppErrorResponse(c, apperrors.NewInternalError("failed to issue token"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", LoginResponse{Token: token})
}

type SettingsResponse struct {
	Enabled        bool   `json:"enabled"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	WhatsAppNumber string `json:"whatsapp_number"`
	Instructions   string `json:"instructions"`
	Template       string `json:"template"`
	EnrichItems    bool   `json:"enrich_items"`
}

func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsRepo.Get(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to load settings", "error", err)
		utils.AppErrorResponse(c, apperrors.NewInternalError("failed to load settings"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", settingsToResponse(settings))
}

type UpdateSettingsRequest struct {
	Enabled        bool   `json:"enabled"`
	Title          string `json:"title" validate:"max=255"`
	Description    string `json:"description" validate:"max=2000"`
	WhatsAppNumber string `json:"whatsapp_number" validate:"max=32"`
	Instructions   string `json:"instructions" validate:"max=5000"`
	Template       string `json:"template" validate:"max=5000"`
	EnrichItems    bool   `json:"enrich_items"`
}

func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.AppErrorResponse(c, apperrors.NewBadRequestError("invalid request", err.Error()))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		utils.AppErrorResponse(c, apperrors.NewValidationError("invalid settings", err.Error()))
		return
	}

	settings, err := h.settingsRepo.Get(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to load settings", "error", err)
		utils.AppErrorResponse(c, apperrors.NewInternalError("failed to load settings"))
		return
	}

	err = settings.Update(gateway.UpdateParams{
		Enabled:        req.Enabled,
		Title:          req.Title,
		Description:    req.Description,
		WhatsAppNumber: req.WhatsAppNumber,
		Instructions:   req.Instructions,
		Template:       req.Template,
		EnrichItems:    req.EnrichItems,
	})
	if err != nil {
		if errors.Is(err, gateway.ErrUnknownPlaceholder) {
			utils.AppErrorResponse(c, apperrors.NewValidationError("invalid template", err.Error()))
			return
		}
		utils.AppErrorResponse(c, apperrors.NewInternalError("failed to update settings"))
		return
	}

	if err := h.settingsRepo.Save(c.Request.Context(), settings); err != nil {
		h.logger.Errorw("failed to save settings", "error", err)
		utils.AppErrorResponse(c, apperrors.NewInternalError("failed to save settings"))
		return
	}

	h.logger.Infow("gateway settings updated", "enabled", settings.Enabled())

	utils.SuccessResponse(c, http.StatusOK, "settings updated", settingsToResponse(settings))
}

func settingsToResponse(s *gateway.Settings) SettingsResponse {
	return SettingsResponse{
		Enabled:        s.Enabled(),
		Title:          s.Title(),
		Description:    s.Description(),
		WhatsAppNumber: s.WhatsAppNumber(),
		Instructions:   s.Instructions(),
		Template:       s.Template(),
		EnrichItems:    s.EnrichItems(),
	}
}
