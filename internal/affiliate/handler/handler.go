package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"

	"affiliate-server/internal/affiliate/processor"
	"affiliate-server/internal/apierrors"
	authHandler "affiliate-server/internal/auth/handler"
	"affiliate-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Affiliates is satisfied by *processor.AffiliateProcessor.
type Affiliates interface {
	Register(ctx context.Context, params processor.RegisterParams) (processor.Registration, error)
	Dashboard(ctx context.Context, userID uuid.UUID) (processor.Dashboard, error)
}

type Handler struct {
	affiliates Affiliates
	logger     *observability.Logger
}

func New(affiliates Affiliates, logger *observability.Logger) Handler {
	return Handler{
		affiliates: affiliates,
		logger:     logger,
	}
}

type RegisterRequest struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone" binding:"omitempty,max=50"`
	Website  *string `json:"website" binding:"omitempty,url"`
	Bio      *string `json:"bio" binding:"omitempty,max=2000"`
	Password string  `json:"password" binding:"omitempty,min=8"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
	Token   string `json:"token"`
}

// HandleRegister handles POST /api/affiliate/register
func (h *Handler) HandleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	registration, err := h.affiliates.Register(c.Request.Context(), processor.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Website:  req.Website,
		Bio:      req.Bio,
		Password: req.Password,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, RegisterResponse{
		Success: true,
		UserID:  registration.UserID.String(),
		Token:   registration.Token,
	})
}

// HandleDashboard handles GET /api/affiliate/dashboard
func (h *Handler) HandleDashboard(c *gin.Context) {
	userID, ok := authHandler.UserIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	dashboard, err := h.affiliates.Dashboard(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
