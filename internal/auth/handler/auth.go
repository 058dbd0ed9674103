package handler

import (
	"errors"
	"net/http"
	"strings"

	"affiliate-server/internal/apierrors"
	"affiliate-server/internal/auth/processor"
	"affiliate-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextUserID is the gin context key holding the authenticated affiliate's user id.
const ContextUserID = "User-ID"

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{
		authProcessor: authProcessor,
		logger:        logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
	Token   string `json:"token"`
}

func (h *Handler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	result, err := h.authProcessor.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		UserID:  result.User.ID.String(),
		Token:   result.Token,
	})
}

// HandleJWTMiddleware rejects requests without a valid bearer token and stores the
// token subject under ContextUserID.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(tokenHeader, "Bearer "))

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		if errors.Is(err, processor.ErrAuthNotConfigured) {
			apierrors.DependencyUnavailable(c, "auth", "JWT_SECRET is not set")
			return
		}
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	c.Set(ContextUserID, userID)
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "affiliate_id", Value: userID.String()},
	))
	c.Next()
}

// UserIDFromContext returns the id stored by HandleJWTMiddleware.
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
