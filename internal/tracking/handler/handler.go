package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"affiliate-server/internal/apierrors"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"
	"affiliate-server/internal/tracking/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultCurrency = "USD"

// Tracker is satisfied by *processor.TrackingProcessor.
type Tracker interface {
	RecordClick(ctx context.Context, params processor.RecordClickParams) (store.Click, error)
	RecordConversion(ctx context.Context, params processor.RecordConversionParams) (store.Conversion, error)
}

type Handler struct {
	tracker Tracker
	logger  *observability.Logger
}

func New(tracker Tracker, logger *observability.Logger) Handler {
	return Handler{
		tracker: tracker,
		logger:  logger,
	}
}

type ClickRequest struct {
	RefCode    string     `json:"refCode" binding:"required"`
	URL        string     `json:"url"`
	Path       string     `json:"path"`
	UserAgent  string     `json:"userAgent"`
	DeviceType string     `json:"deviceType"`
	Source     string     `json:"source"`
	Timestamp  *time.Time `json:"timestamp"`
}

type ClickResponse struct {
	Success bool   `json:"success"`
	ClickID string `json:"clickId"`
}

// HandleClick handles POST /api/affiliate/click
func (h *Handler) HandleClick(c *gin.Context) {
	var req ClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	userAgent := req.UserAgent
	deviceType := req.DeviceType
	if userAgent == "" {
		userAgent = c.Request.UserAgent()
		if deviceType == "" {
			deviceType = observability.GetDeviceType(c)
		}
	}

	click, err := h.tracker.RecordClick(c.Request.Context(), processor.RecordClickParams{
		RefCode:    req.RefCode,
		URL:        req.URL,
		Path:       req.Path,
		UserAgent:  userAgent,
		DeviceType: deviceType,
		Source:     req.Source,
		Timestamp:  req.Timestamp,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ClickResponse{Success: true, ClickID: click.ID.String()})
}

type ConversionRequest struct {
	AffiliateCode  string          `json:"affiliateCode" binding:"required"`
	ClickID        *uuid.UUID      `json:"clickId"`
	PurchaseAmount decimal.Decimal `json:"purchaseAmount"`
	PackageID      string          `json:"packageId"`
	PackageName    string          `json:"packageName"`
	BookingID      string          `json:"bookingId"`
	SessionID      string          `json:"sessionId"`
	Currency       string          `json:"currency" binding:"omitempty,len=3"`
	CustomerEmail  *string         `json:"customerEmail" binding:"omitempty,email"`
	CustomerName   *string         `json:"customerName"`
}

type ConversionResponse struct {
	Success      bool   `json:"success"`
	ConversionID string `json:"conversionId"`
}

// HandleConversion handles POST /api/affiliate/conversion
func (h *Handler) HandleConversion(c *gin.Context) {
	var req ConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	conversion, err := h.tracker.RecordConversion(c.Request.Context(), processor.RecordConversionParams{
		AffiliateCode:  req.AffiliateCode,
		ClickID:        req.ClickID,
		PurchaseAmount: req.PurchaseAmount,
		PackageID:      req.PackageID,
		PackageName:    req.PackageName,
		BookingID:      req.BookingID,
		SessionID:      req.SessionID,
		Currency:       currency,
		CustomerEmail:  req.CustomerEmail,
		CustomerName:   req.CustomerName,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ConversionResponse{Success: true, ConversionID: conversion.ID.String()})
}
