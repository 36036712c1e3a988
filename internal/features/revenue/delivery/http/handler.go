package http

import (
	"net/http"

	"taskearn-backend/internal/common/middleware"
	"taskearn-backend/internal/features/revenue/models"
	"taskearn-backend/internal/features/revenue/service"

	"github.com/gin-gonic/gin"
)

type RevenueHandler struct {
	service service.RevenueService
}

func NewRevenueHandler(service service.RevenueService) *RevenueHandler {
	return &RevenueHandler{
		service: service,
	}
}

func (h *RevenueHandler) RegisterRoutes(router *gin.RouterGroup) {
	earnings := router.Group("/earnings")
	earnings.Use(middleware.RequireAuth())
	{
		earnings.GET("", h.GetEarnings)
		earnings.GET("/stats", h.GetStats)
		earnings.POST("/adviews", h.TrackAdView)
		earnings.POST("/payouts", h.RequestPayout)
		earnings.GET("/payouts", h.ListPayouts)
	}
}

// @Summary Get own earnings
// @Description Derived earnings summary: points, task earnings, ad revenue, pending payout and the 7-day series
// @Tags earnings
// @Produce json
// @Security SessionToken
// @Success 200 {object} models.EarningsSummary "Earnings summary"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /earnings [get]
func (h *RevenueHandler) GetEarnings(c *gin.Context) {
	earnings, err := h.service.GetUserEarnings(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, earnings)
}

// @Summary Get revenue stats
// @Description Platform snapshot merged with the caller's share percentage
// @Tags earnings
// @Produce json
// @Security SessionToken
// @Success 200 {object} models.RevenueStats "Revenue stats"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /earnings/stats [get]
func (h *RevenueHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetRevenueStats(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary Track ad view
// @Description Append one tracked impression for the authenticated user; fires on every navigation, no dedup
// @Tags earnings
// @Accept json
// @Produce json
// @Security SessionToken
// @Param view body models.AdViewCreate true "Ad view data"
// @Success 201 {object} models.AdView "Tracked view"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /earnings/adviews [post]
func (h *RevenueHandler) TrackAdView(c *gin.Context) {
	var input models.AdViewCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.service.TrackAdView(c.Request.Context(), middleware.UserID(c), &input)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Request payout
// @Description Append a pending payout request; earnings are not decremented
// @Tags earnings
// @Accept json
// @Produce json
// @Security SessionToken
// @Param payout body models.PayoutCreate true "Payout request"
// @Success 201 {object} models.PayoutRequest "Pending request"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /earnings/payouts [post]
func (h *RevenueHandler) RequestPayout(c *gin.Context) {
	var input models.PayoutCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payout, err := h.service.RequestPayout(c.Request.Context(), middleware.UserID(c), &input)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, payout)
}

// @Summary List own payout requests
// @Tags earnings
// @Produce json
// @Security SessionToken
// @Success 200 {array} models.PayoutRequest "Payout requests"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /earnings/payouts [get]
func (h *RevenueHandler) ListPayouts(c *gin.Context) {
	payouts, err := h.service.ListPayouts(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payouts)
}
