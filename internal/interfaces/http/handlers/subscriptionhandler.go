package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/castellan-host/castellan/internal/application/subscription/usecases"
	"github.com/castellan-host/castellan/internal/shared/constants"
	"github.com/castellan-host/castellan/internal/shared/logger"
	"github.com/castellan-host/castellan/internal/shared/utils"
)

// SubscriptionHandler handles the bot subscription lifecycle endpoints.
type SubscriptionHandler struct {
	createUseCase *usecases.CreateSubscriptionUseCase
	getUseCase    *usecases.GetSubscriptionUseCase
	listUseCase   *usecases.ListSubscriptionsUseCase
	renewUseCase  *usecases.RenewSubscriptionUseCase
	pauseUseCase  *usecases.PauseSubscriptionUseCase
	cancelUseCase *usecases.CancelSubscriptionUseCase
	deleteUseCase *usecases.DeleteSubscriptionUseCase
	logger        logger.Interface
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(
	createUC *usecases.CreateSubscriptionUseCase,
	getUC *usecases.GetSubscriptionUseCase,
	listUC *usecases.ListSubscriptionsUseCase,
	renewUC *usecases.RenewSubscriptionUseCase,
	pauseUC *usecases.PauseSubscriptionUseCase,
	cancelUC *usecases.CancelSubscriptionUseCase,
	deleteUC *usecases.DeleteSubscriptionUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createUseCase: createUC,
		getUseCase:    getUC,
		listUseCase:   listUC,
		renewUseCase:  renewUC,
		pauseUseCase:  pauseUC,
		cancelUseCase: cancelUC,
		deleteUseCase: deleteUC,
		logger:        logger,
	}
}

// CreateSubscriptionRequest represents the request to register a bot for a customer
type CreateSubscriptionRequest struct {
	CustomerID  uint   `json:"customer_id" binding:"required"`
	CastleID    string `json:"castle_id" binding:"required"`
	GameAccount string `json:"game_account"`
	Plan        string `json:"plan" binding:"required,plantype"`
	PriceCents  uint64 `json:"price_cents"`
}

// RenewSubscriptionRequest represents the request to renew a subscription
type RenewSubscriptionRequest struct {
	PriceCents uint64 `json:"price_cents"`
}

// ConfirmRequest carries the explicit confirmation hard deletes require
type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}

func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create subscription", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.CreateSubscriptionCommand{
		CustomerID:  req.CustomerID,
		CastleID:    req.CastleID,
		GameAccount: req.GameAccount,
		Plan:        req.Plan,
		PriceCents:  req.PriceCents,
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to create subscription", "error", err, "customer_id", req.CustomerID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscription created successfully")
}

func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	includeRenewals, _ := strconv.ParseBool(c.DefaultQuery("include_renewals", "false"))

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetSubscriptionQuery{
		SubscriptionID:  subscriptionID,
		IncludeRenewals: includeRenewals,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	query := usecases.ListSubscriptionsQuery{
		Page:     parseIntQuery(c, "page", constants.DefaultPage),
		PageSize: parseIntQuery(c, "page_size", constants.DefaultPageSize),
		SortBy:   c.Query("sort_by"),
		SortDesc: c.Query("sort_order") == "desc",
	}

	if raw := c.Query("customer_id"); raw != "" {
		if customerID, err := strconv.ParseUint(raw, 10, 64); err == nil {
			v := uint(customerID)
			query.CustomerID = &v
		}
	}
	if status := c.Query("status"); status != "" {
		query.Status = &status
	}
	if plan := c.Query("plan"); plan != "" {
		query.Plan = &plan
	}
	if castleID := c.Query("castle_id"); castleID != "" {
		query.CastleID = &castleID
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		h.logger.Errorw("failed to list subscriptions", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SubscriptionHandler) RenewSubscription(c *gin.Context) {
	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// body is optional: an empty renew keeps the stored price
	var req RenewSubscriptionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	result, err := h.renewUseCase.Execute(c.Request.Context(), usecases.RenewSubscriptionCommand{
		SubscriptionID: subscriptionID,
		PriceCents:     req.PriceCents,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription renewed successfully", result)
}

func (h *SubscriptionHandler) PauseSubscription(c *gin.Context) {
	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.pauseUseCase.Execute(c.Request.Context(), usecases.PauseSubscriptionCommand{
		SubscriptionID: subscriptionID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription paused successfully", result)
}

func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.cancelUseCase.Execute(c.Request.Context(), usecases.CancelSubscriptionCommand{
		SubscriptionID: subscriptionID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription cancelled successfully", result)
}

func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ConfirmRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteSubscriptionCommand{
		SubscriptionID: subscriptionID,
		Confirmed:      req.Confirm,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription deleted successfully", nil)
}

func parseIntQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
