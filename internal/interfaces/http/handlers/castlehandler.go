package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castellan-host/castellan/internal/application/castle/usecases"
	"github.com/castellan-host/castellan/internal/shared/constants"
	"github.com/castellan-host/castellan/internal/shared/logger"
	"github.com/castellan-host/castellan/internal/shared/utils"
)

// CastleHandler serves the castle directory listing for the caller.
type CastleHandler struct {
	listUseCase *usecases.ListCastlesUseCase
	logger      logger.Interface
}

func NewCastleHandler(listUC *usecases.ListCastlesUseCase, logger logger.Interface) *CastleHandler {
	return &CastleHandler{
		listUseCase: listUC,
		logger:      logger,
	}
}

// ListCastles returns the castles the authenticated customer may see.
// Admins see every configured castle; clients only their granted set.
func (h *CastleHandler) ListCastles(c *gin.Context) {
	customerID, exists := c.Get(constants.ContextKeyCustomerID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "customer not authenticated")
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListCastlesQuery{
		CustomerID: customerID.(uint),
	})
	if err != nil {
		h.logger.Errorw("failed to list castles", "error", err, "customer_id", customerID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
