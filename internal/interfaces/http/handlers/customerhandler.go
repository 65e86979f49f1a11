package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castellan-host/castellan/internal/application/customer/usecases"
	"github.com/castellan-host/castellan/internal/shared/constants"
	"github.com/castellan-host/castellan/internal/shared/logger"
	"github.com/castellan-host/castellan/internal/shared/utils"
)

// CustomerHandler handles customer management endpoints.
type CustomerHandler struct {
	createUseCase *usecases.CreateCustomerUseCase
	getUseCase    *usecases.GetCustomerUseCase
	listUseCase   *usecases.ListCustomersUseCase
	updateUseCase *usecases.UpdateCustomerUseCase
	deleteUseCase *usecases.DeleteCustomerUseCase
	logger        logger.Interface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(
	createUC *usecases.CreateCustomerUseCase,
	getUC *usecases.GetCustomerUseCase,
	listUC *usecases.ListCustomersUseCase,
	updateUC *usecases.UpdateCustomerUseCase,
	deleteUC *usecases.DeleteCustomerUseCase,
	logger logger.Interface,
) *CustomerHandler {
	return &CustomerHandler{
		createUseCase: createUC,
		getUseCase:    getUC,
		listUseCase:   listUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		logger:        logger,
	}
}

// CreateCustomerRequest represents the request to register a customer
type CreateCustomerRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=120"`
	Email    string `json:"email" binding:"omitempty,email"`
	Whatsapp string `json:"whatsapp"`
	Address  string `json:"address"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=admin client"`
}

// UpdateCustomerRequest represents the request to update customer contact data.
// Empty fields are left unchanged.
type UpdateCustomerRequest struct {
	Name     string `json:"name" binding:"omitempty,min=2,max=120"`
	Email    string `json:"email" binding:"omitempty,email"`
	Whatsapp string `json:"whatsapp"`
	Address  string `json:"address"`
	Password string `json:"password" binding:"omitempty,min=8"`
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create customer", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateCustomerCommand{
		Name:     req.Name,
		Email:    req.Email,
		Whatsapp: req.Whatsapp,
		Address:  req.Address,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		h.logger.Errorw("failed to create customer", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Customer created successfully")
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customerID, err := utils.ParseUintParam(c, "id", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetCustomerQuery{
		CustomerID: customerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	query := usecases.ListCustomersQuery{
		Search:   c.Query("search"),
		Page:     parseIntQuery(c, "page", constants.DefaultPage),
		PageSize: parseIntQuery(c, "page_size", constants.DefaultPageSize),
		SortBy:   c.Query("sort_by"),
		SortDesc: c.Query("sort_order") == "desc",
	}

	if role := c.Query("role"); role != "" {
		query.Role = &role
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		h.logger.Errorw("failed to list customers", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	customerID, err := utils.ParseUintParam(c, "id", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateCustomerCommand{
		CustomerID: customerID,
		Name:       req.Name,
		Email:      req.Email,
		Whatsapp:   req.Whatsapp,
		Address:    req.Address,
		Password:   req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Customer updated successfully", result)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	customerID, err := utils.ParseUintParam(c, "id", "customer")
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

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteCustomerCommand{
		CustomerID: customerID,
		Confirmed:  req.Confirm,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Customer deleted successfully", nil)
}
