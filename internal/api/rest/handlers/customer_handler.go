package handlers

import (
	"net/http"

	"github.com/vcr/payment-service/internal/domain"
	"github.com/vcr/payment-service/internal/service"
	"github.com/vcr/payment-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CustomerHandler обработчик операций с клиентами
type CustomerHandler struct {
	customers service.CustomerService
	log       *logger.Logger
}

// NewCustomerHandler создает новый обработчик клиентов
func NewCustomerHandler(customers service.CustomerService, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
		log:       log,
	}
}

// CreateCustomer обрабатывает POST /api/v1/customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req domain.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, domain.CustomerResult{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.customers.Create(c.Request.Context(), req))
}

// UpdateCustomer обрабатывает PUT /api/v1/customers/:id
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var req domain.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, domain.Fail(err))
		return
	}

	c.JSON(http.StatusOK, h.customers.Update(c.Request.Context(), c.Param("id"), req))
}

// GetCustomer обрабатывает GET /api/v1/customers/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	c.JSON(http.StatusOK, h.customers.Get(c.Request.Context(), c.Param("id")))
}
