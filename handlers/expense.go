package handlers

import (
	"net/http"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/middleware"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/utils"

	expenseSvc "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/expense"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExpenseHandler serves expense tracking and the overview dashboard.
type ExpenseHandler struct {
	Service expenseSvc.ExpenseService
}

func NewExpenseHandler(svc expenseSvc.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{Service: svc}
}

// ListExpensesHandler handles GET /api/shops/:shopId/expenses. Admin only.
func (h *ExpenseHandler) ListExpensesHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	expenses, err := h.Service.List(shop.ID)
	if err != nil {
		utils.GetLogger().Error("failed to list expenses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load expenses"})
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// CreateExpenseHandler handles POST /api/shops/:shopId/expenses. Admin only.
func (h *ExpenseHandler) CreateExpenseHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	var req models.Expense
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	expense, err := h.Service.Create(shop.ID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// UpdateExpenseHandler handles PUT /api/shops/:shopId/expenses/:id. Admin only.
func (h *ExpenseHandler) UpdateExpenseHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	var req models.Expense
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = c.Param("id")
	if err := h.Service.Update(shop.ID, req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense updated"})
}

// DeleteExpenseHandler handles DELETE /api/shops/:shopId/expenses/:id. Admin only.
func (h *ExpenseHandler) DeleteExpenseHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	if err := h.Service.Delete(shop.ID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

// OverviewHandler handles GET /api/shops/:shopId/overview. Staff with the
// overview permission only.
func (h *ExpenseHandler) OverviewHandler(c *gin.Context) {
	shop := middleware.CurrentShop(c)
	stats, err := h.Service.Overview(shop.ID)
	if err != nil {
		utils.GetLogger().Error("failed to build overview", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load overview"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
