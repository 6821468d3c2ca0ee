package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "qualityhub-backend/internal/errors"
	"qualityhub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TestPlanHandler handles HTTP requests for test plan operations
type TestPlanHandler struct {
	testPlanService service.TestPlanServiceInterface
}

// NewTestPlanHandler creates a new test plan handler
func NewTestPlanHandler(testPlanService service.TestPlanServiceInterface) *TestPlanHandler {
	return &TestPlanHandler{
		testPlanService: testPlanService,
	}
}

// CreateTestPlan handles POST /test-plans
// @Summary Create a new test plan
// @Description Create a new test plan within a project
// @Tags test-plans
// @Accept json
// @Produce json
// @Param test_plan body service.CreateTestPlanRequest true "Test plan data"
// @Success 201 {object} service.TestPlanResponse "Successfully created test plan"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /test-plans [post]
func (h *TestPlanHandler) CreateTestPlan(c *gin.Context) {
	var req service.CreateTestPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.testPlanService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetTestPlan handles GET /test-plans/:id
// @Summary Get test plan by ID
// @Description Get a specific test plan by its UUID
// @Tags test-plans
// @Accept json
// @Produce json
// @Param id path string true "Test plan ID (UUID)"
// @Success 200 {object} service.TestPlanResponse "Successfully retrieved test plan"
// @Failure 400 {object} ErrorResponse "Invalid test plan ID"
// @Failure 404 {object} ErrorResponse "Test plan not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /test-plans/{id} [get]
func (h *TestPlanHandler) GetTestPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test plan ID"})
		return
	}

	plan, err := h.testPlanService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTestPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ListTestPlans handles GET /projects/:id/test-plans
// @Summary List test plans by project
// @Description Get a paginated list of test plans for a project
// @Tags test-plans
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.TestPlanListResponse "Successfully retrieved test plans"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/test-plans [get]
func (h *TestPlanHandler) ListTestPlans(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	plans, err := h.testPlanService.GetByProject(projectID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// UpdateTestPlan handles PUT /test-plans/:id
// @Summary Update test plan
// @Description Update an existing test plan by ID
// @Tags test-plans
// @Accept json
// @Produce json
// @Param id path string true "Test plan ID (UUID)"
// @Param test_plan body service.UpdateTestPlanRequest true "Updated test plan data"
// @Success 200 {object} service.TestPlanResponse "Successfully updated test plan"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Test plan not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /test-plans/{id} [put]
func (h *TestPlanHandler) UpdateTestPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test plan ID"})
		return
	}

	var req service.UpdateTestPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.testPlanService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTestPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeleteTestPlan handles DELETE /test-plans/:id
// @Summary Delete test plan
// @Description Delete a test plan by ID
// @Tags test-plans
// @Accept json
// @Produce json
// @Param id path string true "Test plan ID (UUID)"
// @Success 204 "Successfully deleted test plan"
// @Failure 400 {object} ErrorResponse "Invalid test plan ID"
// @Failure 404 {object} ErrorResponse "Test plan not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /test-plans/{id} [delete]
func (h *TestPlanHandler) DeleteTestPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test plan ID"})
		return
	}

	if err := h.testPlanService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrTestPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
