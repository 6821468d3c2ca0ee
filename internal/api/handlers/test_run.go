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

// TestRunHandler handles HTTP requests for test run operations
type TestRunHandler struct {
	testRunService service.TestRunServiceInterface
}

// NewTestRunHandler creates a new test run handler
func NewTestRunHandler(testRunService service.TestRunServiceInterface) *TestRunHandler {
	return &TestRunHandler{
		testRunService: testRunService,
	}
}

// CreateTestRun handles POST /projects/:id/runs
// @Summary Create a new test run
// @Description Create a new test run within a project, optionally bound to a test plan
// @Tags test-runs
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param test_run body service.CreateTestRunRequest true "Test run data"
// @Success 201 {object} service.TestRunResponse "Successfully created test run"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Project or test plan not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/runs [post]
func (h *TestRunHandler) CreateTestRun(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var req service.CreateTestRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, err := h.testRunService.Create(projectID, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
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

	c.JSON(http.StatusCreated, run)
}

// GetTestRun handles GET /runs/:id
// @Summary Get test run by ID
// @Description Get a specific test run by its UUID
// @Tags test-runs
// @Accept json
// @Produce json
// @Param id path string true "Test run ID (UUID)"
// @Success 200 {object} service.TestRunResponse "Successfully retrieved test run"
// @Failure 400 {object} ErrorResponse "Invalid test run ID"
// @Failure 404 {object} ErrorResponse "Test run not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /runs/{id} [get]
func (h *TestRunHandler) GetTestRun(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test run ID"})
		return
	}

	run, err := h.testRunService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTestRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, run)
}

// ListTestRuns handles GET /projects/:id/runs
// @Summary List test runs by project
// @Description Get a paginated list of test runs for a project, newest first
// @Tags test-runs
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.TestRunListResponse "Successfully retrieved test runs"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/runs [get]
func (h *TestRunHandler) ListTestRuns(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	runs, err := h.testRunService.GetByProject(projectID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, runs)
}

// UpdateTestRun handles PUT /runs/:id
// @Summary Update test run
// @Description Update an existing test run by ID
// @Tags test-runs
// @Accept json
// @Produce json
// @Param id path string true "Test run ID (UUID)"
// @Param test_run body service.UpdateTestRunRequest true "Updated test run data"
// @Success 200 {object} service.TestRunResponse "Successfully updated test run"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Test run not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /runs/{id} [put]
func (h *TestRunHandler) UpdateTestRun(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test run ID"})
		return
	}

	var req service.UpdateTestRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, err := h.testRunService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTestRunNotFound) {
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

	c.JSON(http.StatusOK, run)
}

// DeleteTestRun handles DELETE /runs/:id
// @Summary Delete test run
// @Description Soft-delete a test run; deleting an already-deleted run returns 404
// @Tags test-runs
// @Accept json
// @Produce json
// @Param id path string true "Test run ID (UUID)"
// @Success 204 "Successfully deleted test run"
// @Failure 400 {object} ErrorResponse "Invalid test run ID"
// @Failure 404 {object} ErrorResponse "Test run not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /runs/{id} [delete]
func (h *TestRunHandler) DeleteTestRun(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test run ID"})
		return
	}

	if err := h.testRunService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrTestRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// StartTestRun handles POST /runs/:id/start
// @Summary Start a test run
// @Description Move a test run to in_progress and stamp the start time; starting an in_progress run is a no-op
// @Tags test-runs
// @Accept json
// @Produce json
// @Param id path string true "Test run ID (UUID)"
// @Success 200 {object} service.TestRunResponse "Test run started"
// @Failure 400 {object} ErrorResponse "Invalid test run ID"
// @Failure 404 {object} ErrorResponse "Test run not found"
// @Failure 409 {object} ErrorResponse "Test run already completed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /runs/{id}/start [post]
func (h *TestRunHandler) StartTestRun(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test run ID"})
		return
	}

	run, err := h.testRunService.Start(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTestRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrRunAlreadyCompleted) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, run)
}

// CompleteTestRun handles POST /runs/:id/complete
// @Summary Complete a test run
// @Description Move a test run to completed and stamp the completion time; completing a completed run is a no-op
// @Tags test-runs
// @Accept json
// @Produce json
// @Param id path string true "Test run ID (UUID)"
// @Success 200 {object} service.TestRunResponse "Test run completed"
// @Failure 400 {object} ErrorResponse "Invalid test run ID"
// @Failure 404 {object} ErrorResponse "Test run not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /runs/{id}/complete [post]
func (h *TestRunHandler) CompleteTestRun(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test run ID"})
		return
	}

	run, err := h.testRunService.Complete(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTestRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, run)
}
