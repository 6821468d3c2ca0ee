package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"qualityhub-backend/internal/auth"
	apperrors "qualityhub-backend/internal/errors"
	"qualityhub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TestResultHandler handles HTTP requests for test result operations
type TestResultHandler struct {
	testResultService service.TestResultServiceInterface
}

// NewTestResultHandler creates a new test result handler
func NewTestResultHandler(testResultService service.TestResultServiceInterface) *TestResultHandler {
	return &TestResultHandler{
		testResultService: testResultService,
	}
}

// RecordTestResult handles POST /runs/:id/results
// @Summary Record a test result
// @Description Record the outcome of a test case within a run; one result per (run, case) pair
// @Tags test-results
// @Accept json
// @Produce json
// @Param id path string true "Test run ID (UUID)"
// @Param result body service.RecordTestResultRequest true "Test result data"
// @Success 201 {object} service.TestResultResponse "Successfully recorded test result"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Test run or test case not found"
// @Failure 409 {object} ErrorResponse "Result already recorded or run completed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /runs/{id}/results [post]
func (h *TestResultHandler) RecordTestResult(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test run ID"})
		return
	}

	executorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
		return
	}

	var req service.RecordTestResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.testResultService.Record(runID, executorID, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrTestResultExists) || errors.Is(err, apperrors.ErrRunAlreadyCompleted) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidStatus) || isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListTestResults handles GET /runs/:id/results
// @Summary List test results by run
// @Description Get a paginated list of results recorded for a test run
// @Tags test-results
// @Accept json
// @Produce json
// @Param id path string true "Test run ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.TestResultListResponse "Successfully retrieved test results"
// @Failure 400 {object} ErrorResponse "Invalid test run ID"
// @Failure 404 {object} ErrorResponse "Test run not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /runs/{id}/results [get]
func (h *TestResultHandler) ListTestResults(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test run ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	results, err := h.testResultService.GetByTestRun(runID, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrTestRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, results)
}

// UpdateTestResult handles PUT /results/:id
// @Summary Update test result
// @Description Update a recorded test result; the executor and execution time are re-stamped
// @Tags test-results
// @Accept json
// @Produce json
// @Param id path string true "Test result ID (UUID)"
// @Param result body service.UpdateTestResultRequest true "Updated test result data"
// @Success 200 {object} service.TestResultResponse "Successfully updated test result"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Test result not found"
// @Failure 409 {object} ErrorResponse "Test run already completed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /results/{id} [put]
func (h *TestResultHandler) UpdateTestResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test result ID"})
		return
	}

	executorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
		return
	}

	var req service.UpdateTestResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.testResultService.Update(id, executorID, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrRunAlreadyCompleted) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidStatus) || isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
