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

// TestCaseHandler handles HTTP requests for test case operations
type TestCaseHandler struct {
	testCaseService service.TestCaseServiceInterface
}

// NewTestCaseHandler creates a new test case handler
func NewTestCaseHandler(testCaseService service.TestCaseServiceInterface) *TestCaseHandler {
	return &TestCaseHandler{
		testCaseService: testCaseService,
	}
}

// CreateTestCase handles POST /test-cases
// @Summary Create a new test case
// @Description Create a new test case within a project
// @Tags test-cases
// @Accept json
// @Produce json
// @Param test_case body service.CreateTestCaseRequest true "Test case data"
// @Success 201 {object} service.TestCaseResponse "Successfully created test case"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /test-cases [post]
func (h *TestCaseHandler) CreateTestCase(c *gin.Context) {
	var req service.CreateTestCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if userID, ok := auth.GetUserID(c); ok {
		req.CreatedBy = &userID
	}

	testCase, err := h.testCaseService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidPriority) || isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, testCase)
}

// GetTestCase handles GET /test-cases/:id
// @Summary Get test case by ID
// @Description Get a specific test case by its UUID
// @Tags test-cases
// @Accept json
// @Produce json
// @Param id path string true "Test case ID (UUID)"
// @Success 200 {object} service.TestCaseResponse "Successfully retrieved test case"
// @Failure 400 {object} ErrorResponse "Invalid test case ID"
// @Failure 404 {object} ErrorResponse "Test case not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /test-cases/{id} [get]
func (h *TestCaseHandler) GetTestCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test case ID"})
		return
	}

	testCase, err := h.testCaseService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTestCaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, testCase)
}

// ListTestCases handles GET /projects/:id/test-cases
// @Summary List test cases by project
// @Description Get a paginated list of test cases for a project
// @Tags test-cases
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.TestCaseListResponse "Successfully retrieved test cases"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/test-cases [get]
func (h *TestCaseHandler) ListTestCases(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	testCases, err := h.testCaseService.GetByProject(projectID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, testCases)
}

// UpdateTestCase handles PUT /test-cases/:id
// @Summary Update test case
// @Description Update an existing test case; content changes bump its version
// @Tags test-cases
// @Accept json
// @Produce json
// @Param id path string true "Test case ID (UUID)"
// @Param test_case body service.UpdateTestCaseRequest true "Updated test case data"
// @Success 200 {object} service.TestCaseResponse "Successfully updated test case"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Test case not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /test-cases/{id} [put]
func (h *TestCaseHandler) UpdateTestCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test case ID"})
		return
	}

	var req service.UpdateTestCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	testCase, err := h.testCaseService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTestCaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidPriority) || isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, testCase)
}

// DeleteTestCase handles DELETE /test-cases/:id
// @Summary Delete test case
// @Description Soft-delete a test case; recorded results keep referencing it
// @Tags test-cases
// @Accept json
// @Produce json
// @Param id path string true "Test case ID (UUID)"
// @Success 204 "Successfully deleted test case"
// @Failure 400 {object} ErrorResponse "Invalid test case ID"
// @Failure 404 {object} ErrorResponse "Test case not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /test-cases/{id} [delete]
func (h *TestCaseHandler) DeleteTestCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test case ID"})
		return
	}

	if err := h.testCaseService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrTestCaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
