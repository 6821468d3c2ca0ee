package handlers

import (
	"errors"
	"net/http"

	"qualityhub-backend/internal/auth"
	apperrors "qualityhub-backend/internal/errors"
	"qualityhub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GenerationHandler handles HTTP requests for AI-assisted generation
type GenerationHandler struct {
	generationService service.GenerationServiceInterface
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(generationService service.GenerationServiceInterface) *GenerationHandler {
	return &GenerationHandler{
		generationService: generationService,
	}
}

// GenerateTests handles POST /generate/tests
// @Summary Generate test cases from a description
// @Description Generate structured test cases from a requirement description via the AI service. When project_id is set the cases are saved into that project.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body service.GenerateTestsRequest true "Generation request"
// @Success 200 {object} service.GenerateTestsResponse "Successfully generated test cases"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 502 {object} ErrorResponse "AI service unavailable"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /generate/tests [post]
func (h *GenerationHandler) GenerateTests(c *gin.Context) {
	var req service.GenerateTestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if userID, ok := auth.GetUserID(c); ok {
		req.CreatedBy = &userID
	}

	result, err := h.generationService.GenerateTests(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrGenerationFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
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

	c.JSON(http.StatusOK, result)
}

// GenerateBDD handles POST /generate/bdd
// @Summary Generate BDD scenarios in Gherkin format
// @Description Generate Given/When/Then scenarios and a complete Gherkin feature file from a feature description via the AI service
// @Tags generation
// @Accept json
// @Produce json
// @Param request body service.GenerateBDDRequest true "Generation request"
// @Success 200 {object} service.GenerateBDDResponse "Successfully generated BDD scenarios"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 502 {object} ErrorResponse "AI service unavailable"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /generate/bdd [post]
func (h *GenerationHandler) GenerateBDD(c *gin.Context) {
	var req service.GenerateBDDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.generationService.GenerateBDD(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrGenerationFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
