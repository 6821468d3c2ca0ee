package routes

import (
	"qualityhub-backend/internal/api/handlers"
	"qualityhub-backend/internal/api/middleware"
	"qualityhub-backend/internal/auth"
	"qualityhub-backend/internal/config"
	"qualityhub-backend/internal/repository"
	"qualityhub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	testCaseRepo := repository.NewTestCaseRepository(db)
	testPlanRepo := repository.NewTestPlanRepository(db)
	testRunRepo := repository.NewTestRunRepository(db)
	testResultRepo := repository.NewTestResultRepository(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, userRepo, validator)
	userService := service.NewUserService(userRepo, organizationRepo, validator)
	projectService := service.NewProjectService(projectRepo, organizationRepo, validator)
	testCaseService := service.NewTestCaseService(testCaseRepo, projectRepo, validator)
	testPlanService := service.NewTestPlanService(testPlanRepo, projectRepo, validator)
	testRunService := service.NewTestRunService(testRunRepo, projectRepo, testPlanRepo, validator)
	testResultService := service.NewTestResultService(testResultRepo, testRunRepo, testCaseRepo, validator)
	generationService := service.NewGenerationService(cfg, testCaseService, validator)

	// Initialize auth
	authService := auth.NewAuthService(cfg, userRepo, organizationRepo, refreshTokenRepo, validator)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	testCaseHandler := handlers.NewTestCaseHandler(testCaseService)
	testPlanHandler := handlers.NewTestPlanHandler(testPlanService)
	testRunHandler := handlers.NewTestRunHandler(testRunService)
	testResultHandler := handlers.NewTestResultHandler(testResultService)
	generationHandler := handlers.NewGenerationHandler(generationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Organization routes
		organizations := v1.Group("/organizations")
		{
			// Listing across organizations is an administrative view
			organizations.GET("", authMiddleware.RequirePermissions(auth.PermManageOrganization), organizationHandler.ListOrganizations)
			organizations.POST("", authMiddleware.RequirePermissions(auth.PermManageOrganization), organizationHandler.CreateOrganization)
			organizations.GET("/:id", authMiddleware.RequirePermissions(auth.PermViewOrganization), organizationHandler.GetOrganization)
			organizations.GET("/by-slug/:slug", authMiddleware.RequirePermissions(auth.PermViewOrganization), organizationHandler.GetOrganizationBySlug)
			organizations.PUT("/:id", authMiddleware.RequirePermissions(auth.PermManageOrganization), organizationHandler.UpdateOrganization)
			organizations.DELETE("/:id", authMiddleware.RequirePermissions(auth.PermDeleteOrganization), organizationHandler.DeleteOrganization)
			organizations.GET("/:id/users", authMiddleware.RequirePermissions(auth.PermViewUsers), organizationHandler.GetOrganizationUsers)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("", authMiddleware.RequirePermissions(auth.PermViewUsers), userHandler.ListUsers)
			users.POST("", authMiddleware.RequirePermissions(auth.PermManageUsers), userHandler.CreateUser)
			users.GET("/:id", authMiddleware.RequirePermissions(auth.PermViewUsers), userHandler.GetUser)
			users.PUT("/:id", authMiddleware.RequirePermissions(auth.PermManageUsers), userHandler.UpdateUser)
			users.DELETE("/:id", authMiddleware.RequirePermissions(auth.PermManageUsers), userHandler.DeleteUser)
		}

		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", authMiddleware.RequirePermissions(auth.PermViewProjects), projectHandler.ListProjects)
			projects.POST("", authMiddleware.RequirePermissions(auth.PermCreateProject), projectHandler.CreateProject)
			projects.GET("/:id", authMiddleware.RequirePermissions(auth.PermViewProjects), projectHandler.GetProject)
			projects.PUT("/:id", authMiddleware.RequirePermissions(auth.PermEditProject), projectHandler.UpdateProject)
			projects.DELETE("/:id", authMiddleware.RequirePermissions(auth.PermDeleteProject), projectHandler.DeleteProject)
			projects.GET("/:id/test-cases", authMiddleware.RequirePermissions(auth.PermViewTestCases), testCaseHandler.ListTestCases)
			projects.GET("/:id/test-plans", authMiddleware.RequirePermissions(auth.PermViewTestPlans), testPlanHandler.ListTestPlans)
			projects.GET("/:id/runs", authMiddleware.RequirePermissions(auth.PermViewTestRuns), testRunHandler.ListTestRuns)
			projects.POST("/:id/runs", authMiddleware.RequirePermissions(auth.PermCreateTestRun), testRunHandler.CreateTestRun)
		}

		// Test case routes
		testCases := v1.Group("/test-cases")
		{
			testCases.POST("", authMiddleware.RequirePermissions(auth.PermCreateTestCase), testCaseHandler.CreateTestCase)
			testCases.GET("/:id", authMiddleware.RequirePermissions(auth.PermViewTestCases), testCaseHandler.GetTestCase)
			testCases.PUT("/:id", authMiddleware.RequirePermissions(auth.PermEditTestCase), testCaseHandler.UpdateTestCase)
			testCases.DELETE("/:id", authMiddleware.RequirePermissions(auth.PermDeleteTestCase), testCaseHandler.DeleteTestCase)
		}

		// Test plan routes
		testPlans := v1.Group("/test-plans")
		{
			testPlans.POST("", authMiddleware.RequirePermissions(auth.PermCreateTestPlan), testPlanHandler.CreateTestPlan)
			testPlans.GET("/:id", authMiddleware.RequirePermissions(auth.PermViewTestPlans), testPlanHandler.GetTestPlan)
			testPlans.PUT("/:id", authMiddleware.RequirePermissions(auth.PermEditTestPlan), testPlanHandler.UpdateTestPlan)
			testPlans.DELETE("/:id", authMiddleware.RequirePermissions(auth.PermDeleteTestPlan), testPlanHandler.DeleteTestPlan)
		}

		// Test run routes
		runs := v1.Group("/runs")
		{
			runs.GET("/:id", authMiddleware.RequirePermissions(auth.PermViewTestRuns), testRunHandler.GetTestRun)
			runs.PUT("/:id", authMiddleware.RequirePermissions(auth.PermCreateTestRun), testRunHandler.UpdateTestRun)
			runs.DELETE("/:id", authMiddleware.RequirePermissions(auth.PermDeleteTestRun), testRunHandler.DeleteTestRun)
			runs.POST("/:id/start", authMiddleware.RequirePermissions(auth.PermExecuteTestRun), testRunHandler.StartTestRun)
			runs.POST("/:id/complete", authMiddleware.RequirePermissions(auth.PermCloseTestRun), testRunHandler.CompleteTestRun)
			runs.GET("/:id/results", authMiddleware.RequirePermissions(auth.PermViewTestResults), testResultHandler.ListTestResults)
			runs.POST("/:id/results", authMiddleware.RequirePermissions(auth.PermExecuteTestRun), testResultHandler.RecordTestResult)
		}

		// Test result routes
		results := v1.Group("/results")
		{
			results.PUT("/:id", authMiddleware.RequirePermissions(auth.PermEditTestResult), testResultHandler.UpdateTestResult)
		}

		// AI generation routes
		generate := v1.Group("/generate")
		{
			generate.POST("/tests", authMiddleware.RequirePermissions(auth.PermCreateTestCase), generationHandler.GenerateTests)
			generate.POST("/bdd", authMiddleware.RequirePermissions(auth.PermCreateTestCase), generationHandler.GenerateBDD)
		}
	}

	return router
}
