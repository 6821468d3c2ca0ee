package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"qualityhub-backend/internal/config"
	"qualityhub-backend/internal/database"
	"qualityhub-backend/internal/database/models"
	"qualityhub-backend/internal/service"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name     string                 `yaml:"name"`
	Slug     string                 `yaml:"slug,omitempty"`
	Plan     string                 `yaml:"plan,omitempty"`
	Settings map[string]interface{} `yaml:"settings,omitempty"`
}

type UserData struct {
	OrganizationName string                 `yaml:"organization_name"`
	Email            string                 `yaml:"email"`
	Password         string                 `yaml:"password"`
	Name             string                 `yaml:"name"`
	Role             string                 `yaml:"role"`
	Settings         map[string]interface{} `yaml:"settings,omitempty"`
}

type ProjectData struct {
	OrganizationName string `yaml:"organization_name"`
	Name             string `yaml:"name"`
	Description      string `yaml:"description,omitempty"`
}

type TestCaseData struct {
	ProjectName string                `yaml:"project_name"`
	Title       string                `yaml:"title"`
	Description string                `yaml:"description,omitempty"`
	Priority    string                `yaml:"priority,omitempty"`
	Steps       []models.TestCaseStep `yaml:"steps,omitempty"`
	CreatedBy   string                `yaml:"created_by,omitempty"` // user email
}

type TestPlanData struct {
	ProjectName string `yaml:"project_name"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// YAML file structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

type TestCasesFile struct {
	TestCases []TestCaseData `yaml:"test_cases"`
}

type TestPlansFile struct {
	TestPlans []TestPlanData `yaml:"test_plans"`
}

func main() {
	log.Println("🚀 Loading initial data into QualityHub database...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	// Load all data from YAML files
	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	projects, err := loadProjects(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	testCases, err := loadTestCases(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load test cases: %w", err)
	}

	testPlans, err := loadTestPlans(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load test plans: %w", err)
	}

	// Create organizations first
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[orgData.Name] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", orgCreated, len(organizations))

	// Create users
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create projects
	projectMap := make(map[string]*models.Project)
	projectCreated := 0
	for _, projectData := range projects {
		project, created, err := createProject(db, projectData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create project %s: %w", projectData.Name, err)
		}
		projectMap[projectData.Name] = project
		if created {
			projectCreated++
		}
	}
	log.Printf("📋 Projects: %d created, %d total", projectCreated, len(projects))

	// Create test cases
	testCaseCreated := 0
	for _, caseData := range testCases {
		_, created, err := createTestCase(db, caseData, projectMap, userMap)
		if err != nil {
			return fmt.Errorf("failed to create test case %s: %w", caseData.Title, err)
		}
		if created {
			testCaseCreated++
		}
	}
	log.Printf("📋 Test cases: %d created, %d total", testCaseCreated, len(testCases))

	// Create test plans
	testPlanCreated := 0
	for _, planData := range testPlans {
		_, created, err := createTestPlan(db, planData, projectMap)
		if err != nil {
			return fmt.Errorf("failed to create test plan %s: %w", planData.Name, err)
		}
		if created {
			testPlanCreated++
		}
	}
	log.Printf("📋 Test plans: %d created, %d total", testPlanCreated, len(testPlans))

	return nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "organizations") {
			var file OrganizationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allOrgs = append(allOrgs, file.Organizations...)
		}
		return nil
	})

	return allOrgs, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadProjects(dataDir string) ([]ProjectData, error) {
	var allProjects []ProjectData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "projects") {
			var file ProjectsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allProjects = append(allProjects, file.Projects...)
		}
		return nil
	})

	return allProjects, err
}

func loadTestCases(dataDir string) ([]TestCaseData, error) {
	var allCases []TestCaseData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "test_cases") {
			var file TestCasesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allCases = append(allCases, file.TestCases...)
		}
		return nil
	})

	return allCases, err
}

func loadTestPlans(dataDir string) ([]TestPlanData, error) {
	var allPlans []TestPlanData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "test_plans") {
			var file TestPlansFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPlans = append(allPlans, file.TestPlans...)
		}
		return nil
	})

	return allPlans, err
}

func createOrganization(db *gorm.DB, orgData OrganizationData) (*models.Organization, bool, error) {
	slug := orgData.Slug
	if slug == "" {
		slug = service.Slugify(orgData.Name)
	}

	var org models.Organization
	if err := db.Where("slug = ?", slug).First(&org).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			settingsJSON, _ := json.Marshal(orgData.Settings)

			plan := orgData.Plan
			if plan == "" {
				plan = "free"
			}

			org = models.Organization{
				Name:     orgData.Name,
				Slug:     slug,
				Plan:     plan,
				Settings: settingsJSON,
			}

			if err := db.Create(&org).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create organization: %w", err)
			}
			return &org, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query organization: %w", err)
		}
	}

	return &org, false, nil // created = false (existing)
}

func createUser(db *gorm.DB, userData UserData, orgMap map[string]*models.Organization) (*models.User, bool, error) {
	org := orgMap[userData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for user %s", userData.OrganizationName, userData.Email)
	}

	role := models.UserRole(userData.Role)
	if !role.IsValid() {
		return nil, false, fmt.Errorf("invalid role %q for user %s", userData.Role, userData.Email)
	}

	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}
			settingsJSON, _ := json.Marshal(userData.Settings)

			user = models.User{
				OrganizationID: org.ID,
				Email:          userData.Email,
				PasswordHash:   string(hash),
				Name:           userData.Name,
				Role:           role,
				Settings:       settingsJSON,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func createProject(db *gorm.DB, projectData ProjectData, orgMap map[string]*models.Organization) (*models.Project, bool, error) {
	org := orgMap[projectData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for project %s", projectData.OrganizationName, projectData.Name)
	}

	var project models.Project
	if err := db.Where("name = ? AND organization_id = ?", projectData.Name, org.ID).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			project = models.Project{
				OrganizationID: org.ID,
				Name:           projectData.Name,
				Description:    projectData.Description,
			}

			if err := db.Create(&project).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create project: %w", err)
			}
			return &project, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query project: %w", err)
		}
	}

	return &project, false, nil // created = false (existing)
}

func createTestCase(db *gorm.DB, caseData TestCaseData, projectMap map[string]*models.Project, userMap map[string]*models.User) (*models.TestCase, bool, error) {
	project := projectMap[caseData.ProjectName]
	if project == nil {
		return nil, false, fmt.Errorf("project %s not found for test case %s", caseData.ProjectName, caseData.Title)
	}

	var testCase models.TestCase
	if err := db.Where("title = ? AND project_id = ?", caseData.Title, project.ID).First(&testCase).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			stepsJSON, _ := json.Marshal(caseData.Steps)

			priority := models.PriorityMedium
			if caseData.Priority != "" {
				priority = models.TestCasePriority(caseData.Priority)
			}
			if !priority.IsValid() {
				return nil, false, fmt.Errorf("invalid priority %q for test case %s", caseData.Priority, caseData.Title)
			}

			testCase = models.TestCase{
				ProjectID:   project.ID,
				Title:       caseData.Title,
				Description: caseData.Description,
				Steps:       stepsJSON,
				Priority:    priority,
				Version:     1,
			}
			if caseData.CreatedBy != "" {
				if creator := userMap[caseData.CreatedBy]; creator != nil {
					testCase.CreatedBy = &creator.ID
				}
			}

			if err := db.Create(&testCase).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create test case: %w", err)
			}
			return &testCase, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query test case: %w", err)
		}
	}

	return &testCase, false, nil // created = false (existing)
}

func createTestPlan(db *gorm.DB, planData TestPlanData, projectMap map[string]*models.Project) (*models.TestPlan, bool, error) {
	project := projectMap[planData.ProjectName]
	if project == nil {
		return nil, false, fmt.Errorf("project %s not found for test plan %s", planData.ProjectName, planData.Name)
	}

	var plan models.TestPlan
	if err := db.Where("name = ? AND project_id = ?", planData.Name, project.ID).First(&plan).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			plan = models.TestPlan{
				ProjectID:   project.ID,
				Name:        planData.Name,
				Description: planData.Description,
			}

			if err := db.Create(&plan).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create test plan: %w", err)
			}
			return &plan, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query test plan: %w", err)
		}
	}

	return &plan, false, nil // created = false (existing)
}
