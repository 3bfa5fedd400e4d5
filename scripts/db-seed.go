package main

import (
	"errors"
	"flag"
	"log"

	"github.com/agentdesk-backend/config"
	"github.com/agentdesk-backend/database"
	"github.com/agentdesk-backend/models"
	"github.com/agentdesk-backend/services"
)

// Seeds the database for local development: status reference rows, a
// sample workspace and the default user (id 1) the mobile client expects.
func main() {
	seed := flag.Bool("seed", false, "seed status tables and sample data")
	clear := flag.Bool("clear", false, "delete all data")
	setupUser := flag.Bool("setup-user", false, "reset and provision the default user")
	userID := flag.Uint("user-id", 1, "user id for -setup-user")
	flag.Parse()

	config.LoadEnv()
	database.Initialize()

	var err error
	switch {
	case *clear:
		err = clearAll()
	case *setupUser:
		err = provisionDefaultUser(*userID)
	case *seed:
		err = seedFixtures()
	default:
		// Seeding is the default action
		err = seedFixtures()
	}
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
}

// seedFixtures populates the status reference sets and one sample
// user/project/chat with a handful of tasks. Idempotent: an already
// seeded database is left untouched.
func seedFixtures() error {
	db := database.DB

	var existing int64
	if err := db.Model(&models.ChatStatus{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		log.Println("📊 Database already contains data, skipping fixtures")
		return nil
	}

	log.Println("🌱 Seeding status tables...")
	chatStatuses := models.DefaultChatStatuses()
	if err := db.Create(&chatStatuses).Error; err != nil {
		return err
	}
	taskStatuses := models.DefaultTaskStatuses()
	if err := db.Create(&taskStatuses).Error; err != nil {
		return err
	}

	log.Println("🌱 Seeding sample data...")
	user := models.User{}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	project := models.Project{
		Name:        "Sample IDE Project",
		Description: "A sample project for exercising the backend API",
		UserOwnerID: user.ID,
	}
	if err := db.Create(&project).Error; err != nil {
		return err
	}

	chat := models.Chat{
		Name:      "Main Development Chat",
		ProjectID: project.ID,
		UserID:    user.ID,
		StatusID:  models.DefaultChatStatusID,
	}
	if err := db.Create(&chat).Error; err != nil {
		return err
	}

	tasks := []models.Task{
		{Name: "Set up project structure", Description: "Initialize the basic project structure and configuration files", StatusID: 3, ChatID: chat.ID, Priority: models.PriorityHigh},
		{Name: "Implement user authentication", Description: "Add login and registration functionality", StatusID: 2, ChatID: chat.ID, Priority: models.PriorityHigh},
		{Name: "Design API endpoints", Description: "Plan and document all required API endpoints", StatusID: 1, ChatID: chat.ID, Priority: models.PriorityMedium},
		{Name: "Write unit tests", Description: "Create comprehensive test coverage for all components", StatusID: 1, ChatID: chat.ID, Priority: models.PriorityMedium},
		{Name: "Setup CI/CD pipeline", Description: "Configure automated testing and deployment", StatusID: 1, ChatID: chat.ID, Priority: models.PriorityLow},
	}
	if err := db.Create(&tasks).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d chat statuses, %d task statuses, 1 user, 1 project, 1 chat, %d tasks",
		len(models.DefaultChatStatuses()), len(models.DefaultTaskStatuses()), len(tasks))
	return nil
}

// provisionDefaultUser wipes and recreates the given user with three
// sample projects, each holding feature chats; the first chat gets a few
// starter tasks.
func provisionDefaultUser(userID uint) error {
	db := database.DB
	userService := services.NewUserService()

	log.Printf("🧹 Clearing existing data for user %d...", userID)
	if err := userService.DeleteUser(userID); err != nil && !errors.Is(err, services.ErrNotFound) {
		return err
	}

	user := models.User{ID: userID}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	log.Printf("👤 Created user %d", user.ID)

	sampleProjects := []models.Project{
		{Name: "Agentdesk Mobile", Description: "iOS app for AI-powered development assistance with real-time task management", UserOwnerID: user.ID},
		{Name: "E-Commerce Platform", Description: "Full-stack web application with React frontend and PostgreSQL database", UserOwnerID: user.ID},
		{Name: "Social Media Dashboard", Description: "Analytics dashboard for social media management with real-time insights", UserOwnerID: user.ID},
	}
	if err := db.Create(&sampleProjects).Error; err != nil {
		return err
	}

	chatNames := [][]string{
		{"Voice Input Feature", "Task Management", "Project Selection", "Real-time Updates"},
		{"User Authentication", "Shopping Cart", "Payment Integration", "Product Catalog"},
		{"Analytics Engine", "Post Scheduler", "User Management", "Report Generation"},
	}

	var firstChat *models.Chat
	for i, project := range sampleProjects {
		for _, name := range chatNames[i] {
			chat := models.Chat{
				Name:      name,
				ProjectID: project.ID,
				UserID:    user.ID,
				StatusID:  models.DefaultChatStatusID,
			}
			if err := db.Create(&chat).Error; err != nil {
				return err
			}
			if firstChat == nil {
				first := chat
				firstChat = &first
			}
		}
	}

	if firstChat != nil {
		tasks := []models.Task{
			{Name: "Setup project structure", Description: "Initialize repository and basic project configuration", StatusID: 3, ChatID: firstChat.ID, Priority: models.PriorityHigh},
			{Name: "Implement user authentication", Description: "Add login/logout functionality with JWT tokens", StatusID: 2, ChatID: firstChat.ID, Priority: models.PriorityHigh},
			{Name: "Design database schema", Description: "Create ERD and implement database migrations", StatusID: 1, ChatID: firstChat.ID, Priority: models.PriorityMedium},
		}
		if err := db.Create(&tasks).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Provisioned user %d with %d projects", user.ID, len(sampleProjects))
	return nil
}

// clearAll deletes everything in reverse dependency order
func clearAll() error {
	db := database.DB
	log.Println("🧹 Clearing database...")

	for _, model := range []interface{}{
		&models.Task{}, &models.Chat{}, &models.Project{},
		&models.User{}, &models.TaskStatus{}, &models.ChatStatus{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Database cleared")
	return nil
}
