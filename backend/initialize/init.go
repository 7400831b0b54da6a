package initialize

import (
	"fmt"
	"net/http"
	"time"

	"quora-backend/backend/app/controllers"
	"quora-backend/backend/app/db"
	"quora-backend/backend/app/middleware"
	"quora-backend/backend/app/models"
	"quora-backend/backend/app/repo"
	"quora-backend/backend/app/services"
	"quora-backend/backend/app/token"
	"quora-backend/backend/config"
	"quora-backend/backend/global"
	"quora-backend/backend/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Router http.Handler

	Auth      *services.AuthService
	Authz     *services.AuthzService
	Users     *services.UserService
	Questions *services.QuestionService
	Answers   *services.AnswerService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	gdb, err := db.Connect(db.Config{
		Driver:   cfg.DB.Driver,
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Pass,
		DBName:   cfg.DB.Name,
		Path:     cfg.DB.Path,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.UserAuthToken{}, &models.Question{}, &models.Answer{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Repositories
	userRepo := repo.NewUserRepository(gdb)
	tokenRepo := repo.NewTokenRepository(gdb)
	questionRepo := repo.NewQuestionRepository(gdb)
	answerRepo := repo.NewAnswerRepository(gdb)

	// Services
	signer := &token.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer}
	tokenTTL := time.Duration(cfg.JWT.ExpHours) * time.Hour
	authSvc := services.NewAuthService(userRepo, tokenRepo, signer, cfg.Auth.DefaultPassword, tokenTTL)
	authzSvc := services.NewAuthzService(tokenRepo, userRepo)
	userSvc := services.NewUserService(userRepo, authzSvc)
	questionSvc := services.NewQuestionService(questionRepo, userRepo, authzSvc)
	answerSvc := services.NewAnswerService(answerRepo, questionRepo, authzSvc)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	commonCtrl := controllers.NewCommonController(userSvc)
	adminCtrl := controllers.NewAdminController(userSvc)
	questionCtrl := controllers.NewQuestionController(questionSvc)
	answerCtrl := controllers.NewAnswerController(answerSvc)

	// Router
	h := router.NewRouter(authCtrl, commonCtrl, adminCtrl, questionCtrl, answerCtrl)
	h = middleware.Logging(h)

	return &App{
		Cfg:       cfg,
		DB:        gdb,
		Router:    h,
		Auth:      authSvc,
		Authz:     authzSvc,
		Users:     userSvc,
		Questions: questionSvc,
		Answers:   answerSvc,
	}, nil
}
