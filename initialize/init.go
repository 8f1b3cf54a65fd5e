package initialize

import (
	"fmt"
	"net/http"
	"taskboard/app/controllers"
	"taskboard/app/db"
	jwtutil "taskboard/app/jwt"
	"taskboard/app/middleware"
	"taskboard/app/models"
	"taskboard/app/repo"
	"taskboard/app/services"
	"taskboard/config"
	"taskboard/global"
	"taskboard/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Router http.Handler
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	gdb, err := db.Connect(db.Config{Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	h := BuildRouter(gdb, signer, cfg.Admin, cfg.CORSOrigin)
	return &App{Cfg: cfg, DB: gdb, Router: h}, nil
}

// BuildRouter wires repositories, services, controllers and middleware over
// an already open DB. Split out of Build so tests can run the full stack
// against an in-memory store.
func BuildRouter(gdb *gorm.DB, signer *jwtutil.Signer, admin config.Admin, corsOrigin string) http.Handler {
	userRepo := repo.NewUserRepository(gdb)
	taskRepo := repo.NewTaskRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	taskSvc := services.NewTaskService(taskRepo)

	httpCtrl := controllers.NewHTTPController()
	authCtrl := controllers.NewAuthController(userSvc, signer, admin.Email, admin.Password)
	taskCtrl := controllers.NewTaskController(taskSvc)
	mw := &middleware.Auth{Signer: signer}

	h := router.NewRouter(httpCtrl, authCtrl, taskCtrl, mw)
	h = middleware.CORS(corsOrigin, h)
	h = middleware.Logging(h)
	return h
}
