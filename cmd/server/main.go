package main

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "hometasks/docs"
	"hometasks/internal/config"
	"hometasks/internal/server"
	"hometasks/internal/service"
	"hometasks/internal/store"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// @title           HomeTasks API
// @version         1.0
// @description     API for managing household tasks, sections, projects and staff.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	// Логгер приложения; журнал доступа gin остается текстовым
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, dialect, err := connectDB(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to DB: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("❌ Failed to get sql.DB: %v", err)
	}
	defer sqlDB.Close()

	if err := runMigrations(sqlDB, dialect); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}
	log.Println("✅ Connected to database")

	st := store.New(store.NewDBBackend(db), logger)
	if err := service.EnsureSeeded(context.Background(), st, logger); err != nil {
		log.Fatalf("❌ Failed to seed initial data: %v", err)
	}

	s, err := server.Init(cfg, st, logger)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}

func connectDB(cfg *config.Config) (*gorm.DB, string, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	switch cfg.StoreDriver {
	case "postgres":
		var db *gorm.DB
		var err error
		for i := 0; i < 30; i++ {
			db, err = gorm.Open(postgres.Open(cfg.StoreDSN), gormCfg)
			if err == nil {
				sqlDB, _ := db.DB()
				if sqlDB.Ping() == nil {
					return db, "postgres", nil
				}
			}
			time.Sleep(time.Second)
		}
		return nil, "", fmt.Errorf("failed to connect to database after 30 attempts: %w", err)

	case "sqlite":
		path := cfg.StorePath
		if path == "" {
			var err error
			path, err = store.DefaultSQLitePath()
			if err != nil {
				return nil, "", err
			}
		}
		db, err := gorm.Open(sqlite.Open(path), gormCfg)
		if err != nil {
			return nil, "", err
		}
		return db, "sqlite3", nil

	default:
		return nil, "", fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func runMigrations(db *sql.DB, dialect string) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
