package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	DashboardDB *pgxpool.Pool

	DashboardGorm *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

func initPgx() {
	// Dashboard - use hosted URL if provided
	dbURL := os.Getenv("DASHBOARD_DB_URL")
	if dbURL == "" {
		// fallback to local
		dbURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/platewise_dashboard?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ DASHBOARD_DB_URL not set, using local default")
	}

	var err error
	DashboardDB, err = pgxpool.New(context.Background(), dbURL)
	if err != nil {
		log.Fatalf("❌ Unable to connect to dashboard database: %v", err)
	}

	if err = DashboardDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Dashboard database ping failed: %v", err)
	}

	log.Println("✅ Dashboard database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	// GORM: prefer full URL
	var dsn string
	if os.Getenv("DASHBOARD_DB_URL") != "" {
		dsn = os.Getenv("DASHBOARD_DB_URL")
	} else {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=platewise_dashboard port=%s sslmode=disable TimeZone=UTC",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ DASHBOARD_DB_URL not set, using local GORM default")
	}

	var err error
	DashboardGorm, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to dashboard database with GORM: %v", err)
	}
	if sqlDB, err := DashboardGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Dashboard database connected (GORM)")
}

func CloseDB() {
	if DashboardDB != nil {
		DashboardDB.Close()
		log.Println("✅ Dashboard database connection closed (pgx)")
	}

	if DashboardGorm != nil {
		sqlDB, _ := DashboardGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Dashboard database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout (bumped from 5s for Neon cold starts)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
