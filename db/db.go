package db

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/techagentng/snipmark/config"
	"github.com/techagentng/snipmark/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GormDB struct {
	DB *gorm.DB
}

func GetDB(c *config.Config) *GormDB {
	gormDB := &GormDB{}
	gormDB.Init(c)
	return gormDB
}

func (g *GormDB) Init(c *config.Config) {
	g.DB = getPostgresDB(c)

	if err := migrate(g.DB); err != nil {
		logrus.Fatalf("unable to run migrations: %v", err)
	}
}

// Close releases the underlying connection pool. Called once on shutdown.
func (g *GormDB) Close() error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func getPostgresDB(c *config.Config) *gorm.DB {
	postgresDSN := c.DatabaseURL
	if postgresDSN == "" {
		postgresDSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
			c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort, c.PostgresSSLMode)
	}

	gormConfig := &gorm.Config{}
	if c.Env != "prod" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DSN: postgresDSN,
	}), gormConfig)
	if err != nil {
		logrus.Fatal(err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logrus.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := sqlDB.Ping(); err != nil {
		logrus.Fatalf("unable to ping database: %v", err)
	}

	return gormDB
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Bookmark{},
	)
	if err != nil {
		return fmt.Errorf("migrations error: %v", err)
	}

	return nil
}
