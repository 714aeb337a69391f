package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/techagentng/snipmark/config"
	"github.com/techagentng/snipmark/db"
	"github.com/techagentng/snipmark/server"
	"github.com/techagentng/snipmark/services"
	"gopkg.in/natefinch/lumberjack.v2"
)

func initLogger(conf *config.Config) {
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if conf.LogFile != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   conf.LogFile,
			MaxSize:    100, // MB
			MaxAge:     30,  // days
			MaxBackups: 5,
			LocalTime:  true,
			Compress:   true,
		}
		logrus.SetOutput(io.MultiWriter(os.Stdout, fileWriter))
	}
}

func main() {
	conf, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	initLogger(conf)

	if !conf.HasDBCredentials() {
		logrus.Error("Missing DB credentials in env")
		os.Exit(1)
	}

	gormDB := db.GetDB(conf)
	bookmarkRepo := db.NewBookmarkRepo(gormDB)
	bookmarkService := services.NewBookmarkService(bookmarkRepo, conf)

	s := &server.Server{
		Config:             conf,
		BookmarkRepository: bookmarkRepo,
		BookmarkService:    bookmarkService,
		DB:                 gormDB,
	}

	s.Start()
}
