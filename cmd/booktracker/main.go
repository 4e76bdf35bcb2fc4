package main

import (
	stdLog "log"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/yichuanzhang/booktracker/app"
	"github.com/yichuanzhang/booktracker/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		log.Fatal("run", err)
	}
}
