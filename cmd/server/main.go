package main

import (
	"github.com/cloud-compass/compass/backend/internal/server"
	"github.com/cloud-compass/compass/backend/internal/util"
	"github.com/cloud-compass/compass/backend/pkg/logger"
	"github.com/cloud-compass/compass/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
