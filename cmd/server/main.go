package main

import (
	"conceptgraph/internal/server"
	"conceptgraph/internal/util"
	"conceptgraph/pkg/logger"
	"conceptgraph/pkg/logger/console"
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
