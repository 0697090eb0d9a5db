package main

import (
	"context"

	"github.com/framecheck/framecheck-go/internal/cli"
	"github.com/framecheck/framecheck-go/internal/config"
	"github.com/framecheck/framecheck-go/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	log := logging.NewDefault()

	app := cli.NewApp(cfg, log)
	app.Run(context.Background())

}
