package main

import (
	"github.com/buffetops/buffet/internal/config"
	"github.com/buffetops/buffet/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version, Commit)
}
