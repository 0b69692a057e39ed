package main

import (
	"github.com/WorkNestHQ/job_service/config"
	"github.com/WorkNestHQ/job_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
