package main

import (
	"context"
	"log"

	"fmclip/internal/config"
	"fmclip/internal/daemonrun"
)

func main() {
	cfg, _, _, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := daemonrun.Run(context.Background(), cfg, daemonrun.Options{ProcessScan: true}); err != nil {
		log.Fatalf("fmclipd: %v", err)
	}
}
