package main

import (
	"github.com/rileyhilliard/apex/internal/cli"
)

// Set via ldflags:
//
//	go build -ldflags "-X main.version=0.1.0 -X main.commit=abc123 -X main.date=2026-01-01" ./cmd/apex
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	cli.Execute()
}
