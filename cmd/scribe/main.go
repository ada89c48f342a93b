package main

import (
	"fmt"
	"os"

	"meetscribe/cmd/scribe/cmd"
	"meetscribe/internal/config"
)

// @title Meetscribe API
// @version 1.0
// @description Audio transcription and transcript Q&A backend
// @BasePath /api
func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load environment: %v\n", err)
		os.Exit(1)
	}

	cmd.Execute()
}
