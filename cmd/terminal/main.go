/*
 * Copyright (C) 2023 by Jason Figge
 */

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"ray-casting/internal"
	"ray-casting/internal/config"
	"ray-casting/internal/player"
	"ray-casting/internal/snapshot"
	"ray-casting/internal/terminal"
	"ray-casting/internal/world"
)

func main() {
	log.SetPrefix("raycaster: ")

	m := world.Default()
	cam, err := player.NewCamera(config.StartPosition, config.StartDirection, config.HorizontalFOV)
	if err != nil {
		log.Fatalf("camera: %v", err)
	}

	screen, err := terminal.Open(terminal.DefaultOptions())
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	// Log lines would tear the picture while the terminal is ours.
	log.SetOutput(io.Discard)

	width, height := screen.Size()
	controller, err := internal.NewController(screen, m, cam, width, height,
		internal.WithCapturer(snapshot.NewWriter(".", m, config.SnapshotScale*4)),
	)
	if err != nil {
		_ = screen.Close()
		log.SetOutput(os.Stderr)
		log.Fatalf("controller: %v", err)
	}
	runErr := controller.Run()
	_ = screen.Close()
	log.SetOutput(os.Stderr)
	if runErr != nil {
		log.Fatalf("stopped: %v", runErr)
	}
	fmt.Println("Game over")
}
