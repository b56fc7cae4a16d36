/*
 * Copyright (C) 2023 by Jason Figge
 */

package main

import (
	"fmt"
	"log"
	"runtime"

	"ray-casting/internal"
	"ray-casting/internal/config"
	"ray-casting/internal/graphics"
	"ray-casting/internal/player"
	"ray-casting/internal/snapshot"
	"ray-casting/internal/world"
)

func init() {
	// SDL must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	log.SetPrefix("raycaster: ")

	m := world.Default()
	cam, err := player.NewCamera(config.StartPosition, config.StartDirection, config.HorizontalFOV)
	if err != nil {
		log.Fatalf("camera: %v", err)
	}

	window, err := graphics.NewBuilder(config.Title).
		Size(config.ScreenWidth, config.ScreenHeight).
		Resizable().
		GrabMouse().
		KeyTurn(config.KeyTurnRate, config.MouseSensitivity).
		Build()
	if err != nil {
		log.Fatalf("window: %v", err)
	}
	defer func() { graphics.ErrorTrap(window.Close()) }()

	width, height := window.Size()
	controller, err := internal.NewController(window, m, cam, width, height,
		internal.WithWorkers(runtime.NumCPU()),
		internal.WithCapturer(snapshot.NewWriter(".", m, config.SnapshotScale)),
	)
	if err != nil {
		log.Fatalf("controller: %v", err)
	}
	if err := controller.Run(); err != nil {
		log.Printf("stopped: %v", err)
	}
	fmt.Println("Game over")
}
