/*
 * Copyright (C) 2023 by Jason Figge
 */

package main

import (
	"fmt"
	"log"
	"os"

	"ray-casting/internal/config"
	"ray-casting/internal/framebuffer"
	"ray-casting/internal/player"
	"ray-casting/internal/snapshot"
	"ray-casting/internal/world"
)

// snapshot renders the start view of the built-in level to a PNG file, the
// first argument or view.png.
func main() {
	log.SetPrefix("snapshot: ")

	path := "view.png"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	m := world.Default()
	cam, err := player.NewCamera(config.StartPosition, config.StartDirection, config.HorizontalFOV)
	if err != nil {
		log.Fatalf("camera: %v", err)
	}
	img, err := snapshot.Render(m, cam, config.ScreenWidth, config.ScreenHeight, framebuffer.DefaultPalette())
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	if err := snapshot.Save(path, img, 1); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Println("wrote", path)
}
