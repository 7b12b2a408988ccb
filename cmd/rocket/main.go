package main

import (
	"log"

	"github.com/grapengine/grape/engine/colors"
	"github.com/grapengine/grape/engine/core"
	glbackend "github.com/grapengine/grape/engine/gfx/gl"
	"github.com/grapengine/grape/engine/platform"
)

func main() {
	cfg := core.Config{
		Title:      "Rocket",
		Width:      960,
		Height:     600,
		VSync:      true,
		ClearColor: colors.DarkGray,
	}
	game := &RocketGame{}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(game, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
