package main

import (
	"fmt"
	"log"
	"time"

	"github.com/grapengine/grape/engine/assets"
	"github.com/grapengine/grape/engine/audio"
	"github.com/grapengine/grape/engine/colors"
	"github.com/grapengine/grape/engine/core"
	"github.com/grapengine/grape/engine/gfx/renderer2d"
	"github.com/grapengine/grape/engine/scene"
	"github.com/grapengine/grape/engine/text"
)

// RocketGame: one rocket sprite bouncing around a playfield, a HUD strip
// on top, bounce blips through the audio device.
type RocketGame struct {
	r2d    *renderer2d.Renderer2D
	cam    *scene.OrthoCamera2D
	font   *text.Font
	device *audio.Device
	muted  bool

	root      *scene.Stack
	playfield *scene.Panel
	rocket    *scene.Sprite
	hud       *hudNode
}

const hudHeight = 40

func (g *RocketGame) OnStart(e *core.Engine) {
	// Shaders can be overridden from assets/shaders; the embedded pair is
	// the fallback so the binary runs without an asset tree.
	vs, fs := renderer2d.DefaultVertexShader, renderer2d.DefaultFragmentShader
	if src, err := assets.LoadShader("quad.vert"); err == nil {
		vs = src
	}
	if src, err := assets.LoadShader("quad.frag"); err == nil {
		fs = src
	}

	var err error
	g.r2d, err = renderer2d.New(e.Renderer, vs, fs, 4096)
	if err != nil {
		panic(err)
	}

	w, h := e.Window.FramebufferSize()
	g.cam = scene.NewOrthoTopLeft(w, h)

	// Rocket texture from assets/textures when present, procedural
	// otherwise.
	art, err := assets.LoadPNG("rocket.png")
	if err != nil {
		art = rocketArt()
	}
	tex, err := art.Upload(e.Renderer, "nearest")
	if err != nil {
		panic(err)
	}

	g.rocket = scene.NewSprite(renderer2d.Whole(tex), float32(art.W), float32(art.H))
	g.rocket.X = float64(w) / 2
	g.rocket.Y = float64(h) / 2
	g.rocket.Heading = 35
	g.rocket.Speed = 220
	g.rocket.Spin = 0

	// Font is optional; the HUD falls back to a bare strip without one.
	g.font, err = text.LoadTTF(e.Renderer, "RobotoMono.ttf", 20)
	if err != nil {
		log.Printf("no HUD font: %v", err)
		g.font = nil
	}

	if g.device, err = audio.Open(audio.DefaultSampleRate); err != nil {
		log.Printf("audio disabled: %v", err)
		g.device = nil
	}

	// Vertical stack: fixed HUD strip on top, the playfield takes the rest.
	g.hud = &hudNode{game: g}
	g.playfield = scene.NewPanel(scene.NewGroup(g.rocket), scene.Proportional(1), scene.Proportional(1))
	g.root = scene.NewStack(scene.Vertical, scene.Rect{W: float32(w), H: float32(h)})
	g.root.Append(scene.NewPanel(g.hud, scene.Proportional(1), scene.Fixed(hudHeight)))
	g.root.Append(g.playfield)

	g.registerKeys(e)
}

func (g *RocketGame) registerKeys(e *core.Engine) {
	e.Events.On(core.EventTypeKey, func(ev core.Event) bool {
		k := ev.(core.EventKey)
		if !k.Down {
			return false
		}
		switch k.Key {
		case core.KeyEscape:
			e.Window.RequestClose()
		case core.KeyLeft:
			g.rocket.Heading -= 10
		case core.KeyRight:
			g.rocket.Heading += 10
		case core.KeyUp:
			g.rocket.Speed += 20
		case core.KeyDown:
			if g.rocket.Speed -= 20; g.rocket.Speed < 0 {
				g.rocket.Speed = 0
			}
		case core.KeySpace:
			if g.rocket.Spin == 0 {
				g.rocket.Spin = 180
			} else {
				g.rocket.Spin = 0
			}
		case core.KeyM:
			g.muted = !g.muted
		default:
			return false
		}
		return true
	})
	e.Events.On(core.EventTypeResize, func(ev core.Event) bool {
		r := ev.(core.EventResize)
		g.cam.SetViewportPixels(r.W, r.H)
		g.root.Bounds = scene.Rect{W: float32(r.W), H: float32(r.H)}
		return false
	})
}

func (g *RocketGame) OnUpdate(e *core.Engine, dt float64) {
	ctx := scene.NewUpdateContext(time.Now(), e.Input)
	g.root.Update(ctx)
	g.bounce()
}

// bounce reflects the velocity component pointing out of the playfield and
// plays a blip. The heading convention survives the round-trip through
// Velocity/Polar.
func (g *RocketGame) bounce() {
	r := g.rocket
	b := g.playfield.Bounds()
	if b.W <= 0 || b.H <= 0 {
		return
	}

	halfW := float64(r.W) * r.Scale / 2
	halfH := float64(r.H) * r.Scale / 2
	vx, vy := scene.Velocity(r.Speed, r.Heading)
	hit := false

	if r.X-halfW < float64(b.X) && vx < 0 {
		vx, hit = -vx, true
	}
	if r.X+halfW > float64(b.Right()) && vx > 0 {
		vx, hit = -vx, true
	}
	if r.Y-halfH < float64(b.Y) && vy < 0 {
		vy, hit = -vy, true
	}
	if r.Y+halfH > float64(b.Bottom()) && vy > 0 {
		vy, hit = -vy, true
	}

	if hit {
		r.SetVelocity(vx, vy)
		r.FlipX = !r.FlipX
		if g.device != nil && !g.muted {
			g.device.PlaySweep(880, 220, 90*time.Millisecond, 0.4)
		}
	}
}

func (g *RocketGame) OnRender(e *core.Engine, alpha float64) {
	g.r2d.BeginScene(g.cam.VP())
	target := &scene.RenderTarget{R2D: g.r2d, Font: g.font, Bounds: g.root.Bounds}
	g.root.Render(target)
	g.r2d.EndScene()
}

func (g *RocketGame) OnEvent(e *core.Engine, ev core.Event) {}

func (g *RocketGame) OnShutdown(e *core.Engine) {
	if g.device != nil {
		g.device.Close()
	}
	if g.font != nil {
		g.font.Close()
	}
}

// hudNode renders the top strip: background plus a status line.
type hudNode struct {
	game *RocketGame
}

func (h *hudNode) Update(ctx *scene.UpdateContext) bool { return false }

func (h *hudNode) Render(t *scene.RenderTarget) {
	b := t.Bounds
	t.R2D.DrawQuad(b.X+b.W/2, b.Y+b.H/2, b.W, b.H, colors.Black.WithAlpha(0.7), 0)

	if t.Font == nil {
		return
	}
	r := h.game.rocket
	line := fmt.Sprintf("speed %3.0f  heading %3.0f  spin %3.0f", r.Speed, r.Heading, r.Spin)
	text.DrawText(t.R2D, t.Font, b.X+8, b.Y+8, line, colors.White)

	if h.game.muted {
		const tag = "[muted]"
		w, _ := text.Measure(t.Font, tag)
		text.DrawText(t.R2D, t.Font, b.Right()-8-w, b.Y+8, tag, colors.Yellow)
	}
}
