// Command treemapview is a small SDL2 demo host for the treemap package: it
// renders the built-in demo tree (or, with -legacy, the pre-2004 option
// defaults) into a resizable window and prints the item under the mouse
// cursor on click.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/z7z8th/windirstat/buffer"
	"github.com/z7z8th/windirstat/config"
	"github.com/z7z8th/windirstat/treemap"
)

const (
	appName    = "treemapview"
	appVersion = "0.1.0"
)

var (
	showVersionAndExit = flag.Bool("version", false, "Show version information and exit")
	initialWidth       = flag.Int("width", 900, "Initial window width")
	initialHeight      = flag.Int("height", 600, "Initial window height")
	styleFlag          = flag.String("style", "", "Layout style override: kdirstat, sequoiaview, simple")
	legacyFlag         = flag.Bool("legacy", false, "Use the pre-2004 default shading parameters")
	gridFlag           = flag.Bool("grid", false, "Draw a 1px grid between items")
)

func main() {
	flag.Parse()

	if *showVersionAndExit {
		fmt.Printf("%s v%s\n", appName, appVersion)
		os.Exit(0)
	}

	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatalf("could not initialize SDL: %v", err)
	}
	defer sdl.Quit()

	cfg := config.LoadTreemapConfig()
	opts := cfg.ToOptions()
	if *legacyFlag {
		opts = treemap.LegacyDefaultOptions()
	}
	if *styleFlag != "" {
		opts.Style = parseStyleFlag(*styleFlag)
	}
	opts.Grid = opts.Grid || *gridFlag
	opts.Normalize(false)

	window, err := sdl.CreateWindow(
		appName,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(*initialWidth), int32(*initialHeight),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		log.Fatalf("could not create window: %v", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		log.Fatalf("could not create renderer: %v", err)
	}
	defer renderer.Destroy()

	root := treemap.BuildDemoTree()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	mainLoop(window, renderer, root, &opts, signalChan)
}

func parseStyleFlag(name string) treemap.Style {
	switch name {
	case "kdirstat":
		return treemap.KDirStat
	case "sequoiaview":
		return treemap.SequoiaView
	case "simple":
		return treemap.Simple
	default:
		log.Printf("unknown style %q, using kdirstat", name)
		return treemap.KDirStat
	}
}

// sdlTarget adapts an sdl.Renderer/sdl.Texture pair to buffer.Target by
// uploading the finished frame and presenting it in one Blit call.
type sdlTarget struct {
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

func newSDLTarget(renderer *sdl.Renderer, width, height int) (*sdlTarget, error) {
	texture, err := renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_ARGB8888),
		sdl.TEXTUREACCESS_STREAMING,
		int32(width), int32(height),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create texture: %w", err)
	}
	return &sdlTarget{renderer: renderer, texture: texture}, nil
}

func (t *sdlTarget) Close() {
	t.texture.Destroy()
}

func (t *sdlTarget) Blit(buf *buffer.Buffer, dstX, dstY int) error {
	if err := t.texture.Update(nil, buf.Pix, buf.Stride()); err != nil {
		return fmt.Errorf("could not update texture: %w", err)
	}

	if err := t.renderer.Clear(); err != nil {
		return fmt.Errorf("could not clear renderer: %w", err)
	}

	dst := sdl.Rect{X: int32(dstX), Y: int32(dstY), W: int32(buf.Width), H: int32(buf.Height)}
	if err := t.renderer.Copy(t.texture, nil, &dst); err != nil {
		return fmt.Errorf("could not copy texture: %w", err)
	}

	t.renderer.Present()
	return nil
}

func mainLoop(window *sdl.Window, renderer *sdl.Renderer, root *treemap.DemoItem, opts *treemap.Options, signalChan chan os.Signal) {
	frameDelay := sdl.GetPerformanceFrequency() / 60
	lastFrame := sdl.GetPerformanceCounter()

	width, height := window.GetSize()
	target, err := newSDLTarget(renderer, int(width), int(height))
	if err != nil {
		log.Fatalf("could not create render target: %v", err)
	}
	defer target.Close()

	running := true
	for running {
		select {
		case sig := <-signalChan:
			log.Printf("received signal %v, shutting down", sig)
			return
		default:
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					target.Close()
					w, h := window.GetSize()
					newTarget, err := newSDLTarget(renderer, int(w), int(h))
					if err != nil {
						log.Fatalf("could not recreate render target: %v", err)
					}
					target = newTarget
				}
			case *sdl.MouseButtonEvent:
				if e.Type == sdl.MOUSEBUTTONDOWN {
					hit := treemap.FindItemByPoint(root, treemap.Point{X: int(e.X), Y: int(e.Y)}, *opts)
					if hit != nil {
						log.Printf("clicked item of size %d at rect %v", hit.Size(), hit.Rectangle())
					}
				}
			}
		}

		w, h := window.GetSize()
		rect := treemap.Rectangle{X0: 0, Y0: 0, X1: int(w), Y1: int(h)}
		if err := treemap.Draw(target, rect, root, opts, nil); err != nil {
			log.Printf("draw error: %v", err)
		}

		now := sdl.GetPerformanceCounter()
		elapsed := now - lastFrame
		if elapsed < frameDelay {
			sdl.Delay(uint32((frameDelay - elapsed) * 1000 / sdl.GetPerformanceFrequency()))
		}
		lastFrame = sdl.GetPerformanceCounter()
	}
}
