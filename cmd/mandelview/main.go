// Command mandelview is the interactive viewer: drag to pan, wheel or +/-
// to zoom, shift+drag to zoom into a rectangle, ,/. to adjust the iteration
// budget, R to reset, C to cycle color schemes, F to save fractal.png,
// Escape to quit.
package main

import (
	"context"
	"errors"
	"image"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/veandco/go-sdl2/sdl"

	"mandelbrot/imgio"
	"mandelbrot/palette"
)

const (
	windowTitle  = "Mandelbrot"
	windowWidth  = 800
	windowHeight = 600
	outputFile   = "fractal.png"
)

func sdlInit(title string) (*sdl.Window, *sdl.Renderer, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_TIMER); err != nil {
		return nil, nil, err
	}
	sdl.StopTextInput()

	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		windowWidth, windowHeight, sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		return nil, nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, nil, err
	}

	return window, renderer, nil
}

func sdlClose(window *sdl.Window, renderer *sdl.Renderer) {
	renderer.Destroy()
	window.Destroy()
	sdl.Quit()
}

func createTexture(r *sdl.Renderer, w, h int) (*sdl.Texture, error) {
	// ABGR packed order is R,G,B,A in memory on little-endian machines,
	// matching image.RGBA's Pix layout.
	return r.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, int32(w), int32(h))
}

// blit copies img into the streaming texture, row by row to honor the
// texture's pitch. Size mismatches (one frame after a resize) copy what
// fits.
func blit(t *sdl.Texture, img *image.RGBA) error {
	data, pitch, err := t.Lock(nil)
	if err != nil {
		return err
	}
	defer t.Unlock()
	if pitch <= 0 {
		return nil
	}

	w := img.Bounds().Dx() * 4
	if w > pitch {
		w = pitch
	}
	rows := img.Bounds().Dy()
	if m := len(data) / pitch; rows > m {
		rows = m
	}
	for y := 0; y < rows; y++ {
		copy(data[y*pitch:y*pitch+w], img.Pix[y*img.Stride:])
	}
	return nil
}

func cloneRGBA(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	copy(out.Pix, img.Pix)
	return out
}

func main() {
	logger := bslogger.NewLogger("mandelview", bslogger.Normal, nil)

	window, renderer, err := sdlInit(windowTitle)
	if err != nil {
		logger.Fatal(err.Error())
	}
	defer sdlClose(window, renderer)

	schemes := palette.Default()
	state := initialState(windowWidth, windowHeight)

	rl := newRenderLoop()
	defer rl.stop()
	rl.request(state)

	texture, err := createTexture(renderer, state.resx, state.resy)
	if err != nil {
		logger.Fatal(err.Error())
	}
	defer func() { texture.Destroy() }()

	var (
		current        frame
		baseImg        *image.RGBA
		mouseX, mouseY int
		dragging       bool
		selecting      bool
		dragX, dragY   int
	)

	recolor := func() {
		if current.buf != nil {
			baseImg = palette.ImageFlipped(current.buf, schemes[state.scheme])
		}
	}
	save := func() {
		if current.buf == nil {
			return
		}
		// A failed save is reported but never ends the session.
		if err := imgio.SavePNG(outputFile, palette.Image(current.buf, schemes[state.scheme])); err != nil {
			logger.Error(err.Error())
			return
		}
		logger.Info("saved " + outputFile)
	}

	run := true
	for run {
		if e := sdl.WaitEventTimeout(30); e != nil {
			switch t := e.(type) {
			case *sdl.QuitEvent:
				run = false

			case *sdl.MouseMotionEvent:
				mouseX, mouseY = int(t.X), int(t.Y)

			case *sdl.MouseButtonEvent:
				switch {
				case t.Type == sdl.MOUSEBUTTONDOWN && t.Button == sdl.BUTTON_LEFT:
					dragging = true
					selecting = sdl.GetModState()&sdl.KMOD_SHIFT != 0
					dragX, dragY = int(t.X), int(t.Y)
				case t.Type == sdl.MOUSEBUTTONUP && dragging:
					dragging = false
					if selecting {
						state = update(state, selectRect{px0: dragX, py0: dragY, px1: int(t.X), py1: int(t.Y)})
					} else {
						state = update(state, dragPan{dx: int(t.X) - dragX, dy: int(t.Y) - dragY})
					}
					rl.request(state)
				}

			case *sdl.MouseWheelEvent:
				mx, my, _ := sdl.GetMouseState()
				state = update(state, zoomAt{px: int(mx), py: int(my), in: t.Y > 0})
				rl.request(state)

			case *sdl.KeyboardEvent:
				if t.Type != sdl.KEYDOWN {
					break
				}
				switch t.Keysym.Sym {
				case sdl.K_ESCAPE:
					run = false
				case sdl.K_r:
					state = update(state, resetView{})
					rl.request(state)
				case sdl.K_c:
					state = update(state, cycleScheme{n: len(schemes)})
					recolor()
				case sdl.K_f:
					save()
				case sdl.K_PERIOD:
					state = update(state, adjustIters{up: true})
					rl.request(state)
				case sdl.K_COMMA:
					state = update(state, adjustIters{up: false})
					rl.request(state)
				case sdl.K_PLUS, sdl.K_EQUALS, sdl.K_KP_PLUS:
					state = update(state, zoomCenter{in: true})
					rl.request(state)
				case sdl.K_MINUS, sdl.K_KP_MINUS:
					state = update(state, zoomCenter{in: false})
					rl.request(state)
				case sdl.K_UP:
					state = update(state, arrowPan{fy: arrowPanStep})
					rl.request(state)
				case sdl.K_DOWN:
					state = update(state, arrowPan{fy: -arrowPanStep})
					rl.request(state)
				case sdl.K_LEFT:
					state = update(state, arrowPan{fx: -arrowPanStep})
					rl.request(state)
				case sdl.K_RIGHT:
					state = update(state, arrowPan{fx: arrowPanStep})
					rl.request(state)
				}

			case *sdl.WindowEvent:
				if t.Event == sdl.WINDOWEVENT_SIZE_CHANGED && (int(t.Data1) != state.resx || int(t.Data2) != state.resy) {
					state = update(state, resize{w: int(t.Data1), h: int(t.Data2)})
					texture.Destroy()
					if texture, err = createTexture(renderer, state.resx, state.resy); err != nil {
						logger.Fatal(err.Error())
					}
					rl.request(state)
				}
			}
		}

		if f, ok := rl.poll(); ok {
			if f.err != nil {
				if !errors.Is(f.err, context.Canceled) {
					logger.Error(f.err.Error())
				}
			} else {
				current = f
				recolor()
			}
		}

		renderer.SetDrawColor(30, 30, 30, 255)
		renderer.Clear()
		if baseImg != nil {
			disp := cloneRGBA(baseImg)
			drawHUD(disp, state, mouseX, mouseY, schemes[state.scheme].Name())
			if blit(texture, disp) == nil {
				renderer.Copy(texture, nil, nil)
			}
		}
		if dragging && selecting {
			renderer.SetDrawColor(255, 255, 255, 255)
			renderer.DrawRect(&sdl.Rect{
				X: int32(min(dragX, mouseX)),
				Y: int32(min(dragY, mouseY)),
				W: int32(absInt(mouseX - dragX)),
				H: int32(absInt(mouseY - dragY)),
			})
		}
		renderer.Present()
	}
}
