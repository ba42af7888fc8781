// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package sdl

import (
	"io"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/prefs"
)

const windowTitle = "Gopher8"

// colours of lit and unlit pixels.
var (
	litColor   = sdl.Color{R: 0xe0, G: 0xe0, B: 0xd0, A: 0xff}
	unlitColor = sdl.Color{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
)

// Window implements the hardware.Display and hardware.Input interfaces.
type Window struct {
	Prefs *Preferences

	window   *sdl.Window
	renderer *sdl.Renderer

	// the most recently rendered pixels. used to redraw the window after it
	// has been resized or exposed
	pixels framebuffer.Pixels

	// rectangles for lit pixels. reused every render
	rects []sdl.Rect

	keys keypad.Keys
}

// NewWindow is the preferred method of initialisation for the Window type.
func NewWindow(p *Preferences) (*Window, error) {
	if p == nil {
		var err error
		p, err = NewPreferences()
		if err != nil {
			return nil, curated.Errorf("sdl: %v", err)
		}
	}

	wnd := &Window{
		Prefs: p,
		rects: make([]sdl.Rect, 0, framebuffer.Width*framebuffer.Height),
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	scale := int32(p.Scale.Get().(int))

	wnd.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		framebuffer.Width*scale, framebuffer.Height*scale,
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}

	wnd.renderer, err = sdl.CreateRenderer(wnd.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		_ = wnd.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}

	// window is resized whenever the scale preference changes
	p.Scale.SetHookPost(func(v prefs.Value) error {
		s := int32(v.(int))
		wnd.window.SetSize(framebuffer.Width*s, framebuffer.Height*s)
		return wnd.redraw()
	})

	logger.Logf(logger.Allow, "sdl", "window created (scale %d)", scale)

	return wnd, wnd.redraw()
}

// Destroy the window. Errors are written to output.
func (wnd *Window) Destroy(output io.Writer) {
	if err := wnd.renderer.Destroy(); err != nil {
		_, _ = output.Write([]byte(err.Error()))
	}
	if err := wnd.window.Destroy(); err != nil {
		_, _ = output.Write([]byte(err.Error()))
	}
	sdl.Quit()
}

// Render implements the hardware.Display interface.
func (wnd *Window) Render(px framebuffer.Pixels) error {
	wnd.pixels = px
	return wnd.redraw()
}

func (wnd *Window) redraw() error {
	scale := int32(wnd.Prefs.Scale.Get().(int))

	wnd.rects = wnd.rects[:0]
	for _, c := range wnd.pixels.Lit() {
		wnd.rects = append(wnd.rects, sdl.Rect{
			X: int32(c.X) * scale,
			Y: int32(c.Y) * scale,
			W: scale,
			H: scale,
		})
	}

	err := wnd.renderer.SetDrawColor(unlitColor.R, unlitColor.G, unlitColor.B, unlitColor.A)
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	err = wnd.renderer.Clear()
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	if len(wnd.rects) > 0 {
		err = wnd.renderer.SetDrawColor(litColor.R, litColor.G, litColor.B, litColor.A)
		if err != nil {
			return curated.Errorf("sdl: %v", err)
		}
		err = wnd.renderer.FillRects(wnd.rects)
		if err != nil {
			return curated.Errorf("sdl: %v", err)
		}
	}

	wnd.renderer.Present()

	return nil
}

// Poll implements the hardware.Input interface.
func (wnd *Window) Poll() (keypad.Keys, bool, error) {
	// all pending events are serviced. servicing a limited number of events
	// per frame would delay key presses and releases
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			logger.Log(logger.Allow, "sdl", "window closed")
			return wnd.keys, true, nil

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_EXPOSED {
				if err := wnd.redraw(); err != nil {
					return wnd.keys, false, err
				}
			}

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			if ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				if ev.Type == sdl.KEYDOWN {
					logger.Log(logger.Allow, "sdl", "escape pressed")
					return wnd.keys, true, nil
				}
				continue
			}

			if k, ok := keypadKey(ev.Keysym.Scancode); ok {
				wnd.keys.Set(k, ev.Type == sdl.KEYDOWN)
			}
		}
	}

	return wnd.keys, false, nil
}
