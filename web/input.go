package web

import (
	"github.com/gopherjs/gopherjs/js"
)

// Key codes handled by the page.
const (
	KeyEsc = 27
	KeyF   = 70
	KeyM   = 77
	KeyP   = 80
	KeyF10 = 121
)

// Action is what a key press does.
type Action int

const (
	ActionNone Action = iota
	ActionPause
	ActionFullscreen
	ActionStats
	ActionToggleMode
)

// KeyMap maps alternative keys to canonical key codes.
var KeyMap = map[int]int{
	KeyEsc: KeyP,
}

// TranslateKeyCode converts alternative key codes to canonical control codes.
func TranslateKeyCode(keyCode int) int {
	if mapped, ok := KeyMap[keyCode]; ok {
		return mapped
	}
	return keyCode
}

// KeyAction returns the action bound to a raw key code.
func KeyAction(rawKeyCode int) Action {
	switch TranslateKeyCode(rawKeyCode) {
	case KeyP:
		return ActionPause
	case KeyF:
		return ActionFullscreen
	case KeyF10:
		return ActionStats
	case KeyM:
		return ActionToggleMode
	}
	return ActionNone
}

// isEditable reports whether key events target a form field that should
// keep its own keys.
func isEditable(target *js.Object) bool {
	if !present(target) || !present(target.Get("tagName")) {
		return false
	}
	switch target.Get("tagName").String() {
	case "INPUT":
		return target.Get("type").String() != "range"
	case "TEXTAREA":
		return true
	}
	return false
}

// SetupInputHandlers installs the keyboard and page visibility handlers.
func (a *App) SetupInputHandlers() {
	document().Call("addEventListener", "keydown", func(event *js.Object) {
		if isEditable(event.Get("target")) {
			return
		}
		action := KeyAction(event.Get("keyCode").Int())
		if action == ActionNone {
			return
		}
		event.Call("preventDefault")
		a.Do(action)
	})

	// Stop drawing while the page is hidden and resume on return, unless the
	// user paused.
	document().Call("addEventListener", "visibilitychange", func(*js.Object) {
		if document().Get("hidden").Bool() {
			a.Animator.Stop()
			return
		}
		if !a.Paused {
			a.Animator.Start()
		}
	})
}

// Do performs a keyboard action.
func (a *App) Do(action Action) {
	switch action {
	case ActionPause:
		a.Paused = !a.Paused
		if a.Paused {
			a.Animator.Stop()
		} else {
			a.Animator.Start()
		}
		Debug("paused:", a.Paused)
	case ActionFullscreen:
		requestFullscreen(a.fullscreenTarget())
	case ActionStats:
		if a.Stats != nil {
			a.Stats.Toggle()
		}
	case ActionToggleMode:
		a.Controls.ToggleMode()
	}
}

func (a *App) fullscreenTarget() *js.Object {
	if el := byID("crt-wrap"); el != nil {
		return el
	}
	return a.Face.El
}

func requestFullscreen(el *js.Object) {
	for _, method := range []string{"requestFullscreen", "webkitRequestFullscreen", "mozRequestFullScreen"} {
		if present(el.Get(method)) {
			el.Call(method)
			return
		}
	}
	DebugWarn("fullscreen not supported")
}
