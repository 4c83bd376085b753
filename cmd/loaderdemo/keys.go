package main

const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyUp       = "up"
	keyDown     = "down"
	keyJ        = "j"
	keyK        = "k"
)

func helpView() string {
	return styleHelp.Render("j/k: scroll log | q: quit")
}
