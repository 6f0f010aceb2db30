package ui

import (
	"image"
	"strconv"

	"lifegame/internal/session"
)

// Action identifies what a panel button does.
type Action int

const (
	ActionTogglePlay Action = iota
	ActionStep
	ActionClear
	ActionRandom
	ActionNoise
	ActionPattern
)

// Button is one clickable row of the side panel.
type Button struct {
	Label   string
	Action  Action
	Pattern int // catalog index for ActionPattern
	Rect    image.Rectangle
}

const (
	panelPadding = 12
	lineHeight   = 16
	buttonHeight = 22
	buttonGap    = 6
	statusLines  = 3
	sectionGap   = 14
)

// controlsTop is the y offset of the first button, below the status text.
const controlsTop = panelPadding + statusLines*lineHeight + sectionGap

// Layout positions the panel buttons for a panel of the given width. The
// first button's label follows the run state.
func Layout(width int, running bool, patterns []string) []Button {
	play := "Start"
	if running {
		play = "Pause"
	}
	buttons := []Button{
		{Label: play, Action: ActionTogglePlay},
		{Label: "Step", Action: ActionStep},
		{Label: "Reset", Action: ActionClear},
		{Label: "Random", Action: ActionRandom},
		{Label: "Noise", Action: ActionNoise},
	}
	for i, name := range patterns {
		buttons = append(buttons, Button{Label: name, Action: ActionPattern, Pattern: i})
	}
	y := controlsTop
	for i := range buttons {
		if buttons[i].Action == ActionPattern && buttons[i].Pattern == 0 {
			y += sectionGap + lineHeight
		}
		buttons[i].Rect = image.Rect(panelPadding, y, width-panelPadding, y+buttonHeight)
		y += buttonHeight + buttonGap
	}
	return buttons
}

// PatternsHeaderY returns the baseline of the "Patterns" heading, or -1 when
// there are no pattern buttons.
func PatternsHeaderY(buttons []Button) int {
	for _, b := range buttons {
		if b.Action == ActionPattern {
			return b.Rect.Min.Y - buttonGap
		}
	}
	return -1
}

// Hit returns the button under (x, y), in panel coordinates.
func Hit(buttons []Button, x, y int) (Button, bool) {
	p := image.Pt(x, y)
	for _, b := range buttons {
		if p.In(b.Rect) {
			return b, true
		}
	}
	return Button{}, false
}

// Perform runs the button's action against the session.
func Perform(s *session.Session, b Button) error {
	switch b.Action {
	case ActionTogglePlay:
		s.TogglePlay()
	case ActionStep:
		s.StepOnce()
	case ActionClear:
		s.Clear()
	case ActionRandom:
		return s.Randomize()
	case ActionNoise:
		return s.RandomizeNoise()
	case ActionPattern:
		return s.ApplyPatternAt(b.Pattern)
	}
	return nil
}

// StatusLines returns the text shown above the buttons.
func StatusLines(st session.Status) []string {
	state := "Paused"
	if st.Running {
		state = "Running"
	}
	return []string{
		state,
		"Generation " + strconv.FormatUint(st.Generation, 10),
		"Population " + strconv.Itoa(st.Population),
	}
}
