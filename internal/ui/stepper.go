package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Stepper is a bounded integer control made of a decrement and an increment
// button. OnChanged fires only when the value actually changes.
type Stepper struct {
	widget.BaseWidget

	min, max, value int
	OnChanged       func(int)

	minus *widget.Button
	plus  *widget.Button
}

// NewStepper creates a stepper over [min, max] starting at value
func NewStepper(min, max, value int, onChanged func(int)) *Stepper {
	if max < min {
		max = min
	}

	s := &Stepper{min: min, max: max, OnChanged: onChanged}
	s.minus = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), s.Decrement)
	s.plus = widget.NewButtonWithIcon("", theme.ContentAddIcon(), s.Increment)
	s.value = s.clamp(value)
	s.updateButtons()
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget
func (s *Stepper) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewHBox(s.minus, s.plus))
}

// Value returns the current value
func (s *Stepper) Value() int {
	return s.value
}

// Min returns the lower bound
func (s *Stepper) Min() int {
	return s.min
}

// Max returns the upper bound
func (s *Stepper) Max() int {
	return s.max
}

// SetValue moves the stepper to value, clamped to its bounds, without firing
// OnChanged
func (s *Stepper) SetValue(value int) {
	s.value = s.clamp(value)
	s.updateButtons()
}

// SetMax changes the upper bound, re-clamping the current value without
// firing OnChanged
func (s *Stepper) SetMax(max int) {
	if max < s.min {
		max = s.min
	}
	s.max = max
	s.SetValue(s.value)
}

// SetLabels sets the text shown next to the decrement and increment icons
func (s *Stepper) SetLabels(previous, next string) {
	s.minus.SetText(previous)
	s.plus.SetText(next)
}

// Increment steps up by one
func (s *Stepper) Increment() {
	s.step(1)
}

// Decrement steps down by one
func (s *Stepper) Decrement() {
	s.step(-1)
}

func (s *Stepper) step(delta int) {
	next := s.clamp(s.value + delta)
	if next == s.value {
		return
	}

	s.value = next
	s.updateButtons()

	if s.OnChanged != nil {
		s.OnChanged(next)
	}
}

func (s *Stepper) clamp(value int) int {
	if value < s.min {
		return s.min
	}
	if value > s.max {
		return s.max
	}
	return value
}

func (s *Stepper) updateButtons() {
	if s.value <= s.min {
		s.minus.Disable()
	} else {
		s.minus.Enable()
	}

	if s.value >= s.max {
		s.plus.Disable()
	} else {
		s.plus.Enable()
	}
}
