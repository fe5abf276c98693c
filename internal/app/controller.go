// Package app holds the wheel's state and the commands that act on it.
// Every front end (interactive screen, subcommands) goes through a
// Controller so item changes are always persisted the same way.
package app

import (
	"fmt"
	"image"
	"time"

	"github.com/idilsaglam/spinwheel/internal/log"
	"github.com/idilsaglam/spinwheel/internal/model"
	"github.com/idilsaglam/spinwheel/internal/spin"
	"github.com/idilsaglam/spinwheel/internal/ui"
	"github.com/idilsaglam/spinwheel/internal/wheel"
)

// Status texts shown under the wheel.
const (
	PromptText   = "Add some values and spin the wheel!"
	SpinningText = "Spinning..."
)

// Store persists the ordered labels.
type Store interface {
	Load() ([]string, error)
	Save(labels []string) error
}

// Status is the one-line result region.
type Status struct {
	Text  string
	Color string // hex
}

// Controller owns the item list, the animator and the status line.
type Controller struct {
	store   Store
	items   *model.List
	anim    *spin.Animator
	palette wheel.Palette
	status  Status
	winner  *wheel.Result
}

// Options tune a new controller. Zero values pick defaults.
type Options struct {
	Palette  wheel.Palette
	Animator *spin.Animator
}

// New loads the persisted items and returns an idle controller.
func New(store Store, opt Options) (*Controller, error) {
	labels, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	c := &Controller{
		store:   store,
		items:   model.FromLabels(labels),
		anim:    opt.Animator,
		palette: opt.Palette,
		status:  Status{Text: PromptText, Color: ui.Neutral},
	}
	if c.anim == nil {
		c.anim = spin.New()
	}
	if c.palette.Len() == 0 {
		c.palette = wheel.DefaultPalette()
	}
	log.Debug("loaded %d items", c.items.Len())
	return c, nil
}

// Add appends a label. It reports false, without error, for blank or
// duplicate labels.
func (c *Controller) Add(label string) (bool, error) {
	if !c.items.Add(label) {
		log.Debug("add ignored: %q", label)
		return false, nil
	}
	return true, c.persist("add")
}

// Remove deletes the item at index i.
func (c *Controller) Remove(i int) (bool, error) {
	if !c.items.Remove(i) {
		return false, nil
	}
	return true, c.persist("remove")
}

// Clear empties the list when confirmed; otherwise nothing changes.
func (c *Controller) Clear(confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}
	c.items.Clear()
	c.winner = nil
	c.status = Status{Text: PromptText, Color: ui.Neutral}
	return true, c.persist("clear")
}

func (c *Controller) persist(op string) error {
	if err := c.store.Save(c.items.Labels()); err != nil {
		return fmt.Errorf("save after %s: %w", op, err)
	}
	log.Debug("%s: persisted %d items", op, c.items.Len())
	return nil
}

// Spin starts a spin at now. It is a no-op (false) with no items or while a
// spin is already running.
func (c *Controller) Spin(now time.Time) bool {
	if !c.anim.Start(now, c.items.Len()) {
		return false
	}
	c.winner = nil
	c.status = Status{Text: SpinningText, Color: ui.Neutral}
	s, _ := c.anim.Session()
	log.Debug("spin: %.3f -> %.3f rad", s.Initial, s.Target)
	return true
}

// Tick advances a running spin to now and reports whether it has finished.
// On the finishing tick the winner is resolved into the status line.
func (c *Controller) Tick(now time.Time) bool {
	if !c.anim.Spinning() {
		return true
	}
	rot, done := c.anim.Step(now)
	if !done {
		return false
	}
	if res, ok := wheel.Resolve(c.items.Labels(), rot, c.palette); ok {
		c.winner = &res
		c.status = Status{Text: "Selected: " + res.Label, Color: res.Hex}
		log.Info("selected %q (index %d)", res.Label, res.Index)
	} else {
		// every item was removed mid-spin
		c.status = Status{Text: PromptText, Color: ui.Neutral}
	}
	return true
}

// RunSpin performs a whole spin on a virtual clock stepped at the frame
// interval, for callers with no screen to animate.
func (c *Controller) RunSpin(now time.Time) (wheel.Result, bool) {
	if !c.Spin(now) {
		return wheel.Result{}, false
	}
	for !c.Tick(now) {
		now = now.Add(spin.FrameInterval)
	}
	return c.Winner()
}

// Winner is the result of the last completed spin.
func (c *Controller) Winner() (wheel.Result, bool) {
	if c.winner == nil {
		return wheel.Result{}, false
	}
	return *c.winner, true
}

func (c *Controller) Items() []string        { return c.items.Labels() }
func (c *Controller) Len() int               { return c.items.Len() }
func (c *Controller) Rotation() float64      { return c.anim.Rotation }
func (c *Controller) Spinning() bool         { return c.anim.Spinning() }
func (c *Controller) Status() Status         { return c.status }
func (c *Controller) Palette() wheel.Palette { return c.palette }

// SetRotation places the wheel while idle; ignored during a spin.
func (c *Controller) SetRotation(r float64) {
	if !c.anim.Spinning() {
		c.anim.Rotation = r
	}
}

// Render paints the wheel at the current rotation.
func (c *Controller) Render(st wheel.Style) *image.RGBA {
	st.Palette = c.palette
	return wheel.Render(c.items.Labels(), c.anim.Rotation, st)
}
