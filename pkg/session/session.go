/*
Package session drives one completion popup at a time on top of a suggest.ICompleter.

A Controller turns a trigger into a popup, moves the selection on key
presses and turns an accepted item into a suggest.Edit for the caller to
apply. A Guard refuses new triggers for a short delay after a popup was
created, so a burst of trigger events opens a single popup.

The controller is not safe for concurrent use; callers serialise events.
*/
package session

import (
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/codeserve/pkg/lang"
	"github.com/bastiangx/codeserve/pkg/suggest"
)

// DefaultPageSize is the number of rows a page key moves the selection by.
const DefaultPageSize = 8

// Options tunes a Controller. Zero values use the defaults.
type Options struct {
	GuardDelay time.Duration
	PageSize   int
}

func (o Options) normalize() Options {
	if o.GuardDelay <= 0 {
		o.GuardDelay = DefaultGuardDelay
	}
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	return o
}

// Document is the editor state a trigger is evaluated against.
type Document struct {
	Text     string
	Cursor   int
	Language lang.ID
}

// Popup is an open suggestion list.
type Popup struct {
	Request  suggest.Request
	Items    []suggest.Item
	Selected int
}

func (p *Popup) clone() *Popup {
	if p == nil {
		return nil
	}
	c := *p
	c.Items = slices.Clone(p.Items)
	return &c
}

// Key is a navigation key routed to an open popup.
type Key uint8

const (
	KeyOther Key = iota
	KeyDown
	KeyUp
	KeyPageDown
	KeyPageUp
	KeyEnter
	KeyTab
	KeyEscape
)

// Result reports what HandleKey did.
type Result struct {
	// Handled is false when the key should go to the editor instead.
	Handled bool
	// Edit is set when an item was accepted.
	Edit *suggest.Edit
	// Closed is true when the popup was closed by this key.
	Closed bool
}

// Controller owns the popup state and its re-entrancy guard.
type Controller struct {
	completer suggest.ICompleter
	opts      Options
	guard     Guard
	popup     *Popup
}

// NewController creates a controller with no open popup.
func NewController(completer suggest.ICompleter, opts Options) *Controller {
	opts = opts.normalize()
	return &Controller{
		completer: completer,
		opts:      opts,
		guard:     NewGuard(opts.GuardDelay),
	}
}

// Trigger starts a completion cycle for doc. It returns false without side
// effects while the guard is held. Once the guard has expired a trigger
// replaces an open popup, or closes it when there is nothing to suggest.
func (c *Controller) Trigger(doc Document, now time.Time) (*Popup, bool) {
	if c.guard.Held(now) {
		log.Debug("Completion trigger ignored, guard held")
		return nil, false
	}

	req, items := c.completer.CompleteAt(doc.Language, doc.Text, doc.Cursor)
	if len(items) == 0 {
		log.Debugf("No suggestions for %q", req.Prefix)
		c.close()
		return nil, false
	}

	if !c.guard.Acquire(now) {
		return nil, false
	}
	c.popup = &Popup{Request: req, Items: items}
	log.Debugf("Opened popup with %d items for %q", len(items), req.Prefix)
	return c.popup.clone(), true
}

// Open reports whether a popup is showing.
func (c *Controller) Open() bool {
	return c.popup != nil
}

// Popup returns a copy of the open popup, or nil.
func (c *Controller) Popup() *Popup {
	return c.popup.clone()
}

// Selected returns the highlighted item.
func (c *Controller) Selected() (suggest.Item, bool) {
	if c.popup == nil {
		return suggest.Item{}, false
	}
	return c.popup.Items[c.popup.Selected], true
}

// HandleKey routes a key to the open popup. With no popup every key is unhandled.
func (c *Controller) HandleKey(key Key) Result {
	if c.popup == nil {
		return Result{}
	}

	switch key {
	case KeyDown:
		c.move(1, true)
	case KeyUp:
		c.move(-1, true)
	case KeyPageDown:
		c.move(c.opts.PageSize, false)
	case KeyPageUp:
		c.move(-c.opts.PageSize, false)
	case KeyEnter, KeyTab:
		edit, _ := c.Accept()
		return Result{Handled: true, Edit: &edit, Closed: true}
	case KeyEscape:
		c.Dismiss()
		return Result{Handled: true, Closed: true}
	default:
		return Result{}
	}
	return Result{Handled: true}
}

func (c *Controller) move(delta int, wrap bool) {
	n := len(c.popup.Items)
	next := c.popup.Selected + delta
	if wrap {
		next = ((next % n) + n) % n
	} else {
		next = max(0, min(next, n-1))
	}
	c.popup.Selected = next
}

// Accept closes the popup and returns the edit for the selected item.
func (c *Controller) Accept() (suggest.Edit, bool) {
	item, ok := c.Selected()
	if !ok {
		return suggest.Edit{}, false
	}
	edit := suggest.Apply(c.popup.Request, item)
	c.close()
	return edit, true
}

// Dismiss closes the popup without editing.
func (c *Controller) Dismiss() {
	c.close()
}

func (c *Controller) close() {
	c.popup = nil
	c.guard.Release()
}
