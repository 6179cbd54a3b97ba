// Package mouse maps terminal mouse events onto rectangular hit regions.
package mouse

import tea "github.com/charmbracelet/bubbletea"

// Rect is a screen rectangle. Width and height are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named hit target.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds regions for the current frame. Regions added later sit on
// top of earlier ones.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region.
func (hm *HitMap) AddRect(id string, x, y, w, h int, data any) {
	hm.regions = append(hm.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h}, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			return &hm.regions[i]
		}
	}
	return nil
}

// Regions returns the registered regions in insertion order.
func (hm *HitMap) Regions() []Region {
	return hm.regions
}

// Clear removes every region. Call before re-rendering.
func (hm *HitMap) Clear() {
	hm.regions = hm.regions[:0]
}

// ActionType classifies a mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
)

// Action is the result of HandleMouse.
type Action struct {
	Type   ActionType
	Region *Region // nil when the pointer is over no region
	X, Y   int
}

// Handler turns tea.MouseMsg values into Actions against its HitMap.
type Handler struct {
	HitMap *HitMap
}

// NewHandler returns a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HandleMouse classifies msg and resolves the region under the pointer.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	action := Action{X: msg.X, Y: msg.Y, Region: h.HitMap.Test(msg.X, msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			action.Type = ActionClick
		case tea.MouseButtonWheelUp:
			action.Type = ActionScrollUp
		case tea.MouseButtonWheelDown:
			action.Type = ActionScrollDown
		}
	case tea.MouseActionMotion:
		action.Type = ActionHover
	}
	return action
}

// Clear drops all regions.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}
