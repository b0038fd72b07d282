package editor

import (
	"slices"

	"github.com/google/uuid"
)

// Pane is one editor pane: an ordered list of file tabs with one active tab.
// Its handle identifies the pane to the layout core but is reissued when the
// surrounding structure collapses, mirroring hosts whose window objects do
// not survive an unsplit.
type Pane struct {
	handle string
	tabs   []string
	active int
}

func newPane(tabs ...string) *Pane {
	return &Pane{handle: uuid.New().String(), tabs: tabs}
}

// Handle returns the pane's current identifier.
func (p *Pane) Handle() string { return p.handle }

// Tabs returns the open file names in tab order.
func (p *Pane) Tabs() []string { return slices.Clone(p.tabs) }

// TabCount returns the number of open tabs.
func (p *Pane) TabCount() int { return len(p.tabs) }

// ActiveTab returns the file name of the active tab, or "" for an empty pane.
func (p *Pane) ActiveTab() string {
	if p.active < 0 || p.active >= len(p.tabs) {
		return ""
	}
	return p.tabs[p.active]
}

// ActiveIndex returns the index of the active tab.
func (p *Pane) ActiveIndex() int { return p.active }

func (p *Pane) reissueHandle() { p.handle = uuid.New().String() }

// addTab opens file in the pane and makes it active. An already open file is
// only activated.
func (p *Pane) addTab(file string) {
	if i := slices.Index(p.tabs, file); i >= 0 {
		p.active = i
		return
	}
	p.tabs = append(p.tabs, file)
	p.active = len(p.tabs) - 1
}

// removeTab closes file if it is open and reports whether the pane is empty
// afterwards.
func (p *Pane) removeTab(file string) bool {
	if i := slices.Index(p.tabs, file); i >= 0 {
		p.tabs = slices.Delete(p.tabs, i, i+1)
		if p.active >= len(p.tabs) {
			p.active = len(p.tabs) - 1
		}
	}
	return len(p.tabs) == 0
}

func (p *Pane) nextTab() {
	if len(p.tabs) > 0 {
		p.active = (p.active + 1) % len(p.tabs)
	}
}

func (p *Pane) prevTab() {
	if len(p.tabs) > 0 {
		p.active = (p.active - 1 + len(p.tabs)) % len(p.tabs)
	}
}
