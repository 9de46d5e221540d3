package hint

import (
	"fmt"

	"loglens/internal/browser"
)

// DefaultLabel is the text of the annotation button.
const DefaultLabel = "DataDog"

// DefaultPadding is the spacer rendered before the button.
const DefaultPadding = "    "

// Icon names the glyph a renderer shows with the label.
type Icon string

// IconInformation is the general information glyph.
const IconInformation Icon = "general/information"

// Descriptor is one ready-to-render annotation.
type Descriptor struct {
	Offset  int
	Label   string
	Icon    Icon
	Padding string
	Link    string
	// OnActivate opens Link. It never panics and never returns an error;
	// launch failures go to the planner's ReportFunc.
	OnActivate func()
}

// ReportFunc receives failures that an activation swallowed.
type ReportFunc func(link string, err error)

// Planner turns accepted candidates into descriptors.
type Planner struct {
	Label   string
	Icon    Icon
	Padding string
	Opener  browser.Opener
	Report  ReportFunc
}

// Plan anchors an annotation at the start of the node's last child.
// It returns false when the node has no children.
func (p Planner) Plan(c Candidate, link string) (Descriptor, bool) {
	if !c.Accepted || c.Node == nil {
		return Descriptor{}, false
	}
	last := c.Node.LastChild()
	if last == nil {
		return Descriptor{}, false
	}
	label := p.Label
	if label == "" {
		label = DefaultLabel
	}
	icon := p.Icon
	if icon == "" {
		icon = IconInformation
	}
	return Descriptor{
		Offset:     last.Offset(),
		Label:      label,
		Icon:       icon,
		Padding:    p.Padding,
		Link:       link,
		OnActivate: p.activation(link),
	}, true
}

func (p Planner) activation(link string) func() {
	opener := p.Opener
	report := p.Report
	return func() {
		if err := openGuarded(opener, link); err != nil && report != nil {
			report(link, err)
		}
	}
}

// openGuarded turns a panicking opener into an error.
func openGuarded(opener browser.Opener, link string) (err error) {
	if opener == nil {
		return fmt.Errorf("open %s: no browser configured", link)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("open %s: %v", link, r)
		}
	}()
	return opener.Open(link)
}
