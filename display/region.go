// Package display holds the region of the page where submission outcomes are shown.
package display

import (
	"bytes"
	"html/template"
	"strings"
	"sync"
)

// DownloadLabel is the text of the link rendered for a compressed file.
const DownloadLabel = "Download Compressed File"

// Kind distinguishes the elements a region can hold.
type Kind int

const (
	Paragraph Kind = iota
	Link
)

// Element is one rendered node of the region.
type Element struct {
	Kind     Kind
	Text     string
	Href     string
	Error    bool
	Download bool
}

// Region is the display area. Content is replaced as a whole on every
// render, so with overlapping submissions the last one to resolve wins.
type Region struct {
	mu       sync.RWMutex
	elements []Element
}

func NewRegion() *Region {
	return &Region{}
}

// Replace swaps the region content for elems.
func (r *Region) Replace(elems ...Element) {
	cp := make([]Element, len(elems))
	copy(cp, elems)

	r.mu.Lock()
	r.elements = cp
	r.mu.Unlock()
}

// Elements returns a copy of the current content.
func (r *Region) Elements() []Element {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Element, len(r.elements))
	copy(out, r.elements)
	return out
}

// Links returns the link elements currently shown.
func (r *Region) Links() []Element {
	var links []Element
	for _, e := range r.Elements() {
		if e.Kind == Link {
			links = append(links, e)
		}
	}
	return links
}

var fragment = template.Must(template.New("region").Parse(
	`{{range .}}{{if eq .Kind 1}}` +
		`{{if .Download}}<a href="{{.Href}}" download>{{.Text}}</a>{{else}}<a href="{{.Href}}">{{.Text}}</a>{{end}}` +
		`{{else if .Error}}<p style="color: red;">{{.Text}}</p>` +
		`{{else}}<p>{{.Text}}</p>{{end}}{{end}}`))

// HTML renders the region as an escaped HTML fragment.
func (r *Region) HTML() template.HTML {
	var buf bytes.Buffer
	// the template only ranges over plain fields; execution cannot fail on a bytes.Buffer
	_ = fragment.Execute(&buf, r.Elements())
	return template.HTML(buf.String())
}

// Text renders the region for a terminal, one element per line.
func (r *Region) Text() string {
	var sb strings.Builder
	for _, e := range r.Elements() {
		switch {
		case e.Kind == Link:
			sb.WriteString(e.Text + ": " + e.Href)
		case e.Error:
			sb.WriteString("! " + e.Text)
		default:
			sb.WriteString(e.Text)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
