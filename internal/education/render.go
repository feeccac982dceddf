package education

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// Renderer turns topic Markdown into styled terminal text.
type Renderer struct {
	tr  *glamour.TermRenderer
	raw bool
}

// RenderOptions selects the glamour style. Style "" picks one from the
// terminal background; "notty" produces plain text.
type RenderOptions struct {
	Style string
	Width int
	Raw   bool
}

func NewRenderer(opts RenderOptions) (*Renderer, error) {
	if opts.Raw {
		return &Renderer{raw: true}, nil
	}
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	styleOpt := glamour.WithAutoStyle()
	if opts.Style != "" {
		styleOpt = glamour.WithStandardStyle(opts.Style)
	}
	tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}
	return &Renderer{tr: tr}, nil
}

// Render returns the styled text for a topic.
func (r *Renderer) Render(id string, in Inputs) (string, error) {
	md, err := Markdown(id, in)
	if err != nil {
		return "", err
	}
	if r.raw {
		return md, nil
	}
	out, err := r.tr.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// Write renders a topic to w.
func (r *Renderer) Write(w io.Writer, id string, in Inputs) error {
	out, err := r.Render(id, in)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
