package stub

import (
	"fmt"
	"io"

	"github.com/idilsaglam/finmetrics/internal/model"
)

// Placeholder is a named unit that marks where a section of the application
// was meant to live. Calling it only announces itself.
type Placeholder struct {
	Name string
	Fn   func(io.Writer) error
}

func announce(w io.Writer, name string) error {
	if _, err := fmt.Fprintf(w, "Executing %s\n", name); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func Main(w io.Writer) error             { return announce(w, "main") }
func RenderCalculator(w io.Writer) error { return announce(w, "render_calculator") }
func RenderEducation(w io.Writer) error  { return announce(w, "render_education") }
func RenderSimulator(w io.Writer) error  { return announce(w, "render_simulator") }

// Placeholders returns the registry in declaration order.
func Placeholders() []Placeholder {
	return []Placeholder{
		{Name: "main", Fn: Main},
		{Name: "render_calculator", Fn: RenderCalculator},
		{Name: "render_education", Fn: RenderEducation},
		{Name: "render_simulator", Fn: RenderSimulator},
	}
}

// Lookup finds a placeholder by name.
func Lookup(name string) (Placeholder, error) {
	for _, p := range Placeholders() {
		if p.Name == name {
			return p, nil
		}
	}
	return Placeholder{}, &model.OpError{
		Op:   "stub.lookup",
		Kind: model.KindNotFound,
		Err:  fmt.Errorf("unknown placeholder %q", name),
	}
}
