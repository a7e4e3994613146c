package generator

import (
	"fmt"
	"io"
	"strings"

	"github.com/toyz/geomtyper/internal/models"
)

// Options controls which sections are generated and how they are introduced
type Options struct {
	// Sections to emit, in output order. Empty means every section.
	Sections []Section

	// StreamHeader is the header the print section needs, e.g. "<sstream>".
	// When empty no include note is printed.
	StreamHeader string
}

// Fragment is one rendered section ready to be printed
type Fragment struct {
	Section Section
	Banners []string
	Body    string
}

// Generator turns an entry sequence into banner-delimited code fragments
type Generator struct {
	renderer FragmentRenderer
	options  Options
}

// NewGenerator creates a new fragment generator
func NewGenerator(renderer FragmentRenderer, options Options) *Generator {
	if len(options.Sections) == 0 {
		options.Sections = AllSections()
	}
	return &Generator{
		renderer: renderer,
		options:  options,
	}
}

// Render renders every selected section. It fails on the first pass error,
// returning no fragments.
func (g *Generator) Render(entries []models.Entry) ([]Fragment, error) {
	fragments := make([]Fragment, 0, len(g.options.Sections))

	for _, section := range g.options.Sections {
		body, err := g.renderSection(section, entries)
		if err != nil {
			return nil, fmt.Errorf("render %s section: %w", section, err)
		}

		banners := []string{section.Banner()}
		if section == SectionPrint && g.options.StreamHeader != "" {
			banners = append(banners, fmt.Sprintf("-- be sure to #include %s --", g.options.StreamHeader))
		}

		fragments = append(fragments, Fragment{
			Section: section,
			Banners: banners,
			Body:    body,
		})
	}
	return fragments, nil
}

// Generate renders every selected section and writes them to w.
// Nothing is written unless all sections render.
func (g *Generator) Generate(entries []models.Entry, w io.Writer) error {
	fragments, err := g.Render(entries)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, Format(fragments)); err != nil {
		return fmt.Errorf("write fragments: %w", err)
	}
	return nil
}

// Format joins fragments into the final text, banners first
func Format(fragments []Fragment) string {
	var b strings.Builder
	for _, f := range fragments {
		for _, banner := range f.Banners {
			b.WriteString(banner)
			b.WriteByte('\n')
		}
		b.WriteString(f.Body)
	}
	return b.String()
}

func (g *Generator) renderSection(section Section, entries []models.Entry) (string, error) {
	switch section {
	case SectionHeader:
		return g.renderer.RenderHeader(entries)
	case SectionInit:
		return g.renderer.RenderInit(entries)
	case SectionBody:
		return g.renderer.RenderUnits(entries)
	case SectionPrint:
		return g.renderer.RenderPrint(entries)
	default:
		return "", fmt.Errorf("unknown section %q", string(section))
	}
}
