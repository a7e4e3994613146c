package templates

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/toyz/geomtyper/internal/config"
	"github.com/toyz/geomtyper/internal/models"
)

// Renderer runs the four render passes over an entry sequence.
// Every pass is read-only and may be called in any order.
type Renderer struct {
	dialect  config.Dialect
	category string
	registry *TemplateRegistry
	readExpr *template.Template
}

// NewRenderer creates a renderer for the given configuration
func NewRenderer(cfg *config.Config) (*Renderer, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	readExpr, err := template.New("read_expr").Option("missingkey=error").Parse(cfg.Dialect.ReadExpr)
	if err != nil {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeConfiguration,
			Message: "invalid read expression",
			Cause:   err,
		}
	}

	return &Renderer{
		dialect:  cfg.Dialect,
		category: cfg.Category,
		registry: NewTemplateRegistry(),
		readExpr: readExpr,
	}, nil
}

// Registry exposes the pass templates so callers can override them
func (r *Renderer) Registry() *TemplateRegistry {
	return r.registry
}

// RenderHeader renders the class member declarations
func (r *Renderer) RenderHeader(entries []models.Entry) (string, error) {
	return r.render(HeaderTemplate, entries)
}

// RenderInit renders the constructor initializer list entries
func (r *Renderer) RenderInit(entries []models.Entry) (string, error) {
	return r.render(InitTemplate, entries)
}

// RenderUnits renders the constructor body statements scaling vectors by their unit
func (r *Renderer) RenderUnits(entries []models.Entry) (string, error) {
	return r.render(UnitsTemplate, entries)
}

// RenderPrint renders the print method body, from accumulator to log flush
func (r *Renderer) RenderPrint(entries []models.Entry) (string, error) {
	return r.render(PrintTemplate, entries)
}

func (r *Renderer) render(name string, entries []models.Entry) (string, error) {
	body, ok := r.registry.Get(name)
	if !ok {
		return "", &models.GeneratorError{
			Type:    models.ErrorTypeGeneration,
			Message: fmt.Sprintf("no template registered for %s pass", name),
		}
	}

	data, err := r.passData(entries)
	if err != nil {
		return "", err
	}

	out, err := executeTemplate(name, body, data)
	if err != nil {
		return "", &models.GeneratorError{
			Type:    models.ErrorTypeGeneration,
			Message: fmt.Sprintf("%s pass failed", name),
			Cause:   err,
		}
	}
	return out, nil
}

func (r *Renderer) passData(entries []models.Entry) (PassData, error) {
	data := PassData{
		Entries:    make([]EntryData, 0, len(entries)),
		StreamType: r.dialect.StreamType,
		StreamName: r.dialect.StreamName,
		LogSink:    r.dialect.LogSink,
		Category:   r.category,
	}

	for _, e := range entries {
		typeName := r.dialect.TypeName(e.Type)

		var read bytes.Buffer
		if err := r.readExpr.Execute(&read, readData{Name: e.Name, Type: typeName, Unit: e.Unit}); err != nil {
			return PassData{}, &models.GeneratorError{
				Type:    models.ErrorTypeGeneration,
				Line:    e.Line,
				Message: fmt.Sprintf("cannot render read expression for %q", e.Name),
				Cause:   err,
			}
		}

		data.Entries = append(data.Entries, EntryData{
			Name:        e.Name,
			Type:        typeName,
			Unit:        e.Unit,
			Read:        read.String(),
			Const:       IsConst(e),
			Scaled:      ScalesInInitializer(e),
			ScaleVector: ScalesVector(e),
			IsVector:    e.IsVector(),
		})
	}
	return data, nil
}

// executeTemplate executes a Go template with the given data
func executeTemplate(name, templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}
