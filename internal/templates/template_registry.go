package templates

// Template names, one per render pass
const (
	HeaderTemplate = "header"
	InitTemplate   = "init"
	UnitsTemplate  = "units"
	PrintTemplate  = "print"
)

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerHeaderTemplates()
	registry.registerConstructorTemplates()
	registry.registerPrintTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	template, exists := tr.templates[name]
	return template, exists
}

// Set replaces or adds a template
func (tr *TemplateRegistry) Set(name, body string) {
	tr.templates[name] = body
}

// registerHeaderTemplates registers the class member declarations
func (tr *TemplateRegistry) registerHeaderTemplates() {
	tr.templates[HeaderTemplate] = `{{range .Entries}}{{if .Const}}const {{end}}{{.Type}} {{.Name}};
{{end}}`
}

// registerConstructorTemplates registers the initializer list and constructor body
func (tr *TemplateRegistry) registerConstructorTemplates() {
	tr.templates[InitTemplate] = `{{range .Entries}}{{.Name}}( {{.Read}} {{if .Scaled}}* {{.Unit}}{{end}}),
{{end}}`

	tr.templates[UnitsTemplate] = `{{range .Entries}}{{if .ScaleVector}}for (auto& entry : {{.Name}} ) { entry *= {{.Unit}}; }
{{end}}{{end}}`
}

// registerPrintTemplates registers the print method body
func (tr *TemplateRegistry) registerPrintTemplates() {
	tr.templates[PrintTemplate] = `{{.StreamType}} {{.StreamName}};
{{range .Entries}}{{if .IsVector}}{{$.StreamName}} << "  {{.Name}}= "; for (auto entry : {{.Name}}) { {{$.StreamName}} << " " << entry; }; {{$.StreamName}} << "\n";
{{else}}{{$.StreamName}} << "  {{.Name}}=" << {{.Name}} << "\n";
{{end}}{{end}}{{.LogSink}}("{{.Category}}") << {{.StreamName}}.str();
`
}
