package notifx

import (
	"sync"

	"github.com/osteele/liquid"
)

// TemplateRegistry renders Liquid templates. Named templates are registered
// up front, ad-hoc sources are parsed once and cached by their text.
type TemplateRegistry struct {
	engine *liquid.Engine

	mu     sync.RWMutex
	named  map[string]*liquid.Template
	byText map[string]*liquid.Template
}

// NewTemplateRegistry creates a new template registry.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		engine: liquid.NewEngine(),
		named:  make(map[string]*liquid.Template),
		byText: make(map[string]*liquid.Template),
	}
}

// Register parses and stores a template by name.
func (r *TemplateRegistry) Register(name, source string) error {
	tpl, err := r.engine.ParseString(source)
	if err != nil {
		return notifxErrors.NewWithCause(ErrTemplateParse, err).WithDetail("template", name)
	}

	r.mu.Lock()
	r.named[name] = tpl
	r.mu.Unlock()
	return nil
}

// Render executes a registered template.
func (r *TemplateRegistry) Render(name string, params map[string]string) (string, error) {
	r.mu.RLock()
	tpl, ok := r.named[name]
	r.mu.RUnlock()

	if !ok {
		return "", notifxErrors.New(ErrTemplateNotFound).WithDetail("template", name)
	}
	return r.execute(name, tpl, params)
}

// RenderString parses source (cached) and executes it with params.
func (r *TemplateRegistry) RenderString(source string, params map[string]string) (string, error) {
	r.mu.RLock()
	tpl, ok := r.byText[source]
	r.mu.RUnlock()

	if !ok {
		parsed, err := r.engine.ParseString(source)
		if err != nil {
			return "", notifxErrors.NewWithCause(ErrTemplateParse, err)
		}
		r.mu.Lock()
		r.byText[source] = parsed
		r.mu.Unlock()
		tpl = parsed
	}
	return r.execute("", tpl, params)
}

func (r *TemplateRegistry) execute(name string, tpl *liquid.Template, params map[string]string) (string, error) {
	bindings := make(liquid.Bindings, len(params))
	for k, v := range params {
		bindings[k] = v
	}

	out, err := tpl.RenderString(bindings)
	if err != nil {
		return "", notifxErrors.NewWithCause(ErrTemplateRender, err).WithDetail("template", name)
	}
	return out, nil
}
