package blocks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// RenderFunc writes the read-only representation of a block.
type RenderFunc func(w io.Writer, block Block) error

// DefaultFactory produces a payload sufficient to render immediately with no
// further input.
type DefaultFactory func() BlockData

// Registry maps every member of the type enumeration to a default-data
// factory and a renderer. It is a total function over the enumeration: any
// tag without an explicit entry resolves to a labeled placeholder rather than
// an error. Adding a block type means one enum case, one default entry, and
// one renderer registration; nothing else special-cases individual types.
type Registry struct {
	mu        sync.RWMutex
	defaults  map[Type]DefaultFactory
	renderers map[Type]RenderFunc
	schemas   map[Type]*jsonschema.Schema
}

// NewRegistry constructs a registry pre-seeded with default payloads for the
// whole enumeration.
func NewRegistry() *Registry {
	r := &Registry{
		defaults:  make(map[Type]DefaultFactory),
		renderers: make(map[Type]RenderFunc),
		schemas:   make(map[Type]*jsonschema.Schema),
	}
	seedDefaults(r)
	return r
}

// RegisterDefault overrides the default payload factory for a type.
func (r *Registry) RegisterDefault(t Type, factory DefaultFactory) {
	if r == nil || factory == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaults[t] = factory
}

// RegisterRenderer installs the rendering component for a type.
func (r *Registry) RegisterRenderer(t Type, fn RenderFunc) {
	if r == nil || fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[t] = fn
}

// RegisterSchema compiles and stores a JSON Schema used to validate payloads
// of the given type. Validation is advisory: the mutation engine never
// consults it, widgets do.
func (r *Registry) RegisterSchema(t Type, schemaJSON string) error {
	if r == nil {
		return fmt.Errorf("blocks: nil registry")
	}
	compiler := jsonschema.NewCompiler()
	resource := fmt.Sprintf("newsroom://blocks/%s.schema.json", t)
	if err := compiler.AddResource(resource, strings.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("blocks: add schema for %s: %w", t, err)
	}
	schema, err := compiler.Compile(resource)
	if err != nil {
		return fmt.Errorf("blocks: compile schema for %s: %w", t, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[t] = schema
	return nil
}

// DefaultData returns a renderable default payload for the tag. Unknown tags
// yield an UnknownData payload which renders as a placeholder.
func (r *Registry) DefaultData(t Type) BlockData {
	if r == nil {
		return UnknownData{Tag: t}
	}
	r.mu.RLock()
	factory, ok := r.defaults[t]
	r.mu.RUnlock()
	if !ok {
		return UnknownData{Tag: t}
	}
	return factory()
}

// Renderer resolves the rendering component for the tag, falling back to the
// placeholder renderer for unknown or not-yet-implemented types.
func (r *Registry) Renderer(t Type) RenderFunc {
	if r == nil {
		return PlaceholderRenderer(t)
	}
	r.mu.RLock()
	fn, ok := r.renderers[t]
	r.mu.RUnlock()
	if !ok {
		return PlaceholderRenderer(t)
	}
	return fn
}

// ValidateData checks a payload against the registered schema for its type.
// Types without a schema always pass.
func (r *Registry) ValidateData(data BlockData) error {
	if r == nil || data == nil {
		return nil
	}
	r.mu.RLock()
	schema, ok := r.schemas[data.BlockType()]
	r.mu.RUnlock()
	if !ok {
		return nil
	}

	raw, err := EncodeData(data)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("blocks: %s payload invalid: %w", data.BlockType(), err)
	}
	return nil
}

// PlaceholderRenderer renders a clearly labeled stand-in for tags the
// renderer path does not implement. It never fails.
func PlaceholderRenderer(t Type) RenderFunc {
	return func(w io.Writer, _ Block) error {
		var buf bytes.Buffer
		buf.WriteString(`<div class="block-placeholder" data-block-type="`)
		buf.WriteString(html.EscapeString(string(t)))
		buf.WriteString(`">Block type &quot;`)
		buf.WriteString(html.EscapeString(string(t)))
		buf.WriteString(`&quot; is not available yet.</div>`)
		_, err := w.Write(buf.Bytes())
		return err
	}
}
