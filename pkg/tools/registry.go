package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/models"
)

// Tool is the runtime contract. RunStream returns immediately with a channel
// the implementation closes when the run is over; the runner applies the
// timeout, retry, and cancellation policies around it. Implementations stop
// promptly when ctx is cancelled.
type Tool interface {
	Metadata() Metadata
	RunStream(ctx context.Context, args map[string]any, rtc *RuntimeContext) <-chan Event
}

type registeredTool struct {
	tool     Tool
	meta     Metadata
	schema   *jsonschema.Schema // nil when the tool declares no input schema
	disabled bool
}

// Registry is the single source of truth for which tools exist and which
// plan types may select them. Config overrides are applied at registration.
type Registry struct {
	mu        sync.RWMutex
	tools     map[string]*registeredTool
	overrides map[string]config.ToolOverride
}

// NewRegistry creates an empty registry. cfg may be nil.
func NewRegistry(cfg *config.ToolsConfig) *Registry {
	r := &Registry{tools: make(map[string]*registeredTool)}
	if cfg != nil {
		r.overrides = cfg.Overrides
	}
	return r
}

// Register adds a tool, applying any config override for its name and
// compiling its input schema. Registering a duplicate name is an error.
func (r *Registry) Register(tool Tool) error {
	meta := tool.Metadata()
	if err := meta.validate(); err != nil {
		return err
	}
	if meta.ObservationPolicy == "" {
		meta.ObservationPolicy = ObserveOnTrigger
	}

	disabled := false
	if ov, ok := r.overrides[meta.Name]; ok {
		if ov.TimeoutSeconds != nil {
			meta.TimeoutSeconds = *ov.TimeoutSeconds
		}
		if ov.MaxRetries != nil {
			meta.MaxRetries = *ov.MaxRetries
		}
		if ov.Idempotent != nil {
			meta.Idempotent = *ov.Idempotent
		}
		if ov.Disabled != nil {
			disabled = *ov.Disabled
		}
	}

	var schema *jsonschema.Schema
	if meta.InputSchema != "" {
		compiled, err := compileSchema(meta.Name, meta.InputSchema)
		if err != nil {
			return fmt.Errorf("tool %q: %w", meta.Name, err)
		}
		schema = compiled
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[meta.Name]; exists {
		return fmt.Errorf("tool %q is already registered", meta.Name)
	}
	r.tools[meta.Name] = &registeredTool{
		tool:     tool,
		meta:     meta,
		schema:   schema,
		disabled: disabled,
	}
	return nil
}

func compileSchema(name, schemaJSON string) (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal([]byte(schemaJSON), &doc); err != nil {
		return nil, fmt.Errorf("unmarshal input schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	resource := name + ".schema.json"
	if err := c.AddResource(resource, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := c.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("compile input schema: %w", err)
	}
	return schema, nil
}

// Get returns a registered, enabled tool with its effective metadata.
func (r *Registry) Get(name string) (Tool, Metadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rt, ok := r.tools[name]
	if !ok || rt.disabled {
		return nil, Metadata{}, fmt.Errorf("tool %q is not registered", name)
	}
	return rt.tool, rt.meta, nil
}

// CatalogForPlanType returns the descriptors the planner sees for a plan
// type, deduplicated by name and sorted for stable prompts.
func (r *Registry) CatalogForPlanType(pt models.PlanType) []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byName := make(map[string]Descriptor)
	for name, rt := range r.tools {
		if rt.disabled || !rt.meta.Category.Allows(pt) {
			continue
		}
		byName[name] = rt.meta.descriptor()
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	catalog := make([]Descriptor, 0, len(names))
	for _, name := range names {
		catalog = append(catalog, byName[name])
	}
	return catalog
}

// ValidateToolForPlanType reports whether the named tool exists, is enabled,
// and may be selected by the given plan type.
func (r *Registry) ValidateToolForPlanType(name string, pt models.PlanType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rt, ok := r.tools[name]
	return ok && !rt.disabled && rt.meta.Category.Allows(pt)
}

// ValidateArguments checks args against the tool's compiled input schema.
// Tools without a schema accept anything. Arguments are round-tripped
// through JSON so plain Go values validate the same as decoded ones.
func (r *Registry) ValidateArguments(name string, args map[string]any) error {
	r.mu.RLock()
	rt, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("tool %q is not registered", name)
	}
	if rt.schema == nil {
		return nil
	}

	if args == nil {
		args = map[string]any{}
	}
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode arguments: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("decode arguments: %w", err)
	}

	if err := rt.schema.Validate(decoded); err != nil {
		return fmt.Errorf("arguments for %q rejected by schema: %w", name, err)
	}
	return nil
}

// Names returns the sorted names of enabled tools.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name, rt := range r.tools {
		if !rt.disabled {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
