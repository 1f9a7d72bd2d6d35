// Package tools holds the tool registry and the runtime that executes tools:
// metadata gating by plan type, the streamed run contract, and the timeout,
// retry, and cancellation policies wrapped around every invocation.
package tools

import (
	"fmt"

	"github.com/quarryhq/quarry/pkg/models"
)

// Category partitions tools by the plan types that may select them.
type Category string

const (
	CategoryResearch Category = "research"
	CategoryAction   Category = "action"
	CategoryBoth     Category = "both"
)

// Allows reports whether a plan of the given type may select a tool of this
// category.
func (c Category) Allows(pt models.PlanType) bool {
	switch c {
	case CategoryBoth:
		return true
	case CategoryResearch:
		return pt == models.PlanTypeResearch
	case CategoryAction:
		return pt == models.PlanTypeAction
	default:
		return false
	}
}

// ObservationPolicy decides when a tool's observation enters the accumulator.
type ObservationPolicy string

const (
	// ObserveOnTrigger records the observation whenever the tool ran,
	// success or failure.
	ObserveOnTrigger ObservationPolicy = "on_trigger"
	// ObserveOnSuccess records it only for successful runs.
	ObserveOnSuccess ObservationPolicy = "on_success"
	// ObserveNever keeps the tool out of the planner's observation history.
	ObserveNever ObservationPolicy = "never"
)

// Metadata describes a registered tool. InputSchema is the JSON Schema the
// planner sees in the catalog and the registry validates arguments against.
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version,omitempty"`

	InputSchema  string `json:"input_schema,omitempty"`
	OutputSchema string `json:"output_schema,omitempty"`

	Category          Category          `json:"category"`
	MaxRetries        int               `json:"max_retries"`
	TimeoutSeconds    int               `json:"timeout_seconds"`
	Idempotent        bool              `json:"idempotent"`
	ObservationPolicy ObservationPolicy `json:"observation_policy"`

	RequiredPermissions []string `json:"required_permissions,omitempty"`
	Tags                []string `json:"tags,omitempty"`
	AllowedModes        []string `json:"allowed_modes,omitempty"`
}

// validate checks the fields registration depends on.
func (m Metadata) validate() error {
	if m.Name == "" {
		return fmt.Errorf("tool metadata requires a name")
	}
	switch m.Category {
	case CategoryResearch, CategoryAction, CategoryBoth:
	default:
		return fmt.Errorf("tool %q has invalid category %q", m.Name, m.Category)
	}
	switch m.ObservationPolicy {
	case ObserveOnTrigger, ObserveOnSuccess, ObserveNever:
	case "":
		// Registration fills in on_trigger.
	default:
		return fmt.Errorf("tool %q has invalid observation policy %q", m.Name, m.ObservationPolicy)
	}
	if m.MaxRetries < 0 {
		return fmt.Errorf("tool %q has negative max_retries", m.Name)
	}
	if m.TimeoutSeconds < 0 {
		return fmt.Errorf("tool %q has negative timeout_seconds", m.Name)
	}
	return nil
}

// Descriptor is the catalog entry the planner receives for one tool.
type Descriptor struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Version      string   `json:"version,omitempty"`
	InputSchema  string   `json:"input_schema,omitempty"`
	OutputSchema string   `json:"output_schema,omitempty"`
	Category     Category `json:"category"`
	Tags         []string `json:"tags,omitempty"`
}

// descriptor projects the planner-visible subset of the metadata.
func (m Metadata) descriptor() Descriptor {
	return Descriptor{
		Name:         m.Name,
		Description:  m.Description,
		Version:      m.Version,
		InputSchema:  m.InputSchema,
		OutputSchema: m.OutputSchema,
		Category:     m.Category,
		Tags:         m.Tags,
	}
}
