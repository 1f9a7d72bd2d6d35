package config

import (
	"fmt"
)

// Validator performs cross-field validation on loaded configuration.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll validates every configuration section.
func (v *Validator) ValidateAll() error {
	if err := v.validateAgent(); err != nil {
		return err
	}
	if err := v.validatePlanner(); err != nil {
		return err
	}
	if err := v.validateContext(); err != nil {
		return err
	}
	if err := v.validateQueue(); err != nil {
		return err
	}
	return v.validateDataSources()
}

func (v *Validator) validateAgent() error {
	a := v.cfg.Agent
	if a.StepLimit <= 0 {
		return NewValidationError("agent", "", "step_limit", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if a.MaxInvalidRetries < 0 {
		return NewValidationError("agent", "", "max_invalid_retries", fmt.Errorf("%w: must not be negative", ErrInvalidValue))
	}
	if a.MaxToolFailures <= 0 {
		return NewValidationError("agent", "", "max_tool_failures", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if a.MaxRepeatedSuccesses <= 0 {
		return NewValidationError("agent", "", "max_repeated_successes", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if a.ObservationWindow <= 0 {
		return NewValidationError("agent", "", "observation_window", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validatePlanner() error {
	p := v.cfg.Planner
	if p.Addr == "" {
		return NewValidationError("planner", "", "addr", fmt.Errorf("%w: set planner.addr or PLANNER_SERVICE_ADDR", ErrMissingRequiredField))
	}
	if p.Model == "" {
		return NewValidationError("planner", "", "model", ErrMissingRequiredField)
	}
	if p.RequestTimeout <= 0 {
		return NewValidationError("planner", "", "request_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateContext() error {
	c := v.cfg.Context
	for field, value := range map[string]int{
		"schema_top_k":         c.SchemaTopK,
		"instruction_top_k":    c.InstructionTopK,
		"resource_top_k":       c.ResourceTopK,
		"snippet_top_k":        c.SnippetTopK,
		"failed_snippet_top_k": c.FailedSnippetTopK,
		"message_window":       c.MessageWindow,
		"token_budget":         c.TokenBudget,
	} {
		if value <= 0 {
			return NewValidationError("context", "", field, fmt.Errorf("%w: must be positive", ErrInvalidValue))
		}
	}
	return nil
}

func (v *Validator) validateQueue() error {
	q := v.cfg.Queue
	if q.WorkerCount <= 0 {
		return NewValidationError("queue", "", "worker_count", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.MaxConcurrentRuns < q.WorkerCount {
		return NewValidationError("queue", "", "max_concurrent_runs",
			fmt.Errorf("%w: must be >= worker_count (%d)", ErrInvalidValue, q.WorkerCount))
	}
	if q.HeartbeatInterval <= 0 {
		return NewValidationError("queue", "", "heartbeat_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.OrphanThreshold <= q.HeartbeatInterval {
		return NewValidationError("queue", "", "orphan_threshold",
			fmt.Errorf("%w: must exceed heartbeat_interval", ErrInvalidValue))
	}
	if q.OrphanScanInterval <= 0 {
		return NewValidationError("queue", "", "orphan_scan_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateDataSources() error {
	for _, name := range v.cfg.DataSources.Names() {
		ds, err := v.cfg.DataSources.Get(name)
		if err != nil {
			return err
		}
		switch ds.Transport {
		case TransportStdio:
			if ds.Command == "" {
				return NewValidationError("datasource", name, "command", ErrMissingRequiredField)
			}
		case TransportHTTP:
			if ds.URL == "" {
				return NewValidationError("datasource", name, "url", ErrMissingRequiredField)
			}
		default:
			return NewValidationError("datasource", name, "transport",
				fmt.Errorf("%w: %q (want stdio or http)", ErrInvalidValue, ds.Transport))
		}
	}
	return nil
}
