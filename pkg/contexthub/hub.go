// Package contexthub assembles the context the planner and the tools see:
// a static tier primed once per run (ranked schemas, instructions, metadata
// resources, code snippets, uploaded files) and a warm tier rebuilt every
// loop iteration (conversation, observations, widgets, mentions, entities,
// queries). Rendering is token budgeted; oversized sections degrade to
// compact index form instead of being dropped.
package contexthub

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/models"
)

// usageLookback bounds how far back table usage counts toward schema
// ranking.
const usageLookback = 90 * 24 * time.Hour

// observationWindow is how many recent observations the warm section
// renders.
const observationWindow = 5

// SchemaSource lists the table catalogs per data source.
type SchemaSource interface {
	Schemas(ctx context.Context, organizationID string) (map[string][]TableSchema, error)
}

// UsageSource lists recent table usage events for one data source.
type UsageSource interface {
	Usage(ctx context.Context, organizationID, datasource string, since time.Time) ([]UsageEvent, error)
}

// InstructionSource lists the organization's active instructions.
type InstructionSource interface {
	ActiveInstructions(ctx context.Context, organizationID string) ([]Instruction, error)
}

// ResourceSource lists fetched metadata resources, most relevant first
// per repo, plus an index of everything else available.
type ResourceSource interface {
	Resources(ctx context.Context, organizationID string) ([]Resource, []string, error)
}

// SnippetSource lists the historical step corpus for code recall.
type SnippetSource interface {
	Snippets(ctx context.Context, organizationID string) ([]Snippet, error)
}

// ConversationSource reads the report's conversation state.
type ConversationSource interface {
	RecentMessages(ctx context.Context, reportID string, limit int) ([]Message, error)
	Widgets(ctx context.Context, reportID string) ([]WidgetSummary, error)
	RecentQueries(ctx context.Context, reportID string, limit int) ([]QueryRecord, error)
}

// Sources bundles the hub's providers. Any of them may be nil; the
// corresponding section then stays empty.
type Sources struct {
	Schema       SchemaSource
	Usage        UsageSource
	Instructions InstructionSource
	Resources    ResourceSource
	Snippets     SnippetSource
	Conversation ConversationSource
}

// Spec selects which sections a build populates and under what budget.
// Empty Sections means all; zero TokenBudget falls back to the configured
// budget.
type Spec struct {
	Sections    []string
	TokenBudget int
}

// ResearchContext identifies the run and carries the current turn's
// inputs.
type ResearchContext struct {
	OrganizationID   string
	ReportID         string
	CompletionID     string
	AgentExecutionID string

	UserMessage string
	Mode        string
	Mentions    []string
	Entities    []string
	Files       []models.UploadedFile

	// DataModel is the candidate output shape driving code snippet recall.
	DataModel map[string]any
}

// Hub builds and caches ContextViews for one run.
type Hub struct {
	sources Sources
	cfg     *config.ContextConfig
	acc     *Accumulator
	logger  *slog.Logger

	mu     sync.Mutex
	static *StaticContext
	view   *ContextView
}

// NewHub creates a hub for one run. The accumulator is shared with the
// loop, which appends observations as tools finish.
func NewHub(sources Sources, cfg *config.ContextConfig, acc *Accumulator, logger *slog.Logger) *Hub {
	if cfg == nil {
		cfg = config.DefaultContextConfig()
	}
	if acc == nil {
		acc = NewAccumulator()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		sources: sources,
		cfg:     cfg,
		acc:     acc,
		logger:  logger.With("component", "context_hub"),
	}
}

// Accumulator returns the run's observation accumulator.
func (h *Hub) Accumulator() *Accumulator {
	return h.acc
}

// BuildContext populates the requested sections and returns the assembled
// view. The static tier is primed on first call and reused afterwards;
// the warm tier is rebuilt every call. Source failures degrade to empty
// sections rather than failing the build.
func (h *Hub) BuildContext(ctx context.Context, spec Spec, rc ResearchContext, loopIndex int) (*ContextView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.static == nil {
		h.static = h.buildStatic(ctx, rc)
	}

	view := &ContextView{
		Static: *h.static,
		Warm:   h.buildWarm(ctx, rc),
		Meta: ViewMeta{
			OrganizationID:   rc.OrganizationID,
			ReportID:         rc.ReportID,
			CompletionID:     rc.CompletionID,
			AgentExecutionID: rc.AgentExecutionID,
			LoopIndex:        loopIndex,
			Mode:             rc.Mode,
			BuiltAt:          time.Now().UTC(),
		},
	}

	pruneSections(view, spec.Sections)
	h.applyBudget(view, spec.TokenBudget)
	view.Meta.TokenEstimate = view.TokenEstimate()

	h.view = view
	return view, nil
}

// View returns the most recently built view, or nil before the first
// build.
func (h *Hub) View() *ContextView {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.view
}

// RefreshSchemas re-ranks the schema section against current usage stats.
// The rest of the static tier is kept. On source failure the previous
// ranking stays.
func (h *Hub) RefreshSchemas(ctx context.Context) error {
	section, err := h.buildSchemaSection(ctx, h.currentOrganization())
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.static == nil {
		h.static = &StaticContext{}
	}
	h.static.Schemas = section
	return nil
}

func (h *Hub) currentOrganization() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.view == nil {
		return ""
	}
	return h.view.Meta.OrganizationID
}

// ─────────────────────────────────────────────────────────────────────────────
// Tier builders
// ─────────────────────────────────────────────────────────────────────────────

func (h *Hub) buildStatic(ctx context.Context, rc ResearchContext) *StaticContext {
	static := &StaticContext{
		Files: FileSection{Files: rc.Files},
	}

	if section, err := h.buildSchemaSection(ctx, rc.OrganizationID); err != nil {
		h.logger.Warn("Schema context unavailable", "error", err)
	} else {
		static.Schemas = section
	}

	if h.sources.Instructions != nil {
		items, err := h.sources.Instructions.ActiveInstructions(ctx, rc.OrganizationID)
		if err != nil {
			h.logger.Warn("Instruction context unavailable", "error", err)
		} else {
			static.Instructions = InstructionSection{
				Items: SelectInstructions(rc.UserMessage, items, h.cfg.InstructionTopK),
			}
		}
	}

	if h.sources.Resources != nil {
		items, index, err := h.sources.Resources.Resources(ctx, rc.OrganizationID)
		if err != nil {
			h.logger.Warn("Resource context unavailable", "error", err)
		} else {
			top, rest := topResourcesPerRepo(items, h.cfg.ResourceTopK)
			static.Resources = ResourceSection{
				Items: top,
				Index: append(rest, index...),
			}
		}
	}

	if h.sources.Snippets != nil {
		if columns := GeneratedColumns(rc.DataModel); len(columns) > 0 {
			corpus, err := h.sources.Snippets.Snippets(ctx, rc.OrganizationID)
			if err != nil {
				h.logger.Warn("Snippet context unavailable", "error", err)
			} else {
				now := time.Now().UTC()
				static.Code = CodeSection{
					Snippets: RecallSnippets(columns, corpus, now, h.cfg.SnippetTopK),
					Failed:   RecallFailedSnippets(columns, corpus, now, h.cfg.FailedSnippetTopK),
				}
			}
		}
	}

	return static
}

func (h *Hub) buildSchemaSection(ctx context.Context, organizationID string) (SchemaSection, error) {
	if h.sources.Schema == nil {
		return SchemaSection{}, nil
	}
	catalogs, err := h.sources.Schema.Schemas(ctx, organizationID)
	if err != nil {
		return SchemaSection{}, err
	}

	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)

	now := time.Now().UTC()
	section := SchemaSection{}
	for _, source := range names {
		var usage []UsageEvent
		if h.sources.Usage != nil {
			usage, err = h.sources.Usage.Usage(ctx, organizationID, source, now.Add(-usageLookback))
			if err != nil {
				h.logger.Warn("Usage stats unavailable, ranking structurally", "datasource", source, "error", err)
				usage = nil
			}
		}
		ranked, rest := RankTables(catalogs[source], usage, now, h.cfg.SchemaTopK)
		section.Sources = append(section.Sources, SourceSchemas{
			Source: source,
			Ranked: ranked,
			Index:  rest,
			Flat:   len(usage) == 0,
		})
	}
	return section, nil
}

func (h *Hub) buildWarm(ctx context.Context, rc ResearchContext) WarmContext {
	warm := WarmContext{
		Mentions: MentionSection{Mentions: rc.Mentions},
		Entities: EntitySection{Entities: rc.Entities},
	}

	history := h.acc.History()
	warm.Observations = ObservationSection{
		Count:    len(history),
		Rendered: h.acc.BuildContext(observationWindow),
	}

	if h.sources.Conversation == nil {
		return warm
	}

	if messages, err := h.sources.Conversation.RecentMessages(ctx, rc.ReportID, h.cfg.MessageWindow); err != nil {
		h.logger.Warn("Conversation context unavailable", "error", err)
	} else {
		warm.Messages = MessageSection{Messages: messages}
	}
	if widgets, err := h.sources.Conversation.Widgets(ctx, rc.ReportID); err != nil {
		h.logger.Warn("Widget context unavailable", "error", err)
	} else {
		warm.Widgets = WidgetSection{Widgets: widgets}
	}
	if queries, err := h.sources.Conversation.RecentQueries(ctx, rc.ReportID, h.cfg.MessageWindow); err != nil {
		h.logger.Warn("Query context unavailable", "error", err)
	} else {
		warm.Queries = QuerySection{Queries: queries}
	}

	return warm
}

// topResourcesPerRepo keeps the first topK resources of each repo,
// preserving source order, and indexes the rest by path.
func topResourcesPerRepo(items []Resource, topK int) ([]Resource, []string) {
	if topK <= 0 {
		topK = config.DefaultResourceTopK
	}
	perRepo := map[string]int{}
	var top []Resource
	var rest []string
	for _, r := range items {
		if perRepo[r.Repo] < topK {
			perRepo[r.Repo]++
			top = append(top, r)
			continue
		}
		rest = append(rest, r.Repo+"/"+r.Path)
	}
	return top, rest
}

// pruneSections empties every section the spec did not request. An empty
// request keeps everything.
func pruneSections(view *ContextView, requested []string) {
	if len(requested) == 0 {
		return
	}
	keep := make(map[string]bool, len(requested))
	for _, name := range requested {
		keep[name] = true
	}
	if !keep[SectionSchemas] {
		view.Static.Schemas = SchemaSection{}
	}
	if !keep[SectionInstructions] {
		view.Static.Instructions = InstructionSection{}
	}
	if !keep[SectionResources] {
		view.Static.Resources = ResourceSection{}
	}
	if !keep[SectionCode] {
		view.Static.Code = CodeSection{}
	}
	if !keep[SectionFiles] {
		view.Static.Files = FileSection{}
	}
	if !keep[SectionMessages] {
		view.Warm.Messages = MessageSection{}
	}
	if !keep[SectionObservations] {
		view.Warm.Observations = ObservationSection{}
	}
	if !keep[SectionWidgets] {
		view.Warm.Widgets = WidgetSection{}
	}
	if !keep[SectionMentions] {
		view.Warm.Mentions = MentionSection{}
	}
	if !keep[SectionEntities] {
		view.Warm.Entities = EntitySection{}
	}
	if !keep[SectionQueries] {
		view.Warm.Queries = QuerySection{}
	}
}

// applyBudget degrades the heaviest static sections to compact form until
// the view fits. Degradation order is schemas, then resources, then code;
// warm sections are already small.
func (h *Hub) applyBudget(view *ContextView, budget int) {
	if budget <= 0 {
		budget = h.cfg.TokenBudget
	}
	if budget <= 0 {
		return
	}
	if view.TokenEstimate() <= budget {
		return
	}

	view.Static.Schemas.Compact = true
	view.Meta.Degraded = append(view.Meta.Degraded, SectionSchemas)
	if view.TokenEstimate() <= budget {
		return
	}

	view.Static.Resources.Compact = true
	view.Meta.Degraded = append(view.Meta.Degraded, SectionResources)
	if view.TokenEstimate() <= budget {
		return
	}

	view.Static.Code.Compact = true
	view.Meta.Degraded = append(view.Meta.Degraded, SectionCode)
	if view.TokenEstimate() > budget {
		h.logger.Warn("Context still over budget after degradation",
			"estimate", view.TokenEstimate(), "budget", budget)
	}
}
