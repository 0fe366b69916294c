// Package aiplan turns a user's pending tasks and the day's fixed events
// into a conflict-aware proposed schedule using an external text generator.
// The generator's output is untrusted: it is parsed strictly, validated
// against the tasks actually loaded, and checked for collisions before
// anything is persisted.
//
// Materialization is at-least-once: each accepted proposal is its own
// durable write, so two concurrent runs for the same user can create
// duplicate events. Callers that need stronger guarantees must serialize
// invocations themselves.
package aiplan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lucasortiz/dayplan/internal/config"
	"github.com/lucasortiz/dayplan/internal/dateutil"
	"github.com/lucasortiz/dayplan/internal/event"
	"github.com/lucasortiz/dayplan/internal/llm"
	"github.com/lucasortiz/dayplan/internal/ratelimit"
)

// rateLimitAction keys the generator's throttle bucket.
const rateLimitAction = "ai-schedule"

// ValidationError reports invalid input, such as an empty task list.
// It is never retried automatically.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Proposal is one scheduling suggestion from the generator.
type Proposal struct {
	TaskID string `json:"taskId"`
	Title  string `json:"title"`
	Start  string `json:"start"` // RFC 3339
	End    string `json:"end"`
}

// Result is the outcome of a generation run. Count may be less than the
// number of pending tasks: proposals referencing unknown task ids are
// skipped, and colliding or malformed proposals are dropped with a
// warning. That is a successful partial outcome, not a failure.
type Result struct {
	Count    int
	Created  []*event.Event
	Warnings []string
}

// Generator orchestrates AI schedule generation.
type Generator struct {
	client  llm.Client
	repo    event.Repository
	limiter ratelimit.Limiter
	cfg     *config.Config

	now   func() time.Time // injectable for testing
	newID func() string
}

// New creates a Generator with the given collaborators.
func New(client llm.Client, cfg *config.Config, repo event.Repository, limiter ratelimit.Limiter) *Generator {
	return &Generator{
		client:  client,
		repo:    repo,
		limiter: limiter,
		cfg:     cfg,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// NewWithClock is like New but with an injectable clock, for deterministic
// runs in tests.
func NewWithClock(client llm.Client, cfg *config.Config, repo event.Repository, limiter ratelimit.Limiter, now func() time.Time) *Generator {
	g := New(client, cfg, repo, limiter)
	g.now = now
	return g
}

// Generate builds and persists a proposed schedule for the user's pending
// tasks around today's existing events. It fails fast on rate-limit and
// empty-context problems before any external-API cost is incurred.
func (g *Generator) Generate(ctx context.Context, userID string) (*Result, error) {
	rl, err := g.limiter.Check(ctx, userID, rateLimitAction, g.cfg.AI.MaxRequests, g.cfg.AI.WindowSeconds)
	if err != nil {
		return nil, fmt.Errorf("checking rate limit: %w", err)
	}
	if !rl.Allowed {
		return nil, &ratelimit.Error{RetryAfter: rl.RetryAfter}
	}

	now := g.now()
	dayStart := dateutil.TruncateToDay(now)

	tasks, err := g.repo.ListTasksByStatus(ctx, userID, event.StatusTodo)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil, &ValidationError{Field: "tasks", Reason: "no tasks to schedule"}
	}

	existing, err := g.repo.ListEventsByRange(ctx, userID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("loading events: %w", err)
	}

	system, user := buildMessages(now, g.cfg.Schedule.DayStart, g.cfg.Schedule.DayEnd, existing, tasks)
	text, err := g.client.Chat(ctx, []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	})
	if err != nil {
		return nil, fmt.Errorf("generating schedule: %w", err)
	}

	proposals, err := parseProposals(text, g.cfg.LLM.Provider)
	if err != nil {
		return nil, err
	}

	accepted, warnings := g.acceptProposals(proposals, tasks, existing, now)

	result := &Result{Warnings: warnings}
	for _, e := range accepted {
		if err := g.repo.CreateEvent(ctx, userID, e); err != nil {
			// Prior creations stay in place; report what landed.
			return result, fmt.Errorf("creating event %q: %w", e.Title, err)
		}
		result.Created = append(result.Created, e)
		result.Count++
	}

	return result, nil
}

// parseProposals extracts and decodes the JSON array from the generator's
// free-text response. The response is never evaluated or executed.
func parseProposals(text, provider string) ([]Proposal, error) {
	slice, err := llm.ExtractJSONArray(text)
	if err != nil {
		return nil, &llm.UpstreamError{Provider: provider, Err: err}
	}

	var proposals []Proposal
	if err := json.Unmarshal([]byte(slice), &proposals); err != nil {
		return nil, &llm.UpstreamError{Provider: provider, Err: fmt.Errorf("invalid JSON array: %w", err)}
	}
	return proposals, nil
}

// acceptProposals validates each proposal against ground truth. Proposals
// referencing a task id that was never loaded are skipped silently, since
// a generator may hallucinate identifiers. Malformed timestamps and
// collisions with existing events or earlier accepted proposals are
// dropped with a warning. The persisted title always comes from the task
// record, never from the generator.
func (g *Generator) acceptProposals(proposals []Proposal, tasks []*event.Task, existing []*event.Event, now time.Time) ([]*event.Event, []string) {
	byID := make(map[string]*event.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	var accepted []*event.Event
	var warnings []string

	for _, p := range proposals {
		task, ok := byID[p.TaskID]
		if !ok {
			continue
		}

		start, err := time.Parse(time.RFC3339, p.Start)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("proposal for %q has an invalid start time, dropped", task.Title))
			continue
		}
		end, err := time.Parse(time.RFC3339, p.End)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("proposal for %q has an invalid end time, dropped", task.Title))
			continue
		}
		if !start.Before(end) {
			warnings = append(warnings, fmt.Sprintf("proposal for %q ends before it starts, dropped", task.Title))
			continue
		}

		candidate := &event.Event{
			ID:           g.newID(),
			Title:        task.Title,
			Start:        start,
			End:          end,
			Category:     event.CategoryWork,
			SourceTaskID: task.ID,
			CreatedAt:    now,
		}

		if collides(candidate, existing) || collides(candidate, accepted) {
			warnings = append(warnings, fmt.Sprintf("proposal for %q overlaps another event, dropped", task.Title))
			continue
		}

		accepted = append(accepted, candidate)
	}

	return accepted, warnings
}

func collides(candidate *event.Event, others []*event.Event) bool {
	for _, o := range others {
		if event.Overlaps(candidate, o) {
			return true
		}
	}
	return false
}
