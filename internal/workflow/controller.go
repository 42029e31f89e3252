package workflow

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

// Controller is the plan workflow state machine.
//
// Operations are safe to call from multiple goroutines, but only one runs at
// a time: while an operation waits on the generator, the store or the
// confirmer, every other operation returns [ErrBusy] without side effects.
// A failed operation leaves the state as it was before the call.
type Controller struct {
	generator Generator
	store     PlanStore
	confirmer Confirmer
	logger    *logger.Logger

	mu      sync.Mutex
	busy    bool
	loading bool
	state   State
	plans   []models.PlanRecord
	search  string
	draft   models.DraftInput
	preview *models.ContentFields
	current *models.PlanRecord
	lastErr error
}

// NewController returns a controller in Listing with an empty list. Call
// Start to fetch the plans.
func NewController(generator Generator, store PlanStore, confirmer Confirmer, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{
		generator: generator,
		store:     store,
		confirmer: confirmer,
		logger:    log,
		state:     Listing,
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		State:   c.state,
		Loading: c.loading,
		Plans:   slices.Clone(c.plans),
		Search:  c.search,
		Draft:   c.draft,
		Err:     c.lastErr,
	}
	if c.preview != nil {
		p := *c.preview
		s.Preview = &p
	}
	if c.current != nil {
		r := *c.current
		s.Current = &r
	}
	return s
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Loading reports whether a generator or store call is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// DismissError clears the last failure.
func (c *Controller) DismissError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = nil
}

// Start performs the initial list fetch.
func (c *Controller) Start(ctx context.Context) error {
	return c.Refresh(ctx)
}

// Refresh re-fetches the list with the current search filter.
func (c *Controller) Refresh(ctx context.Context) error {
	if err := c.begin("refresh", Listing); err != nil {
		return err
	}

	c.mu.Lock()
	search := c.search
	c.mu.Unlock()

	plans, err := c.list(ctx, search)
	c.end(func() {
		if err == nil {
			c.plans = plans
		}
	}, err)
	return err
}

// Search re-fetches the list filtered by student name or class. An empty
// query lists every plan.
func (c *Controller) Search(ctx context.Context, query string) error {
	if err := c.begin("search", Listing); err != nil {
		return err
	}

	plans, err := c.list(ctx, query)
	c.end(func() {
		if err == nil {
			c.plans = plans
			c.search = query
		}
	}, err)
	return err
}

// NewPlan opens an empty draft form.
func (c *Controller) NewPlan() error {
	if err := c.begin("new plan", Listing); err != nil {
		return err
	}
	c.end(func() {
		c.state = Editing
		c.draft = models.DraftInput{}
		c.preview = nil
	}, nil)
	return nil
}

// Select opens a plan of the fetched list.
func (c *Controller) Select(id string) error {
	if err := c.begin("select", Listing); err != nil {
		return err
	}

	var err error
	c.end(func() {
		idx := slices.IndexFunc(c.plans, func(p models.PlanRecord) bool { return p.ID == id })
		if idx < 0 {
			err = models.NewStoreError("select", models.ErrPlanNotFound)
			return
		}
		plan := c.plans[idx]
		c.current = &plan
		c.state = Viewing
	}, nil)
	if err != nil {
		c.setErr(err)
	}
	return err
}

// UpdateDraft records the form input without generating, so CancelEdit
// knows whether there is anything to lose.
func (c *Controller) UpdateDraft(draft models.DraftInput) error {
	if err := c.begin("update draft", Editing); err != nil {
		return err
	}
	c.mu.Lock()
	c.draft = draft
	c.busy = false
	c.mu.Unlock()
	return nil
}

// Submit generates content for draft. The draft is kept as the form input
// whatever the outcome. A draft with empty required fields fails with a
// validation error before the generator is called.
func (c *Controller) Submit(ctx context.Context, draft models.DraftInput) error {
	if err := c.begin("submit", Editing); err != nil {
		return err
	}

	c.mu.Lock()
	c.draft = draft
	c.mu.Unlock()

	if err := draft.Validate(); err != nil {
		c.end(nil, err)
		return err
	}

	c.setLoading()
	start := time.Now()
	content, err := c.generator.Generate(ctx, draft)
	c.logger.Debug().Err(err).Dur("duration", time.Since(start)).Msg("generation finished")

	c.end(func() {
		if err == nil {
			c.preview = &content
			c.state = Previewing
		}
	}, err)
	return err
}

// BackToEdit drops the generated content and returns to the form with the
// draft intact. The user is asked first; a "no" leaves everything as is.
func (c *Controller) BackToEdit(ctx context.Context) error {
	if err := c.begin("back to edit", Previewing); err != nil {
		return err
	}

	if !c.confirmer.Confirm(ctx, discardPreviewPrompt()) {
		c.end(nil, nil)
		return nil
	}

	c.end(func() {
		c.preview = nil
		c.state = Editing
	}, nil)
	return nil
}

// CancelEdit leaves the form for the refreshed list. A draft with any input
// is only dropped after the user confirms.
//
// A list failure still leaves the form: the previous list is kept and the
// error wraps [ErrRefreshFailed].
func (c *Controller) CancelEdit(ctx context.Context) error {
	if err := c.begin("cancel edit", Editing); err != nil {
		return err
	}

	c.mu.Lock()
	dirty := !isEmptyDraft(c.draft)
	search := c.search
	c.mu.Unlock()

	if dirty && !c.confirmer.Confirm(ctx, discardDraftPrompt()) {
		c.end(nil, nil)
		return nil
	}

	plans, listErr := c.refreshAfter(ctx, search)
	c.end(func() {
		if listErr == nil {
			c.plans = plans
		}
		c.draft = models.DraftInput{}
		c.state = Listing
	}, listErr)
	return listErr
}

// Save stores the previewed plan and returns to the refreshed list. If the
// insert fails the content stays in Previewing.
//
// When the insert succeeds but the following list fetch fails, the workflow
// still moves to Listing with the saved plan on top of the previous list,
// and the error wraps [ErrRefreshFailed].
func (c *Controller) Save(ctx context.Context) error {
	if err := c.begin("save", Previewing); err != nil {
		return err
	}

	c.mu.Lock()
	if c.preview == nil {
		c.mu.Unlock()
		c.end(nil, ErrNoPreview)
		return ErrNoPreview
	}
	record := c.draft.NewRecord(*c.preview)
	search := c.search
	c.mu.Unlock()

	c.setLoading()
	saved, err := c.store.Insert(ctx, record)
	if err != nil {
		c.end(nil, err)
		return err
	}
	c.logger.Info().Str("plan_id", saved.ID).Msg("plan saved")

	plans, listErr := c.refreshAfter(ctx, search)
	c.end(func() {
		if listErr != nil {
			plans = append([]models.PlanRecord{saved}, c.plans...)
		}
		c.plans = plans
		c.draft = models.DraftInput{}
		c.preview = nil
		c.state = Listing
	}, listErr)
	return listErr
}

// Back returns from a saved plan to the refreshed list. A list failure
// still returns to the previous list and the error wraps [ErrRefreshFailed].
func (c *Controller) Back(ctx context.Context) error {
	if err := c.begin("back", Viewing); err != nil {
		return err
	}

	c.mu.Lock()
	search := c.search
	c.mu.Unlock()

	plans, listErr := c.refreshAfter(ctx, search)
	c.end(func() {
		if listErr == nil {
			c.plans = plans
		}
		c.current = nil
		c.state = Listing
	}, listErr)
	return listErr
}

// Delete removes the viewed plan after the user confirms and returns to the
// refreshed list. A "no" is a no-op. If the delete fails the workflow stays
// in Viewing.
//
// A list failure after a successful delete is handled like in Save: the
// plan is dropped from the cached list and the error wraps [ErrRefreshFailed].
func (c *Controller) Delete(ctx context.Context) error {
	if err := c.begin("delete", Viewing); err != nil {
		return err
	}

	c.mu.Lock()
	plan := *c.current
	search := c.search
	c.mu.Unlock()

	if !c.confirmer.Confirm(ctx, deletePrompt(plan)) {
		c.end(nil, nil)
		return nil
	}

	c.setLoading()
	if err := c.store.DeleteByID(ctx, plan.ID); err != nil {
		c.end(nil, err)
		return err
	}
	c.logger.Info().Str("plan_id", plan.ID).Msg("plan deleted")

	plans, listErr := c.refreshAfter(ctx, search)
	c.end(func() {
		if listErr != nil {
			plans = slices.DeleteFunc(slices.Clone(c.plans), func(p models.PlanRecord) bool { return p.ID == plan.ID })
		}
		c.plans = plans
		c.current = nil
		c.state = Listing
	}, listErr)
	return listErr
}

// ConfirmQuit reports whether the application may close. Generated content
// in Previewing and a draft with any input in Editing are only abandoned after
// the user confirms; every other state may close without asking.
func (c *Controller) ConfirmQuit(ctx context.Context) (bool, error) {
	if err := c.begin("quit", Listing, Editing, Previewing, Viewing); err != nil {
		return false, err
	}

	c.mu.Lock()
	state := c.state
	unsaved := state == Previewing || (state == Editing && !isEmptyDraft(c.draft))
	c.mu.Unlock()

	ok := !unsaved || c.confirmer.Confirm(ctx, quitPrompt(state))

	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
	return ok, nil
}

// begin claims the controller for op if it is idle and in one of states.
func (c *Controller) begin(op string, states ...State) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy {
		c.logger.Debug().Str("op", op).Msg("rejected while busy")
		return ErrBusy
	}
	if !slices.Contains(states, c.state) {
		return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, op, c.state)
	}
	c.busy = true
	return nil
}

// end releases the controller. apply runs under the lock and commits the
// transition; err becomes the last error, or clears it when nil.
func (c *Controller) end(apply func(), err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if apply != nil {
		apply()
	}
	c.lastErr = err
	c.busy = false
	c.loading = false

	if err != nil {
		c.logger.Warn().Err(err).Str("state", c.state.String()).Msg("workflow operation failed")
	}
}

func (c *Controller) setLoading() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = true
}

func (c *Controller) setErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = err
}

// list calls the store with the loading flag raised. The caller holds busy.
func (c *Controller) list(ctx context.Context, search string) ([]models.PlanRecord, error) {
	c.setLoading()
	plans, err := c.store.List(ctx, search)
	if err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []models.PlanRecord{}
	}
	return plans, nil
}

// refreshAfter fetches the list on entering Listing from another state. The
// transition itself does not depend on it, so a failure wraps [ErrRefreshFailed].
func (c *Controller) refreshAfter(ctx context.Context, search string) ([]models.PlanRecord, error) {
	plans, err := c.list(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	return plans, nil
}

func isEmptyDraft(d models.DraftInput) bool {
	return len(d.MissingFields()) == len(models.PlanMetadata{}.MissingFields()) &&
		d.ExtraContext == "" && d.Attachment == nil
}
