package conversation

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Sgowda7697/Dream2Reality/internal/app"
	"github.com/Sgowda7697/Dream2Reality/internal/catalog"
	"github.com/Sgowda7697/Dream2Reality/internal/domain"
	"github.com/google/uuid"
)

// Controller drives one trip-planning dialogue. It owns the collected
// inputs, the plan, the flight result and the append-only turn log.
//
// Operations may be called from any goroutine. While a plan or flight
// request is outstanding every operation except Reset and Close fails with
// ErrBusy.
type Controller struct {
	plans     app.PlanUseCase
	flights   app.FlightSearchUseCase
	cfg       Config
	scheduler Scheduler
	now       func() time.Time
	updates   chan struct{}

	mu        sync.Mutex
	sessionID string
	epoch     uint64
	state     State
	inputs    domain.CollectedInputs
	plan      *domain.Plan
	result    *app.FlightSearchResult
	turns     []domain.ConversationTurn
	busy      bool
	closed    bool
	pending   Task
}

// Option customizes a Controller.
type Option func(*Controller)

// WithScheduler replaces the time.AfterFunc scheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.scheduler = s }
}

// WithClock replaces time.Now for turn timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController creates a controller in the start stage.
func NewController(plans app.PlanUseCase, flights app.FlightSearchUseCase, cfg Config, opts ...Option) *Controller {
	c := &Controller{
		plans:     plans,
		flights:   flights,
		cfg:       cfg,
		scheduler: NewTimerScheduler(),
		now:       time.Now,
		updates:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.resetLocked()
	return c
}

// --- Read-only accessors ---

func (c *Controller) Stage() Stage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Stage()
}

// State returns the current state. Plans carried by the state are copies.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return detachPlan(c.state)
}

func (c *Controller) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Inputs returns a copy of the answers collected so far.
func (c *Controller) Inputs() domain.CollectedInputs {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inputs
}

// Plan returns a copy of the current plan, or nil before one was generated.
func (c *Controller) Plan() *domain.Plan {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.plan.Clone()
}

// Flights returns a copy of the last flight search result, or nil.
func (c *Controller) Flights() *app.FlightSearchResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return nil
	}
	r := *c.result
	r.Offers = append([]domain.Flight(nil), c.result.Offers...)
	return &r
}

// Turns returns a snapshot of the turn log.
func (c *Controller) Turns() []domain.ConversationTurn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.ConversationTurn(nil), c.turns...)
}

// Updates is signalled after every change to the turn log, including the
// scheduled itinerary feedback prompt. Signals coalesce.
func (c *Controller) Updates() <-chan struct{} {
	return c.updates
}

// --- Transitions ---

// SubmitOrigin records the origin city and asks for a distance preference.
// The origin must be at least 3 characters after trimming.
func (c *Controller) SubmitOrigin(origin string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard("SubmitOrigin", StageStart); err != nil {
		return err
	}
	origin = strings.TrimSpace(origin)
	if len([]rune(origin)) < minOriginLen {
		return invalid("origin", "please enter a city name of at least 3 characters")
	}

	c.inputs.OriginCity = origin
	c.state = LocationState{Origin: origin}
	c.appendTurns(userTurn(origin), botTurn(askDistance(origin)))
	c.state = DistancePreferenceState{Origin: origin}
	return nil
}

// ChooseDistance records nearby, faraway or both and asks for the trip
// description.
func (c *Controller) ChooseDistance(choice domain.DistancePreference) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard("ChooseDistance", StageDistancePreference); err != nil {
		return err
	}
	if !domain.ValidDistancePreferences[choice] {
		return invalid("distance preference", "choose nearby, faraway or both")
	}

	st := c.state.(DistancePreferenceState)
	d := choice
	c.inputs.DistancePreference = &d
	c.state = LocationState{Origin: st.Origin, Distance: choice}
	c.appendTurns(userTurn(string(choice)), botTurn(askDescription(choice)))
	return nil
}

// SubmitDescription generates a plan from the description, augmented with
// the origin and distance preference. It is accepted in the location stage
// and, after a failed generation, in the options stage.
func (c *Controller) SubmitDescription(ctx context.Context, description string) error {
	c.mu.Lock()
	if err := c.guard("SubmitDescription", StageLocation, StageOptions); err != nil {
		c.mu.Unlock()
		return err
	}
	if st, ok := c.state.(OptionsState); ok && st.Err == nil {
		c.mu.Unlock()
		return wrongStage("SubmitDescription", StageOptions)
	}
	description = strings.TrimSpace(description)
	if len([]rune(description)) < minDescriptionLen {
		c.mu.Unlock()
		return invalid("description", "please describe your trip in at least 15 characters")
	}

	distance := domain.DistanceBoth
	if c.inputs.DistancePreference != nil {
		distance = *c.inputs.DistancePreference
	}
	prompt := augmentPrompt(description, c.inputs.OriginCity, distance)
	c.inputs.Description = description
	c.state = PlanningState{Prompt: prompt}
	c.appendTurns(userTurn(description))
	epoch := c.begin()
	c.mu.Unlock()

	plan, err := c.plans.GeneratePlan(ctx, prompt)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.finish(epoch) {
		return ErrSessionEnded
	}
	if err != nil {
		c.state = OptionsState{Err: err}
		c.appendTurns(botTurn(planFailed(err)))
		return nil
	}
	c.plan = plan
	c.state = OptionsState{Plan: plan}
	c.appendTurns(botTurn(planReady(plan)))
	return nil
}

// ShowDestinations lists the destination options.
func (c *Controller) ShowDestinations() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guardPlan("ShowDestinations", StageOptions); err != nil {
		return err
	}
	c.state = DestinationsState{Plan: c.plan}
	c.appendTurns(userTurn(userShowDestinations), botTurn(botPickDestination))
	return nil
}

// ShowFilters offers the filter categories.
func (c *Controller) ShowFilters() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guardPlan("ShowFilters", StageOptions, StageDestinations); err != nil {
		return err
	}
	c.state = FiltersState{Plan: c.plan}
	c.appendTurns(userTurn(userShowFilters), botTurn(botPickFilter))
	return nil
}

// ApplyFilter narrows the displayed destinations. It never re-queries.
func (c *Controller) ApplyFilter(filter string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard("ApplyFilter", StageFilters); err != nil {
		return err
	}
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return invalid("filter", "choose a category")
	}

	st := DestinationsState{Plan: c.plan, Filter: filter}
	c.state = st
	if filter == FilterAll {
		c.appendTurns(userTurn(userFilter(filter)), botTurn(botPickDestination))
		return nil
	}
	c.appendTurns(userTurn(userFilter(filter)), botTurn(botFiltered(filter, len(st.Visible()))))
	return nil
}

// RequestFeedback asks whether the destination options are satisfactory.
func (c *Controller) RequestFeedback() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guardPlan("RequestFeedback", StageDestinations); err != nil {
		return err
	}
	c.state = DestinationsFeedbackState{Plan: c.plan}
	c.appendTurns(userTurn(userRequestFeedback), botTurn(botAskFeedback))
	return nil
}

// SubmitDestinationFeedback returns to the destinations list. The answer
// only selects the bot reply; the plan is not regenerated.
func (c *Controller) SubmitDestinationFeedback(satisfied bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guardPlan("SubmitDestinationFeedback", StageDestinationsFeedback); err != nil {
		return err
	}
	c.state = DestinationsState{Plan: c.plan}
	if satisfied {
		c.appendTurns(userTurn(userSatisfied), botTurn(botFeedbackThanks))
		return nil
	}
	c.appendTurns(userTurn(userNotSatisfied), botTurn(botDifferentOptions))
	return nil
}

// SelectDestination sets the plan's chosen destination and asks for dates.
// Catalog flights and hotels are refreshed for the new choice.
func (c *Controller) SelectDestination(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guardPlan("SelectDestination", StageDestinations); err != nil {
		return err
	}
	opt, ok := c.plan.FindDestination(name)
	if !ok {
		return invalid("destination", "choose one of the listed destinations")
	}

	updated := *c.plan
	updated.ChosenDestination = opt.Name
	entry := catalog.Lookup(opt.Name)
	updated.Flights, updated.Hotels = entry.Flights, entry.Hotels
	c.plan = &updated

	c.state = FlightDatesState{Destination: opt.Name}
	c.appendTurns(userTurn(userChoseDestination(opt.Name)), botTurn(botAskDates))
	return nil
}

// SubmitDates records the travel window. Dates use YYYY-MM-DD and the end
// date must be strictly after the start date.
func (c *Controller) SubmitDates(start, end string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard("SubmitDates", StageFlightDates); err != nil {
		return err
	}
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	startDate, err := time.Parse(domain.DateLayout, start)
	if err != nil {
		return invalid("start date", "use the YYYY-MM-DD format")
	}
	endDate, err := time.Parse(domain.DateLayout, end)
	if err != nil {
		return invalid("end date", "use the YYYY-MM-DD format")
	}
	if !endDate.After(startDate) {
		return invalid("end date", "the end date must be after the start date")
	}

	days := domain.TripDays(startDate, endDate)
	st := c.state.(FlightDatesState)
	c.inputs.StartDate, c.inputs.EndDate = &startDate, &endDate
	c.state = FlightPreferenceState{Destination: st.Destination, StartDate: startDate, EndDate: endDate, Days: days}
	c.appendTurns(userTurn(userDates(start, end)), botTurn(botTripLength(days)))
	return nil
}

// ChoosePreference searches flights for the trip and shows the itinerary.
// Fallback results are treated like live ones. The feedback prompt is
// scheduled once the itinerary is shown.
func (c *Controller) ChoosePreference(ctx context.Context, pref domain.FlightPreference) error {
	c.mu.Lock()
	if err := c.guard("ChoosePreference", StageFlightPreference); err != nil {
		c.mu.Unlock()
		return err
	}
	if !domain.ValidFlightPreferences[pref] {
		c.mu.Unlock()
		return invalid("flight preference", "choose cheapest or good timing")
	}

	st := c.state.(FlightPreferenceState)
	p := pref
	c.inputs.FlightPreference = &p
	req := app.FlightSearchRequest{
		OriginCity:      c.inputs.OriginCity,
		DestinationCity: st.Destination,
		StartDate:       st.StartDate.Format(domain.DateLayout),
		EndDate:         st.EndDate.Format(domain.DateLayout),
		Preference:      pref,
	}
	c.appendTurns(userTurn(userPreference(pref)))
	epoch := c.begin()
	c.mu.Unlock()

	result := c.flights.SearchFlights(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.finish(epoch) {
		return ErrSessionEnded
	}
	if result == nil {
		result = &app.FlightSearchResult{Preference: pref}
	}
	c.result = result
	c.state = ItineraryState{
		Destination: st.Destination,
		Days:        st.Days,
		Preference:  pref,
		Offers:      result.Offers,
		IsFallback:  result.IsFallback,
	}
	c.appendTurns(botTurn(botFlightsFound(result.Offers, pref, st.Destination)))
	c.scheduleFeedback(st.Destination)
	return nil
}

// SubmitItineraryFeedback moves to booking when approved, otherwise asks
// what to change.
func (c *Controller) SubmitItineraryFeedback(approved bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard("SubmitItineraryFeedback", StageItineraryFeedback); err != nil {
		return err
	}
	dest := c.state.(ItineraryFeedbackState).Destination
	if approved {
		c.state = BookingOptionsState{Destination: dest}
		c.appendTurns(userTurn(userApproved), botTurn(botBookingOptions))
		return nil
	}
	c.state = ModifyItineraryState{Destination: dest}
	c.appendTurns(userTurn(userNotApproved), botTurn(botAskModification))
	return nil
}

// SubmitModification records a change request and asks for feedback again.
// The itinerary is not regenerated.
func (c *Controller) SubmitModification(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard("SubmitModification", StageModifyItinerary); err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return invalid("modification", "describe what you would like to change")
	}
	dest := c.state.(ModifyItineraryState).Destination
	c.state = ItineraryFeedbackState{Destination: dest}
	c.appendTurns(userTurn(text), botTurn(botModificationNoted(text)))
	return nil
}

// ShowBookingFlights shows the ranked flight offers.
func (c *Controller) ShowBookingFlights() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard("ShowBookingFlights", StageBookingOptions); err != nil {
		return err
	}
	st := BookingFlightsState{}
	if c.result != nil {
		st.Offers = c.result.Offers
		st.IsFallback = c.result.IsFallback
	}
	c.state = st
	c.appendTurns(userTurn(userBookFlights), botTurn(botShowFlights(len(st.Offers))))
	return nil
}

// ShowBookingHotels shows the catalog hotels for the chosen destination.
func (c *Controller) ShowBookingHotels() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard("ShowBookingHotels", StageBookingOptions); err != nil {
		return err
	}
	dest := c.state.(BookingOptionsState).Destination
	var hotels []domain.Hotel
	if c.plan != nil {
		hotels = c.plan.Hotels
	}
	c.state = BookingHotelsState{Destination: dest, Hotels: hotels}
	c.appendTurns(userTurn(userBookHotels), botTurn(botShowHotels(dest, len(hotels))))
	return nil
}

// Reset cancels any scheduled prompt and starts a new session. A request
// still in flight completes with ErrSessionEnded and its outcome is dropped.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.resetLocked()
	c.notify()
	return nil
}

// Close cancels any scheduled prompt. Further operations fail with ErrClosed.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.epoch++
	c.cancelPending()
}

// --- internals; all require c.mu ---

func (c *Controller) resetLocked() {
	c.cancelPending()
	c.epoch++
	c.sessionID = uuid.NewString()
	c.state = StartState{}
	c.inputs = domain.CollectedInputs{}
	c.plan = nil
	c.result = nil
	c.turns = nil
	c.busy = false
}

func (c *Controller) guard(op string, allowed ...Stage) error {
	if c.closed {
		return ErrClosed
	}
	if c.busy {
		return ErrBusy
	}
	current := c.state.Stage()
	for _, s := range allowed {
		if s == current {
			return nil
		}
	}
	return wrongStage(op, current)
}

func (c *Controller) guardPlan(op string, allowed ...Stage) error {
	if err := c.guard(op, allowed...); err != nil {
		return err
	}
	if c.plan == nil {
		return wrongStage(op, c.state.Stage())
	}
	return nil
}

// begin marks the controller busy and returns the epoch the pending call
// belongs to.
func (c *Controller) begin() uint64 {
	c.busy = true
	c.notify()
	return c.epoch
}

// finish clears the busy flag and reports whether the call's session is
// still current.
func (c *Controller) finish(epoch uint64) bool {
	if epoch != c.epoch || c.closed {
		return false
	}
	c.busy = false
	return true
}

func (c *Controller) scheduleFeedback(destination string) {
	c.cancelPending()
	epoch := c.epoch
	c.pending = c.scheduler.AfterFunc(c.cfg.FeedbackDelay, func() {
		c.promptItineraryFeedback(epoch, destination)
	})
}

func (c *Controller) promptItineraryFeedback(epoch uint64, destination string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || epoch != c.epoch {
		return
	}
	if _, ok := c.state.(ItineraryState); !ok {
		return
	}
	c.pending = nil
	c.state = ItineraryFeedbackState{Destination: destination}
	c.appendTurns(botTurn(botAskItinFeedback))
}

func (c *Controller) cancelPending() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

type turn struct {
	speaker domain.Speaker
	content string
}

func userTurn(content string) turn { return turn{speaker: domain.SpeakerUser, content: content} }
func botTurn(content string) turn { return turn{speaker: domain.SpeakerBot, content: content} }

func (c *Controller) appendTurns(turns ...turn) {
	now := c.now()
	for _, t := range turns {
		c.turns = append(c.turns, domain.ConversationTurn{
			ID:        uuid.NewString(),
			Speaker:   t.speaker,
			Content:   t.content,
			Timestamp: now,
		})
	}
	c.notify()
}

func (c *Controller) notify() {
	select {
	case c.updates <- struct{}{}:
	default:
	}
}
