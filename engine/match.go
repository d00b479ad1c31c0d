package engine

import (
	"log"
	"math"
	"math/rand"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/event"
	"github.com/lixenwraith/botball/formation"
	"github.com/lixenwraith/botball/navigation"
	"github.com/lixenwraith/botball/parameter"
	"github.com/lixenwraith/botball/physics"
	"github.com/lixenwraith/botball/status"
	"github.com/lixenwraith/botball/vmath"
)

// Options configures a new match
type Options struct {
	Width, Height float64
	Minutes       int
	Speed         float64
	Seed          int64
	Formation     string
}

// DefaultOptions returns the stock 600x400, five minute, normal-speed match
func DefaultOptions() Options {
	return Options{
		Width:     parameter.FieldWidth,
		Height:    parameter.FieldHeight,
		Minutes:   parameter.MatchMinutes,
		Speed:     parameter.GameSpeed,
		Seed:      1,
		Formation: parameter.DefaultFormation,
	}
}

// Match is the authoritative world: ball, rosters, obstacles and referee state
//
// Locking:
//   - One RWMutex guards everything; ticks and commands write, Snapshot reads
//   - No second lock is ever taken while mu is held
//   - Events are buffered under the lock and published after release
type Match struct {
	mu sync.RWMutex

	field     core.Field
	ball      core.Ball
	red       []core.Robot
	blue      []core.Robot
	obstacles []core.Obstacle
	index     *physics.ObstacleIndex

	state   core.MatchState
	minutes int
	speed   float64
	debug   bool
	tick    uint64
	nextID  core.RobotID
	rng     *rand.Rand
	log     history
	pending []event.GameEvent

	formations [2]*formation.Manager
	physics    *physics.Engine
	decisions  map[core.RobotID]navigation.Decision

	// midTick runs between physics and decisions when set; tests inject faults through it
	midTick func()

	router *event.Router
	reg    *status.Registry

	// Cached metric pointers
	statTicks     *atomic.Int64
	statPanics    *atomic.Int64
	statAbandoned *atomic.Int64
	statForced    *atomic.Int64
	statContacts  *atomic.Int64
	statClamped   *atomic.Int64
	statGoals     *atomic.Int64
	statRunning   *atomic.Bool
	statTickMS    *status.AtomicFloat
	statTickPeak  *status.AtomicFloat
	statRemain    *status.AtomicFloat
	statPhase     *status.AtomicString
}

// NewMatch validates opts and creates a stopped match with empty rosters
// A nil router or registry gets a private one
func NewMatch(opts Options, router *event.Router, reg *status.Registry) (*Match, error) {
	if err := validateField(opts.Width, opts.Height); err != nil {
		return nil, err
	}
	if err := validateMinutes(opts.Minutes); err != nil {
		return nil, err
	}
	if err := checkRange("game speed", opts.Speed, parameter.MinGameSpeed, parameter.MaxGameSpeed); err != nil {
		return nil, err
	}
	if opts.Formation == "" {
		opts.Formation = parameter.DefaultFormation
	}
	if router == nil {
		router = event.NewRouter()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	m := &Match{
		field:     core.NewField(opts.Width, opts.Height),
		minutes:   opts.Minutes,
		speed:     opts.Speed,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		physics:   physics.NewEngine(),
		decisions: make(map[core.RobotID]navigation.Decision),
		router:    router,
		reg:       reg,

		statTicks:     reg.Ints.Get(status.KeyTicks),
		statPanics:    reg.Ints.Get(status.KeyTickPanics),
		statAbandoned: reg.Ints.Get(status.KeyAbandoned),
		statForced:    reg.Ints.Get(status.KeyForced),
		statContacts:  reg.Ints.Get(status.KeyContacts),
		statClamped:   reg.Ints.Get(status.KeyClamped),
		statGoals:     reg.Ints.Get(status.KeyGoals),
		statRunning:   reg.Bools.Get(status.KeyRunning),
		statTickMS:    reg.Floats.Get(status.KeyTickDuration),
		statTickPeak:  reg.Floats.Get(status.KeyTickPeak),
		statRemain:    reg.Floats.Get(status.KeyRemaining),
		statPhase:     reg.Strings.Get(status.KeyPhase),
	}
	for _, team := range []core.Team{core.TeamRed, core.TeamBlue} {
		m.formations[team] = formation.NewManager(team)
		if err := m.formations[team].SetFormation(opts.Formation); err != nil {
			return nil, err
		}
	}
	m.resetLocked()
	m.pending = nil
	return m, nil
}

// Router returns the event router handlers register on
func (m *Match) Router() *event.Router {
	return m.router
}

// Registry returns the metric registry the match writes to
func (m *Match) Registry() *status.Registry {
	return m.reg
}

// runSafe executes fn under the write lock and publishes buffered events after release
func (m *Match) runSafe(fn func() error) error {
	events, err := m.locked(fn)
	m.router.PublishAll(events)
	return err
}

func (m *Match) locked(fn func() error) ([]event.GameEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	err := fn()
	events := m.pending
	m.pending = nil
	m.publishStatusLocked()
	return events, err
}

func (m *Match) emit(t event.EventType, payload any) {
	m.pending = append(m.pending, event.GameEvent{Type: t, Tick: m.tick, Payload: payload})
}

func (m *Match) publishStatusLocked() {
	m.statRunning.Store(m.state.Running())
	m.statRemain.Set(m.state.Remaining)
	m.statPhase.Store(m.state.Phase.String())
}

// Tick advances the world one fixed step; a stopped or ended match is unchanged
func (m *Match) Tick() {
	m.TickUnless(nil)
}

// TickUnless is Tick with a commit guard checked under the lock after simulation
// When abandoned reports true the simulated tick is discarded and nothing changes
func (m *Match) TickUnless(abandoned func() bool) {
	_ = m.runSafe(func() error {
		m.stepLocked(abandoned)
		return nil
	})
}

// tickResult is a fully simulated tick waiting to be committed
type tickResult struct {
	ball      core.Ball
	red       []core.Robot
	blue      []core.Robot
	state     core.MatchState
	decisions []navigation.Decision
	events    []event.GameEvent
	lines     []string
	report    physics.Report
	clamps    int
	goals     int
}

func (m *Match) stepLocked(abandoned func() bool) {
	if !m.state.Running() {
		return
	}
	start := time.Now()

	res, err := m.simulate()
	if err != nil {
		m.statPanics.Add(1)
		log.Printf("engine: %v", err)
		return
	}
	if abandoned != nil && abandoned() {
		n := m.statAbandoned.Add(1)
		log.Printf("engine: tick %d abandoned after %v (%d abandoned)", m.tick+1, time.Since(start), n)
		return
	}

	m.tick++
	m.ball = res.ball
	m.red = res.red
	m.blue = res.blue
	m.state = res.state
	clear(m.decisions)
	for _, d := range res.decisions {
		m.decisions[d.ID] = d
	}
	for _, ev := range res.events {
		ev.Tick = m.tick
		m.pending = append(m.pending, ev)
	}
	for _, line := range res.lines {
		m.log.add(line)
	}

	m.statTicks.Add(1)
	m.statContacts.Add(int64(res.report.Contacts))
	m.statClamped.Add(int64(res.clamps + res.report.Clamped))
	m.statGoals.Add(int64(res.goals))
	if res.report.Forced {
		m.statForced.Add(1)
	}
	ms := float64(time.Since(start).Microseconds()) / 1000
	m.statTickMS.Set(ms)
	m.statTickPeak.Peak(ms)
}

// simulate runs one tick on copies of the mutable world
// A panic anywhere in the pipeline becomes an error and nothing is committed
func (m *Match) simulate() (res tickResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("tick %d recovered from panic: %v", m.tick+1, r)
		}
	}()

	res.ball = m.ball
	res.red = slices.Clone(m.red)
	res.blue = slices.Clone(m.blue)
	res.state = m.state

	robots := make([]*core.Robot, 0, len(res.red)+len(res.blue))
	for i := range res.red {
		robots = append(robots, &res.red[i])
	}
	for i := range res.blue {
		robots = append(robots, &res.blue[i])
	}

	// 1. Decisions from the pre-tick view, then apply
	view := m.viewOf(&res.ball, res.red, res.blue)
	res.decisions = navigation.DecideAll(view)
	res.clamps = navigation.ApplyAll(robots, res.decisions, m.field)

	// 2. Physics; collision resolution runs last so the committed layout is settled
	res.report = m.physics.Step(&physics.World{
		Ball:      &res.ball,
		Robots:    robots,
		Obstacles: m.obstacles,
		Field:     m.field,
		Index:     m.index,
	})

	if m.midTick != nil {
		m.midTick()
	}

	// 3. Goal check runs every tick; a goal reset leaves the ball at rest in the center
	if scorer, ok := m.goalScorer(&res.ball); ok {
		res.state.Score(scorer)
		res.ball.Place(m.field.Center())
		res.goals++
		res.events = append(res.events, event.GameEvent{
			Type: event.EventGoalScored,
			Payload: event.GoalPayload{
				Team:    scorer,
				Red:     res.state.RedScore,
				Blue:    res.state.BlueScore,
				Elapsed: res.state.Elapsed(),
			},
		})
		res.lines = append(res.lines, stamp(res.state.Elapsed(), "GOAL %s (%s)", scorer, res.state.ScoreLine()))
	}

	// 4. Clock
	before := displayedSecond(res.state.Remaining)
	res.state.Remaining -= m.speed / parameter.TickRate
	if res.state.Remaining < parameter.ClockEpsilon {
		res.state.Remaining = 0
	}
	if displayedSecond(res.state.Remaining) != before {
		res.events = append(res.events, event.GameEvent{
			Type:    event.EventTimeUpdated,
			Payload: event.TimePayload{Remaining: res.state.Remaining},
		})
	}

	// 5. Full time
	if res.state.Remaining == 0 {
		res.state.Phase = core.PhaseEnded
		res.state.Outcome = core.DecideOutcome(res.state.RedScore, res.state.BlueScore)
		res.events = append(res.events, event.GameEvent{
			Type: event.EventGameEnded,
			Payload: event.EndPayload{
				Outcome: res.state.Outcome,
				Red:     res.state.RedScore,
				Blue:    res.state.BlueScore,
			},
		})
		res.lines = append(res.lines, stamp(res.state.Duration, "FULL TIME %s (%s)", res.state.Outcome, res.state.ScoreLine()))
	}
	return res, nil
}

// goalScorer reports which team scored when the ball center crossed a goal line in the mouth
// Red defends the left goal
func (m *Match) goalScorer(b *core.Ball) (core.Team, bool) {
	if !m.field.InMouth(b.Pos.Y) {
		return core.TeamRed, false
	}
	switch {
	case b.Pos.X <= m.field.Left():
		return core.TeamBlue, true
	case b.Pos.X >= m.field.Right():
		return core.TeamRed, true
	}
	return core.TeamRed, false
}

// viewOf builds the decision input; robots are copied so decisions never see partial moves
func (m *Match) viewOf(ball *core.Ball, red, blue []core.Robot) *navigation.View {
	targets := m.formations[core.TeamRed].Targets(m.field, red, ball.Pos)
	for id, t := range m.formations[core.TeamBlue].Targets(m.field, blue, ball.Pos) {
		targets[id] = t
	}
	robots := make([]core.Robot, 0, len(red)+len(blue))
	robots = append(robots, red...)
	robots = append(robots, blue...)
	return &navigation.View{
		Field:     m.field,
		Ball:      *ball,
		Robots:    robots,
		Obstacles: m.obstacles,
		Index:     m.index,
		Targets:   targets,
	}
}

// displayedSecond is the whole second a clock showing remaining seconds reads
func displayedSecond(remaining float64) int {
	return int(math.Ceil(remaining - parameter.ClockEpsilon))
}

// resetLocked restores a fresh stopped match: empty rosters, no obstacles, centered ball
func (m *Match) resetLocked() {
	m.state = core.NewMatchState(float64(m.minutes * 60))
	m.ball = core.NewBall(m.field.Center())
	m.red = nil
	m.blue = nil
	m.obstacles = nil
	m.tick = 0
	clear(m.decisions)
	m.log.reset()
	m.reassignLocked()
	m.rebuildIndexLocked()
	m.emit(event.EventMatchReset, nil)
}

func (m *Match) rebuildIndexLocked() {
	m.index = physics.NewObstacleIndex(m.obstacles)
}

func (m *Match) reassignLocked() {
	m.formations[core.TeamRed].Assign(m.red)
	m.formations[core.TeamBlue].Assign(m.blue)
}

func (m *Match) roster(team core.Team) *[]core.Robot {
	if team == core.TeamRed {
		return &m.red
	}
	return &m.blue
}

// robotAt resolves a combined index: red robots first, then blue
func (m *Match) robotAt(index int) (*core.Robot, error) {
	switch {
	case index >= 0 && index < len(m.red):
		return &m.red[index], nil
	case index >= len(m.red) && index < len(m.red)+len(m.blue):
		return &m.blue[index-len(m.red)], nil
	}
	return nil, errors.Wrapf(ErrIndexOutOfRange, "robot %d of %d", index, len(m.red)+len(m.blue))
}

func (m *Match) newRobotLocked(team core.Team, role core.Role, center vmath.Vec2) core.Robot {
	m.nextID++
	r := core.NewRobot(m.nextID, team, role, vmath.Vec2{})
	r.SetCenter(center)
	r.Pos, _ = m.field.ClampBox(r.Pos, r.Width, r.Height, parameter.BoundaryMargin)
	return r
}
