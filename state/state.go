// Package state drives the screen flow of a game session.
package state

import (
	"time"

	"github.com/sirupsen/logrus"

	"gophermaze/logger"
)

type State int

const (
	Menu State = iota
	Warning
	Playing
	Screamer
	GameOver
	Win
)

var stateNames = [...]string{
	Menu:     "menu",
	Warning:  "warning",
	Playing:  "playing",
	Screamer: "screamer",
	GameOver: "game-over",
	Win:      "win",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

type Event int

const (
	Confirm Event = iota
	Timeout
	Caught
	Escaped
)

var eventNames = [...]string{
	Confirm: "confirm",
	Timeout: "timeout",
	Caught:  "caught",
	Escaped: "escaped",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

type edge struct {
	from  State
	event Event
}

var transitions = map[edge]State{
	{Menu, Confirm}:     Warning,
	{Warning, Confirm}:  Playing,
	{Warning, Timeout}:  Playing,
	{Playing, Caught}:   Screamer,
	{Playing, Escaped}:  Win,
	{Screamer, Timeout}: GameOver,
	{GameOver, Confirm}: Menu,
	{Win, Confirm}:      Menu,
}

// Transition looks up where event leads from s. Unknown pairs leave s
// unchanged and report false.
func Transition(s State, e Event) (State, bool) {
	next, ok := transitions[edge{s, e}]
	if !ok {
		return s, false
	}
	return next, true
}

// Durations holds how long the timed states last before they time out.
type Durations struct {
	Warning  time.Duration
	Screamer time.Duration
}

func (d Durations) of(s State) time.Duration {
	switch s {
	case Warning:
		return d.Warning
	case Screamer:
		return d.Screamer
	}
	return 0
}

// Machine is the current state plus the time spent in it. Methods return
// the next machine and never modify the receiver.
type Machine struct {
	State     State
	Elapsed   time.Duration
	Durations Durations

	entered bool
}

func New(d Durations) Machine {
	return Machine{State: Menu, Durations: d}
}

// Fire applies event. A change of state resets Elapsed.
func (m Machine) Fire(e Event) Machine {
	next, ok := Transition(m.State, e)
	if !ok {
		m.entered = false
		return m
	}

	logger.Log.WithFields(logrus.Fields{
		"from":  m.State,
		"to":    next,
		"event": e,
	}).Info("state change")

	m.State = next
	m.Elapsed = 0
	m.entered = true
	return m
}

// Tick adds dt to the time in the current state and fires Timeout once a
// timed state has run its course.
func (m Machine) Tick(dt time.Duration) Machine {
	m.entered = false
	m.Elapsed += dt

	if m.timed() && m.Elapsed >= m.Durations.of(m.State) {
		return m.Fire(Timeout)
	}
	return m
}

func (m Machine) timed() bool {
	return m.State == Warning || m.State == Screamer
}

// Entered reports whether the last Fire or Tick changed state.
func (m Machine) Entered() bool {
	return m.entered
}
