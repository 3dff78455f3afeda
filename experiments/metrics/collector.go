package metrics

import (
	"time"

	"github.com/google/uuid"
)

// SearchMetric captures what a single move search cost. Minimax fills
// Nodes and Cutoffs; MCTS fills Simulations and FullPlayouts.
type SearchMetric struct {
	Simulations  int
	FullPlayouts int
	Nodes        int
	Cutoffs      int
	Duration     time.Duration
}

// MoveRecord ties a search metric to one move of one game.
type MoveRecord struct {
	Game   uuid.UUID
	Step   int
	Player string
	SearchMetric
}

// GameRecord summarizes one finished game.
type GameRecord struct {
	ID        uuid.UUID
	Agent1    string
	Agent2    string
	Winner    string
	Moves     int
	StartTime time.Time
	Duration  time.Duration
}

// Collector accumulates search statistics for the move currently being
// searched. Searchers call Start once per move, the Add methods during the
// search, and Complete when the move is chosen.
type Collector interface {
	Start()
	AddSimulation()
	AddFullPlayout()
	AddNode()
	AddCutoff()
	Complete() SearchMetric
}

// Recorder is a Collector that keeps every completed metric, one per move,
// for later export.
type Recorder struct {
	current   SearchMetric
	startTime time.Time
	records   []SearchMetric
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Start() {
	r.current = SearchMetric{}
	r.startTime = time.Now()
}

func (r *Recorder) AddSimulation()  { r.current.Simulations++ }
func (r *Recorder) AddFullPlayout() { r.current.FullPlayouts++ }
func (r *Recorder) AddNode()        { r.current.Nodes++ }
func (r *Recorder) AddCutoff()      { r.current.Cutoffs++ }

func (r *Recorder) Complete() SearchMetric {
	r.current.Duration = time.Since(r.startTime)
	r.records = append(r.records, r.current)
	return r.current
}

// Records returns one metric per completed search, in move order.
func (r *Recorder) Records() []SearchMetric {
	return r.records
}

type dummyCollector struct{}

// NewDummyCollector returns a Collector that discards everything, for
// searches that do not need instrumentation.
func NewDummyCollector() Collector { return dummyCollector{} }

func (dummyCollector) Start()                 {}
func (dummyCollector) AddSimulation()         {}
func (dummyCollector) AddFullPlayout()        {}
func (dummyCollector) AddNode()               {}
func (dummyCollector) AddCutoff()             {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
