package coinmatch

import (
	"sync"

	"github.com/google/uuid"
)

// Tally is a snapshot of the coins a Sorter has seen.
type Tally struct {
	ID       string         `json:"id"`
	Cents    uint64         `json:"cents"`
	Count    int            `json:"count"`
	Quarters map[string]int `json:"quarters"`
}

// Sorter sets quarters aside by state and counts every other coin.
type Sorter struct {
	lock     sync.RWMutex
	id       uuid.UUID
	tracer   Tracer
	cents    uint64
	count    int
	quarters map[UsState]int
}

func NewSorter(tracer Tracer) *Sorter {
	return &Sorter{
		lock:     sync.RWMutex{},
		id:       uuid.New(),
		tracer:   tracer,
		quarters: make(map[UsState]int),
	}
}

func (s *Sorter) Sort(c Coin) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.cents += uint64(ValueInCents(c))

	if q, ok := c.(Quarter); ok {
		s.quarters[q.State]++
		s.tracer.Log("event", "state quarter from "+q.State.String())
		return
	}

	if _, ok := c.(Penny); ok {
		s.tracer.Log("event", "lucky penny")
	}
	s.count++
}

func (s *Sorter) SortAll(coins []Coin) {
	for _, c := range coins {
		s.Sort(c)
	}
}

func (s *Sorter) Tally() Tally {
	s.lock.RLock()
	defer s.lock.RUnlock()

	quarters := make(map[string]int, len(s.quarters))
	for state, n := range s.quarters {
		quarters[state.String()] = n
	}

	return Tally{
		ID:       s.id.String(),
		Cents:    s.cents,
		Count:    s.count,
		Quarters: quarters,
	}
}
