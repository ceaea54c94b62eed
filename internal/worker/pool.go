// Package worker runs searches in the background so a driving loop stays
// responsive. Each colour has its own lane: at most one request per colour
// is outstanding, and its outcome waits in a single slot until collected.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/search"
)

// Request is a search to run for one side. Board is owned by the worker
// once dispatched.
type Request struct {
	Colour chess.Colour
	Board  *chess.Board
	Ply    int
}

// Outcome is the result of a request. Found is false when the side had no
// legal move.
type Outcome struct {
	Colour chess.Colour
	Ply    int
	Result search.Result
	Found  bool
	Err    error
}

// SearchFunc runs one request. It is called on the lane's goroutine.
type SearchFunc func(req Request) Outcome

// lane is the per-colour work queue and result slot.
type lane struct {
	work    chan Request
	ready   chan struct{}
	mu      sync.Mutex
	slot    Outcome
	filled  bool
	pending int32
}

// Pool owns one goroutine per colour.
type Pool struct {
	lanes      [chess.NumColours]*lane
	searchFunc SearchFunc
	wg         sync.WaitGroup
	stopFlag   int32
	closeOnce  sync.Once
	dispatched int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithSearchers runs each colour's requests through its own searcher.
func WithSearchers(white, black *search.Searcher) PoolOption {
	return func(p *Pool) {
		searchers := [chess.NumColours]*search.Searcher{chess.White: white, chess.Black: black}
		p.searchFunc = func(req Request) Outcome {
			r, ok, err := searchers[req.Colour].BestMoveChecked(req.Board, req.Colour)
			return Outcome{Colour: req.Colour, Ply: req.Ply, Result: r, Found: ok, Err: err}
		}
	}
}

// NewPool creates a pool that runs requests with searchFunc. Options may
// replace the search function.
func NewPool(searchFunc SearchFunc, opts ...PoolOption) *Pool {
	p := &Pool{searchFunc: searchFunc}
	for _, opt := range opts {
		opt(p)
	}
	for c := range p.lanes {
		p.lanes[c] = &lane{
			work:  make(chan Request, 1),
			ready: make(chan struct{}, 1),
		}
	}
	return p
}

// Start starts one worker goroutine per colour.
func (p *Pool) Start() {
	for _, l := range p.lanes {
		p.wg.Add(1)
		go p.worker(l)
	}
}

// worker runs requests from one lane until its work channel is closed.
func (p *Pool) worker(l *lane) {
	defer p.wg.Done()

	for req := range l.work {
		out := p.searchFunc(req)

		// The token is sent under the lock so Collect never sees a filled
		// slot whose token is still in flight.
		l.mu.Lock()
		l.slot = out
		l.filled = true
		l.ready <- struct{}{}
		l.mu.Unlock()
	}
}

// Dispatch queues a search of b for colour. The board is cloned, so the
// caller may keep using b. Dispatch returns false, without queuing, when
// colour already has an outstanding request or the pool is stopped.
func (p *Pool) Dispatch(colour chess.Colour, b *chess.Board, ply int) bool {
	if p.IsStopped() {
		return false
	}
	l := p.lanes[colour]
	if !atomic.CompareAndSwapInt32(&l.pending, 0, 1) {
		return false
	}
	atomic.AddInt64(&p.dispatched, 1)
	l.work <- Request{Colour: colour, Board: b.Clone(), Ply: ply}
	return true
}

// Ready returns the channel that signals colour's outcome is available.
// Receive from it once, then call Collect.
func (p *Pool) Ready(colour chess.Colour) <-chan struct{} {
	return p.lanes[colour].ready
}

// Collect takes colour's outcome out of its slot and frees the lane for the
// next request. It returns false if no outcome is waiting.
func (p *Pool) Collect(colour chess.Colour) (Outcome, bool) {
	l := p.lanes[colour]
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.filled {
		return Outcome{}, false
	}
	out := l.slot
	l.slot = Outcome{}
	l.filled = false
	select {
	case <-l.ready:
	default:
	}
	atomic.StoreInt32(&l.pending, 0)
	return out, true
}

// Wait blocks until colour's outcome is ready and collects it.
func (p *Pool) Wait(colour chess.Colour) Outcome {
	<-p.Ready(colour)
	out, _ := p.Collect(colour)
	return out
}

// Pending reports whether colour has a request that has not been collected.
func (p *Pool) Pending(colour chess.Colour) bool {
	return atomic.LoadInt32(&p.lanes[colour].pending) != 0
}

// Dispatched returns the number of requests accepted so far.
func (p *Pool) Dispatched() int64 {
	return atomic.LoadInt64(&p.dispatched)
}

// Stop makes Dispatch refuse new requests. Searches already running are
// not interrupted.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close stops the pool and waits for in-flight searches to finish. Their
// outcomes stay collectable. Close must not race with Dispatch.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.Stop()
		for _, l := range p.lanes {
			close(l.work)
		}
		p.wg.Wait()
	})
}
