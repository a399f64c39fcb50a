package application

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tiagokriok/taskflow/internal/domain"
)

const defaultSaveTimeout = 10 * time.Second

// Saver persists board snapshots in the background. Only the latest snapshot
// per board is kept while a save is pending, so bursts of edits coalesce into
// one write. Failures are logged and never retried; the in-memory snapshot
// stays authoritative.
type Saver struct {
	repo    domain.BoardRepository
	log     logrus.FieldLogger
	timeout time.Duration

	mu       sync.Mutex
	pending  map[string]domain.Board
	order    []string
	closed   bool
	inflight string
	idle     *sync.Cond

	wake      chan struct{}
	flush     chan chan struct{}
	quit      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

func NewSaver(repo domain.BoardRepository, log logrus.FieldLogger, timeout time.Duration) *Saver {
	if log == nil {
		panic("application.NewSaver: logger is nil")
	}
	if timeout <= 0 {
		timeout = defaultSaveTimeout
	}
	s := &Saver{
		repo:    repo,
		log:     log,
		timeout: timeout,
		pending: map[string]domain.Board{},
		wake:    make(chan struct{}, 1),
		flush:   make(chan chan struct{}),
		quit:    make(chan struct{}),
	}
	s.idle = sync.NewCond(&s.mu)
	s.wg.Add(1)
	go s.run()
	return s
}

// Enqueue schedules board for saving and returns immediately.
func (s *Saver) Enqueue(board domain.Board) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.log.WithField("board", board.ID).Warn("saver closed, dropping snapshot")
		return
	}
	if _, queued := s.pending[board.ID]; !queued {
		s.order = append(s.order, board.ID)
	}
	s.pending[board.ID] = board
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Discard drops a pending snapshot, used when its board is deleted. A save of
// boardID that is already running is waited for, so nothing written by the
// saver can land after Discard returns.
func (s *Saver) Discard(boardID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[boardID]; ok {
		delete(s.pending, boardID)
		for i, id := range s.order {
			if id == boardID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	for s.inflight == boardID {
		s.idle.Wait()
	}
}

// Flush blocks until every snapshot enqueued before the call has been
// written or ctx is done.
func (s *Saver) Flush(ctx context.Context) error {
	ack := make(chan struct{})
	select {
	case s.flush <- ack:
	case <-s.quit:
		s.wg.Wait()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-ack:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close writes whatever is pending and stops the background goroutine.
func (s *Saver) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(s.quit)
	})
	s.wg.Wait()
}

func (s *Saver) run() {
	defer s.wg.Done()
	for {
		select {
		case <-s.wake:
			s.drain()
		case ack := <-s.flush:
			s.drain()
			close(ack)
		case <-s.quit:
			s.drain()
			return
		}
	}
}

func (s *Saver) drain() {
	for {
		s.mu.Lock()
		if len(s.order) == 0 {
			s.mu.Unlock()
			return
		}
		id := s.order[0]
		s.order = s.order[1:]
		board := s.pending[id]
		delete(s.pending, id)
		s.inflight = id
		s.mu.Unlock()

		s.save(board)

		s.mu.Lock()
		s.inflight = ""
		s.idle.Broadcast()
		s.mu.Unlock()
	}
}

func (s *Saver) save(board domain.Board) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.repo.Save(ctx, board); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"board": board.ID,
			"op":    "save",
		}).Error("persist board snapshot failed")
		return
	}
	s.log.WithFields(logrus.Fields{
		"board":    board.ID,
		"duration": time.Since(start),
	}).Debug("board snapshot saved")
}
