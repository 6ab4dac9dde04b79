package services

import (
	"log"
	"sync"
	"time"
)

// SchedulerService drives the clock-dependent parts of the state: activity
// flags and the nightly reset. Each runs on its own ticker and reads the
// wall clock on every tick, so missed ticks need no catch-up.
type SchedulerService struct {
	state      *StateService
	now        Clock
	interval   time.Duration
	cutoffHour int

	wg   sync.WaitGroup
	stop chan struct{}
	once sync.Once
}

func NewSchedulerService(state *StateService, now Clock, interval time.Duration, cutoffHour int) *SchedulerService {
	if now == nil {
		now = time.Now
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &SchedulerService{
		state:      state,
		now:        now,
		interval:   interval,
		cutoffHour: cutoffHour,
		stop:       make(chan struct{}),
	}
}

// Start refreshes activity once and launches both ticker loops.
func (s *SchedulerService) Start() {
	s.RefreshTick()

	s.wg.Add(2)
	go s.loop("activity refresh", s.RefreshTick)
	go s.loop("daily reset", s.ResetTick)
}

func (s *SchedulerService) loop(name string, tick func()) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Printf("scheduler: %s loop started", name)

	for {
		select {
		case <-ticker.C:
			tick()
		case <-s.stop:
			log.Printf("scheduler: %s loop stopped", name)
			return
		}
	}
}

func (s *SchedulerService) RefreshTick() {
	defer recoverTick("activity refresh")
	s.state.RefreshActivity(s.now())
}

func (s *SchedulerService) ResetTick() {
	defer recoverTick("daily reset")
	s.state.ResetIfDue(s.now(), s.cutoffHour)
}

func recoverTick(name string) {
	if r := recover(); r != nil {
		log.Printf("scheduler: %s tick failed: %v", name, r)
	}
}

// Shutdown stops both tickers and waits for the loops to exit.
func (s *SchedulerService) Shutdown() {
	s.once.Do(func() {
		close(s.stop)
	})
	s.wg.Wait()
}
