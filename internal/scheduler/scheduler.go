package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/phuslu/log"
	"github.com/robfig/cron/v3"

	"TrendSpotter/internal/analysis"
	"TrendSpotter/internal/notifier"
)

// Sender delivers rendered reports.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler runs the watchlist on a cron schedule and answers chat commands.
type Scheduler struct {
	Cron      *cron.Cron
	Analyzer  *analysis.Analyzer
	Notifier  Sender
	Watchlist []string
	Pairs     [][2]string
	Ctx       context.Context

	running sync.WaitGroup
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, an *analysis.Analyzer, sender Sender, watchlist []string, pairs [][]string) *Scheduler {
	s := &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Analyzer:  an,
		Notifier:  sender,
		Watchlist: watchlist,
		Ctx:       ctx,
	}
	for _, p := range pairs {
		if len(p) == 2 {
			s.Pairs = append(s.Pairs, [2]string{p[0], p[1]})
		}
	}
	return s
}

// Register adds the watchlist task.
func (s *Scheduler) Register(watchCron string) error {
	if _, err := s.Cron.AddFunc(watchCron, s.watchTask); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Int("tickers", len(s.Watchlist)).Int("pairs", len(s.Pairs)).Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully and waits for watchlist runs
// started from chat commands.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.running.Wait()
	log.Info().Msg("scheduler stopped")
}

// RunWatchNow executes the watchlist task immediately.
func (s *Scheduler) RunWatchNow() {
	s.watchTask()
}

func (s *Scheduler) watchTask() {
	log.Info().Msg("running watchlist task")
	for _, ticker := range s.Watchlist {
		if s.Ctx.Err() != nil {
			return
		}
		s.trySend(s.report(s.Ctx, ticker, ""))
	}
	for _, p := range s.Pairs {
		if s.Ctx.Err() != nil {
			return
		}
		s.trySend(s.report(s.Ctx, p[0], p[1]))
	}
}

func (s *Scheduler) report(ctx context.Context, ticker1, ticker2 string) string {
	out, err := s.Analyzer.Analyze(ctx, ticker1, ticker2)
	if err != nil {
		log.Error().Str("ticker1", ticker1).Str("ticker2", ticker2).Err(err).Msg("analysis failed")
		return notifier.FormatError(err)
	}
	return notifier.FormatOutcome(out)
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}
	name := strings.ToLower(fields[0])
	if i := strings.IndexByte(name, '@'); i > 0 {
		name = name[:i]
	}
	args := fields[1:]

	switch name {
	case "/trend":
		if len(args) != 1 {
			return "Usage: /trend TICKER"
		}
		return s.report(ctx, args[0], "")
	case "/compare":
		if len(args) != 2 {
			return "Usage: /compare TICKER1 TICKER2"
		}
		return s.report(ctx, args[0], args[1])
	case "/watchlist":
		s.running.Add(1)
		go func() {
			defer s.running.Done()
			s.watchTask()
		}()
		return watchlistAck
	default:
		return helpText
	}
}

const watchlistAck = "Running the watchlist, reports will follow."

const helpText = "Available commands:\n" +
	"• /trend TICKER - SMA trend\n" +
	"• /compare TICKER1 TICKER2 - price correlation\n" +
	"• /watchlist - run the watchlist now"

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Error().Err(err).Msg("send notification")
	}
}
