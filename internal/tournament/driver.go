// Package tournament runs a full 63-game bracket against an injected decider.
package tournament

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/mascot-madness/internal/domain/bracket"
	"github.com/preston-bernstein/mascot-madness/internal/domain/games"
	"github.com/preston-bernstein/mascot-madness/internal/logging"
	"github.com/preston-bernstein/mascot-madness/internal/metrics"
)

// Decider settles one game. The driver validates whatever it returns.
type Decider interface {
	Decide(ctx context.Context, teamA, teamB string) (games.Outcome, error)
}

// Driver sequences a tournament run. A Driver may be reused, but only one Run
// may be in progress at a time.
type Driver struct {
	decider  Decider
	logger   *slog.Logger
	metrics  *metrics.Recorder
	parallel bool
	observer func(games.Record)
	newRunID func() string

	mu    sync.Mutex
	state State
}

// New constructs a driver around the given decider.
func New(decider Decider, opts ...Option) *Driver {
	d := &Driver{
		decider:  decider,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// State reports where the current or most recent run stands.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Driver) setState(s State) {
	d.mu.Lock()
	d.state = s
	d.mu.Unlock()
}

func (d *Driver) begin() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state.running() {
		return false
	}
	d.state = DivisionRounds
	return true
}

// Run plays every game in b and returns the ordered log and winners.
// The bracket is validated before any game is decided and is advanced in place.
// Any error halts the run; no partial result is returned.
func (d *Driver) Run(ctx context.Context, b *bracket.Bracket) (Result, error) {
	if d.decider == nil {
		return Result{}, ErrNoDecider
	}
	if b == nil {
		return Result{}, &bracket.StructuralError{Invariant: "bracket present", Expected: "bracket", Actual: "nil"}
	}
	if !d.begin() {
		return Result{}, ErrAlreadyRunning
	}

	runID := d.newRunID()
	logger := d.logger
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldRunID, runID))
	}
	logging.Info(logger, "tournament starting", slog.Bool("parallel", d.parallel))

	start := time.Now()
	res, err := d.run(ctx, logger, b)
	elapsed := time.Since(start)
	d.metrics.RecordRun(elapsed, err)
	if err != nil {
		d.setState(Failed)
		logging.Error(logger, "tournament failed", err, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
		return Result{}, err
	}

	res.RunID = runID
	d.setState(Complete)
	logging.Info(logger, "tournament complete",
		slog.String(logging.FieldWinner, res.Champion.Name),
		slog.Int(logging.FieldCount, len(res.Games)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return res, nil
}

func (d *Driver) run(ctx context.Context, logger *slog.Logger, b *bracket.Bracket) (Result, error) {
	if err := b.Validate(); err != nil {
		return Result{}, err
	}

	var played []games.Record
	emit := func(rec games.Record) {
		rec.Sequence = len(played) + 1
		played = append(played, rec)
		if d.observer != nil {
			d.observer(rec)
		}
	}

	var err error
	if d.parallel {
		err = d.playDivisionsParallel(ctx, logger, b, emit)
	} else {
		err = d.playDivisions(ctx, logger, b, emit)
	}
	if err != nil {
		return Result{}, err
	}

	regionWinners := make(map[string]bracket.Team, bracket.DivisionCount)
	for _, name := range bracket.DivisionOrder() {
		div := b.Divisions[name]
		champ, ok := div.Champion()
		if !ok {
			return Result{}, &bracket.StructuralError{Invariant: name + " region winner", Expected: 1, Actual: len(div.Teams)}
		}
		regionWinners[name] = champ
	}

	d.setState(FinalFour)
	semis, err := bracket.FinalFourPairs(regionWinners)
	if err != nil {
		return Result{}, err
	}
	finalists := make([]bracket.Team, 0, len(semis))
	for i, m := range semis {
		rec, winner, err := d.play(ctx, logger, game{
			phase:   games.FinalFour,
			label:   fmt.Sprintf("%s - Semifinal %d", games.FinalFour, i+1),
			number:  i + 1,
			matchup: m,
		})
		if err != nil {
			return Result{}, err
		}
		emit(rec)
		finalists = append(finalists, winner)
	}

	d.setState(Championship)
	final, err := bracket.ChampionshipPair(finalists)
	if err != nil {
		return Result{}, err
	}
	rec, champion, err := d.play(ctx, logger, game{
		phase:   games.Championship,
		label:   games.Championship.String(),
		number:  1,
		matchup: final,
	})
	if err != nil {
		return Result{}, err
	}
	emit(rec)

	return Result{
		Games:         played,
		RegionWinners: regionWinners,
		Finalists:     [2]bracket.Team{finalists[0], finalists[1]},
		Champion:      champion,
	}, nil
}

func (d *Driver) playDivisions(ctx context.Context, logger *slog.Logger, b *bracket.Bracket, emit func(games.Record)) error {
	for _, name := range bracket.DivisionOrder() {
		div, err := b.Division(name)
		if err != nil {
			return err
		}
		if err := d.playDivision(ctx, divisionLogger(logger, name), div, emit); err != nil {
			return err
		}
	}
	return nil
}

// playDivisionsParallel runs each region on a deep copy so no team list is shared
// between goroutines. Winners are written back and records replayed in division
// order only after every region succeeds.
func (d *Driver) playDivisionsParallel(ctx context.Context, logger *slog.Logger, b *bracket.Bracket, emit func(games.Record)) error {
	order := bracket.DivisionOrder()
	isolated := b.Clone()
	logs := make([][]games.Record, len(order))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range order {
		i, name := i, name
		div, err := isolated.Division(name)
		if err != nil {
			return err
		}
		g.Go(func() error {
			return d.playDivision(gctx, divisionLogger(logger, name), div, func(rec games.Record) {
				logs[i] = append(logs[i], rec)
			})
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, name := range order {
		b.Divisions[name].Teams = isolated.Divisions[name].Teams
		for _, rec := range logs[i] {
			emit(rec)
		}
	}
	return nil
}

// playDivision plays rounds until one team remains: 8, 4, 2 and 1 games.
func (d *Driver) playDivision(ctx context.Context, logger *slog.Logger, div *bracket.Division, emit func(games.Record)) error {
	for round := 0; ; round++ {
		matchups, err := div.Matchups()
		if err != nil {
			return err
		}
		if len(matchups) == 0 {
			champ, _ := div.Champion()
			logging.Info(logger, "region winner decided", slog.String(logging.FieldWinner, champ.Name))
			return nil
		}
		phase, ok := games.DivisionPhase(round)
		if !ok {
			return &bracket.StructuralError{Invariant: div.Name + " round count", Expected: int(games.Elite8) + 1, Actual: round + 1}
		}

		winners := make([]bracket.Team, 0, len(matchups))
		for i, m := range matchups {
			rec, winner, err := d.play(ctx, logger, game{
				division: div.Name,
				phase:    phase,
				label:    phase.String(),
				number:   i + 1,
				matchup:  m,
			})
			if err != nil {
				return err
			}
			emit(rec)
			winners = append(winners, winner)
		}
		if err := div.Advance(winners); err != nil {
			return err
		}
		logging.Debug(logger, "round complete",
			slog.String(logging.FieldPhase, phase.String()),
			slog.Int(logging.FieldRound, round+1),
			slog.Int(logging.FieldCount, len(winners)),
		)
	}
}

type game struct {
	division string
	phase    games.Phase
	label    string
	number   int
	matchup  bracket.Matchup
}

func (g game) describe() string {
	if g.division == "" {
		return g.label
	}
	return fmt.Sprintf("%s %s game %d", g.division, g.label, g.number)
}

// play asks the decider for one verdict and reconciles it with the matchup.
func (d *Driver) play(ctx context.Context, logger *slog.Logger, g game) (games.Record, bracket.Team, error) {
	a, b := g.matchup.A, g.matchup.B
	out, err := d.decider.Decide(ctx, a.Name, b.Name)
	if err != nil {
		return games.Record{}, bracket.Team{}, &DeciderError{Label: g.describe(), TeamA: a.Name, TeamB: b.Name, Err: err}
	}
	out, err = games.Validate(out, a.Name, b.Name)
	if err != nil {
		return games.Record{}, bracket.Team{}, fmt.Errorf("tournament: %s: %w", g.describe(), err)
	}

	winner := a
	if out.Winner == b.Name {
		winner = b
	}
	d.metrics.RecordGame(g.phase.String())
	logging.Info(logger, "game decided",
		slog.String(logging.FieldPhase, g.label),
		slog.String(logging.FieldTeamA, a.Name),
		slog.String(logging.FieldTeamB, b.Name),
		slog.String(logging.FieldWinner, out.Winner),
		slog.Int(logging.FieldConfidence, out.Confidence),
	)

	return games.Record{
		Phase:      g.phase,
		Label:      g.label,
		Division:   g.division,
		GameNumber: g.number,
		TeamA:      a.Name,
		TeamB:      b.Name,
		Winner:     out.Winner,
		Loser:      out.Loser,
		Confidence: out.Confidence,
		Narrative:  out.Narrative,
	}, winner, nil
}

func divisionLogger(logger *slog.Logger, division string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String(logging.FieldDivision, division))
}
