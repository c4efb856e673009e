package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/wordgrid/internal/board"
	"github.com/samdwyer/wordgrid/internal/match"
	"github.com/samdwyer/wordgrid/internal/telemetry"
	"github.com/samdwyer/wordgrid/internal/words"
)

// validation is the word source's verdict on a submitted guess.
type validation struct {
	gen   uint64 // generation the guess was submitted in
	row   int
	guess string
	ok    bool
	err   error
}

// Controller owns a board and serializes every change to it.
//
// All methods must be called from a single goroutine, normally the one
// running Run. Word lookups happen on helper goroutines and are handed back
// through an internal channel.
type Controller struct {
	cfg       Config
	board     *board.Board
	source    words.Source
	presenter Presenter
	base      zerolog.Logger
	logger    zerolog.Logger // base plus the current game ID
	tracer    trace.Tracer

	state  State
	answer string
	gameID string
	err    error

	// gen increases on every reset; results from older generations are dropped.
	gen     uint64
	results chan validation
	resets  chan uint64
}

// Option customizes a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.base, c.logger = l, l }
}

// WithTracer sets the tracer. The default uses the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(c *Controller) { c.tracer = t }
}

// New creates a controller for b. The game starts with Start or Run.
func New(b *board.Board, src words.Source, p Presenter, cfg Config, opts ...Option) *Controller {
	if p == nil {
		p = NopPresenter{}
	}
	c := &Controller{
		cfg:       cfg,
		board:     b,
		source:    src,
		presenter: p,
		base:      zerolog.Nop(),
		logger:    zerolog.Nop(),
		tracer:    telemetry.Tracer("game"),
		state:     StateHalted,
		err:       errNotStarted,
		results:   make(chan validation, 1),
		resets:    make(chan uint64, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins the first game. It is a reset under another name.
func (c *Controller) Start(ctx context.Context) error {
	return c.reset(ctx)
}

// Run starts a game and then processes events until the channel is closed or
// ctx is done. Word source failures do not stop the loop; a later reset
// event may recover.
func (c *Controller) Run(ctx context.Context, events <-chan Event) error {
	if err := c.Start(ctx); err != nil {
		c.logger.Error().Err(err).Msg("initial game failed to start")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := c.HandleEvent(ctx, ev); err != nil {
				c.logger.Debug().Err(err).Str("event", ev.Kind.String()).Msg("event rejected")
			}

		case v := <-c.results:
			if err := c.applyValidation(ctx, v); err != nil {
				c.logger.Debug().Err(err).Str("guess", v.guess).Msg("guess rejected")
			}

		case gen := <-c.resets:
			if gen != c.gen || c.state != StateTerminal {
				continue
			}
			if err := c.reset(ctx); err != nil {
				c.logger.Error().Err(err).Msg("automatic reset failed")
			}
		}
	}
}

// HandleEvent processes a single input event.
//
// The returned error is the user-facing reason a submission was rejected, or
// the word source failure that halted the game. Ignored events return nil.
func (c *Controller) HandleEvent(ctx context.Context, ev Event) error {
	switch ev.Kind {
	case EventReset:
		return c.reset(ctx)
	case EventReveal:
		c.reveal()
		return nil
	}

	if c.state != StateEntering {
		c.logger.Debug().
			Str("event", ev.Kind.String()).
			Str("state", c.state.String()).
			Msg("event ignored")
		return nil
	}

	switch ev.Kind {
	case EventLetter:
		if c.board.InsertLetter(ev.Letter) {
			row, col := c.board.Cursor()
			c.presenter.OnCellUpdated(row, col-1, rune(c.board.Cell(row, col-1)))
		}
	case EventBackspace:
		if c.board.DeleteLetter() {
			row, col := c.board.Cursor()
			c.presenter.OnCellUpdated(row, col, 0)
		}
	case EventSubmit:
		return c.submit(ctx)
	}
	return nil
}

// submit checks the active row locally and hands it to the word source.
func (c *Controller) submit(ctx context.Context) error {
	row, _ := c.board.Cursor()

	if !c.board.IsRowComplete() {
		c.reject(row, msgIncomplete)
		return ErrIncompleteWord
	}

	guess := c.board.CurrentGuess()
	for _, rule := range c.cfg.Rules {
		if rule(guess) {
			c.reject(row, msgInvalid)
			return fmt.Errorf("%w: %s", ErrInvalidPattern, guess)
		}
	}

	c.state = StateSubmitting
	gen := c.gen
	go func() {
		ctx, span := c.tracer.Start(ctx, "game.submit", trace.WithAttributes(
			attribute.Int("game.row", row),
		))
		ok, err := c.source.IsValidWord(ctx, guess)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		select {
		case c.results <- validation{gen: gen, row: row, guess: guess, ok: ok, err: err}:
		case <-ctx.Done():
		}
	}()
	return nil
}

// applyValidation completes a submission started by submit.
func (c *Controller) applyValidation(ctx context.Context, v validation) error {
	if v.gen != c.gen || c.state != StateSubmitting {
		c.logger.Debug().Uint64("gen", v.gen).Msg("stale validation dropped")
		return nil
	}

	switch {
	case v.err != nil:
		c.halt(v.err)
		return v.err
	case !v.ok:
		c.state = StateEntering
		c.reject(v.row, msgNotFound)
		return fmt.Errorf("%w: %s", ErrWordNotFound, v.guess)
	}

	return c.evaluate(ctx, v.row, v.guess)
}

// evaluate scores an accepted guess and moves the game on.
func (c *Controller) evaluate(ctx context.Context, row int, guess string) error {
	_, span := c.tracer.Start(ctx, "game.evaluate", trace.WithAttributes(
		attribute.String("game.id", c.gameID),
		attribute.Int("game.row", row),
	))
	defer span.End()

	c.state = StateEvaluated
	statuses := match.Evaluate(guess, c.answer)

	updates, err := c.board.Evaluate(statuses)
	if err != nil {
		// Board refused: nothing was applied.
		span.SetStatus(codes.Error, err.Error())
		c.logger.Error().Err(err).Int("row", row).Msg("row evaluation refused")
		c.state = StateEntering
		return err
	}

	c.presenter.OnRowEvaluated(row, statuses)
	for _, u := range updates {
		c.presenter.OnKeyboardUpdated(u.Letter, u.Status)
	}

	if strings.EqualFold(guess, c.answer) {
		c.finish(board.Won)
		span.SetAttributes(attribute.String("game.outcome", board.Won.String()))
		return nil
	}

	err = c.board.AdvanceRow()
	switch {
	case errors.Is(err, board.ErrRowsExhausted):
		c.finish(board.Lost)
		span.SetAttributes(attribute.String("game.outcome", board.Lost.String()))
		return nil
	case err != nil:
		c.logger.Error().Err(err).Int("row", row).Msg("advance row failed")
		return err
	}

	c.logger.Debug().Int("row", row).Str("guess", guess).Msg("guess scored")
	c.state = StateEntering
	return nil
}

// finish ends the game with outcome o.
func (c *Controller) finish(o board.Outcome) {
	if err := c.board.MarkOutcome(o); err != nil {
		c.logger.Error().Err(err).Str("outcome", o.String()).Msg("outcome already set")
		return
	}
	c.state = StateTerminal

	if o == board.Won {
		c.presenter.OnToast(msgWon, c.cfg.ToastDuration)
	} else {
		c.presenter.OnToast(msgLost+c.answer, c.cfg.ToastDuration)
	}
	c.presenter.OnGameOver(o, c.answer)
	c.logger.Info().Str("outcome", o.String()).Msg("game over")

	if c.cfg.AutoResetDelay > 0 {
		gen := c.gen
		time.AfterFunc(c.cfg.AutoResetDelay, func() {
			select {
			case c.resets <- gen:
			default:
			}
		})
	}
}

// reset starts a new game. It is accepted in every state.
func (c *Controller) reset(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "game.reset")
	defer span.End()

	c.gen++
	c.gameID = uuid.NewString()
	c.logger = c.base.With().Str("game_id", c.gameID).Logger()
	span.SetAttributes(attribute.String("game.id", c.gameID))

	c.board.Reset()
	c.answer = ""
	c.err = nil
	c.presenter.OnReset()

	answer, err := c.source.Answer(ctx)
	if err == nil {
		answer = strings.ToUpper(answer)
		if !isWord(answer, c.board.Cols()) {
			err = fmt.Errorf("%w: unusable answer %q", words.ErrSourceUnavailable, answer)
		}
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		c.halt(err)
		return err
	}

	c.answer = answer
	c.state = StateEntering
	c.logger.Info().Msg("game started")
	return nil
}

// halt parks the controller until the next reset.
func (c *Controller) halt(err error) {
	c.state = StateHalted
	c.err = err
	c.presenter.OnToast(msgUnavailable, 0)
	c.logger.Error().Err(err).Msg("word source unavailable")
}

// reject reports a user-correctable submission problem.
func (c *Controller) reject(row int, msg string) {
	c.presenter.OnToast(msg, c.cfg.ToastDuration)
	c.presenter.OnRowShake(row)
}

func (c *Controller) reveal() {
	if c.answer == "" {
		return
	}
	c.presenter.OnToast(msgReveal+c.answer, c.cfg.ToastDuration)
}

// State returns the controller state.
func (c *Controller) State() State { return c.state }

// Outcome returns the outcome of the current game.
func (c *Controller) Outcome() board.Outcome { return c.board.Outcome() }

// Answer returns the current answer in upper case, empty while halted.
func (c *Controller) Answer() string { return c.answer }

// GameID returns the identifier of the current game.
func (c *Controller) GameID() string { return c.gameID }

// Err returns the failure that halted the controller, nil otherwise.
func (c *Controller) Err() error { return c.err }

// isWord reports whether w is exactly n letters A-Z.
func isWord(w string, n int) bool {
	if len(w) != n {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}
