package words

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/wordgrid/internal/gamedata"
	"github.com/samdwyer/wordgrid/internal/telemetry"
)

const (
	DefaultRandomWordURL = "https://random-word-api.herokuapp.com/word"
	DefaultDictionaryURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	DefaultMaxTries      = 5
	DefaultTimeout       = 5 * time.Second
)

var errNotInDictionary = errors.New("random word not in dictionary")

// APIConfig configures the HTTP word source.
type APIConfig struct {
	RandomWordURL string        // GET ?length=N&number=1 returns ["word"]
	DictionaryURL string        // GET /{word} returns 200 for real words, 404 otherwise
	MaxTries      uint          // Attempts per request before giving up
	Timeout       time.Duration // Per HTTP request
}

// APISource picks answers from a random-word service and checks guesses
// against a dictionary service.
type APISource struct {
	cfg     APIConfig
	client  *http.Client
	logger  zerolog.Logger
	backOff func() backoff.BackOff
}

// APIOption customizes an APISource.
type APIOption func(*APISource)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) APIOption {
	return func(s *APISource) { s.client = c }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) APIOption {
	return func(s *APISource) { s.logger = l }
}

// WithBackOff sets the delay policy between attempts. The factory is called
// once per request.
func WithBackOff(f func() backoff.BackOff) APIOption {
	return func(s *APISource) { s.backOff = f }
}

// NewAPISource creates an HTTP word source. Zero config fields take defaults.
func NewAPISource(cfg APIConfig, opts ...APIOption) *APISource {
	if cfg.RandomWordURL == "" {
		cfg.RandomWordURL = DefaultRandomWordURL
	}
	if cfg.DictionaryURL == "" {
		cfg.DictionaryURL = DefaultDictionaryURL
	}
	if cfg.MaxTries == 0 {
		cfg.MaxTries = DefaultMaxTries
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	s := &APISource{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  zerolog.Nop(),
		backOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Answer fetches random words until the dictionary accepts one.
// Each rejected or failed fetch counts as one attempt.
func (s *APISource) Answer(ctx context.Context) (string, error) {
	ctx, span := telemetry.Tracer("words").Start(ctx, "words.answer")
	defer span.End()

	attempts := 0
	word, err := backoff.Retry(ctx, func() (string, error) {
		attempts++
		w, err := s.randomWord(ctx)
		if err != nil {
			return "", err
		}
		ok, err := s.lookup(ctx, w)
		if err != nil {
			return "", err
		}
		if !ok {
			s.logger.Debug().Str("word", w).Msg("random word rejected by dictionary")
			return "", errNotInDictionary
		}
		return w, nil
	}, s.retryOptions()...)

	span.SetAttributes(attribute.Int("words.attempts", attempts))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warn().Err(err).Int("attempts", attempts).Msg("answer fetch failed")
		return "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return word, nil
}

// IsValidWord asks the dictionary service about word.
func (s *APISource) IsValidWord(ctx context.Context, word string) (bool, error) {
	ctx, span := telemetry.Tracer("words").Start(ctx, "words.lookup")
	defer span.End()

	word = strings.ToLower(word)
	span.SetAttributes(attribute.String("words.word", word))

	ok, err := backoff.Retry(ctx, func() (bool, error) {
		return s.lookup(ctx, word)
	}, s.retryOptions()...)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warn().Err(err).Str("word", word).Msg("dictionary lookup failed")
		return false, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	span.SetAttributes(attribute.Bool("words.valid", ok))
	return ok, nil
}

func (s *APISource) retryOptions() []backoff.RetryOption {
	return []backoff.RetryOption{
		backoff.WithBackOff(s.backOff()),
		backoff.WithMaxTries(s.cfg.MaxTries),
	}
}

// randomWord fetches a single candidate answer.
func (s *APISource) randomWord(ctx context.Context) (string, error) {
	u, err := url.Parse(s.cfg.RandomWordURL)
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("random word url: %w", err))
	}
	q := u.Query()
	q.Set("length", strconv.Itoa(gamedata.WordLength))
	q.Set("number", "1")
	u.RawQuery = q.Encode()

	resp, err := s.get(ctx, u.String())
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("random word: status %d", resp.StatusCode)
	}

	var list []string
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return "", fmt.Errorf("random word: decode: %w", err)
	}
	if len(list) == 0 {
		return "", errors.New("random word: empty response")
	}

	w := strings.ToLower(strings.TrimSpace(list[0]))
	if !gamedata.IsWord(w) {
		return "", fmt.Errorf("random word: unusable word %q", list[0])
	}
	return w, nil
}

// lookup performs one dictionary request. 404 means not a word; other
// non-200 statuses are transient.
func (s *APISource) lookup(ctx context.Context, word string) (bool, error) {
	resp, err := s.get(ctx, strings.TrimRight(s.cfg.DictionaryURL, "/")+"/"+url.PathEscape(word))
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("dictionary: status %d", resp.StatusCode)
	}
}

func (s *APISource) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")
	return s.client.Do(req)
}
