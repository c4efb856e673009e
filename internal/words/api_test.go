package words

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/cenkalti/backoff/v5"
)

// fakeWordAPI serves both the random-word and the dictionary endpoints.
type fakeWordAPI struct {
	randomWords  []string        // served in order, last one repeats
	randomStatus int             // non-zero forces this status on /word
	dictionary   map[string]bool // known words
	flaky        int32           // dictionary requests that fail with 500 first

	randomCalls atomic.Int32
	dictCalls   atomic.Int32
	lastQuery   atomic.Value
}

func (f *fakeWordAPI) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/word", func(w http.ResponseWriter, r *http.Request) {
		n := int(f.randomCalls.Add(1)) - 1
		f.lastQuery.Store(r.URL.RawQuery)
		if f.randomStatus != 0 {
			w.WriteHeader(f.randomStatus)
			return
		}
		if n >= len(f.randomWords) {
			n = len(f.randomWords) - 1
		}
		_ = json.NewEncoder(w).Encode([]string{f.randomWords[n]})
	})
	mux.HandleFunc("/entries/en/", func(w http.ResponseWriter, r *http.Request) {
		n := f.dictCalls.Add(1)
		if n <= f.flaky {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		word := strings.TrimPrefix(r.URL.Path, "/entries/en/")
		if f.dictionary[word] {
			_, _ = w.Write([]byte(`[{"word":"` + word + `"}]`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestAPISource(srv *httptest.Server, tries uint) *APISource {
	return NewAPISource(APIConfig{
		RandomWordURL: srv.URL + "/word",
		DictionaryURL: srv.URL + "/entries/en",
		MaxTries:      tries,
	}, WithHTTPClient(srv.Client()), WithBackOff(func() backoff.BackOff { return &backoff.ZeroBackOff{} }))
}

func TestAPISourceAnswerSkipsUnknownWords(t *testing.T) {
	api := &fakeWordAPI{
		randomWords: []string{"xqzvw", "CRANE"},
		dictionary:  map[string]bool{"crane": true},
	}
	s := newTestAPISource(api.server(t), 5)

	w, err := s.Answer(context.Background())
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if w != "crane" {
		t.Errorf("Answer() = %q, want crane", w)
	}
	if got := api.randomCalls.Load(); got != 2 {
		t.Errorf("random word calls = %d, want 2", got)
	}

	q, _ := api.lastQuery.Load().(string)
	if !strings.Contains(q, "length=5") || !strings.Contains(q, "number=1") {
		t.Errorf("random word query = %q, want length=5 and number=1", q)
	}
}

func TestAPISourceAnswerSkipsMalformedWords(t *testing.T) {
	api := &fakeWordAPI{
		randomWords: []string{"toolongword", "slate"},
		dictionary:  map[string]bool{"slate": true},
	}
	s := newTestAPISource(api.server(t), 5)

	w, err := s.Answer(context.Background())
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if w != "slate" {
		t.Errorf("Answer() = %q, want slate", w)
	}
}

func TestAPISourceAnswerGivesUp(t *testing.T) {
	api := &fakeWordAPI{
		randomWords: []string{"xqzvw"},
		dictionary:  map[string]bool{},
	}
	s := newTestAPISource(api.server(t), 3)

	_, err := s.Answer(context.Background())
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("Answer() error = %v, want ErrSourceUnavailable", err)
	}
	if got := api.randomCalls.Load(); got != 3 {
		t.Errorf("random word calls = %d, want 3", got)
	}
}

func TestAPISourceAnswerServiceDown(t *testing.T) {
	api := &fakeWordAPI{randomStatus: http.StatusServiceUnavailable}
	s := newTestAPISource(api.server(t), 2)

	if _, err := s.Answer(context.Background()); !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("Answer() error = %v, want ErrSourceUnavailable", err)
	}
	if got := api.randomCalls.Load(); got != 2 {
		t.Errorf("random word calls = %d, want 2", got)
	}
}

func TestAPISourceIsValidWord(t *testing.T) {
	api := &fakeWordAPI{dictionary: map[string]bool{"crane": true}}
	s := newTestAPISource(api.server(t), 3)

	tests := []struct {
		word  string
		valid bool
	}{
		{"crane", true},
		{"CRANE", true},
		{"xqzvw", false},
	}

	for _, tt := range tests {
		got, err := s.IsValidWord(context.Background(), tt.word)
		if err != nil {
			t.Fatalf("IsValidWord(%q) error = %v", tt.word, err)
		}
		if got != tt.valid {
			t.Errorf("IsValidWord(%q) = %v, want %v", tt.word, got, tt.valid)
		}
	}
}

func TestAPISourceIsValidWordRetriesTransientErrors(t *testing.T) {
	api := &fakeWordAPI{dictionary: map[string]bool{"crane": true}, flaky: 2}
	s := newTestAPISource(api.server(t), 3)

	ok, err := s.IsValidWord(context.Background(), "crane")
	if err != nil {
		t.Fatalf("IsValidWord() error = %v", err)
	}
	if !ok {
		t.Error("IsValidWord() = false, want true")
	}
	if got := api.dictCalls.Load(); got != 3 {
		t.Errorf("dictionary calls = %d, want 3", got)
	}
}

func TestAPISourceIsValidWordUnavailable(t *testing.T) {
	api := &fakeWordAPI{dictionary: map[string]bool{"crane": true}, flaky: 10}
	s := newTestAPISource(api.server(t), 2)

	if _, err := s.IsValidWord(context.Background(), "crane"); !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("IsValidWord() error = %v, want ErrSourceUnavailable", err)
	}
}

func TestNewAPISourceDefaults(t *testing.T) {
	s := NewAPISource(APIConfig{})
	if s.cfg.RandomWordURL != DefaultRandomWordURL || s.cfg.DictionaryURL != DefaultDictionaryURL {
		t.Errorf("default URLs not applied: %+v", s.cfg)
	}
	if s.cfg.MaxTries != DefaultMaxTries || s.cfg.Timeout != DefaultTimeout {
		t.Errorf("default limits not applied: %+v", s.cfg)
	}
}
