package server

import (
	"bufio"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/codeserve/internal/logger"
	"github.com/bastiangx/codeserve/internal/utils"
	"github.com/bastiangx/codeserve/pkg/config"
	"github.com/bastiangx/codeserve/pkg/lang"
	"github.com/bastiangx/codeserve/pkg/snippet"
	"github.com/bastiangx/codeserve/pkg/suggest"
)

// Server handles msgpack IPC for code completions.
type Server struct {
	mu          sync.RWMutex
	completer   suggest.ICompleter
	cfg         config.ServerConfig
	defaultLang lang.ID

	dec *msgpack.Decoder
	out *bufio.Writer
	enc *msgpack.Encoder
	log *log.Logger

	requests int
}

// NewServer creates a server reading requests from in and writing responses to out.
func NewServer(completer suggest.ICompleter, cfg *config.Config, in io.Reader, out io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bw := bufio.NewWriter(out)
	return &Server{
		completer:   completer,
		cfg:         cfg.Server,
		defaultLang: lang.Parse(cfg.Completion.DefaultLanguage),
		dec:         msgpack.NewDecoder(bufio.NewReader(in)),
		out:         bw,
		enc:         msgpack.NewEncoder(bw),
		log:         logger.New("ipc"),
	}
}

// UpdateConfig applies a reloaded config. The completer is rebuilt when the
// matcher options changed. It is safe to call while Start is running.
func (s *Server) UpdateConfig(cfg *config.Config) error {
	if cfg == nil {
		return errors.New("nil config")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg = cfg.Server
	s.defaultLang = lang.Parse(cfg.Completion.DefaultLanguage)
	if opts := cfg.MatcherOptions(); s.completer == nil || s.completer.Options() != opts {
		s.completer = suggest.NewMatcher(opts)
		s.log.Debug("Rebuilt completer", "max_items", opts.MaxItems, "min_word_len", opts.MinWordLen)
	}
	return nil
}

// Start serves requests until the input is exhausted. A clean EOF between
// requests returns nil.
func (s *Server) Start() error {
	s.log.Debug("Starting server")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		raw, err := s.dec.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Input closed", "requests", s.requests)
				return nil
			}
			s.log.Errorf("Reading from stdin: %v", err)
			return errors.Wrap(err, "read request")
		}
		s.requests++
		if err := s.handleMessage(raw); err != nil {
			return err
		}
	}
}

// handleMessage decodes one request and writes exactly one response.
func (s *Server) handleMessage(raw msgpack.RawMessage) (err error) {
	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		s.log.Errorf("Unmarshaling request: %v", err)
		return s.sendError("", "Invalid msgpack request", 400)
	}
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Request handler panicked", "id", req.ID, "panic", r)
			err = s.sendError(req.ID, "Internal server error", 500)
		}
	}()

	switch req.Action {
	case "", ActionComplete:
		return s.handleComplete(req)
	case ActionDoc:
		return s.handleDoc(req)
	case ActionExpand:
		return s.handleExpand(req)
	case ActionLanguages:
		return s.handleLanguages(req)
	case ActionDetect:
		return s.handleDetect(req)
	case ActionPing:
		return s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		return s.sendError(req.ID, "Unknown action: "+req.Action, 400)
	}
}

// resolveLang picks the language from "lang", then from "file", then from the
// content of "text", then the configured default.
func (s *Server) resolveLang(req Request, def lang.ID) lang.ID {
	switch {
	case req.Lang != "":
		return lang.Parse(req.Lang)
	case req.File != "":
		return lang.Detect(req.File)
	}
	if id := lang.DetectContent(req.Text); id != lang.Generic {
		s.log.Debug("Detected language from text", "id", req.ID, "lang", id)
		return id
	}
	return def
}

func (s *Server) handleComplete(req Request) error {
	s.mu.RLock()
	completer, cfg, def := s.completer, s.cfg, s.defaultLang
	s.mu.RUnlock()

	if len(req.Text) > cfg.MaxTextBytes {
		s.log.Debug("Text too large", "id", req.ID, "bytes", len(req.Text))
		return s.sendError(req.ID, "Text exceeds maximum size", 400)
	}
	id := s.resolveLang(req, def)

	start := time.Now()
	var (
		items []suggest.Item
		resp  = CompletionResponse{ID: req.ID, Lang: id.String()}
	)
	if req.Cursor != nil {
		r := suggest.RequestAt(id, req.Text, *req.Cursor)
		if !utils.IsValidPrefix(r.Prefix, cfg.MaxPrefix) {
			return s.sendError(req.ID, "Prefix exceeds maximum length", 400)
		}
		items = completer.Complete(id, r.Prefix, req.Text)
		resp.WordStart, resp.Cursor = &r.WordStart, &r.Cursor
	} else {
		if !utils.IsValidPrefix(req.Prefix, cfg.MaxPrefix) {
			s.log.Debug("Invalid prefix", "id", req.ID)
			return s.sendError(req.ID, "Prefix is too long or contains whitespace", 400)
		}
		items = completer.Complete(id, req.Prefix, req.Text)
	}
	if req.Limit > 0 && len(items) > req.Limit {
		items = items[:req.Limit]
	}

	resp.Suggestions = buildSuggestions(items)
	resp.Count = len(resp.Suggestions)
	resp.TimeTaken = time.Since(start).Microseconds()
	return s.send(resp)
}

func buildSuggestions(items []suggest.Item) []CompletionSuggestion {
	ranks := utils.CreateRankList(len(items))
	out := make([]CompletionSuggestion, len(items))
	for i, it := range items {
		out[i] = CompletionSuggestion{
			Display: it.Display(),
			Insert:  it.InsertText(),
			Kind:    it.Kind.String(),
			Rank:    ranks[i],
			Doc:     it.Doc,
		}
	}
	return out
}

func (s *Server) handleDoc(req Request) error {
	if req.Keyword == "" {
		return s.sendError(req.ID, "Missing 'kw' parameter", 400)
	}
	s.mu.RLock()
	def := s.defaultLang
	s.mu.RUnlock()

	id := s.resolveLang(req, def)
	return s.send(DocResponse{
		ID:      req.ID,
		Keyword: req.Keyword,
		Lang:    id.String(),
		Doc:     lang.Describe(id, req.Keyword),
	})
}

func (s *Server) handleExpand(req Request) error {
	exp := snippet.Parse(req.Body)
	stops := make([]SnippetStop, len(exp.Stops))
	for i, st := range exp.Stops {
		stops[i] = SnippetStop{Index: st.Index, Start: st.Start, End: st.End}
	}
	return s.send(ExpandResponse{ID: req.ID, Text: exp.Text, Stops: stops})
}

func (s *Server) handleLanguages(req Request) error {
	ids := lang.All()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return s.send(LanguagesResponse{ID: req.ID, Languages: names})
}

func (s *Server) handleDetect(req Request) error {
	if req.File == "" {
		return s.sendError(req.ID, "Missing 'file' parameter", 400)
	}
	return s.send(DetectResponse{ID: req.ID, File: req.File, Lang: lang.Detect(req.File).String()})
}

// send encodes a response and flushes it.
func (s *Server) send(response any) error {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Marshaling response: %v", err)
		return errors.Wrap(err, "encode response")
	}
	if err := s.out.Flush(); err != nil {
		return errors.Wrap(err, "write response")
	}
	return nil
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) error {
	return s.send(CompletionError{ID: id, Error: message, Code: code})
}
