package web

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"

	"minigrep/internal/app"
	"minigrep/internal/config"
	"minigrep/internal/search"

	"go.uber.org/zap"
)

// Searcher scans the file named by a resolved config.
type Searcher interface {
	Search(cfg *config.Config) ([]search.Match, error)
}

type SearchHandler struct {
	searcher Searcher
	logger   *zap.Logger
}

func NewSearchHandler(searcher Searcher, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searcher: searcher,
		logger:   logger,
	}
}

type SearchResponse struct {
	RequestID string         `json:"request_id"`
	Mode      string         `json:"mode"`
	Matches   []search.Match `json:"matches"`
}

// Search godoc
// @Summary Search a file
// @Description Scan one file below the server root and return the matching lines
// @Tags search
// @Produce json
// @Param query            query string true  "Literal text or regular expression"
// @Param file             query string true  "File path relative to the server root"
// @Param regex            query bool   false "Treat query as a regular expression"
// @Param case_insensitive query bool   false "Ignore case in literal mode"
// @Success 	 200  {object} SearchResponse "matches" // note: response wrapped as {"result": <SearchResponse>}
// @Failure 	 400  {object} ErrorResponse "missing parameter or invalid regular expression"
// @Failure 	 403  {object} ErrorResponse "file not readable"
// @Failure 	 404  {object} ErrorResponse "file not found"
// @Failure 	 500  {object} ErrorResponse "internal server error"
// @Router /search [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	args, env, err := requestArgs(r.URL.Query())
	if err != nil {
		h.logger.Warn("invalid search parameters", zap.Error(err))
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// те же args и env, что и у CLI, поэтому приоритет режимов совпадает
	cfg, err := config.Resolve(args, env)
	if err != nil {
		h.logger.Warn("invalid search request", zap.String("kind", app.Kind(err)), zap.Error(err))
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	matches, err := h.searcher.Search(cfg)
	if err != nil {
		errParser(w, h.logger, err)
		return
	}
	if matches == nil {
		matches = []search.Match{}
	}

	h.logger.Info("search served",
		zap.String("request_id", RequestID(r.Context())),
		zap.String("file", cfg.Filename()),
		zap.Stringer("mode", cfg.Mode()),
		zap.Int("matches", len(matches)),
	)
	writeJson(w, SearchResponse{
		RequestID: RequestID(r.Context()),
		Mode:      cfg.Mode().String(),
		Matches:   matches,
	})
}

// Health godoc
// @Summary Liveness probe
// @Tags service
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (h *SearchHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// requestArgs turns query parameters into resolver input. A missing query or
// file leaves args short so Resolve reports it; an empty query is valid.
func requestArgs(q url.Values) ([]string, config.MapEnv, error) {
	var args []string
	if q.Has("query") {
		args = append(args, q.Get("query"))
	}
	if q.Has("file") {
		args = append(args, q.Get("file"))
	}

	regex, err := boolParam(q, "regex")
	if err != nil {
		return nil, nil, err
	}
	if regex {
		args = append(args, config.RegexFlag)
	}

	fold, err := boolParam(q, "case_insensitive")
	if err != nil {
		return nil, nil, err
	}
	env := config.MapEnv{}
	if fold {
		env[config.CaseInsensitiveKey] = "1"
	}
	return args, env, nil
}

// boolParam treats a bare "?name" as true.
func boolParam(q url.Values, name string) (bool, error) {
	if !q.Has(name) {
		return false, nil
	}
	v := q.Get(name)
	if v == "" {
		return true, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New("invalid " + name + " value: " + v)
	}
	return b, nil
}

func errParser(w http.ResponseWriter, logger *zap.Logger, err error) {
	logger.Debug("search failed", zap.String("kind", app.Kind(err)), zap.Error(err))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		writeError(w, "file not found", http.StatusNotFound)
	case errors.Is(err, fs.ErrPermission):
		writeError(w, "file not readable", http.StatusForbidden)
	case errors.Is(err, app.ErrFileAccess):
		writeError(w, err.Error(), http.StatusInternalServerError)
	default:
		writeError(w, "search failed", http.StatusInternalServerError)
	}
}

func writeJson(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]any{"result": payload}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
