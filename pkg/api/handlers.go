package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/toolver/toolver/pkg/defaults"
	"github.com/toolver/toolver/pkg/errors"
	"github.com/toolver/toolver/pkg/serializer"
	"github.com/toolver/toolver/pkg/server"
	ver "github.com/toolver/toolver/pkg/version"
)

// Handler serves the version identifier endpoints.
type Handler struct {
	version         string
	maxBulkVersions int
}

// HandlerOption configures a Handler during construction.
type HandlerOption func(*Handler)

// WithVersion sets the service version reported by the info endpoint.
func WithVersion(version string) HandlerOption {
	return func(h *Handler) {
		h.version = version
	}
}

// WithMaxBulkVersions caps the number of versions a single sort
// request may carry.
func WithMaxBulkVersions(n int) HandlerOption {
	return func(h *Handler) {
		h.maxBulkVersions = n
	}
}

// NewHandler creates a Handler with the supplied options.
func NewHandler(opts ...HandlerOption) *Handler {
	h := &Handler{
		version:         versionDefault,
		maxBulkVersions: defaults.MaxBulkVersions,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.maxBulkVersions <= 0 {
		h.maxBulkVersions = defaults.MaxBulkVersions
	}
	return h
}

// HandleParse processes parse requests.
// It supports GET requests with a version query parameter and POST
// requests with a JSON/YAML body. The response returns the structured
// form of the version, including its ordering kind and build suffix.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.ParseHandlerTimeout)
	defer cancel()

	var input string

	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		if !q.Has("version") {
			server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
				"Missing required query parameter: version", false, nil)
			return
		}
		input = q.Get("version")
	case http.MethodPost:
		req, err := decodeBody[ParseRequest](w, r)
		if err != nil {
			writeBodyError(w, r, err)
			return
		}
		if req.Version == nil {
			server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
				"Request body must include a version field", false, nil)
			return
		}
		input = *req.Version
	default:
		writeMethodNotAllowed(w, r, "GET, POST")
		return
	}

	v, err := ver.ParseVersion(input)
	if err != nil {
		writeMalformedVersion(w, r, input, err)
		return
	}

	slog.Debug("parsed version",
		"input", input,
		"canonical", v.String(),
	)

	if timedOut(ctx, w, r) {
		return
	}

	serializer.RespondJSON(w, http.StatusOK, NewVersionPayload(input, v))
}

// HandleCompare processes compare requests.
// It supports GET requests with left and right query parameters and
// POST requests with a JSON/YAML body. The response reports the
// ordering of the two versions under the total order.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.ParseHandlerTimeout)
	defer cancel()

	var left, right string

	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		if !q.Has("left") || !q.Has("right") {
			server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
				"Missing required query parameters: left, right", false, nil)
			return
		}
		left = q.Get("left")
		right = q.Get("right")
	case http.MethodPost:
		req, err := decodeBody[CompareRequest](w, r)
		if err != nil {
			writeBodyError(w, r, err)
			return
		}
		if req.Left == nil || req.Right == nil {
			server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
				"Request body must include left and right fields", false, nil)
			return
		}
		left = *req.Left
		right = *req.Right
	default:
		writeMethodNotAllowed(w, r, "GET, POST")
		return
	}

	lv, err := ver.ParseVersion(left)
	if err != nil {
		writeMalformedVersion(w, r, left, err)
		return
	}
	rv, err := ver.ParseVersion(right)
	if err != nil {
		writeMalformedVersion(w, r, right, err)
		return
	}

	if timedOut(ctx, w, r) {
		return
	}

	serializer.RespondJSON(w, http.StatusOK, NewCompareResponse(left, right, lv, rv))
}

// HandleSort processes bulk sort requests.
// It accepts POST requests with a JSON/YAML body carrying a list of
// version spellings and returns the same spellings in ascending
// version order. Equal versions keep their relative input order.
func (h *Handler) HandleSort(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.SortHandlerTimeout)
	defer cancel()

	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, r, "POST")
		return
	}

	req, err := decodeBody[SortRequest](w, r)
	if err != nil {
		writeBodyError(w, r, err)
		return
	}

	if len(req.Versions) > h.maxBulkVersions {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Too many versions in request", false, map[string]any{
				"count": len(req.Versions),
				"limit": h.maxBulkVersions,
			})
		return
	}

	type entry struct {
		input  string
		parsed ver.Version
	}

	entries := make([]entry, len(req.Versions))
	for i, s := range req.Versions {
		v, perr := ver.ParseVersion(s)
		if perr != nil {
			writeMalformedVersion(w, r, s, perr)
			return
		}
		entries[i] = entry{input: s, parsed: v}
	}

	if timedOut(ctx, w, r) {
		return
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return ver.Less(entries[i].parsed, entries[j].parsed)
	})

	sorted := make([]string, len(entries))
	for i, e := range entries {
		sorted[i] = e.input
	}

	serializer.RespondJSON(w, http.StatusOK, SortResponse{Versions: sorted})
}

// HandleInfo reports service build details.
func (h *Handler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, r, "GET")
		return
	}

	serializer.RespondJSON(w, http.StatusOK, InfoResponse{
		Name:      name,
		Version:   h.version,
		Commit:    commit,
		BuildDate: date,
		Toolchain: ver.Current().String(),
	})
}

// decodeBody reads and decodes an HTTP request body.
// JSON and YAML are supported based on the Content-Type header; an
// empty or unrecognized content type is treated as JSON. The body is
// capped at the request size limit.
func decodeBody[T any](w http.ResponseWriter, r *http.Request) (*T, error) {
	if r.Body == nil {
		return nil, fmt.Errorf("request body cannot be nil")
	}
	defer r.Body.Close()

	limited := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("request body is empty")
	}

	// Extract media type (strip charset and other params)
	ct := strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Type")))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}

	format := serializer.FormatJSON
	switch ct {
	case "application/x-yaml", "application/yaml", "text/yaml":
		format = serializer.FormatYAML
	}

	reader, err := serializer.NewReader(format, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var out T
	if err := reader.Deserialize(&out); err != nil {
		return nil, fmt.Errorf("failed to parse request body: %w", err)
	}
	return &out, nil
}

// timedOut writes a timeout error and reports true when the request
// deadline has been exceeded.
func timedOut(ctx context.Context, w http.ResponseWriter, r *http.Request) bool {
	if err := ctx.Err(); err == nil {
		return false
	}
	server.WriteErrorFromErr(w, r,
		errors.Wrap(errors.ErrCodeTimeout, "request timed out", ctx.Err()),
		"request timed out", nil)
	return true
}

func writeMethodNotAllowed(w http.ResponseWriter, r *http.Request, allowed string) {
	w.Header().Set("Allow", allowed)
	server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": allowed,
		})
}

func writeBodyError(w http.ResponseWriter, r *http.Request, err error) {
	server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
		"Invalid request body", false, map[string]any{
			"error": err.Error(),
		})
}

// writeMalformedVersion reports a version string that failed to parse.
// The message carries the parser's exact diagnostic.
func writeMalformedVersion(w http.ResponseWriter, r *http.Request, input string, err error) {
	server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeMalformedVersion,
		err.Error(), false, map[string]any{
			"input": input,
		})
}
