package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/inappdetect/pkg/binder"
	"github.com/dmitrymomot/inappdetect/pkg/cache"
	"github.com/dmitrymomot/inappdetect/pkg/inapp"
	"github.com/dmitrymomot/inappdetect/pkg/logger"
	"github.com/dmitrymomot/inappdetect/pkg/metrics"
	"github.com/dmitrymomot/inappdetect/pkg/platform"
)

// MaxBatchSize caps the items of one batch request.
const MaxBatchSize = 100

// Classification is the data payload of a classify response.
type Classification struct {
	InApp        bool          `json:"in_app"`
	BrowserLabel string        `json:"browser_label"`
	Reason       inapp.Reason  `json:"reason"`
	Platform     platform.Info `json:"platform"`
}

// ClassifyRequest is the JSON body of POST /v1/classify.
type ClassifyRequest struct {
	UserAgent   string       `json:"user_agent"`
	Referrer    string       `json:"referrer"`
	Environment *inapp.Probe `json:"environment,omitempty"`
}

// BatchRequest is the JSON body of POST /v1/classify/batch.
type BatchRequest struct {
	Items []ClassifyRequest `json:"items"`
}

type classifyQuery struct {
	UserAgent string `query:"ua"`
	Referrer  string `query:"ref"`
}

type handlers struct {
	log           *slog.Logger
	metrics       *metrics.Metrics
	parsePlatform func(ua string) platform.Info
}

// maxCachedUALength keeps oversized user agents out of the platform cache.
const maxCachedUALength = 512

func platformParser(size int) func(string) platform.Info {
	if size <= 0 {
		return platform.Parse
	}
	lru := cache.NewLRU[string, platform.Info](size)
	return func(ua string) platform.Info {
		if len(ua) > maxCachedUALength {
			return platform.Parse(ua)
		}
		return lru.GetOrCompute(ua, platform.Parse)
	}
}

func (h *handlers) classify(ctx context.Context, ua, referrer string, env *inapp.Probe) Classification {
	return h.record(ctx, inapp.Classify(ua, referrer, env))
}

func (h *handlers) record(ctx context.Context, v inapp.Verdict) Classification {
	h.metrics.ObserveVerdict(v)
	ctx = inapp.WithVerdict(ctx, v)
	h.log.DebugContext(ctx, "classified",
		logger.InApp(v.InApp),
		logger.BrowserLabel(v.Label),
		slog.String("reason", string(v.Reason)),
		logger.UserAgent(v.UserAgent),
	)
	return Classification{
		InApp:        v.InApp,
		BrowserLabel: v.Label,
		Reason:       v.Reason,
		Platform:     h.parsePlatform(v.UserAgent),
	}
}

// classifyGet answers GET /v1/classify. Without ua and ref parameters it
// returns the verdict inapp.Middleware computed for the caller; otherwise the
// parameters replace the matching request headers.
func (h *handlers) classifyGet(w http.ResponseWriter, r *http.Request) {
	var q classifyQuery
	if err := binder.Query()(r, &q); err != nil {
		writeBindError(w, r, h.log, err)
		return
	}

	if v, ok := inapp.FromContext(r.Context()); ok && q.UserAgent == "" && q.Referrer == "" {
		writeData(w, h.record(r.Context(), v))
		return
	}

	ua, ref := q.UserAgent, q.Referrer
	if ua == "" {
		ua = r.UserAgent()
	}
	if ref == "" {
		ref = r.Referer()
	}
	writeData(w, h.classify(r.Context(), ua, ref, inapp.ProbeFromQuery(r.URL.Query())))
}

func (h *handlers) classifyPost(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := binder.JSON()(r, &req); err != nil {
		writeBindError(w, r, h.log, err)
		return
	}
	writeData(w, h.classify(r.Context(), req.UserAgent, req.Referrer, req.Environment))
}

func (h *handlers) classifyBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := binder.JSON()(r, &req); err != nil {
		writeBindError(w, r, h.log, err)
		return
	}
	switch {
	case len(req.Items) == 0:
		writeError(w, http.StatusUnprocessableEntity, CodeBadRequest, ErrEmptyBatch.Error())
		return
	case len(req.Items) > MaxBatchSize:
		writeError(w, http.StatusUnprocessableEntity, CodeBadRequest,
			fmt.Sprintf("%v: %d items, max %d", ErrBatchTooLarge, len(req.Items), MaxBatchSize))
		return
	}

	out := make([]Classification, len(req.Items))
	for i, item := range req.Items {
		out[i] = h.classify(r.Context(), item.UserAgent, item.Referrer, item.Environment)
	}
	writeData(w, out)
}

func (h *handlers) labels(w http.ResponseWriter, _ *http.Request) {
	writeData(w, map[string][]string{"labels": inapp.Labels()})
}

// selfCheckUA must always classify as the Facebook in-app browser.
const selfCheckUA = "Mozilla/5.0 (Linux; Android 12; Pixel 6) AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/100.0.4896.127 Mobile Safari/537.36 [FBAN/EMA;FBLC/en_US;FBAV/300.0.0.12.110;]"

// classifierCheck is the readiness check of the service.
func classifierCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v := inapp.Classify(selfCheckUA, "", nil)
	if !v.InApp || v.Label != inapp.LabelFacebook {
		return fmt.Errorf("%w: got in_app=%t label=%q", ErrSelfCheck, v.InApp, v.Label)
	}
	return nil
}
