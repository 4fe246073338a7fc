package viewer

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ehr/recordview/internal/domain/record"
	"github.com/ehr/recordview/internal/platform/middleware"
	"github.com/ehr/recordview/internal/platform/recordsource"
	"github.com/ehr/recordview/internal/view"
	"github.com/ehr/recordview/pkg/pagination"
)

type Options struct {
	ShowPatient bool
	Translate   view.Translate
	// Buckets fixes the summary panels and their order. Entries follow the
	// store, so starred or deleted records show their current state. When
	// nil the summary buckets the store by type.
	Buckets record.TypeBuckets
}

// Handler hosts the record views over HTTP. It owns the caller side of the
// view contract: it supplies the callbacks and applies their effects to
// the store.
type Handler struct {
	store  *recordsource.Store
	logger zerolog.Logger
	opts   Options
}

func NewHandler(store *recordsource.Store, logger zerolog.Logger, opts Options) *Handler {
	return &Handler{store: store, logger: logger, opts: opts}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListRecords)
	g.GET("/timeline", h.Timeline)
	g.GET("/summary", h.Summary)
	g.GET("/:id/card", h.Card)

	g.POST("/:id/events/:target", h.CardEvent)
	g.POST("/timeline/:id/events/:target", h.TimelineEvent)
	g.POST("/summary/click/:id", h.SummaryClick)
}

// hooks builds the caller callbacks. Store failures inside a callback are
// reported through errp since callbacks return nothing.
func (h *Handler) hooks(c echo.Context, errp *error) view.Hooks {
	rid, _ := c.Get(middleware.RequestIDKey).(string)
	log := h.logger.With().Str("request_id", rid).Logger()
	return view.Hooks{
		OnClick: func(id string) {
			log.Info().Str("record_id", id).Msg("record opened")
		},
		OnStar: func(id string) {
			starred, err := h.store.ToggleStar(id)
			if err != nil {
				*errp = err
				return
			}
			log.Info().Str("record_id", id).Bool("starred", starred).Msg("record star toggled")
		},
		OnEdit: func(id string) {
			log.Info().Str("record_id", id).Msg("record edit requested")
		},
		OnDelete: func(id string) {
			if err := h.store.Delete(id); err != nil {
				*errp = err
				return
			}
			log.Info().Str("record_id", id).Msg("record deleted")
		},
	}
}

func (h *Handler) ListRecords(c echo.Context) error {
	p := pagination.FromContext(c)
	records := h.store.List()
	return c.JSON(http.StatusOK, pagination.NewResponse(pagination.Slice(records, p), len(records), p))
}

func (h *Handler) Timeline(c echo.Context) error {
	var ignored error
	logger := h.logger
	tl := view.NewTimeline(h.store.List(), view.TimelineOptions{
		Hooks:       h.hooks(c, &ignored),
		ShowPatient: h.opts.ShowPatient,
		Translate:   h.opts.Translate,
		Logger:      &logger,
	})

	p := pagination.FromContext(c)
	total := len(tl.Groups)
	tl.Groups = pagination.Slice(tl.Groups, p)

	if c.QueryParam("format") == "json" {
		return c.JSON(http.StatusOK, pagination.NewResponse(tl, total, p))
	}
	return c.Render(http.StatusOK, "page", view.Page{Title: "Timeline", View: "timeline", Data: tl})
}

// buckets resolves the configured buckets against the store. Keys with no
// remaining records stay as empty panels.
func (h *Handler) buckets() record.TypeBuckets {
	if h.opts.Buckets == nil {
		return record.BucketByType(h.store.List())
	}
	out := make(record.TypeBuckets, 0, len(h.opts.Buckets))
	for _, b := range h.opts.Buckets {
		tb := record.TypeBucket{Type: b.Type, Records: make([]record.Record, 0, len(b.Records))}
		for _, r := range b.Records {
			cur, err := h.store.Get(r.ID)
			if err != nil {
				continue
			}
			tb.Records = append(tb.Records, cur)
		}
		out = append(out, tb)
	}
	return out
}

func (h *Handler) summary(c echo.Context) *view.Summary {
	rid, _ := c.Get(middleware.RequestIDKey).(string)
	return view.NewSummary(h.buckets(), view.SummaryOptions{
		Translate: h.opts.Translate,
		OnRecordClick: func(id string, t record.RecordType) {
			h.logger.Info().
				Str("request_id", rid).
				Str("record_id", id).
				Str("record_type", string(t)).
				Msg("record opened from summary")
		},
	})
}

func (h *Handler) Summary(c echo.Context) error {
	s := h.summary(c)
	if c.QueryParam("format") == "json" {
		return c.JSON(http.StatusOK, s)
	}
	return c.Render(http.StatusOK, "page", view.Page{Title: "Summary", View: "summary", Data: s})
}

func (h *Handler) card(c echo.Context, errp *error) (*view.Card, error) {
	r, err := h.store.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, recordsource.ErrNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "record not found")
		}
		return nil, err
	}
	return view.NewCard(r, view.CardOptions{
		Compact:     c.QueryParam("compact") == "true",
		ShowPatient: h.opts.ShowPatient || c.QueryParam("patient") == "true",
		Callbacks:   h.hooks(c, errp).Bind(r.ID),
		Translate:   h.opts.Translate,
	}), nil
}

func (h *Handler) Card(c echo.Context) error {
	var ignored error
	card, err := h.card(c, &ignored)
	if err != nil {
		return err
	}
	if c.QueryParam("format") == "json" {
		return c.JSON(http.StatusOK, card)
	}
	return c.Render(http.StatusOK, "page", view.Page{Title: card.Title, View: "card", Data: card})
}

func (h *Handler) CardEvent(c echo.Context) error {
	target, err := view.ParseTarget(c.Param("target"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var cbErr error
	card, err := h.card(c, &cbErr)
	if err != nil {
		return err
	}
	if err := card.Handle(target); err != nil {
		return eventError(err)
	}
	if cbErr != nil {
		return eventError(cbErr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) TimelineEvent(c echo.Context) error {
	target, err := view.ParseTarget(c.Param("target"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var cbErr error
	tl := view.NewTimeline(h.store.List(), view.TimelineOptions{
		Hooks:       h.hooks(c, &cbErr),
		ShowPatient: h.opts.ShowPatient,
	})
	if err := tl.Handle(c.Param("id"), target); err != nil {
		return eventError(err)
	}
	if cbErr != nil {
		return eventError(cbErr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) SummaryClick(c echo.Context) error {
	if err := h.summary(c).Click(c.Param("id")); err != nil {
		return eventError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func eventError(err error) error {
	switch {
	case errors.Is(err, view.ErrRecordNotFound), errors.Is(err, recordsource.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "record not found")
	case errors.Is(err, view.ErrActionHidden):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, view.ErrUnknownTarget):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}
