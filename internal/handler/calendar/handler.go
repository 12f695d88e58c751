package calendar

import (
	"errors"
	"strconv"
	"time"

	"caterfind/internal/domain"
	"caterfind/internal/errs"
	"caterfind/internal/handler/middleware"
	calendarsvc "caterfind/internal/service/calendar"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc calendarsvc.Service
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/api/calendar/events", ginx.W(h.ListEvents))
	server.POST("/api/calendar/events", ginx.B(h.CreateEvent))
	server.DELETE("/api/calendar/events/:id", ginx.W(h.DeleteEvent))
	server.POST("/api/availability", ginx.B(h.SetAvailability))
	server.GET("/api/availability", ginx.W(h.ListAvailability))
}

// ListEvents 不带参数返回全部日程，date 查单天，start/end 查区间
func (h *Handler) ListEvents(ctx *ginx.Context) (ginx.Result, error) {
	uid := middleware.UID(ctx.Context)
	var events []domain.CalendarEvent
	if dateStr := ctx.Context.Query("date"); dateStr != "" {
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return invalidParameterResult, nil
		}
		events, err = h.svc.ListEventsOn(ctx.Request.Context(), uid, date)
		if err != nil {
			return systemErrorResult, err
		}
		return ginx.Result{
			Data: slice.Map(events, func(_ int, src domain.CalendarEvent) EventVO {
				return toEventVO(src)
			}),
		}, nil
	}
	start, end, hasRange, err := h.parseRange(ctx)
	if err != nil {
		return invalidParameterResult, nil
	}
	if hasRange {
		events, err = h.svc.ListEventsInRange(ctx.Request.Context(), uid, start, end)
	} else {
		events, err = h.svc.ListEvents(ctx.Request.Context(), uid)
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(events, func(_ int, src domain.CalendarEvent) EventVO {
			return toEventVO(src)
		}),
	}, nil
}

func (h *Handler) CreateEvent(ctx *ginx.Context, req CreateEventReq) (ginx.Result, error) {
	date, err := time.Parse(dateLayout, req.EventDate)
	if err != nil {
		return invalidParameterResult, nil
	}
	event, err := h.svc.CreateEvent(ctx.Request.Context(), domain.CalendarEvent{
		UserID:        middleware.UID(ctx.Context),
		EventDate:     date,
		EventHostName: req.EventHostName,
		ManagedBy:     req.ManagedBy,
		Location:      req.Location,
	})
	if err != nil {
		if errors.Is(err, errs.ErrPastDate) {
			return pastDateResult, nil
		}
		if errors.Is(err, errs.ErrInvalidParameter) {
			return invalidParameterResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Data: toEventVO(event)}, nil
}

func (h *Handler) DeleteEvent(ctx *ginx.Context) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return invalidParameterResult, nil
	}
	if err := h.svc.DeleteEvent(ctx.Request.Context(), middleware.UID(ctx.Context), id); err != nil {
		if errors.Is(err, errs.ErrCalendarEventNotFound) {
			return notFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) SetAvailability(ctx *ginx.Context, req SetAvailabilityReq) (ginx.Result, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return invalidParameterResult, nil
	}
	err = h.svc.SetAvailability(ctx.Request.Context(), middleware.UID(ctx.Context),
		date, domain.AvailabilityState(req.Status))
	if err != nil {
		if errors.Is(err, errs.ErrPastDate) {
			return pastDateResult, nil
		}
		if errors.Is(err, errs.ErrInvalidParameter) {
			return invalidParameterResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ListAvailability(ctx *ginx.Context) (ginx.Result, error) {
	start, end, hasRange, err := h.parseRange(ctx)
	if err != nil || !hasRange {
		return invalidParameterResult, nil
	}
	statuses, err := h.svc.ListAvailabilityInRange(ctx.Request.Context(), middleware.UID(ctx.Context), start, end)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(statuses, func(_ int, src domain.AvailabilityStatus) AvailabilityVO {
			return AvailabilityVO{
				Date:   src.Date.Format(dateLayout),
				Status: src.Status.String(),
			}
		}),
	}, nil
}

func (h *Handler) parseRange(ctx *ginx.Context) (start, end time.Time, ok bool, err error) {
	startStr, endStr := ctx.Context.Query("start"), ctx.Context.Query("end")
	if startStr == "" && endStr == "" {
		return time.Time{}, time.Time{}, false, nil
	}
	start, err = time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	end, err = time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	return start, end, true, nil
}

func toEventVO(src domain.CalendarEvent) EventVO {
	return EventVO{
		ID:            src.ID,
		EventDate:     src.EventDate.Format(dateLayout),
		EventHostName: src.EventHostName,
		ManagedBy:     src.ManagedBy,
		Location:      src.Location,
		Ctime:         src.Ctime,
	}
}

func NewHandler(svc calendarsvc.Service) *Handler {
	return &Handler{svc: svc}
}
