package rest

import (
	"net/http"
	"strconv"

	"github.com/KirkDiggler/buddyup/internal/models"
	"github.com/KirkDiggler/buddyup/internal/services/event"
	"github.com/gorilla/mux"
)

// membershipResponse confirms a join or leave and carries the updated event
type membershipResponse struct {
	Message string        `json:"message"`
	Event   *models.Event `json:"event"`
}

func (h *Handler) respondWithEvents(w http.ResponseWriter, out *event.ListEventsOutput, err error) {
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	events := out.Events
	if events == nil {
		events = []*models.Event{}
	}

	RespondWithJSON(w, http.StatusOK, events)
}

func (h *Handler) searchEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := event.ParsePage(q.Get("page"))
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	out, err := h.eventService.SearchEvents(r.Context(), &event.SearchEventsInput{
		City:  q.Get("city"),
		Query: q.Get("query"),
		Page:  page,
	})
	h.respondWithEvents(w, out, err)
}

func (h *Handler) filterEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := event.ParsePage(q.Get("page"))
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	out, err := h.eventService.FilterEvents(r.Context(), &event.FilterEventsInput{
		Keys:  q["key"],
		Names: q["name"],
		Page:  page,
	})
	h.respondWithEvents(w, out, err)
}

func (h *Handler) randomEvents(w http.ResponseWriter, r *http.Request) {
	out, err := h.eventService.RandomEvents(r.Context(), &event.RandomEventsInput{})
	h.respondWithEvents(w, out, err)
}

func (h *Handler) createdEvents(w http.ResponseWriter, r *http.Request) {
	out, err := h.eventService.ListCreated(r.Context(), &event.ListCreatedInput{
		CallerID: UserIDFromContext(r.Context()),
	})
	h.respondWithEvents(w, out, err)
}

func (h *Handler) joinedEvents(w http.ResponseWriter, r *http.Request) {
	out, err := h.eventService.ListJoined(r.Context(), &event.ListJoinedInput{
		CallerID: UserIDFromContext(r.Context()),
	})
	h.respondWithEvents(w, out, err)
}

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	var fields event.EventFields
	if err := parseJSONBody(r, &fields); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.eventService.CreateEvent(r.Context(), &event.CreateEventInput{
		CallerID: UserIDFromContext(r.Context()),
		Fields:   fields,
	})
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, out.Event)
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	out, err := h.eventService.GetEvent(r.Context(), &event.GetEventInput{
		EventID: mux.Vars(r)["id"],
	})
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, out.Event)
}

func (h *Handler) updateEvent(w http.ResponseWriter, r *http.Request) {
	var fields event.EventFields
	if err := parseJSONBody(r, &fields); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.eventService.UpdateEvent(r.Context(), &event.UpdateEventInput{
		CallerID: UserIDFromContext(r.Context()),
		EventID:  mux.Vars(r)["id"],
		Fields:   fields,
		Partial:  r.Method == http.MethodPatch,
	})
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, out.Event)
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	err := h.eventService.DeleteEvent(r.Context(), &event.DeleteEventInput{
		CallerID: UserIDFromContext(r.Context()),
		EventID:  mux.Vars(r)["id"],
	})
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) joinEvent(w http.ResponseWriter, r *http.Request) {
	out, err := h.eventService.JoinEvent(r.Context(), &event.JoinEventInput{
		CallerID: UserIDFromContext(r.Context()),
		EventID:  mux.Vars(r)["id"],
	})
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, membershipResponse{
		Message: "Successfully joined the event.",
		Event:   out.Event,
	})
}

func (h *Handler) leaveEvent(w http.ResponseWriter, r *http.Request) {
	out, err := h.eventService.LeaveEvent(r.Context(), &event.LeaveEventInput{
		CallerID: UserIDFromContext(r.Context()),
		EventID:  mux.Vars(r)["id"],
	})
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, membershipResponse{
		Message: "Successfully left the event.",
		Event:   out.Event,
	})
}

func (h *Handler) cancelEvent(w http.ResponseWriter, r *http.Request) {
	reverse, _ := strconv.ParseBool(r.URL.Query().Get("reverse"))

	out, err := h.eventService.CancelEvent(r.Context(), &event.CancelEventInput{
		CallerID: UserIDFromContext(r.Context()),
		EventID:  mux.Vars(r)["id"],
		Reverse:  reverse,
	})
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	message := "Event cancelled."
	if reverse {
		message = "Event reactivated."
	}

	RespondWithJSON(w, http.StatusOK, membershipResponse{
		Message: message,
		Event:   out.Event,
	})
}
