package listEvents

import (
	"eventService/internal/http-server/middleware/identity"
	"eventService/internal/lib/api/response"
	"eventService/internal/lib/logger/sl"
	"eventService/internal/models"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Data []models.Event `json:"data"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsLister
type EventsLister interface {
	ListEvents(search string) ([]models.Event, error)
}

func New(log *slog.Logger, eventsLister EventsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log = log.With(slog.String("op", op))

		_, ok := identity.UserFromContext(r.Context())
		if !ok {
			log.Info("request without identity")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Unauthorized"))

			return
		}

		search := r.URL.Query().Get("search")

		events, err := eventsLister.ListEvents(search)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Internal Server Error"))

			return
		}

		log.Info("events retrieved successfully", slog.Int("count", len(events)), slog.String("search", search))

		responseOK(w, r, events)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event) {
	// пустой результат сериализуем как [], а не null
	if events == nil {
		events = []models.Event{}
	}

	render.JSON(w, r, EventsResponse{
		Response: response.Response{Success: true},
		Data:     events,
	})
}
