package http

import (
	"time"

	"room-booking/internal/booking"
	"room-booking/internal/model"
	"room-booking/pkg/response"
)

// --- Request DTOs ---

type bookReq struct {
	Name            string    `json:"name" example:"Sprint planning"`
	StartTime       time.Time `json:"start_time" example:"2025-01-15T10:00:00-08:00"`
	EndTime         time.Time `json:"end_time" example:"2025-01-15T11:00:00-08:00"`
	Location        string    `json:"location" example:"Hogwarts Hall"`
	Description     string    `json:"description"`
	HostEmail       string    `json:"host_email" example:"owner@example.com"`
	AdditionalHosts []string  `json:"additional_hosts"`
}

func (r bookReq) toInput() booking.BookInput {
	return booking.BookInput{
		Name:            r.Name,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Location:        r.Location,
		Description:     r.Description,
		HostEmail:       r.HostEmail,
		AdditionalHosts: r.AdditionalHosts,
	}
}

type dayReq struct {
	Date string `form:"date"`
}

func (r dayReq) toInput() booking.EventsOnInput {
	return booking.EventsOnInput{Date: r.Date}
}

// --- Response DTOs ---

type eventResp struct {
	ID              string            `json:"id,omitempty"`
	Name            string            `json:"name"`
	StartTime       response.DateTime `json:"start_time" swaggertype:"string"`
	EndTime         response.DateTime `json:"end_time" swaggertype:"string"`
	Location        string            `json:"location"`
	Description     string            `json:"description,omitempty"`
	HostEmail       string            `json:"host_email,omitempty"`
	AdditionalHosts []string          `json:"additional_hosts,omitempty"`
	URL             string            `json:"url,omitempty"`
}

func newEventResp(e model.Event) eventResp {
	return eventResp{
		ID:              e.ID,
		Name:            e.Name,
		StartTime:       response.DateTime(e.StartTime),
		EndTime:         response.DateTime(e.EndTime),
		Location:        e.Location,
		Description:     e.Description,
		HostEmail:       e.HostEmail,
		AdditionalHosts: e.AdditionalHosts,
		URL:             e.URL,
	}
}

type hostFailureResp struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

type bookResp struct {
	EventID      string            `json:"event_id"`
	Event        eventResp         `json:"event"`
	HostFailures []hostFailureResp `json:"host_failures"`
}

func (h *handler) newBookResp(out booking.BookOutput) bookResp {
	failures := make([]hostFailureResp, 0, len(out.HostFailures))
	for _, f := range out.HostFailures {
		failures = append(failures, hostFailureResp{Email: f.Email, Error: f.Err.Error()})
	}
	return bookResp{
		EventID:      out.EventID,
		Event:        newEventResp(out.Event),
		HostFailures: failures,
	}
}

type conflictResp struct {
	Name      string            `json:"name"`
	StartTime response.DateTime `json:"start_time" swaggertype:"string"`
	EndTime   response.DateTime `json:"end_time" swaggertype:"string"`
	Location  string            `json:"location"`
}

type conflictsResp struct {
	Conflicts []conflictResp `json:"conflicts"`
}

func newConflictsResp(events []model.Event) conflictsResp {
	out := make([]conflictResp, 0, len(events))
	for _, e := range events {
		out = append(out, conflictResp{
			Name:      e.Name,
			StartTime: response.DateTime(e.StartTime),
			EndTime:   response.DateTime(e.EndTime),
			Location:  e.Location,
		})
	}
	return conflictsResp{Conflicts: out}
}

type listEventsResp struct {
	Date   response.Date `json:"date" swaggertype:"string"`
	Events []eventResp   `json:"events"`
	Count  int           `json:"count"`
}

func (h *handler) newListEventsResp(out booking.EventsOnOutput) listEventsResp {
	events := make([]eventResp, 0, len(out.Events))
	for _, e := range out.Events {
		events = append(events, newEventResp(e))
	}
	return listEventsResp{
		Date:   response.Date(out.Day),
		Events: events,
		Count:  len(events),
	}
}

type detailResp struct {
	Event eventResp `json:"event"`
}

type locationsResp struct {
	Locations []string `json:"locations"`
}

type roomResp struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Conflicts   []string `json:"conflicts,omitempty"`
}

type buildingResp struct {
	ID        string     `json:"id"`
	Address   string     `json:"address"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Rooms     []roomResp `json:"rooms"`
}

type roomsResp struct {
	Buildings []buildingResp `json:"buildings"`
}

func (h *handler) newRoomsResp(out booking.RoomsOutput) roomsResp {
	buildings := make([]buildingResp, 0, len(out.Buildings))
	for _, b := range out.Buildings {
		rooms := make([]roomResp, 0, len(b.Rooms))
		for _, r := range b.Rooms {
			rooms = append(rooms, roomResp{Name: r.Name, Description: r.Description, Conflicts: r.ConflictsWith})
		}
		buildings = append(buildings, buildingResp{
			ID:        b.ID,
			Address:   b.Address,
			Latitude:  b.Latitude,
			Longitude: b.Longitude,
			Rooms:     rooms,
		})
	}
	return roomsResp{Buildings: buildings}
}
