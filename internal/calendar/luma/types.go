package luma

// ---- Wire types for the Luma public API ----

// ListEventsResponse is the body of GET /calendar/list-events.
type ListEventsResponse struct {
	Entries    []Entry `json:"entries"`
	HasMore    bool    `json:"has_more"`
	NextCursor string  `json:"next_cursor"`
}

// Entry wraps a single event in a list response.
type Entry struct {
	APIID string `json:"api_id"`
	Event Event  `json:"event"`
}

// Event is the Luma event object.
type Event struct {
	APIID          string      `json:"api_id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	DescriptionMD  string      `json:"description_md"`
	StartAt        string      `json:"start_at"`
	EndAt          string      `json:"end_at"`
	Timezone       string      `json:"timezone"`
	URL            string      `json:"url"`
	GeoAddressJSON *GeoAddress `json:"geo_address_json"`
}

// GeoAddress is the location object of an event. Events created by this
// service carry type "manual" and the composite address.
type GeoAddress struct {
	Type        string `json:"type,omitempty"`
	Address     string `json:"address,omitempty"`
	FullAddress string `json:"full_address,omitempty"`
}

// GetEventResponse is the body of GET /event/get.
type GetEventResponse struct {
	Event Event `json:"event"`
}

// CreateEventRequest is the body for POST /event/create.
type CreateEventRequest struct {
	Name           string     `json:"name"`
	StartAt        string     `json:"start_at"`
	EndAt          string     `json:"end_at"`
	Timezone       string     `json:"timezone"`
	GeoAddressJSON GeoAddress `json:"geo_address_json"`
	GeoLatitude    float64    `json:"geo_latitude"`
	GeoLongitude   float64    `json:"geo_longitude"`
	DescriptionMD  string     `json:"description_md,omitempty"`
}

// CreateEventResponse is the body returned by POST /event/create.
type CreateEventResponse struct {
	APIID string `json:"api_id"`
}

// AddHostRequest is the body for POST /event/add-host.
type AddHostRequest struct {
	EventAPIID  string `json:"event_api_id"`
	Email       string `json:"email"`
	AccessLevel string `json:"access_level"`
	IsVisible   bool   `json:"is_visible"`
}

// ListEventsParams are the query parameters of a list-events page.
type ListEventsParams struct {
	After  string
	Before string
	Limit  int
	Cursor string
}
