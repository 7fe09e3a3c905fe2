package meta

// ConversionEvent is one server-side event for the Conversions API.
type ConversionEvent struct {
	EventName      string                 `json:"event_name"`
	EventTime      int64                  `json:"event_time"`
	EventSourceURL string                 `json:"event_source_url,omitempty"`
	ActionSource   string                 `json:"action_source"`
	UserData       map[string]string      `json:"user_data"`
	CustomData     map[string]interface{} `json:"custom_data,omitempty"`
}

// UserData carries raw (unhashed) identifiers; the client hashes them before
// sending, as the API requires.
type UserData struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	FBC       string `json:"fbc,omitempty"`
	FBP       string `json:"fbp,omitempty"`
}

type eventsRequest struct {
	Data        []ConversionEvent `json:"data"`
	AccessToken string            `json:"access_token"`
}
