package models

import "encoding/json"

// Response is the envelope every API method answers with.
//
//easyjson:json
type Response struct {
	Succeeded bool            `json:"succeeded"`
	Message   json.RawMessage `json:"message,omitempty"`
	Code      Code            `json:"code,omitempty"`
}
