// Package webhook adapts the conversational platform's v1 fulfillment
// webhook to the calculator and game dialogues.
package webhook

import "fun-numbers/internal/session"

// Request is the platform's fulfillment request.
type Request struct {
	ID              string           `json:"id"`
	SessionID       string           `json:"sessionId"`
	Result          Result           `json:"result"`
	OriginalRequest *OriginalRequest `json:"originalRequest,omitempty"`
}

// Result carries the recognised intent.
type Result struct {
	ResolvedQuery string         `json:"resolvedQuery"`
	Action        string         `json:"action"`
	Parameters    session.Fields `json:"parameters"`
	Contexts      []Context      `json:"contexts"`
}

// Context is a named bag of parameters with a lifespan in turns.
type Context struct {
	Name       string         `json:"name"`
	Parameters session.Fields `json:"parameters"`
	Lifespan   int            `json:"lifespan"`
}

// OriginalRequest is the assistant payload forwarded by the platform.
type OriginalRequest struct {
	Source string       `json:"source"`
	Data   OriginalData `json:"data"`
}

type OriginalData struct {
	Surface Surface `json:"surface"`
}

type Surface struct {
	Capabilities []Capability `json:"capabilities"`
}

type Capability struct {
	Name string `json:"name"`
}

// Response is the fulfillment reply.
type Response struct {
	Speech      string       `json:"speech"`
	DisplayText string       `json:"displayText"`
	ContextOut  []Context    `json:"contextOut,omitempty"`
	Data        ResponseData `json:"data"`
	Source      string       `json:"source"`
}

type ResponseData struct {
	Google GoogleData `json:"google"`
}

type GoogleData struct {
	ExpectUserResponse bool          `json:"expectUserResponse"`
	RichResponse       *RichResponse `json:"richResponse,omitempty"`
}

type RichResponse struct {
	Items       []RichItem   `json:"items"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

type RichItem struct {
	SimpleResponse SimpleResponse `json:"simpleResponse"`
}

type SimpleResponse struct {
	TextToSpeech string `json:"textToSpeech"`
	DisplayText  string `json:"displayText,omitempty"`
}

type Suggestion struct {
	Title string `json:"title"`
}
