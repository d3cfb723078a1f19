package webhook

// Source identifies this fulfillment in responses.
const Source = "fun-numbers"

var yesNo = []string{"Yes", "No"}

// reply is what a route produces before rendering.
type reply struct {
	text        string
	contexts    []Context
	suggestions []string
	final       bool
}

// render builds the platform response. Suggestions need a screen; speech
// and display text are always the same string.
func render(req Request, rep reply) Response {
	resp := Response{
		Speech:      rep.text,
		DisplayText: rep.text,
		ContextOut:  rep.contexts,
		Source:      Source,
		Data: ResponseData{Google: GoogleData{
			ExpectUserResponse: !rep.final,
		}},
	}

	if req.HasScreen() {
		rich := &RichResponse{Items: []RichItem{{
			SimpleResponse: SimpleResponse{TextToSpeech: rep.text, DisplayText: rep.text},
		}}}
		for _, s := range rep.suggestions {
			rich.Suggestions = append(rich.Suggestions, Suggestion{Title: s})
		}
		resp.Data.Google.RichResponse = rich
	}

	return resp
}
