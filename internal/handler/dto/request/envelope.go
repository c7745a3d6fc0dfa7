package request

import (
	"encoding/json"
)

// envelope is the wrapper the voice-agent integration posts: the real request
// body lives under args. Direct dashboard requests have no args key.
type envelope struct {
	Name string          `json:"name,omitempty"`
	Call json.RawMessage `json:"call,omitempty"`
	Args json.RawMessage `json:"args,omitempty"`
}

// unwrap decodes body into dst, unwrapping the voice-agent envelope when
// present so the rest of the handler only ever sees one canonical shape.
func unwrap(body []byte, dst any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return err
	}
	if len(env.Args) > 0 {
		return json.Unmarshal(env.Args, dst)
	}
	return json.Unmarshal(body, dst)
}
