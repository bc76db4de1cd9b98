/*
Package server implements msgpack IPC for code completion services.

Clients write a stream of msgpack maps to stdin and read one msgpack map per
request from stdout. Every request carries an "id" that is echoed back and an
"action"; a request without an action is a completion request.

The server announces itself once it is ready:

	{"status": "ready"}

Completion by prefix:

	{"id": "c1", "lang": "rust", "p": "ma", "text": "let x = ma"}

Completion at a cursor, with the language taken from the file name:

	{"id": "c2", "file": "main.py", "text": "import os\nos.pa", "cursor": 15}

The response lists suggestions in popup order:

	{"id": "c1", "s": [{"d": "main (snippet)", "i": "fn main() {\n    body\n}", "k": "snippet", "r": 1}, ...], "c": 3, "t": 41}

"d" is the popup label, "i" the text that replaces the word between "ws" and
"cu", "k" the suggestion kind and "r" the 1-based rank. "ws" and "cu" are only
present for cursor requests. "t" is the handling time in microseconds.

Without "lang" or "file" the language is guessed from "text", falling back to
the configured default.

Other actions:

	{"id": "d1", "action": "doc", "lang": "go", "kw": "defer"}
	{"id": "e1", "action": "expand", "body": "fn ${1:name}() {}"}
	{"id": "l1", "action": "languages"}
	{"id": "f1", "action": "detect", "file": "index.html"}
	{"id": "p1", "action": "ping"}

Failed requests are answered with a CompletionError carrying an HTTP-like code:
400 for bad input, 500 for internal failures.
*/
package server

// Action names accepted in the "action" field.
const (
	ActionComplete  = "complete"
	ActionDoc       = "doc"
	ActionExpand    = "expand"
	ActionLanguages = "languages"
	ActionDetect    = "detect"
	ActionPing      = "ping"
)

// Request is the envelope of every client message. Which fields are read depends on Action.
type Request struct {
	ID      string `msgpack:"id"`
	Action  string `msgpack:"action,omitempty"`
	Lang    string `msgpack:"lang,omitempty"`
	File    string `msgpack:"file,omitempty"`
	Prefix  string `msgpack:"p,omitempty"`
	Text    string `msgpack:"text,omitempty"`
	Cursor  *int   `msgpack:"cursor,omitempty"`
	Keyword string `msgpack:"kw,omitempty"`
	Body    string `msgpack:"body,omitempty"`
	Limit   int    `msgpack:"l,omitempty"`
}

// CompletionSuggestion - one popup row
type CompletionSuggestion struct {
	Display string `msgpack:"d"`
	Insert  string `msgpack:"i"`
	Kind    string `msgpack:"k"`
	Rank    uint16 `msgpack:"r"`
	Doc     string `msgpack:"doc,omitempty"`
}

// CompletionResponse - completion response. WordStart and Cursor are byte
// offsets into the request text and only set for cursor requests.
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	Lang        string                 `msgpack:"lang"`
	WordStart   *int                   `msgpack:"ws,omitempty"`
	Cursor      *int                   `msgpack:"cu,omitempty"`
	TimeTaken   int64                  `msgpack:"t"`
}

// DocResponse - keyword documentation
type DocResponse struct {
	ID      string `msgpack:"id"`
	Keyword string `msgpack:"kw"`
	Lang    string `msgpack:"lang"`
	Doc     string `msgpack:"doc"`
}

// SnippetStop - position of an expanded placeholder
type SnippetStop struct {
	Index int `msgpack:"n"`
	Start int `msgpack:"s"`
	End   int `msgpack:"e"`
}

// ExpandResponse - expanded snippet template
type ExpandResponse struct {
	ID    string        `msgpack:"id"`
	Text  string        `msgpack:"text"`
	Stops []SnippetStop `msgpack:"stops"`
}

// LanguagesResponse - supported language names
type LanguagesResponse struct {
	ID        string   `msgpack:"id"`
	Languages []string `msgpack:"langs"`
}

// DetectResponse - language of a file name
type DetectResponse struct {
	ID   string `msgpack:"id"`
	File string `msgpack:"file"`
	Lang string `msgpack:"lang"`
}

// StatusResponse - ready and ping replies
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// CompletionError holds basic error information for failed requests
type CompletionError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
