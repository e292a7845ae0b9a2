package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newQuoteEvent builds a request for path with the {id} path value set
// (left unset when id is empty) and returns the event and its recorder.
func newQuoteEvent(app *pocketbase.PocketBase, method, path, id string, body io.Reader) (*core.RequestEvent, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, body)
	if id != "" {
		req.SetPathValue("id", id)
	}
	rec := httptest.NewRecorder()
	return newTestRequestEvent(app, req, rec), rec
}
