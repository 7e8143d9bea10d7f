package http

import (
	"encoding/json"
	"net/http"
)

// decodeJSON decodes a request body into dst, rejecting unknown fields.
// Legacy aliases from older clients (manager_username, worker_username) fail
// here instead of being silently accepted.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
