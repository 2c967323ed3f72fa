package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/jobboard-api/internal/api/shared"
	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/stretchr/testify/require"
)

var (
	testUser  = domain.NewUser("newUser", "random@mail.com", "hashed", domain.RoleUser)
	testAdmin = domain.NewUser("boss", "boss@mail.com", "hashed", domain.RoleAdmin)
)

// newRequest builds a request whose body is body encoded as JSON, or the
// raw string when body is a string. A non-nil caller is put in the context
// the way the auth middleware does.
func newRequest(t *testing.T, method, target string, body any, caller *domain.User) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if caller != nil {
		req = req.WithContext(shared.WithUser(req.Context(), caller))
	}
	return req
}

type responseBody struct {
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  []shared.FieldError `json:"errors"`
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) responseBody {
	t.Helper()
	var body responseBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), "body: %s", rr.Body.String())
	return body
}

func messages(errs []shared.FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Message)
	}
	return out
}
