package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"smscctl/internal/operator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(Config{BaseURL: srv.URL + "/api/v1/", Token: "secret"})
	require.NoError(t, err)
	return c
}

func TestNewClientRejectsBadURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)

	_, err = NewClient(Config{BaseURL: "ftp://example.com"})
	assert.Error(t, err)

	c, err := NewClient(Config{BaseURL: "http://localhost:8080/api/v1/"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/v1", c.BaseURL())
}

func TestListPreservesServerOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/operators/", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_, _ = io.WriteString(w, `[{"id":2,"name":"B","priority":2,"weight":50,"maxTps":500,"status":"active"},
			{"id":1,"name":"A","priority":1,"weight":100,"maxTps":1000,"status":"active"}]`)
	})

	ops, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, operator.ID("2"), ops[0].ID)
	assert.Equal(t, "A", ops[1].Name)
	assert.Equal(t, 1000, ops[1].MaxTPS)
}

func TestListEmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	ops, err := c.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, ops)
	assert.Empty(t, ops)
}

func TestCreateSendsCoercedPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/operators/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{
			"name": "Carrier A", "priority": float64(1), "weight": float64(50), "maxTps": float64(100),
		}, body)

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":9,"name":"Carrier A","priority":1,"weight":50,"maxTps":100,"status":"active"}`)
	})

	op, err := c.Create(context.Background(), operator.Payload{Name: "Carrier A", Priority: 1, Weight: 50, MaxTPS: 100})
	require.NoError(t, err)
	assert.Equal(t, operator.ID("9"), op.ID)
	assert.Equal(t, "active", op.Status)
}

func TestUpdateAndDeletePaths(t *testing.T) {
	var seen []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodDelete {
			_, _ = io.WriteString(w, `Operator 7 deleted`)
			return
		}
		_, _ = io.WriteString(w, `{"id":"7","name":"X","priority":1,"weight":1,"maxTps":1}`)
	})

	_, err := c.Update(context.Background(), "7", operator.Payload{Name: "X", Priority: 1, Weight: 1, MaxTPS: 1})
	require.NoError(t, err)
	require.NoError(t, c.Delete(context.Background(), "7"), "delete ack body is not parsed")
	assert.Equal(t, []string{"PUT /api/v1/operators/7", "DELETE /api/v1/operators/7"}, seen)
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "structured server error",
			status: http.StatusBadRequest,
			body:   `{"error":"X"}`,
			check: func(t *testing.T, err error) {
				var se *ServerError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, "X", se.Message)
				assert.Equal(t, "X", err.Error())
			},
		},
		{
			name:   "non 2xx without body",
			status: http.StatusBadGateway,
			body:   ``,
			check: func(t *testing.T, err error) {
				var ne *NetworkError
				require.ErrorAs(t, err, &ne)
				assert.Equal(t, http.StatusBadGateway, ne.StatusCode)
				assert.Equal(t, "502 Bad Gateway", ne.Status())
			},
		},
		{
			name:   "non 2xx html body",
			status: http.StatusInternalServerError,
			body:   `<html>oops</html>`,
			check: func(t *testing.T, err error) {
				var ne *NetworkError
				require.ErrorAs(t, err, &ne)
			},
		},
		{
			name:   "2xx unparseable body",
			status: http.StatusCreated,
			body:   `not json`,
			check: func(t *testing.T, err error) {
				var me *MalformedResponseError
				require.ErrorAs(t, err, &me)
				assert.Equal(t, http.StatusCreated, me.StatusCode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			_, err := c.Create(context.Background(), operator.Payload{Name: "n"})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(Config{BaseURL: url})
	require.NoError(t, err)

	_, err = c.List(context.Background())
	var ne *NetworkError
	require.True(t, errors.As(err, &ne))
	assert.Zero(t, ne.StatusCode)
	assert.Empty(t, ne.Status())
}
