package client

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusErrorMessage(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "json error body", body: `{"error":"match not found"}`, message: "match not found"},
		{name: "plain text body", body: "upstream unavailable\n", message: "upstream unavailable"},
		{name: "empty body", body: "", message: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			_, err := NewClientCommunicator(ts.URL, ts.Client()).State("any")

			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			require.Equal(t, http.StatusBadGateway, statusErr.Code)
			require.Equal(t, tt.message, statusErr.Message)
		})
	}
}
