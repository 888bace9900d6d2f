package nager

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicHolidays(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"date":"2024-01-01","localName":"New Year's Day","name":"New Year's Day","countryCode":"US","global":true},
			{"date":"2024-07-04","localName":"Independence Day","name":"Independence Day","countryCode":"US","global":true}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	holidays, err := client.PublicHolidays(context.Background(), 2024, "us")
	require.NoError(t, err)

	// country code is uppercased in the request path
	assert.Equal(t, "/api/v3/PublicHolidays/2024/US", gotPath)
	require.Len(t, holidays, 2)
	assert.Equal(t, "New Year's Day", holidays[0].LocalName)
	assert.Equal(t, "2024-01-01", holidays[0].Date)
	assert.True(t, holidays[0].Global)
}

func TestPublicHolidays_UnknownCountry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.PublicHolidays(context.Background(), 2024, "XX")
	assert.ErrorIs(t, err, ErrCountryNotFound)
}

func TestPublicHolidays_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.PublicHolidays(context.Background(), 2024, "US")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestPublicHolidays_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.PublicHolidays(context.Background(), 2024, "US")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestPublicHolidays_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	holidays, err := client.PublicHolidays(context.Background(), 2024, "US")
	require.NoError(t, err)
	assert.Empty(t, holidays)
}

func TestPublicHolidays_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.PublicHolidays(context.Background(), 2024, "US")
	assert.ErrorIs(t, err, ErrUnavailable)
}
