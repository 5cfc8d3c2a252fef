package gcalendar_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"integra-recife/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCalendarClientCredentials(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Broken config without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`),
			filepath.Join(t.TempDir(), "token.json"))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Installed app config with token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o644)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Installed app config bad token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o644)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("From file", func(t *testing.T) {
		credsPath := filepath.Join(t.TempDir(), "creds.json")
		os.WriteFile(credsPath, []byte(`{"broken":true}`), 0o644)

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), credsPath, filepath.Join(t.TempDir(), "none.json"))
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json", "")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("Timed event", func(t *testing.T) {
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/city/events" && r.Method == http.MethodPost {
				b, _ := io.ReadAll(r.Body)
				json.Unmarshal(b, &body)
				w.Write([]byte(`{"id": "event-123", "htmlLink": "https://calendar.google.com/event-uri"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		start := time.Date(2025, 10, 15, 18, 0, 0, 0, time.FixedZone("BRT", -3*3600))
		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID: "city",
			Summary:    "Frevo",
			Location:   "Marco Zero",
			StartTime:  start,
			EndTime:    start.Add(2 * time.Hour),
			Timezone:   "America/Recife",
			SourceID:   "42",
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected link: %s", event.HtmlLink)
		}

		startBody, _ := body["start"].(map[string]any)
		if startBody["dateTime"] != "2025-10-15T18:00:00-03:00" {
			t.Errorf("unexpected start: %v", body["start"])
		}
		props, _ := body["extendedProperties"].(map[string]any)
		private, _ := props["private"].(map[string]any)
		if private[gcalendar.SourcePropertyKey] != "42" {
			t.Errorf("missing source property: %v", body["extendedProperties"])
		}
		if body["location"] != "Marco Zero" {
			t.Errorf("location = %v", body["location"])
		}
	})

	t.Run("All day event", func(t *testing.T) {
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			b, _ := io.ReadAll(r.Body)
			json.Unmarshal(b, &body)
			w.Write([]byte(`{"id": "event-456"}`))
		})

		day := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "Feira",
			StartTime: day,
			EndTime:   day.AddDate(0, 0, 1),
			AllDay:    true,
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		startBody, _ := body["start"].(map[string]any)
		endBody, _ := body["end"].(map[string]any)
		if startBody["date"] != "2025-10-18" || endBody["date"] != "2025-10-19" {
			t.Errorf("unexpected all-day range: %v .. %v", body["start"], body["end"])
		}
		if _, ok := startBody["dateTime"]; ok {
			t.Errorf("all-day event must not send dateTime")
		}
	})

	t.Run("API error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "Title",
			StartTime: time.Now(),
			EndTime:   time.Now().Add(time.Hour),
		})
		if err == nil {
			t.Fatalf("expected api error")
		}
	})
}

func TestListEvents(t *testing.T) {
	var query string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/test-fail/events" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
			query = r.URL.RawQuery
			w.Write([]byte(`{
				"items": [
					{
						"id": "event-123",
						"summary": "Existing Event",
						"start": { "date": "2024-05-01" },
						"end": { "date": "2024-05-02" }
					},
					{
						"id": "event-456",
						"summary": "Timed Event",
						"start": { "dateTime": "2024-05-01T18:00:00-03:00" },
						"end": { "dateTime": "2024-05-01T20:00:00-03:00" }
					}
				]
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		TimeMin:  time.Now(),
		TimeMax:  time.Now().Add(24 * time.Hour),
		SourceID: "7",
	})
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if !events[0].AllDay || events[1].AllDay {
		t.Errorf("AllDay flags = %v, %v", events[0].AllDay, events[1].AllDay)
	}
	if events[1].StartTime.Hour() != 18 {
		t.Errorf("timed start = %v", events[1].StartTime)
	}
	if !strings.Contains(query, "privateExtendedProperty=integraEventId%3D7") {
		t.Errorf("source filter not sent: %s", query)
	}

	_, err = client.ListEvents(context.Background(), gcalendar.ListEventsRequest{CalendarID: "test-fail"})
	if err == nil {
		t.Fatalf("expected api error on test-fail")
	}
}
