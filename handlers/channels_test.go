// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/quizcast/quizcast/models"
	"github.com/quizcast/quizcast/store"
	"github.com/quizcast/quizcast/testutil"
)

func newChannelHandler(t *testing.T) (*ChannelHandler, *store.Store) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)
	return NewChannelHandler(s), s
}

func createChannel(t *testing.T, h *ChannelHandler, body string) models.Channel {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/channels", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Create() status = %d, body = %s", w.Code, w.Body.String())
	}
	var ch models.Channel
	if err := json.NewDecoder(w.Body).Decode(&ch); err != nil {
		t.Fatalf("Failed to decode channel: %v", err)
	}
	return ch
}

func TestListChannels(t *testing.T) {
	h, _ := newChannelHandler(t)

	t.Run("empty", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/channels", nil)
		w := httptest.NewRecorder()
		h.List(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("List() status = %d", w.Code)
		}
		var channels []models.Channel
		if err := json.NewDecoder(w.Body).Decode(&channels); err != nil {
			t.Fatalf("Failed to decode: %v", err)
		}
		if len(channels) != 0 {
			t.Errorf("List() returned %d channels, want 0", len(channels))
		}
	})

	createChannel(t, h, `{"channel_name":"GK Daily","channel_id":"@gkdaily"}`)
	createChannel(t, h, `{"channel_name":"Science Hub","channel_id":"@scihub"}`)

	t.Run("two channels", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/channels", nil)
		w := httptest.NewRecorder()
		h.List(w, req)

		var channels []models.Channel
		if err := json.NewDecoder(w.Body).Decode(&channels); err != nil {
			t.Fatalf("Failed to decode: %v", err)
		}
		if len(channels) != 2 {
			t.Errorf("List() returned %d channels, want 2", len(channels))
		}
	})
}

func TestCreateChannel(t *testing.T) {
	h, _ := newChannelHandler(t)

	ch := createChannel(t, h, `{"channel_name":"GK Daily","channel_id":"@gkdaily","discussion_group_id":"-100555","category":"gk"}`)
	if ch.ID == 0 {
		t.Error("Create() returned zero id")
	}
	if ch.ChannelID != "@gkdaily" {
		t.Errorf("channel_id = %q, want @gkdaily", ch.ChannelID)
	}
	if ch.QuestionsPerBatch != 10 {
		t.Errorf("questions_per_batch = %d, want default 10", ch.QuestionsPerBatch)
	}
	if !ch.Active {
		t.Error("new channel should default to active")
	}

	t.Run("duplicate channel_id", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/channels",
			strings.NewReader(`{"channel_name":"Other","channel_id":"@gkdaily"}`))
		w := httptest.NewRecorder()
		h.Create(w, req)
		if w.Code != http.StatusConflict {
			t.Errorf("duplicate Create() status = %d, want 409", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		for _, body := range []string{
			`{"channel_id":"@x"}`,
			`{"channel_name":"X"}`,
			`{not json}`,
		} {
			req := httptest.NewRequest("POST", "/api/channels", strings.NewReader(body))
			w := httptest.NewRecorder()
			h.Create(w, req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Create(%s) status = %d, want 400", body, w.Code)
			}
		}
	})
}

func TestUpdateChannel(t *testing.T) {
	h, _ := newChannelHandler(t)
	ch := createChannel(t, h, `{"channel_name":"GK Daily","channel_id":"@gkdaily"}`)

	body := `{"channel_name":"GK Daily v2","channel_id":"@gkdaily","questions_per_batch":5,"active":false}`
	req := httptest.NewRequest("PUT", fmt.Sprintf("/api/channels/%d", ch.ID), strings.NewReader(body))
	req.SetPathValue("id", fmt.Sprint(ch.ID))
	w := httptest.NewRecorder()
	h.Update(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Update() status = %d, body = %s", w.Code, w.Body.String())
	}
	var updated models.Channel
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if updated.ChannelName != "GK Daily v2" {
		t.Errorf("channel_name = %q, want GK Daily v2", updated.ChannelName)
	}
	if updated.QuestionsPerBatch != 5 {
		t.Errorf("questions_per_batch = %d, want 5", updated.QuestionsPerBatch)
	}
	if updated.Active {
		t.Error("expected channel deactivated")
	}

	t.Run("unknown id", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/api/channels/9999", strings.NewReader(body))
		req.SetPathValue("id", "9999")
		w := httptest.NewRecorder()
		h.Update(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("Update(9999) status = %d, want 404", w.Code)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/api/channels/abc", strings.NewReader(body))
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()
		h.Update(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Update(abc) status = %d, want 400", w.Code)
		}
	})
}

func TestDeleteChannel(t *testing.T) {
	h, s := newChannelHandler(t)
	ch := createChannel(t, h, `{"channel_name":"GK Daily","channel_id":"@gkdaily"}`)

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/api/channels/%d", ch.ID), nil)
	req.SetPathValue("id", fmt.Sprint(ch.ID))
	w := httptest.NewRecorder()
	h.Delete(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Delete() status = %d", w.Code)
	}
	if _, err := s.GetChannel(ch.ID); err != store.ErrNotFound {
		t.Errorf("GetChannel after delete error = %v, want ErrNotFound", err)
	}

	t.Run("already deleted", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", fmt.Sprintf("/api/channels/%d", ch.ID), nil)
		req.SetPathValue("id", fmt.Sprint(ch.ID))
		w := httptest.NewRecorder()
		h.Delete(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("second Delete() status = %d, want 404", w.Code)
		}
	})
}
