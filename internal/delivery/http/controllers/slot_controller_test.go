package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soccerslotmanager/internal/domain"
)

func sampleView() *domain.SlotView {
	return &domain.SlotView{
		ID:               "s1",
		Date:             "2025-02-05",
		Players:          []string{"alice", "(Invité) Marc [par alice]"},
		Timestamps:       []time.Time{time.Now(), time.Now()},
		PlayerCount:      2,
		MaxPlayers:       domain.MaxPlayers,
		RegistrationOpen: true,
	}
}

func TestSlotController_CurrentSlot(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeSlotService{view: sampleView()}
		ctrl := NewSlotController(testLogger(), svc)
		req := httptest.NewRequest(http.MethodGet, "/api/current-slot", nil)
		rec := httptest.NewRecorder()

		ctrl.CurrentSlot(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var view domain.SlotView
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
		assert.Equal(t, "2025-02-05", view.Date)
		assert.Equal(t, 10, view.MaxPlayers)
		assert.Nil(t, svc.gotAsOf)
	})

	t.Run("as_of forwarded", func(t *testing.T) {
		svc := &fakeSlotService{view: sampleView()}
		ctrl := NewSlotController(testLogger(), svc)
		req := httptest.NewRequest(http.MethodGet, "/api/current-slot?as_of=2025-02-05T19:30:00Z", nil)
		rec := httptest.NewRecorder()

		ctrl.CurrentSlot(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, svc.gotAsOf)
		assert.Equal(t, 19, svc.gotAsOf.Hour())
	})

	t.Run("bad as_of", func(t *testing.T) {
		ctrl := NewSlotController(testLogger(), &fakeSlotService{})
		req := httptest.NewRequest(http.MethodGet, "/api/current-slot?as_of=yesterday", nil)
		rec := httptest.NewRecorder()

		ctrl.CurrentSlot(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestSlotController_Register(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		body       string
		svc        *fakeSlotService
		wantStatus int
	}{
		{
			name:       "success",
			url:        "/api/register?username=alice",
			body:       `{"name":"Alice"}`,
			svc:        &fakeSlotService{view: sampleView()},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing username param",
			url:        "/api/register",
			body:       `{"name":"Alice"}`,
			svc:        &fakeSlotService{},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "empty name",
			url:        "/api/register?username=alice",
			body:       `{"name":"   "}`,
			svc:        &fakeSlotService{},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unknown user",
			url:        "/api/register?username=ghost",
			body:       `{"name":"Ghost"}`,
			svc:        &fakeSlotService{viewErr: domain.ErrAuthRequired},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "registration closed",
			url:        "/api/register?username=alice",
			body:       `{"name":"Alice"}`,
			svc:        &fakeSlotService{viewErr: domain.ErrRegistrationClosed},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "slot full",
			url:        "/api/register?username=alice",
			body:       `{"name":"Alice"}`,
			svc:        &fakeSlotService{viewErr: domain.ErrSlotFull},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "already registered",
			url:        "/api/register?username=alice",
			body:       `{"name":"Alice"}`,
			svc:        &fakeSlotService{viewErr: domain.ErrAlreadyRegistered},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewSlotController(testLogger(), tt.svc)
			req := httptest.NewRequest(http.MethodPost, tt.url, bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			ctrl.Register(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSlotController_RegisterGuest(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := NewSlotController(testLogger(), &fakeSlotService{view: sampleView()})
		req := httptest.NewRequest(http.MethodPost, "/api/register-guest?username=alice", bytes.NewBufferString(`{"guestName":"Marc"}`))
		rec := httptest.NewRecorder()

		ctrl.RegisterGuest(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("duplicate guest name", func(t *testing.T) {
		ctrl := NewSlotController(testLogger(), &fakeSlotService{viewErr: domain.ErrDuplicateGuestName})
		req := httptest.NewRequest(http.MethodPost, "/api/register-guest?username=alice", bytes.NewBufferString(`{"guestName":"Marc"}`))
		rec := httptest.NewRecorder()

		ctrl.RegisterGuest(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty guest name", func(t *testing.T) {
		ctrl := NewSlotController(testLogger(), &fakeSlotService{})
		req := httptest.NewRequest(http.MethodPost, "/api/register-guest?username=alice", bytes.NewBufferString(`{"guestName":""}`))
		rec := httptest.NewRecorder()

		ctrl.RegisterGuest(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestSlotController_Unregister(t *testing.T) {
	newRequest := func(url, kind, participantID string) *http.Request {
		req := httptest.NewRequest(http.MethodDelete, url, nil)
		req.SetPathValue("kind", kind)
		req.SetPathValue("participantID", participantID)
		return req
	}

	t.Run("player removed", func(t *testing.T) {
		svc := &fakeSlotService{view: sampleView()}
		ctrl := NewSlotController(testLogger(), svc)
		rec := httptest.NewRecorder()

		ctrl.Unregister(rec, newRequest("/api/unregister/player/u1?username=alice", "player", "u1"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "player", svc.gotKind)
		assert.Equal(t, "u1", svc.gotParticipantID)
	})

	t.Run("invalid kind", func(t *testing.T) {
		ctrl := NewSlotController(testLogger(), &fakeSlotService{})
		rec := httptest.NewRecorder()

		ctrl.Unregister(rec, newRequest("/api/unregister/robot/u1?username=alice", "robot", "u1"))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("not the inviter", func(t *testing.T) {
		ctrl := NewSlotController(testLogger(), &fakeSlotService{viewErr: domain.ErrForbidden})
		rec := httptest.NewRecorder()

		ctrl.Unregister(rec, newRequest("/api/unregister/guest/g1?username=bob", "guest", "g1"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("participant not found", func(t *testing.T) {
		ctrl := NewSlotController(testLogger(), &fakeSlotService{viewErr: domain.ErrParticipantNotFound})
		rec := httptest.NewRecorder()

		ctrl.Unregister(rec, newRequest("/api/unregister/player/u9?username=alice", "player", "u9"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSlotController_History(t *testing.T) {
	t.Run("pagination parsed and meta returned", func(t *testing.T) {
		svc := &fakeSlotService{
			historySlots: []*domain.Slot{{ID: "s1"}, {ID: "s2"}},
			historyTotal: 12,
		}
		ctrl := NewSlotController(testLogger(), svc)
		req := httptest.NewRequest(http.MethodGet, "/api/slots?username=alice&page=2&page_size=5", nil)
		rec := httptest.NewRecorder()

		ctrl.History(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 2, svc.gotParams.Page)
		assert.Equal(t, 5, svc.gotParams.PageSize)

		var resp SlotHistoryResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp.Slots, 2)
		assert.Equal(t, 12, resp.Pagination.Total)
		assert.Equal(t, 3, resp.Pagination.TotalPages)
	})

	t.Run("requires username", func(t *testing.T) {
		ctrl := NewSlotController(testLogger(), &fakeSlotService{})
		req := httptest.NewRequest(http.MethodGet, "/api/slots", nil)
		rec := httptest.NewRecorder()

		ctrl.History(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
