package http

import (
	stdhttp "net/http"
	"testing"
)

func TestAdminEndpointsRequireTeacher(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, server, stdhttp.MethodPost, "/api/admin/rooms",
		map[string]string{"sender": "bob", "room_name": "math"})
	if resp.Code != stdhttp.StatusForbidden {
		t.Fatalf("create: expected 403, got %d", resp.Code)
	}

	resp = doJSON(t, server, stdhttp.MethodPost, "/api/admin/members/add",
		map[string]string{"sender": "bob", "user": "alice", "room": "math"})
	if resp.Code != stdhttp.StatusForbidden {
		t.Fatalf("add: expected 403, got %d", resp.Code)
	}

	resp = doJSON(t, server, stdhttp.MethodPost, "/api/admin/rooms/close",
		map[string]string{"sender": "bob", "room": "math"})
	if resp.Code != stdhttp.StatusForbidden {
		t.Fatalf("close: expected 403, got %d", resp.Code)
	}

	resp = doJSON(t, server, stdhttp.MethodPost, "/api/admin/privacy/toggle",
		map[string]string{"sender": "bob"})
	if resp.Code != stdhttp.StatusForbidden {
		t.Fatalf("toggle: expected 403, got %d", resp.Code)
	}
}

func TestCreateRoomDuplicate(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, server, stdhttp.MethodPost, "/api/admin/rooms",
		map[string]string{"sender": "mingli", "room_name": "math"})
	if resp.Code != stdhttp.StatusOK {
		t.Fatalf("create: expected 200, got %d", resp.Code)
	}

	resp = doJSON(t, server, stdhttp.MethodPost, "/api/admin/rooms",
		map[string]string{"sender": "mingli", "room_name": "math"})
	if resp.Code != stdhttp.StatusBadRequest {
		t.Fatalf("duplicate create: expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCloseRoomStatuses(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, server, stdhttp.MethodPost, "/api/admin/rooms/close",
		map[string]string{"sender": "mingli", "room": "general"})
	if resp.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("close default: expected 422, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, server, stdhttp.MethodPost, "/api/admin/rooms/close",
		map[string]string{"sender": "mingli", "room": "nosuch"})
	if resp.Code != stdhttp.StatusNotFound {
		t.Fatalf("close unknown: expected 404, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, server, stdhttp.MethodPost, "/api/admin/rooms/close",
		map[string]string{"sender": "mingli"})
	if resp.Code != stdhttp.StatusBadRequest {
		t.Fatalf("close without room: expected 400, got %d", resp.Code)
	}
}

func TestRemoveMemberMovesBackToDefault(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, server, stdhttp.MethodPost, "/api/admin/members/add",
		map[string]string{"sender": "mingli", "user": "alice", "room": "math"})
	if resp.Code != stdhttp.StatusOK {
		t.Fatalf("add: expected 200, got %d", resp.Code)
	}

	resp = doJSON(t, server, stdhttp.MethodPost, "/api/admin/members/remove",
		map[string]string{"sender": "mingli", "user": "alice", "room": "math"})
	if resp.Code != stdhttp.StatusOK {
		t.Fatalf("remove: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, server, stdhttp.MethodGet, "/api/users/rooms?user=alice", nil)
	rooms := decodeBody[RoomsResponse](t, resp)
	if len(rooms.Rooms) != 1 || rooms.Rooms[0] != "general" {
		t.Fatalf("expected alice only in [general], got %v", rooms.Rooms)
	}

	// Removing again: not a member anymore.
	resp = doJSON(t, server, stdhttp.MethodPost, "/api/admin/members/remove",
		map[string]string{"sender": "mingli", "user": "alice", "room": "math"})
	if resp.Code != stdhttp.StatusBadRequest {
		t.Fatalf("second remove: expected 400, got %d", resp.Code)
	}
}

func TestPrivacyStateIsPublic(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, server, stdhttp.MethodGet, "/api/privacy", nil)
	if resp.Code != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	state := decodeBody[PrivacyResponse](t, resp)
	if !state.Enabled {
		t.Fatal("privacy should start enabled")
	}
}
