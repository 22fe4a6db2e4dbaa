package stations

import (
	"errors"
	"testing"

	"github.com/llehouerou/waveradio/internal/db"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	conn, err := db.Open(db.Memory)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	s, err := New(conn)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestNew_SeedsDefaults(t *testing.T) {
	s := setupTestStore(t)

	list, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 4 {
		t.Fatalf("len = %d, want 4", len(list))
	}
	for i, want := range Defaults() {
		if list[i].Name != want.Name || list[i].URL != want.URL {
			t.Errorf("station %d = %q %q, want %q %q", i, list[i].Name, list[i].URL, want.Name, want.URL)
		}
		if list[i].Favorite {
			t.Errorf("station %d should not be a favorite", i)
		}
	}
}

func TestNew_DoesNotReseed(t *testing.T) {
	conn, err := db.Open(db.Memory)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer conn.Close()

	s, err := New(conn)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	list, _ := s.List()
	if err := s.Delete(list[0].ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	s, err = New(conn)
	if err != nil {
		t.Fatalf("second New failed: %v", err)
	}
	list, _ = s.List()
	if len(list) != 3 {
		t.Errorf("len = %d, want 3 (no reseed of a non-empty catalog)", len(list))
	}
}

func TestAdd_RoundTrip(t *testing.T) {
	s := setupTestStore(t)

	added, err := s.Add(Station{
		Name:        "  Drone Zone  ",
		URL:         "https://ice2.somafm.com/dronezone-128-mp3",
		Description: "Atmospheric textures",
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if added.ID == 0 {
		t.Fatal("Add should set an id")
	}

	got, err := s.Get(added.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "Drone Zone" {
		t.Errorf("Name = %q, want trimmed", got.Name)
	}
	if got.Description != "Atmospheric textures" {
		t.Errorf("Description = %q", got.Description)
	}

	list, _ := s.List()
	if list[len(list)-1].ID != added.ID {
		t.Error("new station should be listed last")
	}
}

func TestAdd_Validation(t *testing.T) {
	tests := []struct {
		name string
		st   Station
	}{
		{"empty name", Station{Name: " ", URL: "http://example.com/stream"}},
		{"empty url", Station{Name: "x", URL: ""}},
		{"relative url", Station{Name: "x", URL: "stream.mp3"}},
		{"no host", Station{Name: "x", URL: "http://"}},
		{"bad url", Station{Name: "x", URL: "http://[::1"}},
	}

	s := setupTestStore(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Add(tt.st)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestAdd_EmptyDescriptionStoredAsNull(t *testing.T) {
	s := setupTestStore(t)

	added, err := s.Add(Station{Name: "Plain", URL: "http://example.com/a"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	var isNull bool
	err = s.db.QueryRow(`SELECT description IS NULL FROM stations WHERE id = ?`, added.ID).Scan(&isNull)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if !isNull {
		t.Error("empty description should be stored as NULL")
	}
}

func TestUpdate(t *testing.T) {
	s := setupTestStore(t)
	list, _ := s.List()
	st := list[1]

	if err := s.SetFavorite(st.ID, true); err != nil {
		t.Fatalf("SetFavorite failed: %v", err)
	}

	st.Name = "Secret Agent"
	st.URL = "https://ice6.somafm.com/secretagent-128-mp3"
	st.Favorite = false
	if err := s.Update(st); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, _ := s.Get(st.ID)
	if got.Name != "Secret Agent" || got.URL != st.URL {
		t.Errorf("got %+v", got)
	}
	if !got.Favorite {
		t.Error("Update must not touch the favorite flag")
	}
}

func TestUpdate_Errors(t *testing.T) {
	s := setupTestStore(t)

	err := s.Update(Station{ID: 999, Name: "x", URL: "http://example.com"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	list, _ := s.List()
	bad := list[0]
	bad.URL = "nope"
	if err := s.Update(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestDelete(t *testing.T) {
	s := setupTestStore(t)
	list, _ := s.List()

	if err := s.Delete(list[2].ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(list[2].ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
	if err := s.Delete(list[2].ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}

	remaining, _ := s.List()
	if len(remaining) != 3 {
		t.Errorf("len = %d, want 3", len(remaining))
	}
}

func TestToggleFavorite(t *testing.T) {
	s := setupTestStore(t)
	list, _ := s.List()
	id := list[0].ID

	fav, err := s.ToggleFavorite(id)
	if err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}
	if !fav {
		t.Error("first toggle should mark favorite")
	}
	got, _ := s.Get(id)
	if !got.Favorite {
		t.Error("favorite flag not persisted")
	}

	fav, _ = s.ToggleFavorite(id)
	if fav {
		t.Error("second toggle should unmark favorite")
	}

	if _, err := s.ToggleFavorite(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.Get(12345); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
