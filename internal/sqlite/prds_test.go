package sqlite

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jerops/prd-generator/internal/form"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "prds.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := Migrate(db); err != nil {
		t.Fatal(err)
	}
	return NewStore(db)
}

func TestSaveAndGetPRD(t *testing.T) {
	store := testStore(t)
	state := form.NewState()
	state.ProjectName = "Stored"
	state.CoreFeatures = []string{"one"}

	saved, err := store.SavePRD("Stored v1", nil, state)
	if err != nil {
		t.Fatal(err)
	}
	if saved.ID == 0 {
		t.Error("saved PRD should get an ID")
	}
	got, err := store.GetPRD(saved.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Stored v1" {
		t.Errorf("title = %q", got.Title)
	}
	if !reflect.DeepEqual(got.Data, state) {
		t.Errorf("data round trip mismatch:\n%+v\n%+v", got.Data, state)
	}
}

func TestGetMissingPRD(t *testing.T) {
	store := testStore(t)
	if _, err := store.GetPRD(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListPRDsNewestFirst(t *testing.T) {
	store := testStore(t)
	if _, err := store.SavePRD("first", nil, form.NewState()); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SavePRD("second", nil, form.NewState()); err != nil {
		t.Fatal(err)
	}
	list, err := store.ListPRDs()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d", len(list))
	}
	if list[0].Title != "second" || list[1].Title != "first" {
		t.Errorf("order: %v", list)
	}
}

func TestUpdatePRD(t *testing.T) {
	store := testStore(t)
	saved, err := store.SavePRD("draft", nil, form.NewState())
	if err != nil {
		t.Fatal(err)
	}
	updated := form.NewState()
	updated.ProjectName = "Renamed"
	if err := store.UpdatePRD(saved.ID, "final", updated); err != nil {
		t.Fatal(err)
	}
	got, err := store.GetPRD(saved.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "final" || got.Data.ProjectName != "Renamed" {
		t.Errorf("got %q / %q", got.Title, got.Data.ProjectName)
	}
	if err := store.UpdatePRD(9000, "x", form.NewState()); !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing: %v", err)
	}
}

func TestDeletePRD(t *testing.T) {
	store := testStore(t)
	saved, err := store.SavePRD("doomed", nil, form.NewState())
	if err != nil {
		t.Fatal(err)
	}
	if err := store.DeletePRD(saved.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := store.GetPRD(saved.ID); !errors.Is(err, ErrNotFound) {
		t.Error("PRD should be gone")
	}
}

func TestPRDBelongsToUser(t *testing.T) {
	store := testStore(t)
	u, err := store.CreateUser("pat", "hunter2")
	if err != nil {
		t.Fatal(err)
	}
	saved, err := store.SavePRD("mine", &u.ID, form.NewState())
	if err != nil {
		t.Fatal(err)
	}
	got, err := store.GetPRD(saved.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.UserID == nil || *got.UserID != u.ID {
		t.Errorf("userID = %v, want %d", got.UserID, u.ID)
	}
}

func TestUsersUniqueByName(t *testing.T) {
	store := testStore(t)
	if _, err := store.CreateUser("pat", "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.CreateUser("pat", "b"); err == nil {
		t.Error("duplicate username should fail")
	}
	u, err := store.GetUserByUsername("pat")
	if err != nil {
		t.Fatal(err)
	}
	if u.Username != "pat" {
		t.Errorf("username = %q", u.Username)
	}
	if _, err := store.GetUserByUsername("nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing user: %v", err)
	}
}
