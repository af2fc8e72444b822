package db

import (
	"errors"
	"testing"
)

func TestCreateAndGetProject(t *testing.T) {
	newTestDB(t)

	created := mustProject(t, "code")
	if created.ID == 0 {
		t.Fatal("expected non-zero project id")
	}
	if created.CreatedAt == 0 {
		t.Error("expected created_at to be set")
	}

	got, err := GetProjectByName(testUser, "code")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != created.ID || got.ParentID != nil {
		t.Errorf("unexpected project: %+v", got)
	}
}

func TestGetProjectByNameNotFound(t *testing.T) {
	newTestDB(t)

	_, err := GetProjectByName(testUser, "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSubprojects(t *testing.T) {
	newTestDB(t)

	root := mustProject(t, "code")
	sub1 := mustSubproject(t, "code", "backend")
	sub2 := mustSubproject(t, "code", "frontend")
	mustProject(t, "music") // unrelated root

	subs, err := GetSubprojects(testUser, "code")
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 2 {
		t.Fatalf("expected 2 subprojects, got %d", len(subs))
	}
	for _, sub := range subs {
		if sub.ParentID == nil || *sub.ParentID != root.ID {
			t.Errorf("subproject %q has wrong parent", sub.Name)
		}
	}
	_ = sub1
	_ = sub2

	roots, err := GetRootProjects(testUser)
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 2 {
		t.Fatalf("expected 2 root projects, got %d", len(roots))
	}
}

func TestCreateSubprojectMissingParent(t *testing.T) {
	newTestDB(t)

	_, err := CreateSubproject(testUser, "ghost", "sub")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGoalProjectIDs(t *testing.T) {
	newTestDB(t)

	root := mustProject(t, "code")
	sub1 := mustSubproject(t, "code", "backend")
	sub2 := mustSubproject(t, "code", "frontend")
	leaf := mustProject(t, "music")

	// A goal on a root project covers its subprojects, not the root itself.
	rootGoal := insertGoal(t, root.ID, "ship", "hours_light", ts(t, "2024-03-01 10:00:00"))
	ids, err := goalProjectIDs(DB, rootGoal)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %v", ids)
	}
	for _, id := range ids {
		if id != sub1.ID && id != sub2.ID {
			t.Errorf("unexpected project id %d", id)
		}
	}

	// A goal on a leaf covers exactly that project.
	leafGoal := insertGoal(t, leaf.ID, "practice", "hours_light", ts(t, "2024-03-01 10:00:00"))
	ids, err = goalProjectIDs(DB, leafGoal)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != leaf.ID {
		t.Errorf("expected [%d], got %v", leaf.ID, ids)
	}
}
