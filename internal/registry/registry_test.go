package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/jumper/internal/level"
)

func TestBuiltinLevelsRegistered(t *testing.T) {
	for _, l := range level.Builtin() {
		if !Exists(l.ID) {
			t.Errorf("builtin level %q not registered", l.ID)
		}
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	if First() != list[0].ID {
		t.Errorf("First() = %q, expected %q", First(), list[0].ID)
	}
}

func TestAddAndGet(t *testing.T) {
	l := level.Level{ID: "test-add", Name: "Added", Map: level.Map{"P1"}, Source: "memory"}
	if err := Add(l); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	t.Cleanup(func() {
		mu.Lock()
		delete(levels, l.ID)
		mu.Unlock()
	})

	got, err := Get("test-add")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Name != "Added" || got.Source != "memory" {
		t.Errorf("Get() = %+v", got)
	}

	if err := Add(l); !errors.Is(err, ErrDuplicate) {
		t.Errorf("second Add() = %v, expected ErrDuplicate", err)
	}
}

func TestAddRejectsInvalid(t *testing.T) {
	err := Add(level.Level{ID: "test-invalid", Map: level.Map{"000"}})
	if !errors.Is(err, level.ErrMissingSpawn) {
		t.Errorf("Add() = %v, expected ErrMissingSpawn", err)
	}
	if Exists("test-invalid") {
		t.Error("invalid level should not be registered")
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("does-not-exist"); err == nil {
		t.Error("Get() of an unknown id should fail")
	}
}

func TestRegisterPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() of a builtin id should panic")
		}
	}()
	Register(level.Builtin()[0])
}
