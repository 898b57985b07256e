package faults

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	err := New(ShapeChanged, "title not found")
	if KindOf(err) != ShapeChanged {
		t.Errorf("KindOf = %q, expected %q", KindOf(err), ShapeChanged)
	}

	if KindOf(errors.New("plain")) != "" {
		t.Error("untagged error should have empty kind")
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := Errorf(Transport, "fetching page: %w", errors.New("connection refused"))
	outer := fmt.Errorf("scrape cycle: %w", inner)

	if !Is(outer, Transport) {
		t.Errorf("expected wrapped error to keep kind %q", Transport)
	}
	if Is(outer, Store) {
		t.Error("wrapped error should not match a different kind")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(Store, nil) != nil {
		t.Error("Wrap(nil) should be nil")
	}

	err := Wrap(Store, errors.New("disk full"))
	if KindOf(err) != Store {
		t.Errorf("KindOf = %q, expected %q", KindOf(err), Store)
	}

	// An already-tagged error keeps its original tag.
	rewrapped := Wrap(Store, New(ShapeChanged, "missing heading"))
	if KindOf(rewrapped) != ShapeChanged {
		t.Errorf("KindOf = %q, expected original tag %q", KindOf(rewrapped), ShapeChanged)
	}
}

func TestErrorMessage(t *testing.T) {
	err := New(Credential, "DCI_PASSWORD not set")
	expected := "credential: DCI_PASSWORD not set"
	if err.Error() != expected {
		t.Errorf("Error() = %q, expected %q", err.Error(), expected)
	}
}
