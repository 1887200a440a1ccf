package filter

import (
	"reflect"
	"testing"

	"github.com/cognicore/chatstat/pkg/chatstat/ingest"
)

func sample() []ingest.Record {
	return []ingest.Record{
		{User: "Bob", Message: "hello", MessageClean: "hello"},
		{User: ingest.SystemUser, Message: "Alice added Bob", MessageClean: "alice added bob"},
		{User: "Alice", Message: ingest.Omitted, Kind: ingest.KindOmitted},
		{User: "Alice", Message: "ok", MessageClean: ""},
		{User: "Alice", Message: "party tonight", MessageClean: "party tonight"},
		{User: "Carol", Message: "   ", MessageClean: "   "},
	}
}

func TestScopeOverall(t *testing.T) {
	records := sample()
	got := Scope(records, Overall)
	if len(got) != len(records) {
		t.Fatalf("Expected %d records, got %d", len(records), len(got))
	}
	got[0].User = "changed"
	if records[0].User != "Bob" {
		t.Error("Scope must return a copy")
	}
}

func TestScopeUser(t *testing.T) {
	got := Scope(sample(), "Alice")
	if len(got) != 3 {
		t.Fatalf("Expected 3 Alice records, got %d", len(got))
	}
	for _, r := range got {
		if r.User != "Alice" {
			t.Errorf("unexpected user %q", r.User)
		}
	}
}

func TestScopeUnknownUser(t *testing.T) {
	got := Scope(sample(), "Mallory")
	if got == nil || len(got) != 0 {
		t.Errorf("unknown user should give an empty slice, got %v", got)
	}
	if got := Scope(nil, Overall); len(got) != 0 {
		t.Error("empty input should give empty output")
	}
}

func TestTextOnly(t *testing.T) {
	got := TextOnly(sample())
	if len(got) != 2 {
		t.Fatalf("Expected 2 text records, got %d: %+v", len(got), got)
	}
	if got[0].User != "Bob" || got[1].MessageClean != "party tonight" {
		t.Errorf("unexpected text records: %+v", got)
	}
}

func TestParticipants(t *testing.T) {
	got := Participants(sample())
	want := []string{"Bob", ingest.SystemUser, "Alice", "Carol"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Participants = %v, want %v", got, want)
	}
}

func TestUsers(t *testing.T) {
	got := Users(sample())
	want := []string{Overall, "Alice", "Bob", "Carol"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Users = %v, want %v", got, want)
	}
	if got := Users(nil); !reflect.DeepEqual(got, []string{Overall}) {
		t.Errorf("Users(nil) = %v", got)
	}
}
