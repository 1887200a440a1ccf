package ingest

import "testing"

func testRecord(user, msg string) Record {
	return Record{
		User:     user,
		Message:  msg,
		Year:     2024,
		Month:    "January",
		MonthNum: 1,
		OnlyDate: "2024-01-15",
		DayName:  "Monday",
		Period:   "14-15",
	}
}

func TestPipelineProcess(t *testing.T) {
	p := NewPipeline(nil, nil)

	r := p.Process(testRecord("Alice", "\u200e  Movie   dekhne chalein?  "))
	if r.Message != "Movie dekhne chalein?" {
		t.Errorf("Message = %q", r.Message)
	}
	if r.Kind != KindText {
		t.Errorf("Kind = %v, want text", r.Kind)
	}
	if r.MessageClean != "movie dekhne chalein" {
		t.Errorf("MessageClean = %q", r.MessageClean)
	}
}

func TestPipelineOmitted(t *testing.T) {
	p := NewPipeline(nil, nil)

	r := p.Process(testRecord("Alice", "<image omitted>"))
	if r.Message != Omitted || !r.IsOmitted() {
		t.Fatalf("expected omitted record, got %q (%v)", r.Message, r.Kind)
	}
	if r.MessageClean != "" {
		t.Errorf("omitted record should have empty clean text, got %q", r.MessageClean)
	}

	again := p.Process(r)
	if !again.IsOmitted() || again.Message != Omitted {
		t.Error("re-processing an omitted record must keep it omitted")
	}
}

func TestPipelineUserTypedSentinel(t *testing.T) {
	p := NewPipeline(nil, nil)

	r := p.Process(testRecord("Bob", "<OMITTED>"))
	if r.IsOmitted() {
		t.Error("user text spelling the sentinel must not be treated as media")
	}
}

func TestPipelinePrepareCopies(t *testing.T) {
	p := NewPipeline(nil, nil)
	raw := []Record{
		testRecord("Alice", "  hello   there  "),
		testRecord("Bob", "[video omitted]"),
	}

	prepared := p.Prepare(raw)
	if len(prepared) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(prepared))
	}
	if raw[0].Message != "  hello   there  " || raw[1].Kind != KindText {
		t.Error("Prepare must not modify the input records")
	}
	if prepared[0].Message != "hello there" || !prepared[1].IsOmitted() {
		t.Errorf("unexpected prepared records: %+v", prepared)
	}
}

func TestPipelineDeterministic(t *testing.T) {
	p := NewPipeline(nil, nil)
	raw := []Record{
		testRecord("Alice", "Kal party hai?"),
		testRecord("Bob", "haan bhai pakka"),
	}

	first := p.Prepare(raw)
	second := p.Prepare(p.Prepare(raw))
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("record %d differs after re-preparing: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestPipelineDecomposedAccent(t *testing.T) {
	p := NewPipeline(nil, nil)

	r := p.Process(testRecord("Alice", "cafe\u0301 khulla"))
	if r.Message != "cafe\u0301 khulla" {
		t.Errorf("Message = %q, want the text unchanged", r.Message)
	}
	if r.MessageClean != "cafe khulla" {
		t.Errorf("MessageClean = %q, want %q", r.MessageClean, "cafe khulla")
	}
}
