package request

import "testing"

func TestUpdateStatusRequest_ResolveStatus(t *testing.T) {
	r := UpdateStatusRequest{Status: "  Quoted "}
	if got := r.ResolveStatus(); string(got) != "quoted" {
		t.Fatalf("expected quoted, got %q", got)
	}
}

func TestAssignHandlerRequest_ResolveHandler(t *testing.T) {
	r := AssignHandlerRequest{Handler: " 陳經理 "}
	if got := r.ResolveHandler(); got != "陳經理" {
		t.Fatalf("expected trimmed handler, got %q", got)
	}
}

func TestUpdateBusinessRequest_ToUpdate(t *testing.T) {
	price := "12000"
	r := UpdateBusinessRequest{Price: &price, Version: 4}

	upd := r.ToUpdate()
	if upd.Price == nil || *upd.Price != "12000" {
		t.Fatalf("unexpected price: %+v", upd)
	}
	if upd.InternalNotes != nil {
		t.Fatal("absent notes must stay nil")
	}
	if upd.Version != 4 {
		t.Fatalf("unexpected version: %d", upd.Version)
	}
}
