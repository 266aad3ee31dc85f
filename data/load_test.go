package data

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempData(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "habits.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp data: %v", err)
	}
	return path
}

func TestLoadFromEnvelopeFile(t *testing.T) {
	path := writeTempData(t, `{
		"success": true,
		"data": [{"id": 1, "name": "Morning run"}],
		"meta": {"timestamp": "2025-06-01T00:00:00Z", "pagination": {"page": 1, "limit": 20, "total": 1, "totalPages": 1}}
	}`)

	result, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	habits, ok := result.Data()
	if !ok || len(habits) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(habits))
	}
	if habits[0].Name != "Morning run" {
		t.Errorf("unexpected habit name: %q", habits[0].Name)
	}
}

func TestLoadFailureEnvelope(t *testing.T) {
	path := writeTempData(t, `{
		"success": false,
		"error": {"message": "database gone", "code": "INTERNAL"}
	}`)

	result, err := Load(path)
	if err != nil {
		t.Fatalf("a failure envelope is data, not a load error: %v", err)
	}
	if result.IsOk() {
		t.Fatalf("expected Err result")
	}
	if result.Err().Code != "INTERNAL" {
		t.Errorf("expected code INTERNAL, got %q", result.Err().Code)
	}
}

func TestLoadRejectsBrokenEnvelope(t *testing.T) {
	path := writeTempData(t, `{"success": true, "error": {"message": "boom"}}`)
	if _, err := Load(path); err == nil {
		t.Errorf("expected envelope validation error")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestSampleIsWellFormed(t *testing.T) {
	result := Sample()
	habits, ok := result.Data()
	if !ok || len(habits) == 0 {
		t.Fatalf("expected sample habits")
	}
	meta := result.Meta()
	if meta == nil || meta.Pagination == nil {
		t.Fatalf("expected pagination meta on sample")
	}
	if err := meta.Pagination.Validate(); err != nil {
		t.Errorf("sample pagination invalid: %v", err)
	}
	if meta.Pagination.Total != len(habits) {
		t.Errorf("expected total %d, got %d", len(habits), meta.Pagination.Total)
	}

	// the sample must survive its own envelope round trip
	if err := result.Response().Validate(); err != nil {
		t.Errorf("sample envelope invalid: %v", err)
	}
}
