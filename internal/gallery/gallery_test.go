package gallery

import (
	"testing"

	"photocapture/internal/blob"
	"photocapture/internal/dto"
)

func TestGalleryReplace(t *testing.T) {
	blobs := blob.NewRegistry()
	g := New(blobs)

	records := []dto.PhotoRecord{
		{ID: "3", FileName: "c.jpg", FileData: "AQID", ContentType: "image/jpeg"},
		{ID: "1", FileName: "a.jpg", FileData: "", ContentType: "image/jpeg"},
		{ID: "2", FileName: "b.png", FileData: "AQIDBAU=", ContentType: "image/png"},
	}
	if err := g.Replace(records); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	entries := g.Entries()
	if len(entries) != len(records) {
		t.Fatalf("Expected %d entries, got %d", len(records), len(entries))
	}
	wantSizes := []int{3, 0, 5}
	for i, e := range entries {
		if e.ID != string(records[i].ID) {
			t.Errorf("Entry %d: expected id %s, got %s", i, records[i].ID, e.ID)
		}
		if e.Size != wantSizes[i] {
			t.Errorf("Entry %d: expected size %d, got %d", i, wantSizes[i], e.Size)
		}
		b, ok := blobs.Get(e.Handle)
		if !ok {
			t.Fatalf("Entry %d: handle not registered", i)
		}
		if b.ContentType != records[i].ContentType || len(b.Data) != wantSizes[i] {
			t.Errorf("Entry %d: unexpected blob %s/%d", i, b.ContentType, len(b.Data))
		}
	}
}

func TestGalleryReplaceRevokesOldHandles(t *testing.T) {
	blobs := blob.NewRegistry()
	g := New(blobs)

	if err := g.Replace([]dto.PhotoRecord{{ID: "1", FileData: "AQID"}, {ID: "2", FileData: "AQID"}}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	old := g.Entries()

	if err := g.Replace([]dto.PhotoRecord{{ID: "2", FileData: "AQID"}}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	for _, e := range old {
		if _, ok := blobs.Get(e.Handle); ok {
			t.Errorf("Handle for %s should have been revoked", e.ID)
		}
	}
	if blobs.Len() != 1 {
		t.Errorf("Expected 1 live blob, got %d", blobs.Len())
	}
}

func TestGalleryReplaceBadPayloadKeepsSnapshot(t *testing.T) {
	blobs := blob.NewRegistry()
	g := New(blobs)

	if err := g.Replace([]dto.PhotoRecord{{ID: "1", FileData: "AQID"}}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	before := g.Entries()

	err := g.Replace([]dto.PhotoRecord{
		{ID: "2", FileData: "AQID"},
		{ID: "3", FileData: "not base64!"},
	})
	if err == nil {
		t.Fatal("Expected decode error")
	}

	after := g.Entries()
	if len(after) != 1 || after[0].Handle != before[0].Handle {
		t.Errorf("Snapshot changed after failed replace: %+v", after)
	}
	if blobs.Len() != 1 {
		t.Errorf("Expected no new blobs, got %d", blobs.Len())
	}
}

func TestGalleryReplaceEmpty(t *testing.T) {
	g := New(blob.NewRegistry())
	if err := g.Replace([]dto.PhotoRecord{{ID: "1", FileData: "AQID"}}); err != nil {
		t.Fatal(err)
	}
	if err := g.Replace(nil); err != nil {
		t.Fatal(err)
	}
	if g.Len() != 0 {
		t.Errorf("Expected empty gallery, got %d", g.Len())
	}
}
