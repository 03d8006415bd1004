package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/myagency/backend/internal/model"
	"github.com/myagency/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock ProjectService
// ---------------------------------------------------------------------------

type mockProjectService struct {
	createFunc     func(ctx context.Context, p *model.Project) error
	getByIDFunc    func(ctx context.Context, id string) (*model.Project, error)
	listFunc       func(ctx context.Context, category string) ([]*model.Project, error)
	categoriesFunc func(ctx context.Context) ([]string, error)
	updateFunc     func(ctx context.Context, p *model.Project) error
	deleteFunc     func(ctx context.Context, id string) error
}

func (m *mockProjectService) Create(ctx context.Context, p *model.Project) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectService) GetByID(ctx context.Context, id string) (*model.Project, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProjectService) List(ctx context.Context, category string) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, category)
	}
	return nil, nil
}

func (m *mockProjectService) Categories(ctx context.Context) ([]string, error) {
	if m.categoriesFunc != nil {
		return m.categoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectService) Update(ctx context.Context, p *model.Project) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestProjectHandler_Create_MissingRequiredField(t *testing.T) {
	for _, missing := range []string{"title", "description", "category"} {
		t.Run(missing, func(t *testing.T) {
			called := false
			mock := &mockProjectService{
				createFunc: func(ctx context.Context, p *model.Project) error {
					called = true
					return nil
				},
			}
			h := NewProjectHandler(mock, NewUploader(newMockStorage()))

			fields := map[string]string{"title": "t", "description": "d", "category": "c"}
			delete(fields, missing)
			req := multipartRequest(t, "/dashboard/projects/add", fields, "", "", nil)
			rec := httptest.NewRecorder()
			h.Create(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400 when %s missing, got %d", missing, rec.Code)
			}
			if called {
				t.Errorf("no project must be persisted when %s is missing", missing)
			}
		})
	}
}

func TestProjectHandler_Create_WithImage(t *testing.T) {
	var created *model.Project
	mock := &mockProjectService{
		createFunc: func(ctx context.Context, p *model.Project) error {
			created = p
			p.ID = "p1"
			return nil
		},
	}
	store := newMockStorage()
	h := NewProjectHandler(mock, NewUploader(store))

	fields := map[string]string{
		"title":       "Agency Site",
		"description": "Marketing site",
		"websiteUrl":  "https://example.com",
		"category":    "Web",
	}
	req := multipartRequest(t, "/dashboard/projects/add", fields, "image", "shot.png", []byte("png"))
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if created == nil {
		t.Fatal("expected Create to be called")
	}
	if created.Image == "" {
		t.Error("expected project to reference the stored image")
	}
	if _, ok := store.saved[created.Image]; !ok {
		t.Errorf("stored image %q not found in storage", created.Image)
	}
}

// TestProjectHandler_Create_RollsBackFileOnPersistFailure verifies that the
// freshly stored image is deleted when the database insert fails, so no
// orphaned file outlives the record.
func TestProjectHandler_Create_RollsBackFileOnPersistFailure(t *testing.T) {
	mock := &mockProjectService{
		createFunc: func(ctx context.Context, p *model.Project) error {
			return context.DeadlineExceeded
		},
	}
	store := newMockStorage()
	h := NewProjectHandler(mock, NewUploader(store))

	fields := map[string]string{"title": "t", "description": "d", "category": "c"}
	req := multipartRequest(t, "/dashboard/projects/add", fields, "image", "shot.png", []byte("png"))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if len(store.saved) != 0 {
		t.Errorf("expected rollback to remove the stored file, still have %v", store.saved)
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestProjectHandler_Update_ReplacesImage(t *testing.T) {
	existing := &model.Project{ID: "p1", Title: "Old", Description: "d", Category: "Web", Image: "image-old.png"}
	var updated *model.Project
	mock := &mockProjectService{
		getByIDFunc: func(ctx context.Context, id string) (*model.Project, error) {
			return existing, nil
		},
		updateFunc: func(ctx context.Context, p *model.Project) error {
			updated = p
			return nil
		},
	}
	store := newMockStorage()
	h := NewProjectHandler(mock, NewUploader(store))

	req := multipartRequest(t, "/dashboard/projects/edit/p1", map[string]string{"title": "New"}, "image", "new.png", []byte("png"))
	req.Header.Set("Accept", "application/json")
	req.SetPathValue("id", "p1")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if updated == nil {
		t.Fatal("expected Update to be called")
	}
	if updated.Title != "New" {
		t.Errorf("expected title replaced, got %q", updated.Title)
	}
	if updated.Description != "d" || updated.Category != "Web" {
		t.Errorf("absent fields must keep stored values: %+v", updated)
	}
	if updated.Image == "" || updated.Image == "image-old.png" {
		t.Errorf("expected image field to point at the new file, got %q", updated.Image)
	}

	deletedOld := false
	for _, d := range store.deleted {
		if d == "image-old.png" {
			deletedOld = true
		}
	}
	if !deletedOld {
		t.Errorf("expected replaced file image-old.png to be deleted, deleted: %v", store.deleted)
	}
}

func TestProjectHandler_Update_NotFound(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{}, NewUploader(newMockStorage()))

	req := multipartRequest(t, "/dashboard/projects/edit/missing", map[string]string{"title": "x"}, "", "", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestProjectHandler_Delete_RemovesRecordAndFile(t *testing.T) {
	deletedID := ""
	mock := &mockProjectService{
		getByIDFunc: func(ctx context.Context, id string) (*model.Project, error) {
			return &model.Project{ID: id, Image: "image-p1.png"}, nil
		},
		deleteFunc: func(ctx context.Context, id string) error {
			deletedID = id
			return nil
		},
	}
	store := newMockStorage()
	h := NewProjectHandler(mock, NewUploader(store))

	req := httptest.NewRequest(http.MethodDelete, "/dashboard/projects/delete/p1", nil)
	req.Header.Set("Accept", "application/json")
	req.SetPathValue("id", "p1")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deletedID != "p1" {
		t.Errorf("expected record p1 deleted, got %q", deletedID)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "image-p1.png" {
		t.Errorf("expected associated file deleted, got %v", store.deleted)
	}
}

func TestProjectHandler_Delete_NoImageNoFileOperation(t *testing.T) {
	mock := &mockProjectService{
		getByIDFunc: func(ctx context.Context, id string) (*model.Project, error) {
			return &model.Project{ID: id}, nil
		},
	}
	store := newMockStorage()
	h := NewProjectHandler(mock, NewUploader(store))

	req := httptest.NewRequest(http.MethodDelete, "/dashboard/projects/delete/p2", nil)
	req.Header.Set("Accept", "application/json")
	req.SetPathValue("id", "p2")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(store.deleted) != 0 {
		t.Errorf("expected no file operation, got deletes: %v", store.deleted)
	}
}

func TestProjectHandler_Delete_NotFound(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{}, NewUploader(newMockStorage()))

	req := httptest.NewRequest(http.MethodDelete, "/dashboard/projects/delete/missing", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "not_found" {
		t.Errorf("expected not_found error code, got %q", resp["error"])
	}
}
