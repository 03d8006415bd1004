package service

import (
	"context"
	"errors"
	"testing"

	"github.com/myagency/backend/internal/model"
	"github.com/myagency/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock ContactRepository
// ---------------------------------------------------------------------------

type mockContactRepo struct {
	contacts map[string]*model.Contact
	saved    []*model.Contact
}

func newMockContactRepo(contacts ...*model.Contact) *mockContactRepo {
	m := &mockContactRepo{contacts: map[string]*model.Contact{}}
	for _, c := range contacts {
		m.contacts[c.ID] = c
	}
	return m
}

func (m *mockContactRepo) Save(ctx context.Context, c *model.Contact) error {
	m.saved = append(m.saved, c)
	m.contacts[c.ID] = c
	return nil
}

func (m *mockContactRepo) GetByID(ctx context.Context, id string) (*model.Contact, error) {
	c, ok := m.contacts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockContactRepo) List(ctx context.Context) ([]*model.Contact, error) {
	var out []*model.Contact
	for _, c := range m.contacts {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockContactRepo) Update(ctx context.Context, c *model.Contact) error {
	if _, ok := m.contacts[c.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *c
	m.contacts[c.ID] = &cp
	return nil
}

func (m *mockContactRepo) UpdateStatus(ctx context.Context, id, status string) error {
	c, ok := m.contacts[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.Status = status
	return nil
}

func (m *mockContactRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.contacts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.contacts, id)
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestContactService_Submit_DefaultsToUnread(t *testing.T) {
	repo := newMockContactRepo()
	svc := NewContactService(repo)

	c := &model.Contact{ID: "c1", Name: "Alice", Email: "a@example.com", Phone: "07", Service: "Web", Message: "hi", Status: "Read"}
	if err := svc.Submit(context.Background(), c); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if c.Status != model.ContactStatusUnread {
		t.Errorf("expected Unread after submit, got %q", c.Status)
	}
	if c.CreatedAt.IsZero() {
		t.Error("expected CreatedAt stamped")
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected one saved contact, got %d", len(repo.saved))
	}
}

// TestContactService_ToggleStatus_RoundTrip checks Read → Unread → Read.
func TestContactService_ToggleStatus_RoundTrip(t *testing.T) {
	repo := newMockContactRepo(&model.Contact{ID: "c1", Status: model.ContactStatusRead})
	svc := NewContactService(repo)
	ctx := context.Background()

	c, err := svc.ToggleStatus(ctx, "c1")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if c.Status != model.ContactStatusUnread {
		t.Fatalf("expected Unread after first toggle, got %q", c.Status)
	}

	c, err = svc.ToggleStatus(ctx, "c1")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if c.Status != model.ContactStatusRead {
		t.Errorf("expected Read after second toggle, got %q", c.Status)
	}
	if repo.contacts["c1"].Status != model.ContactStatusRead {
		t.Errorf("stored status should round-trip to Read, got %q", repo.contacts["c1"].Status)
	}
}

// Resolved contacts toggle to Read; only an explicit set reaches Resolved.
func TestContactService_ToggleStatus_ResolvedBecomesRead(t *testing.T) {
	repo := newMockContactRepo(&model.Contact{ID: "c1", Status: model.ContactStatusResolved})
	svc := NewContactService(repo)

	c, err := svc.ToggleStatus(context.Background(), "c1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if c.Status != model.ContactStatusRead {
		t.Errorf("expected Read, got %q", c.Status)
	}
}

func TestContactService_SetStatus_RejectsUnknownValue(t *testing.T) {
	repo := newMockContactRepo(&model.Contact{ID: "c1", Status: model.ContactStatusUnread})
	svc := NewContactService(repo)

	_, err := svc.SetStatus(context.Background(), "c1", "Archived")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if repo.contacts["c1"].Status != model.ContactStatusUnread {
		t.Errorf("stored status must be unchanged, got %q", repo.contacts["c1"].Status)
	}
}

func TestContactService_SetStatus_Resolved(t *testing.T) {
	repo := newMockContactRepo(&model.Contact{ID: "c1", Status: model.ContactStatusRead})
	svc := NewContactService(repo)

	c, err := svc.SetStatus(context.Background(), "c1", model.ContactStatusResolved)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if c.Status != model.ContactStatusResolved {
		t.Errorf("expected Resolved, got %q", c.Status)
	}
}

func TestContactService_Update_KeepsAbsentFields(t *testing.T) {
	repo := newMockContactRepo(&model.Contact{
		ID: "c1", Name: "Alice", Email: "a@example.com", Phone: "07", Service: "Web", Message: "hi",
		Status: model.ContactStatusUnread,
	})
	svc := NewContactService(repo)

	c, err := svc.Update(context.Background(), "c1", model.ContactUpdate{Name: "Alicia"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if c.Name != "Alicia" {
		t.Errorf("expected name replaced, got %q", c.Name)
	}
	if c.Email != "a@example.com" || c.Phone != "07" || c.Service != "Web" || c.Message != "hi" {
		t.Errorf("absent fields must keep stored values: %+v", c)
	}
}

func TestContactService_Update_NotFound(t *testing.T) {
	svc := NewContactService(newMockContactRepo())

	_, err := svc.Update(context.Background(), "missing", model.ContactUpdate{Name: "x"})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
