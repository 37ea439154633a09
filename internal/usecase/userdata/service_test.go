package userdata_test

import (
	"context"
	"errors"
	"testing"

	"datapulse/internal/domain/entity"
	dataUC "datapulse/internal/usecase/userdata"
)

// very-light UserDataRepository stub
type stubRepo struct {
	data   map[int64]*entity.UserData
	nextID int64
	err    error // forced error injection
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.UserData{}, nextID: 1}
}

func (s *stubRepo) Create(_ context.Context, d *entity.UserData) error {
	if s.err != nil {
		return s.err
	}
	d.ID = s.nextID
	s.nextID++
	s.data[d.ID] = d
	return nil
}

func (s *stubRepo) List(_ context.Context, offset, limit int) ([]*entity.UserData, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.UserData
	for id := int64(1); id < s.nextID && len(out) < limit; id++ {
		if v, ok := s.data[id]; ok {
			if offset > 0 {
				offset--
				continue
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.UserData, error) {
	if s.err != nil {
		return nil, s.err
	}
	v, ok := s.data[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return v, nil
}

func (s *stubRepo) Update(_ context.Context, d *entity.UserData) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[d.ID]; !ok {
		return entity.ErrNotFound
	}
	s.data[d.ID] = d
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) (*entity.UserData, error) {
	if s.err != nil {
		return nil, s.err
	}
	v, ok := s.data[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	delete(s.data, id)
	return v, nil
}

func TestService_Create_validation(t *testing.T) {
	svc := dataUC.Service{Repo: newStub()}

	if _, err := svc.Create(context.Background(), dataUC.CreateInput{}); err == nil {
		t.Fatalf("want validation error, got nil")
	}

	var vErr *entity.ValidationError
	_, err := svc.Create(context.Background(), dataUC.CreateInput{Value: "no name"})
	if !errors.As(err, &vErr) {
		t.Fatalf("want *entity.ValidationError, got %v", err)
	}
}

func TestService_Create_ok(t *testing.T) {
	svc := dataUC.Service{Repo: newStub()}

	got, err := svc.Create(context.Background(), dataUC.CreateInput{Name: "item", Value: "v"})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if got.ID == 0 {
		t.Fatalf("ID not assigned: %+v", got)
	}
}

func TestService_List_pagination(t *testing.T) {
	repo := newStub()
	svc := dataUC.Service{Repo: repo}
	for i := 0; i < 5; i++ {
		if _, err := svc.Create(context.Background(), dataUC.CreateInput{Name: "n"}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := svc.List(context.Background(), dataUC.ListInput{Skip: 2, Limit: 2})
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(got) != 2 || got[0].ID != 3 {
		t.Fatalf("unexpected page: len=%d first=%+v", len(got), got[0])
	}
}

func TestService_List_negativeSkip(t *testing.T) {
	svc := dataUC.Service{Repo: newStub()}

	var vErr *entity.ValidationError
	_, err := svc.List(context.Background(), dataUC.ListInput{Skip: -1})
	if !errors.As(err, &vErr) {
		t.Fatalf("want *entity.ValidationError, got %v", err)
	}
}

func TestService_Get_notFound(t *testing.T) {
	svc := dataUC.Service{Repo: newStub()}

	_, err := svc.Get(context.Background(), 99)
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestService_Update_ok(t *testing.T) {
	repo := newStub()
	svc := dataUC.Service{Repo: repo}
	created, err := svc.Create(context.Background(), dataUC.CreateInput{Name: "old", Value: "v1"})
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Update(context.Background(), dataUC.UpdateInput{ID: created.ID, Name: "new", Value: "v2"})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got.Name != "new" || got.Value != "v2" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestService_Update_notFound(t *testing.T) {
	svc := dataUC.Service{Repo: newStub()}

	_, err := svc.Update(context.Background(), dataUC.UpdateInput{ID: 99, Name: "x"})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestService_Delete_returnsRow(t *testing.T) {
	repo := newStub()
	svc := dataUC.Service{Repo: repo}
	created, err := svc.Create(context.Background(), dataUC.CreateInput{Name: "item"})
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("unexpected row: %+v", got)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("item still present after delete")
	}
}

func TestService_Delete_invalidID(t *testing.T) {
	svc := dataUC.Service{Repo: newStub()}

	var vErr *entity.ValidationError
	_, err := svc.Delete(context.Background(), 0)
	if !errors.As(err, &vErr) {
		t.Fatalf("want *entity.ValidationError, got %v", err)
	}
}
