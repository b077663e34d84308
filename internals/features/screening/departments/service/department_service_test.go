// file: internals/features/screening/departments/service/department_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/departments/model"
)

type memDeptRepo struct {
	depts  map[uuid.UUID]model.DepartmentModel
	byCode map[string]uuid.UUID
}

func newMemDeptRepo() *memDeptRepo {
	return &memDeptRepo{
		depts:  map[uuid.UUID]model.DepartmentModel{},
		byCode: map[string]uuid.UUID{},
	}
}

func (f *memDeptRepo) GetByID(_ context.Context, id uuid.UUID) (model.DepartmentModel, error) {
	d, ok := f.depts[id]
	if !ok {
		return model.DepartmentModel{}, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (f *memDeptRepo) List(_ context.Context, _, _ int) ([]model.DepartmentModel, int64, error) {
	out := []model.DepartmentModel{}
	for _, d := range f.depts {
		out = append(out, d)
	}
	return out, int64(len(out)), nil
}

func (f *memDeptRepo) Create(_ context.Context, dept *model.DepartmentModel) error {
	if _, exists := f.byCode[dept.DepartmentCode]; exists {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_departments_code"}
	}
	if dept.DepartmentID == uuid.Nil {
		dept.DepartmentID = uuid.New()
	}
	f.depts[dept.DepartmentID] = *dept
	f.byCode[dept.DepartmentCode] = dept.DepartmentID
	return nil
}

func (f *memDeptRepo) Save(_ context.Context, dept *model.DepartmentModel) error {
	f.depts[dept.DepartmentID] = *dept
	return nil
}

func validDepartment() model.DepartmentModel {
	return model.DepartmentModel{
		DepartmentCode:                  "csc",
		DepartmentName:                  "Computer Science",
		DepartmentExamPercentage:        70,
		DepartmentOlevelPercentage:      30,
		DepartmentUtmeCutoffMark:        180,
		DepartmentOlevelCutoffAggregate: 30,
		DepartmentFinalCutoffMark:       60,
	}
}

func TestCreateDepartment(t *testing.T) {
	svc := NewService(newMemDeptRepo())
	ctx := context.Background()

	t.Run("normalises code and defaults status", func(t *testing.T) {
		dept, err := svc.Create(ctx, validDepartment())
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if dept.DepartmentCode != "CSC" {
			t.Errorf("code = %s, want CSC", dept.DepartmentCode)
		}
		if dept.DepartmentStatus != model.DepartmentActive {
			t.Errorf("status = %s, want ACTIVE default", dept.DepartmentStatus)
		}
	})

	t.Run("duplicate code", func(t *testing.T) {
		if _, err := svc.Create(ctx, validDepartment()); !errors.Is(err, ErrDepartmentCodeExists) {
			t.Errorf("err = %v, want ErrDepartmentCodeExists", err)
		}
	})

	t.Run("invalid weight split", func(t *testing.T) {
		dept := validDepartment()
		dept.DepartmentCode = "EEE"
		dept.DepartmentExamPercentage = 60
		if _, err := svc.Create(ctx, dept); !errors.Is(err, ErrInvalidWeightSplit) {
			t.Errorf("err = %v, want ErrInvalidWeightSplit", err)
		}
	})
}

func TestUpdateDepartmentRevalidatesWeightSplit(t *testing.T) {
	svc := NewService(newMemDeptRepo())
	ctx := context.Background()

	dept, err := svc.Create(ctx, validDepartment())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, dept.DepartmentID, func(d *model.DepartmentModel) {
		d.DepartmentExamPercentage = 60
		d.DepartmentOlevelPercentage = 40
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.DepartmentExamPercentage != 60 {
		t.Errorf("exam pct = %d, want 60", updated.DepartmentExamPercentage)
	}

	_, err = svc.Update(ctx, dept.DepartmentID, func(d *model.DepartmentModel) {
		d.DepartmentOlevelPercentage = 50
	})
	if !errors.Is(err, ErrInvalidWeightSplit) {
		t.Errorf("err = %v, want ErrInvalidWeightSplit", err)
	}

	if _, err := svc.Update(ctx, uuid.New(), func(*model.DepartmentModel) {}); !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("unknown id: err = %v, want ErrDepartmentNotFound", err)
	}
}

func TestCutoffHelpersAreInclusive(t *testing.T) {
	dept := validDepartment()

	cases := []struct {
		name string
		got  bool
		want bool
	}{
		{"utme exactly on cutoff", dept.MeetsUtmeCutoff(180), true},
		{"utme below cutoff", dept.MeetsUtmeCutoff(179), false},
		{"aggregate exactly on cutoff", dept.MeetsOlevelCutoff(30), true},
		{"aggregate above cutoff", dept.MeetsOlevelCutoff(31), false},
		{"final exactly on cutoff", dept.MeetsFinalCutoff(60), true},
		{"final below cutoff", dept.MeetsFinalCutoff(59), false},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestWeightedScore(t *testing.T) {
	dept := validDepartment()

	if got := dept.WeightedScore(80, 60); got != 74 {
		t.Errorf("WeightedScore(80, 60) = %v, want 74", got)
	}
	if got := dept.WeightedScore(0, 0); got != 0 {
		t.Errorf("WeightedScore(0, 0) = %v, want 0", got)
	}
}
