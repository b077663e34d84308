// file: internals/features/screening/grading/service/grading_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/grading/model"
)

type memRuleRepo struct {
	rules map[string]int
}

func newMemRuleRepo(rules map[string]int) *memRuleRepo {
	if rules == nil {
		rules = map[string]int{}
	}
	return &memRuleRepo{rules: rules}
}

func (f *memRuleRepo) GetByGrade(_ context.Context, grade string) (model.GradingRuleModel, error) {
	marks, ok := f.rules[grade]
	if !ok {
		return model.GradingRuleModel{}, gorm.ErrRecordNotFound
	}
	return model.GradingRuleModel{GradingRuleGrade: grade, GradingRuleMarks: marks}, nil
}

func (f *memRuleRepo) List(_ context.Context) ([]model.GradingRuleModel, error) {
	out := []model.GradingRuleModel{}
	for g, m := range f.rules {
		out = append(out, model.GradingRuleModel{GradingRuleGrade: g, GradingRuleMarks: m})
	}
	return out, nil
}

func (f *memRuleRepo) Snapshot(_ context.Context) (map[string]int, error) {
	snap := make(map[string]int, len(f.rules))
	for g, m := range f.rules {
		snap[g] = m
	}
	return snap, nil
}

func (f *memRuleRepo) Create(_ context.Context, rule *model.GradingRuleModel) error {
	if _, exists := f.rules[rule.GradingRuleGrade]; exists {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_grading_rules_grade"}
	}
	f.rules[rule.GradingRuleGrade] = rule.GradingRuleMarks
	return nil
}

func (f *memRuleRepo) UpdateMarks(_ context.Context, grade string, marks int) (model.GradingRuleModel, error) {
	if _, ok := f.rules[grade]; !ok {
		return model.GradingRuleModel{}, gorm.ErrRecordNotFound
	}
	f.rules[grade] = marks
	return model.GradingRuleModel{GradingRuleGrade: grade, GradingRuleMarks: marks}, nil
}

func (f *memRuleRepo) DeleteByGrade(_ context.Context, grade string) error {
	if _, ok := f.rules[grade]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.rules, grade)
	return nil
}

func TestResolve(t *testing.T) {
	svc := NewResolver(newMemRuleRepo(map[string]int{"A1": 10, "B2": 6}))
	ctx := context.Background()

	marks, err := svc.Resolve(ctx, "A1")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if marks != 10 {
		t.Errorf("marks = %d, want 10", marks)
	}

	if _, err := svc.Resolve(ctx, "F9"); !errors.Is(err, ErrRuleNotFound) {
		t.Errorf("err = %v, want ErrRuleNotFound", err)
	}
}

func TestCreateRule(t *testing.T) {
	svc := NewResolver(newMemRuleRepo(map[string]int{"A1": 10}))
	ctx := context.Background()

	rule, err := svc.CreateRule(ctx, "B2", 6)
	if err != nil {
		t.Fatalf("CreateRule: %v", err)
	}
	if rule.GradingRuleMarks != 6 {
		t.Errorf("marks = %d, want 6", rule.GradingRuleMarks)
	}

	if _, err := svc.CreateRule(ctx, "A1", 9); !errors.Is(err, ErrGradeExists) {
		t.Errorf("duplicate grade: err = %v, want ErrGradeExists", err)
	}
	if _, err := svc.CreateRule(ctx, "C4", -1); !errors.Is(err, ErrNegativeMarks) {
		t.Errorf("negative marks: err = %v, want ErrNegativeMarks", err)
	}
}

func TestUpdateRule(t *testing.T) {
	repo := newMemRuleRepo(map[string]int{"A1": 10})
	svc := NewResolver(repo)
	ctx := context.Background()

	rule, err := svc.UpdateRule(ctx, "A1", 12)
	if err != nil {
		t.Fatalf("UpdateRule: %v", err)
	}
	if rule.GradingRuleMarks != 12 {
		t.Errorf("marks = %d, want 12", rule.GradingRuleMarks)
	}

	if _, err := svc.UpdateRule(ctx, "F9", 1); !errors.Is(err, ErrRuleNotFound) {
		t.Errorf("missing grade: err = %v, want ErrRuleNotFound", err)
	}
	if _, err := svc.UpdateRule(ctx, "A1", -5); !errors.Is(err, ErrNegativeMarks) {
		t.Errorf("negative marks: err = %v, want ErrNegativeMarks", err)
	}
}

func TestDeleteRule(t *testing.T) {
	repo := newMemRuleRepo(map[string]int{"A1": 10})
	svc := NewResolver(repo)
	ctx := context.Background()

	if err := svc.DeleteRule(ctx, "A1"); err != nil {
		t.Fatalf("DeleteRule: %v", err)
	}
	if err := svc.DeleteRule(ctx, "A1"); !errors.Is(err, ErrRuleNotFound) {
		t.Errorf("second delete: err = %v, want ErrRuleNotFound", err)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	repo := newMemRuleRepo(map[string]int{"A1": 10})
	svc := NewResolver(repo)

	snap, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	snap["A1"] = 99
	if repo.rules["A1"] != 10 {
		t.Error("mutating a snapshot leaked into the rule table")
	}
}
