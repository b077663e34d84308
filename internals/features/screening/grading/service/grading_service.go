// file: internals/features/screening/grading/service/grading_service.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/grading/model"
	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/grading/repository"
	helper "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/helpers"
)

var (
	ErrRuleNotFound  = errors.New("no grading rule for grade")
	ErrGradeExists   = errors.New("a grading rule for this grade already exists")
	ErrNegativeMarks = errors.New("grading rule marks must not be negative")
)

// Resolver maps a letter grade to its numeric marks through the
// admin-editable grading table.
//
// Edits do NOT retroactively invalidate aggregates already cached on
// candidates; a candidate's record stays as-is until it is explicitly
// recomputed. Computations in flight when a rule changes may observe either
// the old or the new value.
type Resolver struct {
	repo repository.GradingRuleRepository
}

func NewResolver(repo repository.GradingRuleRepository) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve looks up the marks for a grade. Pure lookup, no side effects.
func (s *Resolver) Resolve(ctx context.Context, grade string) (int, error) {
	rule, err := s.repo.GetByGrade(ctx, grade)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrRuleNotFound
	}
	if err != nil {
		return 0, err
	}
	return rule.GradingRuleMarks, nil
}

// Snapshot returns the current grade -> marks table in one read.
func (s *Resolver) Snapshot(ctx context.Context) (map[string]int, error) {
	return s.repo.Snapshot(ctx)
}

func (s *Resolver) ListRules(ctx context.Context) ([]model.GradingRuleModel, error) {
	return s.repo.List(ctx)
}

func (s *Resolver) CreateRule(ctx context.Context, grade string, marks int) (model.GradingRuleModel, error) {
	if marks < 0 {
		return model.GradingRuleModel{}, ErrNegativeMarks
	}
	rule := model.GradingRuleModel{GradingRuleGrade: grade, GradingRuleMarks: marks}
	if err := s.repo.Create(ctx, &rule); err != nil {
		if helper.IsUniqueViolation(err) {
			return model.GradingRuleModel{}, ErrGradeExists
		}
		return model.GradingRuleModel{}, err
	}
	return rule, nil
}

func (s *Resolver) UpdateRule(ctx context.Context, grade string, marks int) (model.GradingRuleModel, error) {
	if marks < 0 {
		return model.GradingRuleModel{}, ErrNegativeMarks
	}
	rule, err := s.repo.UpdateMarks(ctx, grade, marks)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.GradingRuleModel{}, ErrRuleNotFound
	}
	return rule, err
}

func (s *Resolver) DeleteRule(ctx context.Context, grade string) error {
	err := s.repo.DeleteByGrade(ctx, grade)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRuleNotFound
	}
	return err
}
