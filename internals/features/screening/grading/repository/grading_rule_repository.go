// file: internals/features/screening/grading/repository/grading_rule_repository.go
package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/grading/model"
)

type GradingRuleRepository interface {
	GetByGrade(ctx context.Context, grade string) (model.GradingRuleModel, error)
	List(ctx context.Context) ([]model.GradingRuleModel, error)
	// Snapshot returns the whole table as grade -> marks. Aggregate
	// computations read one snapshot so a concurrent admin edit is seen
	// either fully or not at all within a single computation.
	Snapshot(ctx context.Context) (map[string]int, error)
	Create(ctx context.Context, rule *model.GradingRuleModel) error
	UpdateMarks(ctx context.Context, grade string, marks int) (model.GradingRuleModel, error)
	DeleteByGrade(ctx context.Context, grade string) error
}

/* =========================================================
   GORM implementation
========================================================= */

type gradingRuleRepo struct {
	db *gorm.DB
}

func NewGradingRuleRepository(db *gorm.DB) GradingRuleRepository {
	return &gradingRuleRepo{db: db}
}

func (r *gradingRuleRepo) GetByGrade(ctx context.Context, grade string) (model.GradingRuleModel, error) {
	var rule model.GradingRuleModel
	err := r.db.WithContext(ctx).
		Where("grading_rule_grade = ?", normalizeGrade(grade)).
		Take(&rule).Error
	return rule, err
}

func (r *gradingRuleRepo) List(ctx context.Context) ([]model.GradingRuleModel, error) {
	var rules []model.GradingRuleModel
	err := r.db.WithContext(ctx).
		Order("grading_rule_marks ASC, grading_rule_grade ASC").
		Find(&rules).Error
	return rules, err
}

func (r *gradingRuleRepo) Snapshot(ctx context.Context) (map[string]int, error) {
	rules, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	snap := make(map[string]int, len(rules))
	for _, rule := range rules {
		snap[rule.GradingRuleGrade] = rule.GradingRuleMarks
	}
	return snap, nil
}

func (r *gradingRuleRepo) Create(ctx context.Context, rule *model.GradingRuleModel) error {
	rule.GradingRuleGrade = normalizeGrade(rule.GradingRuleGrade)
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *gradingRuleRepo) UpdateMarks(ctx context.Context, grade string, marks int) (model.GradingRuleModel, error) {
	var rule model.GradingRuleModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("grading_rule_grade = ?", normalizeGrade(grade)).Take(&rule).Error; err != nil {
			return err
		}
		rule.GradingRuleMarks = marks
		return tx.Save(&rule).Error
	})
	return rule, err
}

func (r *gradingRuleRepo) DeleteByGrade(ctx context.Context, grade string) error {
	res := r.db.WithContext(ctx).
		Where("grading_rule_grade = ?", normalizeGrade(grade)).
		Delete(&model.GradingRuleModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func normalizeGrade(grade string) string {
	return strings.ToUpper(strings.TrimSpace(grade))
}
