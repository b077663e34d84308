// file: internals/features/screening/scoring/service/scoring_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	attemptmodel "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/attempts/model"
	candidatemodel "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/model"
	departmentmodel "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/departments/model"
	exammodel "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/examinations/model"
	gradingmodel "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/grading/model"
)

/* ===== in-memory fakes ===== */

type fakeCandidateRepo struct {
	cands         map[uuid.UUID]*candidatemodel.CandidateModel
	results       map[uuid.UUID][]candidatemodel.OLevelResultModel
	derivedWrites int
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{
		cands:   map[uuid.UUID]*candidatemodel.CandidateModel{},
		results: map[uuid.UUID][]candidatemodel.OLevelResultModel{},
	}
}

func (f *fakeCandidateRepo) GetByID(_ context.Context, id uuid.UUID) (candidatemodel.CandidateModel, error) {
	c, ok := f.cands[id]
	if !ok {
		return candidatemodel.CandidateModel{}, gorm.ErrRecordNotFound
	}
	return *c, nil
}

func (f *fakeCandidateRepo) GetByRegNumber(_ context.Context, regNumber string) (candidatemodel.CandidateModel, error) {
	for _, c := range f.cands {
		if c.CandidateRegNumber == regNumber {
			return *c, nil
		}
	}
	return candidatemodel.CandidateModel{}, gorm.ErrRecordNotFound
}

func (f *fakeCandidateRepo) List(_ context.Context, _, _ int) ([]candidatemodel.CandidateModel, int64, error) {
	out := []candidatemodel.CandidateModel{}
	for _, c := range f.cands {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCandidateRepo) ListUnassigned(_ context.Context) ([]candidatemodel.CandidateModel, error) {
	return nil, nil
}

func (f *fakeCandidateRepo) Create(_ context.Context, cand *candidatemodel.CandidateModel) error {
	if cand.CandidateID == uuid.Nil {
		cand.CandidateID = uuid.New()
	}
	cp := *cand
	f.cands[cand.CandidateID] = &cp
	return nil
}

func (f *fakeCandidateRepo) UpdateDerived(_ context.Context, id uuid.UUID, aggregate, finalScore int, status candidatemodel.AdmissionStatus, breakdown datatypes.JSON) error {
	c, ok := f.cands[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.CandidateOlevelAggregate = aggregate
	c.CandidateFinalScore = finalScore
	c.CandidateAdmissionStatus = status
	c.CandidateScoreBreakdown = breakdown
	f.derivedWrites++
	return nil
}

func (f *fakeCandidateRepo) MarkInProgress(_ context.Context, id uuid.UUID) error {
	c, ok := f.cands[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if c.CandidateAdmissionStatus == candidatemodel.AdmissionNotStarted {
		c.CandidateAdmissionStatus = candidatemodel.AdmissionInProgress
	}
	return nil
}

func (f *fakeCandidateRepo) ListOLevelResults(_ context.Context, candidateID uuid.UUID) ([]candidatemodel.OLevelResultModel, error) {
	return f.results[candidateID], nil
}

func (f *fakeCandidateRepo) UpsertOLevelResult(_ context.Context, result *candidatemodel.OLevelResultModel) error {
	list := f.results[result.OlevelResultCandidateID]
	for i := range list {
		if list[i].OlevelResultSubjectID == result.OlevelResultSubjectID {
			list[i].OlevelResultGrade = result.OlevelResultGrade
			return nil
		}
	}
	f.results[result.OlevelResultCandidateID] = append(list, *result)
	return nil
}

type fakeDepartmentRepo struct {
	depts map[uuid.UUID]departmentmodel.DepartmentModel
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id uuid.UUID) (departmentmodel.DepartmentModel, error) {
	d, ok := f.depts[id]
	if !ok {
		return departmentmodel.DepartmentModel{}, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (f *fakeDepartmentRepo) List(_ context.Context, _, _ int) ([]departmentmodel.DepartmentModel, int64, error) {
	return nil, 0, nil
}

func (f *fakeDepartmentRepo) Create(_ context.Context, dept *departmentmodel.DepartmentModel) error {
	if dept.DepartmentID == uuid.Nil {
		dept.DepartmentID = uuid.New()
	}
	f.depts[dept.DepartmentID] = *dept
	return nil
}

func (f *fakeDepartmentRepo) Save(_ context.Context, dept *departmentmodel.DepartmentModel) error {
	f.depts[dept.DepartmentID] = *dept
	return nil
}

type fakeExaminationRepo struct {
	exams  map[uuid.UUID]exammodel.ExaminationModel
	active map[uuid.UUID]uuid.UUID // departmentID -> examinationID
}

func (f *fakeExaminationRepo) GetByID(_ context.Context, id uuid.UUID) (exammodel.ExaminationModel, error) {
	e, ok := f.exams[id]
	if !ok {
		return exammodel.ExaminationModel{}, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (f *fakeExaminationRepo) FindActiveByDepartment(_ context.Context, departmentID uuid.UUID) (exammodel.ExaminationModel, error) {
	id, ok := f.active[departmentID]
	if !ok {
		return exammodel.ExaminationModel{}, gorm.ErrRecordNotFound
	}
	return f.exams[id], nil
}

func (f *fakeExaminationRepo) ListByDepartment(_ context.Context, _ uuid.UUID) ([]exammodel.ExaminationModel, error) {
	return nil, nil
}

func (f *fakeExaminationRepo) Create(_ context.Context, exam *exammodel.ExaminationModel) error {
	if exam.ExaminationID == uuid.Nil {
		exam.ExaminationID = uuid.New()
	}
	f.exams[exam.ExaminationID] = *exam
	return nil
}

func (f *fakeExaminationRepo) Save(_ context.Context, exam *exammodel.ExaminationModel) error {
	f.exams[exam.ExaminationID] = *exam
	return nil
}

func (f *fakeExaminationRepo) CreateQuestion(_ context.Context, _ *exammodel.QuestionModel) error {
	return nil
}

func (f *fakeExaminationRepo) ListQuestions(_ context.Context, _ uuid.UUID) ([]exammodel.QuestionModel, error) {
	return nil, nil
}

func (f *fakeExaminationRepo) DeleteQuestion(_ context.Context, _ uuid.UUID) error { return nil }

type fakeAttemptRepo struct {
	attempts []attemptmodel.TestAttemptModel
}

func (f *fakeAttemptRepo) Find(_ context.Context, candidateID, examinationID uuid.UUID) (attemptmodel.TestAttemptModel, error) {
	for _, a := range f.attempts {
		if a.TestAttemptCandidateID == candidateID && a.TestAttemptExaminationID == examinationID {
			return a, nil
		}
	}
	return attemptmodel.TestAttemptModel{}, gorm.ErrRecordNotFound
}

func (f *fakeAttemptRepo) GetByID(_ context.Context, id uuid.UUID) (attemptmodel.TestAttemptModel, error) {
	for _, a := range f.attempts {
		if a.TestAttemptID == id {
			return a, nil
		}
	}
	return attemptmodel.TestAttemptModel{}, gorm.ErrRecordNotFound
}

func (f *fakeAttemptRepo) LatestFinished(_ context.Context, candidateID, examinationID uuid.UUID) (attemptmodel.TestAttemptModel, error) {
	for i := len(f.attempts) - 1; i >= 0; i-- {
		a := f.attempts[i]
		if a.TestAttemptCandidateID == candidateID &&
			a.TestAttemptExaminationID == examinationID &&
			a.TestAttemptStatus.Finished() {
			return a, nil
		}
	}
	return attemptmodel.TestAttemptModel{}, gorm.ErrRecordNotFound
}

func (f *fakeAttemptRepo) CreateIfAbsent(_ context.Context, attempt *attemptmodel.TestAttemptModel) (bool, error) {
	for _, a := range f.attempts {
		if a.TestAttemptCandidateID == attempt.TestAttemptCandidateID &&
			a.TestAttemptExaminationID == attempt.TestAttemptExaminationID {
			*attempt = a
			return false, nil
		}
	}
	if attempt.TestAttemptID == uuid.Nil {
		attempt.TestAttemptID = uuid.New()
	}
	f.attempts = append(f.attempts, *attempt)
	return true, nil
}

func (f *fakeAttemptRepo) Save(_ context.Context, attempt *attemptmodel.TestAttemptModel) error {
	for i := range f.attempts {
		if f.attempts[i].TestAttemptID == attempt.TestAttemptID {
			f.attempts[i] = *attempt
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeGradingRepo struct {
	rules map[string]int
}

func (f *fakeGradingRepo) GetByGrade(_ context.Context, grade string) (gradingmodel.GradingRuleModel, error) {
	marks, ok := f.rules[grade]
	if !ok {
		return gradingmodel.GradingRuleModel{}, gorm.ErrRecordNotFound
	}
	return gradingmodel.GradingRuleModel{GradingRuleGrade: grade, GradingRuleMarks: marks}, nil
}

func (f *fakeGradingRepo) List(_ context.Context) ([]gradingmodel.GradingRuleModel, error) {
	out := []gradingmodel.GradingRuleModel{}
	for g, m := range f.rules {
		out = append(out, gradingmodel.GradingRuleModel{GradingRuleGrade: g, GradingRuleMarks: m})
	}
	return out, nil
}

func (f *fakeGradingRepo) Snapshot(_ context.Context) (map[string]int, error) {
	snap := make(map[string]int, len(f.rules))
	for g, m := range f.rules {
		snap[g] = m
	}
	return snap, nil
}

func (f *fakeGradingRepo) Create(_ context.Context, rule *gradingmodel.GradingRuleModel) error {
	f.rules[rule.GradingRuleGrade] = rule.GradingRuleMarks
	return nil
}

func (f *fakeGradingRepo) UpdateMarks(_ context.Context, grade string, marks int) (gradingmodel.GradingRuleModel, error) {
	if _, ok := f.rules[grade]; !ok {
		return gradingmodel.GradingRuleModel{}, gorm.ErrRecordNotFound
	}
	f.rules[grade] = marks
	return gradingmodel.GradingRuleModel{GradingRuleGrade: grade, GradingRuleMarks: marks}, nil
}

func (f *fakeGradingRepo) DeleteByGrade(_ context.Context, grade string) error {
	if _, ok := f.rules[grade]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.rules, grade)
	return nil
}

/* ===== fixture ===== */

type fixture struct {
	engine     *Engine
	candidates *fakeCandidateRepo
	attempts   *fakeAttemptRepo
	grading    *fakeGradingRepo

	candidateID   uuid.UUID
	departmentID  uuid.UUID
	examinationID uuid.UUID
}

// newFixture builds a candidate whose inputs produce a final score of 74:
// exam 80/100 weighted 70% plus a normalized O-Level score of 60 weighted
// 30% (five B2 results at 6 marks against a 5x10 ceiling).
func newFixture(t *testing.T) *fixture {
	t.Helper()

	candidates := newFakeCandidateRepo()
	departments := &fakeDepartmentRepo{depts: map[uuid.UUID]departmentmodel.DepartmentModel{}}
	examinations := &fakeExaminationRepo{
		exams:  map[uuid.UUID]exammodel.ExaminationModel{},
		active: map[uuid.UUID]uuid.UUID{},
	}
	attempts := &fakeAttemptRepo{}
	grading := &fakeGradingRepo{rules: map[string]int{"A1": 10, "B2": 6}}

	dept := departmentmodel.DepartmentModel{
		DepartmentID:                    uuid.New(),
		DepartmentCode:                  "CSC",
		DepartmentStatus:                departmentmodel.DepartmentActive,
		DepartmentExamPercentage:        70,
		DepartmentOlevelPercentage:      30,
		DepartmentUtmeCutoffMark:        180,
		DepartmentOlevelCutoffAggregate: 30,
		DepartmentFinalCutoffMark:       60,
	}
	departments.depts[dept.DepartmentID] = dept

	exam := exammodel.ExaminationModel{
		ExaminationID:           uuid.New(),
		ExaminationDepartmentID: dept.DepartmentID,
		ExaminationTotalMarks:   100,
		ExaminationIsActive:     true,
	}
	examinations.exams[exam.ExaminationID] = exam
	examinations.active[dept.DepartmentID] = exam.ExaminationID

	cand := candidatemodel.CandidateModel{
		CandidateID:              uuid.New(),
		CandidateRegNumber:       "ESS/2026/0001",
		CandidateDepartmentID:    dept.DepartmentID,
		CandidateUtmeScore:       200,
		CandidateAdmissionStatus: candidatemodel.AdmissionInProgress,
	}
	candidates.cands[cand.CandidateID] = &cand

	for i := 0; i < 5; i++ {
		candidates.results[cand.CandidateID] = append(candidates.results[cand.CandidateID],
			candidatemodel.OLevelResultModel{
				OlevelResultCandidateID: cand.CandidateID,
				OlevelResultSubjectID:   uuid.New(),
				OlevelResultGrade:       "B2",
			})
	}

	attempts.attempts = append(attempts.attempts, attemptmodel.TestAttemptModel{
		TestAttemptID:            uuid.New(),
		TestAttemptCandidateID:   cand.CandidateID,
		TestAttemptExaminationID: exam.ExaminationID,
		TestAttemptStatus:        attemptmodel.AttemptSubmitted,
		TestAttemptScore:         80,
	})

	return &fixture{
		engine:        NewEngine(candidates, departments, examinations, attempts, grading),
		candidates:    candidates,
		attempts:      attempts,
		grading:       grading,
		candidateID:   cand.CandidateID,
		departmentID:  dept.DepartmentID,
		examinationID: exam.ExaminationID,
	}
}

/* ===== tests ===== */

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{1.49, 1},
		{1.5, 2},
		{2.5, 3},
		{73.9, 74},
		{74.5, 75},
	}
	for _, tc := range cases {
		if got := roundHalfUp(tc.in); got != tc.want {
			t.Errorf("roundHalfUp(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestComputeFinalScoreWeightedSum(t *testing.T) {
	fx := newFixture(t)

	bd, err := fx.engine.ComputeFinalScore(context.Background(), fx.candidateID)
	if err != nil {
		t.Fatalf("ComputeFinalScore: %v", err)
	}
	if bd.OlevelAggregate != 30 {
		t.Errorf("aggregate = %d, want 30", bd.OlevelAggregate)
	}
	if bd.OlevelNormalized != 60 {
		t.Errorf("normalized = %v, want 60", bd.OlevelNormalized)
	}
	if bd.ExamContribution != 80 {
		t.Errorf("exam contribution = %v, want 80", bd.ExamContribution)
	}
	if bd.FinalScore != 74 {
		t.Errorf("final score = %d, want 74", bd.FinalScore)
	}
	if bd.Provisional {
		t.Error("score flagged provisional despite a submitted attempt")
	}
}

func TestComputeFinalScoreIsDeterministic(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	first, err := fx.engine.ComputeFinalScore(ctx, fx.candidateID)
	if err != nil {
		t.Fatalf("ComputeFinalScore: %v", err)
	}
	second, err := fx.engine.ComputeFinalScore(ctx, fx.candidateID)
	if err != nil {
		t.Fatalf("ComputeFinalScore: %v", err)
	}
	if first.FinalScore != second.FinalScore || first.OlevelNormalized != second.OlevelNormalized {
		t.Errorf("repeated computation diverged: %+v vs %+v", first, second)
	}
}

func TestComputeFinalScoreProvisionalWithoutFinishedAttempt(t *testing.T) {
	fx := newFixture(t)
	fx.attempts.attempts[0].TestAttemptStatus = attemptmodel.AttemptPending

	bd, err := fx.engine.ComputeFinalScore(context.Background(), fx.candidateID)
	if err != nil {
		t.Fatalf("ComputeFinalScore: %v", err)
	}
	if !bd.Provisional {
		t.Error("expected provisional score with no finished attempt")
	}
	if bd.ExamContribution != 0 {
		t.Errorf("exam contribution = %v, want 0", bd.ExamContribution)
	}
	// 30% of normalized 60 only
	if bd.FinalScore != 18 {
		t.Errorf("final score = %d, want 18", bd.FinalScore)
	}
}

func TestNormalizationFallsBackToDepartmentCutoff(t *testing.T) {
	fx := newFixture(t)
	fx.grading.rules = map[string]int{}

	bd, err := fx.engine.ComputeFinalScore(context.Background(), fx.candidateID)
	if err != nil {
		t.Fatalf("ComputeFinalScore: %v", err)
	}
	if bd.OlevelCeiling != 30 {
		t.Errorf("ceiling = %d, want the department cutoff 30", bd.OlevelCeiling)
	}
	// Every grade unresolved, aggregate zero.
	if bd.OlevelAggregate != 0 || bd.OlevelNormalized != 0 {
		t.Errorf("aggregate/normalized = %d/%v, want 0/0", bd.OlevelAggregate, bd.OlevelNormalized)
	}
}

func TestUnresolvedGradesContributeZero(t *testing.T) {
	fx := newFixture(t)
	// One of the five subjects now carries a grade with no rule.
	fx.candidates.results[fx.candidateID][0].OlevelResultGrade = "Z9"

	bd, err := fx.engine.ComputeFinalScore(context.Background(), fx.candidateID)
	if err != nil {
		t.Fatalf("ComputeFinalScore: %v", err)
	}
	if bd.OlevelAggregate != 24 {
		t.Errorf("aggregate = %d, want 24 (four resolved B2)", bd.OlevelAggregate)
	}
}

func TestRecomputeDecisionAdmitsOnInclusiveThresholds(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	// Pin every input exactly on its cutoff: utme 180/180, aggregate 30<=30,
	// final 74 with the cutoff raised to 74.
	fx.candidates.cands[fx.candidateID].CandidateUtmeScore = 180
	dept := fx.engine.departments.(*fakeDepartmentRepo).depts[fx.departmentID]
	dept.DepartmentFinalCutoffMark = 74
	fx.engine.departments.(*fakeDepartmentRepo).depts[fx.departmentID] = dept

	out, err := fx.engine.RecomputeFinalScoreAndDecision(ctx, fx.candidateID)
	if err != nil {
		t.Fatalf("RecomputeFinalScoreAndDecision: %v", err)
	}
	if out.AdmissionStatus != candidatemodel.AdmissionAdmitted {
		t.Errorf("status = %s, want ADMITTED on exact-equality cutoffs", out.AdmissionStatus)
	}
	if out.FinalScore != 74 {
		t.Errorf("final score = %d, want 74", out.FinalScore)
	}
}

func TestRecomputeDecisionRejectsOnFailedCutoff(t *testing.T) {
	fx := newFixture(t)
	fx.candidates.cands[fx.candidateID].CandidateUtmeScore = 179

	out, err := fx.engine.RecomputeFinalScoreAndDecision(context.Background(), fx.candidateID)
	if err != nil {
		t.Fatalf("RecomputeFinalScoreAndDecision: %v", err)
	}
	if out.AdmissionStatus != candidatemodel.AdmissionRejected {
		t.Errorf("status = %s, want REJECTED below the utme cutoff", out.AdmissionStatus)
	}
}

func TestRecomputeDecisionKeepsInProgressWhileProvisional(t *testing.T) {
	fx := newFixture(t)
	fx.attempts.attempts[0].TestAttemptStatus = attemptmodel.AttemptInProgress

	out, err := fx.engine.RecomputeFinalScoreAndDecision(context.Background(), fx.candidateID)
	if err != nil {
		t.Fatalf("RecomputeFinalScoreAndDecision: %v", err)
	}
	if out.AdmissionStatus != candidatemodel.AdmissionInProgress {
		t.Errorf("status = %s, want IN_PROGRESS while the test is unfinished", out.AdmissionStatus)
	}
}

func TestRecomputeDecisionNeverOverwritesTerminalStatus(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	fx.candidates.cands[fx.candidateID].CandidateAdmissionStatus = candidatemodel.AdmissionAdmitted
	// Inputs that would reject a live candidate.
	fx.candidates.cands[fx.candidateID].CandidateUtmeScore = 0

	out, err := fx.engine.RecomputeFinalScoreAndDecision(ctx, fx.candidateID)
	if err != nil {
		t.Fatalf("RecomputeFinalScoreAndDecision: %v", err)
	}
	if out.AdmissionStatus != candidatemodel.AdmissionAdmitted {
		t.Errorf("status = %s, terminal ADMITTED must stand", out.AdmissionStatus)
	}

	fx.candidates.cands[fx.candidateID].CandidateAdmissionStatus = candidatemodel.AdmissionRejected
	out, err = fx.engine.RecomputeFinalScoreAndDecision(ctx, fx.candidateID)
	if err != nil {
		t.Fatalf("RecomputeFinalScoreAndDecision: %v", err)
	}
	if out.AdmissionStatus != candidatemodel.AdmissionRejected {
		t.Errorf("status = %s, terminal REJECTED must stand", out.AdmissionStatus)
	}
}

func TestRecomputeDecisionIsIdempotent(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	first, err := fx.engine.RecomputeFinalScoreAndDecision(ctx, fx.candidateID)
	if err != nil {
		t.Fatalf("first recompute: %v", err)
	}
	second, err := fx.engine.RecomputeFinalScoreAndDecision(ctx, fx.candidateID)
	if err != nil {
		t.Fatalf("second recompute: %v", err)
	}
	if first.FinalScore != second.FinalScore || first.AdmissionStatus != second.AdmissionStatus {
		t.Errorf("recompute not idempotent: %+v vs %+v", first, second)
	}

	cand := fx.candidates.cands[fx.candidateID]
	if cand.CandidateFinalScore != first.FinalScore ||
		cand.CandidateOlevelAggregate != first.Breakdown.OlevelAggregate ||
		cand.CandidateAdmissionStatus != first.AdmissionStatus {
		t.Errorf("cached triple diverged from computed outcome: %+v", cand)
	}
}

func TestRecomputeDecisionUnknownCandidate(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.engine.RecomputeFinalScoreAndDecision(context.Background(), uuid.New())
	if !errors.Is(err, ErrCandidateNotFound) {
		t.Errorf("err = %v, want ErrCandidateNotFound", err)
	}
}
