package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/model"
	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	seq   int
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	user.CreatedAt = time.Now().Add(time.Duration(m.seq) * time.Second)
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// ── Mock ProfileRepository ──

type mockProfileRepo struct {
	seq      int
	profiles map[string]*model.Profile // key: user_id
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[string]*model.Profile)}
}

func (m *mockProfileRepo) Create(_ context.Context, profile *model.Profile) error {
	if profile.ProfileID == "" {
		m.seq++
		profile.ProfileID = fmt.Sprintf("profile-%d", m.seq)
	}
	m.profiles[profile.UserID] = profile
	return nil
}

func (m *mockProfileRepo) GetByUserID(_ context.Context, userID string) (*model.Profile, error) {
	if p, ok := m.profiles[userID]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockProfileRepo) List(_ context.Context) ([]model.Profile, error) {
	var result []model.Profile
	for _, p := range m.profiles {
		result = append(result, *p)
	}
	return result, nil
}

// ── Mock UserRoleRepository ──

type mockUserRoleRepo struct {
	seq   int
	roles map[string]*model.UserRole // key: user_id
}

func newMockUserRoleRepo() *mockUserRoleRepo {
	return &mockUserRoleRepo{roles: make(map[string]*model.UserRole)}
}

func (m *mockUserRoleRepo) GetByUserID(_ context.Context, userID string) (*model.UserRole, error) {
	if r, ok := m.roles[userID]; ok {
		return r, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRoleRepo) List(_ context.Context) ([]model.UserRole, error) {
	var result []model.UserRole
	for _, r := range m.roles {
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockUserRoleRepo) Create(_ context.Context, role *model.UserRole) error {
	if role.UserRoleID == "" {
		m.seq++
		role.UserRoleID = fmt.Sprintf("role-%d", m.seq)
	}
	m.roles[role.UserID] = role
	return nil
}

func (m *mockUserRoleRepo) UpdateRoleByUserID(_ context.Context, userID, role string) error {
	if r, ok := m.roles[userID]; ok {
		r.Role = role
	}
	return nil
}

func (m *mockUserRoleRepo) IsAdmin(_ context.Context, userID string) (bool, error) {
	r, ok := m.roles[userID]
	return ok && r.Role == model.RoleAdmin, nil
}

// ── Mock BranchRepository ──

type mockBranchRepo struct {
	seq      int
	branches map[string]*model.Branch
}

func newMockBranchRepo() *mockBranchRepo {
	return &mockBranchRepo{branches: make(map[string]*model.Branch)}
}

func (m *mockBranchRepo) Create(_ context.Context, branch *model.Branch) error {
	if branch.BranchID == "" {
		m.seq++
		branch.BranchID = fmt.Sprintf("branch-%d", m.seq)
	}
	m.branches[branch.BranchID] = branch
	return nil
}

func (m *mockBranchRepo) GetByID(_ context.Context, id string) (*model.Branch, error) {
	if b, ok := m.branches[id]; ok {
		return b, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockBranchRepo) List(_ context.Context) ([]model.Branch, error) {
	var result []model.Branch
	for _, b := range m.branches {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockBranchRepo) Update(_ context.Context, branch *model.Branch) error {
	m.branches[branch.BranchID] = branch
	return nil
}

func (m *mockBranchRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.branches[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.branches, id)
	return nil
}

// ── Mock InspectionTypeRepository ──

type mockInspectionTypeRepo struct {
	seq   int
	types map[string]*model.InspectionType
}

func newMockInspectionTypeRepo() *mockInspectionTypeRepo {
	return &mockInspectionTypeRepo{types: make(map[string]*model.InspectionType)}
}

func (m *mockInspectionTypeRepo) Create(_ context.Context, it *model.InspectionType) error {
	if it.InspectionTypeID == "" {
		m.seq++
		it.InspectionTypeID = fmt.Sprintf("type-%d", m.seq)
	}
	m.types[it.InspectionTypeID] = it
	return nil
}

func (m *mockInspectionTypeRepo) GetByID(_ context.Context, id string) (*model.InspectionType, error) {
	if it, ok := m.types[id]; ok {
		return it, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockInspectionTypeRepo) ListActive(_ context.Context) ([]model.InspectionType, error) {
	var result []model.InspectionType
	for _, it := range m.types {
		if it.Active {
			result = append(result, *it)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Number < result[j].Number })
	return result, nil
}

func (m *mockInspectionTypeRepo) ListAll(_ context.Context) ([]model.InspectionType, error) {
	var result []model.InspectionType
	for _, it := range m.types {
		result = append(result, *it)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Number < result[j].Number })
	return result, nil
}

func (m *mockInspectionTypeRepo) MaxNumber(_ context.Context) (int, error) {
	max := 0
	for _, it := range m.types {
		if it.Number > max {
			max = it.Number
		}
	}
	return max, nil
}

func (m *mockInspectionTypeRepo) Update(_ context.Context, it *model.InspectionType) error {
	m.types[it.InspectionTypeID] = it
	return nil
}

func (m *mockInspectionTypeRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.types[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.types, id)
	return nil
}

// ── Mock VisitRepository ──

type mockVisitRepo struct {
	seq    int
	visits map[string]*model.Visit
}

func newMockVisitRepo() *mockVisitRepo {
	return &mockVisitRepo{visits: make(map[string]*model.Visit)}
}

func (m *mockVisitRepo) Create(_ context.Context, visit *model.Visit) error {
	if visit.VisitID == "" {
		m.seq++
		visit.VisitID = fmt.Sprintf("visit-%d", m.seq)
	}
	visit.CreatedAt = time.Now().Add(time.Duration(m.seq) * time.Second)
	m.visits[visit.VisitID] = visit
	return nil
}

func (m *mockVisitRepo) GetByID(_ context.Context, id string) (*model.Visit, error) {
	if v, ok := m.visits[id]; ok {
		return v, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockVisitRepo) sorted(branchID string) []model.Visit {
	var result []model.Visit
	for _, v := range m.visits {
		if branchID == "" || v.BranchID == branchID {
			result = append(result, *v)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].VisitDate.Equal(result[j].VisitDate) {
			return result[i].VisitDate.After(result[j].VisitDate)
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func (m *mockVisitRepo) List(_ context.Context, branchID string) ([]model.Visit, error) {
	return m.sorted(branchID), nil
}

func (m *mockVisitRepo) GetLatestByBranch(_ context.Context, branchID string) (*model.Visit, error) {
	visits := m.sorted(branchID)
	if len(visits) == 0 {
		return nil, repository.ErrNotFound
	}
	return &visits[0], nil
}

func (m *mockVisitRepo) UpdateScore(_ context.Context, id string, totalScore, maxScore, percentage int, evaluation string) error {
	v, ok := m.visits[id]
	if !ok {
		return repository.ErrNotFound
	}
	v.TotalScore = totalScore
	v.MaxScore = maxScore
	v.Percentage = percentage
	v.Evaluation = evaluation
	return nil
}

func (m *mockVisitRepo) ListByYear(_ context.Context, year int, branchID string) ([]model.Visit, error) {
	var result []model.Visit
	for _, v := range m.visits {
		if v.VisitDate.Year() != year {
			continue
		}
		if branchID != "" && v.BranchID != branchID {
			continue
		}
		result = append(result, *v)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].VisitDate.Before(result[j].VisitDate)
	})
	return result, nil
}

// ── Mock InspectionResultRepository ──

type mockInspectionResultRepo struct {
	seq     int
	results map[string]*model.InspectionResult
}

func newMockInspectionResultRepo() *mockInspectionResultRepo {
	return &mockInspectionResultRepo{results: make(map[string]*model.InspectionResult)}
}

func (m *mockInspectionResultRepo) ListByVisit(_ context.Context, visitID string) ([]model.InspectionResult, error) {
	var result []model.InspectionResult
	for _, r := range m.results {
		if r.VisitID == visitID {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockInspectionResultRepo) GetByVisitAndType(_ context.Context, visitID, inspectionTypeID string) (*model.InspectionResult, error) {
	for _, r := range m.results {
		if r.VisitID == visitID && r.InspectionTypeID == inspectionTypeID {
			return r, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockInspectionResultRepo) Create(_ context.Context, result *model.InspectionResult) error {
	if result.InspectionResultID == "" {
		m.seq++
		result.InspectionResultID = fmt.Sprintf("result-%d", m.seq)
	}
	result.CreatedAt = time.Now().Add(time.Duration(m.seq) * time.Second)
	m.results[result.InspectionResultID] = result
	return nil
}

func (m *mockInspectionResultRepo) Update(_ context.Context, result *model.InspectionResult) error {
	m.results[result.InspectionResultID] = result
	return nil
}

// ── 测试用仓储聚合 ──

type testRepos struct {
	users    *mockUserRepo
	profiles *mockProfileRepo
	roles    *mockUserRoleRepo
	branches *mockBranchRepo
	types    *mockInspectionTypeRepo
	visits   *mockVisitRepo
	results  *mockInspectionResultRepo
}

// newTestRepository 拼装 mock 仓储聚合
// db 为空，Tx 退化为直接执行闭包
func newTestRepository() (*repository.Repository, *testRepos) {
	tr := &testRepos{
		users:    newMockUserRepo(),
		profiles: newMockProfileRepo(),
		roles:    newMockUserRoleRepo(),
		branches: newMockBranchRepo(),
		types:    newMockInspectionTypeRepo(),
		visits:   newMockVisitRepo(),
		results:  newMockInspectionResultRepo(),
	}
	repo := &repository.Repository{
		User:             tr.users,
		Profile:          tr.profiles,
		UserRole:         tr.roles,
		Branch:           tr.branches,
		InspectionType:   tr.types,
		Visit:            tr.visits,
		InspectionResult: tr.results,
	}
	return repo, tr
}
