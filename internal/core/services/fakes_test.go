package services

import (
	"context"
	"sort"
	"sync"

	"scholarchain/internal/adapters/ledger"
	"scholarchain/internal/adapters/persistence/models"
	"scholarchain/internal/core/domain"

	"gorm.io/gorm"
)

// In-memory repository fakes used across the service tests.

func ledgerForTest() *ledger.MockLedger {
	return ledger.NewMockLedger()
}

type fakeScholarshipRepo struct {
	mu     sync.Mutex
	items  map[uint]*models.Scholarship
	nextID uint
}

func newFakeScholarshipRepo() *fakeScholarshipRepo {
	return &fakeScholarshipRepo{items: make(map[uint]*models.Scholarship)}
}

func (r *fakeScholarshipRepo) Create(_ context.Context, scholarship *models.Scholarship) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	scholarship.ID = r.nextID
	stored := *scholarship
	r.items[stored.ID] = &stored
	return nil
}

func (r *fakeScholarshipRepo) GetByID(_ context.Context, id uint) (*models.Scholarship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	scholarship, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *scholarship
	return &copied, nil
}

func (r *fakeScholarshipRepo) List(_ context.Context) ([]*models.Scholarship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(*models.Scholarship) bool { return true }), nil
}

func (r *fakeScholarshipRepo) ListActive(_ context.Context) ([]*models.Scholarship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(s *models.Scholarship) bool { return s.IsActive }), nil
}

func (r *fakeScholarshipRepo) SetActive(_ context.Context, id uint, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	scholarship, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	scholarship.IsActive = active
	return nil
}

func (r *fakeScholarshipRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *fakeScholarshipRepo) sorted(keep func(*models.Scholarship) bool) []*models.Scholarship {
	var out []*models.Scholarship
	for _, s := range r.items {
		if keep(s) {
			copied := *s
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeApplicationRepo struct {
	mu        sync.Mutex
	items     []*models.Application
	nextID    uint
	createErr error
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{}
}

func (r *fakeApplicationRepo) Create(_ context.Context, application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	application.ID = r.nextID
	stored := *application
	r.items = append(r.items, &stored)
	return nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id uint) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		if a.ID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeApplicationRepo) ListByApplicant(_ context.Context, applicantAddress string) ([]*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Application
	for _, a := range r.items {
		if a.ApplicantAddress == applicantAddress {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByScholarship(_ context.Context, scholarshipID uint, offset, limit int) ([]*models.Application, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*models.Application
	for _, a := range r.items {
		if a.ScholarshipID == scholarshipID {
			copied := *a
			matched = append(matched, &copied)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakeApplicationRepo) List(_ context.Context) ([]*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Application, 0, len(r.items))
	for _, a := range r.items {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeApplicationRepo) ExistsApproved(_ context.Context, applicantAddress string, scholarshipID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		if a.ApplicantAddress == applicantAddress &&
			a.ScholarshipID == scholarshipID &&
			a.Status == domain.StatusApproved {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
