package services

import (
	"context"
	"errors"
	"testing"

	"scholarchain/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateInput() *CreateScholarshipInput {
	return &CreateScholarshipInput{
		ProviderAddress:    testProviderAddress,
		Amount:             5.0,
		EligibleLevels:     []domain.EducationLevel{domain.LevelUndergraduation},
		EligibleCategories: []domain.Category{domain.CategoryOC, domain.CategoryBC},
		MaxAnnualIncome:    500000,
		MinCgpa:            7.5,
		MaxSscScore:        500,
	}
}

func TestCreateScholarship(t *testing.T) {
	scholarships := newFakeScholarshipRepo()
	svc := NewScholarshipService(scholarships, ledgerForTest())

	created, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.True(t, created.IsActive)
	assert.NotEmpty(t, created.TxHash)

	stored, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ProviderAddress, stored.ProviderAddress)
	assert.Equal(t, created.Amount, stored.Amount)
	assert.Equal(t, created.EligibleLevels, stored.EligibleLevels)
}

func TestCreateScholarship_InvalidCriteria(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CreateScholarshipInput)
		wantField string
	}{
		{
			name:      "empty provider address",
			mutate:    func(in *CreateScholarshipInput) { in.ProviderAddress = "" },
			wantField: "providerAddress",
		},
		{
			name:      "zero amount",
			mutate:    func(in *CreateScholarshipInput) { in.Amount = 0 },
			wantField: "amount",
		},
		{
			name:      "no eligible levels",
			mutate:    func(in *CreateScholarshipInput) { in.EligibleLevels = nil },
			wantField: "eligibleLevels",
		},
		{
			name:      "unknown category",
			mutate:    func(in *CreateScholarshipInput) { in.EligibleCategories = []domain.Category{"ews"} },
			wantField: "eligibleCategories",
		},
		{
			name:      "min cgpa above scale",
			mutate:    func(in *CreateScholarshipInput) { in.MinCgpa = 11 },
			wantField: "minCgpa",
		},
		{
			name:      "max ssc above scale",
			mutate:    func(in *CreateScholarshipInput) { in.MaxSscScore = 700 },
			wantField: "maxSscScore",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scholarships := newFakeScholarshipRepo()
			svc := NewScholarshipService(scholarships, ledgerForTest())

			input := validCreateInput()
			tt.mutate(input)

			_, err := svc.Create(context.Background(), input)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)

			count, err := scholarships.Count(context.Background())
			require.NoError(t, err)
			assert.Zero(t, count, "invalid offers are never persisted")
		})
	}
}

func TestCreateScholarship_LedgerFailure(t *testing.T) {
	scholarships := newFakeScholarshipRepo()
	mock := ledgerForTest()
	mock.FailWith(errors.New("ledger unreachable"))
	svc := NewScholarshipService(scholarships, mock)

	_, err := svc.Create(context.Background(), validCreateInput())

	var txErr *domain.TransactionError
	require.ErrorAs(t, err, &txErr)
	assert.Equal(t, "submitScholarshipFunding", txErr.Op)

	count, err := scholarships.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetScholarshipByID_NotFound(t *testing.T) {
	svc := NewScholarshipService(newFakeScholarshipRepo(), ledgerForTest())

	_, err := svc.GetByID(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrScholarshipNotFound)
}

func TestListActiveScholarships(t *testing.T) {
	scholarships := newFakeScholarshipRepo()
	svc := NewScholarshipService(scholarships, ledgerForTest())

	first, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	require.NoError(t, svc.SetActive(context.Background(), first.ID, false))

	active, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID, "listing preserves insertion order")
}

func TestSetActive_NotFound(t *testing.T) {
	svc := NewScholarshipService(newFakeScholarshipRepo(), ledgerForTest())

	err := svc.SetActive(context.Background(), 404, false)
	require.ErrorIs(t, err, domain.ErrScholarshipNotFound)
}
