package processor

import (
	"context"
	"errors"
	"testing"
	"time"

	"renewal-server/internal/bucketing"
	"renewal-server/internal/observability"
	"renewal-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newTestProcessor(mockStore *MockPolicyStore) PolicyProcessor {
	return New(mockStore, observability.NewLogger(), 20, 100)
}

func TestList_BucketFilterDerivesWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockPolicyStore(ctrl)
	processor := newTestProcessor(mockStore)

	end := time.Now().AddDate(0, 0, 3)
	mockStore.EXPECT().ListPolicies(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params store.ListPoliciesParams) ([]store.Policy, int, error) {
			if params.EndFrom == nil || params.EndTo == nil {
				t.Error("expected Critical to set both window bounds")
			}
			if !params.OnlyOpen {
				t.Error("expected a bucket filter to exclude closed policies")
			}
			if params.Limit != 20 || params.Offset != 0 {
				t.Errorf("expected default page of 20 at offset 0, got %d/%d", params.Limit, params.Offset)
			}
			return []store.Policy{
				{ID: uuid.New(), EndDate: &end, RenewalStatus: store.RenewalStatusPending},
			}, 1, nil
		})

	result, err := processor.List(context.Background(), ListRequest{Bucket: "Critical"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result.Policies) != 1 {
		t.Fatalf("expected 1 policy, got %d", len(result.Policies))
	}
	if result.Policies[0].Bucket != bucketing.BucketCritical {
		t.Errorf("expected bucket Critical, got %s", result.Policies[0].Bucket)
	}
	if result.TotalPolicies != 1 || result.TotalPages != 1 {
		t.Errorf("expected 1 policy over 1 page, got %+v", result)
	}
}

func TestList_InvalidBucketRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor := newTestProcessor(NewMockPolicyStore(ctrl))
	_, err := processor.List(context.Background(), ListRequest{Bucket: "Soon"})
	if !errors.Is(err, ErrInvalidBucket) {
		t.Errorf("expected ErrInvalidBucket, got %v", err)
	}
}

func TestList_PaginationClampedAndCounted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockPolicyStore(ctrl)
	processor := newTestProcessor(mockStore)

	mockStore.EXPECT().ListPolicies(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params store.ListPoliciesParams) ([]store.Policy, int, error) {
			if params.Limit != 100 {
				t.Errorf("expected limit clamped to 100, got %d", params.Limit)
			}
			if params.Offset != 200 {
				t.Errorf("expected offset 200 for page 3, got %d", params.Offset)
			}
			return []store.Policy{}, 250, nil
		})

	result, err := processor.List(context.Background(), ListRequest{Page: 3, Limit: 500})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.TotalPages != 3 {
		t.Errorf("expected 3 pages for 250 rows at 100 per page, got %d", result.TotalPages)
	}
}

func TestList_StatusFilterValidated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor := newTestProcessor(NewMockPolicyStore(ctrl))
	_, err := processor.List(context.Background(), ListRequest{Status: "Expired"})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockPolicyStore(ctrl)
	processor := newTestProcessor(mockStore)

	policyID := uuid.New()
	mockStore.EXPECT().GetPolicyByID(gomock.Any(), policyID).Return(store.Policy{}, store.ErrNotFound)

	_, err := processor.Get(context.Background(), policyID)
	if !errors.Is(err, ErrPolicyNotFound) {
		t.Errorf("expected ErrPolicyNotFound, got %v", err)
	}
}

func TestCreate_NewCustomerAndVehicle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockPolicyStore(ctrl)
	processor := newTestProcessor(mockStore)

	customerID := uuid.New()
	vehicleID := uuid.New()
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)

	mockStore.EXPECT().GetCustomerByMobile(gomock.Any(), "9876543210").Return(store.Customer{}, store.ErrNotFound)
	mockStore.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(store.Customer{
		ID: customerID, Name: "Ramesh Kumar", Mobile: "9876543210",
	}, nil)
	mockStore.EXPECT().GetPolicyByNumber(gomock.Any(), "PM-2025-001").Return(store.Policy{}, store.ErrNotFound)
	mockStore.EXPECT().GetActivePolicyForVehicle(gomock.Any(), "JH01AB1234", "9876543210").Return(store.Policy{}, store.ErrNotFound)
	mockStore.EXPECT().GetVehicleByRegistration(gomock.Any(), customerID, "JH01AB1234").Return(store.Vehicle{}, store.ErrNotFound)
	mockStore.EXPECT().CreateVehicle(gomock.Any(), gomock.Any()).Return(store.Vehicle{
		ID: vehicleID, CustomerID: customerID, Registration: "JH01AB1234", Make: "Maruti", Model: "Swift",
	}, nil)
	mockStore.EXPECT().CreatePolicy(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params store.CreatePolicyParams) (store.Policy, error) {
			if params.RenewalStatus != store.RenewalStatusPending || params.RenewalStage != store.RenewalStageNew {
				t.Errorf("expected a fresh policy to start Pending/New, got %s/%s", params.RenewalStatus, params.RenewalStage)
			}
			if params.CustomerID != customerID || params.VehicleID != vehicleID {
				t.Error("expected the resolved customer and vehicle on the policy")
			}
			return store.Policy{ID: uuid.New(), PolicyNumber: params.PolicyNumber}, nil
		})

	_, err := processor.Create(context.Background(), CreateRequest{
		NewCustomer: &NewCustomer{Name: "Ramesh Kumar", Mobile: "9876543210"},
		Vehicle:     NewVehicle{Registration: "JH01AB1234", Make: "Maruti", Model: "Swift"},

		PolicyNumber:  "PM-2025-001",
		Insurer:       "HDFC",
		StartDate:     &start,
		EndDate:       &end,
		PremiumAmount: decimal.NewFromInt(12500),
	})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestCreate_DuplicateNumberRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockPolicyStore(ctrl)
	processor := newTestProcessor(mockStore)

	customerID := uuid.New()
	mockStore.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(store.Customer{
		ID: customerID, Mobile: "9876543210",
	}, nil)
	mockStore.EXPECT().GetPolicyByNumber(gomock.Any(), "PM-2025-001").Return(store.Policy{ID: uuid.New()}, nil)

	_, err := processor.Create(context.Background(), CreateRequest{
		CustomerID:   &customerID,
		Vehicle:      NewVehicle{Registration: "JH01AB1234"},
		PolicyNumber: "PM-2025-001",
	})
	if !errors.Is(err, ErrDuplicatePolicyNumber) {
		t.Errorf("expected ErrDuplicatePolicyNumber, got %v", err)
	}
}

func TestCreate_ActivePolicyConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockPolicyStore(ctrl)
	processor := newTestProcessor(mockStore)

	customerID := uuid.New()
	mockStore.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(store.Customer{
		ID: customerID, Mobile: "9876543210",
	}, nil)
	mockStore.EXPECT().GetPolicyByNumber(gomock.Any(), "PM-2025-002").Return(store.Policy{}, store.ErrNotFound)
	mockStore.EXPECT().GetActivePolicyForVehicle(gomock.Any(), "JH01AB1234", "9876543210").Return(store.Policy{ID: uuid.New()}, nil)

	_, err := processor.Create(context.Background(), CreateRequest{
		CustomerID:   &customerID,
		Vehicle:      NewVehicle{Registration: "JH01AB1234"},
		PolicyNumber: "PM-2025-002",
	})
	if !errors.Is(err, ErrActivePolicyExists) {
		t.Errorf("expected ErrActivePolicyExists, got %v", err)
	}
}

func TestCreate_RacedInsertStillConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockPolicyStore(ctrl)
	processor := newTestProcessor(mockStore)

	customerID := uuid.New()
	vehicleID := uuid.New()

	// Both pre-checks pass, but a concurrent writer lands an open policy
	// for the same vehicle first and the insert loses on the unique index.
	mockStore.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(store.Customer{
		ID: customerID, Mobile: "9876543210",
	}, nil)
	mockStore.EXPECT().GetPolicyByNumber(gomock.Any(), "PM-2025-002").Return(store.Policy{}, store.ErrNotFound)
	mockStore.EXPECT().GetActivePolicyForVehicle(gomock.Any(), "JH01AB1234", "9876543210").Return(store.Policy{}, store.ErrNotFound)
	mockStore.EXPECT().GetVehicleByRegistration(gomock.Any(), customerID, "JH01AB1234").Return(store.Vehicle{
		ID: vehicleID, CustomerID: customerID, Registration: "JH01AB1234",
	}, nil)
	mockStore.EXPECT().CreatePolicy(gomock.Any(), gomock.Any()).Return(store.Policy{}, store.ErrActivePolicyExists)

	_, err := processor.Create(context.Background(), CreateRequest{
		CustomerID:   &customerID,
		Vehicle:      NewVehicle{Registration: "JH01AB1234"},
		PolicyNumber: "PM-2025-002",
	})
	if !errors.Is(err, ErrActivePolicyExists) {
		t.Errorf("expected ErrActivePolicyExists, got %v", err)
	}
}

func TestCreate_CustomerRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor := newTestProcessor(NewMockPolicyStore(ctrl))
	_, err := processor.Create(context.Background(), CreateRequest{
		Vehicle:      NewVehicle{Registration: "JH01AB1234"},
		PolicyNumber: "PM-2025-001",
	})
	if !errors.Is(err, ErrCustomerRequired) {
		t.Errorf("expected ErrCustomerRequired, got %v", err)
	}
}

func TestUpdate_RenewedStatusRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The store must never be reached: only the renewal path closes a term.
	processor := newTestProcessor(NewMockPolicyStore(ctrl))

	renewed := string(store.RenewalStatusRenewed)
	_, err := processor.Update(context.Background(), uuid.New(), UpdateRequest{
		RenewalStatus: &renewed,
	})
	if !errors.Is(err, ErrRenewalViaUpdate) {
		t.Errorf("expected ErrRenewalViaUpdate, got %v", err)
	}
}

func TestUpdate_InvalidStageRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor := newTestProcessor(NewMockPolicyStore(ctrl))

	stage := "Haggling"
	_, err := processor.Update(context.Background(), uuid.New(), UpdateRequest{
		RenewalStage: &stage,
	})
	if !errors.Is(err, ErrInvalidStage) {
		t.Errorf("expected ErrInvalidStage, got %v", err)
	}
}

func TestUpdate_ExpiryFix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockPolicyStore(ctrl)
	processor := newTestProcessor(mockStore)

	policyID := uuid.New()
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	mockStore.EXPECT().UpdatePolicy(gomock.Any(), policyID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, params store.UpdatePolicyParams) (store.Policy, error) {
			if params.EndDate == nil || !params.EndDate.Equal(end) {
				t.Error("expected the corrected end date to reach the store")
			}
			return store.Policy{ID: policyID, EndDate: &end}, nil
		})

	policy, err := processor.Update(context.Background(), policyID, UpdateRequest{EndDate: &end})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if policy.EndDate == nil || !policy.EndDate.Equal(end) {
		t.Error("expected the updated policy back")
	}
}

func TestStats_Passthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockPolicyStore(ctrl)
	processor := newTestProcessor(mockStore)

	mockStore.EXPECT().GetPolicyStats(gomock.Any(), gomock.Any()).Return(store.PolicyStats{
		ExpiringToday: 2, ExpiringWeek: 9, ExpiringMonth: 30, Expired: 4, NeedsFix: 1,
	}, nil)

	stats, err := processor.Stats(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.ExpiringWeek != 9 {
		t.Errorf("expected 9 expiring this week, got %d", stats.ExpiringWeek)
	}
}
