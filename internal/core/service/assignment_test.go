package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/platemate/deliverycore/internal/core/domain"
	"github.com/platemate/deliverycore/internal/core/port/mock"
	"github.com/platemate/deliverycore/internal/metrics"
)

func TestService_AssignPartner(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := "o-1"
	partnerID := "p-1"

	order := &domain.Order{ID: orderID, Status: domain.OrderStatusPrepared}
	activePartner := &domain.DeliveryPartner{ID: partnerID, IsActive: true}

	assigned := &domain.Order{
		ID: orderID, Status: domain.OrderStatusPrepared,
		AssignedPartnerID: &partnerID,
	}

	type assignTest struct {
		name     string
		mock     func(repo *mock.MockRepository)
		expError error
	}

	tests := []assignTest{
		{
			name: "assign good",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(order, nil)
				repo.EXPECT().ReadPartner(gomock.Any(), partnerID).Return(activePartner, nil)
				gomock.InOrder(
					repo.EXPECT().SetAssigningFlag(gomock.Any(), orderID, true).Return(nil),
					repo.EXPECT().AssignOrder(gomock.Any(), orderID, partnerID).Return(assigned, nil),
				)
			},
		},
		{
			name: "order not found",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDataNotFound,
		},
		{
			name: "partner not found",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(order, nil)
				repo.EXPECT().ReadPartner(gomock.Any(), partnerID).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDataNotFound,
		},
		{
			name: "partner inactive",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(order, nil)
				repo.EXPECT().ReadPartner(gomock.Any(), partnerID).
					Return(&domain.DeliveryPartner{ID: partnerID, IsActive: false}, nil)
			},
			expError: domain.ErrPartnerInactive,
		},
		{
			name: "failed assignment resets the in-flight flag",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(order, nil)
				repo.EXPECT().ReadPartner(gomock.Any(), partnerID).Return(activePartner, nil)
				gomock.InOrder(
					repo.EXPECT().SetAssigningFlag(gomock.Any(), orderID, true).Return(nil),
					repo.EXPECT().AssignOrder(gomock.Any(), orderID, partnerID).Return(nil, domain.ErrInternal),
					repo.EXPECT().SetAssigningFlag(gomock.Any(), orderID, false).Return(nil),
				)
			},
			expError: domain.ErrInternal,
		},
		{
			name: "flag reset failure still returns the original error",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(order, nil)
				repo.EXPECT().ReadPartner(gomock.Any(), partnerID).Return(activePartner, nil)
				gomock.InOrder(
					repo.EXPECT().SetAssigningFlag(gomock.Any(), orderID, true).Return(nil),
					repo.EXPECT().AssignOrder(gomock.Any(), orderID, partnerID).Return(nil, domain.ErrInternal),
					repo.EXPECT().SetAssigningFlag(gomock.Any(), orderID, false).Return(domain.ErrInternal),
				)
			},
			expError: domain.ErrInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			notifier := mock.NewMockNotifier(mockCtrl)
			test.mock(repo)

			s := newTestService(t, mockCtrl, repo, notifier)

			result, err := s.AssignPartner(context.Background(), orderID, partnerID)

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Equal(t, &partnerID, result.AssignedPartnerID)
				assert.False(t, result.AssigningPartner)
			}
		})
	}
}

func TestService_AssignPartner_InactiveCountedAsRejected(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)

	repo.EXPECT().ReadOrder(gomock.Any(), "o-1").
		Return(&domain.Order{ID: "o-1", Status: domain.OrderStatusPrepared}, nil)
	repo.EXPECT().ReadPartner(gomock.Any(), "p-1").
		Return(&domain.DeliveryPartner{ID: "p-1", IsActive: false}, nil)

	s := newTestService(t, mockCtrl, repo, notifier)

	rejections := testutil.ToFloat64(metrics.Assignments.WithLabelValues("rejected"))

	_, err := s.AssignPartner(context.Background(), "o-1", "p-1")

	assert.Equal(t, domain.ErrPartnerInactive, err)
	assert.Equal(t, rejections+1,
		testutil.ToFloat64(metrics.Assignments.WithLabelValues("rejected")))
}
