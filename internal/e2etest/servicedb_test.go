package service_test

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/platemate/deliverycore/internal/adapter/config"
	"github.com/platemate/deliverycore/internal/adapter/storage"
	"github.com/platemate/deliverycore/internal/adapter/storage/repository"
	"github.com/platemate/deliverycore/internal/core/domain"
	"github.com/platemate/deliverycore/internal/core/port"
	"github.com/platemate/deliverycore/internal/core/port/mock"
	"github.com/platemate/deliverycore/internal/core/service"
	"github.com/platemate/deliverycore/internal/e2etest/testdb"
)

var dbtest *testdb.TestDBInstance

func setup() {
	var err error
	dbtest, err = testdb.NewTestDBInstance()
	if err != nil {
		if errors.Is(err, testdb.ErrNoDatabase) {
			return
		}
		log.Fatal(err)
	}
}
func shutdown() {
	if dbtest != nil {
		dbtest.Down()
	}
}

func TestMain(m *testing.M) {
	setup()
	code := m.Run()
	shutdown()
	os.Exit(code)
}

func getDeps(t *testing.T, ctrl *gomock.Controller) (*service.Service, port.Repository) {
	t.Helper()
	if dbtest == nil {
		t.Skip("TEST_DATABASE_URI is not set")
	}

	db, err := storage.NewDBStorage(context.Background(), &config.Database{DSN: dbtest.DSN})
	assert.NoError(t, err)
	err = db.RunMigrations()
	assert.NoError(t, err)

	repo, err := repository.NewRepository(db)
	assert.NoError(t, err)

	notifier := mock.NewMockNotifier(ctrl)
	notifier.EXPECT().Schedule(gomock.Any()).AnyTimes()
	audit := mock.NewMockAuditTrail(ctrl)
	audit.EXPECT().Record(gomock.Any()).AnyTimes()

	logger, _ := zap.NewProduction()
	s, err := service.NewService(repo, notifier, audit, logger)
	assert.NoError(t, err)

	return s, repo
}

func TestServiceDB_AssignReassign(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, repo := getDeps(t, mockCtrl)
	ctx := context.Background()

	_, err := s.RegisterPartner(ctx, &domain.DeliveryPartner{ID: "courier-1", IsActive: true})
	assert.NoError(t, err)
	_, err = s.RegisterPartner(ctx, &domain.DeliveryPartner{ID: "courier-2", IsActive: true})
	assert.NoError(t, err)

	order, err := s.CreateOrder(ctx, &domain.Order{
		Source:      domain.GeoPoint{Lat: 12.97, Lng: 77.59},
		Destination: domain.GeoPoint{Lat: 12.93, Lng: 77.62},
	})
	assert.NoError(t, err)

	// first assignment binds both sides
	assigned, err := s.AssignPartner(ctx, order.ID, "courier-1")
	assert.NoError(t, err)
	assert.Equal(t, "courier-1", *assigned.AssignedPartnerID)
	assert.False(t, assigned.AssigningPartner)

	p1, err := repo.ReadPartner(ctx, "courier-1")
	assert.NoError(t, err)
	assert.Equal(t, []string{order.ID}, p1.Orders)

	// re-assigning the same partner leaves the set duplicate free
	_, err = s.AssignPartner(ctx, order.ID, "courier-1")
	assert.NoError(t, err)

	p1, err = repo.ReadPartner(ctx, "courier-1")
	assert.NoError(t, err)
	assert.Equal(t, []string{order.ID}, p1.Orders)

	// reassignment rebinds the order and cleans up the old partner's set
	reassigned, err := s.AssignPartner(ctx, order.ID, "courier-2")
	assert.NoError(t, err)
	assert.Equal(t, "courier-2", *reassigned.AssignedPartnerID)

	p1, err = repo.ReadPartner(ctx, "courier-1")
	assert.NoError(t, err)
	assert.Empty(t, p1.Orders)

	p2, err := repo.ReadPartner(ctx, "courier-2")
	assert.NoError(t, err)
	assert.Equal(t, []string{order.ID}, p2.Orders)
}

func TestServiceDB_AssignOrderInactivePartner(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, repo := getDeps(t, mockCtrl)
	ctx := context.Background()

	_, err := s.RegisterPartner(ctx, &domain.DeliveryPartner{ID: "courier-off", IsActive: false})
	assert.NoError(t, err)

	order, err := s.CreateOrder(ctx, &domain.Order{
		Source:      domain.GeoPoint{Lat: 12.97, Lng: 77.59},
		Destination: domain.GeoPoint{Lat: 12.93, Lng: 77.62},
	})
	assert.NoError(t, err)

	// rejected inside the transaction too, not only by the service check
	_, err = repo.AssignOrder(ctx, order.ID, "courier-off")
	assert.Equal(t, domain.ErrPartnerInactive, err)

	got, err := repo.ReadOrder(ctx, order.ID)
	assert.NoError(t, err)
	assert.Nil(t, got.AssignedPartnerID)
}

func TestServiceDB_WalletLedger(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, repo := getDeps(t, mockCtrl)
	ctx := context.Background()

	_, err := s.RegisterPartner(ctx, &domain.DeliveryPartner{ID: "courier-w", IsActive: true})
	assert.NoError(t, err)

	// order refs are opaque strings, not uuids
	orderRef := "ORD-20260829-AB12CD"
	entry, err := s.CreateEarningsTransaction(ctx, "courier-w", orderRef, 3000)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), entry.BalanceBefore)
	assert.Equal(t, int64(3000), entry.BalanceAfter)

	p, err := repo.ReadPartner(ctx, "courier-w")
	assert.NoError(t, err)
	assert.Equal(t, int64(3000), p.WalletBalance)

	list, err := s.ListTransactions(ctx, "courier-w", port.WalletFilter{})
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, orderRef, *list[0].OrderID)
}
