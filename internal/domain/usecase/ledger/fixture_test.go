package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
	mockauth "github.com/amirhossein-jamali/invest-ledger-bot/mocks/port/auth"
	mockcore "github.com/amirhossein-jamali/invest-ledger-bot/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/invest-ledger-bot/mocks/port/persistence"
)

type txKey struct{}

var fixedNow = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

// fixture bundles the mocks every ledger test needs
type fixture struct {
	ctx          context.Context
	txCtx        context.Context
	uow          *mockpersistence.MockUnitOfWork
	users        *mockpersistence.MockUserRepository
	referrals    *mockpersistence.MockReferralRepository
	transactions *mockpersistence.MockTransactionRepository
	investments  *mockpersistence.MockInvestmentRepository
	runLock      *mockpersistence.MockRunLock
	gate         *mockauth.MockAdminGate
	clock        *mockcore.MockTimeProvider
	logger       *mockcore.MockLogger
	uc           *LedgerUseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		ctx:          context.Background(),
		txCtx:        context.WithValue(context.Background(), txKey{}, "tx"),
		uow:          mockpersistence.NewMockUnitOfWork(t),
		users:        mockpersistence.NewMockUserRepository(t),
		referrals:    mockpersistence.NewMockReferralRepository(t),
		transactions: mockpersistence.NewMockTransactionRepository(t),
		investments:  mockpersistence.NewMockInvestmentRepository(t),
		runLock:      mockpersistence.NewMockRunLock(t),
		gate:         mockauth.NewMockAdminGate(t),
		clock:        mockcore.NewMockTimeProvider(t),
		logger:       mockcore.NewMockLogger(t),
	}

	f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.users).Maybe()
	f.uow.EXPECT().GetReferralRepository(mock.Anything).Return(f.referrals).Maybe()
	f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.transactions).Maybe()
	f.uow.EXPECT().GetInvestmentRepository(mock.Anything).Return(f.investments).Maybe()

	f.clock.EXPECT().Now().Return(fixedNow).Maybe()

	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f.uc = NewLedgerUseCase(f.uow, f.gate, f.runLock, f.clock, f.logger, DefaultPolicy())
	return f
}

// expectCommit expects one transaction that commits
func (f *fixture) expectCommit() {
	f.uow.EXPECT().Begin(mock.Anything).Return(f.txCtx, nil).Once()
	f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()
}

// expectRollback expects one transaction that rolls back
func (f *fixture) expectRollback() {
	f.uow.EXPECT().Begin(mock.Anything).Return(f.txCtx, nil).Once()
	f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()
}

func newStoredUser(id int64, referrerID *int64, available, trading, earned string) *entity.User {
	return entity.RestoreUser(id, "", "User", referrerID, entity.Balances{
		Available:   decimal.RequireFromString(available),
		Trading:     decimal.RequireFromString(trading),
		TotalEarned: decimal.RequireFromString(earned),
	}, fixedNow.Add(-48*time.Hour), fixedNow.Add(-48*time.Hour))
}

func ptr(v int64) *int64 {
	return &v
}
