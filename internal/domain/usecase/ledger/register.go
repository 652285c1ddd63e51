package ledger

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/usecase"
)

// Register creates a user together with its referral edges
// Calling it again for a registered user returns the stored user unchanged
func (u *LedgerUseCase) Register(ctx context.Context, req usecase.RegisterRequest) (*entity.User, error) {
	if req.UserID <= 0 {
		return nil, errs.ErrInvalidUserID
	}

	userRepo := u.uow.GetUserRepository(ctx)

	existing, err := userRepo.GetByID(ctx, req.UserID)
	if err == nil {
		u.logger.Debug("User already registered", map[string]any{
			"userId": req.UserID,
		})
		return existing, nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		u.logger.Error("Failed to look up user", map[string]any{
			"userId": req.UserID,
			"error":  err.Error(),
		})
		return nil, err
	}

	referrer, err := u.resolveReferrer(ctx, req)
	if err != nil {
		return nil, err
	}

	var referrerID *int64
	if referrer != nil {
		id := referrer.ID
		referrerID = &id
	}

	user, err := entity.NewUser(req.UserID, req.Username, req.FirstName, referrerID, u.timeProvider)
	if err != nil {
		return nil, err
	}

	err = u.withinTx(ctx, func(txCtx context.Context) error {
		if err := u.uow.GetUserRepository(txCtx).Create(txCtx, user); err != nil {
			return err
		}
		if referrer == nil {
			return nil
		}

		referralRepo := u.uow.GetReferralRepository(txCtx)

		direct, err := entity.NewReferralEdge(referrer.ID, user.ID, entity.LevelDirect, u.timeProvider)
		if err != nil {
			return err
		}
		if err := referralRepo.Create(txCtx, direct); err != nil {
			return err
		}

		if referrer.ReferrerID == nil {
			return nil
		}

		indirect, err := entity.NewReferralEdge(*referrer.ReferrerID, user.ID, entity.LevelIndirect, u.timeProvider)
		if err != nil {
			return err
		}
		return referralRepo.Create(txCtx, indirect)
	})
	if err != nil {
		// Lost a race against a concurrent registration of the same user
		if errors.Is(err, errs.ErrDuplicateUser) {
			return userRepo.GetByID(ctx, req.UserID)
		}

		u.logger.Error("Failed to register user", map[string]any{
			"userId": req.UserID,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"userId":      user.ID,
		"hasReferrer": user.HasReferrer(),
	})

	return user, nil
}

// resolveReferrer turns the raw start parameter into an existing referrer
// Unusable tokens are dropped silently; only store failures are returned
func (u *LedgerUseCase) resolveReferrer(ctx context.Context, req usecase.RegisterRequest) (*entity.User, error) {
	token := strings.TrimSpace(req.ReferrerToken)
	if token == "" {
		return nil, nil
	}

	referrerID, err := strconv.ParseInt(token, 10, 64)
	if err != nil || referrerID <= 0 {
		u.discardReferrer(req.UserID, errs.NewUnknownReferrerError(token, "not a user id"))
		return nil, nil
	}

	if referrerID == req.UserID {
		u.discardReferrer(req.UserID, errs.NewUnknownReferrerError(token, "self referral"))
		return nil, nil
	}

	referrer, err := u.uow.GetUserRepository(ctx).GetByID(ctx, referrerID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			u.discardReferrer(req.UserID, errs.NewUnknownReferrerError(token, "no such user"))
			return nil, nil
		}
		return nil, err
	}

	return referrer, nil
}

func (u *LedgerUseCase) discardReferrer(userID int64, err error) {
	fields := map[string]any{
		"userId": userID,
		"error":  err.Error(),
	}
	var refErr *errs.UnknownReferrerError
	if errors.As(err, &refErr) {
		fields["reason"] = refErr.Reason
	}
	u.logger.Debug("Referrer discarded", fields)
}
