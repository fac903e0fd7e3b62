package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/markshop/markshop/internal/domain"
	"github.com/markshop/markshop/pkg/common"
)

// CredentialVerifier checks operator credentials against a credential
// store. Implementations must not leak whether the username or the
// password was wrong.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}

// OperatorStore verifies operators against the sys_opr table and writes
// console audit entries.
type OperatorStore struct {
	db *gorm.DB
}

var _ CredentialVerifier = (*OperatorStore)(nil)

func NewOperatorStore(db *gorm.DB) *OperatorStore {
	return &OperatorStore{db: db}
}

// Verify compares the salted hash of the attempt with the stored digest
// and bumps last_login on success.
func (s *OperatorStore) Verify(ctx context.Context, username, password string) (bool, error) {
	var opr domain.SysOpr
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&opr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "query operator")
	}
	if opr.Status != common.ENABLED {
		return false, nil
	}
	if opr.Password != common.Sha256HashWithSalt(password, common.GetSecretSalt()) {
		return false, nil
	}
	if err := s.db.WithContext(ctx).Model(&domain.SysOpr{}).
		Where("id = ?", opr.ID).
		Update("last_login", time.Now()).Error; err != nil {
		zap.L().Warn("failed to update operator last login",
			zap.String("username", username), zap.Error(err))
	}
	return true, nil
}

// WriteLog records an operator action. Audit failures are logged and
// swallowed, they never fail the calling request.
func (s *OperatorStore) WriteLog(ctx context.Context, username, action, remark string) {
	log := domain.SysOprLog{
		ID:        common.UUIDint64(),
		Username:  username,
		Action:    action,
		Remark:    remark,
		CreatedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&log).Error; err != nil {
		zap.L().Warn("failed to write operator log",
			zap.String("username", username),
			zap.String("action", action),
			zap.Error(err))
	}
}
