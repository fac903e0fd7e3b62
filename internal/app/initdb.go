package app

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/markshop/markshop/internal/domain"
	"github.com/markshop/markshop/pkg/common"
	"github.com/pkg/errors"
)

func (a *Application) checkSuper() {
	const superUsername = "admin"
	const defaultPassword = "1234"

	hashedPassword := common.Sha256HashWithSalt(defaultPassword, common.GetSecretSalt())

	var operator domain.SysOpr
	err := a.gormDB.Where("username = ?", superUsername).First(&operator).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := a.gormDB.Create(&domain.SysOpr{
			ID:        common.UUIDint64(),
			Realname:  "administrator",
			Username:  superUsername,
			Password:  hashedPassword,
			Level:     "super",
			Status:    common.ENABLED,
			Remark:    "super",
			LastLogin: time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to create default super admin", zap.Error(err))
		} else {
			zap.L().Info("initialized default super admin account", zap.String("username", superUsername))
		}
		return
	case err != nil:
		zap.L().Error("failed to query super admin", zap.Error(err))
		return
	}

	resetPassword := strings.TrimSpace(operator.Password) == ""
	resetStatus := !strings.EqualFold(operator.Status, common.ENABLED)

	if !resetPassword && !resetStatus {
		return
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if resetPassword {
		updates["password"] = hashedPassword
	}
	if resetStatus {
		updates["status"] = common.ENABLED
	}

	if err := a.gormDB.Model(&domain.SysOpr{}).Where("id = ?", operator.ID).Updates(updates).Error; err != nil {
		zap.L().Error("failed to repair super admin account", zap.Error(err))
		return
	}

	zap.L().Warn("repaired default super admin account",
		zap.String("username", superUsername),
		zap.Bool("passwordReset", resetPassword),
		zap.Bool("statusEnabled", resetStatus))
}

// seedProducts inserts the sample catalog on first boot. A non-empty
// product table skips seeding entirely.
func (a *Application) seedProducts() {
	var count int64
	if err := a.gormDB.Model(&domain.Product{}).Count(&count).Error; err != nil {
		zap.L().Error("failed to count products", zap.Error(err))
		return
	}
	if count > 0 {
		zap.L().Info("product table already populated, skipping sample data")
		return
	}

	sampleProducts := []domain.Product{
		{
			Name:     "หูฟังไร้สาย Premium",
			Price:    2490.00,
			ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=250&fit=crop",
			Category: domain.CategoryElectronics,
			Discount: 15,
			IsSale:   true,
		},
		{
			Name:     "นาฬิกาสมาร์ทวอทช์",
			Price:    4990.00,
			ImageURL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=250&fit=crop",
			Category: domain.CategoryElectronics,
			Discount: 0,
			IsSale:   false,
		},
		{
			Name:     "กระเป๋า Camera Bag",
			Price:    1890.00,
			ImageURL: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400&h=250&fit=crop",
			Category: domain.CategoryCameras,
			Discount: 20,
			IsSale:   true,
		},
		{
			Name:     "แว่นตากันแดด",
			Price:    3290.00,
			ImageURL: "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=400&h=250&fit=crop",
			Category: domain.CategoryComputers,
			Discount: 10,
			IsSale:   true,
		},
	}

	err := a.gormDB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&sampleProducts).Error
	})
	if err != nil {
		zap.L().Error("failed to insert sample products", zap.Error(err))
		return
	}
	zap.L().Info("inserted sample products", zap.Int("count", len(sampleProducts)))
}
