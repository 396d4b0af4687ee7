// Package stock implements the host stock-reduction capability against
// the products table.
package stock

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"wagate/internal/domain/order"
	"wagate/internal/infrastructure/persistence/models"
	"wagate/internal/shared/db"
	"wagate/internal/shared/logger"
)

type GormStockService struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewGormStockService(db *gorm.DB, logger logger.Interface) *GormStockService {
	return &GormStockService{db: db, logger: logger}
}

// ReduceLevels decrements stock for every line item whose product manages
// stock. Items without a product reference are skipped; the host may sell
// unmanaged products through this gateway too.
func (s *GormStockService) ReduceLevels(ctx context.Context, o *order.Order) error {
	tx := db.GetTxFromContext(ctx, s.db)

	for _, item := range o.Items() {
		if item.ProductID == 0 {
			continue
		}

		result := tx.Model(&models.ProductModel{}).
			Where("id = ? AND manage_stock = ?", item.ProductID, true).
			UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
		if result.Error != nil {
			return fmt.Errorf("failed to reduce stock for product %d: %w", item.ProductID, result.Error)
		}
		if result.RowsAffected == 0 {
			s.logger.Debugw("no stock row updated", "product_id", item.ProductID)
		}
	}

	return nil
}
