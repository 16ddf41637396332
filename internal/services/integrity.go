package services

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rmartins/tabletrack/internal/models"
)

// Integrity enforces the cross-entity rules that live outside single-row
// validation: business-scoped uniqueness, supplier-good reference repair and
// the two-level cascade deletes. Multi-row sequences run inside transactions
// so a partial cascade can never be observed.
type Integrity struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewIntegrity(db *gorm.DB, log *zap.Logger) *Integrity {
	if log == nil {
		log = zap.NewNop()
	}
	return &Integrity{DB: db, Log: log}
}

// AssertUniqueInBusiness fails with a Conflict when another row of model
// matches any of the given column values inside the same business. A zero
// businessID widens the scope to the whole table, which is how Business
// itself is checked. excludeID skips the row being updated.
func (i *Integrity) AssertUniqueInBusiness(tx *gorm.DB, model any, businessID, excludeID uint, fields map[string]any, message string) error {
	if len(fields) == 0 {
		return nil
	}
	q := tx.Model(model)
	if businessID != 0 {
		q = q.Where("business_id = ?", businessID)
	}
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	match := tx.Session(&gorm.Session{NewDB: true})
	first := true
	var cond *gorm.DB
	for col, val := range fields {
		if first {
			cond = match.Where(col+" = ?", val)
			first = false
		} else {
			cond = cond.Or(col+" = ?", val)
		}
	}
	q = q.Where(cond)
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return Internalf("%s", err.Error())
	}
	if count > 0 {
		return Conflictf("%s", message)
	}
	return nil
}

// AssertUniqueSupplierGoodUsages fails with Validation when a recipe lists the
// same supplier good more than once.
func (i *Integrity) AssertUniqueSupplierGoodUsages(usages []models.SupplierGoodUsage) error {
	seen := make(map[uint]bool, len(usages))
	for _, u := range usages {
		if seen[u.SupplierGoodID] {
			return Validationf("Supplier goods already exists on this business good!")
		}
		seen[u.SupplierGoodID] = true
	}
	return nil
}

// RepairSupplierGoodReferences removes every usage row pointing at the given
// supplier good from all business goods. One delete over the usage table, so
// running it again is a no-op.
func (i *Integrity) RepairSupplierGoodReferences(tx *gorm.DB, supplierGoodID uint) error {
	res := tx.Where("supplier_good_id = ?", supplierGoodID).Delete(&models.SupplierGoodUsage{})
	if res.Error != nil {
		return Internalf("%s", res.Error.Error())
	}
	if res.RowsAffected > 0 {
		i.Log.Info("repaired supplier good references",
			zap.Uint("supplierGoodID", supplierGoodID),
			zap.Int64("usagesRemoved", res.RowsAffected))
	}
	return nil
}

// CascadeDeleteSupplier deletes the supplier's goods (repairing each good's
// business-good references first) and then the supplier itself. Runs on the
// caller's transaction.
func (i *Integrity) CascadeDeleteSupplier(tx *gorm.DB, supplierID uint) error {
	var goodIDs []uint
	if err := tx.Model(&models.SupplierGood{}).Where("supplier_id = ?", supplierID).Pluck("id", &goodIDs).Error; err != nil {
		return Internalf("%s", err.Error())
	}
	for _, id := range goodIDs {
		if err := i.RepairSupplierGoodReferences(tx, id); err != nil {
			return err
		}
	}
	if err := tx.Where("supplier_id = ?", supplierID).Delete(&models.SupplierGood{}).Error; err != nil {
		return Internalf("%s", err.Error())
	}
	if err := tx.Delete(&models.Supplier{}, supplierID).Error; err != nil {
		return Internalf("%s", err.Error())
	}
	return nil
}

// CascadeDeleteBusiness deletes everything the business owns and then the
// business row. The supplier -> supplier-good level is walked explicitly
// rather than left to the database. The whole cascade is one transaction.
func (i *Integrity) CascadeDeleteBusiness(businessID uint) error {
	return i.DB.Transaction(func(tx *gorm.DB) error {
		var orderIDs []uint
		if err := tx.Model(&models.Order{}).Where("business_id = ?", businessID).Pluck("id", &orderIDs).Error; err != nil {
			return Internalf("%s", err.Error())
		}
		if len(orderIDs) > 0 {
			if err := tx.Exec("DELETE FROM order_business_goods WHERE order_id IN ?", orderIDs).Error; err != nil {
				return Internalf("%s", err.Error())
			}
		}
		if err := tx.Where("business_id = ?", businessID).Delete(&models.Order{}).Error; err != nil {
			return Internalf("%s", err.Error())
		}

		var printerIDs []uint
		if err := tx.Model(&models.Printer{}).Where("business_id = ?", businessID).Pluck("id", &printerIDs).Error; err != nil {
			return Internalf("%s", err.Error())
		}
		if len(printerIDs) > 0 {
			if err := tx.Exec("DELETE FROM printer_pos WHERE printer_id IN ?", printerIDs).Error; err != nil {
				return Internalf("%s", err.Error())
			}
		}
		if err := tx.Where("business_id = ?", businessID).Delete(&models.Printer{}).Error; err != nil {
			return Internalf("%s", err.Error())
		}

		if err := tx.Where("business_id = ?", businessID).Delete(&models.Pos{}).Error; err != nil {
			return Internalf("%s", err.Error())
		}
		if err := tx.Where("business_id = ?", businessID).Delete(&models.User{}).Error; err != nil {
			return Internalf("%s", err.Error())
		}

		var goodIDs []uint
		if err := tx.Model(&models.BusinessGood{}).Where("business_id = ?", businessID).Pluck("id", &goodIDs).Error; err != nil {
			return Internalf("%s", err.Error())
		}
		if len(goodIDs) > 0 {
			if err := tx.Where("business_good_id IN ?", goodIDs).Delete(&models.SupplierGoodUsage{}).Error; err != nil {
				return Internalf("%s", err.Error())
			}
		}
		if err := tx.Where("business_id = ?", businessID).Delete(&models.BusinessGood{}).Error; err != nil {
			return Internalf("%s", err.Error())
		}

		// Supplier goods twice over: those reachable through the business's
		// suppliers and, defensively, any carrying the business id directly.
		var supplierIDs []uint
		if err := tx.Model(&models.Supplier{}).Where("business_id = ?", businessID).Pluck("id", &supplierIDs).Error; err != nil {
			return Internalf("%s", err.Error())
		}
		if len(supplierIDs) > 0 {
			if err := tx.Where("supplier_id IN ?", supplierIDs).Delete(&models.SupplierGood{}).Error; err != nil {
				return Internalf("%s", err.Error())
			}
		}
		if err := tx.Where("business_id = ?", businessID).Delete(&models.SupplierGood{}).Error; err != nil {
			return Internalf("%s", err.Error())
		}
		if err := tx.Where("business_id = ?", businessID).Delete(&models.Supplier{}).Error; err != nil {
			return Internalf("%s", err.Error())
		}

		if err := tx.Delete(&models.Business{}, businessID).Error; err != nil {
			return Internalf("%s", err.Error())
		}
		i.Log.Info("business cascade delete completed", zap.Uint("businessID", businessID))
		return nil
	})
}
