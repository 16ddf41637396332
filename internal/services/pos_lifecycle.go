package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/rmartins/tabletrack/internal/models"
)

// PosLifecycle gates the table-session state machine. Statuses move freely
// between Occupied, Reserved and Bill; Closed is terminal and the transition
// into it is the only guarded one.
type PosLifecycle struct {
	DB *gorm.DB
}

func NewPosLifecycle(db *gorm.DB) *PosLifecycle { return &PosLifecycle{DB: db} }

// AssertLiveCodeAvailable rejects a reference code already carried by a
// non-Closed pos of the same business. excludeID skips the pos being updated.
func (l *PosLifecycle) AssertLiveCodeAvailable(tx *gorm.DB, businessID uint, code string, excludeID uint) error {
	q := tx.Model(&models.Pos{}).
		Where("business_id = ? AND pos_reference_code = ? AND status <> ?", businessID, code, models.PosStatusClosed)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return Internalf("%s", err.Error())
	}
	if count > 0 {
		return Conflictf("Pos %s already exists and it is not closed!", code)
	}
	return nil
}

// hasOpenOrders scans the orders referenced by the pos for billing status Open.
func (l *PosLifecycle) hasOpenOrders(tx *gorm.DB, posID uint) (bool, error) {
	var count int64
	err := tx.Model(&models.Order{}).
		Where("pos_id = ? AND billing_status = ?", posID, models.BillingStatusOpen).
		Count(&count).Error
	if err != nil {
		return false, Internalf("%s", err.Error())
	}
	return count > 0, nil
}

// AssertCloseAllowed checks the close gate for pos: no transition out of
// Closed, no open orders, and closedAt/closedBy supplied together with the
// status change. On failure the pos is left untouched.
func (l *PosLifecycle) AssertCloseAllowed(tx *gorm.DB, pos *models.Pos, closedAt *time.Time, closedBy *uint) error {
	if pos.Status == models.PosStatusClosed {
		return Blockedf("Pos %s is already closed!", pos.PosReferenceCode)
	}
	open, err := l.hasOpenOrders(tx, pos.ID)
	if err != nil {
		return err
	}
	if open {
		return Blockedf("Cannot close POS with open orders!")
	}
	if closedAt == nil || closedBy == nil || *closedBy == 0 {
		return Validationf("ClosedAt and closedBy are required to close a POS!")
	}
	return nil
}

// AssertDeleteAllowed checks the delete gate: a pos with a lingering Open
// order is not deletable whatever its status. Closed normally implies no open
// orders, so this doubles as a consistency check.
func (l *PosLifecycle) AssertDeleteAllowed(tx *gorm.DB, posID uint) error {
	open, err := l.hasOpenOrders(tx, posID)
	if err != nil {
		return err
	}
	if open {
		return Blockedf("Cannot delete POS with open orders!")
	}
	return nil
}
