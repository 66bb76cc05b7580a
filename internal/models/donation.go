package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusFailed    DonationStatus = "failed"
)

// AnonymousDonor is displayed for donations without a donor name.
const AnonymousDonor = "Anonymous"

// Donation is an entry in the append-only donation ledger.
//
// Only completed donations count towards any total. Pending and failed
// entries are kept for audit purposes only.
type Donation struct {
	DefaultModel
	GoalID                uuid.UUID       `gorm:"type:uuid;not null;index"`
	Goal                  Goal            `json:"-"`
	Amount                decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DonorName             string
	Message               string
	ProviderTransactionID string         `gorm:"not null;uniqueIndex"`
	Status                DonationStatus `gorm:"not null;index"`
}

// DisplayName returns the donor name or AnonymousDonor.
func (d Donation) DisplayName() string {
	if d.DonorName == "" {
		return AnonymousDonor
	}

	return d.DonorName
}

func (d *Donation) BeforeSave(_ *gorm.DB) error {
	d.DonorName = strings.TrimSpace(d.DonorName)
	d.Message = strings.TrimSpace(d.Message)
	d.ProviderTransactionID = strings.TrimSpace(d.ProviderTransactionID)

	return nil
}

func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	_ = d.DefaultModel.BeforeCreate(tx)

	if !d.Amount.IsPositive() {
		return ErrDonationAmountNotPositive
	}

	if strings.TrimSpace(d.ProviderTransactionID) == "" {
		return ErrDonationTransactionEmpty
	}

	return d.checkIntegrity(tx)
}

// BeforeUpdate rejects all updates, the ledger is append-only.
func (d *Donation) BeforeUpdate(_ *gorm.DB) error {
	return ErrDonationImmutable
}

// BeforeDelete rejects all deletes, the ledger is append-only.
func (d *Donation) BeforeDelete(_ *gorm.DB) error {
	return ErrDonationImmutable
}

func (d *Donation) checkIntegrity(tx *gorm.DB) error {
	return tx.Select("id").First(&Goal{}, d.GoalID).Error
}

// RecordCompletedDonation appends a completed donation to the ledger.
//
// The provider transaction ID is the idempotency key: if a donation with the
// same ID exists, nothing is written and the existing donation is returned
// with created set to false. The check and the insert are one atomic
// statement backed by the unique index.
func RecordCompletedDonation(db *gorm.DB, donation Donation) (Donation, bool, error) {
	donation.DefaultModel = DefaultModel{}
	donation.Goal = Goal{}
	donation.Status = DonationStatusCompleted

	var created bool
	err := transaction(db, func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "provider_transaction_id"}},
			DoNothing: true,
		}).Create(&donation)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 1 {
			created = true
			return nil
		}

		var existing Donation
		err := tx.Where(&Donation{ProviderTransactionID: donation.ProviderTransactionID}).First(&existing).Error
		if err != nil {
			return err
		}

		donation = existing
		return nil
	})
	if err != nil {
		return Donation{}, false, err
	}

	return donation, created, nil
}

// CurrentAmount is the sum of all completed donations for the goal.
//
// It is always computed from the ledger and never stored.
func CurrentAmount(db *gorm.DB, goalID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.Model(&Donation{}).
		Where(&Donation{GoalID: goalID, Status: DonationStatusCompleted}).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	// Amounts are stored with 8 decimal places, SQLite sums them as floats
	return sum.Decimal.Round(8), nil
}

// ListCompletedDonations returns the completed donations for a goal, newest
// first, and the total number of completed donations.
//
// A negative limit returns all donations.
func ListCompletedDonations(db *gorm.DB, goalID uuid.UUID, offset, limit int) ([]Donation, int64, error) {
	completed := func() *gorm.DB {
		return db.Model(&Donation{}).Where(&Donation{GoalID: goalID, Status: DonationStatusCompleted})
	}

	var donations []Donation
	err := completed().Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&donations).Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = completed().Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	return donations, total, nil
}
