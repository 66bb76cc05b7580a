package models_test

import (
	"fmt"
	"sync"

	"github.com/goalpost-app/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestDonationRecord() {
	goal, _ := suite.createTestGoal(models.Goal{})

	donation, created, err := models.RecordCompletedDonation(models.DB, models.Donation{
		GoalID:                goal.ID,
		Amount:                decimal.NewFromFloat(25),
		DonorName:             " Kim ",
		Message:               "Have fun!",
		ProviderTransactionID: "pi_3MtwBwLkdIwHu7ix28a3tqPa",
		Status:                models.DonationStatusFailed,
	})
	suite.Require().Nil(err)
	suite.Assert().True(created)
	suite.Assert().NotEqual(uuid.Nil, donation.ID)
	suite.Assert().Equal(models.DonationStatusCompleted, donation.Status, "Recorded donations are always completed")
	suite.Assert().Equal("Kim", donation.DonorName)
	suite.Assert().False(donation.CreatedAt.IsZero())
}

func (suite *TestSuiteStandard) TestDonationIdempotent() {
	goal, _ := suite.createTestGoal(models.Goal{})
	d := models.Donation{
		GoalID:                goal.ID,
		Amount:                decimal.NewFromFloat(25),
		ProviderTransactionID: "pi_duplicate",
	}

	first, created, err := models.RecordCompletedDonation(models.DB, d)
	suite.Require().Nil(err)
	suite.Require().True(created)

	// A redelivered webhook might carry different data, the first write wins
	d.Amount = decimal.NewFromFloat(9999)
	second, created, err := models.RecordCompletedDonation(models.DB, d)
	suite.Require().Nil(err)
	suite.Assert().False(created)
	suite.Assert().Equal(first.ID, second.ID)
	suite.Assert().True(second.Amount.Equal(decimal.NewFromFloat(25)))

	current, err := models.CurrentAmount(models.DB, goal.ID)
	suite.Require().Nil(err)
	suite.Assert().True(current.Equal(decimal.NewFromFloat(25)), "Current amount is %s", current)

	_, total, err := models.ListCompletedDonations(models.DB, goal.ID, 0, -1)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), total)
}

func (suite *TestSuiteStandard) TestDonationDirectDuplicateInsert() {
	goal, _ := suite.createTestGoal(models.Goal{})
	suite.createTestDonation(models.Donation{GoalID: goal.ID, Amount: decimal.NewFromFloat(5), ProviderTransactionID: "pi_direct"})

	err := models.DB.Create(&models.Donation{
		GoalID:                goal.ID,
		Amount:                decimal.NewFromFloat(5),
		ProviderTransactionID: "pi_direct",
		Status:                models.DonationStatusCompleted,
	}).Error
	suite.Assert().ErrorIs(err, models.ErrDuplicateTransaction)
}

// TestDonationConcurrentDistinct records many donations at the same time.
// None of them may get lost.
func (suite *TestSuiteStandard) TestDonationConcurrentDistinct() {
	goal, _ := suite.createTestGoal(models.Goal{})

	const donors = 20
	var wg sync.WaitGroup
	errs := make(chan error, donors)

	for i := 0; i < donors; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			_, _, err := models.RecordCompletedDonation(models.DB, models.Donation{
				GoalID:                goal.ID,
				Amount:                decimal.NewFromFloat(10),
				ProviderTransactionID: fmt.Sprintf("pi_concurrent_%d", i),
			})
			errs <- err
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		suite.Assert().Nil(err)
	}

	current, err := models.CurrentAmount(models.DB, goal.ID)
	suite.Require().Nil(err)
	suite.Assert().True(current.Equal(decimal.NewFromFloat(200)), "Current amount is %s", current)

	_, total, err := models.ListCompletedDonations(models.DB, goal.ID, 0, -1)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(donors), total)
}

// TestDonationConcurrentSameTransaction delivers the same confirmation many
// times at once. Exactly one donation must be written.
func (suite *TestSuiteStandard) TestDonationConcurrentSameTransaction() {
	goal, _ := suite.createTestGoal(models.Goal{})

	const deliveries = 10
	var wg sync.WaitGroup
	results := make(chan bool, deliveries)
	errs := make(chan error, deliveries)

	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, created, err := models.RecordCompletedDonation(models.DB, models.Donation{
				GoalID:                goal.ID,
				Amount:                decimal.NewFromFloat(50),
				ProviderTransactionID: "pi_redelivered",
			})
			errs <- err
			results <- created
		}()
	}

	wg.Wait()
	close(errs)
	close(results)

	for err := range errs {
		suite.Assert().Nil(err)
	}

	var created int
	for c := range results {
		if c {
			created++
		}
	}
	suite.Assert().Equal(1, created)

	current, err := models.CurrentAmount(models.DB, goal.ID)
	suite.Require().Nil(err)
	suite.Assert().True(current.Equal(decimal.NewFromFloat(50)), "Current amount is %s", current)
}

func (suite *TestSuiteStandard) TestDonationUnknownGoal() {
	_, created, err := models.RecordCompletedDonation(models.DB, models.Donation{
		GoalID:                uuid.New(),
		Amount:                decimal.NewFromFloat(10),
		ProviderTransactionID: "pi_orphan",
	})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().False(created)
}

func (suite *TestSuiteStandard) TestDonationInvalid() {
	goal, _ := suite.createTestGoal(models.Goal{})

	tests := []struct {
		name     string
		donation models.Donation
		err      error
	}{
		{"Amount zero", models.Donation{GoalID: goal.ID, Amount: decimal.Zero, ProviderTransactionID: "pi_1"}, models.ErrDonationAmountNotPositive},
		{"Amount negative", models.Donation{GoalID: goal.ID, Amount: decimal.NewFromFloat(-3), ProviderTransactionID: "pi_2"}, models.ErrDonationAmountNotPositive},
		{"Transaction empty", models.Donation{GoalID: goal.ID, Amount: decimal.NewFromFloat(3), ProviderTransactionID: "  "}, models.ErrDonationTransactionEmpty},
	}

	for _, tt := range tests {
		_, _, err := models.RecordCompletedDonation(models.DB, tt.donation)
		suite.Assert().ErrorIs(err, tt.err, tt.name)
	}
}

func (suite *TestSuiteStandard) TestDonationImmutable() {
	goal, _ := suite.createTestGoal(models.Goal{})
	donation := suite.createTestDonation(models.Donation{GoalID: goal.ID, Amount: decimal.NewFromFloat(10)})

	err := models.DB.Model(&donation).Update("amount", decimal.NewFromFloat(1)).Error
	suite.Assert().ErrorIs(err, models.ErrDonationImmutable)

	err = models.DB.Delete(&donation).Error
	suite.Assert().ErrorIs(err, models.ErrDonationImmutable)

	current, err := models.CurrentAmount(models.DB, goal.ID)
	suite.Require().Nil(err)
	suite.Assert().True(current.Equal(decimal.NewFromFloat(10)))
}

// TestDonationOnlyCompletedCount verifies that pending and failed entries
// never show up in totals or lists.
func (suite *TestSuiteStandard) TestDonationOnlyCompletedCount() {
	goal, _ := suite.createTestGoal(models.Goal{})
	suite.createTestDonation(models.Donation{GoalID: goal.ID, Amount: decimal.NewFromFloat(12.5)})

	for _, status := range []models.DonationStatus{models.DonationStatusPending, models.DonationStatusFailed} {
		err := models.DB.Create(&models.Donation{
			GoalID:                goal.ID,
			Amount:                decimal.NewFromFloat(100),
			ProviderTransactionID: "pi_" + string(status),
			Status:                status,
		}).Error
		suite.Require().Nil(err)
	}

	current, err := models.CurrentAmount(models.DB, goal.ID)
	suite.Require().Nil(err)
	suite.Assert().True(current.Equal(decimal.NewFromFloat(12.5)), "Current amount is %s", current)

	donations, total, err := models.ListCompletedDonations(models.DB, goal.ID, 0, -1)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), total)
	suite.Assert().Len(donations, 1)
}

func (suite *TestSuiteStandard) TestDonationCurrentAmountNoDonations() {
	goal, _ := suite.createTestGoal(models.Goal{})

	current, err := models.CurrentAmount(models.DB, goal.ID)
	suite.Require().Nil(err)
	suite.Assert().True(current.IsZero())
}

func (suite *TestSuiteStandard) TestDonationCurrentAmountPerGoal() {
	first, _ := suite.createTestGoal(models.Goal{})
	second, _ := suite.createTestGoal(models.Goal{})

	suite.createTestDonation(models.Donation{GoalID: first.ID, Amount: decimal.NewFromFloat(0.1)})
	suite.createTestDonation(models.Donation{GoalID: first.ID, Amount: decimal.NewFromFloat(0.2)})
	suite.createTestDonation(models.Donation{GoalID: second.ID, Amount: decimal.NewFromFloat(40)})

	current, err := models.CurrentAmount(models.DB, first.ID)
	suite.Require().Nil(err)
	suite.Assert().True(current.Equal(decimal.NewFromFloat(0.3)), "Current amount is %s", current)
}

func (suite *TestSuiteStandard) TestDonationListNewestFirst() {
	goal, _ := suite.createTestGoal(models.Goal{})

	var ids []uuid.UUID
	for i := 1; i <= 5; i++ {
		d := suite.createTestDonation(models.Donation{GoalID: goal.ID, Amount: decimal.NewFromInt(int64(i))})
		ids = append(ids, d.ID)
	}

	donations, total, err := models.ListCompletedDonations(models.DB, goal.ID, 0, -1)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(5), total)
	suite.Require().Len(donations, 5)
	suite.Assert().Equal(ids[4], donations[0].ID)
	suite.Assert().Equal(ids[0], donations[4].ID)

	donations, total, err = models.ListCompletedDonations(models.DB, goal.ID, 1, 2)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(5), total, "The total ignores offset and limit")
	suite.Require().Len(donations, 2)
	suite.Assert().Equal(ids[3], donations[0].ID)
	suite.Assert().Equal(ids[2], donations[1].ID)
}

func (suite *TestSuiteStandard) TestDonationDisplayName() {
	suite.Assert().Equal("Anonymous", models.Donation{}.DisplayName())
	suite.Assert().Equal("Kim", models.Donation{DonorName: "Kim"}.DisplayName())
}
