package models_test

import (
	"github.com/goalpost-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestMilestonePositionUnique() {
	goal, _ := suite.createTestGoal(models.Goal{}, tripMilestones()...)

	err := models.DB.Create(&models.Milestone{
		GoalID:   goal.ID,
		Name:     "Souvenirs",
		Amount:   decimal.NewFromFloat(50),
		Position: 2,
	}).Error
	suite.Assert().ErrorIs(err, models.ErrMilestonePositionNotUnique)
}

// TestMilestonePositionPerGoal verifies that positions only need to be
// unique within one goal.
func (suite *TestSuiteStandard) TestMilestonePositionPerGoal() {
	suite.createTestGoal(models.Goal{}, tripMilestones()...)
	other, _ := suite.createTestGoal(models.Goal{}, tripMilestones()...)

	milestones, err := other.LoadMilestones(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(milestones, 2)
}

func (suite *TestSuiteStandard) TestMilestoneNameTrimmed() {
	goal, _ := suite.createTestGoal(models.Goal{}, models.Milestone{Name: "  Everything ", Amount: decimal.NewFromFloat(1000)})

	milestones, err := goal.LoadMilestones(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(milestones, 1)
	suite.Assert().Equal("Everything", milestones[0].Name)
}
