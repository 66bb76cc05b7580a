package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goalpost-app/backend/internal/httputil"
	"github.com/goalpost-app/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// RegisterGoalRoutes registers the routes for goals with
// the RouterGroup that is passed.
func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsGoalList)
		r.POST("", co.CreateGoal)
	}

	// Goal with ID
	{
		r.OPTIONS("/:id", co.OptionsGoalDetail)
		r.GET("/:id", co.GetGoal)
		r.PATCH("/:id", co.UpdateGoalWithToken)
		r.OPTIONS("/:id/donations", co.OptionsGoalDonations)
		r.GET("/:id/donations", co.GetGoalDonations)
		r.OPTIONS("/:id/events", co.OptionsGoalEvents)
		r.GET("/:id/events", co.GetGoalEvents)
		r.OPTIONS("/:id/checkout", co.OptionsGoalCheckout)
		r.POST("/:id/checkout", co.CreateCheckout)
		r.OPTIONS("/:id/milestones", co.OptionsGoalMilestones)
		r.PUT("/:id/milestones", co.ReplaceMilestonesWithToken)
	}

	// Edit link
	{
		r.OPTIONS("/:id/edit/:secret", co.OptionsGoalEdit)
		r.GET("/:id/edit/:secret", co.GetGoalEdit)
		r.PATCH("/:id/edit/:secret", co.UpdateGoal)
		r.OPTIONS("/:id/edit/:secret/milestones", co.OptionsGoalEditMilestones)
		r.PUT("/:id/edit/:secret/milestones", co.ReplaceMilestones)
		r.OPTIONS("/:id/edit/:secret/token", co.OptionsGoalEditToken)
		r.POST("/:id/edit/:secret/token", co.CreateToken)
	}
}

// discrepancy returns the discrepancy of a milestone sum error, if err is one.
func discrepancy(err error) *decimal.Decimal {
	var sumErr *models.MilestoneSumError
	if errors.As(err, &sumErr) {
		d := sumErr.Discrepancy
		return &d
	}

	return nil
}

// optionsForGoal verifies that the goal exists before responding with the
// allowed methods.
func optionsForGoal(c *gin.Context, allow func(*gin.Context)) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Goal{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	allow(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func (co Controller) OptionsGoalList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [options]
func (co Controller) OptionsGoalDetail(c *gin.Context) {
	optionsForGoal(c, httputil.OptionsGetPatch)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/donations [options]
func (co Controller) OptionsGoalDonations(c *gin.Context) {
	optionsForGoal(c, httputil.OptionsGet)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/milestones [options]
func (co Controller) OptionsGoalMilestones(c *gin.Context) {
	optionsForGoal(c, httputil.OptionsPut)
}

// @Summary		Create goal
// @Description	Creates a new goal with its milestones. The edit secret is only returned in this response.
// @Tags			Goals
// @Produce		json
// @Success		201		{object}	GoalCreateResponse
// @Failure		400		{object}	GoalCreateResponse
// @Failure		500		{object}	GoalCreateResponse
// @Param			goal	body		GoalCreate	true	"Goal"
// @Router			/v1/goals [post]
func (co Controller) CreateGoal(c *gin.Context) {
	var editable GoalCreate

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalCreateResponse{
			Error: &e,
		})
		return
	}

	goal, secret, err := models.CreateGoal(models.DB, editable.model(), milestoneModels(editable.Milestones))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalCreateResponse{
			Error:       &e,
			Discrepancy: discrepancy(err),
		})
		return
	}

	edit, err := co.newEditGoal(c, goal, secret)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalCreateResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, GoalCreateResponse{Data: &CreatedGoal{
		EditGoal: edit,
		Secret:   secret,
	}})
}

// @Summary		Get goal
// @Description	Returns the public view of a goal with its progress, milestones and latest donations
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [get]
func (co Controller) GetGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	var goal models.Goal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	data, err := co.newGoal(c, goal)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: &data})
}

// @Summary		List donations
// @Description	Returns the completed donations for a goal, newest first
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	DonationListResponse
// @Failure		400		{object}	DonationListResponse
// @Failure		404		{object}	DonationListResponse
// @Failure		500		{object}	DonationListResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			offset	query		uint	false	"The offset of the first donation returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of donations to return. Defaults to 50."
// @Router			/v1/goals/{id}/donations [get]
func (co Controller) GetGoalDonations(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DonationListResponse{
			Error: &s,
		})
		return
	}

	var filter DonationQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DonationListResponse{
			Error: &s,
		})
		return
	}

	var goal models.Goal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DonationListResponse{
			Error: &s,
		})
		return
	}

	// Default to 50 donations and set the limit
	limit := latestDonations
	if slices.Contains(httputil.SetQueryFields(c.Request.URL, filter), "Limit") {
		limit = filter.Limit
	}

	donations, total, err := models.ListCompletedDonations(models.DB, goal.ID, int(filter.Offset), limit)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DonationListResponse{
			Error: &s,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	data := make([]Donation, 0, len(donations))
	for _, d := range donations {
		data = append(data, newDonation(d))
	}

	c.JSON(http.StatusOK, DonationListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}
