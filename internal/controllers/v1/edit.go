package v1

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/goalpost-app/backend/internal/httputil"
	"github.com/goalpost-app/backend/internal/live"
	"github.com/goalpost-app/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// authorizeSecret loads the goal of an edit link and verifies the secret
// in the link.
func authorizeSecret(c *gin.Context) (models.Goal, string, error) {
	var uri URIEdit
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Goal{}, "", err
	}

	var goal models.Goal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		return models.Goal{}, "", err
	}

	err = goal.Authorize(uri.Secret)
	if err != nil {
		return models.Goal{}, "", err
	}

	return goal, uri.Secret, nil
}

// authorizeToken loads the goal and verifies the bearer token of the request.
func (co Controller) authorizeToken(c *gin.Context) (models.Goal, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Goal{}, err
	}

	token, err := httputil.BearerToken(c)
	if err != nil {
		return models.Goal{}, err
	}

	var goal models.Goal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		return models.Goal{}, err
	}

	err = co.Tokens.Verify(token, goal.ID)
	if err != nil {
		return models.Goal{}, models.ErrInvalidSecret
	}

	return goal, nil
}

func editOptions(c *gin.Context, allow func(*gin.Context)) {
	_, _, err := authorizeSecret(c)
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
// @Tags			Edit
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			secret	path		string	true	"Edit secret"
// @Router			/v1/goals/{id}/edit/{secret} [options]
func (co Controller) OptionsGoalEdit(c *gin.Context) {
	editOptions(c, httputil.OptionsGetPatch)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Edit
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			secret	path		string	true	"Edit secret"
// @Router			/v1/goals/{id}/edit/{secret}/milestones [options]
func (co Controller) OptionsGoalEditMilestones(c *gin.Context) {
	editOptions(c, httputil.OptionsPut)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Edit
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			secret	path		string	true	"Edit secret"
// @Router			/v1/goals/{id}/edit/{secret}/token [options]
func (co Controller) OptionsGoalEditToken(c *gin.Context) {
	editOptions(c, httputil.OptionsPost)
}

// @Summary		Get goal for editing
// @Description	Returns the goal as seen by its creator, including the payout account and the milestone discrepancy
// @Tags			Edit
// @Produce		json
// @Success		200		{object}	EditGoalResponse
// @Failure		400		{object}	EditGoalResponse
// @Failure		403		{object}	EditGoalResponse
// @Failure		404		{object}	EditGoalResponse
// @Failure		500		{object}	EditGoalResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			secret	path		string	true	"Edit secret"
// @Router			/v1/goals/{id}/edit/{secret} [get]
func (co Controller) GetGoalEdit(c *gin.Context) {
	goal, secret, err := authorizeSecret(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EditGoalResponse{
			Error: &s,
		})
		return
	}

	data, err := co.newEditGoal(c, goal, secret)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EditGoalResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, EditGoalResponse{Data: &data})
}

// @Summary		Update goal
// @Description	Updates the goal. Only values to be updated need to be specified.
// @Tags			Edit
// @Accept			json
// @Produce		json
// @Success		200		{object}	EditGoalResponse
// @Failure		400		{object}	EditGoalResponse
// @Failure		403		{object}	EditGoalResponse
// @Failure		404		{object}	EditGoalResponse
// @Failure		500		{object}	EditGoalResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			secret	path		string			true	"Edit secret"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals/{id}/edit/{secret} [patch]
func (co Controller) UpdateGoal(c *gin.Context) {
	goal, secret, err := authorizeSecret(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EditGoalResponse{
			Error: &s,
		})
		return
	}

	co.updateGoal(c, goal, secret)
}

// @Summary		Update goal with a token
// @Description	Updates the goal. Only values to be updated need to be specified.
// @Tags			Edit
// @Accept			json
// @Produce		json
// @Security		BearerToken
// @Success		200		{object}	EditGoalResponse
// @Failure		400		{object}	EditGoalResponse
// @Failure		401		{object}	EditGoalResponse
// @Failure		403		{object}	EditGoalResponse
// @Failure		404		{object}	EditGoalResponse
// @Failure		500		{object}	EditGoalResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals/{id} [patch]
func (co Controller) UpdateGoalWithToken(c *gin.Context) {
	goal, err := co.authorizeToken(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EditGoalResponse{
			Error: &s,
		})
		return
	}

	co.updateGoal(c, goal, "")
}

func (co Controller) updateGoal(c *gin.Context, goal models.Goal, secret string) {
	updateFields, err := httputil.GetBodyFields(c, GoalEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EditGoalResponse{
			Error: &s,
		})
		return
	}

	var data GoalEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EditGoalResponse{
			Error: &s,
		})
		return
	}

	err = goal.Update(models.DB, data.model(), updateFields...)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EditGoalResponse{
			Error: &s,
		})
		return
	}

	co.Hub.Publish(goal.ID, live.ReasonGoal)

	edit, err := co.newEditGoal(c, goal, secret)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EditGoalResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, EditGoalResponse{Data: &edit})
}

// @Summary		Replace milestones
// @Description	Replaces all milestones of the goal. The milestones must add up to the goal amount.
// @Tags			Edit
// @Accept			json
// @Produce		json
// @Success		200			{object}	EditGoalResponse
// @Failure		400			{object}	EditGoalResponse
// @Failure		403			{object}	EditGoalResponse
// @Failure		404			{object}	EditGoalResponse
// @Failure		500			{object}	EditGoalResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			secret		path		string				true	"Edit secret"
// @Param			milestones	body		[]MilestoneEditable	true	"Milestones in ascending order"
// @Router			/v1/goals/{id}/edit/{secret}/milestones [put]
func (co Controller) ReplaceMilestones(c *gin.Context) {
	goal, secret, err := authorizeSecret(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EditGoalResponse{
			Error: &s,
		})
		return
	}

	co.replaceMilestones(c, goal, secret)
}

// @Summary		Replace milestones with a token
// @Description	Replaces all milestones of the goal. The milestones must add up to the goal amount.
// @Tags			Edit
// @Accept			json
// @Produce		json
// @Security		BearerToken
// @Success		200			{object}	EditGoalResponse
// @Failure		400			{object}	EditGoalResponse
// @Failure		401			{object}	EditGoalResponse
// @Failure		403			{object}	EditGoalResponse
// @Failure		404			{object}	EditGoalResponse
// @Failure		500			{object}	EditGoalResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			milestones	body		[]MilestoneEditable	true	"Milestones in ascending order"
// @Router			/v1/goals/{id}/milestones [put]
func (co Controller) ReplaceMilestonesWithToken(c *gin.Context) {
	goal, err := co.authorizeToken(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EditGoalResponse{
			Error: &s,
		})
		return
	}

	co.replaceMilestones(c, goal, "")
}

func (co Controller) replaceMilestones(c *gin.Context, goal models.Goal, secret string) {
	var editables []MilestoneEditable
	err := httputil.BindData(c, &editables)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EditGoalResponse{
			Error: &s,
		})
		return
	}

	err = goal.ReplaceMilestones(models.DB, milestoneModels(editables))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EditGoalResponse{
			Error:       &s,
			Discrepancy: discrepancy(err),
		})
		return
	}

	co.Hub.Publish(goal.ID, live.ReasonMilestones)

	edit, err := co.newEditGoal(c, goal, secret)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EditGoalResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, EditGoalResponse{Data: &edit})
}

// @Summary		Create edit token
// @Description	Returns a short-lived bearer token that grants the same rights as the edit secret
// @Tags			Edit
// @Produce		json
// @Success		201		{object}	TokenResponse
// @Failure		400		{object}	TokenResponse
// @Failure		403		{object}	TokenResponse
// @Failure		404		{object}	TokenResponse
// @Failure		500		{object}	TokenResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			secret	path		string	true	"Edit secret"
// @Router			/v1/goals/{id}/edit/{secret}/token [post]
func (co Controller) CreateToken(c *gin.Context) {
	goal, _, err := authorizeSecret(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TokenResponse{
			Error: &s,
		})
		return
	}

	token, expires, err := co.Tokens.Issue(goal.ID)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("could not issue edit token")
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, TokenResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{Data: &Token{
		Token:     token,
		ExpiresAt: expires,
	}})
}
