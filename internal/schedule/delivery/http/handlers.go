package http

import (
	"github.com/gin-gonic/gin"

	"schedule-assistant/pkg/response"
)

// Extract godoc
// @Summary     Extract a schedule intent
// @Description Turns a natural-language request (optionally with a screenshot) into a structured intent. Modify/delete intents can be applied in the same call with auto_apply.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Request text and options"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     403  {object} response.Resp "Calendar access not granted"
// @Failure     404  {object} response.Resp "No matching item"
// @Failure     502  {object} response.Resp "Model backend failure"
// @Router      /api/v1/schedule/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExtractIntent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExtractIntent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// Apply godoc
// @Summary     Apply a schedule intent
// @Description Commits a previously extracted intent: creates, updates, or deletes the matching calendar item.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body applyReq true "Intent to commit"
// @Success     200  {object} applyResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     403  {object} response.Resp "Calendar access not granted"
// @Failure     404  {object} response.Resp "No matching item"
// @Router      /api/v1/schedule/apply [POST]
func (h *handler) Apply(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processApplyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ApplyIntent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ApplyIntent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newApplyResp(output))
}

// List godoc
// @Summary     List upcoming items
// @Description Returns the upcoming week's events or the open reminder list.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       target query string false "Item kind (event/reminder, default: event)"
// @Success     200 {object} listResp
// @Failure     403 {object} response.Resp "Calendar access not granted"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListItems(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListItems: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Summary godoc
// @Summary     Summarize the upcoming week
// @Description Returns a short model-written briefing of upcoming events and open reminders.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Success     200 {object} summaryResp
// @Failure     403 {object} response.Resp "Calendar access not granted"
// @Failure     502 {object} response.Resp "Model backend failure"
// @Router      /api/v1/schedule/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Summarize(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Summarize: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSummaryResp(output))
}
