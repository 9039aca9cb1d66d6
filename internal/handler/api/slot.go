package api

import (
	"net/http"

	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	cmds commands.SlotCommands
	q    queries.SlotQueries
}

func NewSlotHandler(cmds commands.SlotCommands, q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{cmds: cmds, q: q}
}

// @Summary List court fields
// @Tags slots
// @Produce json
// @Success 200 {array} resdto.CourtFieldResponse
// @Router /api/court-fields [get]
func (h *SlotHandler) ListCourtFields(c *gin.Context) {
	views, err := h.q.ListCourtFields(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromCourtFieldViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List slots
// @Description Slots of one court field for one day, ordered by start time
// @Tags slots
// @Produce json
// @Param id path int true "Court field ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/court-fields/{id}/slots [get]
func (h *SlotHandler) ListSlots(c *gin.Context) {
	courtFieldID, err := positiveIDParam(c, "id")
	if err != nil {
		abortBadRequest(c, err, "Invalid court field id")
		return
	}
	var query reqdto.ListSlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err, "date is required")
		return
	}
	day, err := query.Day()
	if err != nil {
		abortBadRequest(c, err, "date must be YYYY-MM-DD")
		return
	}

	views, err := h.q.ListSlots(c.Request.Context(), courtFieldID, day)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromSlotViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Lock slots
// @Description Holds every requested slot for the caller, or none of them
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SlotIDsRequest true "Slots to lock"
// @Success 200 {object} resdto.LockResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/slots/lock-bulk [post]
func (h *SlotHandler) LockBulk(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.SlotIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.LockSlots(c.Request.Context(), userID, req.SlotIDs)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLockResult(result))
}

// @Summary Unlock slots
// @Description Releases the caller's holds; slots held by others are left untouched
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SlotIDsRequest true "Slots to unlock"
// @Success 200 {object} resdto.UnlockResponse
// @Failure 400 {object} httperr.Response
// @Router /api/slots/unlock-bulk [post]
func (h *SlotHandler) UnlockBulk(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.SlotIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.UnlockSlots(c.Request.Context(), userID, req.SlotIDs)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnlockResult(result))
}
