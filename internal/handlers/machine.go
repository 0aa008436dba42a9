package handlers

import (
	"net/http"

	"brewmatic/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK       = "ok"
	statusPressed  = "pressed"
	statusRefilled = "refilled"
	statusOverride = "overrides_set"
	statusReset    = "reset_requested"

	errGetStatus       = "failed to load machine status"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Respond with a status and include current machine state if available (best-effort).
func (h *Handler) respondWithStatusAndState(c *gin.Context, status string, extra gin.H) {
	ctx := c.Request.Context()
	resp := gin.H{"status": status}
	for k, v := range extra {
		resp[k] = v
	}
	st, err := h.services.Monitoring.GetStatus(ctx)
	if err == nil {
		resp["state"] = st
	}
	c.JSON(http.StatusOK, resp)
}

// Request DTO for a button press.
type buttonRequest struct {
	Button  string `json:"button" binding:"required"` // select | cancel | left | right
	Hold    bool   `json:"hold,omitempty"`
	Release bool   `json:"release,omitempty"`
}

// Request DTO for a forced sensor reading.
type refillRequest struct {
	Ingredient string `json:"ingredient" binding:"required"` // bin0 | bin1 | creamer | chocolate | paper
	Level      uint8  `json:"level"`
}

// Request DTO for override lines; nil fields are left untouched.
type overridesRequest struct {
	TempOverride     *bool `json:"temp_override,omitempty"`
	PressureOverride *bool `json:"pressure_override,omitempty"`
	TempFault        *bool `json:"temp_fault,omitempty"`
	SystemFault      *bool `json:"system_fault,omitempty"`
	WaterSupply      *bool `json:"water_supply,omitempty"`
	PressureOK       *bool `json:"pressure_ok,omitempty"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Press a button
// @Description  Injects a debounced button edge into the next control tick. Hold latches the held level for the settings combo; release clears it.
// @Tags         machine
// @Accept       json
// @Produce      json
// @Param        body  body   buttonRequest  true  "Button payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/machine/button [post]
// @Security     BearerAuth
func (h *Handler) pressButton(c *gin.Context) {
	var req buttonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	err := h.services.Machine.PressButton(ctx, service.ButtonPress{
		Button:  req.Button,
		Hold:    req.Hold,
		Release: req.Release,
	})
	if err != nil {
		if h.log != nil {
			h.log.Errorw("machine_button_failed", "err", err, "button", req.Button)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondWithStatusAndState(c, statusPressed, gin.H{"button": req.Button})
}

// @Summary      Force an ingredient sensor reading
// @Description  Models a refill or forced-empty: the external reading wins over the tracked level. For "paper" a non-zero level means a stack is present.
// @Tags         machine
// @Accept       json
// @Produce      json
// @Param        body  body   refillRequest  true  "Refill payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/machine/refill [post]
// @Security     BearerAuth
func (h *Handler) refill(c *gin.Context) {
	var req refillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	err := h.services.Machine.Refill(ctx, service.RefillParams{
		Ingredient: req.Ingredient,
		Level:      req.Level,
	})
	if err != nil {
		if h.log != nil {
			h.log.Errorw("machine_refill_failed", "err", err, "ingredient", req.Ingredient)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondWithStatusAndState(c, statusRefilled, gin.H{"ingredient": req.Ingredient})
}

// @Summary      Set override lines
// @Description  Maintenance/test bypasses: temp/pressure overrides and raw fault lines. Omitted fields are left untouched.
// @Tags         machine
// @Accept       json
// @Produce      json
// @Param        body  body   overridesRequest  true  "Overrides payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/machine/overrides [post]
// @Security     BearerAuth
func (h *Handler) setOverrides(c *gin.Context) {
	var req overridesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	err := h.services.Machine.SetOverrides(ctx, service.OverrideParams{
		TempOverride:     req.TempOverride,
		PressureOverride: req.PressureOverride,
		TempFault:        req.TempFault,
		SystemFault:      req.SystemFault,
		WaterSupply:      req.WaterSupply,
		PressureOK:       req.PressureOK,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to set overrides", "machine_overrides_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusOverride, gin.H{})
}

// @Summary      Reset the machine
// @Description  Synchronously returns every component to its initial state on the next tick.
// @Tags         machine
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/machine/reset [post]
// @Security     BearerAuth
func (h *Handler) resetMachine(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.services.Machine.Reset(ctx); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to reset machine", "machine_reset_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusReset, gin.H{})
}

// @Summary      Get machine status
// @Tags         machine
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/machine/status [get]
// @Security     BearerAuth
func (h *Handler) getStatus(c *gin.Context) {
	ctx := c.Request.Context()
	st, err := h.services.Monitoring.GetStatus(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetStatus, "machine_get_status_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}
