package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"brewmatic/internal/core"
	"brewmatic/internal/models"
	"brewmatic/internal/service"
)

func testState() models.MachineState {
	return models.MachineState{
		ID: 1,
		Snapshot: core.Snapshot{
			Tick:   42,
			Menu:   core.MenuStatus{State: core.MenuCoffeeSelect},
			System: core.SystemStatus{State: core.SysHeating, Active: true},
		},
	}
}

func TestMachineHandlers_ButtonRefillStatus(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	mon := &mockMonitoring{state: testState()}
	mach := &mockMachine{}
	s := &service.Service{
		Authorization: auth,
		Monitoring:    mon,
		Machine:       mach,
	}
	r := newTestRouter(s)

	// GET status requires auth → 401 without header
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/machine/status", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", w.Code)
	}

	// With auth → 200 and full state body
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/machine/status", nil)
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var st models.MachineState
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
		t.Fatalf("unmarshal state: %v", err)
	}
	if st.Snapshot.Tick != 42 || st.Snapshot.Menu.State != core.MenuCoffeeSelect {
		t.Fatalf("unexpected state: %+v", st)
	}

	// POST /button → 200, passes params and includes state
	body := bytes.NewBufferString(`{"button":"select"}`)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/machine/button", body)
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("button status=%d, body=%s", w.Code, w.Body.String())
	}
	if mach.pressCalls != 1 || mach.lastPress.Button != service.ButtonSelect {
		t.Fatalf("wrong press call: calls=%d params=%+v", mach.pressCalls, mach.lastPress)
	}
	var resp struct {
		Status string              `json:"status"`
		Button string              `json:"button"`
		State  models.MachineState `json:"state"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Status != statusPressed || resp.Button != "select" {
		t.Fatalf("bad button response: %+v", resp)
	}
	if resp.State.Snapshot.Tick != 42 {
		t.Fatalf("state missing/invalid in response: %+v", resp.State)
	}

	// POST /button with hold flag
	body = bytes.NewBufferString(`{"button":"left","hold":true}`)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/machine/button", body)
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("hold status=%d, body=%s", w.Code, w.Body.String())
	}
	if !mach.lastPress.Hold || mach.lastPress.Button != service.ButtonLeft {
		t.Fatalf("hold not passed through: %+v", mach.lastPress)
	}

	// POST /refill → 200 with params
	body = bytes.NewBufferString(`{"ingredient":"bin0","level":255}`)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/machine/refill", body)
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("refill status=%d, body=%s", w.Code, w.Body.String())
	}
	if mach.refillCalls != 1 || mach.lastRefill.Ingredient != service.IngredientBin0 || mach.lastRefill.Level != 255 {
		t.Fatalf("wrong refill call: %+v", mach.lastRefill)
	}
}

func TestMachineHandlers_ButtonErrors(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	mach := &mockMachine{pressErr: errors.New(`unknown button "eject"`)}
	s := &service.Service{
		Authorization: auth,
		Monitoring:    &mockMonitoring{},
		Machine:       mach,
	}
	r := newTestRouter(s)

	// Missing button field → 400 from binding, service never called
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/machine/button", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing button, got %d", w.Code)
	}
	if mach.pressCalls != 0 {
		t.Fatalf("service called on invalid body")
	}

	// Service rejection → 400 with the service error
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/machine/button", bytes.NewBufferString(`{"button":"eject"}`))
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for rejected button, got %d", w.Code)
	}
	var out struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Error != `unknown button "eject"` {
		t.Fatalf("error message: %q", out.Error)
	}
}

func TestMachineHandlers_OverridesAndReset(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	mach := &mockMachine{}
	s := &service.Service{
		Authorization: auth,
		Monitoring:    &mockMonitoring{state: testState()},
		Machine:       mach,
	}
	r := newTestRouter(s)

	// Overrides: only provided fields are set, the rest stay nil.
	body := bytes.NewBufferString(`{"pressure_override":true,"water_supply":false}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/machine/overrides", body)
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("overrides status=%d, body=%s", w.Code, w.Body.String())
	}
	if mach.overrideCalls != 1 {
		t.Fatalf("SetOverrides calls=%d", mach.overrideCalls)
	}
	p := mach.lastOverride
	if p.PressureOverride == nil || !*p.PressureOverride {
		t.Fatalf("pressure_override not passed: %+v", p)
	}
	if p.WaterSupply == nil || *p.WaterSupply {
		t.Fatalf("water_supply not passed: %+v", p)
	}
	if p.TempOverride != nil || p.TempFault != nil || p.SystemFault != nil || p.PressureOK != nil {
		t.Fatalf("omitted fields must stay nil: %+v", p)
	}

	// Reset → 200 and the reset status string
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/machine/reset", nil)
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("reset status=%d, body=%s", w.Code, w.Body.String())
	}
	if mach.resetCalls != 1 {
		t.Fatalf("expected Reset to be called once, got %d", mach.resetCalls)
	}
	var resp struct {
		Status string `json:"status"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Status != statusReset {
		t.Fatalf("expected status %q, got %q", statusReset, resp.Status)
	}
}
