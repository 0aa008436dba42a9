package handlers

import (
	"context"
	"net/http"
	"time"

	"brewmatic/internal/models"
	"brewmatic/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockMachine struct {
	pressErr    error
	refillErr   error
	overrideErr error
	resetErr    error

	lastPress    service.ButtonPress
	lastRefill   service.RefillParams
	lastOverride service.OverrideParams

	pressCalls    int
	refillCalls   int
	overrideCalls int
	resetCalls    int
}

func (m *mockMachine) PressButton(ctx context.Context, p service.ButtonPress) error {
	m.pressCalls++
	m.lastPress = p
	return m.pressErr
}
func (m *mockMachine) Refill(ctx context.Context, p service.RefillParams) error {
	m.refillCalls++
	m.lastRefill = p
	return m.refillErr
}
func (m *mockMachine) SetOverrides(ctx context.Context, p service.OverrideParams) error {
	m.overrideCalls++
	m.lastOverride = p
	return m.overrideErr
}
func (m *mockMachine) Reset(ctx context.Context) error {
	m.resetCalls++
	return m.resetErr
}

type mockMonitoring struct {
	state models.MachineState
	err   error
}

func (m *mockMonitoring) GetStatus(ctx context.Context) (models.MachineState, error) {
	return m.state, m.err
}

type mockEventLog struct {
	resp     []models.BrewEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.BrewEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

type mockRunner struct{}

func (m *mockRunner) Run(ctx context.Context, tick time.Duration) { <-ctx.Done() }

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
