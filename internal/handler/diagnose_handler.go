package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fixmygame/backend/internal/model"
	"fixmygame/backend/internal/service"
	"fixmygame/backend/pkg/breakdown"
)

const (
	// clientTokenCookie stores the persistent identity token issued to
	// callers whose address signals may not be stable.
	clientTokenCookie = "fmg_client_id"
	// clientTokenMaxAge keeps the token for about a year.
	clientTokenMaxAge = 365 * 24 * 60 * 60
)

type DiagnoseHandler struct {
	quota     service.QuotaService
	diagnosis service.DiagnosisService
}

type diagnoseRequest struct {
	Log           string `json:"log"`
	GameTitle     string `json:"gameTitle"`
	GPUModel      string `json:"gpuModel"`
	DriverVersion string `json:"driverVersion"`
	APIMode       string `json:"apiMode"`
}

type diagnoseResponse struct {
	Result    string               `json:"result"`
	Breakdown *breakdown.Breakdown `json:"breakdown,omitempty"`
	Remaining int                  `json:"remaining"`
}

type quotaExceededResponse struct {
	Error     string `json:"error"`
	Remaining int    `json:"remaining"`
}

func NewDiagnoseHandler(quota service.QuotaService, diagnosis service.DiagnosisService) *DiagnoseHandler {
	return &DiagnoseHandler{quota: quota, diagnosis: diagnosis}
}

func (h *DiagnoseHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/diagnose", h.Diagnose)
}

// Diagnose admits the request against the caller's daily quota and, if
// admitted, runs the crash log through the completion provider.
func (h *DiagnoseHandler) Diagnose(c echo.Context) error {
	var req diagnoseRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request")
	}
	if strings.TrimSpace(req.Log) == "" {
		return writeError(c, http.StatusBadRequest, "no crash log provided")
	}

	existingToken := clientToken(c)
	identity := service.ResolveIdentity(c.Request().Header, existingToken)

	decision, err := h.quota.Admit(c.Request().Context(), identity)
	if err != nil {
		return writeServiceError(c, err)
	}

	if decision.IssueToken && existingToken == "" {
		issueClientToken(c, identity)
	}

	if !decision.Admitted {
		return c.JSON(http.StatusTooManyRequests, quotaExceededResponse{
			Error:     "daily diagnostic limit reached",
			Remaining: 0,
		})
	}

	diag, err := h.diagnosis.Analyze(c.Request().Context(), service.AnalyzeRequest{
		Log:           req.Log,
		GameTitle:     req.GameTitle,
		GPUModel:      req.GPUModel,
		DriverVersion: req.DriverVersion,
		APIMode:       req.APIMode,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, diagnoseResponse{
		Result:    diag.Result,
		Breakdown: diag.Breakdown,
		Remaining: decision.Remaining,
	})
}

func clientToken(c echo.Context) string {
	cookie, err := c.Cookie(clientTokenCookie)
	if err != nil || cookie == nil {
		return ""
	}
	return strings.TrimSpace(cookie.Value)
}

// issueClientToken hands the caller a persistent token. An ephemeral
// identity already is a freshly minted token, so it is reused; for
// address-derived identities a separate token is minted so the address is
// never echoed back in a cookie.
func issueClientToken(c echo.Context, identity model.ClientIdentity) {
	token := identity.Key
	if identity.Kind != model.IdentityEphemeral {
		token = uuid.NewString()
	}
	c.SetCookie(&http.Cookie{
		Name:     clientTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   clientTokenMaxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
