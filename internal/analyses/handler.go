package analyses

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"prep-backend/internal/analyses/prep"
	"prep-backend/internal/extract"
	"prep-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.createAnalysis)
	rg.POST("/analyses/import", h.importDocument)
	rg.GET("/analyses", h.listAnalyses)
	rg.GET("/analyses/:id", h.getAnalysis)
	rg.POST("/analyses/:id/toggle", h.toggleSkill)
	rg.GET("/analyses/:id/report", h.downloadReport)
	rg.DELETE("/analyses", h.clearAnalyses)
}

type createRequest struct {
	JDText  string `json:"jdText"`
	Role    string `json:"role"`
	Company string `json:"company"`
}

func (h *Handler) createAnalysis(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.JDText) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jdText is required", []map[string]string{
			{"field": "jdText", "issue": "required"},
		})
		return
	}

	analysis, err := h.Svc.Create(c.Request.Context(), prep.Input{
		JDText:  req.JDText,
		Role:    req.Role,
		Company: req.Company,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrCreationInFlight):
			respond.Error(c, http.StatusConflict, "creation_in_flight", "an analysis is already being created", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create analysis", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, analysis)
}

func (h *Handler) importDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}

	text, err := extract.TextFromBytes(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unsupported or unreadable document", nil)
		return
	}

	analysis, err := h.Svc.Create(c.Request.Context(), prep.Input{
		JDText:  text,
		Role:    c.PostForm("role"),
		Company: c.PostForm("company"),
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrCreationInFlight):
			respond.Error(c, http.StatusConflict, "creation_in_flight", "an analysis is already being created", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create analysis", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, analysis)
}

func (h *Handler) listAnalyses(c *gin.Context) {
	analyses, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}

	resp := make([]gin.H, 0, len(analyses))
	for _, a := range analyses {
		resp = append(resp, gin.H{
			"id":             a.ID,
			"role":           a.Role,
			"company":        a.Company,
			"readinessScore": a.ReadinessScore,
			"companyType":    a.CompanyIntel.Type,
			"createdAt":      a.CreatedAt,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) getAnalysis(c *gin.Context) {
	analysis, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, analysis)
}

type toggleRequest struct {
	Skill string `json:"skill"`
}

func (h *Handler) toggleSkill(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Skill) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "skill is required", nil)
		return
	}

	analysis, err := h.Svc.Toggle(c.Request.Context(), c.Param("id"), req.Skill)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to toggle skill", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, analysis)
}

func (h *Handler) downloadReport(c *gin.Context) {
	analysis, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}

	report := RenderReport(analysis)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reportFileName(analysis)))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report))
}

func (h *Handler) clearAnalyses(c *gin.Context) {
	if err := h.Svc.ClearAll(c.Request.Context()); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to clear analyses", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
