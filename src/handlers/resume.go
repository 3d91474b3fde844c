package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/resumevault/resume-vault/src/middleware"
	"github.com/resumevault/resume-vault/src/models"
	"github.com/resumevault/resume-vault/src/pdf"
	"github.com/resumevault/resume-vault/src/services"
	"github.com/resumevault/resume-vault/src/validation"
	"github.com/rs/zerolog/log"
)

// ResumeHandler handles resume submission, admin retrieval and export
type ResumeHandler struct {
	resumes        *services.ResumeService
	maxPayloadSize int64
}

// NewResumeHandler creates a new resume handler
func NewResumeHandler(resumes *services.ResumeService, maxPayloadSize int64) *ResumeHandler {
	return &ResumeHandler{
		resumes:        resumes,
		maxPayloadSize: maxPayloadSize,
	}
}

// HandleSubmit accepts a public resume submission. Oversized payloads
// are refused before any parsing; a rejected submission leaves no trace.
func (rh *ResumeHandler) HandleSubmit(c *gin.Context) {
	if c.Request.ContentLength > rh.maxPayloadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": "Payload too large",
		})
		return
	}
	// Backstop for chunked requests that did not declare a length.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, rh.maxPayloadSize)

	var sub models.ResumeSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		status := http.StatusBadRequest
		msg := "No data provided"
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			status = http.StatusRequestEntityTooLarge
			msg = "Payload too large"
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	if errs := validation.Validate(&sub); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": errs,
		})
		return
	}

	record := validation.Sanitize(&sub)
	if err := rh.resumes.Create(c.Request.Context(), record); err != nil {
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("resume submission failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to submit resume",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Resume submitted successfully",
		"resume_id": record.ID,
	})
}

// HandleList returns one page of resume summaries for the admin index.
func (rh *ResumeHandler) HandleList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(services.DefaultPerPage)))

	result, err := rh.resumes.List(c.Request.Context(), page, perPage)
	if err != nil {
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("resume listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch resumes",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGet returns one full resume record.
func (rh *ResumeHandler) HandleGet(c *gin.Context) {
	resume, err := rh.resumes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrResumeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
			return
		}
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("resume fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch resume",
		})
		return
	}

	c.JSON(http.StatusOK, resume)
}

// HandlePDF renders a resume as a downloadable PDF. Serves both the
// admin route and the public route; on the public one the unguessable
// resume id is the capability.
func (rh *ResumeHandler) HandlePDF(c *gin.Context) {
	resume, err := rh.resumes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrResumeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
			return
		}
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("resume fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch resume",
		})
		return
	}

	data, err := pdf.Render(pdf.Compose(resume))
	if err != nil {
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("pdf generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate PDF",
		})
		return
	}

	filename := strings.ReplaceAll(resume.FullName, " ", "_") + "_resume.pdf"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// HandleDelete removes a resume record.
func (rh *ResumeHandler) HandleDelete(c *gin.Context) {
	if err := rh.resumes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrResumeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
			return
		}
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("resume delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete resume",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Resume deleted successfully",
	})
}
