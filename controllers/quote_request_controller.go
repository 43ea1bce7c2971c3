package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bmowen/webquote-backend/catalog"
	"github.com/bmowen/webquote-backend/dto"
	"github.com/bmowen/webquote-backend/pricing"
	"github.com/bmowen/webquote-backend/submission"
	"github.com/bmowen/webquote-backend/utils"
)

// CreateQuoteRequest runs the full submission pipeline.
// POST /quote-requests
// multipart/form-data:
//   - data: JSON string (CreateQuoteRequestDTO)
//   - logo: optional image file (png/jpg/jpeg/webp)
func CreateQuoteRequest(cat *catalog.Catalog, submitter *submission.Submitter, logoValidator *utils.FileValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		dataStr := c.PostForm("data")
		if dataStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing data field"})
			return
		}

		var body dto.CreateQuoteRequestDTO
		if err := json.Unmarshal([]byte(dataStr), &body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid data json", "details": err.Error()})
			return
		}

		contact := submission.ContactInfo{
			Name:        strings.TrimSpace(body.Name),
			Email:       strings.TrimSpace(body.Email),
			Domain:      strings.TrimSpace(body.Domain),
			Description: strings.TrimSpace(body.Description),
			References:  body.WebsiteReferences,
		}

		breakdown := pricing.ComputeBreakdown(cat, body.Selection.ToSelection())

		var asset *submission.Asset
		fh, errFile := c.FormFile("logo")
		if errFile == nil && fh != nil {
			if _, err := logoValidator.ValidateFile(fh); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			file, err := fh.Open()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read logo file"})
				return
			}
			defer file.Close()
			asset = &submission.Asset{
				FileName: fh.Filename,
				Size:     fh.Size,
				Content:  file,
			}
		}

		result, err := submitter.Submit(ctx, contact, breakdown, asset)
		if err != nil {
			status, payload := submissionErrorResponse(err)
			c.JSON(status, payload)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"reference":   result.Reference,
			"logoUrl":     result.LogoURL,
			"summary":     result.Summary,
			"submittedAt": result.SubmittedAt,
			"message":     "Your quote request has been submitted. We will get back to you within 24 hours.",
		})
	}
}

func submissionErrorResponse(err error) (int, gin.H) {
	var vErr *submission.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, gin.H{"error": vErr.Reason, "field": vErr.Field}
	}

	var sizeErr *submission.AssetTooLargeError
	if errors.As(err, &sizeErr) {
		return http.StatusRequestEntityTooLarge, gin.H{"error": sizeErr.Error()}
	}

	var uploadErr *submission.AssetUploadError
	if errors.As(err, &uploadErr) {
		return http.StatusBadGateway, gin.H{"error": "logo upload failed, please try again"}
	}

	var relayErr *submission.FormRelayError
	if errors.As(err, &relayErr) {
		return http.StatusBadGateway, gin.H{"error": "quote submission failed, please try again"}
	}

	if errors.Is(err, submission.ErrInFlight) {
		return http.StatusConflict, gin.H{"error": err.Error()}
	}

	return http.StatusInternalServerError, gin.H{"error": err.Error()}
}
