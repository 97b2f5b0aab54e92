package main

import (
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/collectivehq/platform_backend/utils"
)

type uploadSignRequest struct {
	FileName     string `json:"fileName"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
	CollectiveId int    `json:"collectiveId"`
	Purpose      string `json:"purpose"` // "receipt" or "avatar"
}

type uploadSignResponse struct {
	UploadURL string            `json:"uploadUrl"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers"`
	ObjectKey string            `json:"objectKey"`
	AccessURL string            `json:"accessUrl"`
	ExpiresAt string            `json:"expiresAt"`
}

const maxUploadSizeBytes int64 = 5 * 1024 * 1024

var uploadMimeTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

var uploadPurposes = map[string]string{
	"receipt": "expenses",
	"avatar":  "avatars",
}

// signUploadHandler issues a short-lived signed URL so the browser uploads
// receipts and avatars straight to the bucket instead of through the API.
func signUploadHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := utils.GetUsernameFromContext(c.Request.Context()); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req uploadSignRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		if req.FileName == "" || req.MimeType == "" || req.Size <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fileName, mimeType and size are required"})
			return
		}
		if req.Size > maxUploadSizeBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file size exceeds 5MB limit"})
			return
		}
		if !uploadMimeTypes[req.MimeType] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type"})
			return
		}
		folder, ok := uploadPurposes[strings.ToLower(strings.TrimSpace(req.Purpose))]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "purpose must be receipt or avatar"})
			return
		}
		if req.CollectiveId <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "collectiveId is required"})
			return
		}

		ext := strings.ToLower(path.Ext(req.FileName))
		objectKey := fmt.Sprintf("%d/%s/%s%s", req.CollectiveId, folder, uuid.NewString(), ext)

		signed, err := utils.SignUpload(c.Request.Context(), objectKey, req.MimeType, 15*time.Minute)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not sign upload: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, uploadSignResponse{
			UploadURL: signed.UploadURL,
			Method:    signed.Method,
			Headers:   signed.Headers,
			ObjectKey: signed.ObjectKey,
			AccessURL: utils.BuildObjectAccessURL(signed.ObjectKey),
			ExpiresAt: signed.ExpiresAt.Format(time.RFC3339),
		})
	}
}
