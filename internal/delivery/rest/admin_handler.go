package rest

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *Handler) adminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "password is required")
		return
	}

	token, err := h.admin.Login(c.Request.Context(), req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) adminLogout(c *gin.Context) {
	if err := h.admin.Logout(c.Request.Context(), bearerToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) catalogInfo(c *gin.Context) {
	if _, err := h.admin.Authorize(c.Request.Context(), bearerToken(c)); err != nil {
		respondError(c, err)
		return
	}

	info, err := h.admin.CatalogInfo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *Handler) uploadCatalog(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "multipart field \"file\" is required")
		return
	}
	if fileHeader.Size > maxUploadSize {
		badRequest(c, "file must not exceed 5MB")
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		badRequest(c, "only Excel files (.xlsx, .xls) are accepted")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadSize+1))
	if err != nil {
		respondError(c, err)
		return
	}

	count, err := h.admin.UploadCatalog(c.Request.Context(), bearerToken(c), data, fileHeader.Filename)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": count, "file": fileHeader.Filename})
}

func (h *Handler) exportOrders(c *gin.Context) {
	data, err := h.admin.ExportOrders(c.Request.Context(), bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("20060102-1504"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *Handler) adminActions(c *gin.Context) {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		badRequest(c, "invalid limit")
		return
	}

	actions, err := h.admin.Actions(c.Request.Context(), bearerToken(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"actions": actions})
}

// requireAdmin admin tokenisiz so'rovlarni to'xtatadi
func (h *Handler) requireAdmin(c *gin.Context) {
	if _, err := h.admin.Authorize(c.Request.Context(), bearerToken(c)); err != nil {
		respondError(c, err)
		c.Abort()
		return
	}
	c.Next()
}
