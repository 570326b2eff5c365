package handler

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"

	"renewal-server/internal/apierrors"
	"renewal-server/internal/imports/processor"
	"renewal-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.ImportProcessor
	logger    *observability.Logger
}

func New(processor processor.ImportProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ImportRequest is the JSON shape of an import body. CSV uploads arrive
// as a multipart "file" field instead.
type ImportRequest struct {
	Rows []map[string]string `json:"rows"`
}

// HandlePreviewImport handles POST /api/imports/preview
func (h *Handler) HandlePreviewImport(c *gin.Context) {
	ctx := c.Request.Context()

	rows, err := h.readRows(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	results, err := h.processor.Preview(ctx, rows)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": results})
}

// HandleCommitImport handles POST /api/imports/commit
func (h *Handler) HandleCommitImport(c *gin.Context) {
	ctx := c.Request.Context()

	rows, err := h.readRows(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	result, err := h.processor.Commit(ctx, rows)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// readRows accepts either a multipart CSV upload or a JSON body with a
// rows array, so the same endpoints back both the file-upload form and
// programmatic clients.
func (h *Handler) readRows(c *gin.Context) ([]map[string]string, error) {
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, _, err := c.Request.FormFile("file")
		if err != nil {
			return nil, apierrors.BadRequest(apierrors.CodeInvalidInput, "A CSV file is required")
		}
		defer file.Close()
		return h.rowsFromCSV(file)
	}

	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid import body")
	}
	return req.Rows, nil
}

// rowsFromCSV reads the upload into the raw row maps the reconciler
// expects, keyed by the file's own headers.
func (h *Handler) rowsFromCSV(file io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, apierrors.BadRequest(apierrors.CodeInvalidInput, "Failed to read CSV headers")
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apierrors.BadRequest(apierrors.CodeInvalidInput, fmt.Sprintf("Failed to read CSV row %d", len(rows)+1))
		}

		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
