package handler

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"readapi/internal/readability"
	"readapi/internal/service"
)

// downloadExpiry is how long pre-signed download URLs stay valid.
const downloadExpiry = 15 * time.Minute

// analyzeRequest is the body for the ad-hoc batch scoring endpoint.
type analyzeRequest struct {
	Documents []analyzeDocument `json:"documents"`
}

type analyzeDocument struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// analyzeItem carries either a score or a per-document error. Exactly one
// of the two fields is set.
type analyzeItem struct {
	Result *readability.Result `json:"result,omitempty"`
	Error  *errorEnvelope      `json:"error,omitempty"`
}

type analyzeResponse struct {
	Results []analyzeItem `json:"results"`
}

// HealthCheck reports DB connectivity.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness probe with no dependency checks.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListDocuments lists stored documents with limit & offset.
func ListDocuments(svc service.AnalysisService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limitStr := c.Query("limit", "10")
		offsetStr := c.Query("offset", "0")
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// UploadDocument accepts multipart/form-data (field name: file, optional
// field: title), stores the text, and returns the document with its score.
func UploadDocument(svc service.AnalysisService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		title := c.FormValue("title")
		if title == "" {
			title = fh.Filename
		}

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "text/plain"
		}

		doc, err := svc.Upload(c.UserContext(), title, f, ct)
		if err != nil {
			if errors.Is(err, readability.ErrNoSentences) {
				return writeError(c, fiber.StatusUnprocessableEntity, "EMPTY_DOCUMENT", "document has no sentences")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// GetDocument returns the stored metadata for one document.
func GetDocument(svc service.AnalysisService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(doc)
	}
}

// DeleteDocument removes the document; the readability record cascades.
func DeleteDocument(svc service.AnalysisService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetReadability returns the stored readability record for a document.
func GetReadability(svc service.AnalysisService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		res, err := svc.Result(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "readability result not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// ReanalyzeDocument re-reads the stored text and replaces the record.
func ReanalyzeDocument(svc service.AnalysisService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		res, err := svc.Reanalyze(c.UserContext(), id)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			case errors.Is(err, readability.ErrNoSentences):
				return writeError(c, fiber.StatusUnprocessableEntity, "EMPTY_DOCUMENT", "document has no sentences")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(res)
	}
}

// DownloadDocument returns a pre-signed URL for the raw document text.
func DownloadDocument(svc service.AnalysisService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		url, err := svc.DownloadURL(c.UserContext(), id, downloadExpiry)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"url": url, "expires_in": int(downloadExpiry.Seconds())})
	}
}

// AnalyzeBatch scores ad-hoc texts without storing anything. The response
// keeps input order; a document that fails gets an inline error while the
// rest still score.
func AnalyzeBatch(svc service.AnalysisService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req analyzeRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if len(req.Documents) == 0 {
			return writeError(c, fiber.StatusBadRequest, "DOCUMENTS_REQUIRED", "documents is required")
		}

		inputs := make([]readability.Input, len(req.Documents))
		for i, d := range req.Documents {
			inputs[i] = readability.Input{Title: d.Title, Text: d.Text}
		}

		outcomes := svc.Analyze(c.UserContext(), inputs)

		res := analyzeResponse{Results: make([]analyzeItem, len(outcomes))}
		for i, o := range outcomes {
			if o.Err != nil {
				code := "ANALYZE_ERROR"
				if errors.Is(o.Err, readability.ErrNoSentences) {
					code = "EMPTY_DOCUMENT"
				}
				res.Results[i] = analyzeItem{Error: &errorEnvelope{Code: code, Message: o.Err.Error()}}
				continue
			}
			res.Results[i] = analyzeItem{Result: o.Result}
		}
		return c.JSON(res)
	}
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay free of business logic; everything goes through the service.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.AnalysisService) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/analyze", AnalyzeBatch(svc))

	app.Get("/documents", ListDocuments(svc))
	app.Post("/documents", UploadDocument(svc))
	app.Get("/documents/:id", GetDocument(svc))
	app.Delete("/documents/:id", DeleteDocument(svc))
	app.Get("/documents/:id/readability", GetReadability(svc))
	app.Get("/documents/:id/download", DownloadDocument(svc))
	app.Post("/documents/:id/reanalyze", ReanalyzeDocument(svc))
}
