package http

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"resume-builder/internal/adapter/session"
	"resume-builder/internal/form"
	"resume-builder/internal/model"
	"resume-builder/internal/preview"
	"resume-builder/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	localSession   = "session"
	localSessionID = "session_id"
)

// Printer prints a submitted record to PDF.
type Printer interface {
	Print(ctx context.Context, sessionID string, rec model.Resume) ([]byte, error)
}

// Config holds handler settings.
type Config struct {
	CookieName    string
	CookieSecure  bool
	MaxPhotoBytes int64
}

type Handler struct {
	store    *session.Store
	renderer *preview.Renderer
	printer  Printer
	pages    *template.Template
	cfg      Config
}

func NewHandler(store *session.Store, renderer *preview.Renderer, printer Printer, cfg Config) (*Handler, error) {
	pages, err := template.ParseFS(templateFS, "templates/form.html")
	if err != nil {
		return nil, err
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "resume_session"
	}
	if cfg.MaxPhotoBytes <= 0 {
		cfg.MaxPhotoBytes = form.DefaultMaxPhotoBytes
	}
	return &Handler{store: store, renderer: renderer, printer: printer, pages: pages, cfg: cfg}, nil
}

// Register mounts every route on app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/health", h.Health)

	app.Get("/", h.withSession, h.Index)
	app.Post("/form", h.withSession, h.PostForm)
	app.Post("/back", h.withSession, h.PostBack)
	app.Get("/print", h.withSession, h.Print)

	api := app.Group("/api", h.withSession)
	api.Get("/draft", h.GetDraft)
	api.Patch("/draft", h.UpdateField)
	api.Put("/draft", h.ReplaceDraft)
	api.Post("/draft/photo", h.UploadPhoto)
	api.Post("/draft/:list", h.AddEntry)
	api.Delete("/draft/:list/:index", h.RemoveEntry)
	api.Post("/submit", h.Submit)
	api.Get("/preview", h.Preview)
	api.Post("/back", h.Back)
	api.Get("/print", h.Print)
}

// withSession resolves the caller's form session from its cookie, creating
// one when missing or expired.
func (h *Handler) withSession(c *fiber.Ctx) error {
	id, sess := h.store.GetOrCreate(c.Cookies(h.cfg.CookieName))
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    id,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Locals(localSession, sess)
	c.Locals(localSessionID, id)
	return c.Next()
}

func sessionOf(c *fiber.Ctx) (*form.Session, string) {
	sess, _ := c.Locals(localSession).(*form.Session)
	id, _ := c.Locals(localSessionID).(string)
	return sess, id
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "sessions": h.store.Len()})
}

// attachUpload reads an uploaded photo and waits for its decode.
func (h *Handler) attachUpload(ctx context.Context, sess *form.Session, fh *multipart.FileHeader) (form.PhotoResult, error) {
	f, err := fh.Open()
	if err != nil {
		return form.PhotoResult{}, err
	}
	defer f.Close()

	// one byte past the limit lets the decoder report the file as too large
	data, err := io.ReadAll(io.LimitReader(f, h.cfg.MaxPhotoBytes+1))
	if err != nil {
		return form.PhotoResult{}, err
	}

	done, err := sess.AttachPhoto(bytes.NewReader(data))
	if err != nil {
		return form.PhotoResult{}, err
	}
	select {
	case res := <-done:
		return res, nil
	case <-ctx.Done():
		return form.PhotoResult{}, ctx.Err()
	}
}

// Print streams the PDF of the submitted record.
func (h *Handler) Print(c *fiber.Ctx) error {
	sess, id := sessionOf(c)
	rec, ok := sess.Record()
	if !ok {
		return respondError(c, form.ErrWrongState)
	}

	pdf, err := h.printer.Print(c.UserContext(), id, rec)
	if err != nil {
		logger.LogError(err, "print failed", zap.String("session_id", id))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "print failed"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume.pdf"`)
	return c.Send(pdf)
}

// respondError maps domain errors onto HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	var verr *form.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation failed", "details": verr.Fields})
	case errors.Is(err, form.ErrUnsupportedImage), errors.Is(err, form.ErrImageTooLarge), errors.Is(err, form.ErrCorruptImage):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "invalid photo",
			"details": []form.FieldError{{Field: model.FieldPhoto, Message: err.Error()}},
		})
	case errors.Is(err, form.ErrWrongState), errors.Is(err, form.ErrLastEntry):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, form.ErrUnknownField), errors.Is(err, form.ErrUnknownList),
		errors.Is(err, form.ErrIndexOutOfRange), errors.Is(err, model.ErrSchema):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		logger.LogError(err, "unexpected handler error", zap.String("path", c.Path()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
