package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"resume-builder/internal/form"
	"resume-builder/internal/preview"
	"resume-builder/pkg/logger"
)

var previewControls = &preview.Controls{PrintURL: "/print", BackURL: "/back"}

// Index shows the form while editing and the preview after a valid submit.
func (h *Handler) Index(c *fiber.Ctx) error {
	sess, _ := sessionOf(c)
	if rec, ok := sess.Record(); ok {
		c.Type("html", "utf-8")
		return h.renderer.Render(c, rec, previewControls)
	}
	return h.renderForm(c, sess, nil, fiber.StatusOK)
}

// PostForm applies a full form post and then runs the requested action:
// "submit" (the default), "add:<list>" or "remove:<list>:<index>".
func (h *Handler) PostForm(c *fiber.Ctx) error {
	sess, _ := sessionOf(c)
	if sess.State() == form.Previewing {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	values := formValues(c)
	for key, value := range values {
		if key == "action" {
			continue
		}
		if err := sess.UpdateField(key, value); err != nil {
			logger.Debug("ignoring form value", zap.String("key", key), zap.Error(err))
		}
	}

	if fh, err := c.FormFile("photo"); err == nil && fh.Size > 0 {
		res, err := h.attachUpload(c.UserContext(), sess, fh)
		if err != nil {
			return respondError(c, err)
		}
		// a rejected photo stops the action so the user sees why
		if res.Err != nil {
			return h.renderForm(c, sess, nil, fiber.StatusUnprocessableEntity)
		}
	}

	action := values["action"]
	switch {
	case action == "" || action == "submit":
		_, err := sess.Submit()
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			return h.renderForm(c, sess, verr.ByField(), fiber.StatusUnprocessableEntity)
		}
		if err != nil {
			return respondError(c, err)
		}
		return c.Redirect("/", fiber.StatusSeeOther)

	case strings.HasPrefix(action, "add:"):
		if err := sess.AddEntry(strings.TrimPrefix(action, "add:")); err != nil {
			return respondError(c, err)
		}

	case strings.HasPrefix(action, "remove:"):
		list, idx, ok := strings.Cut(strings.TrimPrefix(action, "remove:"), ":")
		n, convErr := strconv.Atoi(idx)
		if !ok || convErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid action"})
		}
		if err := sess.RemoveEntry(list, n); err != nil && !errors.Is(err, form.ErrLastEntry) {
			return respondError(c, err)
		}

	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid action"})
	}

	return h.renderForm(c, sess, nil, fiber.StatusOK)
}

// PostBack leaves the preview and returns to the form.
func (h *Handler) PostBack(c *fiber.Ctx) error {
	sess, _ := sessionOf(c)
	if err := sess.Back(); err != nil && !errors.Is(err, form.ErrWrongState) {
		return respondError(c, err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *Handler) renderForm(c *fiber.Ctx, sess *form.Session, errs map[string]string, status int) error {
	draft, photo := sess.Draft()
	c.Status(status)
	c.Type("html", "utf-8")
	return h.pages.ExecuteTemplate(c, "form", buildFormPage(sess, draft, photo, errs))
}

// formValues flattens urlencoded or multipart form fields, first value wins.
func formValues(c *fiber.Ctx) map[string]string {
	out := map[string]string{}
	if mf, err := c.MultipartForm(); err == nil {
		for k, v := range mf.Value {
			if len(v) > 0 {
				out[k] = v[0]
			}
		}
		return out
	}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		if _, seen := out[string(k)]; !seen {
			out[string(k)] = string(v)
		}
	})
	return out
}
