package http

import (
	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/form"
	"resume-builder/internal/model"
)

type draftResponse struct {
	State string           `json:"state"`
	Draft model.Resume     `json:"draft"`
	Photo form.PhotoStatus `json:"photo"`
}

type updateFieldReq struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (h *Handler) draftJSON(c *fiber.Ctx, sess *form.Session) error {
	draft, photo := sess.Draft()
	return c.JSON(draftResponse{State: sess.State().String(), Draft: draft, Photo: photo})
}

func (h *Handler) GetDraft(c *fiber.Ctx) error {
	sess, _ := sessionOf(c)
	return h.draftJSON(c, sess)
}

func (h *Handler) UpdateField(c *fiber.Ctx) error {
	sess, _ := sessionOf(c)
	var req updateFieldReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := sess.UpdateField(req.Name, req.Value); err != nil {
		return respondError(c, err)
	}
	return h.draftJSON(c, sess)
}

// ReplaceDraft swaps the whole draft for a schema-validated JSON document.
func (h *Handler) ReplaceDraft(c *fiber.Ctx) error {
	sess, _ := sessionOf(c)
	r, err := model.DecodeResume(c.Body())
	if err != nil {
		return respondError(c, err)
	}
	if err := sess.Replace(r); err != nil {
		return respondError(c, err)
	}
	return h.draftJSON(c, sess)
}

func (h *Handler) AddEntry(c *fiber.Ctx) error {
	sess, _ := sessionOf(c)
	if err := sess.AddEntry(c.Params("list")); err != nil {
		return respondError(c, err)
	}
	return h.draftJSON(c, sess)
}

func (h *Handler) RemoveEntry(c *fiber.Ctx) error {
	sess, _ := sessionOf(c)
	idx, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid index"})
	}
	if err := sess.RemoveEntry(c.Params("list"), idx); err != nil {
		return respondError(c, err)
	}
	return h.draftJSON(c, sess)
}

// UploadPhoto decodes the multipart "photo" file and answers once the
// decode has finished.
func (h *Handler) UploadPhoto(c *fiber.Ctx) error {
	sess, _ := sessionOf(c)
	fh, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "photo file is required"})
	}
	res, err := h.attachUpload(c.UserContext(), sess, fh)
	if err != nil {
		return respondError(c, err)
	}
	if res.Err != nil {
		return respondError(c, res.Err)
	}
	return h.draftJSON(c, sess)
}

func (h *Handler) Submit(c *fiber.Ctx) error {
	sess, _ := sessionOf(c)
	rec, err := sess.Submit()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"state": sess.State().String(), "record": rec})
}

// Preview returns the submitted record and its filtered sections.
func (h *Handler) Preview(c *fiber.Ctx) error {
	sess, _ := sessionOf(c)
	rec, ok := sess.Record()
	if !ok {
		return respondError(c, form.ErrWrongState)
	}
	return c.JSON(fiber.Map{"record": rec, "view": h.renderer.View(rec)})
}

func (h *Handler) Back(c *fiber.Ctx) error {
	sess, _ := sessionOf(c)
	if err := sess.Back(); err != nil {
		return respondError(c, err)
	}
	return h.draftJSON(c, sess)
}
