package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/adapter/session"
	"resume-builder/internal/form"
	"resume-builder/internal/model"
	"resume-builder/internal/preview"
)

type stubPrinter struct {
	pdf []byte
	err error
	got model.Resume
}

func (s *stubPrinter) Print(ctx context.Context, sessionID string, rec model.Resume) ([]byte, error) {
	s.got = rec
	return s.pdf, s.err
}

// client carries the session cookie between requests.
type client struct {
	t      *testing.T
	app    *fiber.App
	cookie *http.Cookie
}

func newClient(t *testing.T, printer httpadapter.Printer) *client {
	t.Helper()
	store := session.NewStore(time.Minute, func() *form.Session { return form.NewSession(form.Options{}) })
	renderer, err := preview.NewRenderer(nil)
	require.NoError(t, err)
	h, err := httpadapter.NewHandler(store, renderer, printer, httpadapter.Config{})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(httpadapter.Observability())
	h.Register(app)
	return &client{t: t, app: app}
}

func (c *client) do(req *http.Request) *http.Response {
	c.t.Helper()
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)
	for _, ck := range resp.Cookies() {
		if ck.Name == "resume_session" {
			c.cookie = ck
		}
	}
	return resp
}

func (c *client) json(method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	c.t.Helper()
	var r io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	resp := c.do(req)

	var out map[string]interface{}
	b, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	if len(b) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(c.t, json.Unmarshal(b, &out))
	}
	return resp, out
}

func (c *client) postForm(values url.Values) (*http.Response, string) {
	c.t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/form", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := c.do(req)
	b, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp, string(b)
}

func (c *client) get(path string) (*http.Response, string) {
	c.t.Helper()
	resp := c.do(httptest.NewRequest(http.MethodGet, path, http.NoBody))
	b, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp, string(b)
}

func requiredFields() url.Values {
	return url.Values{
		"name":         {"Alice"},
		"contact":      {"+1 555 0100"},
		"address":      {"1 Main St"},
		"email":        {"alice@example.com"},
		"objective":    {"Build things"},
		"experience.0": {"Engineer"},
		"education.0":  {"BSc"},
	}
}

func pngFile(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func multipartBody(t *testing.T, fields url.Values, filename string, file []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, vs := range fields {
		for _, v := range vs {
			require.NoError(t, w.WriteField(k, v))
		}
	}
	if file != nil {
		fw, err := w.CreateFormFile("photo", filename)
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestHealth(t *testing.T) {
	c := newClient(t, &stubPrinter{})

	resp, body := c.json(http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Nil(t, c.cookie)
}

func TestIndex_RendersEmptyForm(t *testing.T) {
	c := newClient(t, &stubPrinter{})

	resp, html := c.get("/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, c.cookie)
	assert.Contains(t, html, `name="experience.0"`)
	assert.Contains(t, html, `name="projects.0.link"`)
	assert.NotContains(t, html, `value="remove:experience:0"`)
}

func TestPostForm_MissingFieldsShowErrors(t *testing.T) {
	c := newClient(t, &stubPrinter{})
	values := requiredFields()
	values.Set("name", "")
	values.Set("email", " ")
	values.Set("action", "submit")

	resp, html := c.postForm(values)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, html, "Full Name is required")
	assert.Contains(t, html, "Email ID is required")
	assert.NotContains(t, html, "Objective is required")

	_, draft := c.json(http.MethodGet, "/api/draft", nil)
	assert.Equal(t, "editing", draft["state"])
}

func TestPostForm_AddAndRemoveEntries(t *testing.T) {
	c := newClient(t, &stubPrinter{})

	values := url.Values{"experience.0": {"Engineer"}, "action": {"add:experience"}}
	resp, html := c.postForm(values)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, html, `name="experience.1"`)
	assert.Contains(t, html, `value="remove:experience:1"`)

	values = url.Values{"experience.0": {"Engineer"}, "experience.1": {"Lead"}, "action": {"remove:experience:0"}}
	_, html = c.postForm(values)
	assert.Contains(t, html, `value="Lead"`)
	assert.NotContains(t, html, `name="experience.1"`)

	// the last entry stays
	_, html = c.postForm(url.Values{"action": {"remove:experience:0"}})
	assert.Contains(t, html, `name="experience.0"`)

	resp, _ = c.postForm(url.Values{"action": {"add:skills"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestScenario_SubmitPreviewPrintBack(t *testing.T) {
	printer := &stubPrinter{pdf: []byte("%PDF-1.7")}
	c := newClient(t, printer)

	values := requiredFields()
	values.Set("action", "submit")
	body, ctype := multipartBody(t, values, "me.png", pngFile(t))
	req := httptest.NewRequest(http.MethodPost, "/form", body)
	req.Header.Set("Content-Type", ctype)
	resp := c.do(req)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	_, html := c.get("/")
	assert.Contains(t, html, "<li>Engineer</li>")
	assert.Contains(t, html, `src="data:image/png;base64,`)
	assert.Contains(t, html, `action="/back"`)

	resp, pdf := c.get("/print")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, "%PDF-1.7", pdf)
	assert.Equal(t, "Alice", printer.got.Name)

	req = httptest.NewRequest(http.MethodPost, "/back", http.NoBody)
	resp = c.do(req)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	_, html = c.get("/")
	assert.Contains(t, html, `value="Engineer"`)
	assert.Contains(t, html, "photo-preview")
}

func TestPostForm_CorruptPhotoBlocksSubmit(t *testing.T) {
	c := newClient(t, &stubPrinter{pdf: []byte("%PDF-1.7")})

	values := requiredFields()
	values.Set("action", "submit")
	body, ctype := multipartBody(t, values, "me.png", []byte("definitely not an image"))
	req := httptest.NewRequest(http.MethodPost, "/form", body)
	req.Header.Set("Content-Type", ctype)
	resp := c.do(req)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	html, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(html), "could not be decoded")
	assert.Contains(t, string(html), `value="Alice"`)

	_, draft := c.json(http.MethodGet, "/api/draft", nil)
	assert.Equal(t, "editing", draft["state"])
	photo, _ := draft["photo"].(map[string]interface{})
	assert.Equal(t, "failed", photo["state"])
}

func TestPrint_Failures(t *testing.T) {
	c := newClient(t, &stubPrinter{err: errors.New("chrome missing")})

	resp, _ := c.json(http.MethodGet, "/api/print", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	_, _ = c.json(http.MethodPut, "/api/draft", map[string]interface{}{
		"name": "Alice", "contact": "1", "address": "a", "email": "a@b.c", "objective": "o",
		"experience": []string{"Engineer"}, "education": []string{"BSc"},
	})
	resp, _ = c.json(http.MethodPost, "/api/submit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := c.json(http.MethodGet, "/api/print", nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "print failed", body["error"])
}
