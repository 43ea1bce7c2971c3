package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/bmowen/webquote-backend/catalog"
	"github.com/bmowen/webquote-backend/submission"
	"github.com/bmowen/webquote-backend/utils"
)

type fakeUploader struct {
	url   string
	err   error
	calls int
}

func (f *fakeUploader) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	io.Copy(io.Discard, file)
	return f.url, nil
}

type fakeRelay struct {
	err    error
	calls  int
	fields url.Values
}

func (f *fakeRelay) Submit(ctx context.Context, fields url.Values) error {
	f.calls++
	f.fields = fields
	return f.err
}

func newRequestRouter(uploader *fakeUploader, relay *fakeRelay) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cat := catalog.Default()
	submitter := submission.NewSubmitter(uploader, relay, zerolog.Nop())
	r := gin.New()
	r.POST("/quote-requests", CreateQuoteRequest(cat, submitter, utils.NewImageValidator()))
	return r
}

func multipartBody(t *testing.T, data string, logoName string, logoContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("data", data))
	if logoName != "" {
		part, err := mw.CreateFormFile("logo", logoName)
		require.NoError(t, err)
		_, err = part.Write(logoContent)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

const validRequestData = `{
	"name": "Ada Obi",
	"email": "ada@example.com",
	"domain": "adaobi.ng",
	"description": "Portfolio site",
	"websiteReferences": ["https://stripe.com"],
	"selection": {"websiteTypeId": "static", "addOnIds": ["chat"], "maintenancePlanId": "standard"}
}`

// 8-byte PNG signature followed by filler so MIME sniffing sees an image.
func pngBytes() []byte {
	sig := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	return append(sig, bytes.Repeat([]byte{0}, 64)...)
}

func TestCreateQuoteRequestWithoutLogo(t *testing.T) {
	uploader := &fakeUploader{}
	relay := &fakeRelay{}
	r := newRequestRouter(uploader, relay)

	body, contentType := multipartBody(t, validRequestData, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/quote-requests", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)
	require.Zero(t, uploader.calls)
	require.Equal(t, 1, relay.calls)
	require.Equal(t, "Static Website", relay.fields.Get("websiteType"))
	require.Equal(t, "₦225,000", relay.fields.Get("oneTimeCost"))

	var parsed struct {
		Reference string `json:"reference"`
		Summary   string `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &parsed))
	require.NotEmpty(t, parsed.Reference)
	require.Contains(t, parsed.Summary, "Total First Payment: ₦225,000")
}

func TestCreateQuoteRequestWithLogo(t *testing.T) {
	uploader := &fakeUploader{url: "https://res.example.com/logo.png"}
	relay := &fakeRelay{}
	r := newRequestRouter(uploader, relay)

	body, contentType := multipartBody(t, validRequestData, "logo.png", pngBytes())
	req := httptest.NewRequest(http.MethodPost, "/quote-requests", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)
	require.Equal(t, 1, uploader.calls)
	require.Equal(t, "https://res.example.com/logo.png", relay.fields.Get("logoUrl"))
}

func TestCreateQuoteRequestMissingData(t *testing.T) {
	r := newRequestRouter(&fakeUploader{}, &fakeRelay{})

	body, contentType := multipartBody(t, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/quote-requests", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateQuoteRequestInvalidEmail(t *testing.T) {
	uploader := &fakeUploader{}
	relay := &fakeRelay{}
	r := newRequestRouter(uploader, relay)

	data := `{"name": "Ada Obi", "email": "a@b", "selection": {"websiteTypeId": "static"}}`
	body, contentType := multipartBody(t, data, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/quote-requests", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Zero(t, relay.calls)

	var parsed struct {
		Field string `json:"field"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &parsed))
	require.Equal(t, "email", parsed.Field)
}

func TestCreateQuoteRequestRejectsNonImageLogo(t *testing.T) {
	uploader := &fakeUploader{}
	relay := &fakeRelay{}
	r := newRequestRouter(uploader, relay)

	body, contentType := multipartBody(t, validRequestData, "logo.txt", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/quote-requests", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Zero(t, uploader.calls)
	require.Zero(t, relay.calls)
}

func TestCreateQuoteRequestUploadFailure(t *testing.T) {
	uploader := &fakeUploader{err: errors.New("image host down")}
	relay := &fakeRelay{}
	r := newRequestRouter(uploader, relay)

	body, contentType := multipartBody(t, validRequestData, "logo.png", pngBytes())
	req := httptest.NewRequest(http.MethodPost, "/quote-requests", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadGateway, resp.Code)
	require.Zero(t, relay.calls, "relay must not be called after a failed upload")
}

func TestCreateQuoteRequestRelayFailure(t *testing.T) {
	uploader := &fakeUploader{}
	relay := &fakeRelay{err: errors.New("relay down")}
	r := newRequestRouter(uploader, relay)

	body, contentType := multipartBody(t, validRequestData, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/quote-requests", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadGateway, resp.Code)
}
