package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/framecheck/framecheck-go/internal/logging"
	"github.com/framecheck/framecheck-go/internal/models"
)

const (
	pathHealth  = "/"
	pathAnalyze = "/analyze-image/"
	pathSimilar = "/find-similar-photographers/"
	pathCrop    = "/suggest-crop/"
)

// HTTPClient talks to the analysis service over multipart HTTP + JSON.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the service at baseURL. A zero timeout
// means no client-side timeout; a hung request then stays outstanding until
// the caller's context expires.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathHealth, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.statusError(resp)
	}
	return nil
}

func (c *HTTPClient) AnalyzeImage(ctx context.Context, file models.SelectedFile) (*models.AnalysisResult, error) {
	var out models.AnalysisResult
	if err := c.postMultipart(ctx, pathAnalyze, "file", []models.SelectedFile{file}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) FindSimilar(ctx context.Context, files []models.SelectedFile) (*models.SimilarityResult, error) {
	var out models.SimilarityResult
	if err := c.postMultipart(ctx, pathSimilar, "files", files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SuggestCrop(ctx context.Context, file models.SelectedFile) (*models.CropResult, error) {
	var out models.CropResult
	if err := c.postMultipart(ctx, pathCrop, "file", []models.SelectedFile{file}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// postMultipart uploads files under the given form field and decodes the JSON
// response into out. All selected files travel in a single request.
func (c *HTTPClient) postMultipart(ctx context.Context, path, field string, files []models.SelectedFile, out any) error {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	for _, f := range files {
		part, err := w.CreatePart(fileHeader(field, f))
		if err != nil {
			return fmt.Errorf("building multipart body: %w", err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return fmt.Errorf("writing %s: %w", f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	c.log.Debug(ctx, "uploading", "path", path, "files", len(files))

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}

// fileHeader builds the part header carrying the file's declared media type.
// multipart.Writer.CreateFormFile would force application/octet-stream, and
// the service rejects parts that do not declare an image type.
func fileHeader(field string, f models.SelectedFile) textproto.MIMEHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, field, f.Name))
	h.Set("Content-Type", f.ContentType)
	return h
}

// statusError drains the response and maps it to a StatusError, preferring the
// service's JSON {"detail": ...} body when it parses.
func (c *HTTPClient) statusError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var payload struct {
		Detail string `json:"detail"`
	}
	detail := ""
	if err := json.Unmarshal(b, &payload); err == nil {
		detail = payload.Detail
	}

	return &StatusError{StatusCode: resp.StatusCode, Detail: detail}
}
