package gallery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"photocapture/internal/dto"
	"photocapture/internal/encoder"
)

// UploadFileName is the fixed name captured photos are uploaded under.
const UploadFileName = "photo.jpg"

const (
	photosPath = "/api/Photos"
	deletePath = "/api/Photos/delete/"
)

// StatusError is returned when the photo store answers with a non-2xx status.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
}

// Client talks to the remote photo store. Requests are never retried and
// carry no timeout beyond what the caller's context and http.Client impose.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the store at baseURL. A nil httpClient
// means http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// List fetches every stored photo record in server order.
func (c *Client) List(ctx context.Context) ([]dto.PhotoRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+photosPath, nil)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus("list photos", resp); err != nil {
		return nil, err
	}

	var records []dto.PhotoRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("list photos: decode response: %w", err)
	}
	return records, nil
}

// Upload posts file as multipart form fields fileData and fileName.
func (c *Client) Upload(ctx context.Context, file *encoder.File) error {
	body, contentType, err := multipartBody(file)
	if err != nil {
		return fmt.Errorf("upload photo: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+photosPath, body)
	if err != nil {
		return fmt.Errorf("upload photo: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	return c.do("upload photo", req)
}

// Delete asks the store to remove the photo with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	target := c.baseURL + deletePath + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, nil)
	if err != nil {
		return fmt.Errorf("delete photo %s: %w", id, err)
	}

	return c.do("delete photo "+id, req)
}

func (c *Client) do(op string, req *http.Request) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(op, resp); err != nil {
		return err
	}
	// The body is unused, drain it so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func checkStatus(op string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(snippet)),
	}
}

// multipartBody builds the upload form. The file part carries the file's
// own media type rather than application/octet-stream.
func multipartBody(file *encoder.File) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="fileData"; filename="%s"`, escapeQuotes(file.Name)))
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("fileName", file.Name); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
