package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"time"

	errprocess "gigconnect_client/pkg/err"
	"gigconnect_client/pkg/logger"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// TokenSource 提供目前的 bearer credential，登出後回傳空字串
type TokenSource func() string

// Client is a thin JSON client over fasthttp for the marketplace REST API.
// One instance is shared per authenticated session.
type Client struct {
	baseURL string
	http    *fasthttp.Client
	timeout time.Duration
	token   TokenSource
}

// New create REST client
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &fasthttp.Client{},
		timeout: timeout,
	}
}

// SetTokenSource wire the session credential into every request
func (c *Client) SetTokenSource(ts TokenSource) {
	c.token = ts
}

// Get 取得 JSON 資源
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, fasthttp.MethodGet, path, "", nil, out)
}

// Post 送出 JSON body
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return errprocess.SetKind(errprocess.KindValidation, "encode request body", err)
	}
	return c.do(ctx, fasthttp.MethodPost, path, "application/json", b, out)
}

// Patch 送出 JSON body 更新單一資源
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return errprocess.SetKind(errprocess.KindValidation, "encode request body", err)
	}
	return c.do(ctx, fasthttp.MethodPatch, path, "application/json", b, out)
}

// PostMultipart 上傳單一檔案 (multipart/form-data)
func (c *Client) PostMultipart(ctx context.Context, path, field, fileName, mimeType string, data []byte, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, fileName))
	header.Set("Content-Type", mimeType)
	part, err := w.CreatePart(header)
	if err != nil {
		return errprocess.SetKind(errprocess.KindUpload, "build multipart body", err)
	}
	if _, err := part.Write(data); err != nil {
		return errprocess.SetKind(errprocess.KindUpload, "write multipart body", err)
	}
	if err := w.Close(); err != nil {
		return errprocess.SetKind(errprocess.KindUpload, "close multipart body", err)
	}

	return c.do(ctx, fasthttp.MethodPost, path, w.FormDataContentType(), buf.Bytes(), out)
}

// do 執行請求
//
// fasthttp has no context plumbing; cancellation is best-effort — a request
// begun before the view unmounts may still complete and its result is simply
// discarded by the caller.
func (c *Client) do(ctx context.Context, method, path, contentType string, body []byte, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return errprocess.SetKind(errprocess.KindFetch, "request cancelled", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	if contentType != "" {
		req.Header.SetContentType(contentType)
	}
	if c.token != nil {
		if t := c.token(); t != "" {
			req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+t)
		}
	}
	if body != nil {
		req.SetBody(body)
	}

	if err := c.http.DoTimeout(req, resp, c.timeout); err != nil {
		return errprocess.SetKind(errprocess.KindFetch, fmt.Sprintf("%s %s", method, path), err)
	}

	status := resp.StatusCode()
	if status >= fasthttp.StatusBadRequest {
		return c.statusError(method, path, status, resp.Body())
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return errprocess.SetKind(errprocess.KindFetch, fmt.Sprintf("decode %s %s response", method, path), err)
	}
	return nil
}

func (c *Client) statusError(method, path string, status int, body []byte) error {
	// 後端統一回 {"error": "..."}
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &payload)
	if payload.Error == "" {
		payload.Error = fasthttp.StatusMessage(status)
	}

	logger.Log.Warn("api request refused",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
	)

	kind := errprocess.KindFetch
	switch status {
	case fasthttp.StatusBadRequest:
		kind = errprocess.KindValidation
	case fasthttp.StatusUnauthorized, fasthttp.StatusForbidden:
		kind = errprocess.KindAuthorization
	}
	return errprocess.SetKind(kind, payload.Error, nil)
}
