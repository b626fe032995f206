// Package storage uploads user media to Cloudinary.
package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

var (
	// ErrNotConfigured is returned when Cloudinary credentials are missing.
	ErrNotConfigured = errors.New("image upload is not configured")
	// ErrInvalidImage is returned for anything that is not a base64 image data URL.
	ErrInvalidImage = errors.New("dataUrl must be a base64 encoded image")
)

// Uploader stores an image and returns its public URL.
type Uploader interface {
	UploadImage(ctx context.Context, dataURL string) (string, error)
}

// CloudinaryConfig holds signed-upload credentials.
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
	// BaseURL overrides the API root, used by tests.
	BaseURL string
}

// Cloudinary performs signed image uploads over the REST API.
type Cloudinary struct {
	cfg    CloudinaryConfig
	client *http.Client
	now    func() time.Time
}

// NewCloudinary returns an uploader. A nil client uses a 30 second timeout.
func NewCloudinary(cfg CloudinaryConfig, client *http.Client) *Cloudinary {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Cloudinary{cfg: cfg, client: client, now: time.Now}
}

func (c *Cloudinary) configured() bool {
	return c.cfg.CloudName != "" && c.cfg.APIKey != "" && c.cfg.APISecret != ""
}

// UploadImage uploads dataURL ("data:image/<type>;base64,<payload>") into the
// configured folder and returns the secure URL.
func (c *Cloudinary) UploadImage(ctx context.Context, dataURL string) (string, error) {
	if !c.configured() {
		return "", ErrNotConfigured
	}
	if !isImageDataURL(dataURL) {
		return "", ErrInvalidImage
	}

	params := map[string]string{
		"timestamp": strconv.FormatInt(c.now().Unix(), 10),
	}
	if c.cfg.Folder != "" {
		params["folder"] = c.cfg.Folder
	}

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	form.Set("file", dataURL)
	form.Set("api_key", c.cfg.APIKey)
	form.Set("signature", sign(params, c.cfg.APISecret))

	endpoint := fmt.Sprintf("%s/%s/image/upload", strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read upload response: %w", err)
	}

	var out struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
		Error     struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode upload response (status %d): %w", res.StatusCode, err)
	}
	if res.StatusCode != http.StatusOK || out.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload failed with status %d: %s", res.StatusCode, out.Error.Message)
	}

	if out.SecureURL != "" {
		return out.SecureURL, nil
	}
	if out.URL != "" {
		return out.URL, nil
	}
	return "", errors.New("cloudinary returned no url")
}

// sign computes the upload signature: the sorted "k=v" pairs joined by "&",
// followed by the secret, hashed with SHA-1.
func sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + params[k]
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}

func isImageDataURL(s string) bool {
	header, payload, ok := strings.Cut(s, ",")
	return ok && payload != "" &&
		strings.HasPrefix(header, "data:image/") &&
		strings.HasSuffix(header, ";base64")
}
