// Package github publishes exported themes as GitHub gists.
package github

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/cli/go-gh/v2/pkg/api"

	themeerr "github.com/kyleking/lazytheme/internal/errors"
)

// Requester is the subset of api.RESTClient the gist client uses.
type Requester interface {
	Request(method string, path string, body io.Reader) (*http.Response, error)
}

// Client wraps the GitHub REST API client.
type Client struct {
	rest Requester
}

// NewClient creates a client using the gh CLI's stored credentials.
func NewClient() (*Client, error) {
	rest, err := api.DefaultRESTClient()
	if err != nil {
		return nil, &themeerr.ShareError{
			Target:     "gist",
			Cause:      fmt.Errorf("failed to create REST client: %w", err),
			Suggestion: "run 'gh auth login' to authenticate",
		}
	}

	return NewClientWithRequester(rest), nil
}

// NewClientWithRequester creates a client over an existing requester.
func NewClientWithRequester(rest Requester) *Client {
	return &Client{rest: rest}
}

// GistFile is the content of one file in a gist.
type GistFile struct {
	Content string `json:"content"`
}

// GistRequest is the body of a create-gist call.
type GistRequest struct {
	Description string              `json:"description"`
	Public      bool                `json:"public"`
	Files       map[string]GistFile `json:"files"`
}

// Gist is the subset of the create-gist response lazytheme reads.
type Gist struct {
	ID      string `json:"id"`
	HTMLURL string `json:"html_url"`
}

// CreateGist publishes files as a new gist.
func (c *Client) CreateGist(req GistRequest) (*Gist, error) {
	if len(req.Files) == 0 {
		return nil, &themeerr.ShareError{Target: "gist", Cause: errors.New("no files to publish")}
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, &themeerr.ShareError{Target: "gist", Cause: fmt.Errorf("failed to encode request: %w", err)}
	}

	resp, err := c.rest.Request("POST", "gists", bytes.NewReader(payload))
	if err != nil {
		return nil, shareError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &themeerr.ShareError{Target: "gist", Cause: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode >= 300 {
		return nil, shareError(&api.HTTPError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))})
	}

	var gist Gist
	if err := json.Unmarshal(body, &gist); err != nil {
		return nil, &themeerr.ShareError{Target: "gist", Cause: fmt.Errorf("failed to parse gist: %w", err)}
	}
	if gist.HTMLURL == "" {
		return nil, &themeerr.ShareError{Target: "gist", Cause: errors.New("response has no html_url")}
	}

	return &gist, nil
}

// ShareTheme publishes a theme JSON and its palette dump as a secret gist.
func (c *Client) ShareTheme(name string, themeJSON, paletteYAML []byte) (*Gist, error) {
	slug := Slug(name)
	return c.CreateGist(GistRequest{
		Description: fmt.Sprintf("%s (lazytheme)", name),
		Public:      false,
		Files: map[string]GistFile{
			slug + "-color-theme.json": {Content: string(themeJSON)},
			slug + ".yml":              {Content: string(paletteYAML)},
		},
	})
}

func shareError(err error) error {
	shareErr := &themeerr.ShareError{Target: "gist", Cause: err}

	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusUnauthorized:
			shareErr.Suggestion = "run 'gh auth login' to authenticate"
		case http.StatusForbidden, http.StatusNotFound:
			shareErr.Suggestion = "run 'gh auth refresh -s gist' to grant the gist scope"
		}
	}

	return shareErr
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a theme name into a file name stem.
func Slug(name string) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		return "theme"
	}
	return slug
}
