package github_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/cli/go-gh/v2/pkg/api"

	themeerr "github.com/kyleking/lazytheme/internal/errors"
	"github.com/kyleking/lazytheme/internal/github"
)

type fakeRequester struct {
	method string
	path   string
	body   []byte

	status   int
	response string
	err      error
}

func (f *fakeRequester) Request(method, path string, body io.Reader) (*http.Response, error) {
	f.method = method
	f.path = path
	if body != nil {
		f.body, _ = io.ReadAll(body)
	}
	if f.err != nil {
		return nil, f.err
	}
	status := f.status
	if status == 0 {
		status = http.StatusCreated
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(f.response)),
	}, nil
}

func TestClient_ShareTheme(t *testing.T) {
	fake := &fakeRequester{response: `{"id":"abc","html_url":"https://gist.github.com/u/abc"}`}
	client := github.NewClientWithRequester(fake)

	gist, err := client.ShareTheme("Ocean Breeze", []byte(`{"name":"Ocean Breeze"}`), []byte("name: Ocean Breeze\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gist.HTMLURL != "https://gist.github.com/u/abc" {
		t.Errorf("HTMLURL: got %q", gist.HTMLURL)
	}
	if fake.method != "POST" || fake.path != "gists" {
		t.Errorf("request: got %s %s, want POST gists", fake.method, fake.path)
	}

	var sent github.GistRequest
	if err := json.Unmarshal(fake.body, &sent); err != nil {
		t.Fatalf("failed to parse request body: %v", err)
	}
	if sent.Public {
		t.Error("themes should be shared as secret gists")
	}
	if _, ok := sent.Files["ocean-breeze-color-theme.json"]; !ok {
		t.Errorf("files: got %v", sent.Files)
	}
	if sent.Files["ocean-breeze.yml"].Content != "name: Ocean Breeze\n" {
		t.Errorf("yaml file: got %q", sent.Files["ocean-breeze.yml"].Content)
	}
}

func TestClient_CreateGist_Errors(t *testing.T) {
	tests := []struct {
		name           string
		fake           *fakeRequester
		wantSuggestion string
	}{
		{
			name:           "unauthorized",
			fake:           &fakeRequester{err: &api.HTTPError{StatusCode: http.StatusUnauthorized}},
			wantSuggestion: "run 'gh auth login' to authenticate",
		},
		{
			name:           "missing scope",
			fake:           &fakeRequester{status: http.StatusNotFound, response: "Not Found"},
			wantSuggestion: "run 'gh auth refresh -s gist' to grant the gist scope",
		},
		{
			name: "network",
			fake: &fakeRequester{err: errors.New("connection refused")},
		},
		{
			name: "bad json",
			fake: &fakeRequester{response: "{"},
		},
		{
			name: "no url",
			fake: &fakeRequester{response: `{"id":"x"}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := github.NewClientWithRequester(tt.fake)
			_, err := client.CreateGist(github.GistRequest{Files: map[string]github.GistFile{"a": {Content: "b"}}})

			var shareErr *themeerr.ShareError
			if !errors.As(err, &shareErr) {
				t.Fatalf("got %v, want ShareError", err)
			}
			if got := themeerr.GetSuggestion(err); got != tt.wantSuggestion {
				t.Errorf("suggestion: got %q, want %q", got, tt.wantSuggestion)
			}
		})
	}
}

func TestClient_CreateGist_NoFiles(t *testing.T) {
	fake := &fakeRequester{}
	_, err := github.NewClientWithRequester(fake).CreateGist(github.GistRequest{})
	if err == nil {
		t.Fatal("expected error for empty gist")
	}
	if fake.method != "" {
		t.Error("no request should be sent")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ocean Breeze", "ocean-breeze"},
		{"  --Dracula!! 2 ", "dracula-2"},
		{"", "theme"},
		{"***", "theme"},
	}

	for _, tt := range tests {
		if got := github.Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
