package github

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v60/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/globmatch/pkg/config"
	"github.com/walteh/globmatch/pkg/ruleset"
)

// newFakeAPI returns a provider wired to an httptest server that
// serves the given file content for one contents-API path.
func newFakeAPI(t *testing.T, wantPath string, content string) *Provider {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc(wantPath, func(w http.ResponseWriter, r *http.Request) {
		encoded := base64.StdEncoding.EncodeToString([]byte(content))
		fmt.Fprintf(w, `{
			"type": "file",
			"encoding": "base64",
			"name": "rules",
			"content": %q
		}`, encoded)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := github.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base

	return NewWithClient(client)
}

func TestProvider_GetRuleFile(t *testing.T) {
	p := newFakeAPI(t, "/repos/github/gitignore/contents/Go.gitignore", "*.exe\n!keep.exe\n")

	rc, err := p.GetRuleFile(context.Background(), config.RemoteRuleArgs{
		Provider: "github",
		Repo:     "github.com/github/gitignore",
		Path:     "Go.gitignore",
		Ref:      "main",
	})
	require.NoError(t, err)
	defer rc.Close()

	rules, err := ruleset.ParseRules(rc)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, ruleset.Rule{Pattern: "*.exe", Action: ruleset.ActionExclude}, rules[0])
	assert.Equal(t, ruleset.Rule{Pattern: "keep.exe", Action: ruleset.ActionInclude}, rules[1])
}

func TestProvider_GetRuleFile_NotFound(t *testing.T) {
	p := newFakeAPI(t, "/repos/github/gitignore/contents/Go.gitignore", "")

	_, err := p.GetRuleFile(context.Background(), config.RemoteRuleArgs{
		Repo: "github.com/github/gitignore",
		Path: "Missing.gitignore",
		Ref:  "main",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "getting file content")
}

func TestProvider_ParseRepo(t *testing.T) {
	p := &Provider{}

	tests := []struct {
		name      string
		repo      string
		wantOwner string
		wantName  string
		wantErr   bool
	}{
		{
			name:      "full_url",
			repo:      "github.com/github/gitignore",
			wantOwner: "github",
			wantName:  "gitignore",
		},
		{
			name:      "owner_slash_name",
			repo:      "github/gitignore",
			wantOwner: "github",
			wantName:  "gitignore",
		},
		{
			name:      "trailing_slash",
			repo:      "github.com/github/gitignore/",
			wantOwner: "github",
			wantName:  "gitignore",
		},
		{
			name:    "bare_name",
			repo:    "gitignore",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, name, err := p.parseRepo(tt.repo)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestProvider_Name(t *testing.T) {
	assert.Equal(t, "github", (&Provider{}).Name())
}
