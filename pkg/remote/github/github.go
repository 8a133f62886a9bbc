// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package github

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"
	"github.com/walteh/globmatch/pkg/config"
	"github.com/walteh/globmatch/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

func init() {
	remote.Register("github", New)
}

// Provider fetches rule files from GitHub repositories.
type Provider struct {
	client *github.Client
}

// New creates a GitHub provider. GITHUB_TOKEN is used when set so that
// private repositories and higher rate limits work; anonymous access is
// fine for public rule files.
func New(ctx context.Context) (remote.Provider, error) {
	client := github.NewClient(nil)
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = client.WithAuthToken(token)
	}

	return &Provider{client: client}, nil
}

// NewWithClient creates a provider around an existing GitHub client.
// Used by tests to point the provider at a fake API server.
func NewWithClient(client *github.Client) *Provider {
	return &Provider{client: client}
}

// Name implements remote.Provider.
func (p *Provider) Name() string {
	return "github"
}

// parseRepo splits a repository reference like
// "github.com/github/gitignore" into owner and name.
func (p *Provider) parseRepo(repo string) (owner, name string, err error) {
	parts := strings.Split(strings.TrimSuffix(repo, "/"), "/")
	if len(parts) < 2 {
		return "", "", errors.Errorf("invalid repository format: %s", repo)
	}

	return parts[len(parts)-2], parts[len(parts)-1], nil
}

// GetRuleFile implements remote.Provider.
func (p *Provider) GetRuleFile(ctx context.Context, args config.RemoteRuleArgs) (io.ReadCloser, error) {
	logger := zerolog.Ctx(ctx)

	owner, name, err := p.parseRepo(args.Repo)
	if err != nil {
		return nil, errors.Errorf("parsing repo: %w", err)
	}

	content, _, _, err := p.client.Repositories.GetContents(ctx, owner, name, args.Path, &github.RepositoryContentGetOptions{
		Ref: args.Ref,
	})
	if err != nil {
		return nil, errors.Errorf("getting file content: %w", err)
	}

	if content == nil {
		return nil, errors.Errorf("%s is a directory, not a rule file", args.Path)
	}

	data, err := content.GetContent()
	if err != nil {
		return nil, errors.Errorf("decoding content: %w", err)
	}

	logger.Debug().
		Str("repo", args.Repo).
		Str("path", args.Path).
		Int("bytes", len(data)).
		Msg("fetched rule file")

	return io.NopCloser(strings.NewReader(data)), nil
}
