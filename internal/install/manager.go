// Package install orchestrates the end-to-end flow: resolve a release,
// pick an asset, download it into the cache, and extract one executable
// into the install directory.
package install

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/johncf/ghi/internal/archive"
	"github.com/johncf/ghi/internal/github"
	"github.com/johncf/ghi/internal/prompt"
	"github.com/johncf/ghi/internal/rank"
)

// ReleaseClient resolves release metadata. *github.Client implements it;
// tests substitute a stub.
type ReleaseClient interface {
	LatestRelease(ctx context.Context, owner, repo string) (*github.Release, error)
	ReleaseByTag(ctx context.Context, owner, repo, tag string) (*github.Release, error)
}

// Chooser presents a numbered menu and returns the 0-based selection.
// *prompt.Prompter implements it.
type Chooser interface {
	Choose(label string, options []string) (int, error)
}

// Options describes one install request.
type Options struct {
	Owner      string
	Repo       string
	Tag        string // empty means the latest release
	OutputName string // empty means derive from the entry name
	InstallDir string
	Yes        bool // skip prompts, take the top-ranked candidates

	// Positive and Negative are the keyword sets driving asset ranking,
	// already merged with any user-configured extras.
	Positive []string
	Negative []string
}

// Manager runs install requests.
type Manager struct {
	client     ReleaseClient
	downloader *Downloader
	prompter   Chooser
	out        io.Writer
}

// NewManager creates a manager. Progress messages go to out, which should
// be stderr so stdout stays clean.
func NewManager(client ReleaseClient, downloader *Downloader, prompter Chooser, out io.Writer) *Manager {
	return &Manager{
		client:     client,
		downloader: downloader,
		prompter:   prompter,
		out:        out,
	}
}

// Run executes one install and returns the path of the installed
// executable.
func (m *Manager) Run(ctx context.Context, opts Options) (string, error) {
	release, err := m.resolveRelease(ctx, opts)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(m.out, "Release %s (%s)\n", release.TagName, release.PublishedAt.Format("2006-01-02"))

	asset, err := m.chooseAsset(release, opts)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(m.out, "Downloading %s (%s)\n", asset.Name, archive.FormatSize(asset.Size))
	path, err := m.downloader.Fetch(ctx, asset.DownloadURL, opts.Owner, opts.Repo, release.TagName, asset.Name)
	if err != nil {
		return "", err
	}

	arc, err := archive.Open(path)
	if err != nil {
		return "", err
	}

	entryName, outName, err := m.chooseEntry(arc, asset.Name, opts)
	if err != nil {
		return "", err
	}
	if opts.OutputName != "" {
		outName = opts.OutputName
	}

	dest := filepath.Join(opts.InstallDir, outName)
	if err := arc.Extract(entryName, dest); err != nil {
		return "", err
	}
	return dest, nil
}

func (m *Manager) resolveRelease(ctx context.Context, opts Options) (*github.Release, error) {
	if opts.Tag != "" {
		return m.client.ReleaseByTag(ctx, opts.Owner, opts.Repo, opts.Tag)
	}
	return m.client.LatestRelease(ctx, opts.Owner, opts.Repo)
}

// chooseAsset filters out checksum companions, ranks the remainder by the
// platform keywords, and either auto-picks the best match or asks.
func (m *Manager) chooseAsset(release *github.Release, opts Options) (*github.Asset, error) {
	assets := github.FilterChecksums(release.Assets)
	if len(assets) == 0 {
		return nil, fmt.Errorf("release %s of %s/%s: %w",
			release.TagName, opts.Owner, opts.Repo, prompt.ErrNoCandidates)
	}

	names := make([]string, len(assets))
	for i, asset := range assets {
		names[i] = asset.Name
	}
	order := rank.Rank(names, opts.Positive, opts.Negative)

	if opts.Yes {
		return &assets[order[0]], nil
	}

	options := make([]string, len(order))
	for i, idx := range order {
		options[i] = fmt.Sprintf("%s  %s", archive.FormatSizePadded(assets[idx].Size), assets[idx].Name)
	}
	sel, err := m.prompter.Choose("Assets", options)
	if err != nil {
		return nil, err
	}
	return &assets[order[sel]], nil
}

// chooseEntry picks the archive member to extract and a default output
// name. For raw compressed streams there is nothing to list; the member
// name is implied by the asset filename.
func (m *Manager) chooseEntry(arc archive.Archive, assetName string, opts Options) (entryName, outName string, err error) {
	entries, ok, err := arc.List()
	if err != nil {
		return "", "", err
	}
	if !ok {
		implied := archive.ImplicitEntryName(assetName)
		return "", implied, nil
	}
	if len(entries) == 0 {
		return "", "", fmt.Errorf("archive %s: %w", assetName, prompt.ErrNoCandidates)
	}

	// Entries arrive largest-first, so index 0 is the default pick.
	idx := 0
	if !opts.Yes {
		options := make([]string, len(entries))
		for i, entry := range entries {
			options[i] = entry.Display()
		}
		idx, err = m.prompter.Choose("Files", options)
		if err != nil {
			return "", "", err
		}
	}
	return entries[idx].Name, filepath.Base(entries[idx].Name), nil
}
