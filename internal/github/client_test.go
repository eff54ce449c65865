package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const releaseJSON = `{
	"name": "v1.2.0",
	"tag_name": "v1.2.0",
	"published_at": "2026-03-14T09:00:00Z",
	"draft": false,
	"prerelease": false,
	"assets": [
		{"name": "foo-linux-x86_64.tar.gz", "size": 4194304,
		 "browser_download_url": "https://example.com/foo-linux-x86_64.tar.gz"},
		{"name": "foo-windows-x86_64.msi", "size": 6291456,
		 "browser_download_url": "https://example.com/foo-windows-x86_64.msi"},
		{"name": "foo-linux-x86_64.tar.gz.sha256", "size": 98,
		 "browser_download_url": "https://example.com/foo-linux-x86_64.tar.gz.sha256"}
	]
}`

func TestLatestRelease(t *testing.T) {
	var gotPath, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(releaseJSON)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	release, err := client.LatestRelease(context.Background(), "acme", "foo")
	if err != nil {
		t.Fatalf("LatestRelease: %v", err)
	}

	if gotPath != "/repos/acme/foo/releases/latest" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotAccept != "application/vnd.github.v3+json" {
		t.Errorf("Accept header = %q", gotAccept)
	}
	if release.TagName != "v1.2.0" {
		t.Errorf("TagName = %q, want v1.2.0", release.TagName)
	}
	if len(release.Assets) != 3 {
		t.Fatalf("got %d assets, want 3", len(release.Assets))
	}
	if release.Assets[0].DownloadURL != "https://example.com/foo-linux-x86_64.tar.gz" {
		t.Errorf("asset URL = %q", release.Assets[0].DownloadURL)
	}
	if release.Assets[1].Size != 6291456 {
		t.Errorf("asset size = %d, want 6291456", release.Assets[1].Size)
	}
}

func TestReleaseByTag(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if _, err := w.Write([]byte(releaseJSON)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	release, err := client.ReleaseByTag(context.Background(), "acme", "foo", "v1.2.0")
	if err != nil {
		t.Fatalf("ReleaseByTag: %v", err)
	}

	if gotPath != "/repos/acme/foo/releases/tags/v1.2.0" {
		t.Errorf("request path = %q", gotPath)
	}
	if release.Name != "v1.2.0" {
		t.Errorf("Name = %q, want v1.2.0", release.Name)
	}
}

func TestLatestRelease_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.LatestRelease(context.Background(), "acme", "nope")
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !strings.Contains(err.Error(), "no release found for acme/nope") {
		t.Errorf("error = %q, want friendly not-found message", err)
	}
}

func TestLatestRelease_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.LatestRelease(context.Background(), "acme", "foo")
	if err == nil {
		t.Fatal("expected error for 500")
	}
	if !strings.Contains(err.Error(), "status 500") {
		t.Errorf("error = %q, want status in message", err)
	}
}

func TestLatestRelease_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(releaseJSON)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClientWithBaseURL(server.URL)
	if _, err := client.LatestRelease(ctx, "acme", "foo"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestFilterChecksums(t *testing.T) {
	assets := []Asset{
		{Name: "foo-linux-x86_64.tar.gz"},
		{Name: "foo-windows-x86_64.msi"},
		{Name: "foo-linux-x86_64.tar.gz.sha256"},
		{Name: "foo-darwin-arm64.tar.gz.SHA512"},
		{Name: "checksums.txt.sha256"},
		{Name: "sha256sum"},
		{Name: "SHASUM"},
		{Name: "foo-consumer.tar.gz"},
	}

	got := FilterChecksums(assets)

	want := []string{
		"foo-linux-x86_64.tar.gz",
		"foo-windows-x86_64.msi",
		"foo-consumer.tar.gz",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d assets, want %d: %v", len(got), len(want), got)
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("filtered[%d] = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestFilterChecksums_Empty(t *testing.T) {
	if got := FilterChecksums(nil); got == nil || len(got) != 0 {
		t.Errorf("FilterChecksums(nil) = %v, want empty non-nil slice", got)
	}
}
