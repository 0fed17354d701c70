package blog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func writeArticle(t *testing.T, dir, slug, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, slug+".mdx"), []byte(content), 0o644); err != nil {
		t.Fatalf("write article: %v", err)
	}
}

func newTestPipeline(t *testing.T) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	return NewService(dir, zap.NewNop()), dir
}

func TestListPostsEmptyDirectory(t *testing.T) {
	svc, _ := newTestPipeline(t)
	if got := svc.ListPosts(); len(got) != 0 {
		t.Errorf("ListPosts() = %v, want empty", got)
	}
}

func TestListPostsMissingDirectory(t *testing.T) {
	svc := NewService(filepath.Join(t.TempDir(), "does-not-exist"), zap.NewNop())
	if got := svc.ListPosts(); got == nil || len(got) != 0 {
		t.Errorf("ListPosts() = %v, want empty non-nil", got)
	}
	if got := svc.ListSlugs(); got == nil || len(got) != 0 {
		t.Errorf("ListSlugs() = %v, want empty non-nil", got)
	}
}

func TestListPostsSortedByDateDescending(t *testing.T) {
	svc, dir := newTestPipeline(t)
	writeArticle(t, dir, "old", "---\ntitle: Old\ndate: \"2024-01-01\"\n---\nbody")
	writeArticle(t, dir, "new", "---\ntitle: New\ndate: \"2025-06-15\"\n---\nbody")
	writeArticle(t, dir, "mid", "---\ntitle: Mid\ndate: \"2024-12-31\"\n---\nbody")

	posts := svc.ListPosts()
	if len(posts) != 3 {
		t.Fatalf("len = %d, want 3", len(posts))
	}
	for i := 1; i < len(posts); i++ {
		if posts[i-1].Date < posts[i].Date {
			t.Errorf("posts out of order: %q before %q", posts[i-1].Date, posts[i].Date)
		}
	}
	if posts[0].Slug != "new" {
		t.Errorf("first post = %q, want new", posts[0].Slug)
	}
}

func TestFrontmatterDefaults(t *testing.T) {
	svc, dir := newTestPipeline(t)
	writeArticle(t, dir, "bare", "---\ndate: \"2025-01-01\"\n---\njust a body")

	post := svc.GetPost("bare")
	if post == nil {
		t.Fatal("GetPost(bare) = nil")
	}
	if post.Title != "Untitled" {
		t.Errorf("Title = %q, want Untitled", post.Title)
	}
	if post.Author != "Anonymous" {
		t.Errorf("Author = %q, want Anonymous", post.Author)
	}
	if post.Tags == nil || len(post.Tags) != 0 {
		t.Errorf("Tags = %v, want empty non-nil", post.Tags)
	}
}

func TestGetPostParsesFrontmatterAndBody(t *testing.T) {
	svc, dir := newTestPipeline(t)
	writeArticle(t, dir, "kaski-lakeside", `---
title: Lakeside Days
description: Three days around Phewa
date: "2025-03-10"
districtId: kaski
districtName: Kaski
author: Pratap
tags:
  - trek
  - lakes
---
# Morning

The lake was **still**.`)

	post := svc.GetPost("kaski-lakeside")
	if post == nil {
		t.Fatal("GetPost = nil")
	}
	if post.Title != "Lakeside Days" || post.DistrictID != "kaski" || post.Author != "Pratap" {
		t.Errorf("meta = %+v", post.PostMeta)
	}
	if len(post.Tags) != 2 {
		t.Errorf("Tags = %v, want 2 entries", post.Tags)
	}
	if !strings.Contains(post.Content, "# Morning") {
		t.Errorf("body missing: %q", post.Content)
	}
	if !strings.Contains(post.HTML, "<strong>still</strong>") {
		t.Errorf("rendered HTML missing: %q", post.HTML)
	}
}

func TestGetPostMissingSlug(t *testing.T) {
	svc, _ := newTestPipeline(t)
	if got := svc.GetPost("nonexistent-slug"); got != nil {
		t.Errorf("GetPost(nonexistent-slug) = %+v, want nil", got)
	}
}

func TestGetPostRejectsPathTraversal(t *testing.T) {
	svc, _ := newTestPipeline(t)
	if got := svc.GetPost("../etc/passwd"); got != nil {
		t.Errorf("GetPost with path separator = %+v, want nil", got)
	}
}

func TestPostsByDistrict(t *testing.T) {
	svc, dir := newTestPipeline(t)
	writeArticle(t, dir, "a", "---\ntitle: A\ndate: \"2025-01-01\"\ndistrictId: kaski\n---\nx")
	writeArticle(t, dir, "b", "---\ntitle: B\ndate: \"2025-02-01\"\ndistrictId: manang\n---\nx")
	writeArticle(t, dir, "c", "---\ntitle: C\ndate: \"2025-03-01\"\ndistrictId: kaski\n---\nx")

	posts := svc.PostsByDistrict("kaski")
	if len(posts) != 2 {
		t.Fatalf("len = %d, want 2", len(posts))
	}
	for _, p := range posts {
		if p.DistrictID != "kaski" {
			t.Errorf("post %q districtId = %q", p.Slug, p.DistrictID)
		}
	}
}

func TestListPostsIgnoresNonMDX(t *testing.T) {
	svc, dir := newTestPipeline(t)
	writeArticle(t, dir, "real", "---\ntitle: Real\ndate: \"2025-01-01\"\n---\nx")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644); err != nil {
		t.Fatal(err)
	}

	posts := svc.ListPosts()
	if len(posts) != 1 || posts[0].Slug != "real" {
		t.Errorf("posts = %v, want just real", posts)
	}
}
