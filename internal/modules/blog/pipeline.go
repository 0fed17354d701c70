package blog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mission77/core/internal/models"
	"github.com/mission77/core/internal/modules/processing/markdown"
)

const contentExt = ".mdx"

// Service reads markdown-with-frontmatter articles from a content directory.
// Every call re-reads from disk; the HTTP cache layer absorbs repeat reads.
type Service struct {
	dir string
	log *zap.Logger
}

func NewService(contentDir string, log *zap.Logger) *Service {
	return &Service{dir: contentDir, log: log}
}

// ListPosts returns metadata for every article, sorted by date descending
// under string comparison. A missing directory yields an empty list.
func (s *Service) ListPosts() []models.PostMeta {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("read content directory failed", zap.String("dir", s.dir), zap.Error(err))
		}
		return []models.PostMeta{}
	}

	posts := make([]models.PostMeta, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), contentExt) {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), contentExt)
		post := s.readPost(slug)
		if post == nil {
			continue
		}
		posts = append(posts, post.PostMeta)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
	return posts
}

// ListSlugs enumerates article slugs for path generation.
func (s *Service) ListSlugs() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return []string{}
	}

	slugs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), contentExt) {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(entry.Name(), contentExt))
	}
	return slugs
}

// GetPost reads a single article with its rendered body. Returns nil, never
// an error, when the file is absent or unreadable.
func (s *Service) GetPost(slug string) *models.Post {
	post := s.readPost(slug)
	if post == nil {
		return nil
	}
	post.HTML = markdown.Render(post.Content)
	return post
}

// PostsByDistrict filters the listing by the frontmatter districtId.
func (s *Service) PostsByDistrict(districtID string) []models.PostMeta {
	all := s.ListPosts()
	out := make([]models.PostMeta, 0, len(all))
	for _, p := range all {
		if p.DistrictID == districtID {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) readPost(slug string) *models.Post {
	if strings.ContainsAny(slug, `/\`) || slug == "" {
		return nil
	}

	path := filepath.Join(s.dir, slug+contentExt)
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("read article failed", zap.String("slug", slug), zap.Error(err))
		}
		return nil
	}

	meta, body, err := parseFrontmatter(raw)
	if err != nil {
		s.log.Warn("parse frontmatter failed", zap.String("slug", slug), zap.Error(err))
		return nil
	}
	meta.Slug = slug

	return &models.Post{PostMeta: meta, Content: body}
}

// parseFrontmatter splits a leading "---" delimited YAML block from the
// markdown body and applies field defaults.
func parseFrontmatter(raw []byte) (models.PostMeta, string, error) {
	meta := models.PostMeta{}
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")

	body := text
	if strings.HasPrefix(text, "---\n") {
		rest := text[len("---\n"):]
		if idx := strings.Index(rest, "\n---"); idx >= 0 {
			block := rest[:idx]
			body = rest[idx+len("\n---"):]
			body = strings.TrimPrefix(body, "\n")
			if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
				return models.PostMeta{}, "", err
			}
		}
	}

	if meta.Title == "" {
		meta.Title = "Untitled"
	}
	if meta.Author == "" {
		meta.Author = "Anonymous"
	}
	if meta.Tags == nil {
		meta.Tags = []string{}
	}
	return meta, body, nil
}
