package models

// PostMeta is the frontmatter of a blog article. Absent fields take the
// documented defaults at parse time.
type PostMeta struct {
	Slug         string   `json:"slug"         yaml:"-"`
	Title        string   `json:"title"        yaml:"title"`
	Description  string   `json:"description"  yaml:"description"`
	Date         string   `json:"date"         yaml:"date"`
	DistrictID   string   `json:"districtId"   yaml:"districtId"`
	DistrictName string   `json:"districtName" yaml:"districtName"`
	CoverImage   string   `json:"coverImage,omitempty" yaml:"coverImage"`
	Tags         []string `json:"tags"         yaml:"tags"`
	Author       string   `json:"author"       yaml:"author"`
}

// Post is a full article: metadata plus the markdown body and its
// rendered HTML. List views carry PostMeta only.
type Post struct {
	PostMeta
	Content string `json:"content"`
	HTML    string `json:"html,omitempty"`
}
