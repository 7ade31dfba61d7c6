package models

// BlogPost represents a published or draft blog entry
type BlogPost struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Slug    string   `json:"slug"`
	Content string   `json:"content"` // HTML/Markdown
	Excerpt string   `json:"excerpt"`
	Image   string   `json:"image"`
	Tags    []string `json:"tags"`
	Date    string   `json:"date"` // ISO-8601 creation timestamp, immutable
	Author  string   `json:"author"`
}

// PostDraft is the caller-supplied shape for creating or updating a post.
// A non-empty ID upserts; an empty ID creates.
type PostDraft struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Excerpt string   `json:"excerpt"`
	Image   string   `json:"image"`
	Tags    []string `json:"tags"`
	Author  string   `json:"author"`
}
