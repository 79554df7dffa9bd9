// Package feed carries the upstream feed wire types and the server-side
// post-card renderer that mirrors the client template.
package feed

import (
	"encoding/json"
	"fmt"
	"io"
)

type Author struct {
	Username     string `json:"username"`
	ProfileImage string `json:"profile_image"`
}

type Post struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	Image        string `json:"image"`
	CreatedAt    string `json:"created_at"`
	Author       Author `json:"author"`
	LikeCount    int    `json:"like_count"`
	CommentCount int    `json:"comment_count"`
	Liked        bool   `json:"liked"`
}

type Page struct {
	Posts   []Post `json:"posts"`
	HasNext bool   `json:"has_next"`
	HasPrev bool   `json:"has_prev"`
	PageNum int    `json:"page"`
	Pages   int    `json:"pages"`
}

// DecodePage reads an /api/feed response body. Unknown fields are ignored:
// the upstream owns the shape and may grow it.
func DecodePage(r io.Reader) (Page, error) {
	var page Page
	if err := json.NewDecoder(r).Decode(&page); err != nil {
		return Page{}, fmt.Errorf("decode feed page: %w", err)
	}
	return page, nil
}
