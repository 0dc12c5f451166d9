package model

// Post is a content record owned by the user identified by AuthorID.
// AuthorID is assigned at creation and never changes afterwards.
type Post struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Content   string `json:"content"`
	ShortText string `json:"shortText"`
	Image     string `json:"image"`
	Category  string `json:"category"`
	AuthorID  int64  `json:"authorId"`
}

// Clone returns a copy of the post.
func (p *Post) Clone() *Post {
	c := *p
	return &c
}

// PostPatch carries the optional fields of a partial post update. Nil fields
// are left untouched by the merge.
type PostPatch struct {
	Title     *string `json:"title"`
	Subtitle  *string `json:"subtitle"`
	Content   *string `json:"content"`
	ShortText *string `json:"shortText"`
	Image     *string `json:"image"`
	Category  *string `json:"category"`
}

// Apply merges the patch into the post. AuthorID and ID are not patchable.
func (pp *PostPatch) Apply(p *Post) {
	if pp.Title != nil {
		p.Title = *pp.Title
	}
	if pp.Subtitle != nil {
		p.Subtitle = *pp.Subtitle
	}
	if pp.Content != nil {
		p.Content = *pp.Content
	}
	if pp.ShortText != nil {
		p.ShortText = *pp.ShortText
	}
	if pp.Image != nil {
		p.Image = *pp.Image
	}
	if pp.Category != nil {
		p.Category = *pp.Category
	}
}
