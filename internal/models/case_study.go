package models

// CaseStudy описывает аналитическую статью. После создания не меняется.
type CaseStudy struct {
	ID               int64   `db:"id" json:"id"`
	Title            string  `db:"title" json:"title"`
	Description      string  `db:"description" json:"description"`
	Category         string  `db:"category" json:"category"`
	ReadTime         string  `db:"read_time" json:"readTime"`
	ImageURL         string  `db:"image_url" json:"imageUrl"`
	Content          string  `db:"content" json:"content"`
	Methodology      *string `db:"methodology" json:"methodology"`
	Results          *string `db:"results" json:"results"`
	Insights         *string `db:"insights" json:"insights"`
	ExperimentsCount *int64  `db:"experiments_count" json:"experimentsCount"`
	Author           string  `db:"author" json:"author"`
	PublishedAt      *string `db:"published_at" json:"publishedAt"`
}

// NewCaseStudy описывает данные для создания статьи.
type NewCaseStudy struct {
	Title            string
	Description      string
	Category         string
	ReadTime         string
	ImageURL         string
	Content          string
	Methodology      *string
	Results          *string
	Insights         *string
	ExperimentsCount *int64
	Author           string
	PublishedAt      *string
}

// Build собирает CaseStudy с заданным id.
func (n NewCaseStudy) Build(id int64) CaseStudy {
	return CaseStudy{
		ID:               id,
		Title:            n.Title,
		Description:      n.Description,
		Category:         n.Category,
		ReadTime:         n.ReadTime,
		ImageURL:         n.ImageURL,
		Content:          n.Content,
		Methodology:      n.Methodology,
		Results:          n.Results,
		Insights:         n.Insights,
		ExperimentsCount: n.ExperimentsCount,
		Author:           n.Author,
		PublishedAt:      n.PublishedAt,
	}
}
