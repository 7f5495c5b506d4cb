package dto

// BlogPostSummaryDTO uses camelCase keys, which is what the site front-end reads.
type BlogPostSummaryDTO struct {
	Slug       string `json:"slug" example:"automacao-de-processos"`
	Title      string `json:"title" example:"Automação de Processos com IA"`
	Date       string `json:"date" example:"2025-03-04"`
	Excerpt    string `json:"excerpt"`
	Author     string `json:"author" example:"Equipe Widia"`
	CoverImage string `json:"coverImage" example:"/images/blog/automacao-de-processos.jpg"`
}

type BlogPostDetailDTO struct {
	BlogPostSummaryDTO
	Content string `json:"content"`
}
