package browse

import "FoodTechScanner/internal/domain"

// TotalPages reports how many pages a sequence spans, with a floor of one
// page so an empty domain still renders a single, empty page.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	if count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// Page slices out the 1-based page of a domain's articles and reports the
// total page count. A page outside [1, total] yields an empty slice; keeping
// the requested page inside that range is the caller's job (see Clamp).
func Page(articles []domain.Article, pageSize, page int) ([]domain.Article, int) {
	total := TotalPages(len(articles), pageSize)
	if pageSize < 1 {
		pageSize = 1
	}

	start := (page - 1) * pageSize
	if start < 0 || start >= len(articles) {
		return nil, total
	}

	end := start + pageSize
	if end > len(articles) {
		end = len(articles)
	}
	return articles[start:end], total
}

// Clamp forces a requested page into [1, totalPages].
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
