package model

// PostsPerPage is the fixed page size for post listings.
const PostsPerPage = 5

// Page is one page of a descending-ordered post listing, shaped for
// template consumption. Page numbers are 1-indexed; a number beyond the
// range simply carries no posts.
type Page struct {
	Posts   []Post
	Number  int
	PerPage int
	Total   int64
}

// NewPage normalizes the page number and wraps a result slice.
func NewPage(posts []Post, number, perPage int, total int64) *Page {
	if number < 1 {
		number = 1
	}
	return &Page{Posts: posts, Number: number, PerPage: perPage, Total: total}
}

// TotalPages is the number of pages needed for Total items.
func (p *Page) TotalPages() int {
	if p.Total == 0 {
		return 1
	}
	pages := int(p.Total) / p.PerPage
	if int(p.Total)%p.PerPage != 0 {
		pages++
	}
	return pages
}

func (p *Page) HasPrev() bool { return p.Number > 1 }

func (p *Page) HasNext() bool { return p.Number < p.TotalPages() }

func (p *Page) Prev() int { return p.Number - 1 }

func (p *Page) Next() int { return p.Number + 1 }

// Numbers lists all page numbers for pagination links.
func (p *Page) Numbers() []int {
	nums := make([]int, 0, p.TotalPages())
	for i := 1; i <= p.TotalPages(); i++ {
		nums = append(nums, i)
	}
	return nums
}
