package service

const (
	ProductPageSize     = 12
	SubcategoryPageSize = 5
)

// TotalPages is ceil(count / size); zero when there is nothing to show.
func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// Paginate returns the visible slice for pageIndex (clamped) and the page count.
func Paginate[T any](items []T, pageSize, pageIndex int) ([]T, int) {
	total := TotalPages(len(items), pageSize)
	if total == 0 {
		return []T{}, 0
	}
	pageIndex = clampPage(pageIndex, total)
	start := pageIndex * pageSize
	end := min(start+pageSize, len(items))
	return items[start:end], total
}

func clampPage(page, total int) int {
	if total == 0 || page < 0 {
		return 0
	}
	if page > total-1 {
		return total - 1
	}
	return page
}

// Pager tracks the current page over a sequence whose length may change.
type Pager struct {
	size  int
	page  int
	count int
}

func NewPager(size int) *Pager {
	return &Pager{size: size}
}

func (p *Pager) Size() int       { return p.size }
func (p *Pager) Page() int       { return p.page }
func (p *Pager) TotalPages() int { return TotalPages(p.count, p.size) }

// SetCount updates the item count and keeps the page inside the new bounds.
func (p *Pager) SetCount(count int) {
	p.count = count
	p.page = clampPage(p.page, p.TotalPages())
}

func (p *Pager) Reset() {
	p.page = 0
}

func (p *Pager) HasNext() bool { return p.page < p.TotalPages()-1 }
func (p *Pager) HasPrev() bool { return p.page > 0 }

// Next moves forward one page. On the last page it does nothing.
func (p *Pager) Next() bool {
	if !p.HasNext() {
		return false
	}
	p.page++
	return true
}

// Prev moves back one page. On the first page it does nothing.
func (p *Pager) Prev() bool {
	if !p.HasPrev() {
		return false
	}
	p.page--
	return true
}
