package models

// Category is the closed set of catalog categories.
type Category string

const (
	CategoryCourse    Category = "Kursus"
	CategoryEbook     Category = "E-book"
	CategorySystem    Category = "Sistem"
	CategoryPrintable Category = "Cetak"
	CategoryToolkit   Category = "Toolkit"
	CategoryTemplate  Category = "Templat"
)

// CategoryAll is the sentinel value that disables category filtering.
const CategoryAll = "Semua"

// Categories lists the filter choices shown to the user, sentinel first.
var Categories = []string{
	CategoryAll,
	string(CategoryCourse),
	string(CategoryEbook),
	string(CategorySystem),
	string(CategoryPrintable),
	string(CategoryToolkit),
	string(CategoryTemplate),
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Product is a digital good in the catalog. Rating and Reviews hold the
// seed values shipped with the catalog; live review data is blended in
// at read time, never written back here.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"` // smallest currency unit (IDR)
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	Instructor  string   `json:"instructor,omitempty"`
	Features    []string `json:"features"`
	Modules     []string `json:"modules,omitempty"`
	FAQs        []FAQ    `json:"faqs,omitempty"`
}

// IsCourse reports whether the product carries a curriculum.
func (p Product) IsCourse() bool {
	return len(p.Modules) > 0
}
