package view

// ProductCard is one tile in a category section.
type ProductCard struct {
	ID       string
	Name     string
	ImageURL string
}

type CategorySection struct {
	Label string
	Count int
	Items []ProductCard
}

// ProductModal is the detail overlay.
type ProductModal struct {
	Name        string
	Price       string
	Category    string
	Description string
	ImageURL    string
}

type AdminListItem struct {
	ID       string
	Name     string
	Category string
	Price    string
}

// AdminForm mirrors the draft. Price stays text so the form shows what was typed.
type AdminForm struct {
	ID          string
	Name        string
	Description string
	Price       string
	ImageURL    string
	Category    string
	EditMode    bool
	Errors      map[string]string
}

type AdminPanel struct {
	Form       AdminForm
	Categories []string
	Products   []AdminListItem
}

type CatalogPage struct {
	Title    string
	Query    string
	Sections []CategorySection
	Modal    *ProductModal
	Admin    *AdminPanel
}
