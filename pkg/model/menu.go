package model

// MenuItem is one row of an admin-configured navigation menu.
type MenuItem struct {
	ID       int64    `json:"id" db:"id"`
	MenuID   int64    `json:"menu_id" db:"menu_id"`
	ParentID int64    `json:"parent_id" db:"parent_id"`
	Position int      `json:"position" db:"position"`
	Title    string   `json:"title" db:"title"`
	URL      string   `json:"url" db:"url"`
	Target   string   `json:"target" db:"target"`
	Classes  []string `json:"classes" db:"classes"`
	Image    string   `json:"image" db:"image"`
}

type NavItem struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Target  string `json:"target,omitempty"`
	Icon    string `json:"icon,omitempty"`
	Image   string `json:"image,omitempty"`
	Current bool   `json:"current"`
}

type MenuSection struct {
	Section string    `json:"section"`
	Items   []NavItem `json:"items"`
}

type SubNavItem struct {
	Title  string `json:"title" yaml:"title"`
	Path   string `json:"-" yaml:"path"`
	URL    string `json:"url" yaml:"-"`
	Slug   string `json:"slug" yaml:"slug"`
	Active bool   `json:"active" yaml:"-"`
}

// Section is a top-level area of the site with its own sub-navigation.
type Section struct {
	Slug  string       `json:"slug" yaml:"slug"`
	Title string       `json:"title" yaml:"title"`
	Icon  string       `json:"icon" yaml:"icon"`
	Items []SubNavItem `json:"items" yaml:"items"`
}
