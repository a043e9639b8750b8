package model

// StaticPage is an editable content page keyed by its unique PageName
// (e.g. "about-us").
type StaticPage struct {
	Base
	PageName string  `json:"pageName" db:"page_name"`
	Title    string  `json:"title" db:"title"`
	Content  string  `json:"content" db:"content"`
	Extra    *string `json:"extra" db:"extra"`
}
