package entity

// ScheduleFilter is the list-endpoint filter. Zero values mean "no filter".
type ScheduleFilter struct {
	Status ScheduleStatus
	From   string // YYYY-MM-DD
	To     string // YYYY-MM-DD
	Query  string // free text over code / doctor / specialty
}

// PageMeta is the pagination block returned alongside every list page.
type PageMeta struct {
	CurrentPage int
	PerPage     int
	Total       int
	LastPage    int
}
