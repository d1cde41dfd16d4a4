package dto

// PageQuery is the skip/limit window read from the query string.
type PageQuery struct {
	Skip  int
	Limit int
}
