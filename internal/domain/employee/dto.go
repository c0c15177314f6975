package employee

// ListFilter narrows the directory listing. Zero values mean no filtering.
type ListFilter struct {
	Department string
	Search     string
}
