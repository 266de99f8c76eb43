package reviewers

type Reviewer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
