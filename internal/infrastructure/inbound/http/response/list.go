package response

// List is the paginated envelope of every collection endpoint.
type List[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

func NewList[T any](count int, results []T) List[T] {
	if results == nil {
		results = []T{}
	}
	return List[T]{Count: count, Results: results}
}
