package model

type BaseResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

type SearchResult[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}

func NewSearchResult[T any](data []T) SearchResult[T] {
	if data == nil {
		data = []T{}
	}
	return SearchResult[T]{
		Count: len(data),
		Data:  data,
	}
}
