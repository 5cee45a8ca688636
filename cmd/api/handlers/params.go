package handlers

type ContentParam struct {
	Content string `json:"content" form:"content"`
}

type VideoDetailParam struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

type PlaylistParam struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

type ListVideosParam struct {
	Query    string `query:"query"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
	UserID   string `query:"userId"`
}
