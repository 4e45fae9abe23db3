package domain

type Client struct {
	Id       int64  `json:"id"`
	Document string `json:"document"`
	Name     string `json:"name"`
}

type Service struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// HandledCount is one staff member's tally of called tickets per service.
type HandledCount struct {
	UserId    int64 `json:"user_id"`
	ServiceId int64 `json:"service_id"`
	Count     int   `json:"count"`
}
