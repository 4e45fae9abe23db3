package request

type CreateTicketRequest struct {
	ServiceId int64  `json:"service_id" binding:"required"`
	Document  string `json:"document" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

type CancelTicketRequest struct {
	ServiceId int64  `json:"service_id" binding:"required"`
	Document  string `json:"document" binding:"required"`
}
