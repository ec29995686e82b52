package dto

type BookingListDTO struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	PartySize   int    `json:"party_size"`
	ClientName  string `json:"client_name"`
	ServiceName string `json:"service_name"`
}
