package dto

type AppointmentListDTO struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	ServiceName string `json:"service_name"`
	DurationMin int    `json:"duration_min"`
}
