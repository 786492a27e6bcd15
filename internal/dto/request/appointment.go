package request

type CreateAppointmentRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,min=6"`
	VehicleBrand string `json:"vehicle_brand" validate:"required"`
	VehicleModel string `json:"vehicle_model" validate:"required"`
	Service      string `json:"service" validate:"required"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string `json:"time" validate:"required,datetime=15:04"`
	Message      string `json:"message"`
	Consent      bool   `json:"consent" validate:"required"`
}
