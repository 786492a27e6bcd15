package request

type CreateReservationRequest struct {
	ResourceID    string `json:"resource_id" validate:"required,uuid4"`
	CustomerName  string `json:"customer_name" validate:"required,min=2"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone" validate:"required,min=6"`
	StartDate     string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string `json:"end_date" validate:"required,datetime=2006-01-02"`
	// Consent must be true: the privacy policy acceptance checkbox.
	Consent bool `json:"consent" validate:"required"`
}
