package models

// CustomerRecord is a single customer as submitted for scoring. JSON field
// names match the telco dataset columns the model was trained on, so payloads
// are interchangeable with the training pipeline's row format.
//
// Structural checks (presence, numeric ranges) live in the binding tags;
// domain checks for the enumerated categorical fields live in pkg/validation.
// The multi-valued service fields are deliberately not enum-checked: unseen
// category values must still encode downstream (to all-zero indicators).
type CustomerRecord struct {
	Gender           string  `json:"gender" binding:"required"`
	SeniorCitizen    int     `json:"SeniorCitizen" binding:"min=0,max=1"`
	Partner          string  `json:"Partner" binding:"required"`
	Dependents       string  `json:"Dependents" binding:"required"`
	Tenure           int     `json:"tenure" binding:"min=0,max=100"`
	PhoneService     string  `json:"PhoneService" binding:"required"`
	MultipleLines    string  `json:"MultipleLines" binding:"required"`
	InternetService  string  `json:"InternetService" binding:"required"`
	OnlineSecurity   string  `json:"OnlineSecurity" binding:"required"`
	OnlineBackup     string  `json:"OnlineBackup" binding:"required"`
	DeviceProtection string  `json:"DeviceProtection" binding:"required"`
	TechSupport      string  `json:"TechSupport" binding:"required"`
	StreamingTV      string  `json:"StreamingTV" binding:"required"`
	StreamingMovies  string  `json:"StreamingMovies" binding:"required"`
	Contract         string  `json:"Contract" binding:"required"`
	PaperlessBilling string  `json:"PaperlessBilling" binding:"required"`
	PaymentMethod    string  `json:"PaymentMethod" binding:"required"`
	MonthlyCharges   float64 `json:"MonthlyCharges" binding:"required,gt=0"`
	TotalCharges     float64 `json:"TotalCharges" binding:"required,gt=0"`
}
