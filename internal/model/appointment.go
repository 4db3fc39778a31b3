package model

const (
	AppointmentDefaultDuration = 60
	AppointmentDefaultStatus   = "confirmed"
)

type Appointment struct {
	ID         int64  `db:"id" json:"id"`
	UserID     int64  `db:"userId" json:"userId"`
	DoctorName string `db:"doctorName" json:"doctorName"`
	Specialty  string `db:"specialty" json:"specialty"`
	Date       string `db:"date" json:"date"`
	Time       string `db:"time" json:"time"`
	Duration   int    `db:"duration" json:"duration"`
	Status     string `db:"status" json:"status"`
	Notes      string `db:"notes" json:"notes"`
	CreatedAt  string `db:"createdAt" json:"-"`
}

type CreateAppointmentRequest struct {
	DoctorName string `json:"doctorName" binding:"required"`
	Specialty  string `json:"specialty" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Duration   int    `json:"duration"`
	Notes      string `json:"notes"`
}

// UpdateAppointmentRequest uses pointers so omitted fields keep their
// stored values. Doctor, specialty and owner are immutable after
// creation.
type UpdateAppointmentRequest struct {
	Date  *string `json:"date"`
	Time  *string `json:"time"`
	Notes *string `json:"notes"`
}
