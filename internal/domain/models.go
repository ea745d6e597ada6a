package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated traveler account.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Phone        string    `db:"phone" json:"phone"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Country represents a visa destination offered by the agency.
type Country struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	Name               string    `db:"name" json:"name"`
	Code               string    `db:"code" json:"code"`
	Priority           int       `db:"priority" json:"priority"`
	Description        string    `db:"description" json:"description"`
	FlagURL            string    `db:"flag_url" json:"flag_url"`
	VisaProcessingDays int       `db:"visa_processing_days" json:"visa_processing_days"`
	VisaFee            float64   `db:"visa_fee" json:"visa_fee"`
	IsActive           bool      `db:"is_active" json:"is_active"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

// VisaRequirement is one configured form field for a country's application
// form. The ordered set of requirements for a country is the schema the
// dynamic form engine renders and validates against.
type VisaRequirement struct {
	ID          uuid.UUID `db:"id" json:"id"`
	CountryID   uuid.UUID `db:"country_id" json:"country_id"`
	FieldName   string    `db:"field_name" json:"field_name"`
	FieldType   string    `db:"field_type" json:"field_type"`
	FieldLabel  string    `db:"field_label" json:"field_label"`
	IsRequired  bool      `db:"is_required" json:"is_required"`
	Options     string    `db:"options" json:"options"`
	Placeholder string    `db:"placeholder" json:"placeholder"`
	OrderIndex  int       `db:"order_index" json:"order_index"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// VisaType represents a purchasable visa product (e.g. "UAE Tourist Visa,
// 30 days"). Requirements holds per-profession document lists; FAQs holds
// question/answer pairs. Both are stored as JSONB.
type VisaType struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	CountryID       uuid.UUID       `db:"country_id" json:"country_id"`
	Name            string          `db:"name" json:"name"`
	Validity        string          `db:"validity" json:"validity"`
	MaxStay         string          `db:"max_stay" json:"max_stay"`
	VisaCategory    string          `db:"visa_category" json:"visa_category"`
	ProcessingDays  int             `db:"processing_days" json:"processing_days"`
	Fee             float64         `db:"fee" json:"fee"`
	CountryOverview string          `db:"country_overview" json:"country_overview"`
	Requirements    json.RawMessage `db:"requirements" json:"requirements"`
	FAQs            json.RawMessage `db:"faqs" json:"faqs"`
	IsActive        bool            `db:"is_active" json:"is_active"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// VisaApplication is one submitted application. Exactly one of CountryID or
// VisaTypeID is set, depending on which flow produced it. ApplicationData is
// the flattened form state at submission time.
type VisaApplication struct {
	ID              uuid.UUID         `db:"id" json:"id"`
	UserID          uuid.UUID         `db:"user_id" json:"user_id"`
	CountryID       *uuid.UUID        `db:"country_id" json:"country_id,omitempty"`
	VisaTypeID      *uuid.UUID        `db:"visa_type_id" json:"visa_type_id,omitempty"`
	Status          ApplicationStatus `db:"status" json:"status"`
	ApplicationData json.RawMessage   `db:"application_data" json:"application_data"`
	SubmittedAt     time.Time         `db:"submitted_at" json:"submitted_at"`
	CreatedAt       time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time         `db:"updated_at" json:"updated_at"`
}

// ApplicationFile links one uploaded document to an application. Multiple
// rows may share a FieldName for multi-file fields.
type ApplicationFile struct {
	ID            uuid.UUID `db:"id" json:"id"`
	ApplicationID uuid.UUID `db:"application_id" json:"application_id"`
	FieldName     string    `db:"field_name" json:"field_name"`
	FilePath      string    `db:"file_path" json:"file_path"`
	FileName      string    `db:"file_name" json:"file_name"`
	FileSize      int64     `db:"file_size" json:"file_size"`
	FileType      string    `db:"file_type" json:"file_type"`
	UploadedAt    time.Time `db:"uploaded_at" json:"uploaded_at"`
}

// TourPackage represents a bookable tour product.
type TourPackage struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	CountryID    uuid.UUID       `db:"country_id" json:"country_id"`
	Title        string          `db:"title" json:"title"`
	Description  string          `db:"description" json:"description"`
	DurationDays int             `db:"duration_days" json:"duration_days"`
	Price        float64         `db:"price" json:"price"`
	MaxPeople    int             `db:"max_people" json:"max_people"`
	Highlights   json.RawMessage `db:"highlights" json:"highlights"`
	Itinerary    json.RawMessage `db:"itinerary" json:"itinerary"`
	ImageURL     string          `db:"image_url" json:"image_url"`
	IsActive     bool            `db:"is_active" json:"is_active"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

// TourBooking is one confirmed-or-pending reservation of a tour package.
// TotalPrice is always Price × NumberOfPeople at booking time.
type TourBooking struct {
	ID              uuid.UUID     `db:"id" json:"id"`
	UserID          uuid.UUID     `db:"user_id" json:"user_id"`
	PackageID       uuid.UUID     `db:"package_id" json:"package_id"`
	StartDate       time.Time     `db:"start_date" json:"start_date"`
	EndDate         time.Time     `db:"end_date" json:"end_date"`
	NumberOfPeople  int           `db:"number_of_people" json:"number_of_people"`
	Status          BookingStatus `db:"status" json:"status"`
	SpecialRequests string        `db:"special_requests" json:"special_requests"`
	TotalPrice      float64       `db:"total_price" json:"total_price"`
	BookingDate     time.Time     `db:"booking_date" json:"booking_date"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at" json:"updated_at"`
}

// Flight is a priced route entry used by the flight search page.
type Flight struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	OriginCode      string     `db:"origin_code" json:"origin_code"`
	DestinationCode string     `db:"destination_code" json:"destination_code"`
	DepartureDate   *time.Time `db:"departure_date" json:"departure_date,omitempty"`
	ReturnDate      *time.Time `db:"return_date" json:"return_date,omitempty"`
	Price           float64    `db:"price" json:"price"`
	Airline         string     `db:"airline" json:"airline"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

// FlightFilter narrows a flight search. Zero-valued fields match everything;
// Date matches flights departing on that calendar day.
type FlightFilter struct {
	OriginCode      string
	DestinationCode string
	Date            *time.Time
}
