package http

import "time"

// Request bodies for the JSON API. Validation tags cover shape only; business
// rules stay in the command constructors and aggregates.

type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	ConsumerID    int64              `json:"consumer_id"    validate:"required,gt=0"`
	PickupDetails string             `json:"pickup_details"`
	Items         []OrderItemRequest `json:"items"          validate:"required,min=1,dive"`
}

type TransitionOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreatePickupRequest struct {
	OrderID    *string    `json:"order_id"    validate:"omitempty,uuid"`
	Location   string     `json:"location"    validate:"required"`
	Notes      string     `json:"notes"`
	PickupDate *time.Time `json:"pickup_date"`
}

type AssignDriverRequest struct {
	DriverID int64 `json:"driver_id" validate:"required,gt=0"`
}

type TransitionPickupStatusRequest struct {
	Status string   `json:"status" validate:"required"`
	Rating *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

type RegisterDriverRequest struct {
	UserID          int64  `json:"user_id"           validate:"required,gt=0"`
	VehicleType     string `json:"vehicle_type"      validate:"required"`
	MaxLoadCapacity int    `json:"max_load_capacity" validate:"required,gt=0"`
}

type UpdateDriverAvailabilityRequest struct {
	Availability string `json:"availability" validate:"required"`
	Location     string `json:"location"`
}

type RecordDriverCompletionRequest struct {
	Rating *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

type CreateProductRequest struct {
	FarmerID    int64    `json:"farmer_id"    validate:"required,gt=0"`
	Price       float64  `json:"price"        validate:"required,gt=0"`
	Stock       int      `json:"stock"        validate:"gte=0"`
	UnitType    string   `json:"unit_type"    validate:"required"`
	ImageRef    string   `json:"image_ref"`
	CategoryIDs []string `json:"category_ids" validate:"required,min=1,dive,uuid"`
}

type UpdateProductRequest struct {
	Price    *float64 `json:"price"     validate:"omitempty,gt=0"`
	Stock    *int     `json:"stock"     validate:"omitempty,gte=0"`
	Status   *string  `json:"status"`
	UnitType *string  `json:"unit_type"`
	ImageRef *string  `json:"image_ref"`
}

type AssignCategoriesRequest struct {
	CategoryIDs []string `json:"category_ids" validate:"required,min=1,dive,uuid"`
}

// CreatedResponse returns the server-generated identifier of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// Read-side response bodies.

type OrderSummaryResponse struct {
	ID         string    `json:"id"`
	ConsumerID int64     `json:"consumer_id"`
	Status     string    `json:"status"`
	OrderDate  time.Time `json:"order_date"`
	Total      float64   `json:"total"`
}

type OrderLineItemResponse struct {
	ProductID *string `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type OrderDetailsResponse struct {
	ID            string                  `json:"id"`
	ConsumerID    int64                   `json:"consumer_id"`
	Status        string                  `json:"status"`
	OrderDate     time.Time               `json:"order_date"`
	PickupDetails string                  `json:"pickup_details"`
	Items         []OrderLineItemResponse `json:"items"`
	Total         float64                 `json:"total"`
}

type PickupResponse struct {
	ID         string     `json:"id"`
	OrderID    *string    `json:"order_id"`
	Status     string     `json:"status"`
	PickupDate *time.Time `json:"pickup_date"`
	Location   string     `json:"location"`
	AssignedTo *int64     `json:"assigned_to"`
	Notes      string     `json:"notes"`
}

type DriverResponse struct {
	UserID           int64   `json:"user_id"`
	VehicleType      string  `json:"vehicle_type"`
	MaxLoadCapacity  int     `json:"max_load_capacity"`
	CurrentLocation  string  `json:"current_location"`
	CompletedPickups int     `json:"completed_pickups"`
	Rating           float64 `json:"rating"`
}
