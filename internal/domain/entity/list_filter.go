package entity

// Page is an offset/limit window over a listing.
type Page struct {
	Offset int
	Limit  int
}

// DoctorFilter narrows the doctor listing.
// Used by repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	SpecialtyID *int64
	Page        Page
}
