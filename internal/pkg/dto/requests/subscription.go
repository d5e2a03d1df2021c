package requests

type CreateSubscription struct {
	URL    string   `json:"url" validate:"required,url"`
	Events []string `json:"events" validate:"omitempty,dive,oneof=shift.created shift.deleted shift.bulk_created shift.bulk_deleted rotation.materialized"`
	Active bool     `json:"active"`
}
