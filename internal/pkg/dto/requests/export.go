package requests

type CreateExport struct {
	Year   int    `json:"year" validate:"required,gte=1970,lte=2100"`
	Month  int    `json:"month" validate:"required,gte=1,lte=12"`
	Format string `json:"format" validate:"required,oneof=csv ics"`
}
