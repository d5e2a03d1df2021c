package responses

import "time"

type Export struct {
	ObjectName  string    `json:"object_name"`
	Format      string    `json:"format"`
	DownloadURL string    `json:"download_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}
