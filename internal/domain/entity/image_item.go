package entity

// ImageItem is an uploaded-but-not-yet-submitted image. It carries the
// same triple that ends up on the listing; a client-side preview URL is
// never persisted.
type ImageItem struct {
	UID  string `json:"uid"`
	Name string `json:"name"`
	URL  string `json:"url"`
}
