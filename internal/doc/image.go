package doc

// Image is an embedded binary asset recovered from the BinData storage.
// Data is kept out of JSON output; Size stands in for it.
type Image struct {
	Name   string `json:"name"`
	Format string `json:"format"`
	Size   int    `json:"size"`
	Data   []byte `json:"-"`
}

// NewImage builds an Image with Size derived from the payload.
func NewImage(name, format string, data []byte) Image {
	return Image{
		Name:   name,
		Format: format,
		Size:   len(data),
		Data:   data,
	}
}
