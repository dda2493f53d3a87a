package api

import (
	"io"
	"mime/multipart"
)

// readUpload drains one multipart file into memory. Uploads here are small
// square images, so buffering is fine.
func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
