package handler

import (
	"mime/multipart"

	"openspace/internal/usecase"

	"github.com/labstack/echo/v4"
)

// imageFormField is the multipart form field image uploads arrive in.
const imageFormField = "image"

// openImageUpload pulls the uploaded image out of the multipart form. The
// caller owns the returned closer and must close it after the usecase has
// consumed the stream.
func openImageUpload(c echo.Context) (*usecase.UploadImageInput, multipart.File, error) {
	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return nil, nil, err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}

	return &usecase.UploadImageInput{
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        src,
	}, src, nil
}
