package uploads

import (
	"ZamCare/pkg/apperr"
	"ZamCare/pkg/response"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const uploadFolder = "zamcare_uploads"

type UploadHandler struct {
	cld    *cloudinary.Cloudinary
	logger *zap.Logger
}

func NewUploadHandler(cld *cloudinary.Cloudinary, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{cld: cld, logger: logger}
}

// UploadImage stores the "image" form file in Cloudinary and returns the
// hosted URL plus the public ID needed to delete it later.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.Err(c, apperr.New(apperr.Validation, "Please upload a file"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return response.Err(c, apperr.New(apperr.Validation, "Please upload a file"))
	}
	defer file.Close()

	result, err := h.cld.Upload.Upload(c.Request().Context(), file, uploader.UploadParams{
		Folder: uploadFolder,
	})
	if err != nil {
		h.logger.Error("Image upload failed", zap.Error(err), zap.String("filename", fileHeader.Filename))
		return response.Err(c, apperr.New(apperr.Unexpected, "Image upload failed"))
	}

	return response.OK(c, map[string]string{
		"imageUrl": result.SecureURL,
		"publicId": result.PublicID,
	})
}
