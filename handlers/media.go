package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"

	"github.com/NGanna24/mi-gban-sub000/models"
)

const uploadFolder = "migban/listings"

// MediaHandler issues signed Cloudinary upload parameters so clients can
// upload listing photos directly to the provider.
type MediaHandler struct {
	cld *cloudinary.Cloudinary
}

func NewMediaHandler(cld *cloudinary.Cloudinary) *MediaHandler {
	return &MediaHandler{cld: cld}
}

func (h *MediaHandler) GetUploadSignature(w http.ResponseWriter, r *http.Request) Result {
	if h.cld == nil {
		return InternalError(nil, "media uploads not configured")
	}

	timestamp := time.Now().Unix()
	params := url.Values{}
	params.Set("timestamp", strconv.FormatInt(timestamp, 10))
	params.Set("folder", uploadFolder)

	signature, err := api.SignParameters(params, h.cld.Config.Cloud.APISecret)
	if err != nil {
		return InternalError(err, "sign upload parameters: ")
	}

	return Ok(models.UploadSignature{
		Signature: signature,
		Timestamp: timestamp,
		APIKey:    h.cld.Config.Cloud.APIKey,
		CloudName: h.cld.Config.Cloud.CloudName,
		Folder:    uploadFolder,
	})
}
