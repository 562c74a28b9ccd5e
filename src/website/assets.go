package website

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"git.radiohub.fm/hub/hub/src/assets"
	"git.radiohub.fm/hub/hub/src/config"
	"git.radiohub.fm/hub/hub/src/models"
)

type AssetUploadResult struct {
	ID       string `json:"id,omitempty"`
	Url      string `json:"url,omitempty"`
	Mime     string `json:"mime,omitempty"`
	Duration int    `json:"duration,omitempty"`
	Error    string `json:"error,omitempty"`
}

const assetMaxSize = 200 * 1024 * 1024
const assetMaxSizeAdmin = 10 * 1024 * 1024 * 1024

func AssetMaxSize(user *models.User) int {
	if user != nil && user.Role == models.UserRoleAdmin {
		return assetMaxSizeAdmin
	} else {
		return assetMaxSize
	}
}

func AssetUpload(c *RequestContext) ResponseData {
	maxFilesize := AssetMaxSize(c.CurrentUser)

	contentLength, hasLength := c.Req.Header["Content-Length"]
	if hasLength {
		filesize, err := strconv.Atoi(contentLength[0])
		if err == nil && filesize > maxFilesize {
			res := ResponseData{
				StatusCode: http.StatusOK,
			}
			res.WriteJson(AssetUploadResult{
				Error: fmt.Sprintf("Filesize too big. Maximum size is %d.", maxFilesize),
			})
			return res
		}
	}

	filenameHeader, hasFilename := c.Req.Header["Hub-Upload-Filename"]
	originalFilename := "upload"
	if hasFilename {
		decodedFilename, err := base64.StdEncoding.DecodeString(filenameHeader[0])
		if err == nil {
			originalFilename = string(decodedFilename)
		}
	}

	bodyReader := http.MaxBytesReader(c.Res, c.Req.Body, int64(maxFilesize))
	data, err := io.ReadAll(bodyReader)
	if err != nil {
		res := ResponseData{
			StatusCode: http.StatusBadRequest,
			Errors:     []error{err},
		}
		return res
	}

	mimeType := http.DetectContentType(data)

	var uploaderID *int
	if c.CurrentUser != nil {
		uploaderID = &c.CurrentUser.ID
	}

	asset, err := assets.Create(c, c.Conn, assets.CreateInput{
		Content:     data,
		Filename:    originalFilename,
		ContentType: mimeType,
		UploaderID:  uploaderID,
	})
	if err != nil {
		res := ResponseData{
			StatusCode: http.StatusBadRequest,
			Errors:     []error{err},
		}
		return res
	}

	duration := 0
	if strings.HasPrefix(mimeType, "audio/mpeg") {
		if seconds, err := assets.Mp3Duration(data); err == nil {
			duration = seconds
		} else {
			c.Logger.Warn().Err(err).Msg("could not read duration of uploaded audio")
		}
	}

	res := ResponseData{
		StatusCode: http.StatusOK,
	}
	res.WriteJson(AssetUploadResult{
		ID:       asset.ID.String(),
		Url:      fmt.Sprintf("%s/%s", config.Config.Spaces.BaseUrl, asset.S3Key),
		Mime:     asset.MimeType,
		Duration: duration,
	})
	return res
}
