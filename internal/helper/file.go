package helper

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ImageKey builds the asset-store key for a report image:
// reports/{reportID}/{timestamp}-{originalName}. The nanosecond
// timestamp keeps concurrent uploads of equally named files from
// colliding.
func ImageKey(reportID uuid.UUID, originalName string) string {
	base := path.Base(strings.ReplaceAll(originalName, "\\", "/"))
	base = strings.ReplaceAll(base, " ", "_")
	if base == "" || base == "." {
		base = uuid.New().String() + ".jpg"
	}
	return fmt.Sprintf("reports/%s/%d-%s", reportID, time.Now().UTC().UnixNano(), base)
}

// DocumentKey builds the asset-store key for a rendered report artifact.
func DocumentKey(reportID uuid.UUID, ext string) string {
	return fmt.Sprintf("documents/reports/%s/report-%s.%s", reportID, reportID, ext)
}

func DetectFileContentType(file multipart.File) (string, error) {
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}
	if n == 0 {
		return "", errors.New("empty file")
	}

	contentType := http.DetectContentType(buffer[:n])

	if _, err := file.Seek(0, 0); err != nil {
		return "", err
	}

	return contentType, nil
}
