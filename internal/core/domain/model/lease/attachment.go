package lease

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"agrirent/internal/pkg/errs"
)

// Attachment is a signed document stored outside of the service.
type Attachment struct {
	documentType string
	url          string
	uploadedAt   time.Time
}

// NewAttachment requires a document type and an absolute http(s) URL.
func NewAttachment(documentType, rawURL string, uploadedAt time.Time) (Attachment, error) {
	documentType = strings.TrimSpace(documentType)
	if documentType == "" {
		return Attachment{}, errs.NewValueIsRequiredError("document type")
	}

	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Attachment{}, errs.NewValueIsInvalidErrorWithCause("attachment url", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Attachment{}, errs.NewValueIsInvalidErrorWithCause("attachment url",
			fmt.Errorf("%q is not an absolute http(s) url", rawURL))
	}
	if uploadedAt.IsZero() {
		return Attachment{}, errs.NewValueIsRequiredErrorWithCause("uploaded at", errors.New("missing timestamp"))
	}

	return Attachment{documentType: documentType, url: u.String(), uploadedAt: uploadedAt}, nil
}

func (a Attachment) DocumentType() string { return a.documentType }

func (a Attachment) URL() string { return a.url }

func (a Attachment) UploadedAt() time.Time { return a.uploadedAt }
