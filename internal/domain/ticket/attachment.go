package ticket

import (
	"fmt"
	"time"

	"clientsolve/internal/shared/id"
)

// Attachment is owned exclusively by its parent ticket. Size limits are
// enforced by the upload collaborator before the attachment reaches the
// aggregate; the URL is an opaque reference into blob storage.
type Attachment struct {
	id        string
	name      string
	size      int64
	mimeType  string
	url       string
	createdAt time.Time
}

func NewAttachment(name string, size int64, mimeType, url string) (*Attachment, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("attachment name is required")
	}
	if size < 0 {
		return nil, fmt.Errorf("attachment size cannot be negative")
	}
	if len(url) == 0 {
		return nil, fmt.Errorf("attachment URL is required")
	}

	return &Attachment{
		id:        id.MustGenerateWithPrefix(id.PrefixAttachment, id.DefaultLength),
		name:      name,
		size:      size,
		mimeType:  mimeType,
		url:       url,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructAttachment(attachmentID, name string, size int64, mimeType, url string, createdAt time.Time) (*Attachment, error) {
	if len(attachmentID) == 0 {
		return nil, fmt.Errorf("attachment ID is required")
	}

	return &Attachment{
		id:        attachmentID,
		name:      name,
		size:      size,
		mimeType:  mimeType,
		url:       url,
		createdAt: createdAt,
	}, nil
}

func (a *Attachment) ID() string {
	return a.id
}

func (a *Attachment) Name() string {
	return a.name
}

func (a *Attachment) Size() int64 {
	return a.size
}

func (a *Attachment) MimeType() string {
	return a.mimeType
}

func (a *Attachment) URL() string {
	return a.url
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}
