package noscam

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // attachment decoders registered for image.Decode
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/corona10/goimagehash"
	cache "github.com/go-pkgz/expirable-cache/v3"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// maxAttachmentSize limits how much of an attachment is read for hashing
const maxAttachmentSize = 8 * 1024 * 1024

// imageExtensions is the allow-list of attachment filename extensions.
// Both the extension and the declared content type must match for an
// attachment to be hashed; a mislabeled or extensionless file is excluded.
var imageExtensions = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".bmp": {}, ".webp": {},
}

// fingerprinter converts inbound requests to fingerprinted messages.
// Attachment hashes are cached by url, so the same image reposted across
// channels is fetched once.
type fingerprinter struct {
	client HTTPClient
	hashes cache.Cache[string, uint64]
	ttl    time.Duration
}

func newFingerprinter(client HTTPClient, ttl time.Duration) *fingerprinter {
	const maxCachedHashes = 10000
	return &fingerprinter{
		client: client,
		hashes: cache.NewCache[string, uint64]().WithMaxKeys(maxCachedHashes).WithTTL(ttl),
		ttl:    ttl,
	}
}

// fingerprint extracts id, channel and content verbatim and hashes every
// qualifying image attachment. A failed fetch or decode skips that single
// attachment, no attachment is allowed to block fingerprinting of the text.
func (f *fingerprinter) fingerprint(ctx context.Context, req Request) Message {
	var hashes []uint64
	for _, att := range req.Attachments {
		if !isImage(att) {
			continue
		}
		h, err := f.hash(ctx, att)
		if err != nil {
			log.Printf("[WARN] can't hash attachment %q: %v", att.Filename, err)
			continue
		}
		hashes = append(hashes, h)
	}
	return NewMessage(req.MsgID, req.ChannelID, req.Content, hashes)
}

// isImage checks the declared content type and the filename extension,
// both are required
func isImage(att Attachment) bool {
	if !strings.HasPrefix(att.ContentType, "image/") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(att.Filename))
	_, ok := imageExtensions[ext]
	return ok
}

// hash fetches attachment bytes and computes the perceptual average hash
func (f *fingerprinter) hash(ctx context.Context, att Attachment) (uint64, error) {
	if h, ok := f.hashes.Get(att.URL); ok {
		return h, nil
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, att.URL, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("failed to make request for %s: %w", att.URL, err)
	}
	resp, err := f.client.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch attachment: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %s fetching attachment", resp.Status)
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, maxAttachmentSize))
	if err != nil {
		return 0, fmt.Errorf("failed to decode image: %w", err)
	}
	avg, err := goimagehash.AverageHash(img)
	if err != nil {
		return 0, fmt.Errorf("failed to hash image: %w", err)
	}

	f.hashes.Set(att.URL, avg.GetHash(), f.ttl)
	return avg.GetHash(), nil
}
