package export

import (
	"bytes"
	"image"
	"image/png"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipInitOnce sync.Once
	clipInitErr  error
	clipWriteMu  sync.Mutex
)

// WriteClipboard places img on the system clipboard as PNG data. Writes are
// mutex-guarded to prevent corruption under parallel exports.
func WriteClipboard(img image.Image) error {
	clipInitOnce.Do(func() { clipInitErr = clipboard.Init() })
	if clipInitErr != nil {
		return clipInitErr
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	clipWriteMu.Lock()
	defer clipWriteMu.Unlock()
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	return nil
}
