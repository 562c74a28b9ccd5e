package assets

import (
	"bytes"
	"errors"
	"io"
	"math"

	"git.radiohub.fm/hub/hub/src/oops"
	"github.com/tcolgate/mp3"
)

// Mp3Duration walks every frame of an mp3 and returns the total play time
// in whole seconds. This is the only reliable way to get the duration of a
// VBR file without a side table.
func Mp3Duration(data []byte) (int, error) {
	decoder := mp3.NewDecoder(bytes.NewReader(data))

	var total float64
	var frame mp3.Frame
	var skipped int
	for {
		err := decoder.Decode(&frame, &skipped)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, oops.New(err, "failed to decode mp3 frame")
		}
		total += frame.Duration().Seconds()
	}

	if total == 0 {
		return 0, errors.New("mp3 contained no audio frames")
	}
	return int(math.Round(total)), nil
}
