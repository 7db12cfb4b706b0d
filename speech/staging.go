package speech

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// StageUpload writes an uploaded audio stream into the audio directory
// under a random temp name, re-encoding it to mono 16 kHz mp3 when ffmpeg
// is available. The staged copy keeps an .mp3 name on both paths so the
// transcription service accepts it. The returned cleanup must be called on
// every path.
func StageUpload(src io.Reader, audioDir string) (string, func(), error) {
	token := uuid.New().String()
	stagedPath := filepath.Join(audioDir, fmt.Sprintf("temp_%s.mp3", token))
	encodedPath := filepath.Join(audioDir, fmt.Sprintf("temp_%s_16k.mp3", token))

	out, err := os.Create(stagedPath)
	if err != nil {
		return "", func() {}, fmt.Errorf("staging upload: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(stagedPath)
		return "", func() {}, fmt.Errorf("staging upload: %w", err)
	}
	out.Close()

	cleanup := func() {
		os.Remove(stagedPath)
		os.Remove(encodedPath)
	}

	// Best effort: Whisper accepts most containers, so a failed re-encode
	// falls back to the upload as staged.
	err = ffmpeg.Input(stagedPath).
		Output(encodedPath, ffmpeg.KwArgs{"ar": "16000", "ac": "1", "b:a": "64k"}).
		OverWriteOutput().Run()
	if err != nil {
		log.Printf("ffmpeg re-encode failed, sending upload as staged: %v", err)
		return stagedPath, cleanup, nil
	}
	return encodedPath, cleanup, nil
}
