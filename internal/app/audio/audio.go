// Package audio holds small helpers shared by the gateways and the importer
// for mapping between audio file extensions and MIME types.
package audio

import (
	"path/filepath"
	"strings"
)

var extToMIME = map[string]string{
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".aac":  "audio/aac",
}

var mimeToExt = map[string]string{
	"audio/mpeg":  ".mp3",
	"audio/mp3":   ".mp3",
	"audio/mp4":   ".m4a",
	"audio/m4a":   ".m4a",
	"audio/wav":   ".wav",
	"audio/wave":  ".wav",
	"audio/x-wav": ".wav",
	"audio/ogg":   ".ogg",
	"audio/flac":  ".flac",
	"audio/aac":   ".aac",
}

// MIMETypeForFile returns the audio MIME type for a file path based on its
// extension, or "" when the extension is not a supported audio format.
func MIMETypeForFile(path string) string {
	return extToMIME[strings.ToLower(filepath.Ext(path))]
}

// ExtensionForMIMEType returns the canonical file extension (with dot) for
// an audio MIME type, defaulting to ".mp3" for unknown audio types.
func ExtensionForMIMEType(mimeType string) string {
	// Parameters like "audio/wav; rate=16000" are not part of the key.
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	if ext, ok := mimeToExt[strings.TrimSpace(strings.ToLower(mimeType))]; ok {
		return ext
	}
	return ".mp3"
}

// IsAudioMIMEType reports whether the content type indicates audio.
func IsAudioMIMEType(mimeType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mimeType)), "audio/")
}
