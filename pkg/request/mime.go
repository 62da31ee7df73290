// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

package request

import (
	"path/filepath"
	"strings"
)

// DefaultContentType is used when an object's extension is unknown.
const DefaultContentType = "application/octet-stream"

// mimeTypes is a fixed extension table. The stdlib mime package consults
// the host's mime.types files, which would make the signed Content-Type
// vary by machine; a fixed table keeps signatures reproducible.
var mimeTypes = map[string]string{
	".avi":   "video/x-msvideo",
	".bin":   "application/octet-stream",
	".bmp":   "image/bmp",
	".bz2":   "application/x-bzip2",
	".css":   "text/css",
	".csv":   "text/csv",
	".doc":   "application/msword",
	".docx":  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".gif":   "image/gif",
	".gz":    "application/gzip",
	".htm":   "text/html",
	".html":  "text/html",
	".ico":   "image/x-icon",
	".jpeg":  "image/jpeg",
	".jpg":   "image/jpeg",
	".js":    "application/javascript",
	".json":  "application/json",
	".m3u8":  "application/vnd.apple.mpegurl",
	".md":    "text/markdown",
	".mov":   "video/quicktime",
	".mp3":   "audio/mpeg",
	".mp4":   "video/mp4",
	".mpeg":  "video/mpeg",
	".ogg":   "audio/ogg",
	".pdf":   "application/pdf",
	".png":   "image/png",
	".ppt":   "application/vnd.ms-powerpoint",
	".pptx":  "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".svg":   "image/svg+xml",
	".tar":   "application/x-tar",
	".tif":   "image/tiff",
	".tiff":  "image/tiff",
	".ts":    "video/mp2t",
	".txt":   "text/plain",
	".wav":   "audio/wav",
	".webm":  "video/webm",
	".webp":  "image/webp",
	".xls":   "application/vnd.ms-excel",
	".xlsx":  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".xml":   "application/xml",
	".yaml":  "application/yaml",
	".yml":   "application/yaml",
	".zip":   "application/zip",
	".7z":    "application/x-7z-compressed",
	".apk":   "application/vnd.android.package-archive",
	".flac":  "audio/flac",
	".woff":  "font/woff",
	".woff2": "font/woff2",
}

// ContentTypeFor infers a Content-Type from an object key's extension,
// defaulting to DefaultContentType.
func ContentTypeFor(object string) string {
	ext := strings.ToLower(filepath.Ext(object))
	if t, ok := mimeTypes[ext]; ok {
		return t
	}
	return DefaultContentType
}
