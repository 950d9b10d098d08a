package model

import "time"

// UploadedFile is a resume received in a single request. It is never stored.
type UploadedFile struct {
	Filename string
	Content  []byte
	// Size is the size declared by the multipart header.
	Size int64
}

// RoastResult is the success response body of POST /roast.
type RoastResult struct {
	Roast string `json:"roast"`
}

// Health is the response body of GET /health.
type Health struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}
