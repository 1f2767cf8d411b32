package config

import (
	"net/http"
	"time"
)

func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}
